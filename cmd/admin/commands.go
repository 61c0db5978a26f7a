package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/api/middleware"
)

func newRootCmd(open envOpener) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mp-admin",
		Short:         "Marketplace payments administration",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(migrateCmd(open))
	rootCmd.AddCommand(takeRateCmd(open))
	rootCmd.AddCommand(tokenCmd())

	return rootCmd
}

// withEnv opens the environment around run
func withEnv(open envOpener, run func(cmd *cobra.Command, args []string, e *env) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		e, err := open(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = e.close() }()
		return run(cmd, args, e)
	}
}

func migrateCmd(open envOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations and indexes",
		RunE: withEnv(open, func(cmd *cobra.Command, _ []string, e *env) error {
			if err := e.migrate(cmd.Context()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			version, err := e.version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema at version %s\n", version)
			return nil
		}),
	}
}

func takeRateCmd(open envOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "take-rate",
		Short: "Manage platform commission policies",
	}
	cmd.AddCommand(takeRateAddCmd(open))
	cmd.AddCommand(takeRateResolveCmd(open))
	return cmd
}

func takeRateAddCmd(open envOpener) *cobra.Command {
	var (
		seller uint64
		rate   string
		from   string
		to     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a take rate policy",
		Long: `Add a take rate policy. Without --seller the policy is the platform default.

Examples:
  mp-admin take-rate add --rate 15 --from 2024-01-01
  mp-admin take-rate add --seller 42 --rate 7.5 --from 2024-06-01 --to 2024-12-31`,
		RunE: withEnv(open, func(cmd *cobra.Command, _ []string, e *env) error {
			pct, err := decimal.NewFromString(rate)
			if err != nil {
				return fmt.Errorf("invalid --rate %q: %w", rate, err)
			}
			dateFrom, err := parseDate(from)
			if err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}
			var dateTo time.Time
			if to != "" {
				if dateTo, err = parseDate(to); err != nil {
					return fmt.Errorf("invalid --to: %w", err)
				}
				dateTo = endOfDay(dateTo)
			}

			var sellerID *uint64
			if cmd.Flags().Changed("seller") {
				if seller == 0 {
					return errors.New("--seller must be positive")
				}
				sellerID = &seller
			}

			created, err := e.takeRates.AddRate(cmd.Context(), sellerID, pct, dateFrom, dateTo)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created take rate %d: %s\n", created.ID, describeRate(created))
			return nil
		}),
	}

	cmd.Flags().Uint64Var(&seller, "seller", 0, "seller user id (omit for the default policy)")
	cmd.Flags().StringVar(&rate, "rate", "", "commission percentage between 0 and 100")
	cmd.Flags().StringVar(&from, "from", "", "first day the policy applies (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last day the policy applies (YYYY-MM-DD, omit for open-ended)")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func takeRateResolveCmd(open envOpener) *cobra.Command {
	var (
		at     string
		amount string
	)

	cmd := &cobra.Command{
		Use:   "resolve [seller-user-id]",
		Short: "Show the take rate that applies to a seller",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(open, func(cmd *cobra.Command, args []string, e *env) error {
			seller, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil || seller == 0 {
				return fmt.Errorf("invalid seller user id %q", args[0])
			}

			instant := time.Now().UTC()
			if at != "" {
				if instant, err = time.Parse(time.RFC3339, at); err != nil {
					return fmt.Errorf("invalid --at: %w", err)
				}
			}

			rate, err := e.takeRates.Resolve(cmd.Context(), seller, instant)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "take rate %d: %s\n", rate.ID, describeRate(rate))

			if amount != "" {
				total, err := entity.ParseAmount(amount)
				if err != nil {
					return fmt.Errorf("invalid --amount: %w", err)
				}
				split, err := e.takeRates.Split(cmd.Context(), seller, total, instant)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "total %s: platform fee %s, seller amount %s\n",
					entity.FormatAmount(split.Total),
					entity.FormatAmount(split.PlatformFee),
					entity.FormatAmount(split.SellerAmount))
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&at, "at", "", "instant to resolve at (RFC3339, default now)")
	cmd.Flags().StringVar(&amount, "amount", "", "also split this amount, e.g. 19.99")

	return cmd
}

func tokenCmd() *cobra.Command {
	var (
		secret string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token [user-id]",
		Short: "Issue a bearer token for local testing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil || userID == 0 {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			if secret == "" {
				return errors.New("--secret is required")
			}
			token, err := middleware.NewAuthenticator(secret).IssueToken(userID, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "signing secret (auth.jwtSecret)")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")

	return cmd
}

func parseDate(raw string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, raw, time.UTC)
}

func endOfDay(day time.Time) time.Time {
	return day.Add(24*time.Hour - time.Second)
}

func describeRate(rate *entity.TakeRate) string {
	scope := "default"
	if rate.UserID != nil {
		scope = "seller " + strconv.FormatUint(*rate.UserID, 10)
	}
	until := rate.DateTo.Format(time.DateOnly)
	if rate.IsOpenEnded() {
		until = "open-ended"
	}
	return fmt.Sprintf("%s%% (%s) from %s until %s", rate.Rate.String(), scope, rate.DateFrom.Format(time.DateOnly), until)
}
