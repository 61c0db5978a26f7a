package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticatorParse(t *testing.T) {
	auth := NewAuthenticator("secret")

	t.Run("round trip", func(t *testing.T) {
		token, err := auth.IssueToken(42, time.Minute)
		require.NoError(t, err)

		claims, err := auth.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), claims.UserID)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := auth.IssueToken(42, -time.Minute)
		require.NoError(t, err)

		_, err = auth.Parse(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("missing uid", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = auth.Parse(token)
		assert.Error(t, err)
	})

	t.Run("unexpected algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{UserID: 42}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = auth.Parse(token)
		assert.Error(t, err)
	})
}

func TestBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Bearer   ", "", false},
		{"Basic abc", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.Header.Set("Authorization", tt.header)

			got, ok := bearerToken(c)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
