package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	ctx := context.Background()

	token, err := j.Generate(ctx, 42, "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWT_AcceptedUntilExpiry(t *testing.T) {
	issued := time.Now().Add(-59 * time.Minute)
	j := New(WithSecretKey("test-secret"), WithClock(func() time.Time { return issued }))
	ctx := context.Background()

	token, err := j.Generate(ctx, 1, "admin")
	require.NoError(t, err)
	assert.NoError(t, j.Validate(ctx, token), "token issued 59 minutes ago is still valid")

	issued = time.Now().Add(-61 * time.Minute)
	token, err = j.Generate(ctx, 1, "admin")
	require.NoError(t, err)
	assert.ErrorIs(t, j.Validate(ctx, token), ErrExpiredToken)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, 1, "admin")
	require.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	err := j.Validate(ctx, "invalid.token.string")
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims, err := j.GetClaims(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_RejectsOtherSigningMethods(t *testing.T) {
	j := New(WithSecretKey("secret"))

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1, Username: "admin"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	assert.ErrorIs(t, j.Validate(context.Background(), token), ErrInvalidToken)
}

func TestJWT_GenerateWithoutSecret(t *testing.T) {
	_, err := New().Generate(context.Background(), 1, "admin")
	assert.ErrorIs(t, err, ErrMissingSecretKey)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectedErr   error
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", nil},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", nil},
		{"NoHeader", "", "", ErrMissingToken},
		{"InvalidFormat", "Token mytoken123", "", ErrMalformedHeader},
		{"TooManyParts", "Bearer a b c", "", ErrMalformedHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestJWT_Validate_WrongSecret(t *testing.T) {
	j1 := New(WithSecretKey("secret1"))
	j2 := New(WithSecretKey("secret2"))
	ctx := context.Background()

	token, err := j1.Generate(ctx, 7, "admin")
	require.NoError(t, err)

	assert.ErrorIs(t, j2.Validate(ctx, token), ErrInvalidToken)
}
