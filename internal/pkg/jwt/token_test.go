package jwt

import (
	"testing"
	"time"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60, // 60 minutes
			Issuer:     "hopon-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name   string
		userID uuid.UUID
		email  string
		role   models.UserRole
	}{
		{
			name:   "Valid token generation for driver",
			userID: uuid.New(),
			email:  "driver@example.com",
			role:   models.RoleDriver,
		},
		{
			name:   "Valid token generation for passenger",
			userID: uuid.New(),
			email:  "passenger@example.com",
			role:   models.RolePassenger,
		},
		{
			name:   "Empty email still generates token",
			userID: uuid.New(),
			email:  "",
			role:   models.RoleDriver,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString, expiresAt, err := GenerateToken(tt.userID, tt.email, tt.role, getTestConfig())

			assert.NoError(t, err)
			assert.NotEmpty(t, tokenString)
			assert.Greater(t, expiresAt, time.Now().Unix())

			// Verify token structure
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				return []byte(getTestConfig().JWT.Secret), nil
			})
			require.NoError(t, err)
			require.True(t, token.Valid)

			claims, ok := token.Claims.(jwt.MapClaims)
			require.True(t, ok)
			assert.Equal(t, tt.userID.String(), claims["user_id"])
			assert.Equal(t, string(tt.role), claims["role"])
			assert.Equal(t, "hopon-test", claims["iss"])
		})
	}
}

func TestValidateToken(t *testing.T) {
	cfg := getTestConfig()
	userID := uuid.New()

	tokenString, _, err := GenerateToken(userID, "user@example.com", models.RolePassenger, cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, string(models.RolePassenger), (*claims)["role"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := getTestConfig()

	tokenString, _, err := GenerateToken(uuid.New(), "user@example.com", models.RoleDriver, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "some-other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", getTestConfig().JWT.Secret)
	assert.Error(t, err)
}
