package utils

import (
	"testing"
	"time"

	"classalloc/config"
	"classalloc/models"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorFromToken(t *testing.T) {
	config.AppConfig.JWTSecret = "s3cret"

	token, err := GenerateToken(models.Actor{ID: "a1", Name: "Registrar", Role: models.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	actor, err := ActorFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, models.Actor{ID: "a1", Name: "Registrar", Role: models.RoleAdmin}, actor)

	config.AppConfig.JWTSecret = "rotated"
	_, err = ActorFromToken(token)
	assert.Error(t, err)
}

func TestActorFromToken_RejectsMissingSubject(t *testing.T) {
	config.AppConfig.JWTSecret = "s3cret"
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	token, err := raw.SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = ActorFromToken(token)
	assert.Error(t, err)
}
