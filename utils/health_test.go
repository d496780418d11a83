package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckHealth(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("down") }

	status := CheckHealth(context.Background(), ok, down)
	assert.True(t, status.Mongo)
	assert.False(t, status.Redis)
	assert.Equal(t, status, GetHealthStatus())
}
