package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIPv4_LiteralIPv4(t *testing.T) {
	ip, err := resolveIPv4(context.Background(), "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", ip)
}

func TestResolveIPv4_LiteralIPv6Rechazado(t *testing.T) {
	_, err := resolveIPv4(context.Background(), "::1")
	assert.Error(t, err)
}
