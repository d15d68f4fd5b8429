package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/merchkit-io/shopapi-client/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticTokenManager_GetToken(t *testing.T) {
	t.Parallel()

	manager := auth.NewStaticTokenManager("shpat-test-token")

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "shpat-test-token", token)
}

func TestStaticTokenManager_RefreshToken(t *testing.T) {
	t.Parallel()

	manager := auth.NewStaticTokenManager("shpat-test-token")

	err := manager.RefreshToken(context.Background())
	require.ErrorIs(t, err, auth.ErrStaticTokenCannotRefresh)
}

func TestStaticTokenManager_SetToken(t *testing.T) {
	t.Parallel()

	manager := auth.NewStaticTokenManager("old-token")
	manager.SetToken("new-token", time.Now().Add(time.Hour))

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-token", token)
}
