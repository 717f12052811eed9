package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/model"
)

func TestAccountAndResetFlow(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.auth.Register(ctx, "alice", "a@b.co", "Passw0rd!", "Passw0rd!")
	require.NoError(t, err)

	_, err = e.auth.Register(ctx, "alice", "other@b.co", "Passw0rd!", "Passw0rd!")
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = e.auth.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrAuthentication)

	ticket, err := e.reset.RequestReset(ctx, "a@b.co")
	require.NoError(t, err)
	require.Len(t, e.notifier.tokens, 1, "email attempted")
	assert.Equal(t, 1, e.tokenRows(t))

	_, err = e.reset.Verify(ctx, ticket, "wrong-token")
	assert.ErrorIs(t, err, ErrTokenMismatch)
	state, err := e.reset.State(ctx, "alice", "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, model.TokenStateActive, state)

	verified, err := e.reset.Verify(ctx, ticket, e.notifier.lastToken(t))
	require.NoError(t, err)
	require.NoError(t, e.reset.CompleteReset(ctx, verified, "Fresh-Passw0rd", "Fresh-Passw0rd"))

	assert.Zero(t, e.tokenRows(t))

	user, err := e.auth.Login(ctx, "alice", "Fresh-Passw0rd")
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", user.Email)
}
