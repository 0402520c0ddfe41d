package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-tube/infrastructure/persistence"
	"nexus-tube/usecase"
)

func TestStaticSeed_Load(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	seed, err := persistence.NewStaticSeed(func() time.Time { return now }).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, seed.Users, 2)
	assert.Equal(t, "u1", seed.Users[0].ID)
	assert.Len(t, seed.Videos, 5)
	assert.Len(t, seed.Posts, 2)
	assert.Len(t, seed.Comments, 2)
	require.Len(t, seed.Messages, 3)
	assert.Equal(t, now.UnixMilli()-500_000, seed.Messages[2].Timestamp)
	assert.Contains(t, seed.UserData["u1"].SubscribedChannels, "Urban Explorer")

	// the director inbox starts with Vlog Star's unread message on top
	store := usecase.NewStore(seed)
	store.LoginAsDirector()
	inbox := store.Inbox()
	require.Len(t, inbox, 2)
	assert.Equal(t, "u2", inbox[0].User.ID)
	assert.Equal(t, 1, inbox[0].UnreadCount)
}
