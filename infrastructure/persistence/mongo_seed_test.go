package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-tube/domain/model"
)

func TestSeedFromDocs(t *testing.T) {
	seed := seedFromDocs(
		[]userDoc{
			{ID: "u1", Name: "Alice", Subscriptions: []string{"Bob", "MrBeast"}, Notify: []string{"Bob", "Ghost"}},
			{ID: "u2", Name: "Bob"},
		},
		[]videoDoc{{ID: "v1", Title: "Intro", ChannelName: "Alice", Type: "short", Likes: 4}},
		[]postDoc{{ID: "p1", Content: "hi", AuthorName: "Alice", Comments: 2}},
		[]commentDoc{{ID: "c1", TargetID: "p1", TargetType: "post", Content: "yo"}},
		[]messageDoc{{ID: "m1", SenderID: "u1", ReceiverID: "u2", Timestamp: 42, Read: true}},
	)

	require.Len(t, seed.Users, 2)
	assert.Equal(t, model.VideoTypeShort, seed.Videos[0].Type)
	assert.Equal(t, 2, seed.Posts[0].Comments)
	assert.Equal(t, model.TargetPost, seed.Comments[0].TargetType)
	assert.Equal(t, int64(42), seed.Messages[0].Timestamp)

	require.Contains(t, seed.UserData, "u1")
	assert.NotContains(t, seed.UserData, "u2")
	assert.Len(t, seed.UserData["u1"].SubscribedChannels, 2)
	assert.Contains(t, seed.UserData["u1"].ChannelNotifications, "Bob")
	assert.NotContains(t, seed.UserData["u1"].ChannelNotifications, "Ghost")
}

func TestMongoSeed_NilClient(t *testing.T) {
	_, err := NewMongoSeed(nil, "nexus_tube").Load(context.Background())
	assert.Error(t, err)
}
