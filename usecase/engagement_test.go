package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-tube/domain/model"
	"nexus-tube/usecase"
)

func likesOf(t *testing.T, s *usecase.Store, id string) int {
	t.Helper()
	v, err := s.Video(id)
	require.NoError(t, err)
	return v.Likes
}

func TestToggleLike_RoundTrip(t *testing.T) {
	for _, user := range []string{"u1", "u2"} {
		for _, id := range []string{"v10", "v11", "v20", "s1"} {
			s := loggedIn(t, user)
			before := likesOf(t, s, id)

			s.ToggleLike(id, model.TargetVideo)
			assert.True(t, s.IsLiked(id))
			assert.Equal(t, before+1, likesOf(t, s, id))

			s.ToggleLike(id, model.TargetVideo)
			assert.False(t, s.IsLiked(id))
			assert.Equal(t, before, likesOf(t, s, id))
		}
	}
}

func TestToggleLike_PerUser(t *testing.T) {
	s := loggedIn(t, "u1")
	s.ToggleLike("v20", model.TargetVideo)

	_, err := s.SwitchUser("u2")
	require.NoError(t, err)
	assert.False(t, s.IsLiked("v20"))

	s.ToggleLike("v20", model.TargetVideo)
	assert.Equal(t, 902, likesOf(t, s, "v20"))
	assert.Equal(t, []string{"v20"}, videoIDs(s.LikedVideos()))
}

func TestToggleLike_PostsAndComments(t *testing.T) {
	s := loggedIn(t, "u1")

	s.ToggleLike("p2", model.TargetPost)
	s.ToggleLike("c1", model.TargetComment)

	p, err := s.Post("p2")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Likes)
	assert.Equal(t, 3, s.GetComments("v10")[0].Likes)
	assert.Empty(t, s.LikedVideos())
}

func TestToggleLike_FloorsAtZero(t *testing.T) {
	seed := testSeed()
	seed.UserData["u1"].LikedIDs["v11"] = struct{}{}
	s := storeFromSeed(t, seed)
	_, err := s.Login("u1")
	require.NoError(t, err)

	s.ToggleLike("v11", model.TargetVideo)

	assert.False(t, s.IsLiked("v11"))
	assert.Equal(t, 0, likesOf(t, s, "v11"))
}

func TestToggleLike_UnknownTarget(t *testing.T) {
	s := loggedIn(t, "u1")
	called := false
	s.Subscribe(func(model.StoreEvent) { called = true })

	s.ToggleLike("ghost", model.TargetVideo)
	s.ToggleLike("v10", model.TargetPost)

	assert.False(t, s.IsLiked("ghost"))
	assert.False(t, s.IsLiked("v10"))
	assert.False(t, called)
}

func TestToggleSubscribe_CascadesNotifications(t *testing.T) {
	s := loggedIn(t, "u2")

	s.ToggleSubscribe("Alice")
	assert.True(t, s.IsSubscribed("Alice"))
	assert.True(t, s.GetChannelNotificationState("Alice"))

	s.ToggleSubscribe("Alice")
	assert.False(t, s.IsSubscribed("Alice"))
	assert.False(t, s.GetChannelNotificationState("Alice"))
}

func TestToggleChannelNotification_Independent(t *testing.T) {
	s := loggedIn(t, "u1")

	s.ToggleChannelNotification("MrBeast")
	assert.False(t, s.GetChannelNotificationState("MrBeast"))
	assert.True(t, s.IsSubscribed("MrBeast"))

	s.ToggleChannelNotification("MrBeast")
	assert.True(t, s.GetChannelNotificationState("MrBeast"))

	s.ToggleSubscribe("MrBeast")
	assert.False(t, s.GetChannelNotificationState("MrBeast"))
	assert.Empty(t, s.SubscribedChannels())
}

func TestTogglePin(t *testing.T) {
	s := loggedIn(t, "u1")
	v10, err := s.Video("v10")
	require.NoError(t, err)
	v20, err := s.Video("v20")
	require.NoError(t, err)

	s.TogglePin(v10)
	s.TogglePin(v20)
	assert.Equal(t, []string{"v20", "v10"}, videoIDs(s.PinnedVideos()))
	assert.True(t, s.IsPinned("v10"))

	s.TogglePin(v10)
	assert.Equal(t, []string{"v20"}, videoIDs(s.PinnedVideos()))
	assert.False(t, s.IsPinned("v10"))
}
