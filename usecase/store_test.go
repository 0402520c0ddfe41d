package usecase_test

import (
	"fmt"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-tube/domain/model"
	"nexus-tube/usecase"
)

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func testSeed() *model.Seed {
	return &model.Seed{
		Users: []model.User{
			{ID: "u1", Name: "Alice", Handle: "alice", Phone: "111", Avatar: "a.png"},
			{ID: "u2", Name: "Bob", Handle: "@bob_official", Phone: "222", Avatar: "b.png"},
		},
		Videos: []model.Video{
			{ID: "v10", Title: "Alice Gaming Night", Description: "Co-op run", ChannelName: "Alice", Views: "1.2M", UploadedAt: "2 days ago", Type: model.VideoTypeLong, Likes: 10},
			{ID: "v11", Title: "Alice Tech Review", Description: "New laptop", ChannelName: "Alice", Views: "500K", UploadedAt: "1 hour ago", Type: model.VideoTypeLong, Likes: 0},
			{ID: "v20", Title: "Giving away an island", Description: "Biggest one yet", ChannelName: "MrBeast", ChannelAvatar: "mb.png", Views: "12M", UploadedAt: "1 week ago", Type: model.VideoTypeLong, Likes: 900},
			{ID: "s1", Title: "Morning routine", Description: "Quick one", ChannelName: "Bob", ChannelAvatar: "b.png", Views: "3K", UploadedAt: "3 hours ago", Type: model.VideoTypeShort, Likes: 5},
		},
		Posts: []model.Post{
			{ID: "p1", Content: "New video tomorrow", AuthorName: "Alice", Likes: 3, Comments: 7},
			{ID: "p2", Content: "Hello there", AuthorName: "Bob", Likes: 1},
		},
		Comments: []model.Comment{
			{ID: "c1", TargetID: "v10", TargetType: model.TargetVideo, Content: "Great run", AuthorName: "Bob", Likes: 2},
			{ID: "c2", TargetID: "v20", TargetType: model.TargetVideo, Content: "Wow", AuthorName: "Alice"},
		},
		Messages: []model.Message{
			{ID: "m1", SenderID: "u1", ReceiverID: usecase.DirectorID, Content: "Hi admin", Timestamp: 1000, Read: true},
			{ID: "m3", SenderID: "u2", ReceiverID: usecase.DirectorID, Content: "Question", Timestamp: 1500},
			{ID: "m2", SenderID: usecase.DirectorID, ReceiverID: "u1", Content: "Hello Alice", Timestamp: 2000},
		},
		UserData: map[string]*model.UserData{
			"u1": {
				LikedIDs:             map[string]struct{}{},
				SubscribedChannels:   map[string]struct{}{"MrBeast": {}},
				ChannelNotifications: map[string]struct{}{"MrBeast": {}},
			},
		},
	}
}

// newTestStore returns a store over testSeed with sequential ids and a clock
// advancing one second per call.
func newTestStore(t *testing.T) *usecase.Store {
	t.Helper()
	return storeFromSeed(t, testSeed())
}

func storeFromSeed(t *testing.T, seed *model.Seed) *usecase.Store {
	t.Helper()
	seq, tick := 0, 0
	return usecase.NewStore(seed).
		WithIDGenerator(func(prefix string) string {
			seq++
			return fmt.Sprintf("%s%d", prefix, seq)
		}).
		WithClock(func() time.Time {
			tick++
			return baseTime.Add(time.Duration(tick) * time.Second)
		})
}

func loggedIn(t *testing.T, userID string) *usecase.Store {
	t.Helper()
	s := newTestStore(t)
	_, err := s.Login(userID)
	require.NoError(t, err)
	return s
}

func TestNewStore_Defaults(t *testing.T) {
	s := newTestStore(t)

	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, "u1", s.ActiveUser().ID)
	assert.True(t, s.IsSubscribed("MrBeast"))
	assert.Len(t, s.AvailableUsers(), 2)
}

func TestNewStore_EmptySeed(t *testing.T) {
	s := usecase.NewStore(nil)

	assert.Equal(t, "guest", s.ActiveUser().ID)
	assert.Empty(t, s.Videos())
	assert.False(t, s.IsLiked("anything"))
}

func TestStore_SubscribeReceivesEvents(t *testing.T) {
	s := loggedIn(t, "u1")
	var got []model.StoreEvent
	unsubscribe := s.Subscribe(func(ev model.StoreEvent) { got = append(got, ev) })

	s.ToggleSubscribe("Bob")
	require.Len(t, got, 1)
	assert.Equal(t, model.EventSubscription, got[0].Kind)
	assert.Equal(t, "u1", got[0].UserID)
	assert.Equal(t, "Subscribed to Bob", got[0].Message)

	unsubscribe()
	s.ToggleSubscribe("Bob")
	assert.Len(t, got, 1)
}

func TestStore_FailedMutationEmitsNothing(t *testing.T) {
	s := loggedIn(t, "u1")
	called := false
	s.Subscribe(func(model.StoreEvent) { called = true })

	err := s.DeleteVideo("missing")

	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.False(t, called)
}

func TestStore_ListenerMayReadStore(t *testing.T) {
	s := loggedIn(t, "u1")
	var liked bool
	s.Subscribe(func(ev model.StoreEvent) {
		if ev.Kind == model.EventLikeToggled {
			liked = s.IsLiked(ev.SubjectID)
		}
	})

	s.ToggleLike("v20", model.TargetVideo)

	assert.True(t, liked)
}

func TestStore_ListenersSeeApplyOrder(t *testing.T) {
	s := loggedIn(t, "u1")
	var delivered []string
	s.Subscribe(func(ev model.StoreEvent) {
		runtime.Gosched()
		delivered = append(delivered, ev.SubjectID)
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.AddReport(model.ReportVideo, fmt.Sprintf("v%d", i), "clip", "spam")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	reports := s.Reports()
	require.Len(t, delivered, len(reports))
	for i, r := range reports {
		assert.Equal(t, r.ID, delivered[i])
	}
}
