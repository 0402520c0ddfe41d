package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nexus-tube/domain/dto"
	"nexus-tube/domain/model"
	"nexus-tube/domain/repository"
	"nexus-tube/infrastructure/cache"
	"nexus-tube/infrastructure/pubsub"
	"nexus-tube/infrastructure/utils"
	httpHandler "nexus-tube/interfaces/http"
	"nexus-tube/usecase"
)

const secret = "handler-secret"

func testStore(t *testing.T) *usecase.Store {
	t.Helper()
	seq := 0
	return usecase.NewStore(&model.Seed{
		Users: []model.User{
			{ID: "u1", Name: "Alice", Handle: "alice", Phone: "111"},
			{ID: "u2", Name: "Bob", Handle: "bob", Phone: "222"},
		},
		Videos: []model.Video{
			{ID: "v1", Title: "Speedrun", ChannelName: "Alice", Type: model.VideoTypeLong, Likes: 1},
			{ID: "v2", Title: "Vlog", ChannelName: "Bob", Type: model.VideoTypeLong},
		},
		Comments: []model.Comment{
			{ID: "c1", TargetID: "v1", TargetType: model.TargetVideo, Content: "nice", AuthorName: "Bob"},
		},
		Messages: []model.Message{
			{ID: "m1", SenderID: "u2", ReceiverID: usecase.DirectorID, Content: "help", Timestamp: 1},
		},
	}).WithIDGenerator(func(prefix string) string {
		seq++
		return fmt.Sprintf("%s%d", prefix, seq)
	})
}

func engine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", c.GetHeader("X-User"))
		c.Next()
	})
	return r
}

func do(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User", "u1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decode unwraps the dto.Res envelope into out
func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) dto.Res {
	t.Helper()
	var res struct {
		dto.Res
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	if out != nil {
		require.NoError(t, json.Unmarshal(res.Data, out))
	}
	return res.Res
}

type sessionData struct {
	User          model.User `json:"user"`
	Authenticated bool       `json:"authenticated"`
	Token         string     `json:"token"`
}

func sessionRouter(t *testing.T, store *usecase.Store) *gin.Engine {
	t.Helper()
	gate, err := usecase.NewDirectorGate("")
	require.NoError(t, err)
	h := httpHandler.NewSessionHandler(store, gate, secret)
	r := engine()
	r.GET("/session", h.Current)
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.POST("/director", h.DirectorLogin)
	r.POST("/logout", h.Logout)
	r.POST("/switch", h.Switch)
	r.PATCH("/profile", h.UpdateProfile)
	r.POST("/users", h.AddUser)
	return r
}

func TestSessionHandler_Login(t *testing.T) {
	store := testStore(t)
	r := sessionRouter(t, store)

	w := do(r, http.MethodPost, "/login", dto.LoginRequest{UserID: "u2"})

	require.Equal(t, http.StatusOK, w.Code)
	var data sessionData
	decode(t, w, &data)
	assert.Equal(t, "Bob", data.User.Name)
	assert.True(t, data.Authenticated)
	claims, err := utils.ParseSessionToken(data.Token, secret)
	require.NoError(t, err)
	assert.Equal(t, "u2", claims.UserID)
	assert.False(t, claims.Director)
}

func TestSessionHandler_LoginErrors(t *testing.T) {
	r := sessionRouter(t, testStore(t))

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/login", map[string]string{}).Code)
	w := do(r, http.MethodPost, "/login", dto.LoginRequest{UserID: "nobody"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	res := decode(t, w, nil)
	assert.Equal(t, "404", res.ResponseCode)
}

func TestSessionHandler_DirectorLogin(t *testing.T) {
	store := testStore(t)
	r := sessionRouter(t, store)

	w := do(r, http.MethodPost, "/director", dto.DirectorLoginRequest{Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, store.IsAuthenticated())

	w = do(r, http.MethodPost, "/director", dto.DirectorLoginRequest{Password: usecase.DefaultDirectorPassword})
	require.Equal(t, http.StatusOK, w.Code)
	var data sessionData
	decode(t, w, &data)
	assert.Equal(t, usecase.DirectorID, data.User.ID)
	claims, err := utils.ParseSessionToken(data.Token, secret)
	require.NoError(t, err)
	assert.True(t, claims.Director)
}

func TestSessionHandler_SignupConflict(t *testing.T) {
	store := testStore(t)
	r := sessionRouter(t, store)

	w := do(r, http.MethodPost, "/signup", dto.SignupRequest{Name: "Carol", Handle: "carol", Phone: "333"})
	require.Equal(t, http.StatusCreated, w.Code)
	var data sessionData
	decode(t, w, &data)
	assert.Equal(t, "Carol", data.User.Name)
	assert.NotEmpty(t, data.Token)

	w = do(r, http.MethodPost, "/signup", dto.SignupRequest{Name: "Dave", Handle: "carol", Phone: "444"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSessionHandler_SwitchAndLogout(t *testing.T) {
	store := testStore(t)
	r := sessionRouter(t, store)
	_, err := store.Login("u1")
	require.NoError(t, err)

	w := do(r, http.MethodPost, "/switch", dto.LoginRequest{UserID: "u2"})
	require.Equal(t, http.StatusOK, w.Code)
	var data sessionData
	decode(t, w, &data)
	assert.Equal(t, "u2", store.ActiveUser().ID)
	assert.NotEmpty(t, data.Token)

	name := "Bobby"
	w = do(r, http.MethodPatch, "/profile", model.UserPatch{Name: &name})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bobby", store.ActiveUser().Name)

	w = do(r, http.MethodPost, "/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, store.IsAuthenticated())
}

func catalogRouter(store *usecase.Store) *gin.Engine {
	h := httpHandler.NewCatalogHandler(store)
	r := engine()
	r.GET("/videos", h.Videos)
	r.POST("/videos", h.AddVideo)
	r.GET("/videos/:id", h.Video)
	r.DELETE("/videos/:id", h.DeleteVideo)
	r.POST("/posts", h.AddPost)
	r.POST("/comments", h.AddComment)
	r.GET("/comments/:targetId", h.Comments)
	return r
}

func TestCatalogHandler(t *testing.T) {
	store := testStore(t)
	_, err := store.Login("u1")
	require.NoError(t, err)
	r := catalogRouter(store)

	t.Run("AddVideo", func(t *testing.T) {
		w := do(r, http.MethodPost, "/videos", dto.AddVideoRequest{Title: "Short one", VideoURL: "https://cdn/s.mp4", Type: "short"})
		require.Equal(t, http.StatusCreated, w.Code)
		var v model.Video
		decode(t, w, &v)
		assert.Equal(t, "Alice", v.ChannelName)
		assert.Equal(t, model.VideoTypeShort, v.Type)
		assert.Equal(t, v.ID, store.Videos()[0].ID)
	})

	t.Run("AddVideoMissingTitle", func(t *testing.T) {
		w := do(r, http.MethodPost, "/videos", dto.AddVideoRequest{VideoURL: "https://cdn/s.mp4"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("VideoWithThread", func(t *testing.T) {
		w := do(r, http.MethodGet, "/videos/v1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var data struct {
			Video        model.Video     `json:"video"`
			Comments     []model.Comment `json:"comments"`
			CommentCount int             `json:"commentCount"`
		}
		decode(t, w, &data)
		assert.Equal(t, "Speedrun", data.Video.Title)
		assert.Equal(t, 1, data.CommentCount)
		require.Len(t, data.Comments, 1)
	})

	t.Run("UnknownVideo", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/videos/nope", nil).Code)
		assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/videos/nope", nil).Code)
	})

	t.Run("CommentOnUnknownTarget", func(t *testing.T) {
		w := do(r, http.MethodPost, "/comments", dto.AddCommentRequest{TargetID: "nope", TargetType: "video", Content: "hi"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("CommentOnComment", func(t *testing.T) {
		w := do(r, http.MethodPost, "/comments", dto.AddCommentRequest{TargetID: "c1", TargetType: "comment", Content: "hi"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Comment", func(t *testing.T) {
		w := do(r, http.MethodPost, "/comments", dto.AddCommentRequest{TargetID: "v2", TargetType: "video", Content: "first"})
		require.Equal(t, http.StatusCreated, w.Code)
		var comments []model.Comment
		decode(t, do(r, http.MethodGet, "/comments/v2", nil), &comments)
		require.Len(t, comments, 1)
		assert.Equal(t, "Alice", comments[0].AuthorName)
	})
}

func TestEngagementHandler(t *testing.T) {
	store := testStore(t)
	_, err := store.Login("u1")
	require.NoError(t, err)
	h := httpHandler.NewEngagementHandler(store, store)
	r := engine()
	r.POST("/likes", h.ToggleLike)
	r.POST("/subscriptions", h.ToggleSubscribe)
	r.POST("/pins", h.TogglePin)
	r.GET("/state", h.State)

	var liked struct {
		Liked bool `json:"liked"`
	}
	decode(t, do(r, http.MethodPost, "/likes", dto.ToggleLikeRequest{ID: "v2", Type: "video"}), &liked)
	assert.True(t, liked.Liked)
	v, err := store.Video("v2")
	require.NoError(t, err)
	assert.Equal(t, 1, v.Likes)

	var channel struct {
		Subscribed bool `json:"subscribed"`
	}
	decode(t, do(r, http.MethodPost, "/subscriptions", dto.ChannelRequest{Channel: "Bob"}), &channel)
	assert.True(t, channel.Subscribed)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/pins", dto.VideoRefRequest{VideoID: "nope"}).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/pins", dto.VideoRefRequest{VideoID: "v1"}).Code)

	var state struct {
		Channel       string `json:"channel"`
		Liked         bool   `json:"liked"`
		Pinned        bool   `json:"pinned"`
		Subscribed    bool   `json:"subscribed"`
		Notifications bool   `json:"notifications"`
	}
	decode(t, do(r, http.MethodGet, "/state?id=v1&channel=Bob", nil), &state)
	assert.Equal(t, "Bob", state.Channel)
	assert.False(t, state.Liked)
	assert.True(t, state.Pinned)
	assert.True(t, state.Subscribed)
	assert.True(t, state.Notifications)
}

func TestLibraryHandler(t *testing.T) {
	store := testStore(t)
	_, err := store.Login("u1")
	require.NoError(t, err)
	h := httpHandler.NewLibraryHandler(store, store)
	r := engine()
	r.POST("/history", h.AddToHistory)
	r.POST("/downloads", h.Download)

	do(r, http.MethodPost, "/history", dto.VideoRefRequest{VideoID: "v1"})
	do(r, http.MethodPost, "/history", dto.VideoRefRequest{VideoID: "v2"})
	var history []model.Video
	decode(t, do(r, http.MethodPost, "/history", dto.VideoRefRequest{VideoID: "v1"}), &history)
	assert.Equal(t, []string{"v1", "v2"}, []string{history[0].ID, history[1].ID})

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/downloads", dto.VideoRefRequest{VideoID: "nope"}).Code)
	var downloads []model.Video
	decode(t, do(r, http.MethodPost, "/downloads", dto.VideoRefRequest{VideoID: "v2"}), &downloads)
	require.Len(t, downloads, 1)
	assert.Equal(t, "v2", downloads[0].ID)
}

func moderationRouter(store *usecase.Store) *gin.Engine {
	h := httpHandler.NewModerationHandler(store, store)
	r := engine()
	r.POST("/reports", h.AddReport)
	r.GET("/reports", h.Reports)
	r.DELETE("/reports/:id", h.Dismiss)
	r.POST("/reports/:id/action", h.TakeAction)
	return r
}

func TestModerationHandler_DeleteVideo(t *testing.T) {
	store := testStore(t)
	_, err := store.Login("u2")
	require.NoError(t, err)
	r := moderationRouter(store)

	w := do(r, http.MethodPost, "/reports", dto.AddReportRequest{Type: "video", TargetID: "v1", TargetName: "Speedrun", Reason: "spam"})
	require.Equal(t, http.StatusCreated, w.Code)
	var report model.Report
	decode(t, w, &report)
	assert.Equal(t, "Bob", report.ReportedBy)

	w = do(r, http.MethodPost, "/reports/"+report.ID+"/action", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var action dto.ModerationAction
	decode(t, w, &action)
	assert.Equal(t, httpHandler.ActionDeleteVideo, action.Action)
	_, err = store.Video("v1")
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Empty(t, store.Reports())
}

func TestModerationHandler_DanglingReport(t *testing.T) {
	store := testStore(t)
	_, err := store.Login("u2")
	require.NoError(t, err)
	r := moderationRouter(store)
	report, err := store.AddReport(model.ReportVideo, "v1", "Speedrun", "spam")
	require.NoError(t, err)
	require.NoError(t, store.DeleteVideo("v1"))

	var queue []struct {
		ID          string `json:"id"`
		TargetFound bool   `json:"targetFound"`
	}
	decode(t, do(r, http.MethodGet, "/reports", nil), &queue)
	require.Len(t, queue, 1)
	assert.False(t, queue[0].TargetFound)

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/reports/"+report.ID+"/action", nil).Code)
	assert.Empty(t, store.Reports())
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/reports/"+report.ID+"/action", nil).Code)
}

func TestModerationHandler_BanUser(t *testing.T) {
	store := testStore(t)
	_, err := store.Login("u1")
	require.NoError(t, err)
	r := moderationRouter(store)
	report, err := store.AddReport(model.ReportUser, "u2", "Bob", "abuse")
	require.NoError(t, err)

	w := do(r, http.MethodPost, "/reports/"+report.ID+"/action", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var action dto.ModerationAction
	decode(t, w, &action)
	assert.Equal(t, httpHandler.ActionBanUser, action.Action)
	assert.Equal(t, "Bob", action.Target)
	_, err = store.User("u2")
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = store.Video("v2")
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Empty(t, store.Reports())
}

func TestMessageHandler_ConversationMarksRead(t *testing.T) {
	store := testStore(t)
	store.LoginAsDirector()
	h := httpHandler.NewMessageHandler(store)
	r := engine()
	r.POST("/messages", h.Send)
	r.GET("/messages", h.Inbox)
	r.GET("/messages/:userId", h.Conversation)

	var inbox []model.InboxEntry
	decode(t, do(r, http.MethodGet, "/messages", nil), &inbox)
	require.Len(t, inbox, 1)
	assert.Equal(t, 1, inbox[0].UnreadCount)

	var thread []model.Message
	decode(t, do(r, http.MethodGet, "/messages/u2", nil), &thread)
	require.Len(t, thread, 1)
	assert.Equal(t, "help", thread[0].Content)

	decode(t, do(r, http.MethodGet, "/messages", nil), &inbox)
	assert.Equal(t, 0, inbox[0].UnreadCount)

	assert.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/messages", dto.SendMessageRequest{ReceiverID: "u2", Content: "on it"}).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/messages", dto.SendMessageRequest{ReceiverID: "ghost", Content: "hi"}).Code)
}

func TestNotificationHandler(t *testing.T) {
	store := testStore(t)
	_, err := store.Login("u1")
	require.NoError(t, err)
	feed := pubsub.NewNotificationFeed(nil, "notifications", "sub", store)
	h := httpHandler.NewNotificationHandler(store, feed)
	r := engine()
	r.GET("/notifications", h.List)
	r.POST("/notifications/:id/read", h.MarkRead)
	r.POST("/admin/notifications", h.Publish)

	w := do(r, http.MethodPost, "/admin/notifications", pubsub.NotificationPayload{UserID: "u1", Text: "New upload", Type: "video", TargetID: "v2"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/admin/notifications", pubsub.NotificationPayload{UserID: "u1", Text: "x", Type: "bogus"}).Code)

	var list struct {
		Notifications []model.Notification `json:"notifications"`
		Unread        int                  `json:"unread"`
	}
	decode(t, do(r, http.MethodGet, "/notifications", nil), &list)
	require.Len(t, list.Notifications, 1)
	assert.Equal(t, 1, list.Unread)

	var after struct {
		Unread int `json:"unread"`
	}
	decode(t, do(r, http.MethodPost, "/notifications/"+list.Notifications[0].ID+"/read", nil), &after)
	assert.Equal(t, 0, after.Unread)
}

type MockAssist struct {
	mock.Mock
}

func (m *MockAssist) GenerateDescription(ctx context.Context, title string) (string, error) {
	args := m.Called(ctx, title)
	return args.String(0), args.Error(1)
}

func (m *MockAssist) PolishStatus(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

func (m *MockAssist) GenerateVideo(ctx context.Context, prompt string, opts repository.VideoOptions) (string, error) {
	args := m.Called(ctx, prompt, opts)
	return args.String(0), args.Error(1)
}

func TestAssistHandler(t *testing.T) {
	assist := new(MockAssist)
	assist.On("GenerateDescription", mock.Anything, "Speedrun").Return("Fast #run", nil).Once()
	assist.On("GenerateVideo", mock.Anything, "cat", repository.VideoOptions{Resolution: "720p"}).Return("", model.ErrGenerationInProgress).Once()
	assist.On("GenerateVideo", mock.Anything, "dog", repository.VideoOptions{}).Return("", model.ErrAssistUnavailable).Once()
	h := httpHandler.NewAssistHandler(assist)
	r := engine()
	r.POST("/description", h.Description)
	r.POST("/video", h.GenerateVideo)

	var res dto.AssistRes
	decode(t, do(r, http.MethodPost, "/description", dto.DescriptionRequest{Title: "Speedrun"}), &res)
	assert.Equal(t, "Fast #run", res.Text)

	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodPost, "/video", dto.GenerateVideoRequest{Prompt: "cat", Resolution: "720p"}).Code)
	assert.Equal(t, http.StatusBadGateway, do(r, http.MethodPost, "/video", dto.GenerateVideoRequest{Prompt: "dog"}).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/video", dto.GenerateVideoRequest{}).Code)
	assist.AssertExpectations(t)
}

func TestToastHandler(t *testing.T) {
	toasts := cache.NewToastCache(nil)
	require.NoError(t, toasts.Push(context.Background(), "u1", "Report submitted successfully"))
	require.NoError(t, toasts.Push(context.Background(), "u2", "Not yours"))
	r := engine()
	r.GET("/toast", httpHandler.NewToastHandler(toasts).Active)

	var data struct {
		Toasts []string `json:"toasts"`
		TTLMs  int64    `json:"ttlMs"`
	}
	decode(t, do(r, http.MethodGet, "/toast", nil), &data)

	assert.Equal(t, []string{"Report submitted successfully"}, data.Toasts)
	assert.Equal(t, int64(3000), data.TTLMs)
}
