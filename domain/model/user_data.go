package model

// UserData is the per-user derived state. One record exists for every user in
// the roster and for the director identity once it has logged in.
type UserData struct {
	LikedIDs             map[string]struct{}
	SubscribedChannels   map[string]struct{}
	ChannelNotifications map[string]struct{}
	WatchHistory         []Video
	DownloadedVideos     []Video
	PinnedVideos         []Video
	Notifications        []Notification
}

func NewUserData() *UserData {
	return &UserData{
		LikedIDs:             map[string]struct{}{},
		SubscribedChannels:   map[string]struct{}{},
		ChannelNotifications: map[string]struct{}{},
		WatchHistory:         []Video{},
		DownloadedVideos:     []Video{},
		PinnedVideos:         []Video{},
		Notifications:        []Notification{},
	}
}
