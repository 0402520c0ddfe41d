package usecase

import (
	"sort"

	"nexus-tube/domain/model"
)

type IEngagementUsecase interface {
	ToggleLike(id string, targetType model.TargetType)
	ToggleSubscribe(channel string)
	ToggleChannelNotification(channel string)
	TogglePin(video model.Video)
	IsLiked(id string) bool
	IsSubscribed(channel string) bool
	GetChannelNotificationState(channel string) bool
	IsPinned(videoID string) bool
	LikedVideos() []model.Video
	SubscribedChannels() []string
	PinnedVideos() []model.Video
}

// ToggleLike flips the active user's like on a video, post or comment and
// moves the target's counter by one in the same direction, never below zero.
// Unknown targets are ignored.
func (s *Store) ToggleLike(id string, targetType model.TargetType) {
	_ = s.apply(func() ([]model.StoreEvent, error) {
		var likes *int
		switch targetType {
		case model.TargetVideo:
			if i := s.videoIndex(id); i >= 0 {
				likes = &s.videos[i].Likes
			}
		case model.TargetPost:
			if i := s.postIndex(id); i >= 0 {
				likes = &s.posts[i].Likes
			}
		case model.TargetComment:
			if i := s.commentIndex(id); i >= 0 {
				likes = &s.comments[i].Likes
			}
		}
		if likes == nil {
			return nil, nil
		}
		liked := s.current().LikedIDs
		if _, ok := liked[id]; ok {
			delete(liked, id)
			*likes = max(0, *likes-1)
		} else {
			liked[id] = struct{}{}
			*likes++
		}
		return []model.StoreEvent{s.event(model.EventLikeToggled, id, "")}, nil
	})
}

// ToggleSubscribe flips the subscription to channel. Subscribing turns channel
// notifications on, unsubscribing turns them off.
func (s *Store) ToggleSubscribe(channel string) {
	if channel == "" {
		return
	}
	_ = s.apply(func() ([]model.StoreEvent, error) {
		d := s.current()
		msg := "Subscribed to " + channel
		if _, ok := d.SubscribedChannels[channel]; ok {
			delete(d.SubscribedChannels, channel)
			delete(d.ChannelNotifications, channel)
			msg = "Unsubscribed from " + channel
		} else {
			d.SubscribedChannels[channel] = struct{}{}
			d.ChannelNotifications[channel] = struct{}{}
		}
		return []model.StoreEvent{s.event(model.EventSubscription, channel, msg)}, nil
	})
}

// ToggleChannelNotification flips the notification flag for channel alone;
// subscription state is not consulted.
func (s *Store) ToggleChannelNotification(channel string) {
	if channel == "" {
		return
	}
	_ = s.apply(func() ([]model.StoreEvent, error) {
		d := s.current()
		msg := "Notifications turned on for " + channel
		if _, ok := d.ChannelNotifications[channel]; ok {
			delete(d.ChannelNotifications, channel)
			msg = "Notifications turned off for " + channel
		} else {
			d.ChannelNotifications[channel] = struct{}{}
		}
		return []model.StoreEvent{s.event(model.EventChannelNotify, channel, msg)}, nil
	})
}

// TogglePin prepends video to the pinned list, or removes it by id when it is
// already pinned.
func (s *Store) TogglePin(video model.Video) {
	if video.ID == "" {
		return
	}
	_ = s.apply(func() ([]model.StoreEvent, error) {
		d := s.current()
		if containsVideo(d.PinnedVideos, video.ID) {
			d.PinnedVideos = withoutVideo(d.PinnedVideos, video.ID)
			return []model.StoreEvent{s.event(model.EventPinToggled, video.ID, "Removed from Pinned Videos")}, nil
		}
		d.PinnedVideos = append([]model.Video{video}, d.PinnedVideos...)
		return []model.StoreEvent{s.event(model.EventPinToggled, video.ID, "Added to Pinned Videos")}, nil
	})
}

func (s *Store) IsLiked(id string) bool {
	var ok bool
	s.read(func() { _, ok = s.current().LikedIDs[id] })
	return ok
}

func (s *Store) IsSubscribed(channel string) bool {
	var ok bool
	s.read(func() { _, ok = s.current().SubscribedChannels[channel] })
	return ok
}

func (s *Store) GetChannelNotificationState(channel string) bool {
	var ok bool
	s.read(func() { _, ok = s.current().ChannelNotifications[channel] })
	return ok
}

func (s *Store) IsPinned(videoID string) bool {
	var ok bool
	s.read(func() { ok = containsVideo(s.current().PinnedVideos, videoID) })
	return ok
}

// LikedVideos returns the catalog videos the active user likes, in catalog order
func (s *Store) LikedVideos() []model.Video {
	var out []model.Video
	s.read(func() {
		liked := s.current().LikedIDs
		out = filter(s.videos, func(v model.Video) bool {
			_, ok := liked[v.ID]
			return ok
		})
	})
	return out
}

// SubscribedChannels returns the active user's subscriptions sorted by name
func (s *Store) SubscribedChannels() []string {
	var out []string
	s.read(func() {
		out = make([]string, 0, len(s.current().SubscribedChannels))
		for c := range s.current().SubscribedChannels {
			out = append(out, c)
		}
	})
	sort.Strings(out)
	return out
}

func (s *Store) PinnedVideos() []model.Video {
	var out []model.Video
	s.read(func() { out = append([]model.Video{}, s.current().PinnedVideos...) })
	return out
}

func containsVideo(videos []model.Video, id string) bool {
	for _, v := range videos {
		if v.ID == id {
			return true
		}
	}
	return false
}

func withoutVideo(videos []model.Video, id string) []model.Video {
	return filter(videos, func(v model.Video) bool { return v.ID != id })
}
