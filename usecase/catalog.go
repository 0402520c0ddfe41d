package usecase

import (
	"fmt"
	"strings"

	"nexus-tube/domain/model"
)

type ICatalogUsecase interface {
	AddVideo(video model.Video) (model.Video, error)
	AddPost(post model.Post) (model.Post, error)
	DeleteVideo(id string) error
	DeletePost(id string) error
	DeleteUser(name string) error
	AddComment(targetID string, targetType model.TargetType, content string) (model.Comment, error)
	GetComments(targetID string) []model.Comment
	CommentCount(targetID string, targetType model.TargetType) int
	Videos() []model.Video
	Posts() []model.Post
	Video(id string) (model.Video, error)
	Post(id string) (model.Post, error)
}

// AddVideo prepends video to the catalog. Missing id, type, view count and
// upload label are filled in; channel identity is taken from the caller.
func (s *Store) AddVideo(video model.Video) (model.Video, error) {
	err := s.apply(func() ([]model.StoreEvent, error) {
		if strings.TrimSpace(video.Title) == "" {
			return nil, fmt.Errorf("%w: title is required", model.ErrValidation)
		}
		if video.ChannelName == "" {
			video.ChannelName = s.active.Name
			video.ChannelAvatar = s.active.Avatar
		}
		if video.ID == "" {
			video.ID = s.newID("v_")
		} else if s.videoIndex(video.ID) >= 0 {
			return nil, fmt.Errorf("%w: video %s", model.ErrConflict, video.ID)
		}
		if video.Type != model.VideoTypeShort {
			video.Type = model.VideoTypeLong
		}
		if video.Views == "" {
			video.Views = "0"
		}
		if video.UploadedAt == "" {
			video.UploadedAt = "Just now"
		}
		if video.Likes < 0 {
			video.Likes = 0
		}
		s.videos = append([]model.Video{video}, s.videos...)
		return []model.StoreEvent{s.event(model.EventVideoAdded, video.ID, "")}, nil
	})
	if err != nil {
		return model.Video{}, err
	}
	return video, nil
}

// AddPost prepends post to the community feed
func (s *Store) AddPost(post model.Post) (model.Post, error) {
	err := s.apply(func() ([]model.StoreEvent, error) {
		if strings.TrimSpace(post.Content) == "" && post.ImageURL == "" {
			return nil, fmt.Errorf("%w: post needs content or an image", model.ErrValidation)
		}
		if post.AuthorName == "" {
			post.AuthorName = s.active.Name
			post.AuthorAvatar = s.active.Avatar
		}
		if post.ID == "" {
			post.ID = s.newID("p_")
		} else if s.postIndex(post.ID) >= 0 {
			return nil, fmt.Errorf("%w: post %s", model.ErrConflict, post.ID)
		}
		if post.Timestamp == "" {
			post.Timestamp = "Just now"
		}
		s.posts = append([]model.Post{post}, s.posts...)
		return []model.StoreEvent{s.event(model.EventPostAdded, post.ID, "")}, nil
	})
	if err != nil {
		return model.Post{}, err
	}
	return post, nil
}

func (s *Store) DeleteVideo(id string) error {
	return s.apply(func() ([]model.StoreEvent, error) {
		i := s.videoIndex(id)
		if i < 0 {
			return nil, fmt.Errorf("%w: video %s", model.ErrNotFound, id)
		}
		s.videos = append(s.videos[:i:i], s.videos[i+1:]...)
		return []model.StoreEvent{s.event(model.EventVideoDeleted, id, "Video deleted permanently")}, nil
	})
}

func (s *Store) DeletePost(id string) error {
	return s.apply(func() ([]model.StoreEvent, error) {
		i := s.postIndex(id)
		if i < 0 {
			return nil, fmt.Errorf("%w: post %s", model.ErrNotFound, id)
		}
		s.posts = append(s.posts[:i:i], s.posts[i+1:]...)
		return []model.StoreEvent{s.event(model.EventPostDeleted, id, "")}, nil
	})
}

// DeleteUser bans a channel by name: the matching roster users, every video,
// post and comment published under the name, and every report naming it as
// target or reporter are removed. Likes and subscriptions other users hold on
// that content are left as they are. When the active user is banned the
// session is logged out.
func (s *Store) DeleteUser(name string) error {
	return s.apply(func() ([]model.StoreEvent, error) {
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", model.ErrValidation)
		}
		s.users = filter(s.users, func(u model.User) bool { return u.Name != name })
		s.videos = filter(s.videos, func(v model.Video) bool { return v.ChannelName != name })
		s.posts = filter(s.posts, func(p model.Post) bool { return p.AuthorName != name })
		s.comments = filter(s.comments, func(c model.Comment) bool { return c.AuthorName != name })
		s.reports = filter(s.reports, func(r model.Report) bool { return r.TargetName != name && r.ReportedBy != name })

		events := []model.StoreEvent{s.event(model.EventUserDeleted, name, fmt.Sprintf("Channel %q banned and content wiped.", name))}
		if s.active.Name == name {
			s.logout()
			events = append(events, s.event(model.EventSessionChanged, "", "Logged out successfully"))
		}
		return events, nil
	})
}

// AddComment prepends a comment by the active user. Commenting on a post also
// bumps the post's comment counter; video comment counts are always derived.
func (s *Store) AddComment(targetID string, targetType model.TargetType, content string) (model.Comment, error) {
	var created model.Comment
	err := s.apply(func() ([]model.StoreEvent, error) {
		if strings.TrimSpace(content) == "" {
			return nil, fmt.Errorf("%w: comment is empty", model.ErrValidation)
		}
		postAt := -1
		switch targetType {
		case model.TargetVideo:
			if s.videoIndex(targetID) < 0 {
				return nil, fmt.Errorf("%w: video %s", model.ErrNotFound, targetID)
			}
		case model.TargetPost:
			if postAt = s.postIndex(targetID); postAt < 0 {
				return nil, fmt.Errorf("%w: post %s", model.ErrNotFound, targetID)
			}
		default:
			return nil, fmt.Errorf("%w: cannot comment on %q", model.ErrValidation, targetType)
		}
		created = model.Comment{
			ID:           s.newID("c_"),
			TargetID:     targetID,
			TargetType:   targetType,
			Content:      content,
			AuthorName:   s.active.Name,
			AuthorAvatar: s.active.Avatar,
			Timestamp:    "Just now",
		}
		s.comments = append([]model.Comment{created}, s.comments...)
		if postAt >= 0 {
			s.posts[postAt].Comments++
		}
		return []model.StoreEvent{s.event(model.EventCommentAdded, targetID, "")}, nil
	})
	return created, err
}

// GetComments returns the comments on targetID, newest first
func (s *Store) GetComments(targetID string) []model.Comment {
	var out []model.Comment
	s.read(func() {
		out = filter(s.comments, func(c model.Comment) bool { return c.TargetID == targetID })
	})
	return out
}

// CommentCount returns the tracked counter for posts and the number of stored
// comments for videos.
func (s *Store) CommentCount(targetID string, targetType model.TargetType) int {
	n := 0
	s.read(func() {
		if targetType == model.TargetPost {
			if i := s.postIndex(targetID); i >= 0 {
				n = s.posts[i].Comments
			}
			return
		}
		for _, c := range s.comments {
			if c.TargetID == targetID {
				n++
			}
		}
	})
	return n
}

func (s *Store) Videos() []model.Video {
	var out []model.Video
	s.read(func() { out = append([]model.Video{}, s.videos...) })
	return out
}

func (s *Store) Posts() []model.Post {
	var out []model.Post
	s.read(func() { out = append([]model.Post{}, s.posts...) })
	return out
}

func (s *Store) Video(id string) (model.Video, error) {
	var (
		v  model.Video
		ok bool
	)
	s.read(func() {
		if i := s.videoIndex(id); i >= 0 {
			v, ok = s.videos[i], true
		}
	})
	if !ok {
		return model.Video{}, fmt.Errorf("%w: video %s", model.ErrNotFound, id)
	}
	return v, nil
}

func (s *Store) Post(id string) (model.Post, error) {
	var (
		p  model.Post
		ok bool
	)
	s.read(func() {
		if i := s.postIndex(id); i >= 0 {
			p, ok = s.posts[i], true
		}
	})
	if !ok {
		return model.Post{}, fmt.Errorf("%w: post %s", model.ErrNotFound, id)
	}
	return p, nil
}

func (s *Store) videoIndex(id string) int {
	for i, v := range s.videos {
		if v.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) postIndex(id string) int {
	for i, p := range s.posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) commentIndex(id string) int {
	for i, c := range s.comments {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// filter returns a new slice holding the items keep accepts
func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
