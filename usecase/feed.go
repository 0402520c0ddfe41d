package usecase

import (
	"sort"
	"strings"

	"nexus-tube/domain/model"
)

const (
	CategoryAll        = "All"
	CategoryYourVideos = "Your Videos"
	CategoryVlogs      = "Vlogs"

	SortLatest  = "latest"
	SortPopular = "popular"
)

// Categories are the home feed chips in display order
var Categories = []string{"All", "Gaming", "Music", "Tech", "Vlogs", "AI", "Nature", "MrBeast", "Your Videos"}

type IFeedUsecase interface {
	Feed(query, category string) []model.Video
	MatchedChannels(query string) []model.ChannelMatch
	Shorts() []model.Video
	ChannelPage(name, sortOrder string) model.ChannelPage
	ChannelStats(search string) []model.ChannelStat
}

// Feed returns the home grid. A search query matches title or channel name
// case-insensitively and admits every video type. Without a query the
// category applies: "Your Videos" lists everything the active user owns,
// other categories match title, description or channel and list long videos
// only ("Vlogs" also admits shorts before that cut).
func (s *Store) Feed(query, category string) []model.Video {
	var (
		videos []model.Video
		owner  string
	)
	s.read(func() {
		videos = append([]model.Video{}, s.videos...)
		owner = s.active.Name
	})
	return filterFeed(videos, owner, query, category)
}

func filterFeed(videos []model.Video, owner, query, category string) []model.Video {
	q := strings.ToLower(strings.TrimSpace(query))
	if q != "" {
		return filter(videos, func(v model.Video) bool {
			return strings.Contains(strings.ToLower(v.Title), q) || strings.Contains(strings.ToLower(v.ChannelName), q)
		})
	}
	if category == "" {
		category = CategoryAll
	}
	return filter(videos, func(v model.Video) bool {
		switch category {
		case CategoryAll:
			return !v.IsShort()
		case CategoryYourVideos:
			return v.ChannelName == owner
		}
		matches := strings.Contains(v.Title, category) ||
			strings.Contains(v.Description, category) ||
			strings.Contains(v.ChannelName, category) ||
			(category == CategoryVlogs && v.IsShort())
		return matches && !v.IsShort()
	})
}

// MatchedChannels returns the distinct channel names containing query, each
// with the first avatar seen in catalog order.
func (s *Store) MatchedChannels(query string) []model.ChannelMatch {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []model.ChannelMatch{}
	}
	var out []model.ChannelMatch
	s.read(func() {
		seen := map[string]struct{}{}
		for _, v := range s.videos {
			if _, ok := seen[v.ChannelName]; ok {
				continue
			}
			seen[v.ChannelName] = struct{}{}
			if strings.Contains(strings.ToLower(v.ChannelName), q) {
				out = append(out, model.ChannelMatch{Name: v.ChannelName, Avatar: v.ChannelAvatar})
			}
		}
	})
	if out == nil {
		out = []model.ChannelMatch{}
	}
	return out
}

func (s *Store) Shorts() []model.Video {
	var out []model.Video
	s.read(func() { out = filter(s.videos, model.Video.IsShort) })
	return out
}

// ChannelPage collects the long videos, shorts and posts published under
// name. Videos are sorted newest first for "latest" and by view count for
// "popular"; any other order keeps catalog order.
func (s *Store) ChannelPage(name, sortOrder string) model.ChannelPage {
	page := model.ChannelPage{Name: name}
	s.read(func() {
		owned := filter(s.videos, func(v model.Video) bool { return v.ChannelName == name })
		page.Videos = filter(owned, func(v model.Video) bool { return !v.IsShort() })
		page.Shorts = filter(owned, model.Video.IsShort)
		page.Posts = filter(s.posts, func(p model.Post) bool { return p.AuthorName == name })
	})
	sortVideos(page.Videos, sortOrder)
	sortVideos(page.Shorts, sortOrder)
	return page
}

func sortVideos(videos []model.Video, sortOrder string) {
	switch sortOrder {
	case SortPopular:
		sort.SliceStable(videos, func(i, j int) bool { return ParseViews(videos[i].Views) > ParseViews(videos[j].Views) })
	case SortLatest:
		sort.SliceStable(videos, func(i, j int) bool { return ParseTimeAgo(videos[i].UploadedAt) < ParseTimeAgo(videos[j].UploadedAt) })
	}
}

// ChannelStats builds the director dashboard: one row per roster user plus one
// per channel name that only exists on videos, ordered by total views. search
// filters by name or id, case-insensitively.
func (s *Store) ChannelStats(search string) []model.ChannelStat {
	var rows []model.ChannelStat
	s.read(func() {
		index := map[string]int{}
		for _, u := range s.users {
			if _, ok := index[u.Name]; ok {
				continue
			}
			role := "Creator"
			if u.IsCreativeDirector {
				role = "Director"
			}
			index[u.Name] = len(rows)
			rows = append(rows, model.ChannelStat{ID: u.ID, Name: u.Name, Avatar: u.Avatar, Role: role})
		}
		for _, v := range s.videos {
			i, ok := index[v.ChannelName]
			if !ok {
				i = len(rows)
				index[v.ChannelName] = i
				rows = append(rows, model.ChannelStat{
					ID:     channelID(v.ChannelName),
					Name:   v.ChannelName,
					Avatar: v.ChannelAvatar,
					Role:   "Content",
				})
			}
			rows[i].TotalViews += int64(ParseViews(v.Views))
			rows[i].VideoCount++
		}
	})
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalViews > rows[j].TotalViews })
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return rows
	}
	return filter(rows, func(r model.ChannelStat) bool {
		return strings.Contains(strings.ToLower(r.Name), q) || strings.Contains(strings.ToLower(r.ID), q)
	})
}

func channelID(name string) string {
	return "ch_" + strings.ToLower(strings.Join(strings.Fields(name), ""))
}
