package persistence

import (
	"context"
	"time"

	"nexus-tube/domain/model"
	"nexus-tube/domain/repository"
)

// StaticSeed serves the built-in demo catalog. Message timestamps are
// relative to the clock so the inbox ordering looks recent.
type StaticSeed struct {
	now func() time.Time
}

func NewStaticSeed(now func() time.Time) repository.ISeed {
	if now == nil {
		now = time.Now
	}
	return &StaticSeed{now: now}
}

func (s *StaticSeed) Load(_ context.Context) (*model.Seed, error) {
	nowMs := s.now().UnixMilli()
	creator := model.User{
		ID:          "u1",
		Name:        "Creative User",
		Handle:      "creative_user",
		Email:       "creative@gmail.com",
		Phone:       "1234567890",
		Avatar:      "https://picsum.photos/id/64/100/100",
		Description: "This is your personal channel. Upload videos, share posts, and manage your content here. Join the community and start creating!",
		BannerURL:   "https://picsum.photos/seed/banner1/1200/300",
	}
	vlogger := model.User{
		ID:          "u2",
		Name:        "Vlog Star",
		Handle:      "vlog_star_official",
		Email:       "vlogstar@gmail.com",
		Phone:       "0987654321",
		Avatar:      "https://picsum.photos/id/129/100/100",
		Description: "Daily vlogs and lifestyle content. Subscribe for more!",
		BannerURL:   "https://picsum.photos/seed/banner2/1200/300",
	}

	creatorData := model.NewUserData()
	creatorData.SubscribedChannels["Urban Explorer"] = struct{}{}
	creatorData.ChannelNotifications["Urban Explorer"] = struct{}{}

	return &model.Seed{
		Users:    []model.User{creator, vlogger},
		Videos:   staticVideos(),
		Posts:    staticPosts(),
		Comments: staticComments(),
		Messages: []model.Message{
			{ID: "m1", SenderID: "u1", ReceiverID: "admin_001", Content: "Hi, I need help with my channel verification.", Timestamp: nowMs - 10_000_000, Read: true},
			{ID: "m2", SenderID: "admin_001", ReceiverID: "u1", Content: "Hello! I can certainly help with that. Please provide your documents.", Timestamp: nowMs - 9_000_000, Read: true},
			{ID: "m3", SenderID: "u2", ReceiverID: "admin_001", Content: "My video was flagged incorrectly.", Timestamp: nowMs - 500_000},
		},
		UserData: map[string]*model.UserData{creator.ID: creatorData},
	}, nil
}

func staticVideos() []model.Video {
	return []model.Video{
		{
			ID:            "v1",
			Title:         "Elden Ring: Shadow of the Erdtree - Ultimate Gaming Walkthrough",
			Description:   "Join me as I explore the Land of Shadow in this first part of my Elden Ring Gaming walkthrough. We encounter new bosses, weapons, and lore!",
			ThumbnailURL:  "https://picsum.photos/seed/eldenring/640/360",
			VideoURL:      "https://storage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
			ChannelName:   "Pro Gaming Souls",
			ChannelAvatar: "https://ui-avatars.com/api/?name=Pro+Gamer&background=000&color=fff",
			Views:         "1.2M",
			UploadedAt:    "1 day ago",
			Duration:      "45:20",
			Type:          model.VideoTypeLong,
			Likes:         25000,
		},
		{
			ID:            "v2",
			Title:         "Minecraft 1.21 Update - Top 10 Gaming Secrets",
			Description:   "The Tricky Trials update is here! We cover the Crafter, Trial Chambers, and all the new copper blocks in this comprehensive Gaming guide.",
			ThumbnailURL:  "https://picsum.photos/seed/minecraft/640/360",
			VideoURL:      "https://storage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
			ChannelName:   "Block Gaming",
			ChannelAvatar: "https://ui-avatars.com/api/?name=Block+Builder&background=00ff00&color=000",
			Views:         "850K",
			UploadedAt:    "2 days ago",
			Duration:      "12:45",
			Type:          model.VideoTypeLong,
			Likes:         15000,
		},
		{
			ID:            "v3",
			Title:         "Valorant Champions 2024 - Best Gaming Highlights",
			Description:   "The most intense moments from the Grand Finals! Insane clutches and aces. Pure competitive Gaming at its finest.",
			ThumbnailURL:  "https://picsum.photos/seed/valorant/640/360",
			VideoURL:      "https://storage.googleapis.com/gtv-videos-bucket/sample/Sintel.mp4",
			ChannelName:   "FPS Gaming Pro",
			ChannelAvatar: "https://ui-avatars.com/api/?name=FPS+Pro&background=ff0000&color=fff",
			Views:         "2.5M",
			UploadedAt:    "5 hours ago",
			Duration:      "22:10",
			Type:          model.VideoTypeLong,
			Likes:         95000,
		},
		{
			ID:            "v4",
			Title:         "GTA 6 - Map Leak Analysis & Gaming News",
			Description:   "Analyzing the latest map leaks for Grand Theft Auto VI. Is Vice City really returning? Reacting to the biggest Gaming news of the decade.",
			ThumbnailURL:  "https://picsum.photos/seed/gta6/640/360",
			VideoURL:      "https://storage.googleapis.com/gtv-videos-bucket/sample/TearsOfSteel.mp4",
			ChannelName:   "Gaming News Hub",
			ChannelAvatar: "https://ui-avatars.com/api/?name=Gaming+News&background=0000ff&color=fff",
			Views:         "500K",
			UploadedAt:    "3 days ago",
			Duration:      "15:30",
			Type:          model.VideoTypeLong,
			Likes:         12000,
		},
		{
			ID:            "v5",
			Title:         "Speedrunning Super Mario 64 - Gaming World Record",
			Description:   "Can we beat the world record today? Live attempt at the 16 star category. This is peak performance Gaming.",
			ThumbnailURL:  "https://picsum.photos/seed/mario/640/360",
			VideoURL:      "https://storage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
			ChannelName:   "SpeedRunner Gaming",
			ChannelAvatar: "https://ui-avatars.com/api/?name=Speed+Runner&background=ffff00&color=000",
			Views:         "120K",
			UploadedAt:    "12 hours ago",
			Duration:      "1:15:00",
			Type:          model.VideoTypeLong,
			Likes:         8000,
		},
	}
}

func staticPosts() []model.Post {
	return []model.Post{
		{
			ID:           "p1",
			Content:      "Just hit 100k subscribers! Thank you all so much for the support. New special video coming soon! 🎉",
			AuthorName:   "Creative User",
			AuthorAvatar: "https://picsum.photos/id/64/100/100",
			Timestamp:    "2 hours ago",
			Likes:        1500,
			Comments:     245,
			ImageURL:     "https://picsum.photos/seed/post1/600/400",
		},
		{
			ID:           "p2",
			Content:      "What kind of content do you want to see next? Vote below!",
			AuthorName:   "Vlog Star",
			AuthorAvatar: "https://picsum.photos/id/129/100/100",
			Timestamp:    "5 hours ago",
			Likes:        850,
			Comments:     120,
		},
	}
}

func staticComments() []model.Comment {
	return []model.Comment{
		{
			ID:           "c1",
			TargetID:     "v1",
			TargetType:   model.TargetVideo,
			Content:      "This video changed my life! Amazing content.",
			AuthorName:   "Alex Tech",
			AuthorAvatar: "https://ui-avatars.com/api/?name=Alex&background=random",
			Timestamp:    "1 hour ago",
			Likes:        45,
		},
		{
			ID:           "c2",
			TargetID:     "v1",
			TargetType:   model.TargetVideo,
			Content:      "Can you do a tutorial on this?",
			AuthorName:   "Sarah Vlogs",
			AuthorAvatar: "https://ui-avatars.com/api/?name=Sarah&background=pink",
			Timestamp:    "30 mins ago",
			Likes:        12,
		},
	}
}
