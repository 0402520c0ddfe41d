package persistence

import (
	"context"
	"fmt"

	"nexus-tube/domain/model"
	"nexus-tube/domain/repository"
	"nexus-tube/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type userDoc struct {
	ID          string `bson:"_id"`
	Name        string `bson:"name"`
	Handle      string `bson:"handle"`
	Email       string `bson:"email,omitempty"`
	Phone       string `bson:"phone,omitempty"`
	Avatar      string `bson:"avatar"`
	BannerURL   string `bson:"bannerUrl,omitempty"`
	Description string `bson:"description,omitempty"`
	// Subscriptions lists channel names; Notify the subset with alerts on.
	Subscriptions []string `bson:"subscriptions,omitempty"`
	Notify        []string `bson:"notify,omitempty"`
}

type videoDoc struct {
	ID            string `bson:"_id"`
	Title         string `bson:"title"`
	Description   string `bson:"description"`
	ThumbnailURL  string `bson:"thumbnailUrl"`
	VideoURL      string `bson:"videoUrl"`
	ChannelName   string `bson:"channelName"`
	ChannelAvatar string `bson:"channelAvatar"`
	Views         string `bson:"views"`
	UploadedAt    string `bson:"uploadedAt"`
	Duration      string `bson:"duration"`
	Type          string `bson:"type"`
	Likes         int    `bson:"likes"`
	Seq           int    `bson:"seq"`
}

type postDoc struct {
	ID           string `bson:"_id"`
	Content      string `bson:"content"`
	AuthorName   string `bson:"authorName"`
	AuthorAvatar string `bson:"authorAvatar"`
	Timestamp    string `bson:"timestamp"`
	Likes        int    `bson:"likes"`
	Comments     int    `bson:"comments"`
	ImageURL     string `bson:"imageUrl,omitempty"`
}

type commentDoc struct {
	ID           string `bson:"_id"`
	TargetID     string `bson:"targetId"`
	TargetType   string `bson:"targetType"`
	Content      string `bson:"content"`
	AuthorName   string `bson:"authorName"`
	AuthorAvatar string `bson:"authorAvatar"`
	Timestamp    string `bson:"timestamp"`
	Likes        int    `bson:"likes"`
}

type messageDoc struct {
	ID         string `bson:"_id"`
	SenderID   string `bson:"senderId"`
	ReceiverID string `bson:"receiverId"`
	Content    string `bson:"content"`
	Timestamp  int64  `bson:"timestamp"`
	Read       bool   `bson:"read"`
}

// MongoSeed reads the initial catalog from one document collection per
// entity. Documents are ordered by their seq field when present.
type MongoSeed struct {
	client   *mongo.Client
	database string
}

func NewMongoSeed(client *mongo.Client, database string) repository.ISeed {
	return &MongoSeed{client: client, database: database}
}

func (r *MongoSeed) Load(ctx context.Context) (*model.Seed, error) {
	if r.client == nil {
		return nil, fmt.Errorf("mongo client is nil")
	}
	db := r.client.Database(r.database)

	var users []userDoc
	var videos []videoDoc
	var posts []postDoc
	var comments []commentDoc
	var messages []messageDoc
	loads := []struct {
		collection string
		sort       bson.D
		out        interface{}
	}{
		{"users", bson.D{{Key: "seq", Value: 1}}, &users},
		{"videos", bson.D{{Key: "seq", Value: 1}}, &videos},
		{"posts", bson.D{{Key: "seq", Value: 1}}, &posts},
		{"comments", bson.D{{Key: "seq", Value: 1}}, &comments},
		{"messages", bson.D{{Key: "timestamp", Value: 1}}, &messages},
	}
	for _, l := range loads {
		cursor, err := db.Collection(l.collection).Find(ctx, bson.D{}, options.Find().SetSort(l.sort))
		if err != nil {
			logger.GetLogger().WithField("error", err).WithField("collection", l.collection).Error("Error while fetching seed")
			return nil, fmt.Errorf("find %s: %w", l.collection, err)
		}
		if err := cursor.All(ctx, l.out); err != nil {
			return nil, fmt.Errorf("decode %s: %w", l.collection, err)
		}
	}

	seed := seedFromDocs(users, videos, posts, comments, messages)
	logger.GetLogger().
		WithField("users", len(seed.Users)).
		WithField("videos", len(seed.Videos)).
		Info("Mongo seed loaded")
	return seed, nil
}

func seedFromDocs(users []userDoc, videos []videoDoc, posts []postDoc, comments []commentDoc, messages []messageDoc) *model.Seed {
	seed := &model.Seed{UserData: map[string]*model.UserData{}}
	for _, d := range users {
		seed.Users = append(seed.Users, model.User{
			ID: d.ID, Name: d.Name, Handle: d.Handle, Email: d.Email, Phone: d.Phone,
			Avatar: d.Avatar, BannerURL: d.BannerURL, Description: d.Description,
		})
		if len(d.Subscriptions) == 0 {
			continue
		}
		data := model.NewUserData()
		for _, ch := range d.Subscriptions {
			data.SubscribedChannels[ch] = struct{}{}
		}
		for _, ch := range d.Notify {
			if _, ok := data.SubscribedChannels[ch]; ok {
				data.ChannelNotifications[ch] = struct{}{}
			}
		}
		seed.UserData[d.ID] = data
	}
	for _, d := range videos {
		seed.Videos = append(seed.Videos, model.Video{
			ID: d.ID, Title: d.Title, Description: d.Description, ThumbnailURL: d.ThumbnailURL,
			VideoURL: d.VideoURL, ChannelName: d.ChannelName, ChannelAvatar: d.ChannelAvatar,
			Views: d.Views, UploadedAt: d.UploadedAt, Duration: d.Duration,
			Type: model.VideoType(d.Type), Likes: d.Likes,
		})
	}
	for _, d := range posts {
		seed.Posts = append(seed.Posts, model.Post(d))
	}
	for _, d := range comments {
		seed.Comments = append(seed.Comments, model.Comment{
			ID: d.ID, TargetID: d.TargetID, TargetType: model.TargetType(d.TargetType), Content: d.Content,
			AuthorName: d.AuthorName, AuthorAvatar: d.AuthorAvatar, Timestamp: d.Timestamp, Likes: d.Likes,
		})
	}
	for _, d := range messages {
		seed.Messages = append(seed.Messages, model.Message(d))
	}
	return seed
}
