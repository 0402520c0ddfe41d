package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"nexus-tube/domain/model"
	"nexus-tube/domain/repository"
	"nexus-tube/infrastructure/logger"

	"golang.org/x/sync/errgroup"
)

// Dialect picks table naming for the SQL seed source
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectMSSQL    Dialect = "sqlserver"
)

const (
	seedUsersQuery         = "SELECT id, name, handle, email, phone, avatar, banner_url, description FROM %s ORDER BY seq"
	seedVideosQuery        = "SELECT id, title, description, thumbnail_url, video_url, channel_name, channel_avatar, views, uploaded_at, duration, type, likes FROM %s ORDER BY seq"
	seedPostsQuery         = "SELECT id, content, author_name, author_avatar, posted_at, likes, comments, image_url FROM %s ORDER BY seq"
	seedCommentsQuery      = "SELECT id, target_id, target_type, content, author_name, author_avatar, posted_at, likes FROM %s ORDER BY seq"
	seedMessagesQuery      = "SELECT id, sender_id, receiver_id, content, sent_at_ms, is_read FROM %s ORDER BY sent_at_ms"
	seedSubscriptionsQuery = "SELECT user_id, channel_name, notify FROM %s"
)

// SQLSeed reads the initial catalog from a relational database. The tables
// are read once at startup and never written.
type SQLSeed struct {
	db      *sql.DB
	dialect Dialect
}

func NewSQLSeed(db *sql.DB, dialect Dialect) repository.ISeed {
	return &SQLSeed{db: db, dialect: dialect}
}

func (r *SQLSeed) table(name string) string {
	if r.dialect == DialectMSSQL {
		return fmt.Sprintf("dbo.[%s]", name)
	}
	return name
}

func (r *SQLSeed) Load(ctx context.Context) (*model.Seed, error) {
	seed := &model.Seed{UserData: map[string]*model.UserData{}}
	var subscriptions []subscriptionRow

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		seed.Users, err = r.users(gctx)
		return err
	})
	g.Go(func() (err error) {
		seed.Videos, err = r.videos(gctx)
		return err
	})
	g.Go(func() (err error) {
		seed.Posts, err = r.posts(gctx)
		return err
	})
	g.Go(func() (err error) {
		seed.Comments, err = r.comments(gctx)
		return err
	})
	g.Go(func() (err error) {
		seed.Messages, err = r.messages(gctx)
		return err
	})
	g.Go(func() (err error) {
		subscriptions, err = r.subscriptions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while loading SQL seed")
		return nil, err
	}

	for _, sub := range subscriptions {
		data, ok := seed.UserData[sub.userID]
		if !ok {
			data = model.NewUserData()
			seed.UserData[sub.userID] = data
		}
		data.SubscribedChannels[sub.channel] = struct{}{}
		if sub.notify {
			data.ChannelNotifications[sub.channel] = struct{}{}
		}
	}
	logger.GetLogger().
		WithField("users", len(seed.Users)).
		WithField("videos", len(seed.Videos)).
		WithField("dialect", r.dialect).
		Info("SQL seed loaded")
	return seed, nil
}

// query prepares and runs a seed statement and hands every row to scan
func (r *SQLSeed) query(ctx context.Context, format, table string, scan func(*sql.Rows) error) error {
	stmt, err := r.db.PrepareContext(ctx, fmt.Sprintf(format, r.table(table)))
	if err != nil {
		return fmt.Errorf("prepare %s: %w", table, err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("scan %s: %w", table, err)
		}
	}
	return rows.Err()
}

func (r *SQLSeed) users(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	err := r.query(ctx, seedUsersQuery, "users", func(rows *sql.Rows) error {
		var u model.User
		var email, phone, banner, description sql.NullString
		if err := rows.Scan(&u.ID, &u.Name, &u.Handle, &email, &phone, &u.Avatar, &banner, &description); err != nil {
			return err
		}
		u.Email, u.Phone, u.BannerURL, u.Description = email.String, phone.String, banner.String, description.String
		users = append(users, u)
		return nil
	})
	return users, err
}

func (r *SQLSeed) videos(ctx context.Context) ([]model.Video, error) {
	videos := []model.Video{}
	err := r.query(ctx, seedVideosQuery, "videos", func(rows *sql.Rows) error {
		var v model.Video
		var description sql.NullString
		if err := rows.Scan(&v.ID, &v.Title, &description, &v.ThumbnailURL, &v.VideoURL, &v.ChannelName,
			&v.ChannelAvatar, &v.Views, &v.UploadedAt, &v.Duration, &v.Type, &v.Likes); err != nil {
			return err
		}
		v.Description = description.String
		videos = append(videos, v)
		return nil
	})
	return videos, err
}

func (r *SQLSeed) posts(ctx context.Context) ([]model.Post, error) {
	posts := []model.Post{}
	err := r.query(ctx, seedPostsQuery, "posts", func(rows *sql.Rows) error {
		var p model.Post
		var image sql.NullString
		if err := rows.Scan(&p.ID, &p.Content, &p.AuthorName, &p.AuthorAvatar, &p.Timestamp, &p.Likes, &p.Comments, &image); err != nil {
			return err
		}
		p.ImageURL = image.String
		posts = append(posts, p)
		return nil
	})
	return posts, err
}

func (r *SQLSeed) comments(ctx context.Context) ([]model.Comment, error) {
	comments := []model.Comment{}
	err := r.query(ctx, seedCommentsQuery, "comments", func(rows *sql.Rows) error {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.TargetID, &c.TargetType, &c.Content, &c.AuthorName, &c.AuthorAvatar, &c.Timestamp, &c.Likes); err != nil {
			return err
		}
		comments = append(comments, c)
		return nil
	})
	return comments, err
}

func (r *SQLSeed) messages(ctx context.Context) ([]model.Message, error) {
	messages := []model.Message{}
	err := r.query(ctx, seedMessagesQuery, "messages", func(rows *sql.Rows) error {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.Timestamp, &m.Read); err != nil {
			return err
		}
		messages = append(messages, m)
		return nil
	})
	return messages, err
}

type subscriptionRow struct {
	userID  string
	channel string
	notify  bool
}

func (r *SQLSeed) subscriptions(ctx context.Context) ([]subscriptionRow, error) {
	var subs []subscriptionRow
	err := r.query(ctx, seedSubscriptionsQuery, "subscriptions", func(rows *sql.Rows) error {
		var s subscriptionRow
		if err := rows.Scan(&s.userID, &s.channel, &s.notify); err != nil {
			return err
		}
		subs = append(subs, s)
		return nil
	})
	return subs, err
}
