package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type seedTable struct {
	name     string
	postgres string
	mssql    string
}

var seedTables = []seedTable{
	{
		name: "users",
		postgres: `CREATE TABLE users (seq SERIAL, id TEXT PRIMARY KEY, name TEXT NOT NULL, handle TEXT NOT NULL DEFAULT '',
			email TEXT, phone TEXT, avatar TEXT NOT NULL DEFAULT '', banner_url TEXT, description TEXT)`,
		mssql: `CREATE TABLE dbo.[users] (seq INT IDENTITY(1,1), id NVARCHAR(64) PRIMARY KEY, name NVARCHAR(255) NOT NULL,
			handle NVARCHAR(255) NOT NULL DEFAULT '', email NVARCHAR(255) NULL, phone NVARCHAR(64) NULL,
			avatar NVARCHAR(1024) NOT NULL DEFAULT '', banner_url NVARCHAR(1024) NULL, description NVARCHAR(MAX) NULL)`,
	},
	{
		name: "videos",
		postgres: `CREATE TABLE videos (seq SERIAL, id TEXT PRIMARY KEY, title TEXT NOT NULL, description TEXT,
			thumbnail_url TEXT NOT NULL DEFAULT '', video_url TEXT NOT NULL DEFAULT '', channel_name TEXT NOT NULL,
			channel_avatar TEXT NOT NULL DEFAULT '', views TEXT NOT NULL DEFAULT '0', uploaded_at TEXT NOT NULL DEFAULT '',
			duration TEXT NOT NULL DEFAULT '', type TEXT NOT NULL DEFAULT 'long', likes INT NOT NULL DEFAULT 0)`,
		mssql: `CREATE TABLE dbo.[videos] (seq INT IDENTITY(1,1), id NVARCHAR(64) PRIMARY KEY, title NVARCHAR(255) NOT NULL,
			description NVARCHAR(MAX) NULL, thumbnail_url NVARCHAR(1024) NOT NULL DEFAULT '', video_url NVARCHAR(1024) NOT NULL DEFAULT '',
			channel_name NVARCHAR(255) NOT NULL, channel_avatar NVARCHAR(1024) NOT NULL DEFAULT '', views NVARCHAR(32) NOT NULL DEFAULT '0',
			uploaded_at NVARCHAR(64) NOT NULL DEFAULT '', duration NVARCHAR(32) NOT NULL DEFAULT '', type NVARCHAR(16) NOT NULL DEFAULT 'long',
			likes INT NOT NULL DEFAULT 0)`,
	},
	{
		name: "posts",
		postgres: `CREATE TABLE posts (seq SERIAL, id TEXT PRIMARY KEY, content TEXT NOT NULL, author_name TEXT NOT NULL,
			author_avatar TEXT NOT NULL DEFAULT '', posted_at TEXT NOT NULL DEFAULT '', likes INT NOT NULL DEFAULT 0,
			comments INT NOT NULL DEFAULT 0, image_url TEXT)`,
		mssql: `CREATE TABLE dbo.[posts] (seq INT IDENTITY(1,1), id NVARCHAR(64) PRIMARY KEY, content NVARCHAR(MAX) NOT NULL,
			author_name NVARCHAR(255) NOT NULL, author_avatar NVARCHAR(1024) NOT NULL DEFAULT '', posted_at NVARCHAR(64) NOT NULL DEFAULT '',
			likes INT NOT NULL DEFAULT 0, comments INT NOT NULL DEFAULT 0, image_url NVARCHAR(1024) NULL)`,
	},
	{
		name: "comments",
		postgres: `CREATE TABLE comments (seq SERIAL, id TEXT PRIMARY KEY, target_id TEXT NOT NULL, target_type TEXT NOT NULL,
			content TEXT NOT NULL, author_name TEXT NOT NULL, author_avatar TEXT NOT NULL DEFAULT '',
			posted_at TEXT NOT NULL DEFAULT '', likes INT NOT NULL DEFAULT 0)`,
		mssql: `CREATE TABLE dbo.[comments] (seq INT IDENTITY(1,1), id NVARCHAR(64) PRIMARY KEY, target_id NVARCHAR(64) NOT NULL,
			target_type NVARCHAR(16) NOT NULL, content NVARCHAR(MAX) NOT NULL, author_name NVARCHAR(255) NOT NULL,
			author_avatar NVARCHAR(1024) NOT NULL DEFAULT '', posted_at NVARCHAR(64) NOT NULL DEFAULT '', likes INT NOT NULL DEFAULT 0)`,
	},
	{
		name: "messages",
		postgres: `CREATE TABLE messages (id TEXT PRIMARY KEY, sender_id TEXT NOT NULL, receiver_id TEXT NOT NULL,
			content TEXT NOT NULL, sent_at_ms BIGINT NOT NULL, is_read BOOLEAN NOT NULL DEFAULT FALSE)`,
		mssql: `CREATE TABLE dbo.[messages] (id NVARCHAR(64) PRIMARY KEY, sender_id NVARCHAR(64) NOT NULL, receiver_id NVARCHAR(64) NOT NULL,
			content NVARCHAR(MAX) NOT NULL, sent_at_ms BIGINT NOT NULL, is_read BIT NOT NULL DEFAULT 0)`,
	},
	{
		name: "subscriptions",
		postgres: `CREATE TABLE subscriptions (user_id TEXT NOT NULL, channel_name TEXT NOT NULL,
			notify BOOLEAN NOT NULL DEFAULT FALSE, PRIMARY KEY (user_id, channel_name))`,
		mssql: `CREATE TABLE dbo.[subscriptions] (user_id NVARCHAR(64) NOT NULL, channel_name NVARCHAR(255) NOT NULL,
			notify BIT NOT NULL DEFAULT 0, PRIMARY KEY (user_id, channel_name))`,
	},
}

// EnsureSeedSchema creates the catalog tables read by SQLSeed when they are
// missing. Safe to call at startup; existing tables are left untouched.
func EnsureSeedSchema(db *sql.DB, dialect Dialect) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, t := range seedTables {
		if dialect == DialectMSSQL {
			q := fmt.Sprintf(`IF OBJECT_ID('dbo.%s', 'U') IS NULL BEGIN %s END`, t.name, t.mssql)
			if _, err := db.ExecContext(ctx, q); err != nil {
				return fmt.Errorf("ensure table %s: %w", t.name, err)
			}
			continue
		}

		exists, err := tableExists(ctx, db, t.name)
		if err != nil {
			return err
		}
		if !exists {
			if _, err := db.ExecContext(ctx, t.postgres); err != nil {
				return fmt.Errorf("creating table %s failed: %w", t.name, err)
			}
		}
	}
	return nil
}

func tableExists(ctx context.Context, db *sql.DB, table string) (bool, error) {
	row := db.QueryRowContext(ctx, `SELECT 1 FROM information_schema.tables WHERE table_name=$1`, table)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
