package configuration

import (
	"fmt"
	"os"
	"strconv"

	"nexus-tube/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	Seed        Seed        `json:"seed"`
	Database    Database    `json:"database"`
	Pubsub      Pubsub      `json:"pubsub"`
	ServiceBus  ServiceBus  `json:"serviceBus"`
	RedisClient RedisClient `json:"redisClient"`
	Gemini      Gemini      `json:"gemini"`
	Download    Download    `json:"download"`
	Logger      Logger      `json:"logger"`
}

type App struct {
	Port             int      `json:"port"`
	SecretKey        string   `json:"secretKey"`
	DirectorPassword string   `json:"directorPassword"`
	AllowOrigins     []string `json:"allowOrigins"`
	TLSEnabled       bool     `json:"tlsEnabled"`
	TLSCertFile      string   `json:"tlsCertFile"`
	TLSKeyFile       string   `json:"tlsKeyFile"`
}

// Seed selects where the initial catalog is read from: static, psql, mssql
// or mongo.
type Seed struct {
	Source string `json:"source"`
}

type Database struct {
	Psql  Db `json:"psql"`
	Mongo Db `json:"mongo"`
	Mssql Db `json:"mssql"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

type Pubsub struct {
	ProjectID    string `json:"projectID"`
	Topic        string `json:"topic"`
	Subscription string `json:"subscription"`

	// CredentialsFile is a service account key; empty means default credentials
	CredentialsFile string `json:"credentialsFile"`
}

type ServiceBus struct {
	Namespace string `json:"namespace"`
	Queue     string `json:"queue"`
}

type RedisClient struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Password     string `json:"password"`
	DatabaseName string `json:"databaseName"`
	Username     string `json:"username"`
}

type Gemini struct {
	APIKey      string `json:"apiKey"`
	TextModel   string `json:"textModel"`
	VideoModel  string `json:"videoModel"`
	PollSeconds int    `json:"pollSeconds"`
}

type Download struct {
	Dir   string `json:"dir"`
	Minio Minio  `json:"minio"`
}

type Minio struct {
	Endpoint  string `json:"endpoint"`
	AccessKey string `json:"accessKey"`
	SecretKey string `json:"secretKey"`
	Bucket    string `json:"bucket"`
	UseSSL    bool   `json:"useSSL"`
}

type Logger struct {
	Level string `json:"level"`
}

var C Config

func init() {
	LoadEnvFromFile(envFiles...)
	LoadConfig()
	initDatabase(&C)
	initApp(&C)
	initServices(&C)
	logger.SetLevel(C.Logger.Level)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

// envOr fills *dst from the named variable when *dst is still empty
func envOr(dst *string, key string) {
	if *dst != "" {
		return
	}
	*dst = os.Getenv(key)
}

func initDatabase(C *Config) {
	envOr(&C.Seed.Source, "SEED_SOURCE")
	if C.Seed.Source == "" {
		C.Seed.Source = "static"
	}

	envOr(&C.Database.Psql.Name, "DB_NAME")
	envOr(&C.Database.Psql.Host, "DB_HOST")
	envOr(&C.Database.Psql.User, "DB_USER")
	envOr(&C.Database.Psql.Password, "DB_PASSWORD")
	envOr(&C.Database.Psql.Port, "DB_PORT")
	if C.Database.Psql.Port == "" {
		C.Database.Psql.Port = "5432"
	}

	envOr(&C.Database.Mssql.Name, "MSSQL_DB_NAME")
	envOr(&C.Database.Mssql.Host, "MSSQL_HOST")
	envOr(&C.Database.Mssql.User, "MSSQL_USER")
	envOr(&C.Database.Mssql.Password, "MSSQL_PASSWORD")
	envOr(&C.Database.Mssql.Port, "MSSQL_PORT")
	if C.Database.Mssql.Host == "" {
		C.Database.Mssql.Host = "localhost"
	}
	if C.Database.Mssql.Port == "" {
		C.Database.Mssql.Port = "1433"
	}
	if C.Database.Mssql.User == "" {
		C.Database.Mssql.User = "sa"
	}

	envOr(&C.Database.Mongo.Name, "MONGO_DB_NAME")
	envOr(&C.Database.Mongo.Host, "MONGO_HOST")
	envOr(&C.Database.Mongo.User, "MONGO_USER")
	envOr(&C.Database.Mongo.Password, "MONGO_PASSWORD")
	envOr(&C.Database.Mongo.Port, "MONGO_PORT")
	if C.Database.Mongo.Name == "" {
		C.Database.Mongo.Name = "nexus_tube"
	}
	if C.Database.Mongo.Port == "" {
		C.Database.Mongo.Port = "27017"
	}

	logger.GetLogger().
		WithField("seed", C.Seed.Source).
		WithField("psqlHost", C.Database.Psql.Host).
		WithField("mssqlHost", C.Database.Mssql.Host).
		Info("Database configuration")
}

func initApp(C *Config) {
	if v := os.Getenv("SECRET_KEY"); v != "" {
		C.App.SecretKey = v
	}
	if v := os.Getenv("DIRECTOR_PASSWORD"); v != "" {
		C.App.DirectorPassword = v
	}
	// APP_PORT -> PORT -> config -> default 10001
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 10001
	}
	if len(C.App.AllowOrigins) == 0 {
		C.App.AllowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	if v := os.Getenv("TLS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			C.App.TLSEnabled = b
		}
	}
	envOr(&C.App.TLSCertFile, "TLS_CERT_FILE")
	envOr(&C.App.TLSKeyFile, "TLS_KEY_FILE")
	if C.App.TLSEnabled {
		if C.App.TLSCertFile == "" {
			if _, err := os.Stat("certs/localhost.crt"); err == nil {
				C.App.TLSCertFile = "certs/localhost.crt"
			}
		}
		if C.App.TLSKeyFile == "" {
			if _, err := os.Stat("certs/localhost.key"); err == nil {
				C.App.TLSKeyFile = "certs/localhost.key"
			}
		}
		logger.GetLogger().WithFields(map[string]interface{}{"cert": C.App.TLSCertFile, "key": C.App.TLSKeyFile}).Info("TLS enabled via configuration")
	}
	if C.App.SecretKey == "" {
		logger.GetLogger().Warn("App.SecretKey not set; session tokens cannot be issued. Provide SECRET_KEY via environment.")
	}
	envOr(&C.Logger.Level, "LOG_LEVEL")
}

func initServices(C *Config) {
	envOr(&C.RedisClient.Host, "REDIS_HOST")
	envOr(&C.RedisClient.Port, "REDIS_PORT")
	envOr(&C.RedisClient.Username, "REDIS_USERNAME")
	envOr(&C.RedisClient.Password, "REDIS_PASSWORD")

	envOr(&C.Pubsub.ProjectID, "PUBSUB_PROJECT_ID")
	envOr(&C.Pubsub.Topic, "PUBSUB_TOPIC")
	envOr(&C.Pubsub.Subscription, "PUBSUB_SUBSCRIPTION")
	envOr(&C.Pubsub.CredentialsFile, "PUBSUB_CREDENTIALS_FILE")
	if C.Pubsub.Topic == "" {
		C.Pubsub.Topic = "nexus-notifications"
	}
	if C.Pubsub.Subscription == "" {
		C.Pubsub.Subscription = "nexus-notifications-inbox"
	}

	envOr(&C.ServiceBus.Namespace, "SERVICEBUS_NAMESPACE")
	envOr(&C.ServiceBus.Queue, "SERVICEBUS_QUEUE")
	if C.ServiceBus.Queue == "" {
		C.ServiceBus.Queue = "moderation"
	}

	envOr(&C.Gemini.APIKey, "GEMINI_API_KEY")
	if C.Gemini.TextModel == "" {
		C.Gemini.TextModel = "gemini-2.5-flash"
	}
	if C.Gemini.VideoModel == "" {
		C.Gemini.VideoModel = "veo-3.1-fast-generate-preview"
	}
	if C.Gemini.PollSeconds == 0 {
		C.Gemini.PollSeconds = 5
	}

	envOr(&C.Download.Dir, "DOWNLOAD_DIR")
	if C.Download.Dir == "" {
		C.Download.Dir = "downloads"
	}
	envOr(&C.Download.Minio.Endpoint, "MINIO_ENDPOINT")
	envOr(&C.Download.Minio.AccessKey, "MINIO_ACCESS_KEY")
	envOr(&C.Download.Minio.SecretKey, "MINIO_SECRET_KEY")
	envOr(&C.Download.Minio.Bucket, "MINIO_BUCKET")
	if C.Download.Minio.Bucket == "" {
		C.Download.Minio.Bucket = "nexus-downloads"
	}
	if v := os.Getenv("MINIO_USE_SSL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			C.Download.Minio.UseSSL = b
		}
	}
}
