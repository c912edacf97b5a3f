// server/config/config.go
package config

import (
	"time"

	"github.com/spf13/viper"
)

// --- Sub-structs, mirroring the YAML layout ---

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // gin mode: debug, release, test
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

type StoreConfig struct {
	Driver string `mapstructure:"driver"` // "mongo" or "memory"
}

type MongoConfig struct {
	URI            string        `mapstructure:"uri"`
	DBName         string        `mapstructure:"dbName"`
	ConnectTimeout time.Duration `mapstructure:"connectTimeout"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"` // empty disables the cache
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type NATSConfig struct {
	URL        string `mapstructure:"url"` // empty disables event publishing
	ClientName string `mapstructure:"clientName"`
}

type S3Config struct {
	Bucket           string `mapstructure:"bucket"` // empty disables report export
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"accessKeyID"`
	SecretAccessKey  string `mapstructure:"secretAccessKey"`
	CloudFrontDomain string `mapstructure:"cloudFrontDomain"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type AppConfig struct {
	TimeZone    string   `mapstructure:"timezone"` // used for month grouping and due dates; empty means local
	CorsOrigins []string `mapstructure:"corsOrigins"`
	BcryptCost  int      `mapstructure:"bcryptCost"`
}

// --- Root config struct ---

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Store  StoreConfig  `mapstructure:"store"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
	Redis  RedisConfig  `mapstructure:"redis"`
	NATS   NATSConfig   `mapstructure:"nats"`
	S3     S3Config     `mapstructure:"s3"`
	Log    LogConfig    `mapstructure:"log"`
	App    AppConfig    `mapstructure:"app"`
}

// Location resolves App.TimeZone.
func (c Config) Location() (*time.Location, error) {
	if c.App.TimeZone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.App.TimeZone)
}

// LoadConfig reads config.yaml from path and overrides it with environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdownTimeout", 10*time.Second)
	v.SetDefault("store.driver", "mongo")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.dbName", "waste_management")
	v.SetDefault("mongo.connectTimeout", 10*time.Second)
	v.SetDefault("redis.ttl", 5*time.Minute)
	v.SetDefault("nats.clientName", "waste-management-api")
	v.SetDefault("log.level", "info")
	v.SetDefault("app.corsOrigins", []string{"*"})
	v.SetDefault("app.bcryptCost", 12)

	v.AutomaticEnv()

	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.mode", "GIN_MODE")
	v.BindEnv("store.driver", "STORE_DRIVER")
	v.BindEnv("mongo.uri", "MONGO_URI")
	v.BindEnv("mongo.dbName", "MONGO_DBNAME")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.db", "REDIS_DB")
	v.BindEnv("redis.ttl", "REDIS_TTL")
	v.BindEnv("nats.url", "NATS_URL")
	v.BindEnv("s3.bucket", "S3_BUCKET")
	v.BindEnv("s3.region", "S3_REGION")
	v.BindEnv("s3.accessKeyID", "S3_ACCESS_KEY_ID")
	v.BindEnv("s3.secretAccessKey", "S3_SECRET_ACCESS_KEY")
	v.BindEnv("s3.cloudFrontDomain", "S3_CLOUDFRONT_DOMAIN")
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.development", "LOG_DEVELOPMENT")
	v.BindEnv("app.timezone", "APP_TIMEZONE")
	v.BindEnv("app.bcryptCost", "APP_BCRYPT_COST")

	// Without a config file only defaults and the environment apply.
	err = v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = v.Unmarshal(&config)
	return
}
