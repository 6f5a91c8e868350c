package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreDriverFile     = "file"
	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	App struct {
		Port         string `mapstructure:"port"`
		Env          string `mapstructure:"env"`
		StaticDir    string `mapstructure:"static_dir"`
		BaseURL      string `mapstructure:"base_url"`
		MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
	} `mapstructure:"app"`
	Store struct {
		Driver string `mapstructure:"driver"`
		Path   string `mapstructure:"path"`
		Key    string `mapstructure:"key"`
	} `mapstructure:"store"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		Topic   string   `mapstructure:"topic"`
		GroupID string   `mapstructure:"group_id"`
	} `mapstructure:"kafka"`
	Auth struct {
		Enabled       bool          `mapstructure:"enabled"`
		AdminUser     string        `mapstructure:"admin_user"`
		PasswordHash  string        `mapstructure:"password_hash"`
		JWTSecret     string        `mapstructure:"jwt_secret"`
		TokenLifespan time.Duration `mapstructure:"token_lifespan"`
	} `mapstructure:"auth"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	} `mapstructure:"cloudinary"`
	Tracing struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"tracing"`
	RateLimit struct {
		WritesPerSecond float64 `mapstructure:"writes_per_second"`
		Burst           int     `mapstructure:"burst"`
	} `mapstructure:"rate_limit"`
}

// LoadConfig reads config.yaml from the given directories (default ".") plus .env and
// environment overrides. A missing config file is not an error.
func LoadConfig(paths ...string) (cfg Config, err error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("app.static_dir", "STATIC_DIR")
	v.BindEnv("app.base_url", "BASE_URL")
	v.BindEnv("app.max_body_bytes", "MAX_BODY_BYTES")
	v.BindEnv("store.driver", "STORE_DRIVER")
	v.BindEnv("store.path", "STORE_PATH")
	v.BindEnv("store.key", "STORE_KEY")
	v.BindEnv("db.dsn", "DB_DSN")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("kafka.topic", "KAFKA_TOPIC")
	v.BindEnv("auth.enabled", "AUTH_ENABLED")
	v.BindEnv("auth.admin_user", "ADMIN_USER")
	v.BindEnv("auth.password_hash", "ADMIN_PASSWORD_HASH")
	v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	v.BindEnv("auth.token_lifespan", "TOKEN_LIFESPAN")
	v.BindEnv("tracing.otlp_endpoint", "OTLP_ENDPOINT")

	v.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	v.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	v.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")

	err = v.Unmarshal(&cfg)
	return
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", "3000")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.static_dir", "public")
	v.SetDefault("app.base_url", "http://localhost:3000")
	v.SetDefault("app.max_body_bytes", 100<<10)
	v.SetDefault("store.driver", StoreDriverFile)
	v.SetDefault("store.path", "data/data.json")
	v.SetDefault("store.key", "portfolio:content")
	v.SetDefault("kafka.topic", "content.events")
	v.SetDefault("kafka.group_id", "content-backup-group")
	v.SetDefault("auth.admin_user", "admin")
	v.SetDefault("auth.token_lifespan", 24*time.Hour)
	v.SetDefault("rate_limit.writes_per_second", 5.0)
	v.SetDefault("rate_limit.burst", 20)
}
