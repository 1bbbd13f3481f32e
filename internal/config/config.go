package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is built once at process start and handed to the services; nothing
// reads the environment at call time.
type Config struct {
	HTTPAddr    string        `envconfig:"HTTP_ADDR" default:":8080"`
	DatabaseURL string        `envconfig:"DATABASE_URL" default:"fitsphere.db"`
	JWTSecret   string        `envconfig:"JWT_SECRET" required:"true"`
	JWTTTL      time.Duration `envconfig:"JWT_TTL" default:"24h"`

	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@fitsphere.in"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`

	Razorpay RazorpayConfig
	Bunny    BunnyConfig
}

type RazorpayConfig struct {
	KeyID     string        `envconfig:"RAZORPAY_KEY_ID"`
	KeySecret string        `envconfig:"RAZORPAY_KEY_SECRET"`
	Currency  string        `envconfig:"RAZORPAY_CURRENCY" default:"INR"`
	Timeout   time.Duration `envconfig:"RAZORPAY_TIMEOUT" default:"10s"`
}

type BunnyConfig struct {
	StorageZone     string        `envconfig:"BUNNY_STORAGE_ZONE" default:"fit-sphere"`
	StoragePassword string        `envconfig:"BUNNY_STORAGE_PASSWORD"`
	StorageRegion   string        `envconfig:"BUNNY_STORAGE_REGION" default:"sg.storage.bunnycdn.com"`
	PullZoneURL     string        `envconfig:"BUNNY_PULL_ZONE_URL" default:"https://fit-sphere.b-cdn.net"`
	UploadTimeout   time.Duration `envconfig:"BUNNY_UPLOAD_TIMEOUT" default:"5m"`
	DeleteTimeout   time.Duration `envconfig:"BUNNY_DELETE_TIMEOUT" default:"1m"`
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
