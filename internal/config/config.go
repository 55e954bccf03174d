package config

import (
	"time"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env        Env
	Server     ServerConfig
	Provider   ProviderConfig
	Cloudinary CloudinaryConfig
	Minio      MinioConfig
	Listing    ListingConfig
	Upload     UploadConfig
	Usage      UsageConfig
	NATS       NATSConfig
	RateLimit  RateLimitConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

// IsProd reports whether error details must be hidden from clients
func (e Env) IsProd() bool {
	return e.Env == "prod"
}

type ServerConfig struct {
	Host           string   `envconfig:"SERVER_HOST" default:"localhost"`
	Port           string   `envconfig:"SERVER_PORT" default:"8080"`
	AllowedOrigins []string `envconfig:"SERVER_ALLOWED_ORIGINS" default:"http://localhost:*,http://127.0.0.1:*"`
}

type ProviderConfig struct {
	Backend string `envconfig:"MEDIA_PROVIDER" default:"cloudinary"`
	Folder  string `envconfig:"MEDIA_FOLDER" default:"escoffier-event"`
}

// CloudinaryConfig credentials are not required at startup: usage reports ErrConfiguration instead
type CloudinaryConfig struct {
	CloudName  string `envconfig:"CLOUDINARY_CLOUD_NAME"`
	APIKey     string `envconfig:"CLOUDINARY_API_KEY"`
	APISecret  string `envconfig:"CLOUDINARY_API_SECRET"`
	APIBaseURL string `envconfig:"CLOUDINARY_API_BASE_URL"`
}

// Configured reports whether every credential is present
func (c CloudinaryConfig) Configured() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

type MinioConfig struct {
	Endpoint                  string        `envconfig:"MINIO_ENDPOINT"`
	BucketName                string        `envconfig:"MINIO_BUCKET_NAME" default:"gallery"`
	AccessKey                 string        `envconfig:"MINIO_ACCESS_KEY"`
	SecretKey                 string        `envconfig:"MINIO_SECRET_KEY"`
	PublicBaseURL             string        `envconfig:"MINIO_PUBLIC_BASE_URL"`
	UploadPresignedDuration   time.Duration `envconfig:"MINIO_UPLOAD_PRESIGNED_DURATION" default:"15m"`
	DownloadSignedURLDuration time.Duration `envconfig:"MINIO_DOWNLOAD_SIGNED_URL_DURATION" default:"1h"`
	StorageLimit              int64         `envconfig:"MINIO_STORAGE_LIMIT" default:"26843545600"` // 25GB
	UseSSL                    bool          `envconfig:"MINIO_USE_SSL" default:"false"`
}

// Configured reports whether the endpoint and the keys are present
func (c MinioConfig) Configured() bool {
	return c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != ""
}

type ListingConfig struct {
	ImagePageSize int  `envconfig:"LISTING_IMAGE_PAGE_SIZE" default:"8"`
	VideoPageSize int  `envconfig:"LISTING_VIDEO_PAGE_SIZE" default:"4"`
	CombinedSize  int  `envconfig:"LISTING_COMBINED_SIZE" default:"500"`
	ImageFullURL  bool `envconfig:"LISTING_IMAGE_FULL_URL" default:"false"`
}

type UploadConfig struct {
	ImageMaxFiles       int           `envconfig:"UPLOAD_IMAGE_MAX_FILES" default:"20"`
	ImageMaxTotalBytes  int64         `envconfig:"UPLOAD_IMAGE_MAX_TOTAL_BYTES" default:"104857600"` // 100MB
	VideoMaxFiles       int           `envconfig:"UPLOAD_VIDEO_MAX_FILES" default:"5"`
	VideoMaxTotalBytes  int64         `envconfig:"UPLOAD_VIDEO_MAX_TOTAL_BYTES" default:"1073741824"` // 1GB
	SignatureMaxAge     time.Duration `envconfig:"UPLOAD_SIGNATURE_MAX_AGE" default:"1h"`
	MaxRequestBodyBytes int64         `envconfig:"UPLOAD_MAX_REQUEST_BODY_BYTES" default:"1111490560"` // 1GB + 60MB of form overhead
}

type UsageConfig struct {
	PollInterval time.Duration `envconfig:"USAGE_POLL_INTERVAL" default:"30s"`
	MaxBackoff   time.Duration `envconfig:"USAGE_MAX_BACKOFF" default:"5m"`
	PollEnabled  bool          `envconfig:"USAGE_POLL_ENABLED" default:"true"`
}

type NATSConfig struct {
	URL          string `envconfig:"NATS_URL" default:"nats://localhost:4222"`
	StreamName   string `envconfig:"NATS_STREAM_NAME" default:"MINIO_EVENTS"`
	ConsumerName string `envconfig:"NATS_CONSUMER_NAME" default:"gallery-thumbnails"`
	Subject      string `envconfig:"NATS_SUBJECT" default:"minio.events"`
	DeliverGroup string `envconfig:"NATS_DELIVER_GROUP"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `envconfig:"RATE_LIMIT_RPS" default:"2"`
	Burst             int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

// Load reads the configuration from the environment, after a .env file when present
func Load() (*Config, error) {
	var cfg Config

	_ = godotenv.Load()

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// BatchLimits returns the configured limits per media kind
func (u UploadConfig) BatchLimits() map[domain.MediaKind]domain.BatchLimits {
	return map[domain.MediaKind]domain.BatchLimits{
		domain.MediaKindImage: {MaxFiles: u.ImageMaxFiles, MaxTotalBytes: u.ImageMaxTotalBytes},
		domain.MediaKindVideo: {MaxFiles: u.VideoMaxFiles, MaxTotalBytes: u.VideoMaxTotalBytes},
	}
}

// PageSize returns the listing page size of a media kind
func (l ListingConfig) PageSize(kind domain.MediaKind) int {
	if kind == domain.MediaKindVideo {
		return l.VideoPageSize
	}
	return l.ImagePageSize
}
