package storage

// DefaultRegion is used when no region is configured.
const DefaultRegion = "us-east-1"

// Config holds S3-compatible storage configuration.
// Credentials are optional: without them the default AWS chain is used.
type Config struct {
	Bucket    string `env:"TEMPLATE_S3_BUCKET"`
	Region    string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKey string `env:"AWS_ACCESS_KEY_ID"`
	SecretKey string `env:"AWS_SECRET_ACCESS_KEY"`

	// Endpoint is a custom S3 endpoint URL for MinIO or other S3-compatible services.
	Endpoint string `env:"S3_ENDPOINT"`

	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool `env:"S3_PATH_STYLE" envDefault:"false"`
}

// Enabled reports whether a bucket is configured.
func (c Config) Enabled() bool {
	return c.Bucket != ""
}
