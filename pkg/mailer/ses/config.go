package ses

import "github.com/dmitrymomot/npsmail/pkg/mailer"

// Config holds AWS SES configuration.
// Credentials are optional: when AccessKey or SecretKey is empty the
// default AWS credential chain (env, shared config, instance role) is used.
type Config struct {
	mailer.Identity
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKey        string `env:"AWS_ACCESS_KEY_ID"`
	SecretKey        string `env:"AWS_SECRET_ACCESS_KEY"`
	ConfigurationSet string `env:"SES_CONFIGURATION_SET"`
}
