package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/npsmail/internal/tasks"
	"github.com/dmitrymomot/npsmail/pkg/db"
	"github.com/dmitrymomot/npsmail/pkg/logger"
	"github.com/dmitrymomot/npsmail/pkg/mailer/resend"
	"github.com/dmitrymomot/npsmail/pkg/mailer/sendgrid"
	"github.com/dmitrymomot/npsmail/pkg/mailer/ses"
	"github.com/dmitrymomot/npsmail/pkg/mailer/smtp"
	"github.com/dmitrymomot/npsmail/pkg/recipient"
	"github.com/dmitrymomot/npsmail/pkg/response"
	"github.com/dmitrymomot/npsmail/pkg/storage"
	"github.com/dmitrymomot/npsmail/pkg/survey"
)

// config is the whole application configuration, read from the environment.
// The database section is parsed separately because DATABASE_CONN_URL is
// only required by the commands that use it.
type config struct {
	Survey   survey.Config
	Log      logger.Config
	SMTP     smtp.Config
	SendGrid sendgrid.Config
	SES      ses.Config
	Resend   resend.Config
	Storage  storage.Config
	Response response.Config

	Channel         string `env:"NPS_CHANNEL" envDefault:"smtp"`
	TemplatePath    string `env:"NPS_TEMPLATE_PATH" envDefault:"email-template.html"`
	TemplateKey     string `env:"TEMPLATE_S3_KEY" envDefault:"email-template.html"`
	Schedule        string `env:"NPS_SCHEDULE" envDefault:"0 10 * * *"`
	HealthAddr      string `env:"NPS_HEALTH_ADDR" envDefault:":8080"`
	ResponsePath    string `env:"NPS_RESPONSE_PATH" envDefault:"/nps"`
	SurveyAfterDays int    `env:"NPS_SURVEY_AFTER_DAYS" envDefault:"7"`
}

// loadConfig reads an optional .env file, then the environment.
// A missing file is fine; a file that exists but does not parse is not.
func loadConfig(envFiles ...string) (config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg, err := env.ParseAs[config]()
	if err != nil {
		return config{}, err
	}

	// Direct SMTP sends from the login mailbox unless told otherwise.
	if cfg.SMTP.Email == "" {
		cfg.SMTP.Email = cfg.SMTP.Username
	}
	if cfg.SurveyAfterDays <= 0 {
		cfg.SurveyAfterDays = recipient.DefaultSurveyAfterDays
	}
	if cfg.Schedule == "" {
		cfg.Schedule = tasks.DefaultSchedule
	}
	return cfg, nil
}

func loadDBConfig() (db.Config, error) {
	return env.ParseAs[db.Config]()
}
