// Package ses delivers mailer.Email messages through AWS SES v2.
package ses

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrymomot/npsmail/pkg/mailer"
)

const (
	defaultRegion = "us-east-1"
	charset       = "UTF-8"
)

// ErrLoadConfig is returned by New when the AWS configuration cannot be resolved.
var ErrLoadConfig = errors.New("ses: failed to load AWS config")

// SES accepts only these characters in message tag names and values.
var invalidTagChars = regexp.MustCompile(`[^A-Za-z0-9_\-.@]`)

// API is the subset of the SES v2 client used by Sender.
type API interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Sender implements mailer.Sender using AWS SES v2.
type Sender struct {
	client API
	config Config
}

// New resolves AWS configuration for cfg.Region and creates an SES sender.
func New(ctx context.Context, cfg Config) (*Sender, error) {
	if cfg.Region == "" {
		cfg.Region = defaultRegion
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Join(ErrLoadConfig, err)
	}

	return NewWithClient(sesv2.NewFromConfig(awsCfg), cfg), nil
}

// NewWithClient creates a sender on top of an existing SES client.
func NewWithClient(client API, cfg Config) *Sender {
	return &Sender{client: client, config: cfg}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if err := mailer.Validate(email); err != nil {
		return err
	}

	from := s.config.Resolve(email.From)
	if from == "" {
		return mailer.ErrNoSender
	}

	_, err := s.client.SendEmail(ctx, s.buildInput(from, email))
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("ses: %s: %w: %w", apiErr.ErrorCode(), mailer.ErrSendFailed, err)
		}
		return fmt.Errorf("ses: %w: %w", mailer.ErrSendFailed, err)
	}

	return nil
}

func (s *Sender) buildInput(from string, email *mailer.Email) *sesv2.SendEmailInput {
	body := &types.Body{
		Html: &types.Content{Data: aws.String(email.HTML), Charset: aws.String(charset)},
	}
	if email.Text != "" {
		body.Text = &types.Content{Data: aws.String(email.Text), Charset: aws.String(charset)}
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination:      &types.Destination{ToAddresses: email.To},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(email.Subject), Charset: aws.String(charset)},
				Body:    body,
			},
		},
	}

	if email.ReplyTo != "" {
		input.ReplyToAddresses = []string{email.ReplyTo}
	}
	if s.config.ConfigurationSet != "" {
		input.ConfigurationSetName = aws.String(s.config.ConfigurationSet)
	}
	for _, name := range email.Tags.Names() {
		input.EmailTags = append(input.EmailTags, types.MessageTag{
			Name:  aws.String(sanitizeTag(name)),
			Value: aws.String(sanitizeTag(mailer.TagValue(email.Tags[name]))),
		})
	}

	return input
}

func sanitizeTag(s string) string {
	return invalidTagChars.ReplaceAllString(s, "_")
}
