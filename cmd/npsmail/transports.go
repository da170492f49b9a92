package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dmitrymomot/npsmail/pkg/mailer"
	"github.com/dmitrymomot/npsmail/pkg/mailer/resend"
	"github.com/dmitrymomot/npsmail/pkg/mailer/sendgrid"
	"github.com/dmitrymomot/npsmail/pkg/mailer/ses"
	"github.com/dmitrymomot/npsmail/pkg/mailer/smtp"
	"github.com/dmitrymomot/npsmail/pkg/storage"
	"github.com/dmitrymomot/npsmail/pkg/survey"
)

var surveyTags = mailer.Tags{"campaign": "nps"}

// newTransport builds the transport for one channel. Only the requested
// channel is configured, so an SES setup is never loaded for SMTP sends.
func newTransport(ctx context.Context, cfg config, channel survey.Channel, log *slog.Logger) (survey.Transport, error) {
	logOpt := survey.WithTransportLogger(log)

	switch channel {
	case survey.ChannelSMTP:
		sender, err := smtp.New(cfg.SMTP)
		if err != nil {
			return nil, err
		}
		return survey.NewSenderTransport(channel, sender, survey.WithTextFunc(survey.LongText), logOpt), nil

	case survey.ChannelSendGrid:
		return survey.NewSenderTransport(channel, sendgrid.New(cfg.SendGrid), survey.WithTags(surveyTags), logOpt), nil

	case survey.ChannelSES:
		sender, err := ses.New(ctx, cfg.SES)
		if err != nil {
			return nil, err
		}
		return survey.NewSenderTransport(channel, sender,
			survey.WithTextFunc(survey.ShortText),
			survey.WithTags(surveyTags),
			logOpt,
		), nil

	case survey.ChannelResend:
		return survey.NewSenderTransport(channel, resend.New(cfg.Resend), survey.WithTags(surveyTags), logOpt), nil
	}

	return nil, fmt.Errorf("%w: %q", survey.ErrUnknownChannel, channel)
}

// newTemplateSource reads the template from S3 when a bucket is configured,
// otherwise from the local file.
func newTemplateSource(ctx context.Context, cfg config) (mailer.TemplateSource, error) {
	if cfg.Storage.Enabled() {
		store, err := storage.New(ctx, cfg.Storage)
		if err != nil {
			return nil, err
		}
		return mailer.NewObjectSource(store, cfg.TemplateKey), nil
	}

	dir, name := filepath.Split(cfg.TemplatePath)
	if dir == "" {
		dir = "."
	}
	return mailer.NewFSSource(os.DirFS(dir), name), nil
}

// newDispatcher wires a dispatcher for channel. An unknown channel is not an
// error here: the dispatcher skips its recipients and reports nothing sent.
func newDispatcher(ctx context.Context, cfg config, channel survey.Channel, log *slog.Logger) (*survey.Dispatcher, error) {
	source, err := newTemplateSource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	opts := []survey.DispatcherOption{survey.WithLogger(log)}
	transport, err := newTransport(ctx, cfg, channel, log)
	switch {
	case err == nil:
		opts = append(opts, survey.WithTransport(channel, transport))
	case errors.Is(err, survey.ErrUnknownChannel):
		log.WarnContext(ctx, "no transport for channel", slog.String("channel", string(channel)))
	default:
		return nil, err
	}

	return survey.NewDispatcher(source, cfg.Survey, opts...), nil
}
