package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/npsmail/pkg/db"
	"github.com/dmitrymomot/npsmail/pkg/recipient"
	"github.com/dmitrymomot/npsmail/pkg/survey"
)

var errNoRecipientSource = errors.New("choose a recipient source: -csv <file> or -db")

// preflight refuses to send with the sample configuration.
func (a *app) preflight(channel survey.Channel) error {
	smtpUser := ""
	if channel == survey.ChannelSMTP {
		smtpUser = a.cfg.SMTP.Username
	}
	return a.cfg.Survey.CheckPlaceholders(smtpUser)
}

// dispatch sends the batch and prints the summary.
func (a *app) dispatch(ctx context.Context, recipients []survey.Recipient, channel survey.Channel) (survey.BatchResult, error) {
	if err := a.preflight(channel); err != nil {
		return survey.BatchResult{}, err
	}

	d, err := newDispatcher(ctx, a.cfg, channel, a.log)
	if err != nil {
		return survey.BatchResult{}, err
	}

	fmt.Fprintf(a.stdout, "Sending NPS surveys to %d customers via %s...\n", len(recipients), channel)
	result, sendErr := d.SendBatch(ctx, recipients, channel)
	if err := result.WriteSummary(a.stdout); err != nil {
		return result, errors.Join(sendErr, err)
	}
	return result, sendErr
}

func cmdSend(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	channel := fs.String("channel", a.cfg.Channel, "transport: smtp, sendgrid, ses or resend")
	csvPath := fs.String("csv", "", "CSV file with customer_id,name,email,install_date columns")
	fromDB := fs.Bool("db", false, "send to customers due in the database and mark them surveyed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ch := survey.ParseChannel(*channel)

	switch {
	case *csvPath != "":
		recipients, err := recipient.LoadCSVFile(*csvPath)
		if err != nil {
			return err
		}
		_, err = a.dispatch(ctx, recipients, ch)
		return err

	case *fromDB:
		return a.sendDue(ctx, ch)
	}

	return errNoRecipientSource
}

func (a *app) sendDue(ctx context.Context, channel survey.Channel) error {
	dbCfg, err := loadDBConfig()
	if err != nil {
		return err
	}
	pool, err := db.Connect(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := recipient.NewRepository(pool)
	recipients, err := repo.Due(ctx, a.cfg.SurveyAfterDays)
	if err != nil {
		return err
	}

	result, sendErr := a.dispatch(ctx, recipients, channel)
	marked, markErr := repo.MarkSurveyed(context.WithoutCancel(ctx), result.SentIDs)
	a.log.InfoContext(ctx, "customers marked surveyed", slog.Int64("count", marked))
	return errors.Join(sendErr, markErr)
}

func cmdSingle(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("single", flag.ContinueOnError)
	channel := fs.String("channel", a.cfg.Channel, "transport: smtp, sendgrid, ses or resend")
	email := fs.String("email", "", "recipient address (required)")
	id := fs.String("id", "", "customer ID, defaults to the address")
	name := fs.String("name", "", "customer name used in the greeting")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("single: -email is required")
	}
	if *id == "" {
		*id = *email
	}

	_, err := a.dispatch(ctx, []survey.Recipient{{ID: *id, Name: *name, Email: *email}}, survey.ParseChannel(*channel))
	return err
}
