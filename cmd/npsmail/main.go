// Command npsmail sends Net Promoter Score survey emails.
//
// Usage:
//
//	npsmail send     [-channel smtp] (-csv customers.csv | -db)
//	npsmail single   [-channel smtp] -email a@b.com [-id CUST-1] [-name "John Doe"]
//	npsmail schedule [-channel smtp] [-now]
//	npsmail import   -csv customers.csv
//	npsmail migrate
//	npsmail push-template [-file email-template.html]
//	npsmail serve    [-addr :8080]
//	npsmail report   [-days 30]
//
// Configuration comes from the environment and an optional .env file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/npsmail/pkg/logger"
	"github.com/dmitrymomot/npsmail/pkg/survey"
)

var errUsage = errors.New("usage: npsmail <send|single|schedule|serve|report|import|migrate|push-template> [flags]")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "npsmail:", err)
		cancel()
		os.Exit(1)
	}
}

// app carries what every command needs.
type app struct {
	cfg    config
	log    *slog.Logger
	stdout io.Writer
}

type command func(ctx context.Context, a *app, args []string) error

var commands = map[string]command{
	"send":          cmdSend,
	"single":        cmdSingle,
	"schedule":      cmdSchedule,
	"import":        cmdImport,
	"migrate":       cmdMigrate,
	"push-template": cmdPushTemplate,
	"serve":         cmdServe,
	"report":        cmdReport,
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, flush, err := logger.New(cfg.Log, os.Stderr, survey.LogBatchID)
	if err != nil {
		return err
	}
	defer flush()

	return cmd(ctx, &app{cfg: cfg, log: log, stdout: stdout}, args[1:])
}
