package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dmitrymomot/npsmail/pkg/db"
	"github.com/dmitrymomot/npsmail/pkg/job"
	"github.com/dmitrymomot/npsmail/pkg/recipient"
	"github.com/dmitrymomot/npsmail/pkg/recipient/migrations"
	responsemigrations "github.com/dmitrymomot/npsmail/pkg/response/migrations"
	"github.com/dmitrymomot/npsmail/pkg/storage"
)

// cmdMigrate creates the customers and responses tables and the queue tables.
func cmdMigrate(ctx context.Context, a *app, _ []string) error {
	dbCfg, err := loadDBConfig()
	if err != nil {
		return err
	}
	pool, err := db.Connect(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool, migrations.FS, dbCfg.MigrationsTable, a.log); err != nil {
		return err
	}
	if err := db.Migrate(ctx, pool, responsemigrations.FS, responsemigrations.VersionTable, a.log); err != nil {
		return err
	}
	return job.Migrate(ctx, pool, a.log)
}

// cmdImport upserts customers from a CSV file.
func cmdImport(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	csvPath := fs.String("csv", "", "CSV file with customer_id,name,email,install_date columns")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *csvPath == "" {
		return errNoRecipientSource
	}

	recipients, err := recipient.LoadCSVFile(*csvPath)
	if err != nil {
		return err
	}

	dbCfg, err := loadDBConfig()
	if err != nil {
		return err
	}
	pool, err := db.Connect(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := recipient.NewRepository(pool).Import(ctx, recipients); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Imported %d customers\n", len(recipients))
	return nil
}

// cmdPushTemplate uploads the local template to the configured bucket.
func cmdPushTemplate(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("push-template", flag.ContinueOnError)
	file := fs.String("file", a.cfg.TemplatePath, "template file to upload")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := storage.New(ctx, a.cfg.Storage)
	if err != nil {
		return err
	}

	f, err := os.Open(*file)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := store.Put(ctx, a.cfg.TemplateKey, f, "text/html; charset=utf-8"); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Uploaded %s to s3://%s/%s\n", *file, a.cfg.Storage.Bucket, a.cfg.TemplateKey)
	return nil
}
