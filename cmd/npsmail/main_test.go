package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/npsmail/pkg/logger"
	"github.com/dmitrymomot/npsmail/pkg/survey"
)

const testTemplate = `<a href="{{SCRIPT_URL}}?customer={{CUSTOMER_ID}}&email={{CUSTOMER_EMAIL}}">Rate us</a>`

func setBaseEnv(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "email-template.html")
	require.NoError(t, os.WriteFile(path, []byte(testTemplate), 0o600))

	t.Setenv("NPS_SCRIPT_URL", "https://script.google.com/macros/s/abc/exec")
	t.Setenv("NPS_TEMPLATE_PATH", path)
	t.Setenv("NPS_SEND_DELAY", "1ms")
	t.Setenv("MAIL_FROM_EMAIL", "nps@example.com")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("TEMPLATE_S3_BUCKET", "")
	return dir
}

func TestLoadConfig(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("MAIL_FROM_EMAIL", "")
	t.Setenv("SMTP_USER", "ops@example.com")
	t.Setenv("NPS_SURVEY_AFTER_DAYS", "0")

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", cfg.SMTP.Email)
	assert.Equal(t, 7, cfg.SurveyAfterDays)
	assert.Equal(t, "0 10 * * *", cfg.Schedule)
	assert.Equal(t, "smtp", cfg.Channel)
	assert.False(t, cfg.Storage.Enabled())
}

func TestLoadConfig_DotEnv(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("NPS_CHANNEL", "")
	require.NoError(t, os.Unsetenv("NPS_CHANNEL"))

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("NPS_CHANNEL=ses\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("NPS_CHANNEL") })

	cfg, err := loadConfig(envFile)
	require.NoError(t, err)
	assert.Equal(t, "ses", cfg.Channel)
}

func TestLoadConfig_MalformedDotEnv(t *testing.T) {
	setBaseEnv(t)

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("NPS!CHANNEL=ses\n"), 0o600))

	_, err := loadConfig(envFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load env file")
}

func TestNewTransport(t *testing.T) {
	setBaseEnv(t)
	cfg, err := loadConfig()
	require.NoError(t, err)

	for _, ch := range []survey.Channel{survey.ChannelSMTP, survey.ChannelSendGrid, survey.ChannelSES, survey.ChannelResend} {
		tr, err := newTransport(context.Background(), cfg, ch, logger.NewNope())
		require.NoError(t, err, ch)
		assert.NotNil(t, tr, ch)
	}

	_, err = newTransport(context.Background(), cfg, "pigeon", logger.NewNope())
	require.ErrorIs(t, err, survey.ErrUnknownChannel)
}

func TestRun_Usage(t *testing.T) {
	require.ErrorIs(t, run(context.Background(), nil, io.Discard), errUsage)
	require.ErrorIs(t, run(context.Background(), []string{"fly"}, io.Discard), errUsage)
}

func TestRun_SendNeedsSource(t *testing.T) {
	setBaseEnv(t)
	require.ErrorIs(t, run(context.Background(), []string{"send"}, io.Discard), errNoRecipientSource)
}

func TestRun_PlaceholderGuard(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("NPS_SCRIPT_URL", "https://script.google.com/macros/s/YOUR_SCRIPT_ID_HERE/exec")

	err := run(context.Background(), []string{"single", "-channel", "sendgrid", "-email", "a@b.com"}, io.Discard)
	require.ErrorIs(t, err, survey.ErrPlaceholderConfig)
}

func TestRun_SingleViaSendGrid(t *testing.T) {
	setBaseEnv(t)

	var payload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)

	t.Setenv("SENDGRID_API_KEY", "test-key")
	t.Setenv("SENDGRID_HOST", srv.URL)

	var out bytes.Buffer
	err := run(context.Background(), []string{"single", "-channel", "sendgrid", "-email", "john@example.com", "-id", "CUST-1"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Successfully sent: 1")
	assert.Contains(t, out.String(), "Failed: 0")
	require.NotNil(t, payload)
}

func TestRun_CSVWithUnknownChannel(t *testing.T) {
	dir := setBaseEnv(t)
	csvPath := filepath.Join(dir, "customers.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("customer_id,name,email,install_date\nCUST-1,John,john@example.com,2024-01-15\n"), 0o600))

	var out bytes.Buffer
	err := run(context.Background(), []string{"send", "-channel", "pigeon", "-csv", csvPath}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Successfully sent: 0")
	assert.Contains(t, out.String(), "Failed: 0")
}

func TestReportSince(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)
	assert.True(t, reportSince(now, 0).IsZero())
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), reportSince(now, 30))
}

func TestRun_ReportNegativeDays(t *testing.T) {
	setBaseEnv(t)

	err := run(context.Background(), []string{"report", "-days", "-1"}, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-days")
}
