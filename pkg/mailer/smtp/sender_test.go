package smtp

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"github.com/dmitrymomot/npsmail/pkg/mailer"
)

func newTestSender(t *testing.T) *Sender {
	t.Helper()

	s, err := New(Config{
		Identity: mailer.Identity{Name: "Your Company", Email: "support@example.com"},
		Host:     "smtp.example.com",
		Port:     587,
		Username: "mailer@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	return s
}

func render(t *testing.T, msg *mail.Msg) string {
	t.Helper()

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestSender_BuildMessage_Alternative(t *testing.T) {
	t.Parallel()

	s := newTestSender(t)
	msg, err := s.buildMessage(&mailer.Email{
		To:      []string{"john@example.com"},
		Subject: "How was your installation experience?",
		HTML:    "<p>Rate us</p>",
		Text:    "Rate us",
		Headers: map[string]string{"X-Campaign": "nps"},
	})
	require.NoError(t, err)

	raw := render(t, msg)
	require.Contains(t, raw, "multipart/alternative")
	require.Contains(t, raw, "text/plain")
	require.Contains(t, raw, "text/html")
	require.Contains(t, raw, "john@example.com")
	require.Contains(t, raw, "support@example.com")
	require.Contains(t, raw, "Your Company")
	require.Contains(t, raw, "X-Campaign: nps")
	require.Contains(t, raw, "Subject: How was your installation experience?")
}

func TestSender_BuildMessage_HTMLOnly(t *testing.T) {
	t.Parallel()

	s := newTestSender(t)
	msg, err := s.buildMessage(&mailer.Email{
		To:      []string{"john@example.com"},
		From:    "override@example.com",
		Subject: "Survey",
		HTML:    "<p>Rate us</p>",
	})
	require.NoError(t, err)

	raw := render(t, msg)
	require.NotContains(t, raw, "multipart/alternative")
	require.Contains(t, raw, "text/html")
	require.Contains(t, raw, "override@example.com")
}

func TestSender_BuildMessage_NoSender(t *testing.T) {
	t.Parallel()

	s, err := New(Config{Host: "smtp.example.com", Port: 587})
	require.NoError(t, err)

	_, err = s.buildMessage(&mailer.Email{To: []string{"john@example.com"}, Subject: "s", HTML: "h"})
	require.ErrorIs(t, err, mailer.ErrNoSender)
}

func TestSender_Send_ValidatesFirst(t *testing.T) {
	t.Parallel()

	err := newTestSender(t).Send(context.Background(), &mailer.Email{To: []string{"john@example.com"}, HTML: "h"})
	require.ErrorIs(t, err, mailer.ErrNoSubject)
}

func TestSender_Send_ConnectionRefused(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	s, err := New(Config{
		Identity:  mailer.Identity{Email: "support@example.com"},
		Host:      "127.0.0.1",
		Port:      port,
		TLSPolicy: "none",
		Timeout:   2 * time.Second,
	})
	require.NoError(t, err)

	err = s.Send(context.Background(), &mailer.Email{To: []string{"john@example.com"}, Subject: "s", HTML: "h"})
	require.ErrorIs(t, err, mailer.ErrSendFailed)
	require.Contains(t, err.Error(), "smtp: failed to send email")
}

func TestParseTLSPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    mail.TLSPolicy
		wantErr bool
	}{
		{in: "", want: mail.TLSMandatory},
		{in: "mandatory", want: mail.TLSMandatory},
		{in: "opportunistic", want: mail.TLSOpportunistic},
		{in: "none", want: mail.NoTLS},
		{in: "starttls", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := parseTLSPolicy(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTLSPolicy)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNew_InvalidTLSPolicy(t *testing.T) {
	t.Parallel()

	_, err := New(Config{TLSPolicy: "always"})
	require.ErrorIs(t, err, ErrInvalidTLSPolicy)
}
