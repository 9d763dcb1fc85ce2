package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"signet/internal/config"
)

func TestRun_SealThenOpen(t *testing.T) {
	cfg := &config.Config{EncryptionKey: "operator-key"}

	var sealed bytes.Buffer
	if err := run(context.Background(), cfg, []string{"seal", "--work-factor", "10", "hunter2"}, &sealed); err != nil {
		t.Fatalf("seal error = %v", err)
	}
	ciphertext := strings.TrimSpace(sealed.String())
	if !strings.HasPrefix(ciphertext, "age:") {
		t.Fatalf("sealed = %q, want age: prefix", ciphertext)
	}

	var opened bytes.Buffer
	if err := run(context.Background(), cfg, []string{"open", ciphertext}, &opened); err != nil {
		t.Fatalf("open error = %v", err)
	}
	if got := strings.TrimSpace(opened.String()); got != "hunter2" {
		t.Errorf("open = %q, want hunter2", got)
	}
}

func TestRun_Errors(t *testing.T) {
	withKey := &config.Config{EncryptionKey: "operator-key"}
	noKey := &config.Config{}

	tests := []struct {
		name string
		cfg  *config.Config
		args []string
	}{
		{"no command", withKey, nil},
		{"unknown command", withKey, []string{"grant"}},
		{"seal without password", withKey, []string{"seal"}},
		{"seal without key", noKey, []string{"seal", "pw"}},
		{"open without key", noKey, []string{"open", "age:abc"}},
		{"open garbage", withKey, []string{"open", "not-hex"}},
		{"check without document", withKey, []string{"check", "--user", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(context.Background(), tt.cfg, tt.args, &bytes.Buffer{}); err == nil {
				t.Error("run() error = nil, want error")
			}
		})
	}
}

func TestSessionFor(t *testing.T) {
	if sessionFor(0, "x@example.com") != nil {
		t.Error("user 0 must be anonymous")
	}
	if s := sessionFor(7, "x@example.com"); s == nil || s.UserID != 7 {
		t.Errorf("sessionFor(7) = %+v", s)
	}
}
