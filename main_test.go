package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"BOARDSYNC_API_URL", "BOARDSYNC_SOCKET_URL", "BOARDSYNC_SESSION_FILE",
		"BOARDSYNC_REDIS", "BOARDSYNC_CACHE_TTL", "BOARDSYNC_JWKS_URL",
		"BOARDSYNC_JWT_AUDIENCE", "BOARDSYNC_JWT_ISSUER",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("BOARDSYNC_SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	cfg := loadConfig()
	if cfg.apiURL != defaultAPIURL {
		t.Fatalf("unexpected api url %q", cfg.apiURL)
	}
	if cfg.socketURL != "ws://localhost:8080" {
		t.Fatalf("unexpected socket url %q", cfg.socketURL)
	}
	if cfg.cacheTTL != 24*time.Hour {
		t.Fatalf("unexpected cache ttl %v", cfg.cacheTTL)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOARDSYNC_API_URL", "https://boards.example.com")
	t.Setenv("BOARDSYNC_CACHE_TTL", "15m")
	cfg := loadConfig()
	if cfg.socketURL != "wss://boards.example.com" {
		t.Fatalf("unexpected socket url %q", cfg.socketURL)
	}
	if cfg.cacheTTL != 15*time.Minute {
		t.Fatalf("unexpected cache ttl %v", cfg.cacheTTL)
	}
}

func TestAuthenticatedCommandRequiresSession(t *testing.T) {
	clearEnv(t)
	a := newApp(loadConfig())
	if _, err := a.requireSession(); err == nil {
		t.Fatal("expected a sign-in error without a session")
	} else if !strings.Contains(err.Error(), "not signed in") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCommandTree(t *testing.T) {
	for _, name := range []string{"login", "logout", "whoami", "boards", "cards", "tasks", "notifications", "watch"} {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("missing %q command", name)
		}
	}
}

func TestBoardsListRejectsSignedOut(t *testing.T) {
	clearEnv(t)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"boards", "list"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected an error without a session")
	}
}
