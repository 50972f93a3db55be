package gcalendar_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"atrova/pkg/gcalendar"
)

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	want := &oauth2.Token{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer", Expiry: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}

	if err := gcalendar.SaveToken(path, want); err != nil {
		t.Fatalf("SaveToken() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("token permissions = %v, want 0600", info.Mode().Perm())
	}

	got, err := gcalendar.LoadToken(path)
	if err != nil {
		t.Fatalf("LoadToken() error = %v", err)
	}
	if got.RefreshToken != "r" || !got.Expiry.Equal(want.Expiry) {
		t.Errorf("LoadToken() got = %+v", got)
	}
}

func TestOAuthConfigFromJSON(t *testing.T) {
	if _, err := gcalendar.OAuthConfigFromJSON([]byte(`{"broken":true}`)); err == nil {
		t.Error("expected error for credentials without an installed or web section")
	}

	cfg, err := gcalendar.OAuthConfigFromJSON([]byte(`{"installed":{"client_id":"id","client_secret":"s","auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token","redirect_uris":["http://localhost"]}}`))
	if err != nil {
		t.Fatalf("OAuthConfigFromJSON() error = %v", err)
	}
	if cfg.ClientID != "id" {
		t.Errorf("ClientID = %q", cfg.ClientID)
	}
}
