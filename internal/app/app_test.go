package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_FailsBeforeUIOnBadInput(t *testing.T) {
	cases := []struct {
		name    string
		config  string
		baseURL string
		want    string
	}{
		{"unparseable config", `base_url = [`, "", "load config"},
		{"invalid config value", `log_level = "loud"`, "", "load config"},
		{"invalid override", ``, "not a url", "base url override"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)

			path := filepath.Join(home, "config.toml")
			if err := os.WriteFile(path, []byte(tc.config), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}

			err := Run(context.Background(), Options{
				ConfigPath: path,
				PrefsPath:  filepath.Join(home, "prefs.toml"),
				BaseURL:    tc.baseURL,
			})
			if err == nil {
				t.Fatalf("Run returned nil error, want %s failure", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Run error = %q, want it to mention %q", err.Error(), tc.want)
			}
		})
	}
}
