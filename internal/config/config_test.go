package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"wearable_display/internal/models"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoad_FileAndDefaults(t *testing.T) {
	p := writeConfig(t, `
port: "9090"
auth:
  signing_key: "k"
display:
  sleep_threshold: 15s
  start_screen: spl_plot_ecg
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.Auth.SigningKey != "k" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Display.SleepThreshold != 15*time.Second {
		t.Fatalf("sleep threshold = %s", cfg.Display.SleepThreshold)
	}
	if cfg.Display.Tick != 50*time.Millisecond || cfg.Auth.TokenTTL != 12*time.Hour {
		t.Fatalf("defaults not applied: %+v", cfg.Display)
	}

	dc := cfg.ControllerConfig()
	if dc.StartScreen != models.ScreenSplPlotECG || dc.SleepThreshold != 15*time.Second {
		t.Fatalf("controller config = %+v", dc)
	}
	if dc.Profile != models.DefaultUserProfile() {
		t.Fatalf("profile = %+v", dc.Profile)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	p := writeConfig(t, "port: \"8080\"\n")
	t.Setenv("WD_AUTH_SIGNING_KEY", "from-env")
	t.Setenv("WD_DISPLAY_SLEEP_THRESHOLD", "20s")

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.SigningKey != "from-env" {
		t.Fatalf("signing key = %q", cfg.Auth.SigningKey)
	}
	if cfg.Display.SleepThreshold != 20*time.Second {
		t.Fatalf("sleep threshold = %s", cfg.Display.SleepThreshold)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing signing key", "port: \"8080\"\n", "auth.signing_key"},
		{"bad start screen", "auth:\n  signing_key: k\ndisplay:\n  start_screen: NOPE\n", "start_screen"},
		{"gpio without pin", "auth:\n  signing_key: k\ngpio:\n  enabled: true\n  panel_pin: \"\"\n", "gpio.panel_pin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
