package config

import (
	"flag"
	"testing"
)

func TestLoadFromEnv(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{"defaults", nil, Config{Secure: true}},
		{"debug_and_assets", map[string]string{"VRROOM_DEBUG": "true", "VRROOM_ASSETS_DIR": "assets"}, Config{Debug: true, AssetsDir: "assets", Secure: true}},
		{"insecure_xr", map[string]string{"VRROOM_XR": "1", "VRROOM_SECURE": "false"}, Config{XR: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for k, v := range c.env {
				t.Setenv(k, v)
			}
			got, err := Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got != c.want {
				t.Fatalf("Load = %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestLoadRejectsBadBool(t *testing.T) {
	t.Setenv("VRROOM_WATCH", "sometimes")
	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("VRROOM_DEBUG", "true")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	fs := flag.NewFlagSet("vrroom", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse([]string{"-debug=false", "-assets", "dev", "-watch"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Debug || cfg.AssetsDir != "dev" || !cfg.Watch {
		t.Fatalf("cfg = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	if err := (Config{Watch: true}).Validate(); err == nil {
		t.Fatalf("watch without assets dir should fail")
	}
}
