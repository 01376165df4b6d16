package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "addrbook.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Session.Prompt != "Enter a command: " {
		t.Errorf("default prompt = %q, want %q", cfg.Session.Prompt, "Enter a command: ")
	}
	if cfg.Birthdays.WindowDays != 7 {
		t.Errorf("default window = %d, want 7", cfg.Birthdays.WindowDays)
	}
	if cfg.Log.File != "" {
		t.Errorf("default log file = %q, want empty", cfg.Log.File)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, `
session:
  prompt: "> "
  plain: true
birthdays:
  window_days: 14
log:
  level: debug
  file: /tmp/addrbook.log
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Session.Prompt != "> " {
		t.Errorf("prompt = %q, want %q", cfg.Session.Prompt, "> ")
	}
	if !cfg.Session.Plain {
		t.Error("plain = false, want true")
	}
	if cfg.Birthdays.WindowDays != 14 {
		t.Errorf("window = %d, want 14", cfg.Birthdays.WindowDays)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "/tmp/addrbook.log" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/addrbook.yaml")
	if err != nil {
		t.Fatalf("Load() should return defaults for missing file, got error: %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("Load(missing) = %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "{{invalid yaml")

	if _, err := Load(path); err == nil {
		t.Fatal("Load(invalid YAML) should return error")
	}
}

func TestLoad_UnknownField(t *testing.T) {
	path := writeConfig(t, `
birthdays:
  windw_days: 3
`)

	if _, err := Load(path); err == nil {
		t.Fatal("Load() should return error for unknown field 'windw_days'")
	}
}

func TestLoad_PartialConfig(t *testing.T) {
	path := writeConfig(t, `
birthdays:
  window_days: 3
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Birthdays.WindowDays != 3 {
		t.Errorf("window = %d, want 3", cfg.Birthdays.WindowDays)
	}
	// Unset fields should retain defaults.
	if cfg.Session.Prompt != "Enter a command: " {
		t.Errorf("prompt = %q, want default", cfg.Session.Prompt)
	}
}

func TestLoad_CommentOnlyFile(t *testing.T) {
	path := writeConfig(t, "# just a comment\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(comment-only) error = %v", err)
	}
	if want := DefaultConfig(); *cfg != want {
		t.Errorf("Load(comment-only) = %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(empty) error = %v", err)
	}
	if want := DefaultConfig(); *cfg != want {
		t.Errorf("Load(empty) = %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoadLayered_Priority(t *testing.T) {
	// Given: user config sets prompt and window, project config overrides window.
	userCfg := writeConfig(t, `
session:
  prompt: "user> "
birthdays:
  window_days: 10
`)
	projectCfg := writeConfig(t, `
birthdays:
  window_days: 0
`)

	// When: both layers are loaded
	cfg, err := LoadLayered(userCfg, projectCfg)
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}

	// Then: prompt comes from the user layer, window from the project layer
	if cfg.Session.Prompt != "user> " {
		t.Errorf("prompt = %q, want %q", cfg.Session.Prompt, "user> ")
	}
	if cfg.Birthdays.WindowDays != 0 {
		t.Errorf("window = %d, want 0 (explicit zero overrides)", cfg.Birthdays.WindowDays)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want default %q", cfg.Log.Level, "info")
	}
}

func TestLoadLayered_AllMissing(t *testing.T) {
	cfg, err := LoadLayered("/no/user.yaml", "", "/no/project.yaml")
	if err != nil {
		t.Fatalf("LoadLayered(all missing) error = %v", err)
	}
	if want := DefaultConfig(); *cfg != want {
		t.Errorf("got %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoadLayered_InvalidLayer(t *testing.T) {
	bad := writeConfig(t, "session: [")

	if _, err := LoadLayered(bad); err == nil {
		t.Fatal("LoadLayered() should return error for invalid YAML layer")
	}
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name    string
		envs    map[string]string
		wantErr bool
		check   func(*testing.T, Config)
	}{
		{
			name: "ADDRBOOK_PROMPT overrides prompt",
			envs: map[string]string{"ADDRBOOK_PROMPT": "$ "},
			check: func(t *testing.T, c Config) {
				if c.Session.Prompt != "$ " {
					t.Errorf("prompt = %q, want %q", c.Session.Prompt, "$ ")
				}
			},
		},
		{
			name: "ADDRBOOK_WINDOW_DAYS overrides window",
			envs: map[string]string{"ADDRBOOK_WINDOW_DAYS": "30"},
			check: func(t *testing.T, c Config) {
				if c.Birthdays.WindowDays != 30 {
					t.Errorf("window = %d, want 30", c.Birthdays.WindowDays)
				}
			},
		},
		{
			name: "ADDRBOOK_LOG_* override log settings",
			envs: map[string]string{"ADDRBOOK_LOG_LEVEL": "debug", "ADDRBOOK_LOG_FILE": "/var/log/ab.log"},
			check: func(t *testing.T, c Config) {
				if c.Log.Level != "debug" || c.Log.File != "/var/log/ab.log" {
					t.Errorf("log = %+v", c.Log)
				}
			},
		},
		{
			name:    "invalid ADDRBOOK_WINDOW_DAYS returns error",
			envs:    map[string]string{"ADDRBOOK_WINDOW_DAYS": "week"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envs {
				t.Setenv(k, v)
			}
			cfg := DefaultConfig()
			err := cfg.ApplyEnv()

			if tt.wantErr {
				if err == nil {
					t.Fatal("ApplyEnv() should return error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnv() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			modify: func(*Config) {},
		},
		{
			name:   "zero window is valid",
			modify: func(c *Config) { c.Birthdays.WindowDays = 0 },
		},
		{
			name:    "negative window",
			modify:  func(c *Config) { c.Birthdays.WindowDays = -1 },
			wantErr: true,
		},
		{
			name:    "empty prompt",
			modify:  func(c *Config) { c.Session.Prompt = "" },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
