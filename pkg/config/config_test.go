package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	want := &Config{MaxArgs: 6, Color: "auto"}
	if diff := cmp.Diff(want, Default()); diff != "" {
		t.Errorf("Default() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *Config
		wantErr string
	}{
		{
			name:  "empty keeps defaults",
			input: "",
			want:  &Config{MaxArgs: 6, Color: "auto"},
		},
		{
			name:  "all keys",
			input: "max_args: 3\nstop_on_error: true\ncolor: never\n",
			want:  &Config{MaxArgs: 3, StopOnError: true, Color: "never"},
		},
		{
			name:    "negative max args",
			input:   "max_args: -1\n",
			wantErr: "max_args",
		},
		{
			name:    "bad color",
			input:   "color: purple\n",
			wantErr: "color",
		},
		{
			name:    "malformed yaml",
			input:   "max_args: [\n",
			wantErr: "invalid config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Parse() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minicc.yaml")
	if err := os.WriteFile(path, []byte("max_args: 2\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxArgs != 2 {
		t.Errorf("MaxArgs = %d, want 2", cfg.MaxArgs)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
