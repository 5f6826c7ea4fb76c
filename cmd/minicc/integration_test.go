package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

// IntegrationCase is one case of testdata/parse.yaml
type IntegrationCase struct {
	Name   string   `yaml:"name"`
	Input  string   `yaml:"input"`
	Units  []string `yaml:"units"`
	Errors []string `yaml:"errors,omitempty"`
}

// IntegrationCaseFile represents the parse.yaml file structure
type IntegrationCaseFile struct {
	Tests []IntegrationCase `yaml:"tests"`
}

// TestIntegrationDParse runs every parser case through the command line and
// compares the -dparse dump with the expected units
func TestIntegrationDParse(t *testing.T) {
	data, err := os.ReadFile("../../testdata/parse.yaml")
	if err != nil {
		t.Fatalf("failed to read parse.yaml: %v", err)
	}

	var testFile IntegrationCaseFile
	if err := yaml.Unmarshal(data, &testFile); err != nil {
		t.Fatalf("failed to parse parse.yaml: %v", err)
	}

	for _, tc := range testFile.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			srcFile := filepath.Join(t.TempDir(), "case.c")
			if err := os.WriteFile(srcFile, []byte(tc.Input), 0644); err != nil {
				t.Fatalf("failed to write source: %v", err)
			}

			out, errOut, err := execute(t, "-dparse", "--color", "never", srcFile)

			if len(tc.Errors) > 0 {
				if !errors.Is(err, ErrParseFailed) {
					t.Fatalf("expected ErrParseFailed, got %v", err)
				}
				lines := strings.Split(strings.TrimRight(errOut, "\n"), "\n")
				if len(lines) != len(tc.Errors) {
					t.Errorf("expected %d diagnostics, got %q", len(tc.Errors), errOut)
				}
				for _, line := range lines {
					if !strings.HasPrefix(line, srcFile+": line ") {
						t.Errorf("diagnostic %q lacks file and position", line)
					}
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v (stderr %q)", err, errOut)
			}
			header, body, _ := strings.Cut(out, "\n")
			if !strings.HasPrefix(header, "; "+srcFile+" xxhash=") {
				t.Errorf("unexpected header %q", header)
			}
			got := []string{}
			if body != "" {
				got = strings.Split(strings.TrimRight(body, "\n"), "\n")
			}
			want := tc.Units
			if want == nil {
				want = []string{}
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("dump mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
