package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Helpers
// ---------------------------------------------------------------------------

// testEnv returns an Environment with captured output and the given
// variables as its whole environment.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(k string) string { return vars[k] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			return out
		},
	}
	return env, &stdout, &stderr
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// sampleProject writes a config file, a docs dir with one swagger page, and
// returns the config path.
func sampleProject(t *testing.T, extraConfig string) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "docs", "index.md"), "# API\n\n!!swagger api.yaml!!\n")
	writeFile(t, filepath.Join(root, "docs", "api.yaml"), "openapi: 3.0.0\n")

	cfgPath := filepath.Join(root, "mdswagger.yml")
	writeFile(t, cfgPath, "site_name: Sample\ndocs_dir: docs\nsite_dir: site\n"+extraConfig)
	return cfgPath
}
