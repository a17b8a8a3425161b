package site

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	mdswagger "github.com/alnah/go-mdswagger"
)

func sampleReport() *Report {
	page := func(src, dest string) Page {
		return Page{Page: mdswagger.Page{SrcPath: src, DestPath: dest}}
	}
	return &Report{
		Pages: []PageResult{
			{
				Page:  page("docs/index.md", "site/index.html"),
				Bytes: 1500,
				Substitutions: []mdswagger.Substitution{
					{Kind: mdswagger.KindLocal, Target: "api.yaml"},
					{Kind: mdswagger.KindLocal, Target: "gone.yaml", Err: mdswagger.ErrFileNotFound},
				},
				Duration: 3 * time.Millisecond,
			},
			{Page: page("docs/broken.md", "site/broken.html"), Err: errors.New("boom")},
		},
		Artifacts: []ArtifactResult{
			{File: mdswagger.File{SrcPath: "docs/api.yaml", DestDir: "site", Name: "api.yaml"}, Bytes: 500, Copied: true},
		},
		ThemeBytes: 1000,
		Duration:   42 * time.Millisecond,
	}
}

func TestReport_Counts(t *testing.T) {
	t.Parallel()

	r := sampleReport()

	if got := r.FailedPages(); got != 1 {
		t.Errorf("FailedPages() = %d, want 1", got)
	}
	if got := r.FailedArtifacts(); got != 0 {
		t.Errorf("FailedArtifacts() = %d, want 0", got)
	}
	if got := r.Viewers(); got != 1 {
		t.Errorf("Viewers() = %d, want 1", got)
	}
	if got := r.Unresolved(); got != 1 {
		t.Errorf("Unresolved() = %d, want 1", got)
	}
	if got := r.TotalBytes(); got != 3000 {
		t.Errorf("TotalBytes() = %d, want 3000", got)
	}
	if !r.Failed() {
		t.Error("Failed() = false, want true")
	}
	if (&Report{}).Failed() {
		t.Error("empty report Failed() = true")
	}
}

func TestReport_Print(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		quiet       bool
		verbose     bool
		wantOut     []string
		wantMissing []string
	}{
		{
			name:        "default",
			wantOut:     []string{"Created site/index.html", "1 pages built, 1 failed, 1 artifacts, 1 swagger viewers, 3.0 kB written in 42ms"},
			wantMissing: []string{"Copied", "->"},
		},
		{
			name:        "verbose",
			verbose:     true,
			wantOut:     []string{"docs/index.md -> site/index.html (1.5 kB, 3ms, 2 swagger)", "Copied docs/api.yaml -> site/api.yaml"},
			wantMissing: []string{"Created"},
		},
		{
			name:        "quiet",
			quiet:       true,
			wantMissing: []string{"Created", "pages built"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			sampleReport().Print(&stdout, &stderr, tt.quiet, tt.verbose)

			for _, want := range tt.wantOut {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout missing %q:\n%s", want, stdout.String())
				}
			}
			for _, unwanted := range tt.wantMissing {
				if strings.Contains(stdout.String(), unwanted) {
					t.Errorf("stdout contains %q:\n%s", unwanted, stdout.String())
				}
			}
			if !strings.Contains(stderr.String(), "FAILED docs/broken.md: boom") {
				t.Errorf("stderr = %q, want failure line", stderr.String())
			}
		})
	}
}
