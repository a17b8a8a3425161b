package mdswagger

// Notes:
// - Legacy detection matches on the URL path base name, so query strings and
//   CDN prefixes do not matter
// - Deprecation warnings are asserted on the captured structured log output

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestDetectLegacyAssets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		site      SiteAssets
		want      ViewerAssets
		wantWarns int
	}{
		{
			name: "nothing configured",
			site: SiteAssets{},
			want: DefaultViewerAssets(),
		},
		{
			name: "unrelated extras ignored",
			site: SiteAssets{
				ExtraJavaScript: []string{"js/app.js", "swagger-ui-bundle.js.map"},
				ExtraCSS:        []string{"css/site.css"},
			},
			want: DefaultViewerAssets(),
		},
		{
			name:      "local bundle adopted",
			site:      SiteAssets{ExtraJavaScript: []string{"js/app.js", "vendor/swagger-ui-bundle.js"}},
			want:      ViewerAssets{JS: "vendor/swagger-ui-bundle.js", CSS: DefaultViewerCSS},
			wantWarns: 1,
		},
		{
			name:      "url with query adopted",
			site:      SiteAssets{ExtraCSS: []string{"https://cdn.example/swagger/swagger-ui.css?v=5"}},
			want:      ViewerAssets{JS: DefaultViewerJS, CSS: "https://cdn.example/swagger/swagger-ui.css?v=5"},
			wantWarns: 1,
		},
		{
			name: "first match wins",
			site: SiteAssets{
				ExtraJavaScript: []string{"a/swagger-ui-bundle.js", "b/swagger-ui-bundle.js"},
				ExtraCSS:        []string{"a/swagger-ui.css", "b/swagger-ui.css"},
			},
			want:      ViewerAssets{JS: "a/swagger-ui-bundle.js", CSS: "a/swagger-ui.css"},
			wantWarns: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, buf := captureLogger()
			got := DetectLegacyAssets(tt.site, logger)

			if got != tt.want {
				t.Errorf("DetectLegacyAssets() = %+v, want %+v", got, tt.want)
			}
			if n := strings.Count(buf.String(), "swagger.asset.deprecated"); n != tt.wantWarns {
				t.Errorf("deprecation warnings = %d, want %d\n%s", n, tt.wantWarns, buf.String())
			}
		})
	}
}

func TestResolveViewerAssets_Precedence(t *testing.T) {
	t.Parallel()

	site := SiteAssets{
		ExtraJavaScript: []string{"legacy/swagger-ui-bundle.js"},
		ExtraCSS:        []string{"legacy/swagger-ui.css"},
	}

	t.Run("options win over legacy", func(t *testing.T) {
		t.Parallel()

		logger, buf := captureLogger()
		got := ResolveViewerAssets(Options{JavaScript: "opt.js", CSS: "opt.css"}, site, logger)

		if got.JS != "opt.js" || got.CSS != "opt.css" {
			t.Errorf("got %+v, want option values", got)
		}
		if !strings.Contains(buf.String(), "swagger.asset.deprecated") {
			t.Error("legacy entries should still be reported")
		}
	})

	t.Run("legacy wins over default", func(t *testing.T) {
		t.Parallel()

		got := ResolveViewerAssets(Options{CSS: "opt.css"}, site, nil)

		if got.JS != "legacy/swagger-ui-bundle.js" {
			t.Errorf("JS = %q, want legacy bundle", got.JS)
		}
		if got.CSS != "opt.css" {
			t.Errorf("CSS = %q, want option", got.CSS)
		}
	})
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeFile(t, filepath.Join(base, "vendor", "swagger-ui-bundle.js"), "/* js */")
	writeFile(t, filepath.Join(base, "vendor", "swagger-ui.css"), "/* css */")

	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{
			name: "empty options",
			opts: Options{},
		},
		{
			name: "relative to base dir",
			opts: Options{JavaScript: "vendor/swagger-ui-bundle.js", CSS: "vendor/swagger-ui.css", BaseDir: base},
		},
		{
			name: "absolute path",
			opts: Options{JavaScript: filepath.Join(base, "vendor", "swagger-ui-bundle.js")},
		},
		{
			name: "cdn url",
			opts: Options{JavaScript: "https://cdn.example/swagger-ui-bundle.js"},
		},
		{
			name:    "missing javascript",
			opts:    Options{JavaScript: "vendor/missing.js", BaseDir: base},
			wantErr: true,
		},
		{
			name:    "css is a directory",
			opts:    Options{CSS: "vendor", BaseDir: base},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.opts.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrAssetNotFound) {
					t.Errorf("Validate() error = %v, want ErrAssetNotFound", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}
