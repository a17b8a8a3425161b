package assets

import "errors"

// Layered looks an asset up in each theme in order. Only "not found"
// moves on to the next theme; invalid names and read errors stop.
type Layered struct {
	themes []Theme
}

// Open returns the theme for a site: themeDir over the built-in theme,
// or the built-in theme alone when themeDir is empty.
func Open(themeDir string) (*Layered, error) {
	if themeDir == "" {
		return &Layered{themes: []Theme{Builtin()}}, nil
	}
	custom, err := DirTheme(themeDir)
	if err != nil {
		return nil, err
	}
	return &Layered{themes: []Theme{custom, Builtin()}}, nil
}

// Layout returns the first layout found.
func (l *Layered) Layout(name string) (string, error) {
	return l.first(func(t Theme) (string, error) { return t.Layout(name) })
}

// Stylesheet returns the first stylesheet found.
func (l *Layered) Stylesheet(name string) (string, error) {
	return l.first(func(t Theme) (string, error) { return t.Stylesheet(name) })
}

// Custom reports whether a theme directory overrides the built-in theme.
func (l *Layered) Custom() bool {
	return len(l.themes) > 1
}

func (l *Layered) first(load func(Theme) (string, error)) (string, error) {
	var err error
	for _, t := range l.themes {
		var content string
		content, err = load(t)
		if err == nil {
			return content, nil
		}
		if !errors.Is(err, ErrLayoutNotFound) && !errors.Is(err, ErrStylesheetNotFound) {
			return "", err
		}
	}
	return "", err
}

// Compile-time interface check.
var _ Theme = (*Layered)(nil)
