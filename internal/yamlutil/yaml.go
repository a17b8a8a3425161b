// Package yamlutil is the single place the YAML library is imported.
// Decoding is always strict: a misspelled key in a site config is an error.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize bounds the documents accepted by UnmarshalStrict (1 MiB).
const MaxInputSize = 1 << 20

// Sentinel errors for YAML decoding.
var (
	ErrNilData        = errors.New("yamlutil: empty document")
	ErrNilDestination = errors.New("yamlutil: nil destination")
	ErrInputTooLarge  = errors.New("yamlutil: document too large")
)

// UnmarshalStrict decodes data into v, failing on keys v does not declare.
// Fields absent from data keep the values already in v, so callers can
// pass a struct pre-filled with defaults.
func UnmarshalStrict(data []byte, v any) error {
	switch {
	case len(data) == 0:
		return ErrNilData
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	case v == nil:
		return ErrNilDestination
	}

	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		// FormatError adds line and column with a source excerpt.
		return fmt.Errorf("yamlutil: %s", yaml.FormatError(err, false, true))
	}
	return nil
}

// Marshal encodes v with two-space indentation and indented sequences,
// the layout used in the documentation's config examples.
func Marshal(v any) ([]byte, error) {
	out, err := yaml.MarshalWithOptions(v, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}
