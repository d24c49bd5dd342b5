// Package assets loads cast and dictionary documents from JSON or TOML files.
package assets

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"pronouner/internal/diag"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported asset format")
	ErrInvalidCast       = errors.New("invalid cast")
	ErrInvalidDictionary = errors.New("invalid dictionary")
)

// Format is the encoding of an asset document.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %s (want .json or .toml)", ErrUnsupportedFormat, path)
	}
}

// Digest is the sha256 of an asset file's bytes.
type Digest [32]byte

func readAsset(path string) ([]byte, Format, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, 0, err
	}
	// #nosec G304 -- path comes from the manifest or a flag
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	return data, format, nil
}

// decodeDocument decodes {"map": {...}} into out, rejecting unknown keys.
// TOML keys below map.<id>.<field> for a field in opaque are decoded by the
// field's own UnmarshalTOML and are not checked.
func decodeDocument(data []byte, format Format, out any, opaque ...string) error {
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(out)
	case FormatTOML:
		meta, err := toml.Decode(string(data), out)
		if err != nil {
			return err
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				if len(k) >= 3 && slices.Contains(opaque, k[2]) {
					continue
				}
				keys = append(keys, k.String())
			}
			if len(keys) > 0 {
				return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
}

// ErrorCode maps a load error to its diagnostic code.
func ErrorCode(err error) diag.Code {
	switch {
	case errors.Is(err, ErrInvalidCast):
		return diag.PrjCastInvalid
	case errors.Is(err, ErrInvalidDictionary):
		return diag.PrjDictionaryInvalid
	default:
		return diag.IOLoadFileError
	}
}
