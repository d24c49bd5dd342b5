package assets

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"pronouner/internal/grammar"
)

type castDocument struct {
	Map map[string]grammar.Character `json:"map" toml:"map"`
}

// LoadCast reads and validates a cast file.
func LoadCast(path string) (*grammar.Cast, Digest, error) {
	data, format, err := readAsset(path)
	if err != nil {
		return nil, Digest{}, fmt.Errorf("load cast: %w", err)
	}
	cast, err := ParseCast(data, format)
	if err != nil {
		return nil, Digest{}, fmt.Errorf("%s: %w", path, err)
	}
	return cast, sha256.Sum256(data), nil
}

// ParseCast decodes and validates a cast document.
func ParseCast(data []byte, format Format) (*grammar.Cast, error) {
	var doc castDocument
	if err := decodeDocument(data, format, &doc, "pronouns", "title"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCast, err)
	}
	if doc.Map == nil {
		return nil, fmt.Errorf("%w: missing \"map\"", ErrInvalidCast)
	}
	cast := grammar.NewCastFrom(doc.Map)
	if err := ValidateCast(cast); err != nil {
		return nil, err
	}
	return cast, nil
}

// ValidateCast reports every problem in cast at once.
func ValidateCast(cast *grammar.Cast) error {
	var errs []error
	for _, id := range cast.IDs() {
		ch, _ := cast.Get(id)
		if strings.TrimSpace(id) == "" {
			errs = append(errs, errors.New("empty character id"))
		}
		if strings.TrimSpace(ch.Name) == "" {
			errs = append(errs, fmt.Errorf("character %q: empty name", id))
		}
		if c := ch.Pronouns.Custom; ch.Pronouns.Preset == grammar.CustomSet {
			switch {
			case c == nil:
				errs = append(errs, fmt.Errorf("character %q: custom pronouns without forms", id))
			case c.Subjective == "" || c.Objective == "" || c.PossessiveDeterminer == "" || c.Possessive == "" || c.Reflexive == "":
				errs = append(errs, fmt.Errorf("character %q: custom pronouns need all five forms", id))
			}
		}
		if ch.Title != nil && ch.Title.Kind == grammar.CustomTitle && strings.TrimSpace(ch.Title.Text) == "" {
			errs = append(errs, fmt.Errorf("character %q: empty custom title", id))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidCast, errors.Join(errs...))
}
