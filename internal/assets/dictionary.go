package assets

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"pronouner/internal/grammar"
)

type dictionaryDocument struct {
	Map map[string]grammar.Verb `json:"map" toml:"map"`
}

// LoadDictionary reads and validates a verb dictionary file.
func LoadDictionary(path string) (*grammar.Dictionary, Digest, error) {
	data, format, err := readAsset(path)
	if err != nil {
		return nil, Digest{}, fmt.Errorf("load dictionary: %w", err)
	}
	dict, err := ParseDictionary(data, format)
	if err != nil {
		return nil, Digest{}, fmt.Errorf("%s: %w", path, err)
	}
	return dict, sha256.Sum256(data), nil
}

// ParseDictionary decodes and validates a dictionary document.
func ParseDictionary(data []byte, format Format) (*grammar.Dictionary, error) {
	var doc dictionaryDocument
	if err := decodeDocument(data, format, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDictionary, err)
	}
	if doc.Map == nil {
		return nil, fmt.Errorf("%w: missing \"map\"", ErrInvalidDictionary)
	}
	dict := grammar.NewDictionaryFrom(doc.Map)
	if err := ValidateDictionary(dict); err != nil {
		return nil, err
	}
	return dict, nil
}

// ValidateDictionary rejects empty keys and verbs with no forms at all.
// Missing individual forms are fine; they fail at compile time.
func ValidateDictionary(dict *grammar.Dictionary) error {
	var errs []error
	for _, key := range dict.Keys() {
		v, _ := dict.Get(key)
		if strings.TrimSpace(key) == "" {
			errs = append(errs, errors.New("empty verb key"))
		}
		if v.FormCount() == 0 {
			errs = append(errs, fmt.Errorf("verb %q defines no forms", key))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidDictionary, errors.Join(errs...))
}
