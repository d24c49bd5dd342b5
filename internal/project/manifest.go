package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"

	"pronouner/internal/textmod"
)

// ErrInvalidManifest wraps every manifest validation failure.
var ErrInvalidManifest = errors.New("invalid project manifest")

const (
	DefaultDialogs = "dialogs"
	DefaultOut     = "build"
)

// Manifest is a loaded pronouner.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Project ProjectConfig `toml:"project"`
	Sources SourcesConfig `toml:"sources"`
	Build   BuildConfig   `toml:"build"`
}

type ProjectConfig struct {
	Name string `toml:"name"`
}

type SourcesConfig struct {
	Cast       string `toml:"cast"`
	Dictionary string `toml:"dictionary"`
	Dialogs    string `toml:"dialogs"`
}

type BuildConfig struct {
	Out       string `toml:"out"`
	Jobs      int    `toml:"jobs"`
	Normalize string `toml:"normalize"`
	Cache     *bool  `toml:"cache"`
	CacheDir  string `toml:"cache_dir"`
}

// CacheEnabled reports whether the build cache is on (default true).
func (b BuildConfig) CacheEnabled() bool {
	return b.Cache == nil || *b.Cache
}

// Normalization parses Normalize; Load has already validated it.
func (b BuildConfig) Normalization() textmod.Normalization {
	n, _ := textmod.ParseNormalization(b.Normalize)
	return n
}

// IsValidProjectName accepts ASCII letters, digits, '_' and '-', starting with a letter or '_'.
func IsValidProjectName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r > unicode.MaxASCII {
			return false
		}
		if i == 0 && r != '_' && !unicode.IsLetter(r) {
			return false
		}
		if i > 0 && r != '_' && r != '-' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Load parses and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	meta, err := toml.DecodeFile(abs, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: failed to parse TOML: %w", abs, ErrInvalidManifest, err)
	}
	if !meta.IsDefined("project", "name") || strings.TrimSpace(cfg.Project.Name) == "" {
		return nil, fmt.Errorf("%s: %w: missing [project].name", abs, ErrInvalidManifest)
	}
	if !IsValidProjectName(cfg.Project.Name) {
		return nil, fmt.Errorf("%s: %w: bad [project].name %q", abs, ErrInvalidManifest, cfg.Project.Name)
	}
	if !meta.IsDefined("sources", "cast") || strings.TrimSpace(cfg.Sources.Cast) == "" {
		return nil, fmt.Errorf("%s: %w: missing [sources].cast", abs, ErrInvalidManifest)
	}
	if !meta.IsDefined("sources", "dictionary") || strings.TrimSpace(cfg.Sources.Dictionary) == "" {
		return nil, fmt.Errorf("%s: %w: missing [sources].dictionary", abs, ErrInvalidManifest)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", abs, err)
	}
	cfg.applyDefaults()
	return &Manifest{Path: abs, Root: filepath.Dir(abs), Config: cfg}, nil
}

// Discover finds and loads the manifest above startDir.
func Discover(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

func (c *Config) validate() error {
	if c.Build.Jobs < 0 {
		return fmt.Errorf("%w: [build].jobs must not be negative", ErrInvalidManifest)
	}
	if _, ok := textmod.ParseNormalization(c.Build.Normalize); !ok {
		return fmt.Errorf("%w: [build].normalize must be \"none\" or \"nfc\", got %q", ErrInvalidManifest, c.Build.Normalize)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Sources.Dialogs) == "" {
		c.Sources.Dialogs = DefaultDialogs
	}
	if strings.TrimSpace(c.Build.Out) == "" {
		c.Build.Out = DefaultOut
	}
}

// Resolve makes a manifest-relative path absolute.
func (m *Manifest) Resolve(rel string) string {
	if rel == "" || filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(m.Root, filepath.FromSlash(rel))
}

func (m *Manifest) CastPath() string       { return m.Resolve(m.Config.Sources.Cast) }
func (m *Manifest) DictionaryPath() string { return m.Resolve(m.Config.Sources.Dictionary) }
func (m *Manifest) DialogsDir() string     { return m.Resolve(m.Config.Sources.Dialogs) }
func (m *Manifest) OutDir() string         { return m.Resolve(m.Config.Build.Out) }
