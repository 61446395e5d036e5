package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/suryansh-23/redactkit/internal/allowlist"
	"github.com/suryansh-23/redactkit/internal/redact"
	"github.com/suryansh-23/redactkit/internal/types"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigVersion = 1
	defaultConfigRelPath = "redactkit/config.yaml"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the top-level configuration schema.
type Config struct {
	Version int `yaml:"version"`

	Redaction Redaction `yaml:"redaction"`
	Allowlist Allowlist `yaml:"allowlist"`
	Output    Output    `yaml:"output"`
	Clipboard Clipboard `yaml:"clipboard"`
	Cache     Cache     `yaml:"cache"`
	Watch     Watch     `yaml:"watch"`

	Debug Debug `yaml:"debug"`
}

// Redaction configures detection and replacement.
type Redaction struct {
	Detectors      Detectors           `yaml:"detectors"`
	RedactionChar  string              `yaml:"redaction_char"`
	PreserveLength bool                `yaml:"preserve_length"`
	Overlap        types.OverlapPolicy `yaml:"overlap"`
}

// Detectors toggles each category.
type Detectors struct {
	Emails       bool `yaml:"emails"`
	PhoneNumbers bool `yaml:"phone_numbers"`
	SSN          bool `yaml:"ssn"`
	CreditCards  bool `yaml:"credit_cards"`
	Names        bool `yaml:"names"`
	Addresses    bool `yaml:"addresses"`
}

// Allowlist lists glob patterns of values that are never redacted.
type Allowlist struct {
	Enabled bool     `yaml:"enabled"`
	Values  []string `yaml:"values,omitempty"`
}

// Output controls how the CLI renders results.
type Output struct {
	Format  types.OutputFormat `yaml:"format"`
	Summary bool               `yaml:"summary"`
}

// Clipboard selects the copy backend.
type Clipboard struct {
	Backend string `yaml:"backend"`
}

// Cache bounds the in-memory result cache.
type Cache struct {
	Enabled    bool `yaml:"enabled"`
	MaxEntries int  `yaml:"max_entries"`
	TTLSeconds int  `yaml:"ttl_seconds"`
}

// Watch configures the file watcher.
type Watch struct {
	DebounceMS int `yaml:"debounce_ms"`
}

// Debug controls sanitized logging.
type Debug struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"`
}

// DefaultConfig returns the canonical default configuration.
func DefaultConfig() Config {
	opts := redact.DefaultOptions()
	return Config{
		Version: DefaultConfigVersion,
		Redaction: Redaction{
			Detectors: Detectors{
				Emails:       opts.Emails,
				PhoneNumbers: opts.PhoneNumbers,
				SSN:          opts.SSN,
				CreditCards:  opts.CreditCards,
				Names:        opts.Names,
				Addresses:    opts.Addresses,
			},
			RedactionChar:  opts.RedactionChar,
			PreserveLength: opts.PreserveLength,
			Overlap:        opts.Overlap,
		},
		Allowlist: Allowlist{
			Enabled: false,
			Values:  nil,
		},
		Output: Output{
			Format:  types.OutputText,
			Summary: false,
		},
		Clipboard: Clipboard{
			Backend: "auto",
		},
		Cache: Cache{
			Enabled:    true,
			MaxEntries: 64,
			TTLSeconds: 300,
		},
		Watch: Watch{
			DebounceMS: 150,
		},
		Debug: Debug{
			Enabled: false,
			Format:  "console",
		},
	}
}

// RedactOptions converts the redaction section into engine options.
func (c Config) RedactOptions() redact.Options {
	d := c.Redaction.Detectors
	return redact.Options{
		Emails:         d.Emails,
		PhoneNumbers:   d.PhoneNumbers,
		SSN:            d.SSN,
		CreditCards:    d.CreditCards,
		Names:          d.Names,
		Addresses:      d.Addresses,
		RedactionChar:  c.Redaction.RedactionChar,
		PreserveLength: c.Redaction.PreserveLength,
		Overlap:        c.Redaction.Overlap,
	}
}

// SetRedactOptions stores opts in the redaction section.
func (c *Config) SetRedactOptions(opts redact.Options) {
	c.Redaction.Detectors = Detectors{
		Emails:       opts.Emails,
		PhoneNumbers: opts.PhoneNumbers,
		SSN:          opts.SSN,
		CreditCards:  opts.CreditCards,
		Names:        opts.Names,
		Addresses:    opts.Addresses,
	}
	c.Redaction.RedactionChar = redact.NormalizeChar(opts.RedactionChar)
	c.Redaction.PreserveLength = opts.PreserveLength
	c.Redaction.Overlap = opts.Overlap
	if c.Redaction.Overlap == "" {
		c.Redaction.Overlap = types.OverlapSplice
	}
}

// AllowlistValues returns the active allowlist patterns.
func (c Config) AllowlistValues() []string {
	if !c.Allowlist.Enabled {
		return nil
	}
	return c.Allowlist.Values
}

// DefaultPath returns the default config path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, defaultConfigRelPath), nil
	}
	return filepath.Join(home, ".config", defaultConfigRelPath), nil
}

// Parse parses YAML config content, applying defaults.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads config from disk, applying defaults when missing.
// The boolean return indicates whether a config file was found.
func Load(pathOverride string) (Config, bool, error) {
	path := strings.TrimSpace(pathOverride)
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Config{}, false, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), false, nil
		}
		return Config{}, false, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, true, err
	}
	return cfg, true, nil
}

// Validate enforces the supported configuration schema.
func (c Config) Validate() error {
	var errs []string
	if c.Version != DefaultConfigVersion {
		errs = append(errs, fmt.Sprintf("version must be %d", DefaultConfigVersion))
	}
	if c.Redaction.RedactionChar != "" && !utf8.ValidString(c.Redaction.RedactionChar) {
		errs = append(errs, "redaction.redaction_char must be valid UTF-8")
	}
	if !c.Redaction.Overlap.Valid() {
		errs = append(errs, fmt.Sprintf("redaction.overlap must be one of: %s", joinPolicies()))
	}
	for i, entry := range c.Allowlist.Values {
		if strings.TrimSpace(entry) == "" {
			errs = append(errs, fmt.Sprintf("allowlist.values[%d] must not be empty", i))
			continue
		}
		if err := allowlist.Validate([]string{entry}); err != nil {
			errs = append(errs, fmt.Sprintf("allowlist.values[%d] has invalid pattern: %v", i, err))
		}
	}
	switch c.Output.Format {
	case types.OutputText, types.OutputJSON:
	default:
		errs = append(errs, "output.format must be text or json")
	}
	if c.Clipboard.Backend == "" {
		errs = append(errs, "clipboard.backend is required")
	} else if !validClipboardBackend(c.Clipboard.Backend) {
		errs = append(errs, "clipboard.backend must be one of: auto, pbcopy, wl-copy, xclip, xsel, none")
	}
	if c.Cache.MaxEntries < 0 {
		errs = append(errs, "cache.max_entries must be >= 0")
	}
	if c.Cache.TTLSeconds < 0 {
		errs = append(errs, "cache.ttl_seconds must be >= 0")
	}
	if c.Watch.DebounceMS < 0 {
		errs = append(errs, "watch.debounce_ms must be >= 0")
	}
	switch c.Debug.Format {
	case "", "console", "json":
	default:
		errs = append(errs, "debug.format must be console or json")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}

func joinPolicies() string {
	var names []string
	for _, p := range types.OverlapPolicies() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

func validClipboardBackend(backend string) bool {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "auto", "pbcopy", "wl-copy", "xclip", "xsel", "none":
		return true
	default:
		return false
	}
}
