// Package config holds the fuzzer configuration consumed by mutant
// factories. Each mutant kind is switched on by its own boolean toggle; an
// absent or false toggle disables that kind entirely.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reqforge/reqforge/pkg/defaults"
	"github.com/reqforge/reqforge/pkg/httpreq"
	"gopkg.in/yaml.v3"
)

// FuzzerConfig toggles mutant kinds and tunes value encoding.
type FuzzerConfig struct {
	// Mutant kind toggles
	FuzzURLFilenames bool `yaml:"fuzz_url_filenames"`
	FuzzCookies      bool `yaml:"fuzz_cookies"`
	FuzzQueryString  bool `yaml:"fuzz_query_string"`
	FuzzHeaders      bool `yaml:"fuzz_headers"`

	// FuzzableHeaders limits header mutants to these names (case-insensitive).
	// Empty means every header except Host.
	FuzzableHeaders []string `yaml:"fuzzable_headers,omitempty"`

	// SafeEncodeChars are left literal by the first percent-encoding pass.
	SafeEncodeChars string `yaml:"safe_encode_chars"`

	// DoubleEncodeSafeChars are additionally left literal by the
	// double-encoded filename variant (default "/").
	DoubleEncodeSafeChars string `yaml:"double_encode_safe_chars"`

	// Concurrency bounds how many factories run at once during Generate.
	Concurrency int `yaml:"concurrency"`
}

// Defaults returns a configuration with every mutant kind disabled and the
// encoding defaults applied.
func Defaults() *FuzzerConfig {
	return &FuzzerConfig{
		DoubleEncodeSafeChars: defaults.DoubleEncodeSafeChars,
		Concurrency:           defaults.Concurrency,
	}
}

// EnableAll switches on every mutant kind.
func (c *FuzzerConfig) EnableAll() {
	c.FuzzURLFilenames = true
	c.FuzzCookies = true
	c.FuzzQueryString = true
	c.FuzzHeaders = true
}

// Validate checks the configuration for values the encoder cannot honor.
func (c *FuzzerConfig) Validate() error {
	if c.Concurrency < 0 {
		return fmt.Errorf("%w: concurrency must be >= 0, got %d", ErrInvalidConfig, c.Concurrency)
	}
	for _, set := range []string{c.SafeEncodeChars, c.DoubleEncodeSafeChars} {
		if strings.ContainsAny(set, "% ") {
			return fmt.Errorf("%w: safe characters %q may not contain '%%' or space", ErrInvalidConfig, set)
		}
		for i := 0; i < len(set); i++ {
			if !strings.ContainsRune(pathSafe, rune(set[i])) {
				return fmt.Errorf("%w: safe character %q in %q is not valid unescaped in a URL path", ErrInvalidConfig, set[i], set)
			}
		}
	}
	return nil
}

// pathSafe holds the bytes allowed literally in a URL path segment, plus '/'.
const pathSafe = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-._~!$&'()*+,;=:@/"

// HeaderFuzzable reports whether header mutants may target name.
func (c *FuzzerConfig) HeaderFuzzable(name string) bool {
	if len(c.FuzzableHeaders) == 0 {
		return !httpreq.EqualFoldName(name, "Host")
	}
	for _, h := range c.FuzzableHeaders {
		if httpreq.EqualFoldName(h, name) {
			return true
		}
	}
	return false
}

// Parse decodes YAML on top of Defaults and validates the result.
// Unknown keys are rejected so a misspelled toggle does not silently
// disable a mutant kind.
func Parse(data []byte) (*FuzzerConfig, error) {
	cfg := Defaults()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads a YAML configuration file.
func Load(path string) (*FuzzerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data)
}

// Marshal renders the configuration as YAML.
func (c *FuzzerConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
