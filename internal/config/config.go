// Package config holds the settings of the svbench workload runner. Values are
// layered: defaults, then a TOML or HuJSON file, then command-line flags.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	flag "github.com/spf13/pflag"
	"github.com/tailscale/hujson"

	"github.com/webbmaffian/go-smallvec/internal/logging"
)

const (
	AllocatorHeap = "heap"
	AllocatorMmap = "mmap"
)

type Config struct {
	// Independent vectors, each driven by its own goroutine.
	Workers int `toml:"workers" json:"workers"`

	// Operations applied to each vector.
	Ops int `toml:"ops" json:"ops"`

	// Length a vector is not grown beyond.
	MaxLen int `toml:"max-len" json:"max_len"`

	// Operations per second across all workers. Zero means unlimited.
	Rate  float64 `toml:"rate" json:"rate"`
	Burst int     `toml:"burst" json:"burst"`

	Seed uint64 `toml:"seed" json:"seed"`

	// Where heap blocks come from: "heap" or "mmap".
	Allocator string `toml:"allocator" json:"allocator"`

	// Bytes of heap blocks outstanding at once. Zero means unlimited.
	Budget int64 `toml:"budget" json:"budget"`

	// Log every block allocation and release at debug level.
	LogAllocs bool `toml:"log-allocs" json:"log_allocs"`

	// Path of the JSON report. Empty skips the report.
	Report string `toml:"report" json:"report"`

	// Render live counters on the terminal.
	Live bool `toml:"live" json:"live"`

	Log logging.Config `toml:"log" json:"log"`
}

func Default() Config {
	return Config{
		Workers:   4,
		Ops:       100_000,
		MaxLen:    64,
		Burst:     1,
		Seed:      1,
		Allocator: AllocatorHeap,
		Live:      true,
		Log:       logging.Default(),
	}
}

// Load returns the defaults overlaid with the file at path and then with
// every flag set on fs. Either may be empty or nil.
func Load(path string, fs *flag.FlagSet) (c Config, err error) {
	c = Default()

	if path != "" {
		if err = c.ReadFile(path); err != nil {
			return
		}
	}

	if fs != nil {
		if err = c.ApplyFlags(fs); err != nil {
			return
		}
	}

	err = c.Validate()
	return
}

// ReadFile overlays c with the file at path. Files ending in .toml are TOML;
// .json, .jsonc and .hujson are JSON with comments and trailing commas.
func (c *Config) ReadFile(path string) error {
	data, err := os.ReadFile(path)

	if err != nil {
		return fmt.Errorf("%w: %w", ErrRead, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = c.decodeTOML(data)
	case ".json", ".jsonc", ".hujson":
		err = c.decodeJSON(data)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrInvalid, path, err)
	}

	return nil
}

func (c *Config) decodeTOML(data []byte) error {
	md, err := toml.Decode(string(data), c)

	if err != nil {
		return err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}

	return nil
}

func (c *Config) decodeJSON(data []byte) error {
	data, err := hujson.Standardize(data)

	if err != nil {
		return fmt.Errorf("invalid JSONC: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	return dec.Decode(c)
}

// Validate reports the first setting that cannot be run.
func (c Config) Validate() error {
	switch {
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive", ErrInvalid)
	case c.Ops < 0:
		return fmt.Errorf("%w: ops must not be negative", ErrInvalid)
	case c.MaxLen <= 0:
		return fmt.Errorf("%w: max-len must be positive", ErrInvalid)
	case c.Rate < 0:
		return fmt.Errorf("%w: rate must not be negative", ErrInvalid)
	case c.Rate > 0 && c.Burst <= 0:
		return fmt.Errorf("%w: burst must be positive when rate limited", ErrInvalid)
	case c.Budget < 0:
		return fmt.Errorf("%w: budget must not be negative", ErrInvalid)
	case c.Allocator != AllocatorHeap && c.Allocator != AllocatorMmap:
		return fmt.Errorf("%w: unknown allocator %q", ErrInvalid, c.Allocator)
	}

	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Format returns c as indented JSON.
func (c Config) Format() (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")

	if err != nil {
		return "", fmt.Errorf("failed to format config: %w", err)
	}

	return string(data), nil
}
