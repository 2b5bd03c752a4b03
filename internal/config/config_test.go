package config

import (
	"os"
	"path/filepath"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "svbench.toml", `
workers = 8
max-len = 300
allocator = "mmap"
budget = 1048576

[log]
level = "debug"
format = "json"
`)

	c, err := Load(path, nil)
	require.NoError(t, err)

	want := Default()
	want.Workers = 8
	want.MaxLen = 300
	want.Allocator = AllocatorMmap
	want.Budget = 1 << 20
	want.Log.Level = "debug"
	want.Log.Format = "json"

	assert.Equal(t, want, c)
}

func TestLoadHuJSON(t *testing.T) {
	path := writeFile(t, "svbench.jsonc", `{
	// comments and trailing commas are fine
	"ops": 500,
	"rate": 1000,
	"burst": 10,
	"live": false,
}`)

	c, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 500, c.Ops)
	assert.Equal(t, 1000.0, c.Rate)
	assert.Equal(t, 10, c.Burst)
	assert.False(t, c.Live)
	assert.Equal(t, Default().Workers, c.Workers, "unset keys keep their defaults")
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{name: "unknown extension", file: "svbench.yaml", content: "workers: 1", wantErr: ErrUnknownFormat},
		{name: "unknown toml key", file: "svbench.toml", content: "wokers = 1", wantErr: ErrInvalid},
		{name: "unknown json key", file: "svbench.json", content: `{"wokers": 1}`, wantErr: ErrInvalid},
		{name: "broken json", file: "svbench.json", content: `{"workers": }`, wantErr: ErrInvalid},
		{name: "invalid value", file: "svbench.toml", content: "workers = 0", wantErr: ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content), nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"), nil)
	assert.ErrorIs(t, err, ErrRead)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "svbench.toml", "workers = 8\nops = 10\n")

	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	AddFlags(fs)
	require.NoError(t, fs.Parse([]string{"-w", "2", "--log-level", "warn", "--live=false", "--seed", "99"}))

	c, err := Load(path, fs)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Workers, "flag beats file")
	assert.Equal(t, 10, c.Ops, "file beats default")
	assert.Equal(t, "warn", c.Log.Level)
	assert.False(t, c.Live)
	assert.Equal(t, uint64(99), c.Seed)
	assert.Equal(t, Default().MaxLen, c.MaxLen)
}

func TestUnsetFlagsKeepFileValues(t *testing.T) {
	path := writeFile(t, "svbench.toml", "allocator = \"mmap\"\n")

	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	AddFlags(fs)
	require.NoError(t, fs.Parse(nil))

	c, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, AllocatorMmap, c.Allocator)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"no workers", func(c *Config) { c.Workers = 0 }},
		{"negative ops", func(c *Config) { c.Ops = -1 }},
		{"no max len", func(c *Config) { c.MaxLen = 0 }},
		{"negative rate", func(c *Config) { c.Rate = -1 }},
		{"rate without burst", func(c *Config) { c.Rate, c.Burst = 10, 0 }},
		{"negative budget", func(c *Config) { c.Budget = -1 }},
		{"unknown allocator", func(c *Config) { c.Allocator = "arena" }},
		{"bad log level", func(c *Config) { c.Log.Level = "chatty" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}

func TestFormat(t *testing.T) {
	s, err := Default().Format()
	require.NoError(t, err)
	assert.Contains(t, s, `"allocator": "heap"`)
	assert.Contains(t, s, `"max_len": 64`)
}
