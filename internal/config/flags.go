package config

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// AddFlags registers a flag for every setting on fs, with the defaults as
// values.
func AddFlags(fs *flag.FlagSet) {
	d := Default()

	fs.StringP("config", "c", "", "TOML or HuJSON config file")
	fs.IntP("workers", "w", d.Workers, "vectors driven in parallel")
	fs.IntP("ops", "n", d.Ops, "operations per vector")
	fs.Int("max-len", d.MaxLen, "length a vector is not grown beyond")
	fs.Float64("rate", d.Rate, "operations per second across workers, 0 for unlimited")
	fs.Int("burst", d.Burst, "operations allowed at once when rate limited")
	fs.Uint64("seed", d.Seed, "seed of the workload")
	fs.String("allocator", d.Allocator, "block allocator: heap or mmap")
	fs.Int64("budget", d.Budget, "bytes of blocks outstanding at once, 0 for unlimited")
	fs.Bool("log-allocs", d.LogAllocs, "log every block allocation at debug level")
	fs.StringP("report", "o", d.Report, "write a JSON report to this path")
	fs.Bool("live", d.Live, "render live counters")
	fs.String("log-level", d.Log.Level, "debug, info, warn or error")
	fs.String("log-format", d.Log.Format, "console or json")
	fs.String("log-file", d.Log.Filename, "log to a rotated file instead of stderr")
}

// ApplyFlags copies every flag the user set on fs into c.
func (c *Config) ApplyFlags(fs *flag.FlagSet) (err error) {
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}

		switch f.Name {
		case "workers":
			c.Workers, err = fs.GetInt(f.Name)
		case "ops":
			c.Ops, err = fs.GetInt(f.Name)
		case "max-len":
			c.MaxLen, err = fs.GetInt(f.Name)
		case "rate":
			c.Rate, err = fs.GetFloat64(f.Name)
		case "burst":
			c.Burst, err = fs.GetInt(f.Name)
		case "seed":
			c.Seed, err = fs.GetUint64(f.Name)
		case "allocator":
			c.Allocator, err = fs.GetString(f.Name)
		case "budget":
			c.Budget, err = fs.GetInt64(f.Name)
		case "log-allocs":
			c.LogAllocs, err = fs.GetBool(f.Name)
		case "report":
			c.Report, err = fs.GetString(f.Name)
		case "live":
			c.Live, err = fs.GetBool(f.Name)
		case "log-level":
			c.Log.Level, err = fs.GetString(f.Name)
		case "log-format":
			c.Log.Format, err = fs.GetString(f.Name)
		case "log-file":
			c.Log.Filename, err = fs.GetString(f.Name)
		}

		if err != nil {
			err = fmt.Errorf("flag --%s: %w", f.Name, err)
		}
	})

	return
}
