package config

import (
	"io"
	"os"
	"runtime"

	"github.com/pelletier/go-toml"
)

// Because we don't need viper's mess for just storing configuration from
// a source.
type config struct {
	Main   configMain   `toml:"main"`
	Dither configDither `toml:"dither"`
	Output configOutput `toml:"output"`
}

type configMain struct {
	LogLevel string `toml:"log_level"`
	Workers  int    `toml:"workers"`
	Loader   string `toml:"loader"`
}

type configDither struct {
	Modes     []string `toml:"modes"`
	Cut       int      `toml:"cut"`
	BayerSize int      `toml:"bayer_size"`
}

type configOutput struct {
	Format  string `toml:"format"`
	Quality int    `toml:"quality"`
	Fit     string `toml:"fit"`
	Black   string `toml:"black"`
	White   string `toml:"white"`
}

// Config holds the configuration data from configuration files
// or flags.
//
// This variable sets some default values that might be overwritten
// by a configuration file.
var Config = config{
	Main: configMain{
		LogLevel: "info",
		Workers:  runtime.NumCPU(),
		Loader:   "native",
	},
	Dither: configDither{
		Modes:     []string{"threshold", "grey", "floyd-steinberg"},
		Cut:       127,
		BayerSize: 64,
	},
	Output: configOutput{
		Format:  "png",
		Quality: 90,
	},
}

// LoadConfiguration loads the configuration file.
func LoadConfiguration(configPath string) error {
	if configPath == "" {
		return nil
	}

	fd, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer fd.Close()

	dec := toml.NewDecoder(fd)
	if err := dec.Decode(&Config); err != nil {
		return err
	}

	return nil
}

// WriteConfig writes the current configuration.
func WriteConfig(w io.Writer) error {
	enc := toml.NewEncoder(w).
		ArraysWithOneElementPerLine(true).
		Indentation("  ").
		Order(toml.OrderPreserve)

	return enc.Encode(Config)
}
