// internal/config/config.go
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"keggmod/internal/textio"
)

// EnvPrefix prefixes environment overrides, e.g. KEGGMOD_ON_MISSING=skip.
const EnvPrefix = "KEGGMOD"

// Lookup-failure policies.
const (
	OnMissingAbort = "abort"
	OnMissingSkip  = "skip"
)

// Keys shared by viper, the config file and flag bindings.
const (
	KeyOutputDir     = "output_dir"
	KeyReferenceFile = "reference_file"
	KeyOnMissing     = "on_missing"
	KeySource        = "source"
	KeyEncoding      = "encoding"
	KeyQuiet         = "quiet"
	KeyVerbose       = "verbose"
)

type Config struct {
	OutputDir     string `mapstructure:"output_dir"`
	ReferenceFile string `mapstructure:"reference_file"`
	OnMissing     string `mapstructure:"on_missing"`
	Source        string `mapstructure:"source"`
	Encoding      string `mapstructure:"encoding"`
	Quiet         bool   `mapstructure:"quiet"`
	Verbose       bool   `mapstructure:"verbose"`
}

func Defaults() Config {
	return Config{
		OutputDir:     ".",
		ReferenceFile: "ko_list.txt",
		OnMissing:     OnMissingAbort,
		Source:        "KOfam",
		Encoding:      textio.UTF8,
	}
}

// New returns a viper instance with defaults and KEGGMOD_* environment
// overrides wired up. Flags are bound on top by the caller.
func New() *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault(KeyOutputDir, d.OutputDir)
	v.SetDefault(KeyReferenceFile, d.ReferenceFile)
	v.SetDefault(KeyOnMissing, d.OnMissing)
	v.SetDefault(KeySource, d.Source)
	v.SetDefault(KeyEncoding, d.Encoding)
	v.SetDefault(KeyQuiet, d.Quiet)
	v.SetDefault(KeyVerbose, d.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file at path into v and returns the merged,
// validated settings.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config %s", path)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "parsing config")
	}
	c.OnMissing = strings.ToLower(strings.TrimSpace(c.OnMissing))
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch c.OnMissing {
	case OnMissingAbort, OnMissingSkip:
	default:
		return errors.Errorf("invalid on_missing %q (want %s or %s)", c.OnMissing, OnMissingAbort, OnMissingSkip)
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("output_dir must not be empty")
	}
	if strings.TrimSpace(c.ReferenceFile) == "" {
		return errors.New("reference_file must not be empty")
	}
	if strings.TrimSpace(c.Source) == "" {
		return errors.New("source must not be empty")
	}
	if _, err := textio.Decoder(c.Encoding); err != nil {
		return err
	}
	if c.Quiet && c.Verbose {
		return errors.New("quiet and verbose are mutually exclusive")
	}
	return nil
}
