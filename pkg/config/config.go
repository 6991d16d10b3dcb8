// Package config loads the import grouping settings from defaults, an
// optional YAML file, SIG_ environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/siyuan-infoblox/swift-imports-group/pkg/frameworks"
	"github.com/siyuan-infoblox/swift-imports-group/pkg/logging"
	"github.com/siyuan-infoblox/swift-imports-group/pkg/sorter"
)

// Sentinel validation errors.
var (
	ErrEmptyInterfaceSuffix = errors.New("interface suffix must not be empty")
	ErrInvalidLogLevel      = errors.New("invalid log level")
	ErrInvalidLogFormat     = errors.New("invalid log format")
	ErrInvalidExtension     = errors.New("invalid file extension")
)

// Default configuration values.
const (
	DefaultConfigName = ".sig"
	DefaultExtension  = ".swift"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = logging.FormatText
	EnvPrefix         = "SIG"
)

// Configuration keys.
const (
	KeyFrameworks         = "frameworks"
	KeyInterfaceSuffix    = "interface_suffix"
	KeyCollapseBlankLines = "collapse_blank_lines"
	KeyExtensions         = "extensions"
	KeyLoggingLevel       = "logging.level"
	KeyLoggingFormat      = "logging.format"
)

// flagKeys maps command line flag names to configuration keys
var flagKeys = map[string]string{
	"frameworks":           KeyFrameworks,
	"interface-suffix":     KeyInterfaceSuffix,
	"collapse-blank-lines": KeyCollapseBlankLines,
	"extensions":           KeyExtensions,
	"log-level":            KeyLoggingLevel,
	"log-format":           KeyLoggingFormat,
}

// Config holds all settings of the import grouper.
type Config struct {
	Frameworks         []string      `mapstructure:"frameworks" yaml:"frameworks"`
	InterfaceSuffix    string        `mapstructure:"interface_suffix" yaml:"interface_suffix"`
	CollapseBlankLines bool          `mapstructure:"collapse_blank_lines" yaml:"collapse_blank_lines"`
	Extensions         []string      `mapstructure:"extensions" yaml:"extensions"`
	Logging            LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// LoadConfig loads configuration from file, environment variables and flags.
// The config file is read from fs, the OS filesystem when fs is nil. flags may
// be nil; only flags known to the loader are bound.
func LoadConfig(fs afero.Fs, configPath string, flags *pflag.FlagSet) (*Config, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	viperCfg := viper.New()
	viperCfg.SetFs(fs)

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(DefaultConfigName)
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("$HOME")
	}

	viperCfg.SetEnvPrefix(EnvPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		if err := bindFlags(viperCfg, flags); err != nil {
			return nil, err
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}
	config.Frameworks = frameworks.New(config.Frameworks...).Names()

	validateErr := config.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// Default returns the configuration used when no file, environment or flag is set.
func Default() *Config {
	return &Config{
		Frameworks:      append([]string(nil), frameworks.Defaults...),
		InterfaceSuffix: sorter.DefaultInterfaceSuffix,
		Extensions:      []string{DefaultExtension},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	def := Default()

	viperCfg.SetDefault(KeyFrameworks, def.Frameworks)
	viperCfg.SetDefault(KeyInterfaceSuffix, def.InterfaceSuffix)
	viperCfg.SetDefault(KeyCollapseBlankLines, def.CollapseBlankLines)
	viperCfg.SetDefault(KeyExtensions, def.Extensions)
	viperCfg.SetDefault(KeyLoggingLevel, def.Logging.Level)
	viperCfg.SetDefault(KeyLoggingFormat, def.Logging.Format)
}

func bindFlags(viperCfg *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := viperCfg.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.InterfaceSuffix) == "" {
		return ErrEmptyInterfaceSuffix
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	if !logging.ValidFormat(c.Logging.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	for _, ext := range c.Extensions {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" || trimmed == "." || strings.ContainsAny(trimmed, `/\ `) {
			return fmt.Errorf("%w: %q", ErrInvalidExtension, ext)
		}
	}

	return nil
}

// Sorter builds the import sorter described by the configuration.
func (c *Config) Sorter() *sorter.Sorter {
	return sorter.New(sorter.Config{
		Frameworks:         frameworks.New(c.Frameworks...),
		InterfaceSuffix:    strings.TrimSpace(c.InterfaceSuffix),
		CollapseBlankLines: c.CollapseBlankLines,
	})
}

// YAML renders the configuration as a YAML document.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return out, nil
}
