// Package config loads minilang front-end settings from TOML or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"minilang/pkg/compiler"
)

// EnvVar names the environment variable LoadFromEnv consults first.
const EnvVar = "MINILANG_CONFIG"

// Config holds the complete driver configuration.
type Config struct {
	Lexer  LexerConfig  `toml:"lexer" yaml:"lexer"`
	Parser ParserConfig `toml:"parser" yaml:"parser"`
	Output OutputConfig `toml:"output" yaml:"output"`
}

// LexerConfig holds tokenizer settings.
type LexerConfig struct {
	OperatorPairs  string `toml:"operator_pairs" yaml:"operator_pairs"`
	SignedLiterals bool   `toml:"signed_literals" yaml:"signed_literals"`
}

// ParserConfig holds parser settings.
type ParserConfig struct {
	MaxDepth int `toml:"max_depth" yaml:"max_depth"`
}

// OutputConfig holds inspection output settings.
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
}

// Formats lists the accepted values of Output.Format.
var Formats = []string{"text", "yaml", "json", "png"}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a configuration file. The format follows the extension:
// .yaml/.yml is YAML, anything else is TOML.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by MINILANG_CONFIG, then the first of
// the default locations that exists. With neither it returns Default().
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}
	for _, p := range []string{"./minilang.toml", "./minilang.yaml"} {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

func (c *Config) applyDefaults() {
	if c.Lexer.OperatorPairs == "" {
		c.Lexer.OperatorPairs = compiler.StrictPairs.String()
	}
	if c.Parser.MaxDepth == 0 {
		c.Parser.MaxDepth = compiler.DefaultMaxDepth
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
}

// Validate checks the values that have a closed set of choices.
func (c *Config) Validate() error {
	if _, err := compiler.ParsePairing(c.Lexer.OperatorPairs); err != nil {
		return err
	}
	if c.Parser.MaxDepth < 0 {
		return fmt.Errorf("parser.max_depth must not be negative, got %d", c.Parser.MaxDepth)
	}
	for _, f := range Formats {
		if c.Output.Format == f {
			return nil
		}
	}
	return fmt.Errorf("unknown output format %q (want one of %s)", c.Output.Format, strings.Join(Formats, ", "))
}

// Options converts the lexer and parser sections into compiler options.
func (c *Config) Options() (compiler.Options, error) {
	pairing, err := compiler.ParsePairing(c.Lexer.OperatorPairs)
	if err != nil {
		return compiler.Options{}, err
	}
	return compiler.Options{
		Pairing:        pairing,
		SignedLiterals: c.Lexer.SignedLiterals,
		MaxDepth:       c.Parser.MaxDepth,
	}, nil
}
