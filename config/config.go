package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"

	"nim/game"
)

const (
	FirstComputer = "computer"
	FirstHuman    = "human"

	ModeHuman      = "human"      // Human against the computer
	ModeSelf       = "self"       // Computer against computer
	ModeExperiment = "experiment" // Depth matchups reported as CSV
)

// FileEnv names the environment variable holding an optional YAML config file.
const FileEnv = "NIM_CONFIG"

var (
	ErrNegativeCount      = errors.New("marble counts must not be negative")
	ErrInvalidDepth       = errors.New("search depth must be positive")
	ErrInvalidGoroutines  = errors.New("goroutines must be positive")
	ErrUnknownFirstPlayer = errors.New("first player must be computer or human")
	ErrUnknownMode        = errors.New("mode must be human, self or experiment")
)

type Config struct {
	NumRed      int    `yaml:"num-red" env:"NIM_NUM_RED" env-default:"5" env-description:"Number of red marbles"`
	NumBlue     int    `yaml:"num-blue" env:"NIM_NUM_BLUE" env-default:"7" env-description:"Number of blue marbles"`
	Version     string `yaml:"version" env:"NIM_VERSION" env-default:"standard" env-description:"Game version: standard or misere"`
	FirstPlayer string `yaml:"first-player" env:"NIM_FIRST_PLAYER" env-default:"computer" env-description:"First player: computer or human"`
	Depth       int    `yaml:"depth" env:"NIM_DEPTH" env-default:"3" env-description:"Search depth for AI"`
	Mode        string `yaml:"mode" env:"NIM_MODE" env-default:"human" env-description:"human, self or experiment"`
	Goroutines  int    `yaml:"goroutines" env:"NIM_GOROUTINES" env-default:"1" env-description:"Goroutines evaluating root moves"`
	Seed        uint64 `yaml:"seed" env:"NIM_SEED" env-default:"1" env-description:"Seed of the random baseline player"`
	LogLevel    string `yaml:"log-level" env:"NIM_LOG_LEVEL" env-default:"warn" env-description:"Log level: trace, debug, info, warn or error"`
}

// Load reads defaults, the optional YAML file named by NIM_CONFIG and NIM_*
// environment variables, then applies command-line flags on top.
func Load(args []string, output io.Writer) (*Config, error) {
	conf := &Config{}

	var err error
	if path := os.Getenv(FileEnv); path != "" {
		err = cleanenv.ReadConfig(path, conf)
	} else {
		err = cleanenv.ReadEnv(conf)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	fs := flag.NewFlagSet("nim", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&conf.NumRed, "num-red", conf.NumRed, "Number of red marbles")
	fs.IntVar(&conf.NumBlue, "num-blue", conf.NumBlue, "Number of blue marbles")
	fs.StringVar(&conf.Version, "version", conf.Version, "Game version (standard|misere)")
	fs.StringVar(&conf.FirstPlayer, "first-player", conf.FirstPlayer, "First player (computer|human)")
	fs.IntVar(&conf.Depth, "depth", conf.Depth, "Search depth for AI")
	fs.StringVar(&conf.Mode, "mode", conf.Mode, "Play mode (human|self|experiment)")
	fs.IntVar(&conf.Goroutines, "goroutines", conf.Goroutines, "Goroutines evaluating root moves")
	fs.Uint64Var(&conf.Seed, "seed", conf.Seed, "Seed of the random baseline player")
	fs.StringVar(&conf.LogLevel, "log-level", conf.LogLevel, "Log level")

	header := "Environment variables:"
	fs.Usage = cleanenv.FUsage(output, conf, &header, fs.PrintDefaults)

	if err = fs.Parse(args); err != nil {
		return nil, err
	}

	if err = conf.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return conf, nil
}

// MustLoad is Load for command-line use: it panics on invalid configuration.
func MustLoad(args []string) *Config {
	conf, err := Load(args, os.Stderr)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}
	return conf
}

func (that *Config) validate() error {
	if that.NumRed < 0 || that.NumBlue < 0 {
		return fmt.Errorf("%w: red=%d blue=%d", ErrNegativeCount, that.NumRed, that.NumBlue)
	}
	if that.Depth < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidDepth, that.Depth)
	}
	if that.Goroutines < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidGoroutines, that.Goroutines)
	}

	if _, err := game.ParseVariant(that.Version); err != nil {
		return err
	}

	that.FirstPlayer = strings.ToLower(that.FirstPlayer)
	if that.FirstPlayer != FirstComputer && that.FirstPlayer != FirstHuman {
		return fmt.Errorf("%w: %q", ErrUnknownFirstPlayer, that.FirstPlayer)
	}

	that.Mode = strings.ToLower(that.Mode)
	switch that.Mode {
	case ModeHuman, ModeSelf, ModeExperiment:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, that.Mode)
	}

	that.LogLevel = strings.ToLower(that.LogLevel)
	if _, err := zerolog.ParseLevel(that.LogLevel); err != nil {
		return fmt.Errorf("unknown log level %q: %w", that.LogLevel, err)
	}

	return nil
}

// Variant and Level assume a validated config.
func (that *Config) Variant() game.Variant {
	variant, _ := game.ParseVariant(that.Version)
	return variant
}

func (that *Config) Level() zerolog.Level {
	level, _ := zerolog.ParseLevel(that.LogLevel)
	return level
}

// HumanFirst reports whether the human opens the game in human mode.
func (that *Config) HumanFirst() bool {
	return that.FirstPlayer == FirstHuman
}

// InitialState builds the starting position described by the config.
func (that *Config) InitialState() game.GameState {
	return game.NewGame(that.NumRed, that.NumBlue, that.Variant(), that.Depth)
}
