package config

import (
	"errors"
	"fmt"
	"io/fs"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is the optional dotenv file read at startup
const DefaultEnvFile = ".env"

// Startup holds process-level configuration read once before the UI starts
type Startup struct {
	LogLevel     string `env:"PATCHWORK_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	VideoHost    string `env:"PATCHWORK_VIDEO_HOST" envDefault:"www.youtube.com" validate:"required,hostname"`
	WindowWidth  int    `env:"PATCHWORK_WINDOW_WIDTH" envDefault:"420" validate:"gte=320,lte=4096"`
	WindowHeight int    `env:"PATCHWORK_WINDOW_HEIGHT" envDefault:"760" validate:"gte=320,lte=4096"`
}

// StartupOption customizes LoadStartup
type StartupOption func(*startupOptions)

type startupOptions struct {
	envFile string
}

// WithEnvFile reads variables from path instead of DefaultEnvFile.
// An empty path skips the dotenv step.
func WithEnvFile(path string) StartupOption {
	return func(o *startupOptions) {
		o.envFile = path
	}
}

// LoadStartup reads the optional dotenv file, then the environment, and
// validates the result. Variables already set in the environment win over
// the dotenv file.
func LoadStartup(opts ...StartupOption) (Startup, error) {
	options := &startupOptions{envFile: DefaultEnvFile}
	for _, opt := range opts {
		opt(options)
	}

	if options.envFile != "" {
		if err := godotenv.Load(options.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Startup{}, fmt.Errorf("loading %s: %w", options.envFile, err)
		}
	}

	var cfg Startup
	if err := env.Parse(&cfg); err != nil {
		return Startup{}, fmt.Errorf("parsing environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Startup{}, fmt.Errorf("invalid startup config: %w", err)
	}

	return cfg, nil
}

// DefaultStartup returns the configuration used when nothing is set
func DefaultStartup() Startup {
	return Startup{
		LogLevel:     "info",
		VideoHost:    "www.youtube.com",
		WindowWidth:  420,
		WindowHeight: 760,
	}
}
