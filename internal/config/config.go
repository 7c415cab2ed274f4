package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	UIWindow   = "window"
	UITerminal = "terminal"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogOutput string `yaml:"log-output" env:"TICTACTOE_LOG_OUTPUT" env-default:"stdout"`
	UI        string `yaml:"ui" env:"TICTACTOE_UI" env-default:"window"`
	Window    Window `yaml:"window"`
	Status    Status `yaml:"status"`
}

type Window struct {
	CellSize int `yaml:"cell-size" env:"TICTACTOE_WINDOW_CELL_SIZE" env-default:"200"`
	FPS      int `yaml:"fps" env:"TICTACTOE_WINDOW_FPS" env-default:"60"`
}

// Status configures the read-only state endpoint. An empty Addr disables it.
type Status struct {
	Addr string `yaml:"addr" env:"TICTACTOE_STATUS_ADDR" env-default:""`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	return config
}

func (that *Config) Validate() error {
	switch that.UI {
	case UIWindow, UITerminal:
	default:
		return fmt.Errorf("unknown ui %q", that.UI)
	}

	if that.Window.CellSize <= 0 {
		return fmt.Errorf("window cell-size must be positive, got %d", that.Window.CellSize)
	}

	if that.Window.FPS <= 0 {
		return fmt.Errorf("window fps must be positive, got %d", that.Window.FPS)
	}

	return nil
}
