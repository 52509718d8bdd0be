package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/adrg/xdg"
	"github.com/leighmacdonald/hearth/internal/tab"
)

var (
	errConfigWrite = errors.New("failed to write config file")
	errConfigRead  = errors.New("failed to read config file")
	errLoggerInit  = errors.New("failed to initialize logger")
)

const (
	ConfigDirName     = "hearth"
	DefaultConfigName = "hearth"
	DefaultLogName    = "hearth.log"
	EnvPrefix         = "hearth"
	DefaultSplash     = 1200 * time.Millisecond
)

type Config struct {
	Username string `mapstructure:"username"`
	// Streak is the static day counter shown in the header.
	Streak int `mapstructure:"streak"`
	// SafeAreaTop is the number of rows kept clear above the header. Terminals have no
	// notch, but multiplexers and transparent title bars often cover the first rows.
	SafeAreaTop int  `mapstructure:"safe_area_top"`
	FPS         int  `mapstructure:"fps"`
	SplashMs    int  `mapstructure:"splash_ms"`
	Debug       bool `mapstructure:"debug"`
	// StartTab is accepted for completeness but only honoured when debug is enabled,
	// the app always starts on the home tab otherwise.
	StartTab string `mapstructure:"start_tab"`
}

// SplashDuration returns how long the splash page is displayed.
func (c Config) SplashDuration() time.Duration {
	if c.SplashMs < 0 {
		return 0
	}

	return time.Duration(c.SplashMs) * time.Millisecond
}

// InitialTab returns the tab the app opens on.
func (c Config) InitialTab() (tab.Tab, error) {
	if !c.Debug || c.StartTab == "" {
		return tab.Home, nil
	}

	return tab.Parse(c.StartTab)
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
