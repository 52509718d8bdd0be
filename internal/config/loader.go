package config

import (
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Writer persists configuration edits made from inside the ui.
type Writer interface {
	Write(config Config) error
	Path() string
}

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes  chan<- Config
	writeDir string
	watching bool
}

func NewLoader(changes chan<- Config, searchPaths ...string) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("username", "friend")
	loader.SetDefault("streak", 0)
	loader.SetDefault("safe_area_top", 0)
	loader.SetDefault("fps", 30)
	loader.SetDefault("splash_ms", DefaultSplash.Milliseconds())
	loader.SetDefault("debug", false)
	loader.SetDefault("start_tab", "")
	loader.SetConfigName(DefaultConfigName)
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(EnvPrefix)
	if len(searchPaths) == 0 {
		searchPaths = []string{Path(""), "."}
	}
	for _, searchPath := range searchPaths {
		loader.AddConfigPath(searchPath)
	}
	// New files are created in the highest priority search path.
	loader.writeDir = searchPaths[0]
	loader.AutomaticEnv()

	return &loader
}

// Watch starts watching the config file, sending the newly read config on each change.
func (cl *Loader) Watch() {
	cl.watching = true
	cl.WatchConfig()
	cl.OnConfigChange(cl.onConfigChange)
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Rename) {
		return
	}

	slog.Debug("External config reload triggered")
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	if cl.changes != nil {
		cl.changes <- config
	}
}

func (cl *Loader) Write(config Config) error {
	cl.Set("username", config.Username)
	cl.Set("streak", config.Streak)
	cl.Set("safe_area_top", config.SafeAreaTop)
	cl.Set("fps", config.FPS)
	cl.Set("splash_ms", config.SplashMs)
	cl.Set("debug", config.Debug)
	cl.Set("start_tab", config.StartTab)

	if cl.ConfigFileUsed() == "" {
		configFile := filepath.Join(cl.writeDir, DefaultConfigName+".yaml")
		if err := cl.WriteConfigAs(configFile); err != nil {
			return errors.Join(err, errConfigWrite)
		}

		// Later writes and the watcher target the file that now exists.
		cl.SetConfigFile(configFile)
		if cl.watching {
			cl.WatchConfig()
		}

		return nil
	}

	if err := cl.WriteConfig(); err != nil {
		return errors.Join(err, errConfigWrite)
	}

	return nil
}

func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if _, err := config.InitialTab(); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	return config, nil
}
