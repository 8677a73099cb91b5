package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// SettingsFile имя файла настроек, который ищется в каталоге конфигурации
const SettingsFile = "td.cfg.json"

// AudioSettings настройки звука
type AudioSettings struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// WindowSettings настройки окна
type WindowSettings struct {
	Scale float64 `mapstructure:"scale"`
}

// Settings параметры запуска, которые можно переопределить файлом или окружением.
type Settings struct {
	Seed       int64          `mapstructure:"seed"`
	AutoWave   bool           `mapstructure:"autoWave"`
	LogLevel   string         `mapstructure:"logLevel"`
	TowersFile string         `mapstructure:"towersFile"`
	Audio      AudioSettings  `mapstructure:"audio"`
	Window     WindowSettings `mapstructure:"window"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("seed", 0)
	v.SetDefault("autoWave", false)
	v.SetDefault("logLevel", "info")
	v.SetDefault("towersFile", "")
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)
	v.SetDefault("window.scale", 1.0)
}

// Load читает настройки из configDir. Отсутствие файла не ошибка: используются
// значения по умолчанию и переменные окружения с префиксом TD_.
func Load(configDir string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(SettingsFile)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("TD")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if s.Window.Scale <= 0 {
		s.Window.Scale = 1
	}
	if s.Audio.Volume < 0 {
		s.Audio.Volume = 0
	}
	return s, nil
}
