package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	RendererLog      = "log"
	RendererTerminal = "terminal"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"LOG_FILE"`
	HTTPPort string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Renderer string  `yaml:"renderer" env:"RENDERER" env-default:"log"`
	Channel  Channel `yaml:"channel"`
	Redis    Redis   `yaml:"redis"`
	Board    Board   `yaml:"board"`
}

type Channel struct {
	URL                  string        `yaml:"url" env:"CHANNEL_URL" env-default:"ws://localhost:8080/ws"`
	PlayerID             string        `yaml:"player-id" env:"CHANNEL_PLAYER_ID"`
	MaxReconnectInterval time.Duration `yaml:"max-reconnect-interval" env-default:"30s"`
	AssetTimeout         time.Duration `yaml:"asset-timeout" env-default:"10s"`
}

type Redis struct {
	Host     string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	AssetTTL time.Duration `yaml:"asset-ttl" env-default:"24h"`
}

// Board places the grid on screen: top-left corner and cell size.
type Board struct {
	OriginX  float64 `yaml:"origin-x" env-default:"2"`
	OriginY  float64 `yaml:"origin-y" env-default:"1"`
	CellSize float64 `yaml:"cell-size" env-default:"5"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
