// Package config предоставляет структуры и функцию для парсинга и загрузки конфига.
//
// Конфиг читается из YAML-файла, путь к которому задаёт переменная окружения
// CONFIG_PATH. Если переменная не задана, все значения берутся из окружения
// или из значений по умолчанию — демо запускается без единого файла настроек.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек.
type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	StaticDir  string `yaml:"static_dir" env:"STATIC_DIR" env-default:"public"`
	Storage    `yaml:"storage"`
	HTTPServer `yaml:"http_server"`
	JWTToken   `yaml:"jwttoken"`
	Console    `yaml:"console"`
	RateLimit  `yaml:"rate_limit"`
}

// Storage структура для настройки файлового хранилища.
type Storage struct {
	FilePath string `yaml:"file_path" env:"DB_FILE" env-default:"db.json"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	Port        string        `yaml:"port" env:"PORT" env-default:"3000"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// JWTToken структура для работы с jwt-токеном.
//
// Значение секрета по умолчанию годится только для локального демо
// и обязано быть переопределено при любом реальном развёртывании.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET" env-default:"change_this_secret_in_production"`
	TokenTTL     time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"168h"`
}

// Console структура для настройки живого канала консоли.
type Console struct {
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval" env:"CONSOLE_HEARTBEAT_INTERVAL" env-default:"3s"`
}

// RateLimit структура для настройки ограничения частоты запросов.
type RateLimit struct {
	RPS   float64 `yaml:"rps" env:"RATE_LIMIT_RPS" env-default:"50"`
	Burst int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"100"`
}

// MustLoad загружает конфиг и завершает процесс при ошибке.
// CONFIG_PATH указывает на YAML-файл; без него конфиг собирается из окружения.
func MustLoad() *Config {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			log.Fatalf("file: %s - does not exist", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("cannot read config: %s", err)
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}
	return &cfg
}

// Address возвращает адрес для прослушивания HTTP-сервером.
func (c *Config) Address() string {
	return ":" + c.Port
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"StaticDir: %s\n"+
			"Storage:\n"+
			"  FilePath: %s\n"+
			"HTTPServer:\n"+
			"  Port: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"JWTToken:\n"+
			"  TokenTTL: %s\n"+
			"Console:\n"+
			"  HeartbeatInterval: %s\n",
		c.Env,
		c.StaticDir,
		c.FilePath,
		c.Port,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.TokenTTL,
		c.HeartbeatInterval,
	)
}
