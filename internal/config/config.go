package config

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"
)

// Бэкенды хранилища документов
const (
	StorageBackendFile  = "file"
	StorageBackendMongo = "mongo"
)

// Config хранит все настройки приложения
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Redis   RedisConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
}

// StorageConfig содержит настройки хранилища документов.
// Бэкенд выбирается один раз при старте: "file" (встроенный JSON-файл)
// или "mongo".
type StorageConfig struct {
	Backend  string `mapstructure:"backend"`
	FilePath string `mapstructure:"file_path"`
	MongoURI string `mapstructure:"mongo_uri"`
	MongoDB  string `mapstructure:"mongo_db"`
}

// RedisConfig содержит унифицированные настройки подключения к Redis
// Поддерживает режимы: single, sentinel, cluster
type RedisConfig struct {
	// Enabled: Redis опционален — без него рейтинги считаются на каждый запрос
	Enabled bool `mapstructure:"enabled"`

	// Mode: Режим работы Redis ("single", "sentinel", "cluster"). По умолчанию "single".
	Mode string `mapstructure:"mode"`

	// Addrs: Список адресов Redis (хост:порт). Используется для всех режимов.
	// Для 'single', если не пуст, используется первый адрес из списка.
	Addrs []string `mapstructure:"addrs"`

	// Addr: Альтернативный адрес для режима 'single' (для обратной совместимости).
	Addr string `mapstructure:"addr"`

	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	// MasterName: Имя мастер-сервера Redis (только для режима "sentinel")
	MasterName string `mapstructure:"master_name"`

	// MaxRetries: Максимальное количество попыток переподключения (-1 - бесконечно).
	MaxRetries int `mapstructure:"max_retries"`

	// MinRetryBackoff: Минимальный интервал между попытками (в миллисекундах).
	MinRetryBackoff int `mapstructure:"min_retry_backoff"`

	// MaxRetryBackoff: Максимальный интервал между попытками (в миллисекундах).
	MaxRetryBackoff int `mapstructure:"max_retry_backoff"`
}

// Load загружает конфигурацию из файла
func Load(configPath string) (*Config, error) {
	vip := viper.New() // Используем новый экземпляр Viper, чтобы избежать глобального состояния

	// 1. Значения по умолчанию
	vip.SetDefault("server.port", "8080")
	vip.SetDefault("server.readtimeout", 10)
	vip.SetDefault("server.writetimeout", 10)
	vip.SetDefault("storage.backend", StorageBackendFile)
	vip.SetDefault("storage.file_path", "data/predictions.json")

	// 2. Привязываем переменные окружения ЯВНО
	vip.BindEnv("server.port", "SERVER_PORT")

	vip.BindEnv("storage.backend", "STORAGE_BACKEND")
	vip.BindEnv("storage.file_path", "STORAGE_FILE_PATH")
	vip.BindEnv("storage.mongo_uri", "STORAGE_MONGO_URI")
	vip.BindEnv("storage.mongo_db", "STORAGE_MONGO_DB")

	vip.BindEnv("redis.enabled", "REDIS_ENABLED")
	vip.BindEnv("redis.mode", "REDIS_MODE")
	vip.BindEnv("redis.addrs", "REDIS_ADDRS")
	vip.BindEnv("redis.addr", "REDIS_ADDR")
	vip.BindEnv("redis.password", "REDIS_PASSWORD")
	vip.BindEnv("redis.db", "REDIS_DB")
	vip.BindEnv("redis.master_name", "REDIS_MASTER_NAME")

	// 3. Устанавливаем путь к файлу конфигурации
	if configPath != "" {
		vip.SetConfigFile(configPath)
		if err := vip.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				log.Printf("Файл конфигурации '%s' не найден, используются переменные окружения/умолчания.", configPath)
			} else {
				log.Printf("Предупреждение: не удалось прочитать файл конфигурации '%s': %v", configPath, err)
			}
		}
	}

	// 4. Анмаршалим конфигурацию (Viper объединит значения из файла и env vars)
	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if os.Getenv("GIN_MODE") != "release" {
		log.Printf("--- Загруженные значения конфигурации ---")
		log.Printf("Server Port: %s", cfg.Server.Port)
		log.Printf("Storage Backend: %s", cfg.Storage.Backend)
		log.Printf("Storage File Path: %s", cfg.Storage.FilePath)
		log.Printf("Mongo DB: %s", cfg.Storage.MongoDB)
		log.Printf("Redis Enabled: %t", cfg.Redis.Enabled)
		log.Printf("Redis Addr: %s", cfg.Redis.Addr)
		log.Printf("-----------------------------------------")
	}

	// 5. Проверка обязательных параметров
	switch cfg.Storage.Backend {
	case StorageBackendFile:
		if cfg.Storage.FilePath == "" {
			return nil, fmt.Errorf("storage file path is required for the file backend (check STORAGE_FILE_PATH env var)")
		}
	case StorageBackendMongo:
		if cfg.Storage.MongoURI == "" || cfg.Storage.MongoDB == "" {
			return nil, fmt.Errorf("mongo URI and database name are required for the mongo backend (check STORAGE_MONGO_URI, STORAGE_MONGO_DB env vars)")
		}
	default:
		return nil, fmt.Errorf("unknown storage backend %q (expected %q or %q)",
			cfg.Storage.Backend, StorageBackendFile, StorageBackendMongo)
	}

	if cfg.Redis.Enabled && cfg.Redis.Addr == "" && len(cfg.Redis.Addrs) == 0 {
		return nil, fmt.Errorf("redis is enabled but no address is configured (check REDIS_ADDR env var)")
	}

	return &cfg, nil
}
