package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig    `toml:"server"`
	Database DatabaseConfig  `toml:"database"`
	Logs     LogsConfig      `toml:"logs"`
	Metrics  MetricsConfig   `toml:"metrics"`
	Velo     VeloConfig      `toml:"velo"`
	Accounts []AccountConfig `toml:"accounts"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// VeloConfig настройки интеграции с платформой виртуального велоспорта
type VeloConfig struct {
	Timeout    int `toml:"timeout"`     // секунды, на каждый внешний вызов
	DefaultFTP int `toml:"default_ftp"` // FTP по умолчанию, если у клиента не задан
}

// AccountConfig привязка станка к аккаунту внешней платформы
// Статическая конфигурация: одна запись на станок, аккаунт может быть не привязан.
type AccountConfig struct {
	StandID     int64  `toml:"stand_id"`
	Identifier  string `toml:"identifier"`
	Email       string `toml:"email"`
	Password    string `toml:"password"`
	BaseURL     string `toml:"base_url"`
	DisplayName string `toml:"display_name"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "seating-service"
	}
	if cfg.Velo.Timeout == 0 {
		cfg.Velo.Timeout = 15
	}
	if cfg.Velo.DefaultFTP == 0 {
		cfg.Velo.DefaultFTP = 150
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if cfg.Database.User == "" {
		return fmt.Errorf("config: database.user is required")
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}

	seen := make(map[int64]string, len(cfg.Accounts))
	for _, acc := range cfg.Accounts {
		if acc.StandID <= 0 {
			return fmt.Errorf("config: accounts entry %q has invalid stand_id", acc.Identifier)
		}
		if acc.Identifier == "" {
			return fmt.Errorf("config: accounts entry for stand %d has empty identifier", acc.StandID)
		}
		if acc.Email == "" || acc.Password == "" {
			return fmt.Errorf("config: account %q is missing credentials", acc.Identifier)
		}
		if acc.BaseURL == "" {
			return fmt.Errorf("config: account %q is missing base_url", acc.Identifier)
		}
		if prev, ok := seen[acc.StandID]; ok {
			return fmt.Errorf("config: stand %d is mapped to both %q and %q", acc.StandID, prev, acc.Identifier)
		}
		seen[acc.StandID] = acc.Identifier
	}

	return nil
}
