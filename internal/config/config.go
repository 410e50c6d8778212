package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config es la configuración del servicio. Se lee de un TOML opcional y
// las variables de entorno pisan lo que diga el archivo.
type Config struct {
	Addr string `toml:"addr"`

	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`

	// DevAuth habilita el modo sin sesiones: la identidad sale del header
	// X-Debug-User-ID. Solo para desarrollo local.
	DevAuth bool `toml:"dev_auth"`
}

type StorageConfig struct {
	// Driver: "memory", "pgx" o "sqlite3".
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" o "text"
}

func Default() Config {
	return Config{
		Addr: ":8080",
		Storage: StorageConfig{
			Driver: "memory",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load lee el TOML si existe y aplica los overrides de entorno.
// Un path vacío o inexistente no es error: se arranca con defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err == nil {
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("unmarshaling config: %w", err)
			}
		}
	}

	applyEnv(&cfg)

	if cfg.Storage.Driver != "memory" && cfg.Storage.DSN == "" {
		return Config{}, fmt.Errorf("storage driver %q requires a dsn", cfg.Storage.Driver)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		cfg.Storage.DSN = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("DEV_AUTH"); v != "" {
		cfg.DevAuth = v == "1" || v == "true"
	}
}
