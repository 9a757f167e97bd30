package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/teammerch/merch-store/internal/core/domain"
)

// Config is the full server configuration. Values come from defaults,
// then an optional YAML file, then environment overrides, in that
// order.
type Config struct {
	ListenAddr    string           `yaml:"listen_addr"`
	RedisAddr     string           `yaml:"redis_addr"`
	MySQLDSN      string           `yaml:"mysql_dsn"`
	AdminPassword string           `yaml:"admin_password"`
	Catalog       []domain.Product `yaml:"catalog"`
}

// Default returns the configuration the server runs with when nothing
// else is supplied, including the fixed merch catalog.
func Default() Config {
	return Config{
		ListenAddr:    ":8080",
		RedisAddr:     "localhost:6379",
		MySQLDSN:      "root:root@tcp(localhost:3306)/merchstore?parseTime=true",
		AdminPassword: "admin",
		Catalog: []domain.Product{
			{ID: "hoodies", Name: "Hoodies", UnitPrice: 35.23, Description: "Comfortable team hoodies with company logo", Image: "/images/hoodies.jpg"},
			{ID: "quarter-zips", Name: "Quarter Zips", UnitPrice: 31.37, Description: "Professional quarter-zip pullovers", Image: "/images/quarter-zips.jpg"},
			{ID: "tshirts", Name: "T-Shirts", UnitPrice: 8.44, Description: "Classic team t-shirts", Image: "/images/tshirts.jpg"},
			{ID: "polo-shirts", Name: "Polo Shirts", UnitPrice: 17.23, Description: "Business casual polo shirts", Image: "/images/polo-shirts.jpg"},
			{ID: "stickers", Name: "Stickers", UnitPrice: 0, Description: "Free company logo stickers", Image: "/images/stickers.jpg"},
		},
	}
}

// Load builds the configuration from the file at path (skipped when
// path is empty or the file is missing) and the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("MYSQL_DSN"); v != "" {
		cfg.MySQLDSN = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.AdminPassword = v
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if len(cfg.Catalog) == 0 {
		return fmt.Errorf("catalog must not be empty")
	}
	seen := make(map[string]struct{}, len(cfg.Catalog))
	for _, p := range cfg.Catalog {
		if p.ID == "" {
			return fmt.Errorf("catalog item %q has no id", p.Name)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate catalog item id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.UnitPrice < 0 {
			return fmt.Errorf("catalog item %q has negative price", p.ID)
		}
	}
	if cfg.AdminPassword == "" {
		return fmt.Errorf("admin password must not be empty")
	}
	return nil
}
