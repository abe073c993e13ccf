package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Bank is an entry of the static bank registry accounts are opened in.
type Bank struct {
	Name        string `mapstructure:"name" json:"name"`
	Description string `mapstructure:"description" json:"description"`
}

// RoleSalary maps a platform role id to the gross salary paid to its members.
type RoleSalary struct {
	RoleID string `mapstructure:"role_id"`
	Amount int64  `mapstructure:"amount"`
}

// ShopItem is a catalog entry. Items are kept as a list so viper does not
// lowercase their names the way it does map keys.
type ShopItem struct {
	Name  string `mapstructure:"name" json:"name"`
	Price int64  `mapstructure:"price" json:"price"`
}

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Storage struct {
		Driver  string `mapstructure:"driver"`
		DataDir string `mapstructure:"data_dir"`
	} `mapstructure:"storage"`
	Database struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
		SSLMode  string `mapstructure:"sslmode"`
	} `mapstructure:"database"`
	Redis struct {
		Enabled  bool   `mapstructure:"enabled"`
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
		Channel  string `mapstructure:"channel"`
	} `mapstructure:"redis"`
	JWT struct {
		SecretKey string `mapstructure:"secret_key"`
	} `mapstructure:"jwt"`
	Economy   Economy   `mapstructure:"economy"`
	Scheduler Scheduler `mapstructure:"scheduler"`
}

type Economy struct {
	OpeningCard   int64        `mapstructure:"opening_card"`
	OpeningCash   int64        `mapstructure:"opening_cash"`
	Banks         []Bank       `mapstructure:"banks"`
	DefaultSalary int64        `mapstructure:"default_salary"`
	TaxRate       float64      `mapstructure:"tax_rate"`
	Salaries      []RoleSalary `mapstructure:"salaries"`
	Shop          []ShopItem   `mapstructure:"shop"`
}

type Scheduler struct {
	Spec       string `mapstructure:"spec"`
	Timezone   string `mapstructure:"timezone"`
	RunOnStart bool   `mapstructure:"run_on_start"`
}

var AppConfig Config

// ErrMissingSecret is returned when no JWT signing secret is configured.
var ErrMissingSecret = errors.New("jwt.secret_key (RPBANK_JWT_SECRET_KEY) is required")

// LoadConfig reads config.yml from path (optional), a .env file (optional) and
// RPBANK_* environment variables into AppConfig.
func LoadConfig(path string) error {
	_ = godotenv.Load()

	setDefaults()

	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.SetEnvPrefix("RPBANK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unable to decode into struct: %w", err)
	}

	if cfg.JWT.SecretKey == "" {
		return ErrMissingSecret
	}
	switch cfg.Storage.Driver {
	case "json", "postgres", "memory":
	default:
		return fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	AppConfig = cfg
	return nil
}

// BankByName looks a bank up in the registry.
func (e Economy) BankByName(name string) (Bank, bool) {
	for _, b := range e.Banks {
		if b.Name == name {
			return b, true
		}
	}
	return Bank{}, false
}

func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("log.level", "info")

	viper.SetDefault("storage.driver", "json")
	viper.SetDefault("storage.data_dir", "data")

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.user", "rpbank")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.name", "rpbank")
	viper.SetDefault("database.sslmode", "disable")

	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", "6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.channel", "rpbank:loan_events")

	viper.SetDefault("jwt.secret_key", "")

	viper.SetDefault("economy.opening_card", 1200)
	viper.SetDefault("economy.opening_cash", 0)
	viper.SetDefault("economy.default_salary", 1200)
	viper.SetDefault("economy.tax_rate", 0.065)
	viper.SetDefault("economy.banks", []map[string]any{
		{"name": "Banco Sabadell", "description": "Banco líder en Valencia con más de 130 años de experiencia"},
		{"name": "CaixaBank", "description": "El banco más grande de España, presente en Valencia"},
		{"name": "Banco Santander", "description": "Banco internacional con fuerte presencia en la Comunidad Valenciana"},
		{"name": "BBVA", "description": "Banco digital líder en innovación financiera"},
		{"name": "Bankinter", "description": "Banco especializado en banca personal y de empresas"},
	})
	viper.SetDefault("economy.salaries", []map[string]any{})
	viper.SetDefault("economy.shop", []map[string]any{
		{"name": "Linterna", "price": 50},
		{"name": "Cuchillo", "price": 100},
		{"name": "Martillo", "price": 100},
		{"name": "Bate de béisbol", "price": 150},
		{"name": "Palanca", "price": 250},
		{"name": "Beretta M9", "price": 900},
		{"name": "LEMAT Revolver", "price": 1000},
		{"name": "COLT M1911", "price": 1200},
	})

	viper.SetDefault("scheduler.spec", "@daily")
	viper.SetDefault("scheduler.timezone", "Local")
	viper.SetDefault("scheduler.run_on_start", true)
}
