package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
}

// UpstreamAPI points at the bakery backend that owns products and orders.
type UpstreamAPI struct {
	BaseURL      string        `yaml:"API_BASE_URL" env:"API_BASE_URL" env-default:"http://localhost:8080"`
	ProductsPath string        `yaml:"API_PRODUCTS_PATH" env:"API_PRODUCTS_PATH" env-default:"/products"`
	OrdersPath   string        `yaml:"API_ORDERS_PATH" env:"API_ORDERS_PATH" env-default:"/api/orders"`
	Timeout      time.Duration `yaml:"API_TIMEOUT" env:"API_TIMEOUT" env-default:"10s"`
}

type App struct {
	Name         string  `yaml:"APP_NAME" env:"APP_NAME" env-default:"Sweet Dreams Bakery"`
	Currency     string  `yaml:"APP_CURRENCY" env:"APP_CURRENCY" env-default:"USD"`
	TaxRate      float64 `yaml:"TAX_RATE" env:"TAX_RATE" env-default:"0.085"`
	MaxCartItems int     `yaml:"MAX_CART_ITEMS" env:"MAX_CART_ITEMS" env-default:"50"`
}

// Features are read once at startup and treated as constants for the session.
type Features struct {
	APIIntegration  bool `yaml:"ENABLE_API_INTEGRATION" env:"ENABLE_API_INTEGRATION" env-default:"true"`
	StockValidation bool `yaml:"ENABLE_STOCK_VALIDATION" env:"ENABLE_STOCK_VALIDATION" env-default:"true"`
	Notifications   bool `yaml:"ENABLE_NOTIFICATIONS" env:"ENABLE_NOTIFICATIONS" env-default:"true"`
}

const (
	StorageBackendFile     = "file"
	StorageBackendRedis    = "redis"
	StorageBackendPostgres = "postgres"
)

type Storage struct {
	Backend  string `yaml:"STORAGE_BACKEND" env:"STORAGE_BACKEND" env-default:"file"`
	FilePath string `yaml:"STORAGE_FILE_PATH" env:"STORAGE_FILE_PATH" env-default:"data/cart.json"`
	// CartKey is the single storage key the cart is persisted under.
	CartKey string        `yaml:"STORAGE_CART_KEY" env:"STORAGE_CART_KEY" env-default:"bakeryCart"`
	Timeout time.Duration `yaml:"STORAGE_TIMEOUT" env:"STORAGE_TIMEOUT" env-default:"5s"`
}

type RedisConnect struct {
	Addr     string `yaml:"REDIS_ADDR" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER" env-default:""`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type Database struct {
	Host     string `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port     string `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User     string `yaml:"PG_USER" env:"PG_USER" env-default:"postgres"`
	Password string `yaml:"PG_PASSWORD" env:"PG_PASSWORD" env-default:""`
	Name     string `yaml:"PG_DBNAME" env:"PG_DBNAME" env-default:"storefront"`
	SSLMode  string `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
}

type WhatsApp struct {
	// Number is the shop's phone in international format without "+",
	// as expected by wa.me deep links.
	Number string `yaml:"WHATSAPP_NUMBER" env:"WHATSAPP_NUMBER" env-default:""`
}

type SendGrid struct {
	APIKey    string `yaml:"SENDGRID_API_KEY" env:"SENDGRID_API_KEY" env-default:""`
	FromEmail string `yaml:"SENDGRID_FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:""`
	FromName  string `yaml:"SENDGRID_FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:""`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"development"`
	HTTPServer   `yaml:"http_server"`
	UpstreamAPI  UpstreamAPI  `yaml:"api"`
	App          App          `yaml:"app"`
	Features     Features     `yaml:"features"`
	Storage      Storage      `yaml:"storage"`
	RedisConnect RedisConnect `yaml:"redis"`
	Database     Database     `yaml:"database"`
	WhatsApp     WhatsApp     `yaml:"whatsapp"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags
	}

	var cfg Config

	if configPath == "" {
		// Environment-only configuration; every field has a default.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("can not read config from environment: %s", err.Error())
		}

		return &cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	if r.Password != "" {
		return fmt.Sprintf("redis://%s:%s@%s/%d", r.Username, r.Password, r.Addr, r.DB)
	}

	return fmt.Sprintf("redis://%s/%d", r.Addr, r.DB)
}
