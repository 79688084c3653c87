package config

import (
	"os"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName string
	Port    string
	Env     string
	Debug   bool
	// ShopID is the current shop all operations default to when neither a
	// route parameter nor an explicit argument supplies one.
	ShopID string
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName: os.Getenv("APP_NAME"),
			Port:    os.Getenv("PORT"),
			Env:     os.Getenv("APP_ENV"),
			Debug:   os.Getenv("DEBUG") == "true",
			ShopID:  os.Getenv("SHOP_ID"),
		}
	})
}

// CurrentShopID returns the configured shop id, or empty when unset.
func CurrentShopID() string {
	if AppConfig == nil {
		return os.Getenv("SHOP_ID")
	}
	return AppConfig.ShopID
}
