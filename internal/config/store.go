package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// StoreSettings are the shopkeeper-tunable knobs: presentation currency,
// the category applied when a product is added without one, and the stock
// level below which a product counts as low.
type StoreSettings struct {
	CurrencySymbol    string `mapstructure:"currencySymbol" json:"currencySymbol"`
	DefaultCategory   string `mapstructure:"defaultCategory" json:"defaultCategory"`
	LowStockThreshold int    `mapstructure:"lowStockThreshold" json:"lowStockThreshold"`
}

func DefaultStoreSettings() StoreSettings {
	return StoreSettings{
		CurrencySymbol:    "₱",
		DefaultCategory:   "General",
		LowStockThreshold: 5,
	}
}

// StoreSettingsHolder exposes the current settings and hot-reloads them when
// store.yml changes on disk.
type StoreSettingsHolder struct {
	current atomic.Value // holds StoreSettings
}

func NewStoreSettingsHolder() (*StoreSettingsHolder, error) {
	v := viper.New()

	v.SetConfigName("store")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/tindahan")
	v.AddConfigPath(".")

	v.SetEnvPrefix("TINDAHAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultStoreSettings()
		v.SetDefault("store.currencySymbol", defaults.CurrencySymbol)
		v.SetDefault("store.defaultCategory", defaults.DefaultCategory)
		v.SetDefault("store.lowStockThreshold", defaults.LowStockThreshold)
	}

	var settings StoreSettings
	if err := v.UnmarshalKey("store", &settings); err != nil {
		return nil, err
	}
	if err := validateStoreSettings(settings); err != nil {
		return nil, err
	}

	holder := &StoreSettingsHolder{}
	holder.current.Store(settings)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated StoreSettings
		if err := v.UnmarshalKey("store", &updated); err != nil {
			log.Printf("[store-config] reload failed: %v", err)
			return
		}
		if err := validateStoreSettings(updated); err != nil {
			log.Printf("[store-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[store-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *StoreSettingsHolder) Get() StoreSettings {
	return h.current.Load().(StoreSettings)
}

func validateStoreSettings(s StoreSettings) error {
	if strings.TrimSpace(s.DefaultCategory) == "" {
		return errors.New("store.defaultCategory cannot be empty")
	}
	if s.LowStockThreshold < 0 {
		return errors.New("store.lowStockThreshold cannot be negative")
	}
	return nil
}
