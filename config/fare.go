package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// 預設費率，與 fare 套件的常數一致
const (
	DefaultCarRatePerHour    = 1.5
	DefaultBikeRatePerHour   = 1.0
	DefaultRecurringDiscount = 0.05
	DefaultFreeStayMinutes   = 30
)

// FareConfig 計費設定：各車種每小時費率、常客折扣、免費停車分鐘數
type FareConfig struct {
	CarRatePerHour    float64 `mapstructure:"carRatePerHour"`
	BikeRatePerHour   float64 `mapstructure:"bikeRatePerHour"`
	RecurringDiscount float64 `mapstructure:"recurringDiscount"`
	FreeStayMinutes   float64 `mapstructure:"freeStayMinutes"`
}

func DefaultFareConfig() FareConfig {
	return FareConfig{
		CarRatePerHour:    DefaultCarRatePerHour,
		BikeRatePerHour:   DefaultBikeRatePerHour,
		RecurringDiscount: DefaultRecurringDiscount,
		FreeStayMinutes:   DefaultFreeStayMinutes,
	}
}

// LoadFareConfig 讀取 fare.yml（可選），環境變數 PARKING_FARE_* 可覆寫
func LoadFareConfig(paths ...string) (FareConfig, error) {
	v := viper.New()

	v.SetConfigName("fare")
	v.SetConfigType("yml")
	if len(paths) == 0 {
		paths = []string{"/etc/parking", "."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("PARKING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultFareConfig()
	v.SetDefault("fare.carRatePerHour", defaults.CarRatePerHour)
	v.SetDefault("fare.bikeRatePerHour", defaults.BikeRatePerHour)
	v.SetDefault("fare.recurringDiscount", defaults.RecurringDiscount)
	v.SetDefault("fare.freeStayMinutes", defaults.FreeStayMinutes)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return FareConfig{}, err
		}
	}

	// Unmarshal 走 AllSettings，環境變數覆寫才會生效
	var wrapper struct {
		Fare FareConfig `mapstructure:"fare"`
	}
	if err := v.Unmarshal(&wrapper); err != nil {
		return FareConfig{}, err
	}
	if err := ValidateFareConfig(wrapper.Fare); err != nil {
		return FareConfig{}, err
	}
	return wrapper.Fare, nil
}

func ValidateFareConfig(cfg FareConfig) error {
	if cfg.CarRatePerHour < 0 || cfg.BikeRatePerHour < 0 {
		return errors.New("fare rates cannot be negative")
	}
	if cfg.RecurringDiscount < 0 || cfg.RecurringDiscount >= 1 {
		return errors.New("fare.recurringDiscount must be in [0, 1)")
	}
	if cfg.FreeStayMinutes < 0 {
		return errors.New("fare.freeStayMinutes cannot be negative")
	}
	return nil
}
