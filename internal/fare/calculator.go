// Package fare computes parking fares from a stay interval, the vehicle
// category and the recurring-customer flag.
//
// A Calculator carries only its immutable rate table, so a single value can
// be shared by any number of goroutines.
package fare

import (
	"fmt"
	"time"

	"go-gin-parking/config"
	"go-gin-parking/internal/model"
	apperrors "go-gin-parking/pkg/app_errors"

	"github.com/shopspring/decimal"
)

const (
	CarRatePerHour    = config.DefaultCarRatePerHour
	BikeRatePerHour   = config.DefaultBikeRatePerHour
	RecurringDiscount = config.DefaultRecurringDiscount
	FreeStayMinutes   = config.DefaultFreeStayMinutes

	// currency precision
	pricePlaces = 2
)

var (
	millisPerHour = decimal.NewFromInt(int64(time.Hour / time.Millisecond))
	minutesInHour = decimal.NewFromInt(60)
	one           = decimal.NewFromInt(1)
)

type Calculator struct {
	rates       map[model.VehicleCategory]decimal.Decimal
	discount    decimal.Decimal
	freeMinutes decimal.Decimal
}

// NewCalculator builds a calculator from a validated fare configuration.
func NewCalculator(cfg config.FareConfig) Calculator {
	return Calculator{
		rates: map[model.VehicleCategory]decimal.Decimal{
			model.VehicleCategoryCar:  decimal.NewFromFloat(cfg.CarRatePerHour),
			model.VehicleCategoryBike: decimal.NewFromFloat(cfg.BikeRatePerHour),
		},
		discount:    decimal.NewFromFloat(cfg.RecurringDiscount),
		freeMinutes: decimal.NewFromFloat(cfg.FreeStayMinutes),
	}
}

// Default returns a calculator using the package rate constants.
func Default() Calculator {
	return NewCalculator(config.DefaultFareConfig())
}

// RatePerHour returns the hourly rate of a category.
func (c Calculator) RatePerHour(category model.VehicleCategory) (float64, error) {
	rate, ok := c.rates[category]
	if !ok {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrUnknownCategory, category)
	}
	return rate.InexactFloat64(), nil
}

// Calculate returns the fare of a stay, rounded half-up to two decimals.
//
// Stays shorter than the free-stay threshold cost nothing, whatever the
// category or recurrence. The recurring discount applies to every other stay.
// Rounding happens once, on the final price.
func (c Calculator) Calculate(inTime time.Time, outTime *time.Time, category *model.VehicleCategory, recurring bool) (float64, error) {
	if outTime == nil || outTime.Before(inTime) {
		return 0, apperrors.ErrInvalidInterval
	}
	if category == nil {
		return 0, apperrors.ErrMissingCategory
	}
	rate, ok := c.rates[*category]
	if !ok {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrUnknownCategory, *category)
	}

	hours := decimal.NewFromInt(outTime.Sub(inTime).Milliseconds()).Div(millisPerHour)
	if hours.Mul(minutesInHour).LessThan(c.freeMinutes) {
		return 0, nil
	}

	price := hours.Mul(rate)
	if recurring {
		price = price.Mul(one.Sub(c.discount))
	}

	// Round is half away from zero; prices are never negative so this is half-up.
	return price.Round(pricePlaces).InexactFloat64(), nil
}
