package model

import (
	"strings"

	apperrors "go-gin-parking/pkg/app_errors"
)

// VehicleCategory 車種，決定費率與車位池
type VehicleCategory string

const (
	VehicleCategoryCar  VehicleCategory = "CAR"
	VehicleCategoryBike VehicleCategory = "BIKE"
)

// VehicleCategories 依終端機選單順序 (1 CAR, 2 BIKE)
var VehicleCategories = []VehicleCategory{VehicleCategoryCar, VehicleCategoryBike}

// IsValid 驗證車種是否有效
func (c VehicleCategory) IsValid() bool {
	switch c {
	case VehicleCategoryCar, VehicleCategoryBike:
		return true
	}
	return false
}

func (c VehicleCategory) String() string {
	return string(c)
}

// ParseVehicleCategory 解析操作員輸入："1"/"2" 或車種名稱（不分大小寫）
func ParseVehicleCategory(input string) (VehicleCategory, error) {
	in := strings.TrimSpace(input)
	if in == "" {
		return "", apperrors.ErrMissingCategory
	}
	switch strings.ToUpper(in) {
	case "1", string(VehicleCategoryCar):
		return VehicleCategoryCar, nil
	case "2", string(VehicleCategoryBike):
		return VehicleCategoryBike, nil
	}
	return "", apperrors.ErrUnknownCategory
}
