package model

// ParkingSpot 車位；車種在建立後不會改變，只有 Available 會切換
type ParkingSpot struct {
	ID        int             `json:"id" db:"id"`
	Category  VehicleCategory `json:"category" db:"category"`
	Available bool            `json:"available" db:"available"`
}

// SpotAvailability 各車種車位統計
type SpotAvailability struct {
	Category  VehicleCategory `json:"category"`
	Total     int             `json:"total"`
	Available int             `json:"available"`
}
