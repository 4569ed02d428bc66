package entities

import "time"

// PlantingRecord is one plant a user tracks from planting to harvest.
// Categorical fields keep the label the form submitted; the adjustment rules
// canonicalize them when the schedule is built.
type PlantingRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	PlantName string    `json:"plant_name"`
	PlantedOn time.Time `json:"planting_date"`
	HarvestOn time.Time `json:"harvest_date"`

	SoilType    string   `json:"soil_type"`
	SoilPH      *float64 `json:"soil_ph,omitempty"`
	Humidity    string   `json:"humidity"`
	Temperature string   `json:"temperature"`
	Altitude    string   `json:"altitude"`
	Irrigation  string   `json:"irrigation"`
	SeedSource  string   `json:"seed_source"`

	WateringAmount   string `json:"watering_amount"` // e.g. 3
	WateringUnit     string `json:"watering_unit"`   // day|week|month|season
	FertilizerType   string `json:"fertilizer_type"`
	FertilizerAmount string `json:"fertilizer_amount"`
	FertilizerUnit   string `json:"fertilizer_unit"`

	ProgressPct float64 `gorm:"-" json:"progress_pct"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
