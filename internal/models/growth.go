package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/growplate/backend/internal/units"
)

// GrowthEntry is a dated weight and height measurement.
type GrowthEntry struct {
	ID         uuid.UUID        `gorm:"type:uuid;primarykey" json:"id"`
	UserID     uuid.UUID        `gorm:"type:uuid;not null;index:idx_growth_user_date,priority:1" json:"userId"`
	Date       time.Time        `gorm:"not null;index:idx_growth_user_date,priority:2" json:"date"`
	Weight     float64          `gorm:"not null" json:"weight"`
	WeightUnit units.WeightUnit `gorm:"size:8;not null" json:"weightUnit"`
	Height     float64          `gorm:"not null" json:"height"`
	HeightUnit units.HeightUnit `gorm:"size:8;not null" json:"heightUnit"`
	BMI        float64          `json:"bmi"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt   `gorm:"index" json:"-"`
}

// TableName returns the table name for the GrowthEntry model
func (GrowthEntry) TableName() string {
	return "growth_entries"
}

func (g *GrowthEntry) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// Validate returns the problems with the measurement, or nil.
func (g *GrowthEntry) Validate() []string {
	return units.ValidateMeasurements(g.Weight, g.WeightUnit, g.Height, g.HeightUnit)
}

// ComputeBMI derives BMI from the stored measurement.
func (g *GrowthEntry) ComputeBMI() {
	g.BMI = units.BMI(g.Weight, g.WeightUnit, g.Height, g.HeightUnit)
}
