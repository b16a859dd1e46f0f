package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VomitingFrequency values
const (
	FrequencyHourly = "hourly"
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
	FrequencyNone   = "none"
)

// VomitColors lists the accepted vomit colour values.
var VomitColors = []string{"clear", "white", "yellow", "green", "brown", "red", "none"}

// SymptomTriggers records what may have caused the symptoms.
type SymptomTriggers struct {
	Foods   []string `json:"foods"`
	Stress  bool     `json:"stress"`
	ColdFlu bool     `json:"coldFlu"`
}

// SymptomEntry is a dated record of reflux and vomiting symptoms.
type SymptomEntry struct {
	ID                uuid.UUID       `gorm:"type:uuid;primarykey" json:"id"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index:idx_symptom_user_date,priority:1" json:"userId"`
	Date              time.Time       `gorm:"not null;index:idx_symptom_user_date,priority:2" json:"date"`
	HeartburnSeverity int             `gorm:"not null;default:0" json:"heartburnSeverity"`
	Nausea            bool            `gorm:"not null;default:false" json:"nausea"`
	NauseaSeverity    int             `gorm:"not null;default:0" json:"nauseaSeverity"`
	VomitingEpisodes  int             `gorm:"not null;default:0" json:"vomitingEpisodes"`
	VomitingFrequency string          `gorm:"size:16;not null;default:'none'" json:"vomitingFrequency"`
	VomitColor        string          `gorm:"size:16;not null;default:'none'" json:"vomitColor"`
	Triggers          SymptomTriggers `gorm:"serializer:json;type:text" json:"triggers"`
	Notes             string          `gorm:"type:text" json:"notes"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
	DeletedAt         gorm.DeletedAt  `gorm:"index" json:"-"`
}

// TableName returns the table name for the SymptomEntry model
func (SymptomEntry) TableName() string {
	return "symptom_entries"
}

func (s *SymptomEntry) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Normalize fills defaults for omitted enum fields and tidies free text.
func (s *SymptomEntry) Normalize() {
	s.VomitingFrequency = strings.ToLower(strings.TrimSpace(s.VomitingFrequency))
	if s.VomitingFrequency == "" {
		s.VomitingFrequency = FrequencyNone
	}
	s.VomitColor = strings.ToLower(strings.TrimSpace(s.VomitColor))
	if s.VomitColor == "" {
		s.VomitColor = "none"
	}
	s.Notes = strings.TrimSpace(s.Notes)
	if s.Triggers.Foods == nil {
		s.Triggers.Foods = []string{}
	}
}

// Validate returns the problems with the entry, or nil.
func (s *SymptomEntry) Validate() []string {
	var errs []string
	if s.HeartburnSeverity < 0 || s.HeartburnSeverity > 10 {
		errs = append(errs, "Heartburn severity must be between 0 and 10")
	}
	if s.Nausea && (s.NauseaSeverity < 0 || s.NauseaSeverity > 10) {
		errs = append(errs, "Nausea severity must be between 0 and 10")
	}
	if s.VomitingEpisodes < 0 {
		errs = append(errs, "Vomiting episodes cannot be negative")
	}
	if s.VomitingEpisodes > 0 && s.VomitColor == "none" {
		errs = append(errs, "Please specify vomit color if vomiting occurred")
	}
	switch s.VomitingFrequency {
	case FrequencyHourly, FrequencyDaily, FrequencyWeekly, FrequencyNone:
	default:
		errs = append(errs, "Vomiting frequency must be hourly, daily, weekly or none")
	}
	if !validColor(s.VomitColor) {
		errs = append(errs, "Vomit color is not recognised")
	}
	return errs
}

func validColor(c string) bool {
	for _, v := range VomitColors {
		if v == c {
			return true
		}
	}
	return false
}
