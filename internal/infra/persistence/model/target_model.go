package model

import (
	"time"

	"geotarget/internal/domain/entity"

	"github.com/google/uuid"
)

// TargetModel is the GORM-specific struct for the 'targets' table.
// DwellSeconds stores the accumulated dwell time in seconds.
type TargetModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Title        string    `gorm:"type:varchar(100);not null"`
	Latitude     float64   `gorm:"not null"`
	Longitude    float64   `gorm:"not null"`
	Address      *string   `gorm:"type:text"`
	Radius       *float64
	CreatedAt    time.Time `gorm:"not null"`
	VisitCount   int       `gorm:"not null;default:0"`
	DwellSeconds float64   `gorm:"not null;default:0"`
	EntryTime    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (TargetModel) TableName() string {
	return "targets"
}

// FromTargetDomain maps a domain target to its persistence model.
func FromTargetDomain(target *entity.Target) *TargetModel {
	return &TargetModel{
		ID:           target.ID,
		Title:        target.Title,
		Latitude:     target.Latitude,
		Longitude:    target.Longitude,
		Address:      target.Address,
		Radius:       target.Radius,
		CreatedAt:    target.CreatedAt,
		VisitCount:   target.VisitCount,
		DwellSeconds: target.DwellTime.Seconds(),
		EntryTime:    target.EntryTime,
	}
}

// ToTargetDomain maps a persistence model back to the domain target.
func ToTargetDomain(m *TargetModel) *entity.Target {
	return &entity.Target{
		ID:         m.ID,
		Title:      m.Title,
		Latitude:   m.Latitude,
		Longitude:  m.Longitude,
		Address:    m.Address,
		Radius:     m.Radius,
		CreatedAt:  m.CreatedAt,
		VisitCount: m.VisitCount,
		DwellTime:  time.Duration(m.DwellSeconds * float64(time.Second)),
		EntryTime:  m.EntryTime,
	}
}
