package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"juggle-backend/internal/catalog"
)

// EditableProfessionalInfo is the part of a professional its owner can change
type EditableProfessionalInfo struct {
	FullName        string         `gorm:"size:255;not null" json:"full_name"`
	Email           string         `gorm:"size:254;not null" json:"email"`
	Title           string         `gorm:"size:50;not null" json:"title"`
	DailyRateRange  Rate           `gorm:"not null" json:"daily_rate_range"`
	AvailabilityIDs pq.StringArray `gorm:"type:text[]" json:"availability_ids"`
	LocationIDs     pq.StringArray `gorm:"type:text[]" json:"location_ids"`
}

// Professional is gorm model for an individual looking for jobs
type Professional struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"professional_id"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"-"`
	Owner   User      `gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT" json:"-"`
	EditableProfessionalInfo
	CreatedAt time.Time `gorm:"index" json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// ProfessionalInput is the request body for creating or updating a professional
type ProfessionalInput struct {
	FullName        *string  `json:"full_name" binding:"omitnil,min=1,max=255"`
	Email           *string  `json:"email" binding:"omitnil,email,max=254"`
	Title           *string  `json:"title" binding:"omitnil,min=1,max=50"`
	DailyRateRange  *Rate    `json:"daily_rate_range"`
	AvailabilityIDs []string `json:"availability_ids" binding:"omitnil,dive,max=10"`
	LocationIDs     []string `json:"location_ids" binding:"omitnil,dive,max=10"`
}

// ApplyTo copies every provided field onto p.
func (in ProfessionalInput) ApplyTo(p *Professional) {
	if in.FullName != nil {
		p.FullName = *in.FullName
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.DailyRateRange != nil {
		p.DailyRateRange = *in.DailyRateRange
	}
	if in.AvailabilityIDs != nil {
		p.AvailabilityIDs = in.AvailabilityIDs
	}
	if in.LocationIDs != nil {
		p.LocationIDs = in.LocationIDs
	}
}

// ProfessionalResponse is the wire shape of a professional with the jobs they applied to
type ProfessionalResponse struct {
	ProfessionalID uint                   `json:"professional_id"`
	FullName       string                 `json:"full_name"`
	Email          string                 `json:"email"`
	Title          string                 `json:"title"`
	DailyRateRange Rate                   `json:"daily_rate_range"`
	Availabilities []AvailabilityResponse `json:"availabilities"`
	Locations      []LocationResponse     `json:"locations"`
	Jobs           []JobResponse          `json:"jobs"`
}

// ToResponse converts Professional to ProfessionalResponse. jobs are the jobs p applied to.
func (p *Professional) ToResponse(cats catalog.Set, jobs []Job) ProfessionalResponse {
	return ProfessionalResponse{
		ProfessionalID: p.ID,
		FullName:       p.FullName,
		Email:          p.Email,
		Title:          p.Title,
		DailyRateRange: p.DailyRateRange,
		Availabilities: ToAvailabilityResponses(cats.Availability.Resolve(p.AvailabilityIDs)),
		Locations:      ToLocationResponses(cats.Location.Resolve(p.LocationIDs)),
		Jobs:           ToJobResponses(jobs, cats),
	}
}
