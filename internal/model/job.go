package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"juggle-backend/internal/catalog"
)

// EditableJobInfo is the part of a job its owner can change
type EditableJobInfo struct {
	Title           string         `gorm:"size:50;not null" json:"title"`
	DailyRateRange  Rate           `gorm:"not null" json:"daily_rate_range"`
	AvailabilityIDs pq.StringArray `gorm:"type:text[]" json:"availability_ids"`
	LocationIDs     pq.StringArray `gorm:"type:text[]" json:"location_ids"`
	Skills          pq.StringArray `gorm:"type:text[]" json:"skills"`
}

// Job is gorm model for a role posted by a business
type Job struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"job_id"`
	BusinessID uint      `gorm:"not null;index;<-:create" json:"-"`
	Business   Business  `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE" json:"-"`
	OwnerID    uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"-"`
	Owner      User      `gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT" json:"-"`
	EditableJobInfo
	CreatedAt time.Time `gorm:"index" json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// JobInput is the request body for creating or updating a job
type JobInput struct {
	Title           *string  `json:"title" binding:"omitnil,min=1,max=50"`
	DailyRateRange  *Rate    `json:"daily_rate_range"`
	AvailabilityIDs []string `json:"availability_ids" binding:"omitnil,dive,max=10"`
	LocationIDs     []string `json:"location_ids" binding:"omitnil,dive,max=10"`
	Skills          []string `json:"skills" binding:"omitnil,dive,min=1,max=50"`
}

// ApplyTo copies every provided field onto j.
func (in JobInput) ApplyTo(j *Job) {
	if in.Title != nil {
		j.Title = *in.Title
	}
	if in.DailyRateRange != nil {
		j.DailyRateRange = *in.DailyRateRange
	}
	if in.AvailabilityIDs != nil {
		j.AvailabilityIDs = in.AvailabilityIDs
	}
	if in.LocationIDs != nil {
		j.LocationIDs = in.LocationIDs
	}
	if in.Skills != nil {
		j.Skills = in.Skills
	}
}

// JobResponse is the wire shape of a job
type JobResponse struct {
	JobID          uint                   `json:"job_id"`
	Title          string                 `json:"title"`
	DailyRateRange Rate                   `json:"daily_rate_range"`
	Skills         []string               `json:"skills"`
	Availabilities []AvailabilityResponse `json:"availabilities"`
	Locations      []LocationResponse     `json:"locations"`
}

// ToResponse converts Job to JobResponse, resolving reference ids against cats
func (j *Job) ToResponse(cats catalog.Set) JobResponse {
	return JobResponse{
		JobID:          j.ID,
		Title:          j.Title,
		DailyRateRange: j.DailyRateRange,
		Skills:         nonNil(j.Skills),
		Availabilities: ToAvailabilityResponses(cats.Availability.Resolve(j.AvailabilityIDs)),
		Locations:      ToLocationResponses(cats.Location.Resolve(j.LocationIDs)),
	}
}

// ToJobResponses converts a slice of jobs
func ToJobResponses(jobs []Job, cats catalog.Set) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, jobs[i].ToResponse(cats))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
