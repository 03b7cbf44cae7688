package model

import "time"

// Application links a professional to a job. CreatedAt is what the daily cap counts.
type Application struct {
	ID             uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	ProfessionalID uint         `gorm:"not null;index" json:"professional_id"`
	Professional   Professional `gorm:"foreignKey:ProfessionalID;constraint:OnDelete:CASCADE" json:"-"`
	JobID          uint         `gorm:"not null;index:idx_applications_job_created,priority:1" json:"job_id"`
	Job            Job          `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt      time.Time    `gorm:"index:idx_applications_job_created,priority:2" json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
