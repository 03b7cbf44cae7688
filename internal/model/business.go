package model

import (
	"time"

	"github.com/google/uuid"
)

// EditableBusinessInfo is the part of a business its owner can change
type EditableBusinessInfo struct {
	CompanyName string `gorm:"size:255;not null" json:"company_name"`
	Website     string `gorm:"size:200;not null" json:"website"`
}

// Business is gorm model for an organization that posts jobs
type Business struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"business_id"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"-"`
	Owner   User      `gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT" json:"-"`
	EditableBusinessInfo
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// BusinessInput is the request body for creating or updating a business
type BusinessInput struct {
	CompanyName *string `json:"company_name" binding:"omitnil,min=1,max=255"`
	Website     *string `json:"website" binding:"omitnil,url,max=200"`
}

// ApplyTo copies every provided field onto b.
func (in BusinessInput) ApplyTo(b *Business) {
	if in.CompanyName != nil {
		b.CompanyName = *in.CompanyName
	}
	if in.Website != nil {
		b.Website = *in.Website
	}
}

// BusinessResponse is the wire shape of a business
type BusinessResponse struct {
	BusinessID  uint   `json:"business_id"`
	CompanyName string `json:"company_name"`
	Website     string `json:"website"`
}

// ToResponse converts Business to BusinessResponse
func (b *Business) ToResponse() BusinessResponse {
	return BusinessResponse{
		BusinessID:  b.ID,
		CompanyName: b.CompanyName,
		Website:     b.Website,
	}
}
