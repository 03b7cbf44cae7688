package model

import "juggle-backend/internal/catalog"

// AvailabilityResponse is a resolved availability reference
type AvailabilityResponse struct {
	AvailabilityID string `json:"availability_id"`
	Description    string `json:"description"`
}

// LocationResponse is a resolved location reference
type LocationResponse struct {
	LocationID  string `json:"location_id"`
	Description string `json:"description"`
}

// ToAvailabilityResponses converts catalog entries to their wire shape
func ToAvailabilityResponses(entries []catalog.Entry) []AvailabilityResponse {
	out := make([]AvailabilityResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, AvailabilityResponse{AvailabilityID: e.ID, Description: e.Description})
	}
	return out
}

// ToLocationResponses converts catalog entries to their wire shape
func ToLocationResponses(entries []catalog.Entry) []LocationResponse {
	out := make([]LocationResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, LocationResponse{LocationID: e.ID, Description: e.Description})
	}
	return out
}
