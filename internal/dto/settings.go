package dto

import "time"

type CommissionSettingDTO struct {
	Keyname       string    `json:"keyname" example:"daily_commission"`
	StartingLevel float64   `json:"startingLevel" example:"1.5"`
	EndingLevel   float64   `json:"endingLevel" example:"3"`
	UpdatedAt     time.Time `json:"updatedAt" example:"2024-05-01T12:00:00Z"`
}

type GetSettingsResponseDTO struct {
	Success bool                   `json:"success" example:"true"`
	Setting []CommissionSettingDTO `json:"setting"`
}

// Pointers let a missing bound be reported instead of read as 0.
type UpdateSettingsRequestDTO struct {
	StartingLevel *float64 `json:"startingLevel" example:"1.5"`
	EndingLevel   *float64 `json:"endingLevel" example:"3"`
}

type UpdateSettingsResponseDTO struct {
	Success bool                 `json:"success" example:"true"`
	Message string               `json:"message" example:"Settings updated successfully"`
	Setting CommissionSettingDTO `json:"setting"`
}
