package settings

//go:generate mockgen -source=settings.go -destination=mock_settings.go -package=settings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/dailymine/internal/domain"
	"github.com/GlebRadaev/dailymine/internal/dto"
	"github.com/GlebRadaev/dailymine/internal/service/settingsservice"
	"github.com/GlebRadaev/dailymine/pkg/utils"
)

type Service interface {
	GetSettings(ctx context.Context) ([]domain.CommissionSetting, error)
	UpdateSettings(ctx context.Context, startingLevel, endingLevel *float64) (*domain.CommissionSetting, error)
}

type SettingsHandler struct {
	settingsService Service
}

func New(settingsService Service) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetSettings godoc
//
//	@Summary		Get daily commission settings
//	@Description	Returns the daily commission range. The row is created with zero bounds on first access.
//	@Tags			Settings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.GetSettingsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/settings/commission [get]
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.GetSettings(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.CommissionSettingDTO, len(settings))
	for i, s := range settings {
		response[i] = toSettingDTO(&s)
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GetSettingsResponseDTO{
		Success: true,
		Setting: response,
	})
}

// UpdateSettings godoc
//
//	@Summary		Update daily commission settings
//	@Description	Sets the percentage range daily rewards are drawn from. Both bounds must be within 0..100 and endingLevel must not be below startingLevel.
//	@Tags			Settings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateSettingsRequestDTO	true	"Commission range"
//	@Success		200		{object}	dto.UpdateSettingsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid range"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/settings/commission [put]
//	@Router			/api/admin/settings/commission [patch]
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSettingsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	setting, err := h.settingsService.UpdateSettings(r.Context(), req.StartingLevel, req.EndingLevel)
	if err != nil {
		switch {
		case errors.Is(err, settingsservice.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UpdateSettingsResponseDTO{
		Success: true,
		Message: "Settings updated successfully",
		Setting: toSettingDTO(setting),
	})
}

func toSettingDTO(s *domain.CommissionSetting) dto.CommissionSettingDTO {
	return dto.CommissionSettingDTO{
		Keyname:       s.Keyname,
		StartingLevel: s.StartingLevel,
		EndingLevel:   s.EndingLevel,
		UpdatedAt:     s.UpdatedAt,
	}
}
