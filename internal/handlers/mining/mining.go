package mining

//go:generate mockgen -source=mining.go -destination=mock_mining.go -package=mining

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/dailymine/internal/domain"
	"github.com/GlebRadaev/dailymine/internal/dto"
	"github.com/GlebRadaev/dailymine/internal/service/miningservice"
	"github.com/GlebRadaev/dailymine/pkg/auth"
	"github.com/GlebRadaev/dailymine/pkg/utils"
)

type Service interface {
	ClaimDailyProfit(ctx context.Context, userID int) (*domain.ClaimResult, error)
	GetMiningStatus(ctx context.Context, userID int) (*domain.MiningStatus, error)
	GetProfitHistory(ctx context.Context, userID int) ([]domain.ProfitClaim, error)
}

type MiningHandler struct {
	miningService Service
}

func New(miningService Service) *MiningHandler {
	return &MiningHandler{
		miningService: miningService,
	}
}

// ClaimDailyProfit godoc
//
//	@Summary		Claim daily mining profit
//	@Description	Credits a random share of the wallet balance, drawn from the commission range, to the crypto wallet. Available once per 24 hours and only with an approved deposit.
//	@Tags			Mining
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ClaimResponseDTO
//	@Failure		400	{object}	utils.Response	"No approved deposits or cooldown active"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		409	{object}	utils.Response	"Claim already in progress"
//	@Failure		500	{object}	utils.Response	"Commission settings missing or invalid"
//	@Router			/api/mining/claim [post]
func (h *MiningHandler) ClaimDailyProfit(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	result, err := h.miningService.ClaimDailyProfit(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, miningservice.ErrNoDeposits), errors.Is(err, miningservice.ErrCooldownActive):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, miningservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, miningservice.ErrClaimInProgress):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, miningservice.ErrSettingsMissing), errors.Is(err, miningservice.ErrInvalidRange):
			utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ClaimResponseDTO{
		Success: true,
		Message: "Daily profit claimed successfully",
		Data: dto.ClaimDataDTO{
			Profit:        result.Profit,
			WalletBalance: result.WalletBalance,
			CryptoWallet:  result.CryptoWallet,
			TotalDeposits: result.TotalDeposits,
			NextMineTime:  result.NextMineTime,
		},
	})
}

// GetMiningStatus godoc
//
//	@Summary		Get mining status
//	@Description	Reports whether the cooldown is running and how many milliseconds remain.
//	@Tags			Mining
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MiningStatusResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/mining/status [get]
func (h *MiningHandler) GetMiningStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	status, err := h.miningService.GetMiningStatus(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MiningStatusResponseDTO{
		Active:        status.Active,
		RemainingTime: status.RemainingTime.Milliseconds(),
		LastMineTime:  status.LastMineTime,
	})
}

// GetProfitHistory godoc
//
//	@Summary		Get profit history
//	@Description	Lists every profit claim of the authenticated user in the order they were made.
//	@Tags			Mining
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfitHistoryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/mining/history [get]
func (h *MiningHandler) GetProfitHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	claims, err := h.miningService.GetProfitHistory(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ProfitClaimDTO, len(claims))
	for i, c := range claims {
		response[i] = dto.ProfitClaimDTO{
			ID:           c.ID,
			UserID:       c.UserID,
			DepositID:    c.DepositID,
			ProfitAmount: c.ProfitAmount,
			ClaimedAt:    c.ClaimedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfitHistoryResponseDTO{
		Success: true,
		Data:    response,
	})
}
