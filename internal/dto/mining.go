package dto

import "time"

type ClaimDataDTO struct {
	Profit        float64   `json:"profit" example:"15.25"`
	WalletBalance float64   `json:"walletBalance" example:"1000"`
	CryptoWallet  float64   `json:"cryptoWallet" example:"115.25"`
	TotalDeposits float64   `json:"totalDeposits" example:"1000"`
	NextMineTime  time.Time `json:"nextMineTime" example:"2024-05-02T12:00:00Z"`
}

type ClaimResponseDTO struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message" example:"Daily profit claimed successfully"`
	Data    ClaimDataDTO `json:"data"`
}

type MiningStatusResponseDTO struct {
	Active        bool       `json:"active" example:"true"`
	RemainingTime int64      `json:"remainingTime" example:"3600000"`
	LastMineTime  *time.Time `json:"lastMineTime" example:"2024-05-01T12:00:00Z"`
}

type ProfitClaimDTO struct {
	ID           int       `json:"id" example:"1"`
	UserID       int       `json:"userId" example:"7"`
	DepositID    int       `json:"depositId" example:"3"`
	ProfitAmount float64   `json:"profitAmount" example:"15.25"`
	ClaimedAt    time.Time `json:"claimedAt" example:"2024-05-01T12:00:00Z"`
}

type ProfitHistoryResponseDTO struct {
	Success bool             `json:"success" example:"true"`
	Data    []ProfitClaimDTO `json:"data"`
}
