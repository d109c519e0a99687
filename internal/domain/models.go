package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID            int       `db:"id"`
	Login         string    `db:"login"`
	PasswordHash  string    `db:"password_hash"`
	Role          string    `db:"role"`
	WalletBalance float64   `db:"wallet_balance"`
	CryptoWallet  float64   `db:"crypto_wallet"`
	CreatedAt     time.Time `db:"created_at"`
}

const (
	DepositStatusPending  = "pending"
	DepositStatusApproved = "approved"
	DepositStatusRejected = "rejected"
)

type Deposit struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Status    string    `db:"status"`
	Amount    float64   `db:"amount"`
	CreatedAt time.Time `db:"created_at"`
}

// DailyCommissionKey names the only settings row the schema accepts.
const DailyCommissionKey = "daily_commission"

// CommissionSetting holds the percentage bounds, 0..100, for daily rewards.
type CommissionSetting struct {
	Keyname       string    `db:"keyname"`
	StartingLevel float64   `db:"starting_level"`
	EndingLevel   float64   `db:"ending_level"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type MiningSession struct {
	UserID       int       `db:"user_id"`
	LastMineTime time.Time `db:"last_mine_time"`
	NextMineTime time.Time `db:"next_mine_time"`
	ProfitAmount float64   `db:"profit_amount"`
}

type ProfitClaim struct {
	ID           int       `db:"id"`
	UserID       int       `db:"user_id"`
	DepositID    int       `db:"deposit_id"`
	ProfitAmount float64   `db:"profit_amount"`
	ClaimedAt    time.Time `db:"claimed_at"`
}

const (
	// SystemSenderID marks ledger rows paid out by the platform itself.
	SystemSenderID = 0

	TransactionTypeMiningEarning = "mining_earning"
	TransactionStatusCompleted   = "completed"
	PaymentMethodSystem          = "system"
)

type Transaction struct {
	ID              int       `db:"id"`
	SenderID        int       `db:"sender_id"`
	ReceiverID      int       `db:"receiver_id"`
	Amount          float64   `db:"amount"`
	PaymentMethod   string    `db:"payment_method"`
	TransactionType string    `db:"transaction_type"`
	Note            string    `db:"note"`
	Status          string    `db:"status"`
	TransactionDate time.Time `db:"transaction_date"`
}

// ClaimResult is what a successful daily claim reports back.
type ClaimResult struct {
	Profit        float64
	WalletBalance float64
	CryptoWallet  float64
	TotalDeposits float64
	NextMineTime  time.Time
}

type MiningStatus struct {
	Active        bool
	RemainingTime time.Duration
	LastMineTime  *time.Time
}
