package core

import "time"

type RegisterMessage struct {
	ProviderToken string
	ReferralCode  string
}

type CreateTransactionMessage struct {
	FromProfileID   *string
	ToProfileID     *string
	Amount          float64
	TransactionType string
	Status          string
	TxHash          *string
}

type SettleMessage struct {
	ID     string
	Status string
	TxHash *string
}

type ProfileView struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	WalletAddress   string    `json:"wallet_address"`
	TwitterUsername *string   `json:"twitter_username,omitempty"`
	TwitterName     *string   `json:"twitter_name,omitempty"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	ReferralCode    string    `json:"referral_code"`
	ReferredBy      *string   `json:"referred_by,omitempty"`
	Balance         float64   `json:"balance"`
	TotalReferrals  int       `json:"total_referrals"`
	TotalEarnings   float64   `json:"total_earnings"`
	ReferralLevel   int       `json:"referral_level"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type TransactionRecord struct {
	ID              string    `json:"id"`
	FromProfileID   *string   `json:"from_profile_id,omitempty"`
	ToProfileID     *string   `json:"to_profile_id,omitempty"`
	Amount          float64   `json:"amount"`
	TransactionType string    `json:"transaction_type"`
	Status          string    `json:"status"`
	TxHash          *string   `json:"tx_hash,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type Session struct {
	Token   string      `json:"token"`
	Profile ProfileView `json:"profile"`
}

// Dashboard is the composed view the wallet screen renders in one request.
// ChainBalanceStale marks a failed RPC read; the rest of the dashboard is
// still served.
type Dashboard struct {
	Profile           ProfileView         `json:"profile"`
	ChainBalance      float64             `json:"chain_balance"`
	ChainBalanceStale bool                `json:"chain_balance_stale"`
	Transactions      []TransactionRecord `json:"transactions"`
}

// ReferrerView is the public projection of a profile looked up by referral
// code. Nothing beyond what a prospective signup needs is exposed.
type ReferrerView struct {
	ReferralCode   string  `json:"referral_code"`
	DisplayName    *string `json:"display_name,omitempty"`
	TotalReferrals int     `json:"total_referrals"`
}
