package repository

import "time"

const (
	TypeSend          = "send"
	TypeReceive       = "receive"
	TypeReferralBonus = "referral_bonus"
	TypeWelcomeBonus  = "welcome_bonus"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type Profile struct {
	ID              string  `gorm:"primaryKey;autoIncrement:false"`
	UserID          string  `gorm:"type:varchar(255);uniqueIndex;not null"` // identity provider id
	WalletAddress   string  `gorm:"size:42;not null"`                       // custodial wallet address (0x + 40 hex)
	TwitterUsername *string `gorm:"type:varchar(255)"`
	TwitterName     *string `gorm:"type:varchar(255)"`
	ProfileImageURL *string `gorm:"type:text"`
	ReferralCode    string  `gorm:"type:varchar(16);uniqueIndex;not null"`
	ReferredBy      *string `gorm:"type:varchar(16)"` // referral code of the referrer, not their id
	Balance         float64 `gorm:"not null;default:0"`
	TotalReferrals  int     `gorm:"not null;default:0"`
	TotalEarnings   float64 `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Transaction struct {
	ID              string  `gorm:"primaryKey;autoIncrement:false"`
	FromProfileID   *string `gorm:"index"` // nullable, but never both ends at once
	ToProfileID     *string `gorm:"index"`
	Amount          float64 `gorm:"not null"`
	TransactionType string  `gorm:"type:varchar(32);not null"`
	Status          string  `gorm:"type:varchar(16);not null;default:'pending'"`
	TxHash          *string `gorm:"size:66"` // chain settlement reference, write-once
	CreatedAt       time.Time
}
