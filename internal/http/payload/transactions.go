package payload

import (
	"regexp"

	"plusone/internal/core"

	"github.com/jellydator/validation"
)

var txHashRegex = regexp.MustCompile(`^0x[a-f0-9]{64}$`)

type CreateTransactionRequest struct {
	FromProfileID   *string `json:"from_profile_id,omitempty"`
	ToProfileID     *string `json:"to_profile_id,omitempty"`
	Amount          float64 `json:"amount"`
	TransactionType string  `json:"transaction_type"`
	Status          string  `json:"status,omitempty"`
	TxHash          *string `json:"tx_hash,omitempty"`
}

func (c CreateTransactionRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Amount, validation.Min(float64(0))),
		validation.Field(&c.TransactionType, validation.Required),
		validation.Field(&c.TxHash, validation.Match(txHashRegex)),
	)
}

func (c CreateTransactionRequest) ToMessage() core.CreateTransactionMessage {
	return core.CreateTransactionMessage{
		FromProfileID:   c.FromProfileID,
		ToProfileID:     c.ToProfileID,
		Amount:          c.Amount,
		TransactionType: c.TransactionType,
		Status:          c.Status,
		TxHash:          c.TxHash,
	}
}

type SettleTransactionRequest struct {
	Status string  `json:"status"`
	TxHash *string `json:"tx_hash,omitempty"`
}

func (s SettleTransactionRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Status, validation.Required, validation.In("completed", "failed")),
		validation.Field(&s.TxHash, validation.Match(txHashRegex)),
	)
}

func (s SettleTransactionRequest) ToMessage(id string) core.SettleMessage {
	return core.SettleMessage{
		ID:     id,
		Status: s.Status,
		TxHash: s.TxHash,
	}
}

type UpdateBalanceRequest struct {
	Balance float64 `json:"balance"`
}

func (u UpdateBalanceRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Balance, validation.Min(float64(0))),
	)
}
