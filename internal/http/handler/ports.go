package handler

import (
	"context"
	"net/http"

	"plusone/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name WalletService . WalletService
type WalletService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (core.Session, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, token string) (core.ProfileView, error)
	Dashboard(ctx context.Context, token string) (core.Dashboard, error)
	UpdateBalance(ctx context.Context, token string, balance float64) (core.ProfileView, error)
	Transactions(ctx context.Context, token string) ([]core.TransactionRecord, error)
	CreateTransaction(ctx context.Context, msg core.CreateTransactionMessage) (core.TransactionRecord, error)
	SettleTransaction(ctx context.Context, msg core.SettleMessage) error
	ResolveReferralCode(ctx context.Context, code string) (core.ReferrerView, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
