package core

import (
	"context"

	"plusone/internal/identity"
	"plusone/internal/repository"
	tokenIssuer "plusone/pkg/token"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ProfileStore . ProfileStore
type ProfileStore interface {
	Create(ctx context.Context, profile repository.Profile) (repository.Profile, bool, error)
	GetByID(ctx context.Context, id string) (repository.Profile, error)
	GetByUserID(ctx context.Context, userID string) (repository.Profile, error)
	GetByReferralCode(ctx context.Context, code string) (repository.Profile, error)
	NewReferralCode(ctx context.Context) (string, error)
	SetBalance(ctx context.Context, profileID string, balance float64) error
	AddToBalance(ctx context.Context, profileID string, delta float64) error
	RecordReferral(ctx context.Context, referrerID string, bonus float64) error
}

//counterfeiter:generate -o fake -fake-name Ledger . Ledger
type Ledger interface {
	Create(ctx context.Context, transaction repository.Transaction) (repository.Transaction, error)
	ListForProfile(ctx context.Context, profileID string) ([]repository.Transaction, error)
	UpdateStatus(ctx context.Context, id string, status string, txHash *string) error
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Generate(data tokenIssuer.Info) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name IdentityProvider . IdentityProvider
type IdentityProvider interface {
	Login(ctx context.Context, providerToken string) (identity.Identity, error)
	Logout(ctx context.Context, externalID string) error
}

//counterfeiter:generate -o fake -fake-name BalanceReader . BalanceReader
type BalanceReader interface {
	NativeBalance(ctx context.Context, address string) (float64, error)
}
