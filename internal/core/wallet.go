package core

import (
	"context"
	"errors"
	"fmt"

	"plusone/internal/metrics"
	"plusone/internal/repository"
	tokenIssuer "plusone/pkg/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrValidation error = errors.New("invalid transaction input")
var ErrReferralCodeNotFound error = errors.New("referral code not found")
var ErrSessionNotValid error = errors.New("session token not valid")

const (
	welcomeBonus  float64 = 10
	referralBonus float64 = 10

	referralsPerLevel = 5
	maxReferralLevel  = 5

	sessionHours = 24
)

// Wallet composes the identity provider, the profile store, the transaction
// ledger and the chain reader into the operations the wallet app consumes.
type Wallet struct {
	logs     *zap.SugaredLogger
	profiles ProfileStore
	ledger   Ledger
	tokens   TokenIssuer
	provider IdentityProvider
	chain    BalanceReader
	metrics  *metrics.Metrics
}

func NewWallet(
	logger *zap.SugaredLogger,
	profiles ProfileStore,
	ledger Ledger,
	tokens TokenIssuer,
	provider IdentityProvider,
	chain BalanceReader,
	mtr *metrics.Metrics,
) *Wallet {
	return &Wallet{
		logs:     logger,
		profiles: profiles,
		ledger:   ledger,
		tokens:   tokens,
		provider: provider,
		chain:    chain,
		metrics:  mtr,
	}
}

// Register authenticates against the identity provider and upserts the
// profile. The upsert is idempotent on the external user id: a first login
// creates the profile with a fresh referral code, the welcome bonus and, when
// a referral code was supplied, the referrer's bonus; a repeat login returns
// the existing profile unchanged and issues no second bonus. Either way a
// session token for the profile is returned.
func (w *Wallet) Register(ctx context.Context, msg RegisterMessage) (Session, error) {
	id, err := w.provider.Login(ctx, msg.ProviderToken)
	if err != nil {
		return Session{}, fmt.Errorf("provider login: %w", err)
	}

	var referrer *repository.Profile
	var referredBy *string
	if msg.ReferralCode != "" {
		ref, err := w.profiles.GetByReferralCode(ctx, msg.ReferralCode)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return Session{}, fmt.Errorf("%w: %q", ErrReferralCodeNotFound, msg.ReferralCode)
			}
			return Session{}, fmt.Errorf("resolve referral code: %w", err)
		}
		if ref.UserID == id.ExternalID {
			return Session{}, fmt.Errorf("%w: profile cannot refer itself", ErrValidation)
		}
		referrer = &ref
		referredBy = &ref.ReferralCode
	}

	code, err := w.profiles.NewReferralCode(ctx)
	if err != nil {
		return Session{}, fmt.Errorf("new referral code: %w", err)
	}

	profile, created, err := w.profiles.Create(ctx, repository.Profile{
		ID:              uuid.NewString(),
		UserID:          id.ExternalID,
		WalletAddress:   id.WalletAddress,
		TwitterUsername: id.Social.Handle,
		TwitterName:     id.Social.DisplayName,
		ProfileImageURL: id.Social.AvatarURL,
		ReferralCode:    code,
		ReferredBy:      referredBy,
		Balance:         welcomeBonus,
	})
	if err != nil {
		return Session{}, fmt.Errorf("create profile: %w", err)
	}

	if created {
		if err := w.issueSignupBonuses(ctx, profile, referrer); err != nil {
			return Session{}, err
		}
		w.metrics.Registrations.Inc()
		w.logs.Infow("profile registered",
			"profile_id", profile.ID,
			"referral_code", profile.ReferralCode,
			"referred", referrer != nil)
	}

	signed, err := w.issueSession(profile)
	if err != nil {
		return Session{}, err
	}

	return Session{
		Token:   signed,
		Profile: toProfileView(profile),
	}, nil
}

func (w *Wallet) issueSignupBonuses(ctx context.Context, profile repository.Profile, referrer *repository.Profile) error {
	_, err := w.ledger.Create(ctx, repository.Transaction{
		ToProfileID:     &profile.ID,
		Amount:          welcomeBonus,
		TransactionType: repository.TypeWelcomeBonus,
		Status:          repository.StatusCompleted,
	})
	if err != nil {
		return fmt.Errorf("create welcome bonus transaction: %w", err)
	}
	w.metrics.BonusesIssued.WithLabelValues(repository.TypeWelcomeBonus).Inc()

	if referrer == nil {
		return nil
	}

	if err := w.profiles.RecordReferral(ctx, referrer.ID, referralBonus); err != nil {
		return fmt.Errorf("record referral: %w", err)
	}

	_, err = w.ledger.Create(ctx, repository.Transaction{
		ToProfileID:     &referrer.ID,
		Amount:          referralBonus,
		TransactionType: repository.TypeReferralBonus,
		Status:          repository.StatusCompleted,
	})
	if err != nil {
		return fmt.Errorf("create referral bonus transaction: %w", err)
	}
	w.metrics.BonusesIssued.WithLabelValues(repository.TypeReferralBonus).Inc()

	w.logs.Infow("referral bonus issued",
		"referrer_id", referrer.ID,
		"referred_profile_id", profile.ID,
		"amount", referralBonus)

	return nil
}

// Logout validates the session and revokes the provider-side sessions.
func (w *Wallet) Logout(ctx context.Context, token string) error {
	profile, err := w.profileFromToken(ctx, token)
	if err != nil {
		return err
	}

	if err := w.provider.Logout(ctx, profile.UserID); err != nil {
		return fmt.Errorf("provider logout: %w", err)
	}

	w.logs.Infow("profile logged out", "profile_id", profile.ID)
	return nil
}

func (w *Wallet) Profile(ctx context.Context, token string) (ProfileView, error) {
	profile, err := w.profileFromToken(ctx, token)
	if err != nil {
		return ProfileView{}, err
	}

	return toProfileView(profile), nil
}

// Dashboard composes the profile, the live chain balance and the recent
// transactions. A failed chain read degrades to a zero balance flagged stale;
// it never blocks the dashboard.
func (w *Wallet) Dashboard(ctx context.Context, token string) (Dashboard, error) {
	profile, err := w.profileFromToken(ctx, token)
	if err != nil {
		return Dashboard{}, err
	}

	dashboard := Dashboard{
		Profile: toProfileView(profile),
	}

	balance, err := w.chain.NativeBalance(ctx, profile.WalletAddress)
	if err != nil {
		w.logs.Errorw("chain balance read failed",
			"error", err,
			"wallet_address", profile.WalletAddress)
		w.metrics.ChainReads.WithLabelValues("error").Inc()
		dashboard.ChainBalanceStale = true
	} else {
		w.metrics.ChainReads.WithLabelValues("ok").Inc()
		dashboard.ChainBalance = balance
	}

	transactions, err := w.ledger.ListForProfile(ctx, profile.ID)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list transactions: %w", err)
	}
	dashboard.Transactions = toTransactionRecords(transactions)

	return dashboard, nil
}

func (w *Wallet) Transactions(ctx context.Context, token string) ([]TransactionRecord, error) {
	profile, err := w.profileFromToken(ctx, token)
	if err != nil {
		return nil, err
	}

	transactions, err := w.ledger.ListForProfile(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return toTransactionRecords(transactions), nil
}

// UpdateBalance overwrites the caller's token balance with a caller-computed
// value. The store does no arithmetic here; earned amounts never go through
// this path.
func (w *Wallet) UpdateBalance(ctx context.Context, token string, balance float64) (ProfileView, error) {
	profile, err := w.profileFromToken(ctx, token)
	if err != nil {
		return ProfileView{}, err
	}

	if balance < 0 {
		return ProfileView{}, fmt.Errorf("%w: balance must not be negative", ErrValidation)
	}

	if err := w.profiles.SetBalance(ctx, profile.ID, balance); err != nil {
		return ProfileView{}, fmt.Errorf("set balance: %w", err)
	}

	profile.Balance = balance
	return toProfileView(profile), nil
}

// CreateTransaction validates and appends a ledger entry. Amount must be
// non-negative, the type one of the four known kinds, and at least one end of
// the transfer present and resolvable.
func (w *Wallet) CreateTransaction(ctx context.Context, msg CreateTransactionMessage) (TransactionRecord, error) {
	if err := w.validateCreate(ctx, msg); err != nil {
		return TransactionRecord{}, err
	}

	transaction, err := w.ledger.Create(ctx, repository.Transaction{
		FromProfileID:   msg.FromProfileID,
		ToProfileID:     msg.ToProfileID,
		Amount:          msg.Amount,
		TransactionType: msg.TransactionType,
		Status:          msg.Status,
		TxHash:          msg.TxHash,
	})
	if err != nil {
		return TransactionRecord{}, fmt.Errorf("create transaction: %w", err)
	}

	w.logs.Infow("transaction created",
		"transaction_id", transaction.ID,
		"type", transaction.TransactionType,
		"amount", transaction.Amount,
		"status", transaction.Status)

	return toTransactionRecord(transaction), nil
}

func (w *Wallet) validateCreate(ctx context.Context, msg CreateTransactionMessage) error {
	if msg.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}
	if !validTransactionType(msg.TransactionType) {
		return fmt.Errorf("%w: unknown transaction type %q", ErrValidation, msg.TransactionType)
	}
	if msg.FromProfileID == nil && msg.ToProfileID == nil {
		return fmt.Errorf("%w: at least one of from/to profile must be set", ErrValidation)
	}
	if msg.Status != "" && msg.Status != repository.StatusPending && msg.Status != repository.StatusCompleted {
		return fmt.Errorf("%w: status %q not allowed at creation", ErrValidation, msg.Status)
	}

	for _, profileID := range []*string{msg.FromProfileID, msg.ToProfileID} {
		if profileID == nil {
			continue
		}
		if _, err := w.profiles.GetByID(ctx, *profileID); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return err
			}
			return fmt.Errorf("resolve profile %q: %w", *profileID, err)
		}
	}

	return nil
}

// SettleTransaction moves a pending transaction to a terminal status,
// optionally attaching the chain hash.
func (w *Wallet) SettleTransaction(ctx context.Context, msg SettleMessage) error {
	if msg.Status != repository.StatusCompleted && msg.Status != repository.StatusFailed {
		return fmt.Errorf("%w: settlement status must be terminal, got %q", ErrValidation, msg.Status)
	}

	if err := w.ledger.UpdateStatus(ctx, msg.ID, msg.Status, msg.TxHash); err != nil {
		return fmt.Errorf("update transaction status: %w", err)
	}

	w.logs.Infow("transaction settled", "transaction_id", msg.ID, "status", msg.Status)
	return nil
}

// ResolveReferralCode looks up a referral code with a case-sensitive exact
// match and returns the public projection of the referrer.
func (w *Wallet) ResolveReferralCode(ctx context.Context, code string) (ReferrerView, error) {
	profile, err := w.profiles.GetByReferralCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return ReferrerView{}, fmt.Errorf("%w: %q", ErrReferralCodeNotFound, code)
		}
		return ReferrerView{}, fmt.Errorf("get profile by referral code: %w", err)
	}

	return ReferrerView{
		ReferralCode:   profile.ReferralCode,
		DisplayName:    profile.TwitterName,
		TotalReferrals: profile.TotalReferrals,
	}, nil
}

func (w *Wallet) profileFromToken(ctx context.Context, token string) (repository.Profile, error) {
	claims, err := w.tokens.Validate(token)
	if err != nil {
		return repository.Profile{}, fmt.Errorf("%w: %w", ErrSessionNotValid, err)
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return repository.Profile{}, fmt.Errorf("%w: missing subject claim", ErrSessionNotValid)
	}

	profile, err := w.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return repository.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	return profile, nil
}

func (w *Wallet) issueSession(profile repository.Profile) (string, error) {
	username := profile.UserID
	if profile.TwitterUsername != nil {
		username = *profile.TwitterUsername
	}

	token := w.tokens.Generate(tokenIssuer.Info{
		UserName:   username,
		Subject:    profile.UserID,
		Expiration: sessionHours,
	})

	signed, err := w.tokens.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// referralLevel is the display level derived from the referral counter. It
// feeds no payout computation.
func referralLevel(totalReferrals int) int {
	level := totalReferrals/referralsPerLevel + 1
	return min(level, maxReferralLevel)
}

func validTransactionType(transactionType string) bool {
	switch transactionType {
	case repository.TypeSend, repository.TypeReceive, repository.TypeReferralBonus, repository.TypeWelcomeBonus:
		return true
	}
	return false
}

func toProfileView(profile repository.Profile) ProfileView {
	return ProfileView{
		ID:              profile.ID,
		UserID:          profile.UserID,
		WalletAddress:   profile.WalletAddress,
		TwitterUsername: profile.TwitterUsername,
		TwitterName:     profile.TwitterName,
		ProfileImageURL: profile.ProfileImageURL,
		ReferralCode:    profile.ReferralCode,
		ReferredBy:      profile.ReferredBy,
		Balance:         profile.Balance,
		TotalReferrals:  profile.TotalReferrals,
		TotalEarnings:   profile.TotalEarnings,
		ReferralLevel:   referralLevel(profile.TotalReferrals),
		CreatedAt:       profile.CreatedAt,
		UpdatedAt:       profile.UpdatedAt,
	}
}

func toTransactionRecord(transaction repository.Transaction) TransactionRecord {
	return TransactionRecord{
		ID:              transaction.ID,
		FromProfileID:   transaction.FromProfileID,
		ToProfileID:     transaction.ToProfileID,
		Amount:          transaction.Amount,
		TransactionType: transaction.TransactionType,
		Status:          transaction.Status,
		TxHash:          transaction.TxHash,
		CreatedAt:       transaction.CreatedAt,
	}
}

func toTransactionRecords(transactions []repository.Transaction) []TransactionRecord {
	records := make([]TransactionRecord, len(transactions))
	for i, transaction := range transactions {
		records[i] = toTransactionRecord(transaction)
	}
	return records
}
