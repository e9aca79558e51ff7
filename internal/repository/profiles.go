package repository

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"plusone/internal/db"
)

var ErrProfileNotFound error = errors.New("profile not found")
var ErrCodesExhausted error = errors.New("referral code generation attempts exhausted")

const (
	referralCodeLength  = 8
	referralCodeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789" // no 0/O, 1/I
	maxCodeAttempts     = 5
)

type ProfileRepository struct {
	db Storage
}

func NewProfileRepository(db Storage) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

func (r *ProfileRepository) MigrateTables(tbls ...any) error {
	err := r.db.MigrateTable(tbls...)
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

// Create inserts the profile unless one with the same user id already exists.
// The insert is conflict-guarded at the database, so two concurrent first
// logins produce exactly one row. Returns the stored profile and whether this
// call created it. ErrProfileNotFound is returned only when neither the insert
// nor the follow-up fetch can see a row; callers should retry.
func (r *ProfileRepository) Create(ctx context.Context, profile Profile) (Profile, bool, error) {
	inserted, err := r.db.InsertIfAbsent(ctx, &profile, "user_id")
	if err != nil {
		return Profile{}, false, fmt.Errorf("insert profile: %w", err)
	}
	if inserted {
		return profile, true, nil
	}

	var existing Profile
	err = r.db.GetOneBy(ctx, "user_id", profile.UserID, &existing)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Profile{}, false, ErrProfileNotFound
		}
		return Profile{}, false, fmt.Errorf("get existing profile: %w", err)
	}

	return existing, false, nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (Profile, error) {
	var profile Profile

	err := r.db.GetOneBy(ctx, "id", id, &profile)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Profile{}, ErrProfileNotFound
		}
		return Profile{}, fmt.Errorf("get profile by id: %w", err)
	}

	return profile, nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (Profile, error) {
	var profile Profile

	err := r.db.GetOneBy(ctx, "user_id", userID, &profile)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Profile{}, ErrProfileNotFound
		}
		return Profile{}, fmt.Errorf("get profile by user id: %w", err)
	}

	return profile, nil
}

// GetByReferralCode resolves a referral code with a case-sensitive exact match.
func (r *ProfileRepository) GetByReferralCode(ctx context.Context, code string) (Profile, error) {
	var profile Profile

	err := r.db.GetOneBy(ctx, "referral_code", code, &profile)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Profile{}, ErrProfileNotFound
		}
		return Profile{}, fmt.Errorf("get profile by referral code: %w", err)
	}

	return profile, nil
}

// NewReferralCode generates a code that is free against all existing codes at
// generation time, retrying on collision up to maxCodeAttempts.
func (r *ProfileRepository) NewReferralCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := randomCode(referralCodeLength)
		if err != nil {
			return "", fmt.Errorf("generate referral code: %w", err)
		}

		var existing Profile
		err = r.db.GetOneBy(ctx, "referral_code", code, &existing)
		if errors.Is(err, db.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("check referral code: %w", err)
		}
	}

	return "", ErrCodesExhausted
}

// SetBalance overwrites the balance unconditionally. Only callers holding an
// authoritative value (e.g. a chain read) should use it; earned amounts go
// through AddToBalance instead.
func (r *ProfileRepository) SetBalance(ctx context.Context, profileID string, balance float64) error {
	rows, err := r.db.UpdateWhere(ctx, &Profile{}, map[string]any{"balance": balance}, "id = ?", profileID)
	if err != nil {
		return fmt.Errorf("set balance: %w", err)
	}
	if rows == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) AddToBalance(ctx context.Context, profileID string, delta float64) error {
	err := r.db.IncrementColumns(ctx, &Profile{}, profileID, map[string]float64{
		"balance": delta,
	})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("add to balance: %w", err)
	}
	return nil
}

// RecordReferral credits the referrer for one referred signup: counter,
// lifetime earnings and balance move together in a single atomic update.
func (r *ProfileRepository) RecordReferral(ctx context.Context, referrerID string, bonus float64) error {
	err := r.db.IncrementColumns(ctx, &Profile{}, referrerID, map[string]float64{
		"total_referrals": 1,
		"total_earnings":  bonus,
		"balance":         bonus,
	})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("record referral: %w", err)
	}
	return nil
}

func randomCode(length int) (string, error) {
	max := big.NewInt(int64(len(referralCodeCharset)))

	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("random index: %w", err)
		}
		code[i] = referralCodeCharset[n.Int64()]
	}

	return string(code), nil
}
