package core_test

import (
	"context"
	"errors"

	"plusone/internal/core"
	"plusone/internal/core/fake"
	"plusone/internal/identity"
	"plusone/internal/metrics"
	"plusone/internal/repository"
	tokenIssuer "plusone/pkg/token"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Wallet", func() {
	var (
		fakeProfiles *fake.ProfileStore
		fakeLedger   *fake.Ledger
		fakeTokens   *fake.TokenIssuer
		fakeProvider *fake.IdentityProvider
		fakeChain    *fake.BalanceReader
		fakeLogger   *zap.SugaredLogger
		ctx          context.Context

		wallet *core.Wallet

		fakeErr error
	)

	BeforeEach(func() {
		fakeProfiles = new(fake.ProfileStore)
		fakeLedger = new(fake.Ledger)
		fakeTokens = new(fake.TokenIssuer)
		fakeProvider = new(fake.IdentityProvider)
		fakeChain = new(fake.BalanceReader)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		wallet = core.NewWallet(fakeLogger, fakeProfiles, fakeLedger, fakeTokens, fakeProvider, fakeChain, metrics.NewNop())

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			msg      core.RegisterMessage
			session  core.Session
			err      error
			id       identity.Identity
			profile  repository.Profile
			genToken *jwt.Token
			handle   string
		)

		BeforeEach(func() {
			handle = "satoshi"
			id = identity.Identity{
				ExternalID:    "privy:user-1",
				WalletAddress: "0x1111111111111111111111111111111111111111",
				Social: identity.SocialIdentity{
					Handle: &handle,
				},
			}
			profile = repository.Profile{
				ID:              uuid.NewString(),
				UserID:          id.ExternalID,
				WalletAddress:   id.WalletAddress,
				TwitterUsername: &handle,
				ReferralCode:    "QWERTY23",
				Balance:         10,
			}
			genToken = jwt.New(jwt.SigningMethodHS512)

			msg = core.RegisterMessage{ProviderToken: "provider.session.token"}

			fakeProvider.LoginReturns(id, nil)
			fakeProfiles.NewReferralCodeReturns("QWERTY23", nil)
			fakeProfiles.CreateReturns(profile, true, nil)
			fakeTokens.GenerateReturns(genToken)
			fakeTokens.SignReturns("signed.token", nil)
		})

		JustBeforeEach(func() {
			session, err = wallet.Register(ctx, msg)
		})

		When("a new profile signs up without a referral code", func() {
			It("creates the profile with the welcome bonus and issues a session", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Token).To(Equal("signed.token"))
				Expect(session.Profile.ID).To(Equal(profile.ID))
				Expect(session.Profile.ReferralCode).To(Equal("QWERTY23"))

				Expect(fakeProvider.LoginCallCount()).To(Equal(1))
				_, argToken := fakeProvider.LoginArgsForCall(0)
				Expect(argToken).To(Equal(msg.ProviderToken))

				Expect(fakeProfiles.CreateCallCount()).To(Equal(1))
				_, argProfile := fakeProfiles.CreateArgsForCall(0)
				Expect(argProfile.UserID).To(Equal(id.ExternalID))
				Expect(argProfile.WalletAddress).To(Equal(id.WalletAddress))
				Expect(argProfile.ReferralCode).To(Equal("QWERTY23"))
				Expect(argProfile.ReferredBy).To(BeNil())
				Expect(argProfile.Balance).To(Equal(float64(10)))

				Expect(fakeLedger.CreateCallCount()).To(Equal(1))
				_, argTx := fakeLedger.CreateArgsForCall(0)
				Expect(argTx.TransactionType).To(Equal(repository.TypeWelcomeBonus))
				Expect(argTx.Amount).To(Equal(float64(10)))
				Expect(argTx.Status).To(Equal(repository.StatusCompleted))
				Expect(argTx.FromProfileID).To(BeNil())
				Expect(*argTx.ToProfileID).To(Equal(profile.ID))

				Expect(fakeProfiles.RecordReferralCallCount()).To(Equal(0))

				Expect(fakeTokens.GenerateCallCount()).To(Equal(1))
				argGen := fakeTokens.GenerateArgsForCall(0)
				Expect(argGen).To(Equal(tokenIssuer.Info{
					UserName:   handle,
					Subject:    id.ExternalID,
					Expiration: 24,
				}))
				Expect(fakeTokens.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("a new profile signs up with a valid referral code", func() {
			var referrer repository.Profile

			BeforeEach(func() {
				referrer = repository.Profile{
					ID:           uuid.NewString(),
					UserID:       "privy:user-2",
					ReferralCode: "FRIEND42",
				}
				msg.ReferralCode = "FRIEND42"
				fakeProfiles.GetByReferralCodeReturns(referrer, nil)
			})

			It("credits the referrer once and records both bonus transactions", func() {
				Expect(err).NotTo(HaveOccurred())

				_, argCode := fakeProfiles.GetByReferralCodeArgsForCall(0)
				Expect(argCode).To(Equal("FRIEND42"))

				_, argProfile := fakeProfiles.CreateArgsForCall(0)
				Expect(*argProfile.ReferredBy).To(Equal("FRIEND42"))

				Expect(fakeProfiles.RecordReferralCallCount()).To(Equal(1))
				_, argReferrerID, argBonus := fakeProfiles.RecordReferralArgsForCall(0)
				Expect(argReferrerID).To(Equal(referrer.ID))
				Expect(argBonus).To(Equal(float64(10)))

				Expect(fakeLedger.CreateCallCount()).To(Equal(2))
				_, welcomeTx := fakeLedger.CreateArgsForCall(0)
				Expect(welcomeTx.TransactionType).To(Equal(repository.TypeWelcomeBonus))
				_, referralTx := fakeLedger.CreateArgsForCall(1)
				Expect(referralTx.TransactionType).To(Equal(repository.TypeReferralBonus))
				Expect(referralTx.Amount).To(Equal(float64(10)))
				Expect(referralTx.FromProfileID).To(BeNil())
				Expect(*referralTx.ToProfileID).To(Equal(referrer.ID))
			})
		})

		When("the profile already exists", func() {
			BeforeEach(func() {
				fakeProfiles.CreateReturns(profile, false, nil)
			})

			It("issues a session without a second bonus", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Token).To(Equal("signed.token"))
				Expect(fakeLedger.CreateCallCount()).To(Equal(0))
				Expect(fakeProfiles.RecordReferralCallCount()).To(Equal(0))
			})
		})

		When("the referral code does not exist", func() {
			BeforeEach(func() {
				msg.ReferralCode = "NOCODE99"
				fakeProfiles.GetByReferralCodeReturns(repository.Profile{}, repository.ErrProfileNotFound)
			})

			It("rejects the signup", func() {
				Expect(err).To(MatchError(core.ErrReferralCodeNotFound))
				Expect(fakeProfiles.CreateCallCount()).To(Equal(0))
				Expect(fakeLedger.CreateCallCount()).To(Equal(0))
			})
		})

		When("the referral code belongs to the signing-up user", func() {
			BeforeEach(func() {
				msg.ReferralCode = "SELFCODE"
				fakeProfiles.GetByReferralCodeReturns(repository.Profile{
					ID:           uuid.NewString(),
					UserID:       id.ExternalID,
					ReferralCode: "SELFCODE",
				}, nil)
			})

			It("rejects the self-referral", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeProfiles.CreateCallCount()).To(Equal(0))
			})
		})

		When("the identity provider is not ready", func() {
			BeforeEach(func() {
				fakeProvider.LoginReturns(identity.Identity{}, identity.ErrNotReady)
			})

			It("propagates the readiness error", func() {
				Expect(err).To(MatchError(identity.ErrNotReady))
				Expect(fakeProfiles.CreateCallCount()).To(Equal(0))
			})
		})

		When("the provider rejects the session token", func() {
			BeforeEach(func() {
				fakeProvider.LoginReturns(identity.Identity{}, identity.ErrAuth)
			})

			It("propagates the auth error", func() {
				Expect(err).To(MatchError(identity.ErrAuth))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeTokens.SignReturns("", fakeErr)
			})

			It("returns the signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Logout", func() {
		var (
			err     error
			profile repository.Profile
		)

		BeforeEach(func() {
			profile = repository.Profile{ID: uuid.NewString(), UserID: "privy:user-1"}
			fakeTokens.ValidateReturns(jwt.MapClaims{"sub": profile.UserID}, nil)
			fakeProfiles.GetByUserIDReturns(profile, nil)
		})

		JustBeforeEach(func() {
			err = wallet.Logout(ctx, "session.token")
		})

		When("the session is valid", func() {
			It("revokes the provider sessions", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeProvider.LogoutCallCount()).To(Equal(1))
				_, argUserID := fakeProvider.LogoutArgsForCall(0)
				Expect(argUserID).To(Equal(profile.UserID))
			})
		})

		When("the session token is invalid", func() {
			BeforeEach(func() {
				fakeTokens.ValidateReturns(nil, fakeErr)
			})

			It("returns a session error", func() {
				Expect(err).To(MatchError(core.ErrSessionNotValid))
				Expect(fakeProvider.LogoutCallCount()).To(Equal(0))
			})
		})

		When("the provider revocation fails", func() {
			BeforeEach(func() {
				fakeProvider.LogoutReturns(fakeErr)
			})

			It("returns the provider error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Profile", func() {
		var (
			view    core.ProfileView
			err     error
			profile repository.Profile
		)

		BeforeEach(func() {
			profile = repository.Profile{
				ID:             uuid.NewString(),
				UserID:         "privy:user-1",
				ReferralCode:   "QWERTY23",
				TotalReferrals: 12,
				TotalEarnings:  120,
				Balance:        130,
			}
			fakeTokens.ValidateReturns(jwt.MapClaims{"sub": profile.UserID}, nil)
			fakeProfiles.GetByUserIDReturns(profile, nil)
		})

		JustBeforeEach(func() {
			view, err = wallet.Profile(ctx, "session.token")
		})

		It("returns the profile with the derived referral level", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(view.ID).To(Equal(profile.ID))
			Expect(view.TotalReferrals).To(Equal(12))
			Expect(view.ReferralLevel).To(Equal(3))
		})

		When("the referral counter exceeds the level cap", func() {
			BeforeEach(func() {
				profile.TotalReferrals = 40
				fakeProfiles.GetByUserIDReturns(profile, nil)
			})

			It("caps the level at the maximum", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(view.ReferralLevel).To(Equal(5))
			})
		})

		When("the subject claim is missing", func() {
			BeforeEach(func() {
				fakeTokens.ValidateReturns(jwt.MapClaims{}, nil)
			})

			It("returns a session error", func() {
				Expect(err).To(MatchError(core.ErrSessionNotValid))
				Expect(fakeProfiles.GetByUserIDCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Dashboard", func() {
		var (
			dashboard core.Dashboard
			err       error
			profile   repository.Profile
		)

		BeforeEach(func() {
			profile = repository.Profile{
				ID:            uuid.NewString(),
				UserID:        "privy:user-1",
				WalletAddress: "0x1111111111111111111111111111111111111111",
			}
			fakeTokens.ValidateReturns(jwt.MapClaims{"sub": profile.UserID}, nil)
			fakeProfiles.GetByUserIDReturns(profile, nil)
			fakeChain.NativeBalanceReturns(1.5, nil)
			fakeLedger.ListForProfileReturns([]repository.Transaction{
				{ID: "tx-1", TransactionType: repository.TypeWelcomeBonus},
			}, nil)
		})

		JustBeforeEach(func() {
			dashboard, err = wallet.Dashboard(ctx, "session.token")
		})

		When("the chain read succeeds", func() {
			It("composes profile, balance and transactions", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(dashboard.Profile.ID).To(Equal(profile.ID))
				Expect(dashboard.ChainBalance).To(Equal(1.5))
				Expect(dashboard.ChainBalanceStale).To(BeFalse())
				Expect(dashboard.Transactions).To(HaveLen(1))

				_, argAddress := fakeChain.NativeBalanceArgsForCall(0)
				Expect(argAddress).To(Equal(profile.WalletAddress))
			})
		})

		When("the chain read fails", func() {
			BeforeEach(func() {
				fakeChain.NativeBalanceReturns(0, fakeErr)
			})

			It("degrades to a stale zero balance and still serves the rest", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(dashboard.ChainBalance).To(BeZero())
				Expect(dashboard.ChainBalanceStale).To(BeTrue())
				Expect(dashboard.Transactions).To(HaveLen(1))
			})
		})

		When("listing transactions fails", func() {
			BeforeEach(func() {
				fakeLedger.ListForProfileReturns(nil, fakeErr)
			})

			It("returns an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Transactions", func() {
		var (
			records []core.TransactionRecord
			err     error
			profile repository.Profile
		)

		BeforeEach(func() {
			profile = repository.Profile{ID: uuid.NewString(), UserID: "privy:user-1"}
			fakeTokens.ValidateReturns(jwt.MapClaims{"sub": profile.UserID}, nil)
			fakeProfiles.GetByUserIDReturns(profile, nil)
		})

		JustBeforeEach(func() {
			records, err = wallet.Transactions(ctx, "session.token")
		})

		When("the profile has no transactions", func() {
			BeforeEach(func() {
				fakeLedger.ListForProfileReturns([]repository.Transaction{}, nil)
			})

			It("returns an empty list, not an error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(BeEmpty())
				Expect(records).NotTo(BeNil())
			})
		})

		When("the profile has transactions", func() {
			BeforeEach(func() {
				fakeLedger.ListForProfileReturns([]repository.Transaction{
					{ID: "tx-2"}, {ID: "tx-1"},
				}, nil)
			})

			It("returns them in store order", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))
				Expect(records[0].ID).To(Equal("tx-2"))

				_, argProfileID := fakeLedger.ListForProfileArgsForCall(0)
				Expect(argProfileID).To(Equal(profile.ID))
			})
		})
	})

	Describe("UpdateBalance", func() {
		var (
			view    core.ProfileView
			err     error
			balance float64
			profile repository.Profile
		)

		BeforeEach(func() {
			balance = 42.5
			profile = repository.Profile{ID: uuid.NewString(), UserID: "privy:user-1", Balance: 10}
			fakeTokens.ValidateReturns(jwt.MapClaims{"sub": profile.UserID}, nil)
			fakeProfiles.GetByUserIDReturns(profile, nil)
		})

		JustBeforeEach(func() {
			view, err = wallet.UpdateBalance(ctx, "session.token", balance)
		})

		When("the balance is valid", func() {
			It("overwrites the stored balance", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(view.Balance).To(Equal(42.5))

				Expect(fakeProfiles.SetBalanceCallCount()).To(Equal(1))
				_, argProfileID, argBalance := fakeProfiles.SetBalanceArgsForCall(0)
				Expect(argProfileID).To(Equal(profile.ID))
				Expect(argBalance).To(Equal(42.5))
			})
		})

		When("the balance is negative", func() {
			BeforeEach(func() {
				balance = -1
			})

			It("rejects the update", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeProfiles.SetBalanceCallCount()).To(Equal(0))
			})
		})
	})

	Describe("CreateTransaction", func() {
		var (
			msg    core.CreateTransactionMessage
			record core.TransactionRecord
			err    error
			fromID string
			toID   string
		)

		BeforeEach(func() {
			fromID = uuid.NewString()
			toID = uuid.NewString()
			msg = core.CreateTransactionMessage{
				FromProfileID:   &fromID,
				ToProfileID:     &toID,
				Amount:          5,
				TransactionType: repository.TypeSend,
			}
			fakeProfiles.GetByIDReturns(repository.Profile{ID: fromID}, nil)
			fakeLedger.CreateReturns(repository.Transaction{
				ID:              "tx-1",
				FromProfileID:   &fromID,
				ToProfileID:     &toID,
				Amount:          5,
				TransactionType: repository.TypeSend,
				Status:          repository.StatusPending,
			}, nil)
		})

		JustBeforeEach(func() {
			record, err = wallet.CreateTransaction(ctx, msg)
		})

		When("the input is valid", func() {
			It("appends the transaction to the ledger", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal("tx-1"))
				Expect(record.Status).To(Equal(repository.StatusPending))

				Expect(fakeProfiles.GetByIDCallCount()).To(Equal(2))
				Expect(fakeLedger.CreateCallCount()).To(Equal(1))
				_, argTx := fakeLedger.CreateArgsForCall(0)
				Expect(*argTx.FromProfileID).To(Equal(fromID))
				Expect(*argTx.ToProfileID).To(Equal(toID))
			})
		})

		When("the amount is negative", func() {
			BeforeEach(func() {
				msg.Amount = -1
			})

			It("rejects the transaction", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeLedger.CreateCallCount()).To(Equal(0))
			})
		})

		When("the transaction type is unknown", func() {
			BeforeEach(func() {
				msg.TransactionType = "teleport"
			})

			It("rejects the transaction", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeLedger.CreateCallCount()).To(Equal(0))
			})
		})

		When("both transfer ends are missing", func() {
			BeforeEach(func() {
				msg.FromProfileID = nil
				msg.ToProfileID = nil
			})

			It("rejects the transaction", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeLedger.CreateCallCount()).To(Equal(0))
			})
		})

		When("the status is terminal at creation", func() {
			BeforeEach(func() {
				msg.Status = repository.StatusFailed
			})

			It("rejects the transaction", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeLedger.CreateCallCount()).To(Equal(0))
			})
		})

		When("a referenced profile does not exist", func() {
			BeforeEach(func() {
				fakeProfiles.GetByIDReturns(repository.Profile{}, repository.ErrProfileNotFound)
			})

			It("returns profile not found", func() {
				Expect(err).To(MatchError(repository.ErrProfileNotFound))
				Expect(fakeLedger.CreateCallCount()).To(Equal(0))
			})
		})
	})

	Describe("SettleTransaction", func() {
		var (
			msg core.SettleMessage
			err error
		)

		BeforeEach(func() {
			msg = core.SettleMessage{
				ID:     "tx-1",
				Status: repository.StatusCompleted,
			}
		})

		JustBeforeEach(func() {
			err = wallet.SettleTransaction(ctx, msg)
		})

		When("the settlement status is terminal", func() {
			It("transitions the transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeLedger.UpdateStatusCallCount()).To(Equal(1))
				_, argID, argStatus, argHash := fakeLedger.UpdateStatusArgsForCall(0)
				Expect(argID).To(Equal("tx-1"))
				Expect(argStatus).To(Equal(repository.StatusCompleted))
				Expect(argHash).To(BeNil())
			})
		})

		When("the settlement status is not terminal", func() {
			BeforeEach(func() {
				msg.Status = repository.StatusPending
			})

			It("rejects the settlement", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeLedger.UpdateStatusCallCount()).To(Equal(0))
			})
		})

		When("the transaction is already terminal", func() {
			BeforeEach(func() {
				fakeLedger.UpdateStatusReturns(repository.ErrTerminalStatus)
			})

			It("propagates the transition error", func() {
				Expect(err).To(MatchError(repository.ErrTerminalStatus))
			})
		})
	})

	Describe("ResolveReferralCode", func() {
		var (
			view core.ReferrerView
			err  error
		)

		JustBeforeEach(func() {
			view, err = wallet.ResolveReferralCode(ctx, "FRIEND42")
		})

		When("the code exists", func() {
			var name string

			BeforeEach(func() {
				name = "Satoshi N."
				fakeProfiles.GetByReferralCodeReturns(repository.Profile{
					ID:             uuid.NewString(),
					ReferralCode:   "FRIEND42",
					TwitterName:    &name,
					TotalReferrals: 7,
				}, nil)
			})

			It("returns the public referrer projection", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(view.ReferralCode).To(Equal("FRIEND42"))
				Expect(*view.DisplayName).To(Equal(name))
				Expect(view.TotalReferrals).To(Equal(7))

				_, argCode := fakeProfiles.GetByReferralCodeArgsForCall(0)
				Expect(argCode).To(Equal("FRIEND42"))
			})
		})

		When("the code does not exist", func() {
			BeforeEach(func() {
				fakeProfiles.GetByReferralCodeReturns(repository.Profile{}, repository.ErrProfileNotFound)
			})

			It("returns a referral code error", func() {
				Expect(err).To(MatchError(core.ErrReferralCodeNotFound))
			})
		})
	})
})
