package identity_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"plusone/internal/identity"
	"plusone/internal/identity/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

var _ = Describe("Provider", func() {
	var (
		fakeClient *fake.HTTPClient
		provider   *identity.Provider
		ctx        context.Context
	)

	BeforeEach(func() {
		fakeClient = new(fake.HTTPClient)
		provider = identity.NewProvider(fakeClient, "https://identity.example.com", "api-key-1")
		ctx = context.Background()
	})

	Describe("Init", func() {
		When("the readiness probe succeeds", func() {
			BeforeEach(func() {
				fakeClient.DoReturns(jsonResponse(http.StatusOK, `{}`), nil)
			})

			It("marks the provider ready", func() {
				Expect(provider.Init(ctx)).To(Succeed())

				argReq := fakeClient.DoArgsForCall(0)
				Expect(argReq.Method).To(Equal(http.MethodGet))
				Expect(argReq.URL.Path).To(Equal("/v1/ready"))
				Expect(argReq.Header.Get("Authorization")).To(Equal("Bearer api-key-1"))
			})
		})

		When("the readiness probe fails", func() {
			BeforeEach(func() {
				fakeClient.DoReturns(jsonResponse(http.StatusInternalServerError, ``), nil)
			})

			It("returns a readiness error and stays not ready", func() {
				Expect(provider.Init(ctx)).To(MatchError(identity.ErrNotReady))

				_, err := provider.Login(ctx, "session-token")
				Expect(err).To(MatchError(identity.ErrNotReady))
			})
		})
	})

	Describe("Login", func() {
		When("Init has not run", func() {
			It("rejects the login without calling the provider", func() {
				_, err := provider.Login(ctx, "session-token")
				Expect(err).To(MatchError(identity.ErrNotReady))
				Expect(fakeClient.DoCallCount()).To(Equal(0))
			})
		})

		When("the provider is ready", func() {
			BeforeEach(func() {
				fakeClient.DoReturnsOnCall(0, jsonResponse(http.StatusOK, `{}`), nil)
				Expect(provider.Init(ctx)).To(Succeed())
			})

			When("the session token is valid", func() {
				BeforeEach(func() {
					fakeClient.DoReturnsOnCall(1, jsonResponse(http.StatusOK, `{
						"user_id": "privy:user-1",
						"wallet": {"address": "0x1111111111111111111111111111111111111111"},
						"twitter": {"username": "satoshi", "name": "Satoshi N.", "profile_picture_url": "https://img.example.com/s.png"}
					}`), nil)
				})

				It("returns the normalized identity", func() {
					id, err := provider.Login(ctx, "session-token")
					Expect(err).NotTo(HaveOccurred())
					Expect(id.ExternalID).To(Equal("privy:user-1"))
					Expect(id.WalletAddress).To(Equal("0x1111111111111111111111111111111111111111"))
					Expect(*id.Social.Handle).To(Equal("satoshi"))
					Expect(*id.Social.DisplayName).To(Equal("Satoshi N."))
					Expect(*id.Social.AvatarURL).To(Equal("https://img.example.com/s.png"))

					argReq := fakeClient.DoArgsForCall(1)
					Expect(argReq.Method).To(Equal(http.MethodPost))
					Expect(argReq.URL.Path).To(Equal("/v1/sessions/verify"))
					Expect(argReq.Header.Get("X-Session-Token")).To(Equal("session-token"))
				})
			})

			When("the social fields are absent", func() {
				BeforeEach(func() {
					fakeClient.DoReturnsOnCall(1, jsonResponse(http.StatusOK, `{
						"user_id": "privy:user-1",
						"wallet": {"address": "0x1111111111111111111111111111111111111111"}
					}`), nil)
				})

				It("leaves the optional fields nil instead of empty strings", func() {
					id, err := provider.Login(ctx, "session-token")
					Expect(err).NotTo(HaveOccurred())
					Expect(id.Social.Handle).To(BeNil())
					Expect(id.Social.DisplayName).To(BeNil())
					Expect(id.Social.AvatarURL).To(BeNil())
				})
			})

			When("the provider rejects the token", func() {
				BeforeEach(func() {
					fakeClient.DoReturnsOnCall(1, jsonResponse(http.StatusUnauthorized, `{}`), nil)
				})

				It("returns an auth error", func() {
					_, err := provider.Login(ctx, "bad-token")
					Expect(err).To(MatchError(identity.ErrAuth))
				})
			})

			When("the response is missing the user id", func() {
				BeforeEach(func() {
					fakeClient.DoReturnsOnCall(1, jsonResponse(http.StatusOK, `{
						"wallet": {"address": "0x1111111111111111111111111111111111111111"}
					}`), nil)
				})

				It("returns an auth error", func() {
					_, err := provider.Login(ctx, "session-token")
					Expect(err).To(MatchError(identity.ErrAuth))
				})
			})

			When("the response is missing the wallet address", func() {
				BeforeEach(func() {
					fakeClient.DoReturnsOnCall(1, jsonResponse(http.StatusOK, `{"user_id": "privy:user-1"}`), nil)
				})

				It("returns an auth error", func() {
					_, err := provider.Login(ctx, "session-token")
					Expect(err).To(MatchError(identity.ErrAuth))
				})
			})

			When("the request itself fails", func() {
				BeforeEach(func() {
					fakeClient.DoReturnsOnCall(1, nil, errors.New("connection reset"))
				})

				It("returns the transport error", func() {
					_, err := provider.Login(ctx, "session-token")
					Expect(err).To(MatchError(ContainSubstring("verify session")))
				})
			})
		})
	})

	Describe("Logout", func() {
		BeforeEach(func() {
			fakeClient.DoReturnsOnCall(0, jsonResponse(http.StatusOK, `{}`), nil)
			Expect(provider.Init(ctx)).To(Succeed())
		})

		When("the provider revokes the sessions", func() {
			BeforeEach(func() {
				fakeClient.DoReturnsOnCall(1, jsonResponse(http.StatusNoContent, ``), nil)
			})

			It("succeeds", func() {
				Expect(provider.Logout(ctx, "privy:user-1")).To(Succeed())

				argReq := fakeClient.DoArgsForCall(1)
				Expect(argReq.Method).To(Equal(http.MethodDelete))
				Expect(argReq.URL.Path).To(Equal("/v1/sessions/privy:user-1"))
			})
		})

		When("the provider refuses", func() {
			BeforeEach(func() {
				fakeClient.DoReturnsOnCall(1, jsonResponse(http.StatusForbidden, ``), nil)
			})

			It("returns an auth error", func() {
				Expect(provider.Logout(ctx, "privy:user-1")).To(MatchError(identity.ErrAuth))
			})
		})

		When("Dispose has run", func() {
			BeforeEach(func() {
				provider.Dispose()
			})

			It("rejects the logout", func() {
				Expect(provider.Logout(ctx, "privy:user-1")).To(MatchError(identity.ErrNotReady))
			})
		})
	})
})
