package token_test

import (
	"time"

	"plusone/pkg/token"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Service", func() {
	var (
		service *token.Service
		info    token.Info
	)

	BeforeEach(func() {
		service = token.NewService([]byte("test-secret"))
		info = token.Info{
			UserName:   "satoshi",
			Subject:    "privy:user-1",
			Expiration: 24,
		}
	})

	AfterEach(func() {
		token.TimeNow = time.Now
	})

	Describe("Generate and Validate", func() {
		It("round-trips the claims", func() {
			generated := service.Generate(info)
			signed, err := service.Sign(generated)
			Expect(err).NotTo(HaveOccurred())
			Expect(signed).NotTo(BeEmpty())

			claims, err := service.Validate(signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims["sub"]).To(Equal("privy:user-1"))
			Expect(claims["username"]).To(Equal("satoshi"))
		})

		When("the token has expired", func() {
			It("rejects the token", func() {
				token.TimeNow = func() time.Time {
					return time.Now().Add(-48 * time.Hour)
				}
				signed, err := service.Sign(service.Generate(info))
				Expect(err).NotTo(HaveOccurred())
				token.TimeNow = time.Now

				_, err = service.Validate(signed)
				Expect(err).To(MatchError(token.ErrTokenNotValid))
			})
		})

		When("the token is signed with a different secret", func() {
			It("rejects the token", func() {
				other := token.NewService([]byte("other-secret"))
				signed, err := other.Sign(other.Generate(info))
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(signed)
				Expect(err).To(MatchError(token.ErrTokenNotValid))
			})
		})

		When("the token is garbage", func() {
			It("rejects the token", func() {
				_, err := service.Validate("not.a.token")
				Expect(err).To(MatchError(token.ErrTokenNotValid))
			})
		})
	})
})
