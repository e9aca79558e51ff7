package payload_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"plusone/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decoder", func() {
	var (
		decoder payload.Decoder
		req     *http.Request
	)

	BeforeEach(func() {
		decoder = payload.Decoder{}
	})

	Describe("RegisterRequest", func() {
		When("the payload is well formed", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"provider_token":"tok","referral_code":"FRIEND42"}`)
				req = httptest.NewRequest("POST", "/wallet/register", body)
			})

			It("decodes and validates", func() {
				var p payload.RegisterRequest
				Expect(decoder.DecodeJSONPayload(req, &p)).To(Succeed())
				Expect(p.ProviderToken).To(Equal("tok"))
				Expect(p.ReferralCode).To(Equal("FRIEND42"))
			})
		})

		When("the provider token is missing", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"referral_code":"FRIEND42"}`)
				req = httptest.NewRequest("POST", "/wallet/register", body)
			})

			It("fails validation", func() {
				var p payload.RegisterRequest
				Expect(decoder.DecodeJSONPayload(req, &p)).To(MatchError(ContainSubstring("provider_token")))
			})
		})

		When("the referral code is too long", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"provider_token":"tok","referral_code":"THISCODEISWAYTOOLONG"}`)
				req = httptest.NewRequest("POST", "/wallet/register", body)
			})

			It("fails validation", func() {
				var p payload.RegisterRequest
				Expect(decoder.DecodeJSONPayload(req, &p)).To(HaveOccurred())
			})
		})

		When("the payload has unknown fields", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"provider_token":"tok","surprise":true}`)
				req = httptest.NewRequest("POST", "/wallet/register", body)
			})

			It("rejects the payload", func() {
				var p payload.RegisterRequest
				Expect(decoder.DecodeJSONPayload(req, &p)).To(MatchError(ContainSubstring("decoding json payload")))
			})
		})
	})

	Describe("CreateTransactionRequest", func() {
		When("the amount is negative", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"amount":-5,"transaction_type":"send"}`)
				req = httptest.NewRequest("POST", "/wallet/transactions", body)
			})

			It("fails validation", func() {
				var p payload.CreateTransactionRequest
				Expect(decoder.DecodeJSONPayload(req, &p)).To(HaveOccurred())
			})
		})

		When("the tx hash is malformed", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"amount":5,"transaction_type":"send","tx_hash":"0xZZ"}`)
				req = httptest.NewRequest("POST", "/wallet/transactions", body)
			})

			It("fails validation", func() {
				var p payload.CreateTransactionRequest
				Expect(decoder.DecodeJSONPayload(req, &p)).To(HaveOccurred())
			})
		})

		When("the tx hash is a full 32-byte hex string", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"amount":5,"transaction_type":"send","tx_hash":"0xaa11bb22cc33dd44ee55ff66aa77bb88cc99dd00ee11ff22aa33bb44cc55dd66"}`)
				req = httptest.NewRequest("POST", "/wallet/transactions", body)
			})

			It("passes validation", func() {
				var p payload.CreateTransactionRequest
				Expect(decoder.DecodeJSONPayload(req, &p)).To(Succeed())
			})
		})
	})

	Describe("SettleTransactionRequest", func() {
		When("the status is not terminal", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"status":"pending"}`)
				req = httptest.NewRequest("POST", "/wallet/transactions/tx-1/settle", body)
			})

			It("fails validation", func() {
				var p payload.SettleTransactionRequest
				Expect(decoder.DecodeJSONPayload(req, &p)).To(HaveOccurred())
			})
		})

		When("the status is terminal", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"status":"failed"}`)
				req = httptest.NewRequest("POST", "/wallet/transactions/tx-1/settle", body)
			})

			It("passes validation", func() {
				var p payload.SettleTransactionRequest
				Expect(decoder.DecodeJSONPayload(req, &p)).To(Succeed())
			})
		})
	})

	Describe("UpdateBalanceRequest", func() {
		When("the balance is negative", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"balance":-1}`)
				req = httptest.NewRequest("PUT", "/wallet/balance", body)
			})

			It("fails validation", func() {
				var p payload.UpdateBalanceRequest
				Expect(decoder.DecodeJSONPayload(req, &p)).To(HaveOccurred())
			})
		})
	})
})
