package chain_test

import (
	"context"
	"errors"
	"math/big"

	"plusone/internal/chain"
	"plusone/internal/chain/fake"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Reader", func() {
	var (
		fakeClient *fake.RPCClient
		reader     *chain.Reader
		ctx        context.Context

		address string
		balance float64
		err     error
	)

	BeforeEach(func() {
		fakeClient = new(fake.RPCClient)
		reader = chain.NewReader(fakeClient)
		ctx = context.Background()
		address = "0x1111111111111111111111111111111111111111"
	})

	JustBeforeEach(func() {
		balance, err = reader.NativeBalance(ctx, address)
	})

	When("the node returns a balance", func() {
		BeforeEach(func() {
			// 1.5 native tokens in wei
			wei, ok := new(big.Int).SetString("1500000000000000000", 10)
			Expect(ok).To(BeTrue())
			fakeClient.BalanceAtReturns(wei, nil)
		})

		It("converts wei to whole tokens at the latest block", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(Equal(1.5))

			Expect(fakeClient.BalanceAtCallCount()).To(Equal(1))
			_, argAddress, argBlock := fakeClient.BalanceAtArgsForCall(0)
			Expect(argAddress).To(Equal(common.HexToAddress(address)))
			Expect(argBlock).To(BeNil())
		})
	})

	When("the address is not a hex address", func() {
		BeforeEach(func() {
			address = "not-an-address"
		})

		It("rejects the address without calling the node", func() {
			Expect(err).To(MatchError(chain.ErrInvalidAddress))
			Expect(fakeClient.BalanceAtCallCount()).To(Equal(0))
		})
	})

	When("the node is unreachable", func() {
		BeforeEach(func() {
			fakeClient.BalanceAtReturns(nil, errors.New("connection refused"))
		})

		It("wraps the failure as a network error", func() {
			Expect(err).To(MatchError(chain.ErrNetwork))
			Expect(balance).To(BeZero())
		})
	})
})
