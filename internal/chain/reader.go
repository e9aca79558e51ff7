package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
)

var ErrNetwork error = errors.New("chain rpc unavailable")
var ErrInvalidAddress error = errors.New("invalid wallet address")

// Reader is a pure read adapter over a blockchain RPC node.
type Reader struct {
	client RPCClient
}

func NewReader(client RPCClient) *Reader {
	return &Reader{
		client: client,
	}
}

// NativeBalance returns the latest native-token balance of the address in
// whole tokens. RPC failures wrap ErrNetwork so callers can degrade instead
// of failing the render.
func (r *Reader) NativeBalance(ctx context.Context, address string) (float64, error) {
	if !common.IsHexAddress(address) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}

	wei, err := r.client.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return 0, fmt.Errorf("balance at: %w: %w", err, ErrNetwork)
	}

	balance, _ := new(big.Float).Quo(
		new(big.Float).SetInt(wei),
		big.NewFloat(params.Ether),
	).Float64()

	return balance, nil
}
