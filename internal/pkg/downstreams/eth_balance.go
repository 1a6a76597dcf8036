// Package downstreams holds clients for external systems the tracker calls
// out to.
package downstreams

import (
	"context"
	"math/big"
	"time"

	"github.com/emperor6007/EtherLend/internal/pkg/consts"
	"github.com/emperor6007/EtherLend/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

var weiPerEther = new(big.Float).SetFloat64(1e18)

// BalanceClient resolves the current Ether balance of an address by trying a
// fixed list of public RPC endpoints in order. The first endpoint that
// answers wins.
type BalanceClient struct {
	endpoints []string
	timeout   time.Duration
}

func NewBalanceClient(endpoints []string, timeout time.Duration) *BalanceClient {
	return &BalanceClient{
		endpoints: endpoints,
		timeout:   timeout,
	}
}

// Balance returns the balance of address in Ether. Every endpoint is given
// one attempt; failures are logged and the next endpoint is tried.
func (b *BalanceClient) Balance(ctx context.Context, address string) (float64, error) {
	account := common.HexToAddress(address)

	for _, endpoint := range b.endpoints {
		balance, err := b.balanceFrom(ctx, endpoint, account)
		if err != nil {
			logger.Warn(ctx, "balance lookup via %s failed: %v", endpoint, err)
			continue
		}
		return balance, nil
	}

	return 0, consts.ErrorBalanceUnavailable
}

func (b *BalanceClient) balanceFrom(ctx context.Context, endpoint string, account common.Address) (float64, error) {
	callCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	client, err := ethclient.DialContext(callCtx, endpoint)
	if err != nil {
		return 0, err
	}
	defer client.Close()

	wei, err := client.BalanceAt(callCtx, account, nil)
	if err != nil {
		return 0, err
	}

	ether, _ := new(big.Float).Quo(new(big.Float).SetInt(wei), weiPerEther).Float64()
	return ether, nil
}
