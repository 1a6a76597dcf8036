package services

import (
	"context"
	"time"

	"github.com/emperor6007/EtherLend/internal/pkg/logger"
	"github.com/emperor6007/EtherLend/internal/pkg/models"
	"github.com/emperor6007/EtherLend/internal/pkg/notification"
	"github.com/emperor6007/EtherLend/internal/pkg/store"
	"github.com/emperor6007/EtherLend/internal/pkg/utils/worker"
	"github.com/emperor6007/EtherLend/internal/pkg/wallet"
)

const noticeSendTimeout = 20 * time.Second

// BalanceSource answers balance lookups. Implemented by
// downstreams.BalanceClient.
type BalanceSource interface {
	Balance(ctx context.Context, address string) (float64, error)
}

// WalletService turns a recovery phrase into a connected wallet: derive the
// address, confirm a positive balance and record first-time connections.
type WalletService struct {
	balance BalanceSource
	seen    *store.SeenWalletRepository
	email   *notification.EmailService
	pool    *worker.WorkerPool

	emailEnabled bool
	opsEmail     string
}

func NewWalletService(
	balance BalanceSource,
	seen *store.SeenWalletRepository,
	email *notification.EmailService,
	pool *worker.WorkerPool,
	emailEnabled bool,
	opsEmail string,
) *WalletService {
	return &WalletService{
		balance:      balance,
		seen:         seen,
		email:        email,
		pool:         pool,
		emailEnabled: emailEnabled,
		opsEmail:     opsEmail,
	}
}

// Connect derives the address for a recovery phrase, records first-time
// connections and checks the balance. The first-seen mark and the one-time
// notice happen as soon as the address is known, so they are not lost when
// every balance endpoint is down. Only the derived address leaves this
// function; the phrase itself is not retained, logged or forwarded anywhere.
func (s *WalletService) Connect(ctx context.Context, phrase string) (*models.ConnectWalletResponse, error) {
	address, err := wallet.DeriveAddress(phrase)
	if err != nil {
		return nil, err
	}

	wasNew, err := s.seen.CheckAndMark(ctx, address)
	if err != nil {
		logger.Warn(ctx, "seen-wallet check for %s failed: %v", address, err)
	}

	if wasNew && s.emailEnabled && s.opsEmail != "" {
		s.pool.Submit(func() {
			sendCtx, cancel := context.WithTimeout(context.Background(), noticeSendTimeout)
			defer cancel()
			if err := s.email.SendFirstConnectionNotice(sendCtx, s.opsEmail, address); err != nil {
				logger.Warn(sendCtx, "first connection notice for %s not delivered: %v", address, err)
			}
		})
	}

	balance, err := s.balance.Balance(ctx, address)
	if err != nil {
		return nil, err
	}

	resp := &models.ConnectWalletResponse{
		Address:   address,
		Balance:   balance,
		Qualified: balance > 0,
		FirstSeen: wasNew,
	}
	if !resp.Qualified {
		logger.Info(ctx, "wallet %s has no confirmable balance, loan access denied", address)
	}
	return resp, nil
}
