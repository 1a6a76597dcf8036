package services

import (
	"context"
	"strings"
	"time"

	"github.com/emperor6007/EtherLend/internal/pkg/cache"
	"github.com/emperor6007/EtherLend/internal/pkg/common"
	"github.com/emperor6007/EtherLend/internal/pkg/consts"
	"github.com/emperor6007/EtherLend/internal/pkg/logger"
	"github.com/emperor6007/EtherLend/internal/pkg/models"
	"github.com/emperor6007/EtherLend/internal/pkg/notification"
	"github.com/emperor6007/EtherLend/internal/pkg/rate"
	"github.com/emperor6007/EtherLend/internal/pkg/store"
	"github.com/emperor6007/EtherLend/internal/pkg/utils"
	"github.com/emperor6007/EtherLend/internal/pkg/utils/worker"
	"github.com/emperor6007/EtherLend/internal/pkg/wallet"
)

const emailSendTimeout = 20 * time.Second

// LoanService owns the loan request lifecycle: quoting, submission,
// listing and status transitions.
type LoanService struct {
	loans *store.LoanRepository
	rates *RateService
	cache *cache.LoanCache
	email *notification.EmailService
	pool  *worker.WorkerPool

	emailEnabled bool
}

func NewLoanService(
	loans *store.LoanRepository,
	rates *RateService,
	loanCache *cache.LoanCache,
	email *notification.EmailService,
	pool *worker.WorkerPool,
	emailEnabled bool,
) *LoanService {
	return &LoanService{
		loans:        loans,
		rates:        rates,
		cache:        loanCache,
		email:        email,
		pool:         pool,
		emailEnabled: emailEnabled,
	}
}

// Quote prices a prospective loan without persisting anything.
func (s *LoanService) Quote(amount float64, duration int) (*models.QuoteResponse, error) {
	if amount < 0.1 || amount > 100 {
		return nil, consts.ErrorInvalidAmount
	}
	if duration < rate.MinDuration || duration > rate.MaxDuration {
		return nil, consts.ErrorInvalidDuration
	}

	q := rate.NewQuote(amount, duration, s.rates.BaseRate())
	return &models.QuoteResponse{
		Rate:     q.Rate,
		Interest: q.Interest,
		Total:    q.Total,
		DueDate:  common.FormatDate(time.Now().AddDate(0, 0, duration)),
	}, nil
}

// Submit prices and persists a new loan request. The quote taken here is the
// one committed; the rate cannot drift between pricing and persistence.
func (s *LoanService) Submit(ctx context.Context, req *models.SubmitLoanRequest) (*models.LoanRecord, error) {
	if !wallet.IsValidAddress(req.Wallet) {
		return nil, consts.ErrorInvalidAddress
	}
	if err := utils.ValidateLoanRequest(req); err != nil {
		return nil, err
	}

	loanID, err := utils.GenerateLoanID()
	if err != nil {
		return nil, err
	}

	q := rate.NewQuote(req.Amount, req.Duration, s.rates.BaseRate())
	record := &models.LoanRecord{
		LoanID:    loanID,
		Wallet:    req.Wallet,
		Amount:    req.Amount,
		Duration:  req.Duration,
		Rate:      q.Rate,
		Interest:  q.Interest,
		Total:     q.Total,
		Purpose:   strings.TrimSpace(req.Purpose),
		Email:     req.Email,
		Status:    models.LoanStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.loans.Insert(ctx, record); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)

	if s.emailEnabled && record.Email != "" {
		confirmation := *record
		s.pool.Submit(func() {
			sendCtx, cancel := context.WithTimeout(context.Background(), emailSendTimeout)
			defer cancel()
			if err := s.email.SendLoanConfirmation(sendCtx, &confirmation); err != nil {
				logger.Warn(sendCtx, "loan confirmation email for %s not delivered: %v", confirmation.LoanID, err)
			}
		})
	}

	return record, nil
}

// List returns loans newest first, optionally narrowed to one wallet. The
// wallet filter is an exact match; addresses are stored and compared in
// their checksummed form.
func (s *LoanService) List(ctx context.Context, walletFilter string) ([]models.LoanRecord, error) {
	loans, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}
	if walletFilter == "" {
		return loans, nil
	}

	filtered := make([]models.LoanRecord, 0, len(loans))
	for _, loan := range loans {
		if loan.Wallet == walletFilter {
			filtered = append(filtered, loan)
		}
	}
	return filtered, nil
}

// AdminList narrows the full list by wallet or loan id substring and by
// status.
func (s *LoanService) AdminList(ctx context.Context, search, status string) ([]models.LoanRecord, error) {
	loans, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	filtered := make([]models.LoanRecord, 0, len(loans))
	for _, loan := range loans {
		if status != "" && loan.Status != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(loan.Wallet), search) &&
			!strings.Contains(strings.ToLower(loan.LoanID), search) {
			continue
		}
		filtered = append(filtered, loan)
	}
	return filtered, nil
}

// UpdateStatus moves a pending loan to a terminal status.
func (s *LoanService) UpdateStatus(ctx context.Context, loanID, status string) error {
	if !models.IsTerminalStatus(status) {
		return consts.ErrorInvalidStatusTransition
	}

	if err := s.loans.UpdateStatus(ctx, loanID, status); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}

// Stats aggregates per-status counts and the requested volume.
func (s *LoanService) Stats(ctx context.Context) (*models.LoanStats, error) {
	loans, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.LoanStats{Total: len(loans)}
	for _, loan := range loans {
		switch loan.Status {
		case models.LoanStatusPending:
			stats.Pending++
		case models.LoanStatusApproved:
			stats.Approved++
		case models.LoanStatusRejected:
			stats.Rejected++
		}
		stats.TotalVolume = rate.Round4(stats.TotalVolume + loan.Amount)
	}
	return stats, nil
}

func (s *LoanService) listAll(ctx context.Context) ([]models.LoanRecord, error) {
	if cached, ok := s.cache.GetLoans(ctx); ok {
		return cached, nil
	}

	loans, err := s.loans.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetLoans(ctx, loans)
	return loans, nil
}
