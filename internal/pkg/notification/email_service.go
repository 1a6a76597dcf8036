// Package notification sends transactional emails through an EmailJS style
// REST endpoint. Delivery is best effort; the caller never fails because an
// email could not be sent.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/emperor6007/EtherLend/internal/pkg/common"
	"github.com/emperor6007/EtherLend/internal/pkg/logger"
	"github.com/emperor6007/EtherLend/internal/pkg/models"
)

type emailPayload struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// EmailService posts template emails to the configured provider.
type EmailService struct {
	apiURL     string
	serviceID  string
	templateID string
	publicKey  string
	client     *http.Client
}

func NewEmailService(apiURL, serviceID, templateID, publicKey string) *EmailService {
	return &EmailService{
		apiURL:     apiURL,
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

// SendLoanConfirmation emails the borrower a summary of a submitted request.
func (s *EmailService) SendLoanConfirmation(ctx context.Context, loan *models.LoanRecord) error {
	dueDate := loan.CreatedAt.AddDate(0, 0, loan.Duration)
	params := map[string]string{
		"to_email":       loan.Email,
		"loan_id":        loan.LoanID,
		"loan_amount":    fmt.Sprintf("%.4f ETH", loan.Amount),
		"loan_duration":  fmt.Sprintf("%d days", loan.Duration),
		"loan_purpose":   loan.Purpose,
		"loan_rate":      fmt.Sprintf("%.2f%%", loan.Rate),
		"loan_total":     fmt.Sprintf("%.4f ETH", loan.Total),
		"loan_duedate":   common.FormatDate(dueDate),
		"wallet_address": common.TruncateAddress(loan.Wallet),
	}
	return s.send(ctx, params)
}

// SendFirstConnectionNotice tells the operator inbox that a wallet connected
// for the first time. The message goes out before any balance lookup, so
// only the derived address travels in it.
func (s *EmailService) SendFirstConnectionNotice(ctx context.Context, opsEmail, address string) error {
	params := map[string]string{
		"to_email":       opsEmail,
		"loan_id":        "WALLET-CONNECT",
		"loan_amount":    "-",
		"loan_duration":  "-",
		"loan_purpose":   "first wallet connection",
		"loan_rate":      "-",
		"loan_total":     "-",
		"loan_duedate":   common.FormatDate(time.Now()),
		"wallet_address": address,
	}
	return s.send(ctx, params)
}

func (s *EmailService) send(ctx context.Context, params map[string]string) error {
	payload := emailPayload{
		ServiceID:      s.serviceID,
		TemplateID:     s.templateID,
		UserID:         s.publicKey,
		TemplateParams: params,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Error(ctx, "email send failed: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		logger.Error(ctx, "email provider returned %d: %s", resp.StatusCode, string(respBody))
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}

	logger.Info(ctx, "email dispatched for template %s", s.templateID)
	return nil
}
