package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"

	"github.com/emperor6007/EtherLend/internal/pkg/consts"
	"github.com/emperor6007/EtherLend/internal/pkg/models"

	"github.com/go-playground/validator/v10"
)

const loanIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const loanIDLength = 12

var validate = validator.New()

// ValidateLoanRequest runs the struct tag rules on a submission and maps the
// first violation onto its business error. A purpose of only whitespace is
// rejected too, which the required tag alone lets through.
func ValidateLoanRequest(req *models.SubmitLoanRequest) error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Field() {
			case "Wallet":
				return consts.ErrorInvalidAddress
			case "Amount":
				return consts.ErrorInvalidAmount
			case "Duration":
				return consts.ErrorInvalidDuration
			case "Purpose":
				return consts.ErrorInvalidPurpose
			case "Email":
				return consts.ErrorInvalidEmail
			}
		}
		return err
	}
	if strings.TrimSpace(req.Purpose) == "" {
		return consts.ErrorInvalidPurpose
	}
	return nil
}

// ValidateTheme accepts only the two supported display themes.
func ValidateTheme(theme string) error {
	if theme != "light" && theme != "dark" {
		return consts.ErrorInvalidTheme
	}
	return nil
}

// GenerateLoanID produces a 12 character uppercase alphanumeric identifier.
func GenerateLoanID() (string, error) {
	var sb strings.Builder
	sb.Grow(loanIDLength)
	max := big.NewInt(int64(len(loanIDAlphabet)))
	for i := 0; i < loanIDLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(loanIDAlphabet[n.Int64()])
	}
	return sb.String(), nil
}
