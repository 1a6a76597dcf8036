package utils

import (
	"errors"

	"github.com/emperor6007/EtherLend/internal/pkg/models"
)

// GetErrorCode extracts the machine code from a CustomError, falling back to
// a generic internal code for anything else.
func GetErrorCode(err error) string {
	var customError *models.CustomError
	if errors.As(err, &customError) {
		return customError.ErrorCode()
	}
	return "ETHERLEND_INTERNAL_ERROR"
}
