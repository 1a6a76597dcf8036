package handlers

import (
	"errors"
	"net/http"

	"github.com/emperor6007/EtherLend/internal/pkg/consts"
	"github.com/emperor6007/EtherLend/internal/pkg/models"
	"github.com/emperor6007/EtherLend/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto HTTP statuses and a stable error code
// payload.
func writeError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{
		"errorCode": utils.GetErrorCode(err),
		"error":     err.Error(),
	})
}

func statusFor(err error) int {
	var ce *models.CustomError
	if !errors.As(err, &ce) {
		return http.StatusInternalServerError
	}

	switch ce {
	case consts.ErrorInvalidPhrase,
		consts.ErrorInvalidAddress,
		consts.ErrorInvalidAmount,
		consts.ErrorInvalidDuration,
		consts.ErrorInvalidPurpose,
		consts.ErrorInvalidEmail,
		consts.ErrorInvalidRate,
		consts.ErrorInvalidTheme:
		return http.StatusBadRequest
	case consts.ErrorAdminUnauthorized:
		return http.StatusUnauthorized
	case consts.ErrorWalletNotQualified:
		return http.StatusForbidden
	case consts.ErrorLoanNotFound:
		return http.StatusNotFound
	case consts.ErrorInvalidStatusTransition:
		return http.StatusConflict
	case consts.ErrorBalanceUnavailable:
		return http.StatusBadGateway
	case consts.ErrorRemoteUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
