package handlers

import (
	"net/http"

	"github.com/emperor6007/EtherLend/internal/pkg/consts"
	"github.com/emperor6007/EtherLend/internal/pkg/models"
	"github.com/emperor6007/EtherLend/internal/pkg/services"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	wallets *services.WalletService
}

func NewWalletHandler(wallets *services.WalletService) *WalletHandler {
	return &WalletHandler{wallets: wallets}
}

func (h *WalletHandler) ConnectWallet(c *gin.Context) {
	var body models.ConnectWalletRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, consts.ErrorInvalidPhrase)
		return
	}

	resp, err := h.wallets.Connect(c.Request.Context(), body.SeedPhrase)
	if err != nil {
		writeError(c, err)
		return
	}

	if !resp.Qualified {
		c.JSON(http.StatusForbidden, gin.H{
			"errorCode": consts.ErrorWalletNotQualified.ErrorCode(),
			"address":   resp.Address,
			"balance":   resp.Balance,
			"qualified": false,
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
