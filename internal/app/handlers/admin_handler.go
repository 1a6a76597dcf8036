package handlers

import (
	"net/http"

	"github.com/emperor6007/EtherLend/internal/app/middleware"
	"github.com/emperor6007/EtherLend/internal/pkg/consts"
	"github.com/emperor6007/EtherLend/internal/pkg/models"
	"github.com/emperor6007/EtherLend/internal/pkg/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	loans *services.LoanService
	rates *services.RateService

	credential string
}

func NewAdminHandler(loans *services.LoanService, rates *services.RateService, credential string) *AdminHandler {
	return &AdminHandler{
		loans:      loans,
		rates:      rates,
		credential: credential,
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var body models.AdminLoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, consts.ErrorAdminUnauthorized)
		return
	}

	if h.credential == "" || !middleware.CredentialMatches(body.Password, h.credential) {
		writeError(c, consts.ErrorAdminUnauthorized)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AdminHandler) UpdateRate(c *gin.Context) {
	var body models.UpdateRateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, consts.ErrorInvalidRate)
		return
	}

	if err := h.rates.UpdateBaseRate(c.Request.Context(), body.Rate); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rate": h.rates.BaseRate()})
}

func (h *AdminHandler) UpdateLoanStatus(c *gin.Context) {
	var body models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, consts.ErrorInvalidStatusTransition)
		return
	}

	if err := h.loans.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": body.Status})
}

func (h *AdminHandler) ListLoans(c *gin.Context) {
	loans, err := h.loans.AdminList(c.Request.Context(), c.Query("search"), c.Query("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, loans)
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.loans.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
