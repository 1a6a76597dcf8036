package handlers

import (
	"net/http"
	"strconv"

	"github.com/emperor6007/EtherLend/internal/pkg/consts"
	"github.com/emperor6007/EtherLend/internal/pkg/models"
	"github.com/emperor6007/EtherLend/internal/pkg/services"

	"github.com/gin-gonic/gin"
)

type LoanHandler struct {
	loans *services.LoanService
	rates *services.RateService
}

func NewLoanHandler(loans *services.LoanService, rates *services.RateService) *LoanHandler {
	return &LoanHandler{loans: loans, rates: rates}
}

func (h *LoanHandler) SubmitLoan(c *gin.Context) {
	var body models.SubmitLoanRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.loans.Submit(c.Request.Context(), &body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *LoanHandler) ListLoans(c *gin.Context) {
	loans, err := h.loans.List(c.Request.Context(), c.Query("wallet"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, loans)
}

func (h *LoanHandler) GetRate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rate": h.rates.BaseRate()})
}

func (h *LoanHandler) QuoteRate(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		writeError(c, consts.ErrorInvalidAmount)
		return
	}
	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil {
		writeError(c, consts.ErrorInvalidDuration)
		return
	}

	quote, err := h.loans.Quote(amount, duration)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}
