package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emperor6007/EtherLend/internal/app/middleware"
	"github.com/emperor6007/EtherLend/internal/pkg/models"
	"github.com/emperor6007/EtherLend/internal/pkg/services"
	"github.com/emperor6007/EtherLend/internal/pkg/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	testWallet   = "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"
	testPassword = "correct horse battery staple"
)

type offlineSession struct{}

func (offlineSession) RemoteAvailable() bool { return false }
func (offlineSession) WithRemote(ctx context.Context, op func(context.Context, *mongo.Database) error) error {
	return nil
}
func (offlineSession) Demote() {}

type mapBackend struct {
	data map[string]string
}

func (m *mapBackend) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mapBackend) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *mapBackend) Has(key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	local := &mapBackend{data: map[string]string{}}

	rates := services.NewRateService(store.NewRateConfigRepository(offlineSession{}, local, 7.5), 7.5)
	loans := services.NewLoanService(store.NewLoanRepository(offlineSession{}, local), rates, nil, nil, nil, false)
	preferences := services.NewPreferencesService(local)

	loanHandler := NewLoanHandler(loans, rates)
	adminHandler := NewAdminHandler(loans, rates, testPassword)
	preferencesHandler := NewPreferencesHandler(preferences)

	r := gin.New()
	api := r.Group("/api/v1")
	api.GET("/rate", loanHandler.GetRate)
	api.GET("/rate/quote", loanHandler.QuoteRate)
	api.POST("/loans", loanHandler.SubmitLoan)
	api.GET("/loans", loanHandler.ListLoans)
	api.GET("/preferences/theme", preferencesHandler.GetTheme)
	api.PUT("/preferences/theme", preferencesHandler.PutTheme)
	api.POST("/admin/login", adminHandler.Login)

	admin := api.Group("/admin", middleware.AdminAuth(testPassword))
	admin.PUT("/rate", adminHandler.UpdateRate)
	admin.PUT("/loans/:id/status", adminHandler.UpdateLoanStatus)
	admin.GET("/loans", adminHandler.ListLoans)
	admin.GET("/stats", adminHandler.Stats)

	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetRate(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodGet, "/api/v1/rate", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 7.5, resp["rate"])
}

func TestQuoteEndpoint(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodGet, "/api/v1/rate/quote?amount=2.5&duration=90", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var quote models.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.InDelta(t, 6.9478, quote.Rate, 1e-4)
	assert.InDelta(t, 2.5428, quote.Total, 1e-4)
	assert.NotEmpty(t, quote.DueDate)
}

func TestQuoteEndpointRejectsBadParams(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodGet, "/api/v1/rate/quote?amount=abc&duration=90", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/rate/quote?amount=1&duration=5", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitAndListLoans(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPost, "/api/v1/loans", models.SubmitLoanRequest{
		Wallet:   testWallet,
		Amount:   2.5,
		Duration: 90,
		Purpose:  "working capital",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var record models.LoanRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, models.LoanStatusPending, record.Status)

	w = doJSON(r, http.MethodGet, "/api/v1/loans?wallet="+testWallet, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.LoanRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, record.LoanID, listed[0].LoanID)
}

func TestSubmitLoanValidationError(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPost, "/api/v1/loans", models.SubmitLoanRequest{
		Wallet:   "nope",
		Amount:   2.5,
		Duration: 90,
		Purpose:  "working capital",
	}, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ETHERLEND_WALLET_VALIDATION_INVALID_ADDRESS", resp["errorCode"])
}

func TestThemeEndpoints(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodGet, "/api/v1/preferences/theme", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"theme":"light"}`, w.Body.String())

	w = doJSON(r, http.MethodPut, "/api/v1/preferences/theme", models.ThemeRequest{Theme: "dark"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/preferences/theme", nil, nil)
	assert.JSONEq(t, `{"theme":"dark"}`, w.Body.String())

	w = doJSON(r, http.MethodPut, "/api/v1/preferences/theme", models.ThemeRequest{Theme: "sepia"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminLogin(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPost, "/api/v1/admin/login", models.AdminLoginRequest{Password: testPassword}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/api/v1/admin/login", models.AdminLoginRequest{Password: "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRequireCredential(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodGet, "/api/v1/admin/stats", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/admin/stats", nil, map[string]string{"X-Admin-Password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/admin/stats", nil, map[string]string{"X-Admin-Password": testPassword})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRateAndStatusFlow(t *testing.T) {
	r := newTestRouter()
	auth := map[string]string{"X-Admin-Password": testPassword}

	w := doJSON(r, http.MethodPut, "/api/v1/admin/rate", models.UpdateRateRequest{Rate: 8.0}, auth)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/rate", nil, nil)
	var rateResp map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rateResp))
	assert.Equal(t, 8.0, rateResp["rate"])

	w = doJSON(r, http.MethodPost, "/api/v1/loans", models.SubmitLoanRequest{
		Wallet:   testWallet,
		Amount:   1,
		Duration: 60,
		Purpose:  "inventory",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var record models.LoanRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))

	w = doJSON(r, http.MethodPut, "/api/v1/admin/loans/"+record.LoanID+"/status", models.UpdateStatusRequest{Status: models.LoanStatusApproved}, auth)
	require.Equal(t, http.StatusOK, w.Code)

	// A second transition conflicts.
	w = doJSON(r, http.MethodPut, "/api/v1/admin/loans/"+record.LoanID+"/status", models.UpdateStatusRequest{Status: models.LoanStatusRejected}, auth)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/admin/stats", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	var stats models.LoanStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Approved)
}
