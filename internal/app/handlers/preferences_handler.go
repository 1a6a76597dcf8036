package handlers

import (
	"net/http"

	"github.com/emperor6007/EtherLend/internal/pkg/consts"
	"github.com/emperor6007/EtherLend/internal/pkg/models"
	"github.com/emperor6007/EtherLend/internal/pkg/services"

	"github.com/gin-gonic/gin"
)

type PreferencesHandler struct {
	preferences *services.PreferencesService
}

func NewPreferencesHandler(preferences *services.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{preferences: preferences}
}

func (h *PreferencesHandler) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": h.preferences.Theme(c.Request.Context())})
}

func (h *PreferencesHandler) PutTheme(c *gin.Context) {
	var body models.ThemeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, consts.ErrorInvalidTheme)
		return
	}

	if err := h.preferences.SetTheme(c.Request.Context(), body.Theme); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": body.Theme})
}
