package services

import (
	"context"

	"github.com/emperor6007/EtherLend/internal/pkg/consts"
	"github.com/emperor6007/EtherLend/internal/pkg/logger"
	"github.com/emperor6007/EtherLend/internal/pkg/store"
	"github.com/emperor6007/EtherLend/internal/pkg/utils"
)

const defaultTheme = "light"

// PreferencesService stores display preferences in the local backend only.
type PreferencesService struct {
	local store.LocalBackend
}

func NewPreferencesService(local store.LocalBackend) *PreferencesService {
	return &PreferencesService{local: local}
}

func (s *PreferencesService) Theme(ctx context.Context) string {
	value, found, err := s.local.Get(consts.StorageKeyTheme)
	if err != nil {
		logger.Warn(ctx, "theme read failed, using default: %v", err)
		return defaultTheme
	}
	if !found || utils.ValidateTheme(value) != nil {
		return defaultTheme
	}
	return value
}

func (s *PreferencesService) SetTheme(ctx context.Context, theme string) error {
	if err := utils.ValidateTheme(theme); err != nil {
		return err
	}
	return s.local.Set(consts.StorageKeyTheme, theme)
}
