package service

import (
	"context"
	"fmt"

	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/dashboard/repository"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"
)

// SettingsService manages preferences, key verification and cache clearing.
type SettingsService interface {
	UpdatePreferences(session *entity.Session, req dto.SettingsRequest) error
	VerifyAPIKey(ctx context.Context, session *entity.Session) dto.VerifyKeyResponse
	ClearCache(ctx context.Context, session *entity.Session)
}

type settingsService struct {
	keyRepo repository.APIKeyRepository
	memo    *Memo
	log     *logger.Logger
}

// NewSettingsService creates the settings service. keyRepo may be nil when no
// remote provider supports key verification.
func NewSettingsService(keyRepo repository.APIKeyRepository, memo *Memo, log *logger.Logger) SettingsService {
	return &settingsService{keyRepo: keyRepo, memo: memo, log: log}
}

// UpdatePreferences validates and stores the preferences on the session.
func (s *settingsService) UpdatePreferences(session *entity.Session, req dto.SettingsRequest) error {
	if _, ok := LookupLanguage(req.PreferredLanguage); !ok {
		return fmt.Errorf("%w: unsupported language %q", common.ErrInvalidInput, req.PreferredLanguage)
	}
	if !IsSupportedStock(req.PreferredStock) {
		return fmt.Errorf("%w: unsupported stock symbol %q", common.ErrInvalidInput, req.PreferredStock)
	}
	session.Preferences = entity.Preferences{
		PreferredLanguage: req.PreferredLanguage,
		PreferredStock:    req.PreferredStock,
	}
	return nil
}

// VerifyAPIKey checks the remote key and records the outcome on the session.
func (s *settingsService) VerifyAPIKey(ctx context.Context, session *entity.Session) dto.VerifyKeyResponse {
	if s.keyRepo == nil {
		session.APIValid = false
		return dto.VerifyKeyResponse{Valid: false, Message: "API key verification is not supported by the configured provider"}
	}

	valid, err := s.keyRepo.ValidateAPIKey(ctx)
	session.APIValid = valid
	switch {
	case err != nil:
		s.log.WarnContext(ctx, "API key verification failed", logger.ErrorField(err))
		return dto.VerifyKeyResponse{Valid: false, Message: fmt.Sprintf("could not verify API key: %v", err)}
	case valid:
		return dto.VerifyKeyResponse{Valid: true, Message: "API key is valid"}
	default:
		return dto.VerifyKeyResponse{Valid: false, Message: "API key is invalid"}
	}
}

// ClearCache drops every memoized result and resets the session data.
// Preferences and the key verification outcome are kept.
func (s *settingsService) ClearCache(ctx context.Context, session *entity.Session) {
	entries := s.memo.Len()
	s.memo.Flush()
	session.Reset()
	s.log.InfoContext(ctx, "Cache cleared",
		logger.IntField("entries", entries),
		logger.StringField("session_id", session.ID),
	)
}
