package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang-stock-sentiment/internal/dashboard/config"
	"golang-stock-sentiment/internal/dashboard/repository"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/logger"

	"github.com/google/uuid"
)

// SessionService loads and stores per-user dashboard state.
type SessionService interface {
	// Load returns the session for id, creating a fresh one when id is empty,
	// unknown or expired.
	Load(ctx context.Context, id string) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session) error
}

type sessionService struct {
	cfg  *config.Config
	repo repository.SessionRepository
	log  *logger.Logger
}

func NewSessionService(cfg *config.Config, repo repository.SessionRepository, log *logger.Logger) SessionService {
	return &sessionService{cfg: cfg, repo: repo, log: log}
}

func (s *sessionService) Load(ctx context.Context, id string) (*entity.Session, error) {
	id = strings.TrimSpace(id)
	if id != "" {
		session, err := s.repo.Get(ctx, id)
		if err == nil {
			return session, nil
		}
		if !errors.Is(err, repository.ErrSessionNotFound) {
			return nil, fmt.Errorf("failed to load session: %w", err)
		}
		s.log.DebugContext(ctx, "Session not found, starting a new one", logger.StringField("session_id", id))
	} else {
		id = uuid.NewString()
	}

	return entity.NewSession(id, entity.Preferences{
		PreferredLanguage: s.cfg.Defaults.Language,
		PreferredStock:    s.cfg.Defaults.Stock,
	}), nil
}

func (s *sessionService) Save(ctx context.Context, session *entity.Session) error {
	return s.repo.Save(ctx, session)
}
