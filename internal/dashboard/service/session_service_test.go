package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang-stock-sentiment/internal/dashboard/repository"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSessionRepo struct{}

func (failingSessionRepo) Get(context.Context, string) (*entity.Session, error) {
	return nil, errors.New("redis down")
}
func (failingSessionRepo) Save(context.Context, *entity.Session) error { return errors.New("redis down") }
func (failingSessionRepo) Delete(context.Context, string) error        { return nil }

func TestSessionService_LoadNew(t *testing.T) {
	svc := NewSessionService(testConfig(), repository.NewMemorySessionRepository(time.Hour), logger.NewNop())

	session, err := svc.Load(context.Background(), "")
	require.NoError(t, err)
	_, err = uuid.Parse(session.ID)
	assert.NoError(t, err)
	assert.Equal(t, entity.Preferences{PreferredLanguage: "English", PreferredStock: "1810.HK"}, session.Preferences)
}

func TestSessionService_RoundTrip(t *testing.T) {
	svc := NewSessionService(testConfig(), repository.NewMemorySessionRepository(time.Hour), logger.NewNop())
	ctx := context.Background()

	session, err := svc.Load(ctx, "known")
	require.NoError(t, err)
	assert.Equal(t, "known", session.ID, "unknown ids are kept")

	session.StockSymbol = "XIACF"
	require.NoError(t, svc.Save(ctx, session))

	loaded, err := svc.Load(ctx, "known")
	require.NoError(t, err)
	assert.Equal(t, "XIACF", loaded.StockSymbol)
}

func TestSessionService_StoreError(t *testing.T) {
	svc := NewSessionService(testConfig(), failingSessionRepo{}, logger.NewNop())

	_, err := svc.Load(context.Background(), "abc")
	assert.Error(t, err)
}
