package service

import (
	"context"
	"errors"
	"testing"

	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsService_Fetch(t *testing.T) {
	repo := &fakeNewsRepo{headlines: headlines(3)}
	svc := NewNewsService(repo, logger.NewNop(), NewMemo())

	resp, err := svc.Fetch(context.Background(), dto.FetchNewsRequest{Keyword: " Xiaomi ", Language: "Simplified Chinese", MaxArticles: 30})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Count)
	assert.Equal(t, dto.GetNewsParam{Keyword: "Xiaomi", LanguageCode: "zh-CN", RegionCode: "CN:zh-Hans", Limit: 30}, repo.lastParam)

	_, err = svc.Fetch(context.Background(), dto.FetchNewsRequest{Keyword: "xiaomi", Language: "Simplified Chinese", MaxArticles: 30})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
}

func TestNewsService_DefaultArticleCount(t *testing.T) {
	repo := &fakeNewsRepo{}
	_, err := NewNewsService(repo, logger.NewNop(), NewMemo()).Fetch(context.Background(), dto.FetchNewsRequest{Keyword: "Xiaomi", Language: "English"})
	require.NoError(t, err)
	assert.Equal(t, 50, repo.lastParam.Limit)
}

func TestNewsService_FailureIsWarning(t *testing.T) {
	repo := &fakeNewsRepo{err: common.Tag(common.ErrNetworkFailure, errors.New("dns"))}
	resp, err := NewNewsService(repo, logger.NewNop(), NewMemo()).Fetch(context.Background(), dto.FetchNewsRequest{Keyword: "Xiaomi", Language: "English"})
	require.NoError(t, err)
	assert.Empty(t, resp.Headlines)
	assert.NotNil(t, resp.Headlines)
	assert.Len(t, resp.Warnings, 1)
}

func TestNewsService_InvalidInput(t *testing.T) {
	svc := NewNewsService(&fakeNewsRepo{}, logger.NewNop(), NewMemo())

	tests := []dto.FetchNewsRequest{
		{Keyword: "  ", Language: "English"},
		{Keyword: "Xiaomi", Language: "Klingon"},
		{Keyword: "Xiaomi", Language: "English", MaxArticles: 5},
		{Keyword: "Xiaomi", Language: "English", MaxArticles: 210},
		{Keyword: "Xiaomi", Language: "English", MaxArticles: 55},
	}
	for _, req := range tests {
		_, err := svc.Fetch(context.Background(), req)
		assert.ErrorIs(t, err, common.ErrInvalidInput, "%+v", req)
	}
}
