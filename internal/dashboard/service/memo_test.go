package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemo_Key(t *testing.T) {
	m := NewMemo()

	assert.Equal(t, m.Key("f", " a ", 1), m.Key("f", "a", 1))
	assert.NotEqual(t, m.Key("f", "a", 1), m.Key("g", "a", 1))
	assert.NotEqual(t, m.Key("f", "a", 1), m.Key("f", "a", 2))
	assert.NotEqual(t, m.Key("f", "ab", "c"), m.Key("f", "a", "bc"))
}

func TestMemoize(t *testing.T) {
	m := NewMemo()
	calls := 0
	fn := func() (int, error) {
		calls++
		return 42, nil
	}

	for i := 0; i < 3; i++ {
		v, err := memoize(m, "k", fn)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	}
	assert.Equal(t, 1, calls)

	m.Flush()
	_, _ = memoize(m, "k", fn)
	assert.Equal(t, 2, calls)
}

func TestMemoize_ErrorNotCached(t *testing.T) {
	m := NewMemo()
	calls := 0
	fn := func() (string, error) {
		calls++
		return "", errors.New("boom")
	}

	_, err := memoize(m, "k", fn)
	assert.Error(t, err)
	_, err = memoize(m, "k", fn)
	assert.Error(t, err)
	assert.Equal(t, 2, calls)
	assert.False(t, m.Has("k"))
}

func TestOptions(t *testing.T) {
	opts := Options()
	require.Len(t, opts.Languages, 4)
	assert.Equal(t, "English", opts.Languages[0].Name)
	assert.Equal(t, "1810.HK", opts.Stocks[0].Symbol)
	assert.Equal(t, []string{"1mo", "3mo", "6mo", "1y", "5y"}, opts.Periods)
	assert.Equal(t, "1y", opts.DefaultPeriod)
	assert.Equal(t, 50, opts.ArticleCount.Default)
	assert.Equal(t, 20, opts.BatchCount.Default)
	assert.Equal(t, []int{7, 14, 30}, opts.ForecastHorizons)
}
