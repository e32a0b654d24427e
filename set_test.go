package keyset

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/keyset/bplus"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFrom(t *testing.T) {
	saved := gtrace.CoreTracer
	gtrace.CoreTracer = gotestingadapter.New(t)
	defer func() { gtrace.CoreTracer = saved }()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cfg, err := ConfigFrom(testconfig.Conf{"keyset.order": "5"})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Order)
	//
	cfg, err = ConfigFrom(testconfig.Conf{})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	//
	_, err = ConfigFrom(testconfig.Conf{"keyset.order": 2})
	assert.True(t, errors.Is(err, ErrIllegalArguments))
	assert.True(t, errors.Is(err, bplus.ErrInvalidOrder))
	//
	_, err = ConfigFrom(nil)
	assert.Equal(t, ErrNoConfig, err)
}

func TestNewSetRejectsInvalidOrder(t *testing.T) {
	_, err := NewSet[int](Config{Order: 1})
	assert.ErrorIs(t, err, ErrIllegalArguments)
}

func TestSetAddRemove(t *testing.T) {
	set, err := NewSet[int](DefaultConfig())
	require.NoError(t, err)
	for _, key := range []int{50, 10, 40, 20, 30, 60, 70} {
		added, err := set.Add(key)
		require.NoError(t, err)
		assert.True(t, added, "key %d", key)
	}
	added, err := set.Add(40)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 7, set.Len())
	assert.Equal(t, []int{10, 20, 30, 40, 50, 60, 70}, slices.Collect(set.All()))
	assert.Equal(t, 2, set.Height())
	require.NoError(t, set.Check())
	//
	removed, err := set.Remove(30)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = set.Remove(30)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.False(t, set.Contains(30))
	assert.True(t, set.Contains(40))
	lo, _ := set.Min()
	hi, _ := set.Max()
	assert.Equal(t, 10, lo)
	assert.Equal(t, 70, hi)
	require.NoError(t, set.Check())
}

func TestSetEmptiesAndRefills(t *testing.T) {
	set, err := NewSet[string](Config{Order: 3})
	require.NoError(t, err)
	words := []string{"delta", "alpha", "echo", "charlie", "bravo"}
	for _, w := range words {
		_, err := set.Add(w)
		require.NoError(t, err)
	}
	for _, w := range words {
		_, err := set.Remove(w)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, set.Len())
	assert.Equal(t, 0, set.Height())
	_, err = set.Add("foxtrot")
	require.NoError(t, err)
	assert.Equal(t, []string{"foxtrot"}, slices.Collect(set.All()))
	assert.Equal(t, 3, set.Order())
}

func TestSetLeavesAndDot(t *testing.T) {
	set, err := NewSet[int](DefaultConfig())
	require.NoError(t, err)
	for _, key := range []int{10, 20, 30, 40, 50} {
		_, err := set.Add(key)
		require.NoError(t, err)
	}
	assert.Equal(t, [][]int{{10, 20}, {30, 40, 50}}, slices.Collect(set.Leaves()))
	var b strings.Builder
	require.NoError(t, set.WriteDot(&b))
	assert.Contains(t, b.String(), "digraph")
}
