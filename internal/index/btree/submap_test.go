package btree

import (
	"testing"

	"github.com/dreamware/reldb/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOddKeys(t *testing.T) *Map[int, int] {
	t.Helper()
	m := New[int, int]()
	for k := 1; k <= 29; k += 2 {
		m.Put(k, k*k)
	}
	return m
}

func TestSubMap_Basic(t *testing.T) {
	// Scenario: sub_map(6, 20) over odd keys 1..29 -> first=7, last=19,
	// size=7 (7,9,11,13,15,17,19).
	m := buildOddKeys(t)
	sub, err := m.SubMap(6, 20)
	require.NoError(t, err)

	assert.Equal(t, 7, sub.Size())

	first, err := sub.FirstKey()
	require.NoError(t, err)
	assert.Equal(t, 7, first)

	last, err := sub.LastKey()
	require.NoError(t, err)
	assert.Equal(t, 19, last)
}

func TestSubMap_HeadAndTail(t *testing.T) {
	m := buildOddKeys(t)

	head := m.HeadMap(10)
	assert.Equal(t, 5, head.Size()) // 1,3,5,7,9
	last, err := head.LastKey()
	require.NoError(t, err)
	assert.Equal(t, 9, last)

	tail := m.TailMap(10)
	assert.Equal(t, 10, tail.Size()) // 11..29
	first, err := tail.FirstKey()
	require.NoError(t, err)
	assert.Equal(t, 11, first)
}

func TestSubMap_InconsistentRange(t *testing.T) {
	m := buildOddKeys(t)
	_, err := m.SubMap(20, 6)
	assert.ErrorIs(t, err, domain.ErrInconsistentRange)
}

func TestSubMap_ContainsAndGet(t *testing.T) {
	m := buildOddKeys(t)
	sub, err := m.SubMap(6, 20)
	require.NoError(t, err)

	assert.True(t, sub.ContainsKey(7))
	assert.False(t, sub.ContainsKey(5))  // present in tree, outside view
	assert.False(t, sub.ContainsKey(20)) // exclusive upper bound
	assert.False(t, sub.ContainsKey(8))  // within bounds but absent from tree

	v, ok := sub.Get(19)
	require.True(t, ok)
	assert.Equal(t, 361, v)

	_, ok = sub.Get(5)
	assert.False(t, ok)
}

func TestSubMap_RefineNarrowingSucceeds(t *testing.T) {
	// Scenario: sub_map(5, 25), then refine to sub_map(10, 20): OK.
	m := buildOddKeys(t)
	outer, err := m.SubMap(5, 25)
	require.NoError(t, err)

	inner, err := outer.SubMap(10, 20)
	require.NoError(t, err)
	assert.Equal(t, 5, inner.Size()) // 11,13,15,17,19
}

func TestSubMap_RefineBroadeningFails(t *testing.T) {
	// Scenario: sub_map(5, 25), then refine to sub_map(3, 20): fails,
	// since 3 broadens the lower bound below 5.
	m := buildOddKeys(t)
	outer, err := m.SubMap(5, 25)
	require.NoError(t, err)

	_, err = outer.SubMap(3, 20)
	assert.ErrorIs(t, err, domain.ErrKeyOutOfRange)
}

func TestSubMap_RefineHeadTailBroadening(t *testing.T) {
	m := buildOddKeys(t)
	outer, err := m.SubMap(5, 25)
	require.NoError(t, err)

	_, err = outer.HeadMap(30)
	assert.ErrorIs(t, err, domain.ErrKeyOutOfRange)

	_, err = outer.TailMap(0)
	assert.ErrorIs(t, err, domain.ErrKeyOutOfRange)

	narrower, err := outer.HeadMap(15)
	require.NoError(t, err)
	last, err := narrower.LastKey()
	require.NoError(t, err)
	assert.Equal(t, 13, last)
}

func TestSubMap_PutWritesThroughWithoutBounds(t *testing.T) {
	// §4.D / §9: Put on a view writes to the underlying tree regardless
	// of the view's interval.
	m := buildOddKeys(t)
	sub, err := m.SubMap(6, 20)
	require.NoError(t, err)

	sub.Put(100, -1) // well outside [6, 20)
	v, ok := m.Get(100)
	require.True(t, ok)
	assert.Equal(t, -1, v)

	// The view's own ContainsKey still respects the interval.
	assert.False(t, sub.ContainsKey(100))
}

func TestSubMap_EmptyView(t *testing.T) {
	m := buildOddKeys(t)
	sub, err := m.SubMap(100, 200)
	require.NoError(t, err)

	assert.Equal(t, 0, sub.Size())
	_, err = sub.FirstKey()
	assert.ErrorIs(t, err, domain.ErrEmpty)
	_, err = sub.LastKey()
	assert.ErrorIs(t, err, domain.ErrEmpty)
}
