package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlockRange(t *testing.T) {
	r, err := ParseBlockRange("[100,)")
	require.NoError(t, err)
	require.NotNil(t, r.Start)
	assert.Equal(t, int64(100), *r.Start)
	assert.Nil(t, r.End)

	r, err = ParseBlockRange("[100,200)")
	require.NoError(t, err)
	require.NotNil(t, r.Start)
	require.NotNil(t, r.End)
	assert.Equal(t, int64(100), *r.Start)
	assert.Equal(t, int64(200), *r.End)

	// non-canonical bounds are normalized to inclusive-lower, exclusive-upper
	r, err = ParseBlockRange("(100,200]")
	require.NoError(t, err)
	require.NotNil(t, r.Start)
	require.NotNil(t, r.End)
	assert.Equal(t, int64(101), *r.Start)
	assert.Equal(t, int64(201), *r.End)

	r, err = ParseBlockRange("(,200)")
	require.NoError(t, err)
	assert.Nil(t, r.Start)
	require.NotNil(t, r.End)
	assert.Equal(t, int64(200), *r.End)

	r, err = ParseBlockRange("(,)")
	require.NoError(t, err)
	assert.Nil(t, r.Start)
	assert.Nil(t, r.End)
}

func TestParseBlockRangeEmpty(t *testing.T) {
	r, err := ParseBlockRange("empty")
	require.NoError(t, err)
	assert.Nil(t, r.FirstBlock())
	assert.Nil(t, r.End)
}

func TestParseBlockRangeMalformed(t *testing.T) {
	for _, input := range []string{"", "100", "[100)", "[abc,200)", "[100,xyz)", "{100,200}"} {
		_, err := ParseBlockRange(input)
		assert.Error(t, err, "input %q should not parse", input)
	}
}

func TestFirstBlock(t *testing.T) {
	r, err := ParseBlockRange("[42,100)")
	require.NoError(t, err)
	first := r.FirstBlock()
	require.NotNil(t, first)
	assert.Equal(t, int64(42), *first)

	r, err = ParseBlockRange("(,100)")
	require.NoError(t, err)
	assert.Nil(t, r.FirstBlock())
}
