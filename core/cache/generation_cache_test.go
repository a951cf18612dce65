package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeedsRegeneration(t *testing.T) {
	gc := NewGenerationCache()

	needs, reason := gc.NeedsRegeneration("p", "aaaaaaaaaa", "fixed")
	assert.True(t, needs)
	assert.Equal(t, "no generation record found", reason)

	require.NoError(t, gc.MarkGenerated("p", "aaaaaaaaaa", "fixed"))

	needs, _ = gc.NeedsRegeneration("p", "aaaaaaaaaa", "fixed")
	assert.False(t, needs)

	needs, reason = gc.NeedsRegeneration("p", "bbbbbbbbbb", "fixed")
	assert.True(t, needs)
	assert.Contains(t, reason, "aaaaaaaa -> bbbbbbbb")

	needs, reason = gc.NeedsRegeneration("p", "aaaaaaaaaa", "coverage")
	assert.True(t, needs)
	assert.Equal(t, "configuration changed", reason)
}

func TestMarkGeneratedRejectsEmptyKeys(t *testing.T) {
	gc := NewGenerationCache()
	assert.Error(t, gc.MarkGenerated("", "fp", ""))
	assert.Error(t, gc.MarkGenerated("p", "", ""))
}

func TestGenerationInfoIsACopy(t *testing.T) {
	gc := NewGenerationCache()
	require.NoError(t, gc.MarkGenerated("p", "fp", "fixed"))

	info, ok := gc.GetGenerationInfo("p")
	require.True(t, ok)
	info.Fingerprint = "changed"

	needs, _ := gc.NeedsRegeneration("p", "fp", "fixed")
	assert.False(t, needs)
}

func TestInvalidateAndClear(t *testing.T) {
	gc := NewGenerationCache()
	require.NoError(t, gc.MarkGenerated("b", "fp", ""))
	require.NoError(t, gc.MarkGenerated("a", "fp", ""))
	assert.Equal(t, []string{"a", "b"}, gc.GetGeneratedProjects())

	gc.InvalidateGeneration("a")
	assert.Equal(t, []string{"b"}, gc.GetGeneratedProjects())

	gc.Clear()
	assert.Empty(t, gc.GetGeneratedProjects())
}
