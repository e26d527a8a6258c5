package color_test

import (
	"testing"

	"github.com/openkraft/tokenkraft/internal/domain/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssess_GrayOnWhite(t *testing.T) {
	a, err := color.Assess("#777777", "#FFFFFF")
	require.NoError(t, err)
	assert.InDelta(t, 4.48, a.Ratio, 0.01)
	require.Len(t, a.Levels, len(color.Levels))

	pass := map[string]bool{}
	for _, l := range a.Levels {
		pass[l.Name] = l.Pass
	}
	assert.True(t, pass["AA large text"])
	assert.True(t, pass["AA UI components"])
	assert.False(t, pass["AA normal text"])
	assert.False(t, pass["AAA normal text"])
}

func TestAssess_BlackOnWhitePassesAll(t *testing.T) {
	a, err := color.Assess("#000000", "#ffffff")
	require.NoError(t, err)
	for _, l := range a.Levels {
		assert.True(t, l.Pass, l.Name)
	}
}

func TestAssess_RejectsShortHex(t *testing.T) {
	_, err := color.Assess("#fff", "#000000")
	assert.Error(t, err)
}
