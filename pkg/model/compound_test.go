package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationValid(t *testing.T) {
	for _, l := range Locations() {
		assert.True(t, l.Valid(), "location %q", l)
	}
	assert.False(t, Location("Basement").Valid())
	assert.False(t, Location("").Valid())
}

func TestLidColorLabels(t *testing.T) {
	assert.Equal(t, "⚪ White", LidWhite.Label())
	assert.Equal(t, "🔴 Red", LidRed.Label())
	assert.Equal(t, "❓ Other", LidOther.Label())

	// legacy/unknown values are shown as Other, never rejected
	assert.Equal(t, "❓ Other", LidColor("Purple").Label())
	assert.False(t, LidColor("Purple").Valid())
}

func TestAppearanceValid(t *testing.T) {
	for _, a := range Appearances() {
		assert.True(t, a.Valid(), "appearance %q", a)
	}
	assert.False(t, Appearance("Plasma").Valid())
}
