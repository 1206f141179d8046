package rendering

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestBarWidth(t *testing.T) {
	tests := []struct {
		level types.SkillLevel
		want  string
	}{
		{types.LevelBeginner, "25%"},
		{types.LevelIntermediate, "50%"},
		{types.LevelAdvanced, "75%"},
		{types.LevelExpert, "100%"},
		{types.SkillLevel("Wizard"), "50%"},
		{types.SkillLevel(""), "50%"},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.want, BarWidth(tt.level))
		})
	}
}

func TestStars(t *testing.T) {
	assert.Equal(t, 1, Stars(types.LevelBeginner))
	assert.Equal(t, 2, Stars(types.LevelIntermediate))
	assert.Equal(t, 3, Stars(types.LevelAdvanced))
	assert.Equal(t, 4, Stars(types.LevelExpert))
	assert.Equal(t, 2, Stars(types.SkillLevel("unknown")))
}

func TestMeter(t *testing.T) {
	assert.Equal(t, []bool{true, true, true, false}, meter(3))
	assert.Equal(t, []bool{false, false, false, false}, meter(0))
	assert.Equal(t, []bool{true, true, true, true}, meter(9))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "AL", Initials("ada lovelace"))
	assert.Equal(t, "GBH", Initials("  Grace  Brewster Hopper "))
	assert.Equal(t, "", Initials(""))
	assert.Equal(t, "ÉD", Initials("émile durkheim"))
}
