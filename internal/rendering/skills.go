package rendering

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// MaxSkillRank is the number of steps on the skill scale.
const MaxSkillRank = 4

// fallbackRank stands in for levels outside the scale (the Intermediate slot).
const fallbackRank = 2

func effectiveRank(level types.SkillLevel) int {
	if r := level.Rank(); r > 0 {
		return r
	}
	return fallbackRank
}

// BarWidth maps a level to the width of the modern layout's skill bar:
// 25%, 50%, 75% or 100%.
func BarWidth(level types.SkillLevel) string {
	return fmt.Sprintf("%d%%", effectiveRank(level)*100/MaxSkillRank)
}

// Stars maps a level to the creative layout's star count, 1 through 4.
func Stars(level types.SkillLevel) int {
	return effectiveRank(level)
}

// meter returns MaxSkillRank flags, the first rank of them set.
func meter(rank int) []bool {
	out := make([]bool, MaxSkillRank)
	for i := 0; i < rank && i < MaxSkillRank; i++ {
		out[i] = true
	}
	return out
}
