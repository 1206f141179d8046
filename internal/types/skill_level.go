package types

// SkillLevel is the four-step proficiency scale.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// DefaultSkillLevel is assigned to newly added skills.
const DefaultSkillLevel = LevelIntermediate

// SkillLevels lists the scale in ascending order.
var SkillLevels = []SkillLevel{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}

// Rank returns the ordinal position of the level, 1 (Beginner) through 4 (Expert).
// Unrecognised values rank 0.
func (l SkillLevel) Rank() int {
	switch l {
	case LevelBeginner:
		return 1
	case LevelIntermediate:
		return 2
	case LevelAdvanced:
		return 3
	case LevelExpert:
		return 4
	default:
		return 0
	}
}

// Valid reports whether l is one of the four known levels.
func (l SkillLevel) Valid() bool {
	return l.Rank() > 0
}
