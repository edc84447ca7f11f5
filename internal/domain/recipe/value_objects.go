package recipe

import "strings"

// DifficultyLevel represents recipe difficulty
type DifficultyLevel string

const (
	DifficultyLevelEasy   DifficultyLevel = "Easy"
	DifficultyLevelMedium DifficultyLevel = "Medium"
	DifficultyLevelHard   DifficultyLevel = "Hard"
)

// DifficultyLevels lists the accepted labels in ascending order
var DifficultyLevels = []DifficultyLevel{
	DifficultyLevelEasy,
	DifficultyLevelMedium,
	DifficultyLevelHard,
}

// IsValid reports whether d is one of the known labels
func (d DifficultyLevel) IsValid() bool {
	switch d {
	case DifficultyLevelEasy, DifficultyLevelMedium, DifficultyLevelHard:
		return true
	default:
		return false
	}
}

func (d DifficultyLevel) String() string {
	return string(d)
}

// ParseDifficulty maps a label in any casing to its canonical level.
func ParseDifficulty(s string) (DifficultyLevel, error) {
	s = strings.TrimSpace(s)
	for _, level := range DifficultyLevels {
		if strings.EqualFold(s, string(level)) {
			return level, nil
		}
	}
	return "", ErrInvalidDifficulty
}
