package pipeline

import "fmt"

// Difficulty is a closed set; invalid values are rejected at the boundary.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// NormalizeDifficulty maps free-form model output onto the closed set,
// defaulting to medium. Upstream models occasionally emit synonyms.
func NormalizeDifficulty(s string) Difficulty {
	switch s {
	case "easy", "beginner":
		return DifficultyEasy
	case "hard", "advanced":
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// EducationalLevel tags the expectation bar for generation and grading.
// It is supplied per call and never persisted as derived state.
type EducationalLevel string

const (
	LevelMiddleSchool   EducationalLevel = "middle_school"
	LevelHighSchool     EducationalLevel = "high_school"
	LevelJuniorCollege  EducationalLevel = "junior_college"
	LevelDiploma        EducationalLevel = "diploma"
	LevelGraduation     EducationalLevel = "graduation"
	LevelPostGraduation EducationalLevel = "post_graduation"
)

func ParseEducationalLevel(s string) (EducationalLevel, error) {
	switch EducationalLevel(s) {
	case LevelMiddleSchool, LevelHighSchool, LevelJuniorCollege,
		LevelDiploma, LevelGraduation, LevelPostGraduation:
		return EducationalLevel(s), nil
	}
	return "", fmt.Errorf("unknown educational level %q", s)
}
