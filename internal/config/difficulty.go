package config

// DifficultyPreset represents a named difficulty level. Harder presets
// spawn more 4s, which fill the board faster.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// FourProbabilityForPreset returns the spawn chance of a 4 for a preset.
// Unknown presets fall back to normal.
func FourProbabilityForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.05
	case DifficultyHard:
		return 0.20
	default:
		return 0.10
	}
}

// Valid reports whether the preset is known. Empty means normal.
func (p DifficultyPreset) Valid() bool {
	switch p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}
