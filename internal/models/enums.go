package models

// ModuleType identifies one scored section of a practice exam.
type ModuleType string

const (
	ModuleEnglish1 ModuleType = "english1"
	ModuleEnglish2 ModuleType = "english2"
	ModuleMath1    ModuleType = "math1"
	ModuleMath2    ModuleType = "math2"
)

// SATModules lists the four modules every score report carries, in display order.
var SATModules = []ModuleType{ModuleEnglish1, ModuleEnglish2, ModuleMath1, ModuleMath2}

type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

// DifficultyLevels is the fixed bucket order used by difficulty breakdowns.
var DifficultyLevels = []DifficultyLevel{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d DifficultyLevel) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type AttemptStatus string

const (
	AttemptNotStarted AttemptStatus = "not_started"
	AttemptInProgress AttemptStatus = "in_progress"
	AttemptCompleted  AttemptStatus = "completed"
	AttemptExpired    AttemptStatus = "expired"
)

func (s AttemptStatus) IsValid() bool {
	switch s {
	case AttemptNotStarted, AttemptInProgress, AttemptCompleted, AttemptExpired:
		return true
	}
	return false
}
