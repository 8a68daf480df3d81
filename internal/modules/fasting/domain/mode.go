package domain

import "fmt"

type FastingType string

const (
	Type12h    FastingType = "12h"
	Type14h    FastingType = "14h"
	Type16h    FastingType = "16h"
	Type18h    FastingType = "18h"
	Type20h    FastingType = "20h"
	Type24h    FastingType = "24h"
	TypeOMAD   FastingType = "OMAD"
	TypeCustom FastingType = "Custom"
)

// CustomModeID selects a custom fast explicitly. It has no preset entry:
// a custom fast always carries its own hour count.
const CustomModeID = "custom"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Iniciante"
	DifficultyMedium Difficulty = "Intermediário"
	DifficultyHard   Difficulty = "Avançado"
)

// Mode is a preset fasting protocol. The catalog is static reference data;
// a custom fast carries its own hour count instead.
type Mode struct {
	ID          string
	Type        FastingType
	Hours       float64
	Label       string
	Description string
	Difficulty  Difficulty
}

var modes = []Mode{
	{"12h", Type12h, 12, "12:12", "Janela equilibrada. Metade do dia jejuando.", DifficultyEasy},
	{"14h", Type14h, 14, "14:10", "Um pouco mais desafiador, ótimo para começar.", DifficultyEasy},
	{"16h", Type16h, 16, "16:8", "O método mais popular (Leangains).", DifficultyMedium},
	{"18h", Type18h, 18, "18:6", "Para quem já está acostumado com o 16:8.", DifficultyMedium},
	{"20h", Type20h, 20, "20:4", "Dieta do Guerreiro. Janela curta de alimentação.", DifficultyHard},
	{"23h", TypeOMAD, 23, "OMAD", "Uma refeição ao dia (One Meal A Day).", DifficultyHard},
}

func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

func ModeByID(modeID string) (Mode, bool) {
	for _, m := range modes {
		if m.ID == modeID {
			return m, true
		}
	}
	return Mode{}, false
}

func (t FastingType) Validate() error {
	switch t {
	case Type12h, Type14h, Type16h, Type18h, Type20h, Type24h, TypeOMAD, TypeCustom:
		return nil
	default:
		return fmt.Errorf("unknown fasting type %q", string(t))
	}
}
