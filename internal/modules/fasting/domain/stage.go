package domain

// Stage describes what the body is doing after a given number of fasting
// hours. The table is ordered, contiguous and half-open [StartHour, EndHour);
// the final entry acts as the open-ended fallback.
type Stage struct {
	StartHour float64
	EndHour   float64
	Title     string
	Desc      string
	Icon      string
}

var stages = []Stage{
	{0, 4, "Digestão", "Níveis de açúcar no sangue aumentam.", "activity"},
	{4, 8, "Queda de Açúcar", "A insulina cai. O corpo começa a se acalmar.", "activity"},
	{8, 12, "Queima de Gordura", "Início da lipólise. O corpo busca gordura.", "flame"},
	{12, 18, "Cetose Inicial", "Queima de gordura acelerada. Clareza mental.", "zap"},
	{18, 24, "Autofagia", "Limpeza celular profunda.", "battery"},
	{24, 48, "Pico de HGH", "Hormônio do crescimento máximo.", "heart"},
	{48, 72, "Imunidade", "Regeneração do sistema imune.", "brain"},
	{72, 999, "Estado Profundo", "Benefícios espirituais e físicos máximos.", "sparkles"},
}

// StageFor resolves the first range containing elapsedHours, falling back to
// the last stage once the table is exhausted.
func StageFor(elapsedHours float64) Stage {
	for _, s := range stages {
		if elapsedHours >= s.StartHour && elapsedHours < s.EndHour {
			return s
		}
	}
	return stages[len(stages)-1]
}

func Stages() []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages)
	return out
}
