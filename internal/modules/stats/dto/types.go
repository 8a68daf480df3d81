package dto

// SummaryOutput aggregates the session projection over a window. Days == 0
// means the whole history.
type SummaryOutput struct {
	Days           int
	TotalFasts     int
	CompletedFasts int
	TotalHours     float64
	AverageHours   float64
	LongestHours   float64
	TotalWater     int
	CompletionRate float64
}

type ReindexOutput struct {
	Indexed int
}
