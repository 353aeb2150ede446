package planstore

// PlanDocument is the top-level JSON structure for a saved study plan:
// a mapping from ISO YYYY-MM-DD date strings to daily plan objects.
type PlanDocument map[string]DailyPlanDoc

// DailyPlanDoc defines one day's plan in the plan file.
type DailyPlanDoc struct {
	Date          string          `json:"date"`
	StudyBlocks   []StudyBlockDoc `json:"study_blocks"`
	Environment   string          `json:"environment"`
	PreferredTime string          `json:"preferred_time"`
}

// StudyBlockDoc defines one study block in the plan file. Time is a
// floating-point number of hours.
type StudyBlockDoc struct {
	Subject  string  `json:"subject"`
	Time     float64 `json:"time"`
	Task     string  `json:"task"`
	Priority string  `json:"priority"`
}
