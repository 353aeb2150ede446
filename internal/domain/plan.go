package domain

import (
	"sort"
	"time"
)

// DateLayout is the ISO date format used for plan keys and storage.
const DateLayout = "2006-01-02"

// StudyBlock is one scheduled unit of study within a daily plan.
type StudyBlock struct {
	Subject        string
	AllocatedHours float64
	Task           string
	Priority       Priority
}

// DailyPlan is the ordered sequence of study blocks for one calendar
// day, one block per subject in profile subject order.
type DailyPlan struct {
	Date          time.Time
	Blocks        []StudyBlock
	Environment   string
	PreferredTime string
}

// DateKey returns the ISO YYYY-MM-DD key for this plan's date.
func (d DailyPlan) DateKey() string {
	return d.Date.Format(DateLayout)
}

// StudyPlan maps ISO YYYY-MM-DD date strings to daily plans. Generated
// plans cover consecutive dates; map iteration order is not meaningful.
type StudyPlan map[string]DailyPlan

// Dates returns the plan's date keys in ascending calendar order.
func (p StudyPlan) Dates() []string {
	dates := make([]string, 0, len(p))
	for date := range p {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}
