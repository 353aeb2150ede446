package planstore

import (
	"fmt"
	"time"

	"github.com/alexanderramin/studbud/internal/domain"
)

// ToDocument converts a study plan into its JSON document form.
func ToDocument(plan domain.StudyPlan) PlanDocument {
	doc := make(PlanDocument, len(plan))
	for date, daily := range plan {
		blocks := make([]StudyBlockDoc, 0, len(daily.Blocks))
		for _, block := range daily.Blocks {
			blocks = append(blocks, StudyBlockDoc{
				Subject:  block.Subject,
				Time:     block.AllocatedHours,
				Task:     block.Task,
				Priority: string(block.Priority),
			})
		}
		doc[date] = DailyPlanDoc{
			Date:          daily.DateKey(),
			StudyBlocks:   blocks,
			Environment:   daily.Environment,
			PreferredTime: daily.PreferredTime,
		}
	}
	return doc
}

// FromDocument converts a JSON document back into a study plan,
// validating dates and priority strings. Any invalid entry fails the
// whole conversion so a caller never sees a partially-loaded plan.
func FromDocument(doc PlanDocument) (domain.StudyPlan, error) {
	plan := make(domain.StudyPlan, len(doc))
	for key, dailyDoc := range doc {
		dateStr := dailyDoc.Date
		if dateStr == "" {
			dateStr = key
		}
		date, err := time.Parse(domain.DateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("entry %q: invalid date %q (expected YYYY-MM-DD)", key, dateStr)
		}

		blocks := make([]domain.StudyBlock, 0, len(dailyDoc.StudyBlocks))
		for i, blockDoc := range dailyDoc.StudyBlocks {
			priority, err := domain.ParsePriority(blockDoc.Priority)
			if err != nil {
				return nil, fmt.Errorf("entry %q, block %d: %w", key, i, err)
			}
			if blockDoc.Time <= 0 {
				return nil, fmt.Errorf("entry %q, block %d: time must be positive, got %v", key, i, blockDoc.Time)
			}
			blocks = append(blocks, domain.StudyBlock{
				Subject:        blockDoc.Subject,
				AllocatedHours: blockDoc.Time,
				Task:           blockDoc.Task,
				Priority:       priority,
			})
		}

		plan[key] = domain.DailyPlan{
			Date:          date,
			Blocks:        blocks,
			Environment:   dailyDoc.Environment,
			PreferredTime: dailyDoc.PreferredTime,
		}
	}
	return plan, nil
}
