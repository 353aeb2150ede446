package planstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/studbud/internal/domain"
)

// ErrPlanNotFound indicates the plan file does not exist.
var ErrPlanNotFound = errors.New("study plan file not found")

// Save writes the study plan to path as an indented JSON document.
func Save(path string, plan domain.StudyPlan) error {
	data, err := json.MarshalIndent(ToDocument(plan), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing plan file: %w", err)
	}
	return nil
}

// Load reads and parses a study plan file. A missing file returns
// ErrPlanNotFound; parse or validation failures return an error with no
// plan, never a partial one.
func Load(path string) (domain.StudyPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, path)
		}
		return nil, fmt.Errorf("reading plan file: %w", err)
	}

	var doc PlanDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	return FromDocument(doc)
}
