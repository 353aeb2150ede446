package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/studbud/internal/cli/formatter"
	"github.com/alexanderramin/studbud/internal/domain"
)

// studbudHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func studbudHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// defaultStudyMethods are offered in the wizard's method picker.
var defaultStudyMethods = []string{
	"Flashcards",
	"Practice problems",
	"Reading notes",
	"Watching videos",
	"Group study",
	"Quizzes",
}

// validateRequired rejects blank input under the given field label.
func validateRequired(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

// validatePositiveFloat accepts a positive decimal number.
func validatePositiveFloat(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number of hours")
	}
	return nil
}

// splitCSV splits comma-separated input into trimmed non-empty entries.
func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// runProfileWizard walks the student through profile creation: identity
// and subjects first, then a strength/weakness pair per subject, then
// study preferences.
func runProfileWizard() (*domain.StudentProfile, error) {
	theme := studbudHuhTheme()

	var name, subjectsCSV, goals string
	identityForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Student name").
				Value(&name).
				Validate(validateRequired("name")),
			huh.NewInput().
				Title("Subjects").
				Placeholder("Math, History, Chemistry").
				Description("Comma-separated list").
				Value(&subjectsCSV).
				Validate(func(s string) error {
					if len(splitCSV(s)) == 0 {
						return fmt.Errorf("enter at least one subject")
					}
					return nil
				}),
			huh.NewInput().
				Title("Study goals").
				Placeholder("Pass final exams").
				Value(&goals).
				Validate(validateRequired("goals")),
		),
	).WithTheme(theme).WithShowHelp(false)

	if err := identityForm.Run(); err != nil {
		return nil, err
	}

	subjects := splitCSV(subjectsCSV)
	strengths := make(map[string]string, len(subjects))
	weaknesses := make(map[string]string, len(subjects))

	groups := make([]*huh.Group, 0, len(subjects))
	strengthVals := make([]string, len(subjects))
	weaknessVals := make([]string, len(subjects))
	for i, subject := range subjects {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Strength in %s", subject)).
				Placeholder("What comes easily?").
				Value(&strengthVals[i]).
				Validate(validateRequired("strength")),
			huh.NewInput().
				Title(fmt.Sprintf("Weakness in %s", subject)).
				Placeholder("What needs work?").
				Value(&weaknessVals[i]).
				Validate(validateRequired("weakness")),
		))
	}
	if err := huh.NewForm(groups...).WithTheme(theme).WithShowHelp(false).Run(); err != nil {
		return nil, err
	}
	for i, subject := range subjects {
		strengths[subject] = strings.TrimSpace(strengthVals[i])
		weaknesses[subject] = strings.TrimSpace(weaknessVals[i])
	}

	var preferredTime, hoursStr, environment string
	var methods []string
	prefsForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Preferred study time").
				Options(
					huh.NewOption("Morning", "Morning"),
					huh.NewOption("Afternoon", "Afternoon"),
					huh.NewOption("Evening", "Evening"),
					huh.NewOption("Night", "Night"),
				).
				Value(&preferredTime),
			huh.NewInput().
				Title("Daily study hours").
				Placeholder("2").
				Value(&hoursStr).
				Validate(validatePositiveFloat),
			huh.NewInput().
				Title("Study environment").
				Placeholder("Library, quiet room...").
				Value(&environment).
				Validate(validateRequired("environment")),
			huh.NewMultiSelect[string]().
				Title("Study methods").
				Options(methodOptions()...).
				Value(&methods).
				Validate(func(selected []string) error {
					if len(selected) == 0 {
						return fmt.Errorf("pick at least one method")
					}
					return nil
				}),
		),
	).WithTheme(theme).WithShowHelp(false)

	if err := prefsForm.Run(); err != nil {
		return nil, err
	}

	hours, err := strconv.ParseFloat(strings.TrimSpace(hoursStr), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid daily hours %q: %w", hoursStr, err)
	}

	return &domain.StudentProfile{
		StudentName: strings.TrimSpace(name),
		Subjects:    subjects,
		Goals:       strings.TrimSpace(goals),
		Strengths:   strengths,
		Weaknesses:  weaknesses,
		Preferences: domain.Preferences{
			PreferredTime:      preferredTime,
			DailyDurationHours: hours,
			Environment:        strings.TrimSpace(environment),
			Methods:            methods,
		},
	}, nil
}

func methodOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(defaultStudyMethods))
	for _, m := range defaultStudyMethods {
		options = append(options, huh.NewOption(m, m))
	}
	return options
}
