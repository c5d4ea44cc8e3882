package wizard

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/model"
)

//go:embed steps/manifest.json
var stepsFS embed.FS

// Step is one section of the GACP questionnaire.
type Step struct {
	ID       int      `json:"id"`
	Key      string   `json:"key"`
	Title    string   `json:"title"`
	Required []string `json:"required"`
}

type manifest struct {
	Steps []Step `json:"steps"`
}

// OutOfOrderError reports a step save attempted before earlier steps are done.
type OutOfOrderError struct {
	StepID          int
	FirstIncomplete int
}

func (e *OutOfOrderError) Error() string {
	return fmt.Sprintf("step %d cannot be saved before step %d is complete", e.StepID, e.FirstIncomplete)
}

// UnknownStepError reports a step id outside the manifest.
type UnknownStepError struct {
	StepID int
}

func (e *UnknownStepError) Error() string {
	return fmt.Sprintf("unknown wizard step: %d", e.StepID)
}

// Wizard sequences the survey questionnaire: step ordering, required-field
// completion, and draft application onto the survey document.
type Wizard struct {
	steps []Step
	byID  map[int]*Step
}

// New loads the embedded step manifest. Step ids must be contiguous from 1 so
// the ordering rules below stay simple.
func New() (*Wizard, error) {
	data, err := stepsFS.ReadFile("steps/manifest.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read step manifest: %w", err)
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse step manifest: %w", err)
	}
	if len(m.Steps) == 0 {
		return nil, fmt.Errorf("step manifest is empty")
	}

	byID := make(map[int]*Step, len(m.Steps))
	for i := range m.Steps {
		s := &m.Steps[i]
		if s.ID != i+1 {
			return nil, fmt.Errorf("step ids must be contiguous from 1, got %d at position %d", s.ID, i)
		}
		if s.Key == "" {
			return nil, fmt.Errorf("step %d has no key", s.ID)
		}
		if len(s.Required) == 0 {
			return nil, fmt.Errorf("step %d has no required fields", s.ID)
		}
		byID[s.ID] = s
	}

	return &Wizard{steps: m.Steps, byID: byID}, nil
}

// Steps returns the ordered step definitions.
func (w *Wizard) Steps() []Step {
	return w.steps
}

// StepCount returns the number of steps in the manifest.
func (w *Wizard) StepCount() int {
	return len(w.steps)
}

// StepByID returns the step definition, or an UnknownStepError.
func (w *Wizard) StepByID(id int) (*Step, error) {
	s, ok := w.byID[id]
	if !ok {
		return nil, &UnknownStepError{StepID: id}
	}
	return s, nil
}

// stepComplete reports whether the stored data satisfies the step's required
// fields. Blank answers do not count.
func stepComplete(s *Step, data model.StepData) bool {
	for _, field := range s.Required {
		if strings.TrimSpace(data.Answers[field]) == "" {
			return false
		}
	}
	return true
}

// FirstIncomplete returns the lowest step id whose required fields are not all
// answered, or 0 when the whole questionnaire is complete.
func (w *Wizard) FirstIncomplete(survey *model.Survey) int {
	for i := range w.steps {
		s := &w.steps[i]
		data, ok := survey.Steps[s.Key]
		if !ok || !stepComplete(s, data) {
			return s.ID
		}
	}
	return 0
}

// Incomplete returns every step whose required fields are not all answered.
// Submit reports all of them at once rather than just the first.
func (w *Wizard) Incomplete(survey *model.Survey) []Step {
	var missing []Step
	for i := range w.steps {
		s := &w.steps[i]
		data, ok := survey.Steps[s.Key]
		if !ok || !stepComplete(s, data) {
			missing = append(missing, *s)
		}
	}
	return missing
}

// ValidateSave enforces step ordering: saving step N requires steps 1..N-1 to
// be complete. Status gating (DRAFT/REVISION_REQUESTED only) is the service's
// concern.
func (w *Wizard) ValidateSave(survey *model.Survey, stepID int) error {
	if _, err := w.StepByID(stepID); err != nil {
		return err
	}
	for i := range w.steps {
		s := &w.steps[i]
		if s.ID >= stepID {
			break
		}
		data, ok := survey.Steps[s.Key]
		if !ok || !stepComplete(s, data) {
			return &OutOfOrderError{StepID: stepID, FirstIncomplete: s.ID}
		}
	}
	return nil
}

// Apply writes the answers for a step onto the survey: it stamps completed_at
// when the step's required fields are all present and advances current_step.
// The caller persists the result.
func (w *Wizard) Apply(survey *model.Survey, stepID int, answers map[string]string, now time.Time) (model.StepData, error) {
	s, err := w.StepByID(stepID)
	if err != nil {
		return model.StepData{}, err
	}

	data := model.StepData{
		Answers:   answers,
		UpdatedAt: now,
	}
	if stepComplete(s, data) {
		done := now
		data.CompletedAt = &done
	}

	if survey.Steps == nil {
		survey.Steps = make(map[string]model.StepData)
	}
	survey.Steps[s.Key] = data

	if data.CompletedAt != nil && stepID >= survey.CurrentStep {
		next := stepID + 1
		if next > len(w.steps) {
			next = len(w.steps)
		}
		survey.CurrentStep = next
	}

	return data, nil
}
