package catalog

import (
	"errors"
	"slices"
)

// Catalog errors
var (
	ErrDuplicateStepID = errors.New("duplicate step id")
	ErrEmptyStepID     = errors.New("step id cannot be empty")
)

// Catalog holds the ordered step list. Absolute indices run 0..Len()-1.
type Catalog struct {
	steps []Step
	byID  map[string]int
}

// New builds a catalog from the given steps in order.
func New(steps ...Step) (*Catalog, error) {
	byID := make(map[string]int, len(steps))
	for i, step := range steps {
		if step.ID == "" {
			return nil, ErrEmptyStepID
		}
		if _, exists := byID[step.ID]; exists {
			return nil, ErrDuplicateStepID
		}
		byID[step.ID] = i
	}
	return &Catalog{steps: slices.Clone(steps), byID: byID}, nil
}

// Len returns the number of steps.
func (c *Catalog) Len() int {
	return len(c.steps)
}

// Steps returns every step in order.
func (c *Catalog) Steps() []Step {
	return c.steps
}

// At returns the step at absolute index i.
func (c *Catalog) At(i int) (Step, bool) {
	if i < 0 || i >= len(c.steps) {
		return Step{}, false
	}
	return c.steps[i], true
}

// ByID returns the step with the given id and its absolute index.
func (c *Catalog) ByID(id string) (Step, int, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Step{}, -1, false
	}
	return c.steps[i], i, true
}

// HasOption reports whether the step exists and offers the option value.
func (c *Catalog) HasOption(stepID, value string) bool {
	step, _, ok := c.ByID(stepID)
	if !ok {
		return false
	}
	return step.HasOption(value)
}
