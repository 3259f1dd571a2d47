// Package catalog defines the static, ordered list of wizard steps. The
// catalog is constructed once at process start and never mutated; visibility
// predicates are pure functions over a configuration snapshot.
package catalog

import (
	"github.com/zjrosen/stackforge/internal/wizard/scaffold"
)

// Kind classifies how a step collects its value.
type Kind string

const (
	KindText         Kind = "text"
	KindSingleSelect Kind = "single-select"
	KindMultiSelect  Kind = "multi-select"
	KindCustom       Kind = "custom"
)

// Option is one selectable value for a select step.
type Option struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Step describes a single wizard step.
type Step struct {
	ID      string
	Title   string
	Kind    Kind
	Field   scaffold.Field
	Options []Option

	// VisibleWhen gates the step; nil means always visible. Must be pure:
	// no side effects, no captured mutable state.
	VisibleWhen func(cfg scaffold.Config) bool

	// VisibleWhenDoc describes the predicate for the YAML export, since a
	// func cannot be serialised.
	VisibleWhenDoc string

	// Validate checks the field's canonical value; nil means no
	// field-level validation beyond option membership.
	Validate func(value string) error
}

// OptionValues returns the raw option values in declaration order.
func (s Step) OptionValues() []string {
	values := make([]string, len(s.Options))
	for i, opt := range s.Options {
		values[i] = opt.Value
	}
	return values
}

// HasOption reports whether value is one of the step's options.
func (s Step) HasOption(value string) bool {
	for _, opt := range s.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
