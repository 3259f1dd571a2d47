package catalog

import (
	"errors"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
)

// Shared validator instance for field-level format rules. The default steps
// only use var-level validation, never struct tags.
var vld = validator.New()

// varRule wraps a validator tag expression with a fixed user-facing message.
func varRule(tag, msg string) func(string) error {
	return func(value string) error {
		if err := vld.Var(value, tag); err != nil {
			return errors.New(msg)
		}
		return nil
	}
}

// required rejects the unset sentinel with a fixed message.
func required(msg string) func(string) error {
	return func(value string) error {
		if value == "" {
			return errors.New(msg)
		}
		return nil
	}
}

// optionalSemver accepts the unset sentinel, otherwise requires a parseable
// semantic version.
func optionalSemver(msg string) func(string) error {
	return func(value string) error {
		if value == "" {
			return nil
		}
		if _, err := semver.NewVersion(value); err != nil {
			return errors.New(msg)
		}
		return nil
	}
}
