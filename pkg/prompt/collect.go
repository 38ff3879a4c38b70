// Package prompt collects form values interactively. The collected values use
// the same url.Values shape as a posted form, so they can be handed to
// markup.WithSubmittedForm and rendered back as prefilled controls.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-formtag/pkg/attrs"
	"github.com/goliatone/go-formtag/pkg/markup"
)

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrUnknownKind is returned for fields with an unsupported Kind.
	ErrUnknownKind = errors.New("prompt: unknown field kind")
)

// Kind selects the prompt used for a field.
type Kind string

const (
	KindText        Kind = "text"
	KindPassword    Kind = "password"
	KindConfirm     Kind = "confirm"
	KindSelect      Kind = "select"
	KindMultiSelect Kind = "multiselect"
	KindTextArea    Kind = "textarea"
)

// Field describes one value to collect.
type Field struct {
	// Name is the form field name; bracketed names such as "tags[]" are kept
	// as-is in the collected values.
	Name  string
	Kind  Kind
	Label string
	Help  string
	// Options lists choices for select kinds. Groups are flattened.
	Options markup.Options
	// Required rejects empty text answers.
	Required bool
	// Value is submitted for accepted confirm fields; "1" when empty.
	Value string
}

// Collect prompts for each field in order. Current values from h, when
// non-nil, are offered as defaults. Confirm fields contribute their Value when
// accepted and nothing otherwise, like a checkbox.
func Collect(ctx context.Context, driver Driver, h *markup.Helper, fields []Field) (url.Values, error) {
	if driver == nil {
		return nil, errors.New("prompt: driver is nil")
	}

	out := url.Values{}
	for _, field := range fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := collectField(ctx, driver, h, field, out); err != nil {
			return nil, fmt.Errorf("prompt: field %q: %w", field.Name, err)
		}
	}
	return out, nil
}

func collectField(ctx context.Context, driver Driver, h *markup.Helper, field Field, out url.Values) error {
	var current any
	if h != nil {
		current = h.Value(field.Name, nil)
	}
	message := field.Label
	if message == "" {
		message = field.Name
	}

	switch field.Kind {
	case KindText, "":
		answer, err := driver.Input(ctx, InputConfig{
			Message:   message,
			Help:      field.Help,
			Default:   stringOf(current),
			Validator: requiredValidator(field.Required),
		})
		if err != nil {
			return err
		}
		out.Set(field.Name, answer)
	case KindPassword:
		answer, err := driver.Password(ctx, InputConfig{
			Message:   message,
			Help:      field.Help,
			Validator: requiredValidator(field.Required),
		})
		if err != nil {
			return err
		}
		out.Set(field.Name, answer)
	case KindTextArea:
		answer, err := driver.TextArea(ctx, TextAreaConfig{
			Message: message,
			Help:    field.Help,
			Default: stringOf(current),
		})
		if err != nil {
			return err
		}
		out.Set(field.Name, answer)
	case KindConfirm:
		value := field.Value
		if value == "" {
			value = "1"
		}
		checked := attrs.Truthy(current)
		if field.Value != "" {
			checked = attrs.Equal(current, value)
		}
		answer, err := driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Help:    field.Help,
			Default: checked,
		})
		if err != nil {
			return err
		}
		if answer {
			out.Set(field.Name, value)
		}
	case KindSelect:
		choices := flatten(field.Options)
		idx, err := driver.Select(ctx, SelectConfig{
			Message:      message,
			Help:         field.Help,
			Options:      texts(choices),
			DefaultIndex: indexOfValue(choices, current),
		})
		if err != nil {
			return err
		}
		if idx >= 0 && idx < len(choices) {
			out.Set(field.Name, stringOf(choices[idx].Value))
		}
	case KindMultiSelect:
		choices := flatten(field.Options)
		var defaults []int
		for i, choice := range choices {
			if attrs.Contains(current, choice.Value) {
				defaults = append(defaults, i)
			}
		}
		picked, err := driver.MultiSelect(ctx, SelectConfig{
			Message:  message,
			Help:     field.Help,
			Options:  texts(choices),
			Defaults: defaults,
		})
		if err != nil {
			return err
		}
		for _, idx := range picked {
			if idx >= 0 && idx < len(choices) {
				out.Add(field.Name, stringOf(choices[idx].Value))
			}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, field.Kind)
	}
	return nil
}

func requiredValidator(required bool) func(string) error {
	if !required {
		return nil
	}
	return func(answer string) error {
		if strings.TrimSpace(answer) == "" {
			return errors.New("a value is required")
		}
		return nil
	}
}

func flatten(options markup.Options) []markup.SelectOption {
	var out []markup.SelectOption
	for _, opt := range options {
		if opt.IsGroup() {
			out = append(out, flatten(opt.Group)...)
			continue
		}
		out = append(out, opt)
	}
	return out
}

func texts(options []markup.SelectOption) []string {
	out := make([]string, 0, len(options))
	for _, opt := range options {
		text := opt.Text
		if text == "" {
			text = stringOf(opt.Value)
		}
		out = append(out, text)
	}
	return out
}

func indexOfValue(options []markup.SelectOption, current any) int {
	if current == nil {
		return -1
	}
	for i, opt := range options {
		if attrs.Equal(current, opt.Value) {
			return i
		}
	}
	return -1
}

func stringOf(value any) string {
	s, _ := attrs.Stringify(value)
	return s
}
