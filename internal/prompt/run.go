package prompt

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/muurk/termform/internal/field"
	"github.com/muurk/termform/internal/form"
	"github.com/muurk/termform/internal/logging"
)

// noneOption is offered first on optional selects
const noneOption = "(none)"

// ClearAnswer empties a text field that already has a value
const ClearAnswer = "-"

// Run asks every field of f through d, then submits the form. Fields that
// fail validation on submit are reported and asked again. An aborted prompt
// cancels the form and is not an error.
func Run(ctx context.Context, f *form.Form, d Driver) error {
	err := run(ctx, f, d)
	if errors.Is(err, ErrAborted) {
		f.Cancel()
		return nil
	}
	if err != nil && f.Result() == form.StatusActive {
		f.Cancel()
	}
	return err
}

func run(ctx context.Context, f *form.Form, d Driver) error {
	if f.Title() != "" {
		if err := d.Info(ctx, f.Title()); err != nil {
			return err
		}
	}

	pending := f.View().Fields
	for {
		for _, fv := range pending {
			if fv.Section != "" {
				if err := d.Info(ctx, fv.Section); err != nil {
					return err
				}
			}
			if err := ask(ctx, f, d, fv); err != nil {
				return err
			}
		}

		if f.AttemptSubmit() {
			return nil
		}

		pending = pending[:0]
		for _, fv := range f.View().Fields {
			if fv.Error == "" {
				continue
			}
			if err := d.Info(ctx, "✗ "+fv.Error); err != nil {
				return err
			}
			fv.Section = ""
			pending = append(pending, fv)
		}
		logging.Debug("Re-asking failed fields", zap.Int("count", len(pending)))
	}
}

func ask(ctx context.Context, f *form.Form, d Driver, fv form.FieldView) error {
	switch fv.Kind {
	case field.KindText:
		return askText(ctx, f, d, fv)
	case field.KindSelect:
		return askSelect(ctx, f, d, fv)
	case field.KindCheckbox:
		return askCheckbox(ctx, f, d, fv)
	}
	return nil
}

func message(fv form.FieldView) string {
	if fv.Required {
		return fv.Label + " *"
	}
	return fv.Label
}

func askText(ctx context.Context, f *form.Form, d Driver, fv form.FieldView) error {
	// An empty answer keeps the current text, so a prefilled field is
	// cleared with ClearAnswer instead.
	resolve := func(s string) string {
		if fv.Text != "" && s == ClearAnswer {
			return ""
		}
		return s
	}
	help := fv.Placeholder
	if fv.Text != "" {
		help = fmt.Sprintf("Enter keeps %q, %q clears it", fv.Text, ClearAnswer)
	}

	answer, err := d.Input(ctx, InputConfig{
		Message: message(fv),
		Default: fv.Text,
		Help:    help,
		Validator: func(s string) error {
			msg, err := f.Check(fv.ID, resolve(s))
			if err != nil {
				return err
			}
			if msg != "" {
				return errors.New(msg)
			}
			return nil
		},
	})
	if err != nil {
		return err
	}
	return f.SetValue(fv.ID, resolve(answer))
}

func askSelect(ctx context.Context, f *form.Form, d Driver, fv form.FieldView) error {
	var labels []string
	offset := 0
	if !fv.Required {
		labels = append(labels, noneOption)
		offset = 1
	}
	for _, opt := range fv.Options {
		labels = append(labels, opt.Label)
	}

	def := 0
	if fv.Selected >= 0 {
		def = fv.Selected + offset
	}

	idx, err := d.Select(ctx, SelectConfig{
		Message:      message(fv),
		Options:      labels,
		DefaultIndex: def,
		PageSize:     10,
	})
	if err != nil {
		return err
	}

	idx -= offset
	if idx < 0 || idx >= len(fv.Options) {
		return f.SetValue(fv.ID, "")
	}
	return f.SetValue(fv.ID, fv.Options[idx].Value)
}

func askCheckbox(ctx context.Context, f *form.Form, d Driver, fv form.FieldView) error {
	checked, err := d.Confirm(ctx, ConfirmConfig{
		Message: message(fv),
		Default: fv.Checked,
	})
	if err != nil {
		return err
	}
	return f.SetValue(fv.ID, checked)
}
