package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/muurk/termform/internal/block"
	"github.com/muurk/termform/internal/field"
	"github.com/muurk/termform/internal/form"
	"github.com/muurk/termform/internal/validation"
)

// stubDriver answers from scripted queues. Input answers that fail the
// validator are recorded and the next answer is used, the way survey re-asks.
type stubDriver struct {
	inputs    []string
	selectIdx []int
	confirm   []bool

	inputPos   int
	selectPos  int
	confirmPos int

	rejected []string
	infos    []string
	messages []string
	selects  []SelectConfig
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.messages = append(s.messages, cfg.Message)
	for {
		if s.inputPos >= len(s.inputs) {
			return "", errors.New("no input scripted")
		}
		val := s.inputs[s.inputPos]
		s.inputPos++
		if cfg.Validator != nil {
			if err := cfg.Validator(val); err != nil {
				s.rejected = append(s.rejected, err.Error())
				continue
			}
		}
		return val, nil
	}
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.messages = append(s.messages, cfg.Message)
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.messages = append(s.messages, cfg.Message)
	s.selects = append(s.selects, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

type abortDriver struct{ stubDriver }

func (a *abortDriver) Confirm(context.Context, ConfirmConfig) (bool, error) {
	return false, ErrAborted
}

func priorityOptions() []field.Option {
	return []field.Option{{Value: "low", Label: "Low"}, {Value: "high", Label: "High"}}
}

func TestRunFillsAndSubmits(t *testing.T) {
	f, err := form.NewBuilder("Signup").
		Field(field.Spec{ID: "name", Label: "Name", Required: true}).
		Field(field.Spec{ID: "email", Label: "Email", Validators: []validation.Validator{validation.Email()}}).
		Field(field.Spec{ID: "priority", Label: "Priority", Kind: field.KindSelect, Options: priorityOptions()}).
		Field(field.Spec{ID: "newsletter", Label: "Newsletter", Kind: field.KindCheckbox}).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	d := &stubDriver{
		inputs:    []string{"", "Ann", "not-an-email", "ann@example.com"},
		selectIdx: []int{2},
		confirm:   []bool{true},
	}
	if err := Run(context.Background(), f, d); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if f.Result() != form.StatusSubmitted {
		t.Fatalf("Result() = %v, want submitted", f.Result())
	}
	want := map[string]any{"name": "Ann", "email": "ann@example.com", "priority": "high", "newsletter": true}
	if diff := cmp.Diff(want, f.ToFlatMap().Map()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Name is required", "Invalid email address"}, d.rejected); diff != "" {
		t.Errorf("rejected mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"(none)", "Low", "High"}, d.selects[0].Options); diff != "" {
		t.Errorf("select options mismatch (-want +got):\n%s", diff)
	}
	if d.messages[0] != "Name *" {
		t.Errorf("required prompt = %q, want %q", d.messages[0], "Name *")
	}
}

func TestRunClearsPrefilledText(t *testing.T) {
	f, err := form.NewBuilder("Profile").
		Field(field.Spec{ID: "nickname", Label: "Nickname", Value: "Annie"}).
		Field(field.Spec{ID: "city", Label: "City", Value: "Oslo"}).
		Field(field.Spec{ID: "motto", Label: "Motto"}).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	d := &stubDriver{inputs: []string{ClearAnswer, "Oslo", ClearAnswer}}
	if err := Run(context.Background(), f, d); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := map[string]any{"nickname": "", "city": "Oslo", "motto": ClearAnswer}
	if diff := cmp.Diff(want, f.ToFlatMap().Map()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestRunReasksFailingFields(t *testing.T) {
	f, err := form.NewBuilder("Terms").
		Field(field.Spec{ID: "name"}).
		Field(field.Spec{ID: "terms", Label: "Terms", Kind: field.KindCheckbox, Required: true}).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	d := &stubDriver{inputs: []string{"Bo"}, confirm: []bool{false, true}}
	if err := Run(context.Background(), f, d); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if f.Result() != form.StatusSubmitted {
		t.Fatalf("Result() = %v, want submitted", f.Result())
	}
	if d.inputPos != 1 {
		t.Errorf("name asked %d times, want 1", d.inputPos)
	}
	if diff := cmp.Diff([]string{"Terms", "✗ Terms must be checked"}, d.infos); diff != "" {
		t.Errorf("infos mismatch (-want +got):\n%s", diff)
	}
}

func TestRunRequiredSelectHasNoNoneOption(t *testing.T) {
	f, err := form.NewBuilder("").
		Field(field.Spec{ID: "p", Kind: field.KindSelect, Options: priorityOptions(), Required: true, Value: "high"}).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	d := &stubDriver{selectIdx: []int{0}}
	if err := Run(context.Background(), f, d); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	cfg := d.selects[0]
	if len(cfg.Options) != 2 || cfg.DefaultIndex != 1 {
		t.Errorf("select config = %+v", cfg)
	}
	if v, _ := f.ToFlatMap().Get("p"); v != "low" {
		t.Errorf("p = %v, want low", v)
	}
	if len(d.infos) != 0 {
		t.Errorf("untitled form should not print a title: %v", d.infos)
	}
}

func TestRunSectionsAnnounced(t *testing.T) {
	f, err := form.NewBuilder("Trip").
		Block(block.Descriptor{Kind: block.KindDateRange, Group: "trip", Title: "Dates"}).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	d := &stubDriver{inputs: []string{"2024-13", "2024-01-01", "2024-01-05"}}
	if err := Run(context.Background(), f, d); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if diff := cmp.Diff([]string{"Trip", "Dates"}, d.infos); diff != "" {
		t.Errorf("infos mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Invalid date format (use YYYY-MM-DD)"}, d.rejected); diff != "" {
		t.Errorf("rejected mismatch (-want +got):\n%s", diff)
	}
}

func TestRunAbortCancels(t *testing.T) {
	f, err := form.NewBuilder("Abort").
		Field(field.Spec{ID: "ok", Kind: field.KindCheckbox}).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	if err := Run(context.Background(), f, &abortDriver{}); err != nil {
		t.Fatalf("Run() error = %v, want nil on abort", err)
	}
	if f.Result() != form.StatusCancelled {
		t.Errorf("Result() = %v, want cancelled", f.Result())
	}
}

func TestRunDriverErrorCancels(t *testing.T) {
	f, err := form.NewBuilder("Broken").Field(field.Spec{ID: "x"}).Build()
	if err != nil {
		t.Fatal(err)
	}

	err = Run(context.Background(), f, &stubDriver{})
	if err == nil {
		t.Fatal("Run() should return the driver error")
	}
	if f.Result() != form.StatusCancelled {
		t.Errorf("Result() = %v, want cancelled", f.Result())
	}
}
