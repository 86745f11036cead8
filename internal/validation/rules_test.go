package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"Invalid: empty", "", true},
		{"Valid: text", "Ann", false},
		{"Valid: single space", " ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Required().Validate(tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("Required().Validate(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
		})
	}

	custom := RequiredRule{Message: "Name is required"}
	if got := Message(custom.Validate("")); got != "Name is required" {
		t.Errorf("custom message = %q, want %q", got, "Name is required")
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"Valid: empty (owned by Required)", "", false},
		{"Valid: simple", "ann@example.com", false},
		{"Valid: subdomain", "ann.lee@mail.example.co.uk", false},
		{"Invalid: no at", "ann.example.com", true},
		{"Invalid: two at", "ann@@example.com", true},
		{"Invalid: at in domain", "ann@ex@ample.com", true},
		{"Invalid: empty local", "@example.com", true},
		{"Invalid: empty domain", "ann@", true},
		{"Invalid: undotted domain", "ann@localhost", true},
		{"Invalid: trailing dot", "ann@example.", true},
		{"Invalid: leading dot", "ann@.example.com", true},
		{"Invalid: double dot", "ann@example..com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Email().Validate(tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("Email().Validate(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
		})
	}
}

func TestLengthRules(t *testing.T) {
	tests := []struct {
		name    string
		v       Validator
		text    string
		wantErr bool
	}{
		{"MinLength: empty skipped", MinLength(3), "", false},
		{"MinLength: too short", MinLength(3), "ab", true},
		{"MinLength: exact", MinLength(3), "abc", false},
		{"MinLength: counts runes", MinLength(3), "héé", false},
		{"MaxLength: empty skipped", MaxLength(0), "", false},
		{"MaxLength: exact", MaxLength(3), "abc", false},
		{"MaxLength: too long", MaxLength(3), "abcd", true},
		{"MaxLength: counts runes", MaxLength(2), "éé", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate(tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
		})
	}

	if got := Message(MinLength(5).Validate("abc")); got != "Must be at least 5 characters" {
		t.Errorf("MinLength message = %q", got)
	}
	if got := Message(MaxLength(2).Validate("abc")); got != "Must be at most 2 characters" {
		t.Errorf("MaxLength message = %q", got)
	}
}

func TestPrebuiltPatterns(t *testing.T) {
	tests := []struct {
		name    string
		v       Validator
		text    string
		wantErr bool
	}{
		{"Zip: five digits", ZipCode(), "12345", false},
		{"Zip: zip+4", ZipCode(), "12345-6789", false},
		{"Zip: empty skipped", ZipCode(), "", false},
		{"Zip: four digits", ZipCode(), "1234", true},
		{"Zip: trailing text", ZipCode(), "12345abc", true},
		{"Zip: leading text", ZipCode(), "x12345", true},
		{"Phone: dashed", Phone(), "555-123-4567", false},
		{"Phone: parenthesised", Phone(), "(555) 123-4567", false},
		{"Phone: country code", Phone(), "+1 555.123.4567", false},
		{"Phone: local only", Phone(), "1234567", false},
		{"Phone: letters", Phone(), "555-CALL-NOW", true},
		{"Date: valid shape", Date(), "2024-02-29", false},
		{"Date: slashes", Date(), "2024/02/29", true},
		{"Date: short year", Date(), "24-02-29", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate(tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
		})
	}
}

func TestPattern(t *testing.T) {
	p, err := Pattern(`[A-Z]{3}`, "Use three capitals")
	if err != nil {
		t.Fatalf("Pattern() error = %v", err)
	}
	if err := p.Validate("ABC"); err != nil {
		t.Errorf("Validate(ABC) error = %v", err)
	}
	if got := Message(p.Validate("ABCD")); got != "Use three capitals" {
		t.Errorf("partial match should fail with custom message, got %q", got)
	}
	if p.Expr() != `[A-Z]{3}` {
		t.Errorf("Expr() = %q", p.Expr())
	}

	// Alternation must not escape the anchors
	alt, err := Pattern(`a|b`, "")
	if err != nil {
		t.Fatalf("Pattern() error = %v", err)
	}
	if err := alt.Validate("ab"); err == nil {
		t.Error("alternation should still require a full match")
	}
	if got := Message(alt.Validate("c")); got != "Invalid format" {
		t.Errorf("default message = %q", got)
	}

	if _, err := Pattern(`(`, "bad"); err == nil {
		t.Error("Pattern() with invalid expression should fail")
	}
}

func TestPrebuiltPatternsAreIndependent(t *testing.T) {
	a, b := ZipCode(), ZipCode()
	if a == b {
		t.Error("ZipCode() should return a fresh validator per call")
	}
}

func TestRunShortCircuits(t *testing.T) {
	var calls []string
	record := func(name string, result error) Validator {
		return Func(func(string) error {
			calls = append(calls, name)
			return result
		})
	}

	err := Run("text",
		record("first", nil),
		record("second", errors.New("second failed")),
		record("third", errors.New("third failed")),
	)

	if err == nil || err.Error() != "second failed" {
		t.Fatalf("Run() error = %v, want second failure", err)
	}
	if strings.Join(calls, ",") != "first,second" {
		t.Errorf("Run() evaluated %v, want first,second", calls)
	}

	if err := Run("text"); err != nil {
		t.Errorf("Run() with no validators error = %v", err)
	}
	if err := Run("text", nil, MinLength(1)); err != nil {
		t.Errorf("Run() should skip nil validators, got %v", err)
	}
}

func TestMessage(t *testing.T) {
	if Message(nil) != "" {
		t.Error("Message(nil) should be empty")
	}
	if Message(errors.New("custom failure")) != "custom failure" {
		t.Error("Message() should fall back to Error() for custom validators")
	}
}
