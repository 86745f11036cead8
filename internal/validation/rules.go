package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// RequiredRule fails when text is empty.
type RequiredRule struct {
	// Message overrides the default "This field is required".
	Message string
}

// Required returns a validator that rejects empty text.
func Required() RequiredRule {
	return RequiredRule{}
}

// Validate implements Validator.
func (r RequiredRule) Validate(text string) error {
	if text != "" {
		return nil
	}
	if r.Message != "" {
		return fail(r.Message)
	}
	return fail("This field is required")
}

// EmailRule checks the basic shape of an email address.
type EmailRule struct{}

// Email returns a validator for email addresses.
func Email() EmailRule {
	return EmailRule{}
}

// Validate implements Validator.
func (EmailRule) Validate(text string) error {
	if text == "" {
		return nil
	}

	const msg = "Invalid email address"

	local, domain, ok := strings.Cut(text, "@")
	if !ok || strings.Contains(domain, "@") {
		return fail(msg)
	}
	if local == "" || domain == "" {
		return fail(msg)
	}
	if !strings.Contains(domain, ".") {
		return fail(msg)
	}
	for _, label := range strings.Split(domain, ".") {
		if label == "" {
			return fail(msg)
		}
	}
	return nil
}

// MinLengthRule requires at least N characters.
type MinLengthRule struct {
	N int
}

// MinLength returns a validator requiring at least n characters.
func MinLength(n int) MinLengthRule {
	return MinLengthRule{N: n}
}

// Validate implements Validator.
func (r MinLengthRule) Validate(text string) error {
	if text == "" {
		return nil
	}
	if utf8.RuneCountInString(text) < r.N {
		return fail(fmt.Sprintf("Must be at least %d characters", r.N))
	}
	return nil
}

// MaxLengthRule allows at most N characters.
type MaxLengthRule struct {
	N int
}

// MaxLength returns a validator allowing at most n characters.
func MaxLength(n int) MaxLengthRule {
	return MaxLengthRule{N: n}
}

// Validate implements Validator.
func (r MaxLengthRule) Validate(text string) error {
	if text == "" {
		return nil
	}
	if utf8.RuneCountInString(text) > r.N {
		return fail(fmt.Sprintf("Must be at most %d characters", r.N))
	}
	return nil
}

// PatternRule requires the whole text to match a regular expression.
type PatternRule struct {
	expr    string
	re      *regexp.Regexp
	message string
}

// Pattern compiles expr into a validator. The expression is anchored, so the
// entire text must match. message is returned on failure.
func Pattern(expr, message string) (*PatternRule, error) {
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", expr, err)
	}
	if message == "" {
		message = "Invalid format"
	}
	return &PatternRule{expr: expr, re: re, message: message}, nil
}

// MustPattern is like Pattern but panics if expr does not compile.
// Only use it with constant expressions.
func MustPattern(expr, message string) *PatternRule {
	p, err := Pattern(expr, message)
	if err != nil {
		panic(err)
	}
	return p
}

// Expr returns the unanchored source expression.
func (p *PatternRule) Expr() string {
	return p.expr
}

// Validate implements Validator.
func (p *PatternRule) Validate(text string) error {
	if text == "" {
		return nil
	}
	if !p.re.MatchString(text) {
		return fail(p.message)
	}
	return nil
}

// Expressions for the pre-built patterns
const (
	ZipCodeExpr = `\d{5}(-\d{4})?`
	PhoneExpr   = `(\+1[-.\s]?)?(\(?\d{3}\)?[-.\s]?)?\d{3}[-.\s]?\d{4}`
	DateExpr    = `\d{4}-\d{2}-\d{2}`
)

var (
	zipCode = MustPattern(ZipCodeExpr, "Invalid ZIP code format")
	phone   = MustPattern(PhoneExpr, "Invalid phone number format")
	date    = MustPattern(DateExpr, "Invalid date format (use YYYY-MM-DD)")
)

// ZipCode validates US ZIP codes (12345 or 12345-6789).
func ZipCode() *PatternRule {
	return zipCode.clone()
}

// Phone validates US phone numbers such as (555) 123-4567 or +1 555.123.4567.
func Phone() *PatternRule {
	return phone.clone()
}

// Date validates the YYYY-MM-DD shape. It does not check the calendar.
func Date() *PatternRule {
	return date.clone()
}

// clone returns a rule owned by the caller. The compiled expression is
// immutable and safe to share.
func (p *PatternRule) clone() *PatternRule {
	c := *p
	return &c
}
