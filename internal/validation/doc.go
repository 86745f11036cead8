// Package validation provides the validators that run against form field text.
//
// A Validator is a pure function of the text it is given: it must not inspect
// anything else and must not have side effects. A field runs its validators in
// declaration order and stops at the first failure, whose message becomes the
// field's error.
//
// # Built-in Validators
//
//   - Required: fails on empty text
//   - Email: single '@', non-empty local part, dotted domain
//   - MinLength / MaxLength: rune count bounds, skipped on empty text
//   - Pattern: anchored regular expression match, skipped on empty text
//
// Pre-built patterns exist for US ZIP codes, US phone numbers and
// YYYY-MM-DD dates:
//
//	validators := []validation.Validator{
//	    validation.MinLength(5),
//	    validation.ZipCode(),
//	}
//	if err := validation.Run("12345-6789", validators...); err != nil {
//	    fmt.Println(err)
//	}
//
// # Custom Validators
//
// Any type implementing Validator composes with the built-ins. Plain
// functions can be adapted with Func:
//
//	noSpaces := validation.Func(func(text string) error {
//	    if strings.Contains(text, " ") {
//	        return errors.New("Must not contain spaces")
//	    }
//	    return nil
//	})
//
// Empty text is owned by Required; every other built-in passes on empty text so
// an optional field is not reported twice.
package validation
