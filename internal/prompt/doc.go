// Package prompt fills a form one question at a time, for terminals where a
// full-screen interface is unavailable or unwanted (pipes, CI logs, screen
// readers).
//
// Questions are asked through a Driver. The default driver is backed by
// survey; tests substitute a scripted one.
//
//	err := prompt.Run(ctx, f, prompt.NewSurveyDriver())
//
// Text answers are checked with the field's own validators before they are
// accepted. Pressing Enter keeps a prefilled value; answering "-" clears it.
// After the last question the form is submitted; fields that still
// fail are reported and asked again.
package prompt
