// Package tui drives a form with Bubble Tea.
//
// The Model owns the form for the lifetime of the program: key messages are
// translated into form key events, the form is re-rendered from its View
// snapshot, and the program quits as soon as the form is submitted or
// cancelled.
//
// Usage:
//
//	f, _ := def.Build()
//	if err := tui.Run(ctx, f, tui.Options{Theme: tui.DarkTheme()}); err != nil {
//	    return err
//	}
//	switch f.Result() {
//	case form.StatusSubmitted:
//	    // write output
//	case form.StatusCancelled:
//	    // nothing to do
//	}
//
// # Screen Layout
//
// Every screen is wrapped by RenderApplicationContainer:
//
//	┌──────────────────────────────────────────────┐
//	│ Shipping Information            termform v1  │
//	├──────────────────────────────────────────────┤
//	│ ▸ Full Name *   [John Doe                  ] │
//	│   Email *       [                          ] │
//	│                                              │
//	│               [ Submit ]                     │
//	├──────────────────────────────────────────────┤
//	│ tab next • shift+tab prev • esc cancel       │
//	└──────────────────────────────────────────────┘
//
// The body scrolls with a viewport so the focused field stays visible on
// short terminals. An open dropdown shows at most MaxDropdownRows options.
package tui
