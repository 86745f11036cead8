// Package ui renders the non-interactive output of the termform CLI: command
// headers, result boxes, value tables and the overwrite confirmation.
//
// These components follow a "print and move on" pattern. They are written
// before and after the interactive form runs, never while it owns the
// terminal.
//
// # Usage Pattern
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Fill Form", "termform run shipping.yaml", []ui.Detail{
//	    {Key: "Definition", Value: "shipping.yaml"},
//	    {Key: "Output", Value: "shipping.json"},
//	})
//	// ... run the form ...
//	p.PrintSuccess("Form submitted", []ui.Detail{{Key: "Written", Value: "shipping.json"}})
//
// # Logging Integration
//
// Logging is controlled by the TERMFORM_LOG_LEVEL environment variable or the
// --log-level flag. When unset, zap logging is silent so that only the
// curated output is shown.
package ui
