// Package definition loads form definitions from YAML or JSON documents and
// turns them into forms.
//
// A definition lists fields and blocks in display order:
//
//	title: Shipping Information
//	output: shipping.json
//	fields:
//	  - id: name
//	    label: Full Name
//	    required: true
//	  - id: email
//	    validators: [email]
//	  - block: address
//	    group: shipping
//	    required: true
//	  - id: priority
//	    type: select
//	    options: [low, medium, high]
//	  - id: newsletter
//	    type: checkbox
//
// Validators are written either as a bare rule name or as a mapping:
//
//	validators:
//	  - rule: min_length
//	    value: 3
//	  - rule: pattern
//	    pattern: '[A-Z]{3}'
//	    message: Three capital letters
//
// Rule names are required, email, min_length, max_length, pattern, zip, phone
// and date.
package definition
