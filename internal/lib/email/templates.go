package email

import "embed"

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateReceipt corresponds to templates/receipt.html
	TemplateReceipt Template = "receipt"
)

// Templates are embedded so the binary does not depend on a
// templates/ directory at runtime.
//
//go:embed templates/*.html
var templates embed.FS
