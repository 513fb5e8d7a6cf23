// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize cleans announcement bodies and other rich-text input
// before it is forwarded to the platform. The policy is UGC plus tables,
// since announcement content is frequently pasted from rich editors. What
// the platform stores is clean; dashboards serve it as stored.
package htmlsanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()

	// Pasted tables arrive with class and inline layout styling.
	tableEls := []string{"table", "caption", "thead", "tbody", "tfoot", "tr", "td", "th"}
	p.AllowAttrs("class").OnElements(tableEls...)
	p.AllowAttrs("style").OnElements(tableEls...)
	p.AllowStyles(
		"width", "height", "text-align", "vertical-align",
		"background-color", "color", "border", "border-collapse",
		"padding", "margin",
	).OnElements(tableEls...)

	return p
}

// Sanitize removes unsafe markup from s. Safe elements and attributes pass
// through unchanged.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}
