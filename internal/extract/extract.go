// Package extract pulls structured fields out of unstructured slide text
// using ordered regular-expression cascades. It is best-effort by design:
// absence of a match leaves a field empty, and nothing in here returns an
// error.
package extract

import (
	"strconv"
	"strings"
)

// Fields is the partial record produced by one extraction pass. Pointer
// fields distinguish "not found" from zero.
type Fields struct {
	ClientName string
	PrizeName  string
	UnitPrice  *int
	Quantity   *int
	Vendor     string
	Period     string
}

// Extract runs every field cascade over rawText. First matching rule wins
// per field; there is no scoring across rules and no merging of matches.
func Extract(rawText string) Fields {
	f := Fields{
		PrizeName: firstText(rawText, PrizeRules),
		UnitPrice: firstNumber(rawText, PriceRules),
		Quantity:  firstNumber(rawText, QuantityRules),
		Vendor:    firstText(rawText, VendorRules),
		Period:    firstText(rawText, PeriodRules),
	}
	if c := firstText(rawText, ClientRules); c != "" {
		f.ClientName = strings.TrimSuffix(c, "様")
	}
	return f
}

// firstText returns the trimmed first capturing group of the first rule that
// matches, or "".
func firstText(text string, rules []Rule) string {
	for _, r := range rules {
		m := r.Pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) > 1 {
			return strings.TrimSpace(m[1])
		}
		return strings.TrimSpace(m[0])
	}
	return ""
}

// firstNumber returns the first parseable value across the cascade.
// Thousands separators are stripped before parsing; rules with a Fixed value
// short-circuit the parse.
func firstNumber(text string, rules []Rule) *int {
	for _, r := range rules {
		m := r.Pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if r.Fixed != 0 {
			v := r.Fixed
			return &v
		}
		if len(m) < 2 {
			continue
		}
		n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			continue
		}
		return &n
	}
	return nil
}
