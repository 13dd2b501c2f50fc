package schema

import (
	"strconv"
	"strings"
)

// FormatValue renders an optional numeric attribute, "-" when absent.
func FormatValue(v *float64, precision int) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', precision, 64)
}

// Float64Ptr returns a pointer to v.
func Float64Ptr(v float64) *float64 {
	return &v
}

// StringPtr returns a pointer to s, or nil for a blank string.
func StringPtr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// SplitProsCons separates advantages from disadvantages, keeping input order.
func SplitProsCons(items []ProCon) (pros, cons []string) {
	for _, pc := range items {
		switch pc.Kind {
		case ProKind:
			pros = append(pros, pc.Description)
		case ConKind:
			cons = append(cons, pc.Description)
		}
	}
	return pros, cons
}

// ParseProConKind accepts "pro"/"con" and the "advantage"/"disadvantage" forms.
func ParseProConKind(s string) (ProConKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pro", "advantage", "avantaj":
		return ProKind, true
	case "con", "disadvantage", "dezavantaj":
		return ConKind, true
	default:
		return "", false
	}
}
