package domain

import "strings"

type Checklist struct {
	ID   string
	Name string
}

// IsBlankName reports whether a checklist or item name is empty once
// surrounding whitespace is removed.
func IsBlankName(name string) bool {
	return strings.TrimSpace(name) == ""
}
