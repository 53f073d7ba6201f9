package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBlankName is returned when a checklist or item name is empty after
// trimming. No request is made in that case.
var ErrBlankName = errors.New("name must not be blank")

// requireName rejects a name that is empty after trimming. The name itself
// is sent as typed.
func requireName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrBlankName
	}
	return nil
}

func requireID(kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s id is required", kind)
	}
	return nil
}
