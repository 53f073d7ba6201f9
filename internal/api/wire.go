package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/alexanderramin/checklist/internal/domain"
)

// envelope is the {"data": ...} wrapper every response body uses.
type envelope[T any] struct {
	Data T `json:"data"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginData struct {
	Token string `json:"token"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type checklistRequest struct {
	Name string `json:"name"`
}

type itemRequest struct {
	ItemName string `json:"itemName"`
}

type checklistDTO struct {
	ID   flexID `json:"id"`
	Name string `json:"name"`
}

type itemDTO struct {
	ID        flexID `json:"id"`
	Name      string `json:"name"`
	ItemName  string `json:"itemName"`
	Completed bool   `json:"itemCompletionStatus"`
}

func (d checklistDTO) toDomain() domain.Checklist {
	return domain.Checklist{ID: string(d.ID), Name: d.Name}
}

func (d itemDTO) toDomain() domain.Item {
	return domain.Item{
		ID:        string(d.ID),
		Name:      d.Name,
		ItemName:  d.ItemName,
		Completed: d.Completed,
	}
}

// flexID accepts identifiers sent either as JSON numbers or strings.
type flexID string

func (id *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a number or string: %w", err)
	}
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		*id = flexID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = flexID(n.String())
	return nil
}
