// Package model defines the core domain types used throughout the application.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEmployee indicates an employee record failed validation.
var ErrInvalidEmployee = errors.New("invalid employee record")

// Employee represents one employee's hours and pay rate for a pay period.
// Name is the unique key within a roster; there is no separate identifier.
// A PayRate of 0 is legal and means "rate not yet supplied".
type Employee struct {
	Name          string  `json:"name"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	PayRate       float64 `json:"pay_rate"`
}

// Validate checks required fields and non-negativity. Negative values are
// rejected outright, never clamped.
func (e Employee) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidEmployee)
	}
	if e.RegularHours < 0 {
		return fmt.Errorf("%w: %s: negative regular hours", ErrInvalidEmployee, e.Name)
	}
	if e.OvertimeHours < 0 {
		return fmt.Errorf("%w: %s: negative overtime hours", ErrInvalidEmployee, e.Name)
	}
	if e.PayRate < 0 {
		return fmt.Errorf("%w: %s: negative pay rate", ErrInvalidEmployee, e.Name)
	}
	return nil
}

// Roster is an ordered collection of employee records keyed by unique name.
// Order is preserved for display only; it carries no merge semantics.
type Roster []Employee

// Validate validates every record in the roster.
func (r Roster) Validate() error {
	for i, emp := range r {
		if err := emp.Validate(); err != nil {
			return fmt.Errorf("record at index %d: %w", i, err)
		}
	}
	return nil
}

// Index builds a name-keyed map of the roster. Duplicate names resolve
// last-write-wins.
func (r Roster) Index() map[string]Employee {
	idx := make(map[string]Employee, len(r))
	for _, emp := range r {
		idx[emp.Name] = emp
	}
	return idx
}

// Get returns the record with the given name, if present.
func (r Roster) Get(name string) (Employee, bool) {
	for i := len(r) - 1; i >= 0; i-- {
		if r[i].Name == name {
			return r[i], true
		}
	}
	return Employee{}, false
}

// Names returns the roster's names in display order, deduplicated
// last-write-wins like Index.
func (r Roster) Names() []string {
	seen := make(map[string]bool, len(r))
	names := make([]string, 0, len(r))
	for _, emp := range r {
		if !seen[emp.Name] {
			seen[emp.Name] = true
			names = append(names, emp.Name)
		}
	}
	return names
}

// Clone returns an independent copy of the roster.
func (r Roster) Clone() Roster {
	if r == nil {
		return nil
	}
	out := make(Roster, len(r))
	copy(out, r)
	return out
}
