package workflow

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/Veraticus/paydirt/internal/common"
	"github.com/Veraticus/paydirt/internal/model"
)

// EditField identifies which employee attribute a structured edit targets.
type EditField int

const (
	EditPayRate EditField = iota
	EditRegularHours
	EditOvertimeHours
)

func (f EditField) String() string {
	switch f {
	case EditPayRate:
		return "pay rate"
	case EditRegularHours:
		return "regular hours"
	case EditOvertimeHours:
		return "overtime hours"
	default:
		return "unknown"
	}
}

// Edit is a parsed correction command such as "change Bob's rate to $25".
type Edit struct {
	Name  string
	Field EditField
	Value float64
}

// maxNameDistance bounds fuzzy matching of employee names so that a typo
// like "Jhon Doe" still resolves but "Jane Roe" does not silently hit
// "John Doe".
const maxNameDistance = 2

var editPattern = regexp.MustCompile(
	`(?i)^(?:please\s+)?(?:change|update|set)\s+(.+?)(?:'s)?\s+` +
		`(pay\s*rate|payrate|rate|regular\s+hours?|overtime(?:\s+hours?)?|hours?)\s+` +
		`to\s+\$?(\d+(?:\.\d+)?)\s*(?:/\s*hr|per\s+hour|dollars?|hours?)?\s*[.!]?$`,
)

// ParseEdit attempts to interpret a message as a structured roster edit.
// The grammar is deliberately narrow: verbs change/update/set, a possessive
// employee name, a recognized field, and a non-negative numeric value.
// Anything else is left for the conversational path.
func ParseEdit(message string) (Edit, bool) {
	m := editPattern.FindStringSubmatch(strings.TrimSpace(message))
	if m == nil {
		return Edit{}, false
	}

	value, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return Edit{}, false
	}

	field := EditRegularHours
	switch normalized := strings.Join(strings.Fields(strings.ToLower(m[2])), " "); {
	case strings.Contains(normalized, "rate"):
		field = EditPayRate
	case strings.Contains(normalized, "overtime"):
		field = EditOvertimeHours
	}

	name := strings.TrimSpace(m[1])
	name = strings.TrimSuffix(name, "'s")
	if name == "" {
		return Edit{}, false
	}

	return Edit{Name: name, Field: field, Value: value}, true
}

// ResolveName finds the roster entry an edit refers to. Exact matches
// (case-insensitive) win; otherwise the closest name within maxNameDistance
// is used. A tie between two distinct candidates is treated as not found
// rather than guessing.
func ResolveName(roster model.Roster, name string) (string, error) {
	target := strings.ToLower(strings.TrimSpace(name))

	for _, emp := range roster {
		if strings.ToLower(emp.Name) == target {
			return emp.Name, nil
		}
	}

	best := ""
	bestDistance := maxNameDistance + 1
	ambiguous := false
	for _, emp := range roster {
		d := levenshtein.ComputeDistance(target, strings.ToLower(emp.Name))
		switch {
		case d < bestDistance:
			best, bestDistance, ambiguous = emp.Name, d, false
		case d == bestDistance && emp.Name != best:
			ambiguous = true
		}
	}
	if best == "" || bestDistance > maxNameDistance {
		return "", fmt.Errorf("no employee named %q: %w", name, common.ErrNotFound)
	}
	if ambiguous {
		return "", fmt.Errorf("employee name %q is ambiguous: %w", name, common.ErrNotFound)
	}
	return best, nil
}

// ApplyEdit returns a copy of the roster with the edit applied. The input
// roster is never mutated.
func ApplyEdit(roster model.Roster, edit Edit) (model.Roster, string, error) {
	resolved, err := ResolveName(roster, edit.Name)
	if err != nil {
		return nil, "", err
	}

	out := roster.Clone()
	for i := range out {
		if out[i].Name != resolved {
			continue
		}
		switch edit.Field {
		case EditPayRate:
			out[i].PayRate = edit.Value
		case EditRegularHours:
			out[i].RegularHours = edit.Value
		case EditOvertimeHours:
			out[i].OvertimeHours = edit.Value
		}
		return out, resolved, nil
	}
	return nil, "", fmt.Errorf("no employee named %q: %w", edit.Name, common.ErrNotFound)
}
