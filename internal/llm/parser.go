package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/paydirt/internal/model"
)

// cleanMarkdownWrapper strips code fences that models sometimes wrap around
// JSON despite instructions not to.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		if idx := strings.Index(content, "\n"); idx >= 0 {
			content = content[idx+1:]
		}
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}

	return strings.TrimSpace(content)
}

// extractedEmployee tolerates the field-name drift vision models produce.
type extractedEmployee struct {
	Name          string   `json:"name"`
	RegularHours  *float64 `json:"regular_hours"`
	OvertimeHours *float64 `json:"overtime_hours"`
	PayRate       *float64 `json:"pay_rate"`
	PayRateAlt    *float64 `json:"payrate"`
}

// parseEmployeeList parses an extraction response into a roster. It accepts
// either {"employees":[...]} or a bare JSON array. Missing numeric fields
// default to 0; records without a name are dropped with a warning since the
// extractor contract is best effort, not authoritative.
func parseEmployeeList(content string) (model.Roster, error) {
	content = cleanMarkdownWrapper(content)

	var wrapped struct {
		Employees []extractedEmployee `json:"employees"`
	}

	candidates := wrapped.Employees
	if err := json.Unmarshal([]byte(content), &wrapped); err == nil && wrapped.Employees != nil {
		candidates = wrapped.Employees
	} else {
		var bare []extractedEmployee
		if err := json.Unmarshal([]byte(content), &bare); err != nil {
			return nil, fmt.Errorf("response is not an employee list: %w", err)
		}
		candidates = bare
	}

	roster := make(model.Roster, 0, len(candidates))
	for _, cand := range candidates {
		if strings.TrimSpace(cand.Name) == "" {
			slog.Warn("Dropping extracted record without a name")
			continue
		}

		emp := model.Employee{Name: strings.TrimSpace(cand.Name)}
		if cand.RegularHours != nil {
			emp.RegularHours = *cand.RegularHours
		}
		if cand.OvertimeHours != nil {
			emp.OvertimeHours = *cand.OvertimeHours
		}
		switch {
		case cand.PayRate != nil:
			emp.PayRate = *cand.PayRate
		case cand.PayRateAlt != nil:
			emp.PayRate = *cand.PayRateAlt
		}

		roster = append(roster, emp)
	}

	return roster, nil
}
