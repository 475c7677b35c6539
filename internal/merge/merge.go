// Package merge implements the deterministic roster merge with automatic
// conflict resolution.
package merge

import (
	"fmt"
	"strings"

	"github.com/Veraticus/paydirt/internal/model"
)

// Merge combines a baseline roster with a batch of incoming updates.
//
// Hours always come from the update record: the incoming document reflects the
// hours actually worked this period. The pay rate comes from the update only
// when it is strictly positive; a zero rate means the document omitted it, and
// the stored rate must not be erased. Records present only in the baseline are
// carried over unchanged, so a partial document never drops an employee.
//
// Output order is baseline order first, then novel updates in update order.
// Duplicate names within a single input resolve last-write-wins.
func Merge(existing, updates model.Roster) model.Roster {
	merged := make(map[string]model.Employee, len(existing)+len(updates))
	order := make([]string, 0, len(existing)+len(updates))

	for _, emp := range existing {
		if _, ok := merged[emp.Name]; !ok {
			order = append(order, emp.Name)
		}
		merged[emp.Name] = emp
	}

	for _, upd := range updates {
		prior, ok := merged[upd.Name]
		if !ok {
			merged[upd.Name] = upd
			order = append(order, upd.Name)
			continue
		}

		next := model.Employee{
			Name:          upd.Name,
			RegularHours:  upd.RegularHours,
			OvertimeHours: upd.OvertimeHours,
			PayRate:       upd.PayRate,
		}
		if upd.PayRate <= 0 {
			next.PayRate = prior.PayRate
		}
		merged[upd.Name] = next
	}

	out := make(model.Roster, 0, len(order))
	for _, name := range order {
		out = append(out, merged[name])
	}
	return out
}

// Summarize reports what a merge of existing and updates did, per name.
func Summarize(existing, updates model.Roster) model.MergeSummary {
	var summary model.MergeSummary
	existingIdx := existing.Index()
	updateIdx := updates.Index()

	for _, name := range updates.Names() {
		if _, ok := existingIdx[name]; ok {
			summary.Updated = append(summary.Updated, name)
			if updateIdx[name].PayRate <= 0 && existingIdx[name].PayRate > 0 {
				summary.RatePreserved = append(summary.RatePreserved, name)
			}
		} else {
			summary.Added = append(summary.Added, name)
		}
	}

	for _, name := range existing.Names() {
		if _, ok := updateIdx[name]; !ok {
			summary.Carried = append(summary.Carried, name)
		}
	}

	return summary
}

// FormatRoster renders a roster as one bullet line per employee, matching the
// presentation the conversational layer falls back to.
func FormatRoster(roster model.Roster) string {
	lines := make([]string, 0, len(roster))
	for _, emp := range roster {
		lines = append(lines, fmt.Sprintf("• %s: %gh regular, %gh overtime @ $%.2f/hr",
			emp.Name, emp.RegularHours, emp.OvertimeHours, emp.PayRate))
	}
	return strings.Join(lines, "\n")
}

// FormatSummary renders a deterministic, human-readable account of a merge.
// It is shown to the user when the conversational responder is unavailable and
// fed to it as grounding context otherwise.
func FormatSummary(merged model.Roster, summary model.MergeSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Merged employee data (%d employees):\n", len(merged.Names()))
	b.WriteString(FormatRoster(merged))
	b.WriteString("\n\nConflict resolution applied:\n")
	fmt.Fprintf(&b, "• Hours updated from document: %s\n", nameList(summary.Updated))
	fmt.Fprintf(&b, "• New employees added: %s\n", nameList(summary.Added))
	fmt.Fprintf(&b, "• Carried over unchanged: %s\n", nameList(summary.Carried))
	fmt.Fprintf(&b, "• Stored pay rate preserved (document showed $0): %s", nameList(summary.RatePreserved))
	return b.String()
}

func nameList(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
