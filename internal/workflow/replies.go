package workflow

import (
	"fmt"
	"strings"

	"github.com/Veraticus/paydirt/internal/merge"
	"github.com/Veraticus/paydirt/internal/model"
	"github.com/Veraticus/paydirt/internal/payroll"
)

// System prompts handed to the responder. They carry the structured facts
// of the turn so the responder only paraphrases; it never decides anything.

const responderPreamble = `You are a payroll assistant helping an administrator
review employee hours and pay. Be concise and factual. Never invent employee
names, hours, or dollar amounts: repeat only the figures given below.`

func mergePrompt(merged model.Roster, summary model.MergeSummary) string {
	var b strings.Builder
	b.WriteString(responderPreamble)
	b.WriteString("\n\nA document was just processed and merged with the existing roster.\n")
	b.WriteString("Present this merge result to the administrator and ask them to confirm\n")
	b.WriteString("before payroll is generated. Do not claim payroll has been run yet.\n\n")
	b.WriteString(merge.FormatSummary(merged, summary))
	return b.String()
}

func mergeFallback(merged model.Roster, summary model.MergeSummary) string {
	var b strings.Builder
	b.WriteString(merge.FormatSummary(merged, summary))
	b.WriteString("\n\nReply \"confirm\" to approve this roster and generate payroll, or tell me what to change.")
	return b.String()
}

func payrollPrompt(report *model.PayrollReport) string {
	var b strings.Builder
	b.WriteString(responderPreamble)
	b.WriteString("\n\nPayroll has just been generated. Present the report below to the\n")
	b.WriteString("administrator exactly as given.\n\n")
	b.WriteString(payroll.FormatReport(report))
	return b.String()
}

func payrollFallback(report *model.PayrollReport) string {
	return payroll.FormatReport(report)
}

func pendingReminderFallback(merged model.Roster) string {
	var b strings.Builder
	b.WriteString("The merged roster is still waiting for your approval:\n\n")
	b.WriteString(merge.FormatRoster(merged))
	b.WriteString("\n\nReply \"confirm\" to generate payroll, or tell me what to change.")
	return b.String()
}

func pendingReminderPrompt(merged model.Roster) string {
	var b strings.Builder
	b.WriteString(responderPreamble)
	b.WriteString("\n\nA merged roster is awaiting the administrator's confirmation. They\n")
	b.WriteString("said something that was neither a confirmation nor a recognized edit.\n")
	b.WriteString("Answer their question if you can from the roster below, then remind\n")
	b.WriteString("them the merge still needs a \"confirm\" before payroll runs.\n\n")
	b.WriteString(merge.FormatRoster(merged))
	return b.String()
}

func editAppliedFallback(resolved string, edit Edit, roster model.Roster, pending bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Updated %s for %s to %g.\n\n", edit.Field, resolved, edit.Value)
	b.WriteString(merge.FormatRoster(roster))
	if pending {
		b.WriteString("\n\nReply \"confirm\" to approve this roster and generate payroll.")
	}
	return b.String()
}

func editFailedFallback(edit Edit, roster model.Roster) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I couldn't find an employee matching %q. Current names:\n", edit.Name)
	for _, name := range roster.Names() {
		fmt.Fprintf(&b, "• %s\n", name)
	}
	return b.String()
}

func idlePrompt(roster model.Roster) string {
	var b strings.Builder
	b.WriteString(responderPreamble)
	b.WriteString("\n\nThere is no pending merge. Answer the administrator's question using\n")
	b.WriteString("the current roster below. If they want to process new hours, ask them\n")
	b.WriteString("to upload a timesheet document.\n\nCurrent roster:\n")
	b.WriteString(merge.FormatRoster(roster))
	return b.String()
}

func idleFallback(roster model.Roster) string {
	if len(roster) == 0 {
		return "I don't have any employee records yet. Upload a timesheet document to get started."
	}
	var b strings.Builder
	b.WriteString("Current roster:\n")
	b.WriteString(merge.FormatRoster(roster))
	b.WriteString("\n\nUpload a timesheet document to process new hours, or ask me about an employee.")
	return b.String()
}

func emptyExtractionFallback() string {
	return "I processed the document but couldn't extract any employee records from it. " +
		"The existing roster is unchanged. You can try uploading a clearer document."
}
