package workflow

import "strings"

// confirmationPhrases is the fixed vocabulary of affirmative responses.
// Short forms require an exact match so that sentences like "yes, but
// change Bob first" are not swallowed; longer forms match on containment.
var confirmationPhrases = []string{
	"confirm",
	"yes",
	"approve",
	"approved",
	"looks good",
	"correct",
	"proceed",
	"generate payroll",
	"ok",
	"okay",
	"accepted",
	"accept",
	"agreed",
	"agree",
	"confirmed",
	"good",
	"right",
	"yep",
	"yeah",
	"y",
}

// shortForms are phrases that only count as confirmation when the whole
// message is the phrase itself (modulo case and surrounding punctuation).
var shortForms = map[string]bool{
	"y":     true,
	"ok":    true,
	"yes":   true,
	"yep":   true,
	"yeah":  true,
	"good":  true,
	"right": true,
	"agree": true,
}

// IsConfirmation reports whether a user message counts as approval of the
// pending merged roster. Matching is case-insensitive. An empty message is
// never a confirmation.
func IsConfirmation(message string) bool {
	normalized := strings.ToLower(strings.TrimSpace(message))
	normalized = strings.Trim(normalized, ".!?, ")
	if normalized == "" {
		return false
	}

	for _, phrase := range confirmationPhrases {
		if shortForms[phrase] {
			if normalized == phrase {
				return true
			}
			continue
		}
		if strings.Contains(normalized, phrase) {
			return true
		}
	}
	return false
}
