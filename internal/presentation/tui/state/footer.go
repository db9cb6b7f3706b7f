package state

import "strings"

// FooterText returns the footer content for the current session.
func FooterText(session Session, loading bool, statusMessage, helpText string) string {
	status := strings.TrimSpace(statusMessage)
	switch session {
	case HeaderSearchView:
		status = joinStatus("Searching (enter to submit, esc to cancel)", status)
	case ChatSearchView:
		status = joinStatus("Filtering contacts (esc to finish)", status)
	}
	if loading || status == "" {
		return helpText
	}
	if helpText == "" {
		return status
	}
	return status + "\n" + helpText
}

func joinStatus(prefix, status string) string {
	if status == "" {
		return prefix
	}
	return prefix + " · " + status
}
