package agent

import "strings"

// extractContactInfo captures the user's name, phone and email. Each field
// is write-once; a later mention never replaces what was already captured.
func extractContactInfo(text string, state *State) {
	normalized := normalizeDigits(text)

	if state.UserInfo.Name == nil {
		if name, ok := extractName(normalized, state.Stage); ok {
			state.UserInfo.Name = &name
		}
	}
	if state.UserInfo.Phone == nil {
		if m := phoneRE.FindString(normalized); m != "" {
			phone := m
			state.UserInfo.Phone = &phone
		}
	}
	if state.UserInfo.Email == nil {
		if m := emailRE.FindString(normalized); m != "" {
			email := m
			state.UserInfo.Email = &email
		}
	}
}

// extractName matches an explicit introduction anywhere, and additionally
// treats a short plain reply as the name while contact details are being
// collected.
func extractName(text string, stage Stage) (string, bool) {
	if m := nameRE.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[1])
		if name != "" {
			return name, true
		}
	}
	if stage != StageContactCollection {
		return "", false
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || numbersRE.MatchString(trimmed) {
		return "", false
	}
	if len(strings.Fields(trimmed)) <= 3 {
		return trimmed, true
	}
	return "", false
}
