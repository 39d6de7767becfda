package agent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mohammedtarek245/real-estate-ai-agent/internal/property"
)

func containsSubstring(text, sub string) bool {
	return strings.Contains(text, sub)
}

func containsAny(text string, subs []string) bool {
	for _, s := range subs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// extractPreferences scans free text for criteria mentions and fills any
// preference slots that are still empty. Already-set slots are never
// overwritten; corrections go through the refining flow instead.
func extractPreferences(text string, prefs *Preferences, dataset *property.Dataset, clarifying bool) {
	text = normalizeDigits(strings.ToLower(text))

	if prefs.Type == nil {
		if v, ok := matchCategory(text, typeCategories); ok {
			prefs.Type = &v
		}
	}
	if prefs.Purpose == nil {
		if v, ok := matchCategory(text, purposeCategories); ok {
			prefs.Purpose = &v
		}
	}
	if prefs.Compound == nil {
		if v, ok := matchCategory(text, compoundCategories); ok {
			prefs.Compound = &v
		}
	}
	if prefs.Finishing == nil {
		if v, ok := matchCategory(text, finishingCategories); ok {
			prefs.Finishing = &v
		}
	}
	if prefs.FinishingType == nil && prefs.Finishing != nil && *prefs.Finishing == "متشطب" {
		if v, ok := matchCategory(text, finishingTypeCategories); ok {
			prefs.FinishingType = &v
		}
	}
	extractServices(text, prefs)
	if prefs.Budget == nil {
		if v, ok := extractBudget(text); ok {
			prefs.Budget = &v
		}
	}
	if prefs.Bedrooms == nil {
		if v, ok := extractCount(text, bedroomsRE); ok {
			prefs.Bedrooms = &v
		}
	}
	if prefs.Bathrooms == nil {
		if v, ok := extractCount(text, bathroomsRE); ok {
			prefs.Bathrooms = &v
		}
	}
	if prefs.AreaM2 == nil {
		if v, ok := extractCount(text, areaRE); ok {
			prefs.AreaM2 = &v
		}
	}
	if prefs.Floor == nil {
		if v, ok := extractFloor(text); ok {
			prefs.Floor = &v
		}
	}
	if prefs.Location == nil {
		if v, ok := resolveLocation(text, dataset, clarifying); ok {
			prefs.Location = &v
		}
	}
}

// extractServices accumulates service mentions across turns without
// duplicating entries.
func extractServices(text string, prefs *Preferences) {
	for _, cat := range serviceCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(text, kw) {
				if !prefs.hasService(cat.value) {
					prefs.Services = append(prefs.Services, cat.value)
				}
				break
			}
		}
	}
}

// extractBudget finds a monetary figure and scales shorthand magnitudes.
// "2 مليون" and a bare "2" both resolve to 2,000,000; "500 الف" and a bare
// "500" both resolve to 500,000.
func extractBudget(text string) (float64, bool) {
	matches := budgetRE.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return 0, false
	}
	pick := matches[0]
	if containsAny(text, rangeConnectors) && len(matches) > 1 {
		for _, m := range matches[1:] {
			if parseAmount(m[1]) > parseAmount(pick[1]) {
				pick = m
			}
		}
	}
	amount := parseAmount(pick[1])
	if amount == 0 {
		return 0, false
	}
	return scaleBudget(amount, pick[2]), true
}

func parseAmount(s string) float64 {
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func scaleBudget(amount float64, unit string) float64 {
	switch unit {
	case "مليون":
		return amount * 1_000_000
	case "الف", "ألف":
		return amount * 1_000
	case "":
		if amount < 1_000 {
			return amount * 1_000_000
		}
		if amount < 100_000 {
			return amount * 1_000
		}
	}
	return amount
}

func extractCount(text string, re *regexp.Regexp) (int, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return v, true
}

func extractFloor(text string) (int, bool) {
	m := floorRE.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	digits := m[1]
	if digits == "" {
		digits = m[2]
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return v, true
}

// resolveLocation tries the dataset's own location values first, then the
// static fallback table. The dataset wins so that listings in areas the
// table does not know remain reachable. While the question flow is still
// running, a short reply to the location question is taken at face value:
// areas outside both tables would otherwise be lost, since the flow never
// re-asks. Dataset casing still wins when the reply matches a known value.
func resolveLocation(text string, dataset *property.Dataset, clarifying bool) (string, bool) {
	if dataset != nil {
		for _, loc := range dataset.Locations() {
			if loc != "" && strings.Contains(text, strings.ToLower(loc)) {
				return loc, true
			}
		}
	}
	for _, cat := range commonLocations {
		for _, kw := range cat.keywords {
			if strings.Contains(text, kw) {
				return cat.value, true
			}
		}
	}
	if clarifying {
		trimmed := strings.TrimSpace(text)
		if trimmed != "" && len(strings.Fields(trimmed)) <= 2 {
			if dataset != nil {
				for _, loc := range dataset.Locations() {
					if strings.EqualFold(trimmed, loc) {
						return loc, true
					}
				}
			}
			return trimmed, true
		}
	}
	return "", false
}
