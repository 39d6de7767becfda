package agent

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mohammedtarek245/real-estate-ai-agent/internal/property"
)

const maxRecommendations = 2

// makeRecommendation filters the dataset against the collected preferences,
// records the winners as shown, pins the first one as the property under
// discussion and renders the result. When nothing survives the filter it
// asks to relax a criterion instead.
func (a *Agent) makeRecommendation(state *State) string {
	candidates := filterProperties(&state.Preferences, state, a.dataset)
	if len(candidates) == 0 {
		return a.suggestCriteriaAdjustment(state, a.dataset)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Price < candidates[j].Price
	})
	if len(candidates) > maxRecommendations {
		candidates = candidates[:maxRecommendations]
	}
	for _, p := range candidates {
		state.markShown(p.ID)
	}
	first := candidates[0]
	state.CurrentProperty = &first

	return a.formatRecommendations(candidates, state)
}

// filterProperties narrows the dataset down for the collected preferences.
// Every criterion relaxes rather than failing: an exact match is preferred,
// a tolerant match is tried next, and a criterion that would empty the pool
// is skipped entirely.
func filterProperties(prefs *Preferences, state *State, dataset *property.Dataset) []property.Property {
	candidates := dataset.All()

	if prefs.Type != nil {
		candidates = keepNonEmpty(candidates, func(p property.Property) bool {
			return p.Type == *prefs.Type
		})
	}
	if prefs.Location != nil {
		candidates = keepNonEmpty(candidates, func(p property.Property) bool {
			return p.Location == *prefs.Location
		})
	}
	if prefs.Bedrooms != nil {
		candidates = keepExactOrNearby(candidates, *prefs.Bedrooms, func(p property.Property) int {
			return p.Bedrooms
		})
	}
	if prefs.Bathrooms != nil {
		candidates = keepExactOrNearby(candidates, *prefs.Bathrooms, func(p property.Property) int {
			return p.Bathrooms
		})
	}
	if prefs.Budget != nil {
		candidates = filterByBudget(candidates, *prefs.Budget)
	}

	// Prefer candidates the user has not seen yet, but fall back to
	// repeats rather than returning an empty list.
	fresh := make([]property.Property, 0, len(candidates))
	for _, p := range candidates {
		if !state.hasShown(p.ID) {
			fresh = append(fresh, p)
		}
	}
	if len(fresh) > 0 {
		candidates = fresh
	}
	return candidates
}

// keepExactOrNearby keeps exact matches on the counted field, widening to a
// tolerance of one when no exact match exists.
func keepExactOrNearby(candidates []property.Property, want int, count func(property.Property) int) []property.Property {
	exact := make([]property.Property, 0, len(candidates))
	for _, p := range candidates {
		if count(p) == want {
			exact = append(exact, p)
		}
	}
	if len(exact) > 0 {
		return exact
	}
	nearby := make([]property.Property, 0, len(candidates))
	for _, p := range candidates {
		if n := count(p); n >= want-1 && n <= want+1 {
			nearby = append(nearby, p)
		}
	}
	if len(nearby) > 0 {
		return nearby
	}
	return candidates
}

// filterByBudget allows a 20% stretch over the stated budget, then 50%, and
// finally falls back to the three cheapest candidates.
func filterByBudget(candidates []property.Property, budget float64) []property.Property {
	within := func(factor float64) []property.Property {
		out := make([]property.Property, 0, len(candidates))
		for _, p := range candidates {
			if p.Price <= budget*factor {
				out = append(out, p)
			}
		}
		return out
	}
	if pool := within(1.2); len(pool) > 0 {
		return pool
	}
	if pool := within(1.5); len(pool) > 0 {
		return pool
	}
	sorted := make([]property.Property, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price < sorted[j].Price
	})
	if len(sorted) > 3 {
		sorted = sorted[:3]
	}
	return sorted
}

func keepNonEmpty(candidates []property.Property, keep func(property.Property) bool) []property.Property {
	out := make([]property.Property, 0, len(candidates))
	for _, p := range candidates {
		if keep(p) {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return candidates
	}
	return out
}

func (a *Agent) formatRecommendations(recs []property.Property, state *State) string {
	table := phrases[state.Dialect]

	var b strings.Builder
	b.WriteString(table[phraseSuggestionsIntro])
	b.WriteString("\n\n")
	for i, p := range recs {
		fmt.Fprintf(&b, "✨ الاقتراح رقم %d:\n", i+1)
		fmt.Fprintf(&b, "🏠 %s في %s, حي %s\n", p.Type, p.Location, p.Neighborhood)
		fmt.Fprintf(&b, "💰 السعر: %s %s\n", a.formatAmount(p.Price), p.Currency)
		fmt.Fprintf(&b, "🛏️ عدد الغرف: %d\n", p.Bedrooms)
		fmt.Fprintf(&b, "🚿 عدد الحمامات: %d\n", p.Bathrooms)
		fmt.Fprintf(&b, "📏 المساحة: %d متر مربع\n", int(p.AreaM2))
		fmt.Fprintf(&b, "%s\n\n", p.Description)
	}
	b.WriteString(table[phraseRecommendChoice])
	return b.String()
}

// suggestCriteriaAdjustment figures out which single criterion makes the
// search impossible and asks to relax it, moving the conversation into the
// refining stage.
func (a *Agent) suggestCriteriaAdjustment(state *State, dataset *property.Dataset) string {
	table := phrases[state.Dialect]
	prefs := &state.Preferences
	state.Stage = StageRefining

	if prefs.Budget != nil {
		if min, ok := dataset.MinPrice(); ok && min > *prefs.Budget {
			return table[phraseAdjustBudgetLow]
		}
	}
	if prefs.Location != nil && !dataset.HasLocation(*prefs.Location) {
		return table[phraseAdjustLocation]
	}
	if prefs.Type != nil && dataset.CountByType(*prefs.Type) == 0 {
		return table[phraseAdjustType]
	}
	if prefs.Bedrooms != nil && dataset.CountByBedrooms(*prefs.Bedrooms) == 0 {
		return table[phraseAdjustBedrooms]
	}
	return table[phraseAdjustCombination]
}
