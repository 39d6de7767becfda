package agent

import (
	"fmt"
	"strings"
)

// compoundEligibleTypes are the property types for which the compound
// question makes sense.
var compoundEligibleTypes = map[string]bool{"شقة": true, "فيلا": true}

// askNextQuestion walks the question flow from the saved cursor, skipping
// slots that are already filled or not applicable, and returns the next
// question to ask. When no question remains it transitions to summarizing
// and returns the preference summary instead.
func (a *Agent) askNextQuestion(state *State) string {
	table := phrases[state.Dialect]
	i := state.QuestionFlowIndex
	for i < len(questionFlow) {
		slot := questionFlow[i]
		if !a.shouldAsk(slot, state) {
			i++
			continue
		}
		state.QuestionFlowIndex = i + 1
		state.LastQuestionAsked = questionTagForSlot(slot)
		switch slot {
		case SlotFinishingType:
			state.AskedFinishingType = true
		case SlotServices:
			state.AskedServices = true
		}
		return table[questionTagForSlot(slot)]
	}
	state.QuestionFlowIndex = len(questionFlow)
	state.Stage = StageSummarizing
	return a.generateSummary(state)
}

func (a *Agent) shouldAsk(slot Slot, state *State) bool {
	prefs := &state.Preferences
	switch slot {
	case SlotCompound:
		if prefs.Type == nil || !compoundEligibleTypes[*prefs.Type] {
			return false
		}
	case SlotFinishingType:
		if state.AskedFinishingType {
			return false
		}
		if prefs.Finishing == nil || *prefs.Finishing != "متشطب" {
			return false
		}
	case SlotServices:
		if state.AskedServices {
			return false
		}
		return true
	}
	return !prefs.slotSet(slot)
}

// generateSummary renders the collected preferences as a bullet list
// followed by a confirmation prompt.
func (a *Agent) generateSummary(state *State) string {
	table := phrases[state.Dialect]
	prefs := &state.Preferences

	var b strings.Builder
	b.WriteString(table[phraseSummaryIntro])
	b.WriteString("\n")
	if prefs.Location != nil {
		fmt.Fprintf(&b, "📍 المنطقة: %s\n", *prefs.Location)
	}
	if prefs.Type != nil {
		fmt.Fprintf(&b, "🏠 النوع: %s\n", *prefs.Type)
	}
	if prefs.Purpose != nil {
		fmt.Fprintf(&b, "🎯 الغرض: %s\n", *prefs.Purpose)
	}
	if prefs.Compound != nil {
		fmt.Fprintf(&b, "🏘️ كمباوند: %s\n", *prefs.Compound)
	}
	if prefs.AreaM2 != nil {
		fmt.Fprintf(&b, "📏 المساحة: %d متر مربع\n", *prefs.AreaM2)
	}
	if prefs.Finishing != nil {
		fmt.Fprintf(&b, "🔨 التشطيب: %s\n", *prefs.Finishing)
	}
	if prefs.FinishingType != nil {
		fmt.Fprintf(&b, "✨ نوع التشطيب: %s\n", *prefs.FinishingType)
	}
	if len(prefs.Services) > 0 {
		fmt.Fprintf(&b, "🛎️ الخدمات: %s\n", strings.Join(prefs.Services, "، "))
	}
	if prefs.Floor != nil {
		fmt.Fprintf(&b, "🏢 الدور: %d\n", *prefs.Floor)
	}
	if prefs.Budget != nil {
		fmt.Fprintf(&b, "💰 الميزانية: %s %s\n", a.formatAmount(*prefs.Budget), currencyWordForDialect(state.Dialect))
	}
	if prefs.Bedrooms != nil {
		fmt.Fprintf(&b, "🛏️ غرف النوم: %d\n", *prefs.Bedrooms)
	}
	if prefs.Bathrooms != nil {
		fmt.Fprintf(&b, "🚿 الحمامات: %d\n", *prefs.Bathrooms)
	}
	b.WriteString("\n")
	b.WriteString(table[phraseSummaryConfirm])
	return b.String()
}
