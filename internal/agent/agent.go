package agent

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/mohammedtarek245/real-estate-ai-agent/internal/property"
	"github.com/mohammedtarek245/real-estate-ai-agent/pkg/logging"
)

// Agent is the rule-based conversation engine. It is stateless across
// turns; all per-conversation data lives in the State passed to Process,
// so a single Agent serves any number of concurrent sessions.
type Agent struct {
	dataset *property.Dataset
	log     *logging.Logger
	rng     *rand.Rand
	printer *message.Printer
}

// Option configures an Agent.
type Option func(*Agent)

// WithLogger sets the structured logger.
func WithLogger(log *logging.Logger) Option {
	return func(a *Agent) { a.log = log }
}

// WithRand sets the randomness source used for pitch selection. Tests pass
// a seeded source for deterministic output.
func WithRand(src rand.Source) Option {
	return func(a *Agent) { a.rng = rand.New(src) }
}

// New builds an Agent over the given property dataset.
func New(dataset *property.Dataset, opts ...Option) *Agent {
	a := &Agent{
		dataset: dataset,
		log:     logging.Default(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		printer: message.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Greeting returns the opening message for a fresh conversation.
func (a *Agent) Greeting(dialect Dialect) string {
	table, ok := phrases[dialect]
	if !ok {
		table = phrases[DialectEgyptian]
	}
	return table[phraseGreeting]
}

// AvailableDialects lists the dialect names accepted by SetDialect.
func (a *Agent) AvailableDialects() []string {
	out := make([]string, len(dialectOrder))
	for i, d := range dialectOrder {
		out[i] = string(d)
	}
	return out
}

// SetDialect switches the conversation's dialect and returns a localized
// confirmation. An unknown name leaves the state untouched and returns an
// error message listing the choices.
func (a *Agent) SetDialect(state *State, name string) string {
	d := Dialect(strings.ToLower(strings.TrimSpace(name)))
	confirmation, ok := dialectConfirmations[d]
	if !ok {
		return dialectUnavailableReply
	}
	state.Dialect = d
	return confirmation
}

// PropertyTypes lists the canonical property types the extractor can
// recognize.
func (a *Agent) PropertyTypes() []string {
	out := make([]string, len(typeCategories))
	for i, cat := range typeCategories {
		out[i] = cat.value
	}
	return out
}

// StateSummary condenses the conversation state for clients.
func (a *Agent) StateSummary(state *State) Summary {
	state.Normalize()
	return Summary{
		Preferences:     state.Preferences,
		Stage:           state.Stage,
		PropertiesShown: len(state.ShownProperties),
		Dialect:         state.Dialect,
	}
}

// Process runs one conversation turn: it repairs the state, extracts
// whatever the message offers, and dispatches on the current stage. The
// state is mutated in place and the reply returned.
func (a *Agent) Process(state *State, input string) string {
	state.Normalize()
	table := phrases[state.Dialect]

	extractContactInfo(input, state)
	extractPreferences(input, &state.Preferences, a.dataset, state.Stage == StageClarifying)

	lower := strings.ToLower(normalizeDigits(strings.TrimSpace(input)))

	if detectBuyingIntent(input, state) &&
		(state.Stage == StageRecommending || state.Stage == StageSalesPitch) {
		a.log.Info("buying intent detected", "stage", state.Stage)
		state.Stage = StageContactCollection
		return table[phraseAskContact]
	}

	if isHigherDiscountRequest(lower) {
		state.NegotiationAttempts++
		return table[phraseHigherDiscount]
	}

	if state.Stage == StageClarifying && isBareNumber(lower) {
		a.applyNumericReply(lower, state)
	}

	switch state.Stage {
	case StageGreeting:
		state.Stage = StageClarifying
		return a.askNextQuestion(state)
	case StageClarifying:
		return a.askNextQuestion(state)
	case StageSummarizing:
		return a.handleSummarizing(lower, state)
	case StageRecommending:
		return a.handleRecommending(lower, state)
	case StageSalesPitch:
		return a.handleSalesPitch(lower, state)
	case StageContactCollection:
		return a.handleContactCollection(state)
	case StageRefining:
		return a.handleRefining(lower, state)
	case StageClosing:
		return a.handleClosing(lower)
	}
	// Normalize guarantees a valid stage; this is unreachable.
	return a.Greeting(state.Dialect)
}

func isBareNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// applyNumericReply interprets a bare number as the answer to the question
// asked last turn.
func (a *Agent) applyNumericReply(lower string, state *State) {
	v, err := strconv.Atoi(lower)
	if err != nil {
		return
	}
	prefs := &state.Preferences
	switch state.LastQuestionAsked {
	case phraseAskBedrooms:
		prefs.Bedrooms = &v
	case phraseAskBathrooms:
		prefs.Bathrooms = &v
	case phraseAskArea:
		prefs.AreaM2 = &v
	case phraseAskFloor:
		prefs.Floor = &v
	case phraseAskBudget:
		budget := scaleBudget(float64(v), "")
		prefs.Budget = &budget
	default:
		return
	}
	state.QuestionFlowIndex++
}

var summarizingConfirmWords = []string{"نعم", "أيوة", "ايوه", "تمام", "صح", "مظبوط", "yes", "correct"}

func (a *Agent) handleSummarizing(lower string, state *State) string {
	table := phrases[state.Dialect]
	prefs := &state.Preferences

	if containsAny(lower, summarizingConfirmWords) {
		state.Stage = StageRecommending
		return a.makeRecommendation(state)
	}
	switch {
	case containsAny(lower, []string{"منطقة", "location", "مكان"}):
		prefs.Location = nil
		return table[phraseAskLocation]
	case containsAny(lower, []string{"نوع", "type"}):
		prefs.Type = nil
		return table[phraseAskType]
	case containsAny(lower, []string{"غرف", "اوض", "bedrooms", "room"}):
		prefs.Bedrooms = nil
		return table[phraseAskBedrooms]
	case containsAny(lower, []string{"ميزانية", "سعر", "فلوس", "budget", "price"}):
		prefs.Budget = nil
		return table[phraseAskBudget]
	case containsAny(lower, []string{"مساحة", "متر", "area", "size"}):
		prefs.AreaM2 = nil
		return table[phraseAskArea]
	}
	state.Stage = StageRecommending
	return a.makeRecommendation(state)
}

var (
	recommendNegativeWords = []string{"لا", "مش", "غير", "تاني", "آخر", "no", "other"}
	recommendPositiveWords = []string{"نعم", "أيوة", "تمام", "حلو", "yes", "good", "اعجبني", "عجبني", "يعجبني"}
	firstOptionWords       = []string{"1", "الأول", "الاول", "اول"}
	secondOptionWords      = []string{"2", "الثاني", "التاني", "تاني"}
)

func (a *Agent) handleRecommending(lower string, state *State) string {
	// Rejection is checked before the option words because "تاني" doubles
	// as "another one" and as "the second one"; the dismissive reading wins.
	switch {
	case containsAny(lower, recommendNegativeWords):
		return a.makeRecommendation(state)
	case containsAny(lower, firstOptionWords):
		return a.startSalesPitch(state, 0)
	case containsAny(lower, secondOptionWords):
		return a.startSalesPitch(state, 1)
	case containsAny(lower, recommendPositiveWords):
		return a.startSalesPitch(state, 0)
	}
	return chooseOptionReply
}

func (a *Agent) startSalesPitch(state *State, selected int) string {
	if state.CurrentProperty == nil {
		state.Stage = StageRefining
		return selectionErrorReply
	}
	state.SelectedPropertyIndex = selected
	state.Stage = StageSalesPitch
	state.SalesPitchStage = 0
	a.log.Info("entering sales pitch", "selected", selected)
	return a.adaptiveSalesPitch(state)
}

var (
	priceTalkWords      = []string{"سعر", "خصم", "ميزانية", "price", "discount", "budget", "تخفيض"}
	pitchRejectionWords = []string{"لا", "مش", "غير", "تاني", "no", "other", "another"}
)

func (a *Agent) handleSalesPitch(lower string, state *State) string {
	table := phrases[state.Dialect]
	switch {
	case containsAny(lower, priceTalkWords):
		state.NegotiationAttempts++
		if state.NegotiationAttempts <= 1 {
			return table[phraseDiscountOffer]
		}
		return table[phraseHigherDiscount]
	case containsAny(lower, pitchRejectionWords):
		state.Stage = StageRecommending
		return table[phraseAskMoreOptions]
	}
	return a.adaptiveSalesPitch(state)
}

func (a *Agent) handleContactCollection(state *State) string {
	info := &state.UserInfo
	if info.Name != nil && (info.Phone != nil || info.Email != nil) {
		state.Stage = StageClosing
		phone := phoneFallbackLabel
		if info.Phone != nil {
			phone = *info.Phone
		}
		a.log.Info("lead captured", "has_phone", info.Phone != nil, "has_email", info.Email != nil)
		return strings.NewReplacer(
			"{name}", *info.Name,
			"{phone}", phone,
		).Replace(phrases[state.Dialect][phraseConfirmAppointment])
	}
	if info.Name == nil {
		return askNameReply
	}
	return askPhoneReply
}

func (a *Agent) handleRefining(lower string, state *State) string {
	table := phrases[state.Dialect]
	prefs := &state.Preferences
	switch {
	case containsAny(lower, []string{"ميزانية", "سعر", "فلوس", "budget", "price"}):
		prefs.Budget = nil
		return table[phraseAskBudget]
	case containsAny(lower, []string{"منطقة", "مكان", "location", "area"}):
		prefs.Location = nil
		return table[phraseAskLocation]
	case containsAny(lower, []string{"غرف", "اوض", "bedrooms", "room"}):
		prefs.Bedrooms = nil
		return table[phraseAskBedrooms]
	case containsAny(lower, []string{"حمام", "bathroom", "toilet"}):
		prefs.Bathrooms = nil
		return table[phraseAskBathrooms]
	case containsAny(lower, []string{"نوع", "type"}):
		prefs.Type = nil
		return table[phraseAskType]
	case containsAny(lower, []string{"مساحة", "متر", "size"}):
		prefs.AreaM2 = nil
		return table[phraseAskArea]
	case containsAny(lower, []string{"نعم", "أيوة", "yes", "ok", "تمام"}):
		return whichCriterionReply
	}
	state.Stage = StageRecommending
	return a.makeRecommendation(state)
}

func (a *Agent) handleClosing(lower string) string {
	switch {
	case containsAny(lower, []string{"شكراً", "شكرا", "ممتاز", "أشكرك", "thank", "thanks", "good"}):
		return closingThanksReply
	case containsAny(lower, []string{"نعم", "أيوة", "تمام", "حلو", "yes", "اوك", "موافق"}):
		return closingConfirmReply
	case containsAny(lower, []string{"معلومات", "تفاصيل", "اسأل", "سؤال", "استفسار", "info", "question", "details"}):
		return closingInfoReply
	case containsAny(lower, []string{"وقت", "تاريخ", "ساعة", "يوم", "date", "time", "tomorrow", "today"}):
		return closingScheduleReply
	}
	return closingDefaultReply
}

// formatAmount renders a price with thousands separators, matching the
// dataset's plain ASCII digits.
func (a *Agent) formatAmount(v float64) string {
	return a.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
}
