package agent

import (
	"github.com/mohammedtarek245/real-estate-ai-agent/internal/property"
)

// Stage is the discrete state of the conversation state machine. Exactly one
// stage is active per session and drives all dispatch in Process.
type Stage string

const (
	StageGreeting          Stage = "greeting"
	StageClarifying        Stage = "clarifying"
	StageSummarizing       Stage = "summarizing"
	StageRecommending      Stage = "recommending"
	StageSalesPitch        Stage = "sales_pitch"
	StageContactCollection Stage = "contact_collection"
	StageRefining          Stage = "refining"
	StageClosing           Stage = "closing"
)

func validStage(s Stage) bool {
	switch s {
	case StageGreeting, StageClarifying, StageSummarizing, StageRecommending,
		StageSalesPitch, StageContactCollection, StageRefining, StageClosing:
		return true
	}
	return false
}

// Slot names one preference field in the slot-filling flow.
type Slot string

const (
	SlotLocation      Slot = "location"
	SlotPurpose       Slot = "purpose"
	SlotType          Slot = "type"
	SlotCompound      Slot = "compound"
	SlotArea          Slot = "area_m2"
	SlotFinishing     Slot = "finishing"
	SlotFinishingType Slot = "finishing_type"
	SlotServices      Slot = "services"
	SlotFloor         Slot = "floor"
	SlotBudget        Slot = "budget"
	SlotBedrooms      Slot = "bedrooms"
	SlotBathrooms     Slot = "bathrooms"
)

// questionFlow is the fixed order in which unanswered slots are asked.
var questionFlow = []Slot{
	SlotLocation, SlotPurpose, SlotType, SlotCompound, SlotArea,
	SlotFinishing, SlotFinishingType, SlotServices, SlotFloor,
	SlotBudget, SlotBedrooms, SlotBathrooms,
}

// Preferences is the structured search-preference vector filled from user
// input. A scalar field, once set, is never overwritten by extraction; it can
// only be cleared by an explicit refinement and then re-filled. Services is
// append-only.
type Preferences struct {
	Type          *string  `json:"type"`
	Location      *string  `json:"location"`
	Bedrooms      *int     `json:"bedrooms"`
	Bathrooms     *int     `json:"bathrooms"`
	Budget        *float64 `json:"budget"`
	AreaM2        *int     `json:"area_m2"`
	Floor         *int     `json:"floor"`
	Purpose       *string  `json:"purpose"`
	Compound      *string  `json:"compound"`
	Finishing     *string  `json:"finishing"`
	FinishingType *string  `json:"finishing_type"`
	Services      []string `json:"services"`
	OtherFeatures []string `json:"other_features"`
}

// slotSet reports whether a scalar slot already holds a value. Services is
// list-valued and never counts as set; it is governed by a one-shot guard
// instead.
func (p *Preferences) slotSet(slot Slot) bool {
	switch slot {
	case SlotLocation:
		return p.Location != nil
	case SlotPurpose:
		return p.Purpose != nil
	case SlotType:
		return p.Type != nil
	case SlotCompound:
		return p.Compound != nil
	case SlotArea:
		return p.AreaM2 != nil
	case SlotFinishing:
		return p.Finishing != nil
	case SlotFinishingType:
		return p.FinishingType != nil
	case SlotFloor:
		return p.Floor != nil
	case SlotBudget:
		return p.Budget != nil
	case SlotBedrooms:
		return p.Bedrooms != nil
	case SlotBathrooms:
		return p.Bathrooms != nil
	}
	return false
}

// hasService reports whether a service was already captured.
func (p *Preferences) hasService(service string) bool {
	for _, s := range p.Services {
		if s == service {
			return true
		}
	}
	return false
}

// UserInfo holds opportunistically collected contact details. Each field is
// write-once: the first extracted value wins.
type UserInfo struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

// State is the per-conversation session state. One conversation owns exactly
// one State; it is passed into Process, mutated, and handed back to the
// caller's session store. Nothing in it is shared across sessions.
type State struct {
	Dialect               Dialect            `json:"dialect"`
	Preferences           Preferences        `json:"preferences"`
	UserInfo              UserInfo           `json:"user_info"`
	Stage                 Stage              `json:"conversation_stage"`
	ShownProperties       []int64            `json:"shown_properties"`
	CurrentProperty       *property.Property `json:"current_property,omitempty"`
	SelectedPropertyIndex int                `json:"selected_property_index"`
	NegotiationAttempts   int                `json:"negotiation_attempts"`
	QuestionFlowIndex     int                `json:"question_flow_index"`
	AskedFinishingType    bool               `json:"asked_finishing_type"`
	AskedServices         bool               `json:"asked_services"`
	LastQuestionAsked     string             `json:"last_question_asked,omitempty"`
	SalesPitchStage       int                `json:"sales_pitch_stage"`
	UsedSalesArguments    []int              `json:"used_sales_arguments"`
}

// NewState returns a fresh session state in the given dialect. An unknown
// dialect falls back to Egyptian.
func NewState(dialect Dialect) *State {
	if _, ok := phrases[dialect]; !ok {
		dialect = DialectEgyptian
	}
	return &State{
		Dialect:            dialect,
		Stage:              StageGreeting,
		Preferences:        Preferences{Services: []string{}, OtherFeatures: []string{}},
		ShownProperties:    []int64{},
		UsedSalesArguments: []int{},
	}
}

// Normalize repairs a state that arrived with missing or invalid pieces, for
// example after deserializing a truncated payload. Processing always runs
// against a structurally valid state; repairs happen here at the boundary,
// not inline during dispatch.
func (s *State) Normalize() {
	if !validStage(s.Stage) {
		s.Stage = StageGreeting
	}
	if _, ok := phrases[s.Dialect]; !ok {
		s.Dialect = DialectEgyptian
	}
	if s.Preferences.Services == nil {
		s.Preferences.Services = []string{}
	}
	if s.Preferences.OtherFeatures == nil {
		s.Preferences.OtherFeatures = []string{}
	}
	if s.ShownProperties == nil {
		s.ShownProperties = []int64{}
	}
	if s.UsedSalesArguments == nil {
		s.UsedSalesArguments = []int{}
	}
	if s.QuestionFlowIndex < 0 {
		s.QuestionFlowIndex = 0
	}
	if s.QuestionFlowIndex > len(questionFlow) {
		s.QuestionFlowIndex = len(questionFlow)
	}
	if s.SelectedPropertyIndex != 0 && s.SelectedPropertyIndex != 1 {
		s.SelectedPropertyIndex = 0
	}
	if s.NegotiationAttempts < 0 {
		s.NegotiationAttempts = 0
	}
	if s.SalesPitchStage < 0 {
		s.SalesPitchStage = 0
	}
}

// hasShown reports whether a property was already presented this session.
func (s *State) hasShown(id int64) bool {
	for _, shown := range s.ShownProperties {
		if shown == id {
			return true
		}
	}
	return false
}

// markShown records a presented property, keeping ShownProperties a set.
func (s *State) markShown(id int64) {
	if !s.hasShown(id) {
		s.ShownProperties = append(s.ShownProperties, id)
	}
}

// Summary is the external snapshot of a session exposed by StateSummary.
type Summary struct {
	Preferences     Preferences `json:"preferences"`
	Stage           Stage       `json:"conversation_stage"`
	PropertiesShown int         `json:"properties_shown"`
	Dialect         Dialect     `json:"current_dialect"`
}
