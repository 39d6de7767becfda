package agent

import "strings"

// clearIntentPhrases always signal a purchase decision, at any stage.
var clearIntentPhrases = []string{
	"عايز اشتري",
	"هشتري",
	"أريد شراء",
	"موافق على الشراء",
	"أقبل العرض",
	"اتفقنا",
	"اخدت قراري",
	"أوافق على السعر",
	"نروح نشوفها امتى",
	"متى أستطيع رؤيتها",
}

// affirmativeReplies signal agreement only late in the pitch, once enough
// arguments have been made for a plain "yes" to be unambiguous.
var affirmativeReplies = []string{
	"نعم", "أيوة", "تمام", "موافق", "اوك", "خلاص", "ماشي",
	"ok", "yes", "sure",
}

// detectBuyingIntent reports whether the message commits to buying. Very
// short fragments are ignored so that stray particles do not end the pitch
// prematurely.
func detectBuyingIntent(text string, state *State) bool {
	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) < 10 {
		return false
	}
	lower := strings.ToLower(trimmed)
	if containsAny(lower, clearIntentPhrases) {
		return true
	}
	if state.Stage == StageSalesPitch && state.SalesPitchStage >= 4 {
		return containsAny(lower, affirmativeReplies)
	}
	return false
}

var discountWords = []string{"خصم", "تخفيض", "discount"}
var escalationWords = []string{"أكبر", "اكبر", "أكثر", "اكثر", "أعلى", "اعلى", "زيادة", "higher"}

// isHigherDiscountRequest reports whether the user is pushing for a bigger
// discount than the one already offered.
func isHigherDiscountRequest(text string) bool {
	lower := strings.ToLower(text)
	return containsAny(lower, discountWords) && containsAny(lower, escalationWords)
}
