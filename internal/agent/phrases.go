package agent

// Dialect names a localized phrase table. Dialects change wording only; no
// conversation logic differs between them.
type Dialect string

const (
	DialectEgyptian Dialect = "egyptian"
	DialectKhaleeji Dialect = "khaleeji"
	DialectMSA      Dialect = "msa"
)

// dialectOrder fixes the listing order of AvailableDialects.
var dialectOrder = []Dialect{DialectEgyptian, DialectKhaleeji, DialectMSA}

// Phrase keys. The ask_* keys double as question tags recorded in
// State.LastQuestionAsked so that bare numeric replies can be interpreted.
const (
	phraseGreeting            = "greeting"
	phraseAskLocation         = "ask_location"
	phraseAskPurpose          = "ask_purpose"
	phraseAskType             = "ask_type"
	phraseAskCompound         = "ask_compound"
	phraseAskArea             = "ask_area"
	phraseAskFinishing        = "ask_finishing"
	phraseAskFinishingType    = "ask_finishing_type"
	phraseAskServices         = "ask_services"
	phraseAskFloor            = "ask_floor"
	phraseAskBudget           = "ask_budget"
	phraseAskBedrooms         = "ask_bedrooms"
	phraseAskBathrooms        = "ask_bathrooms"
	phraseSummaryIntro        = "summary_intro"
	phraseSummaryConfirm      = "summary_confirm"
	phraseSuggestionsIntro    = "suggestions_intro"
	phraseRecommendChoice     = "recommendation_choice"
	phraseAskContact          = "ask_contact"
	phraseConfirmAppointment  = "confirm_appointment"
	phraseAskMoreOptions      = "ask_more_options"
	phraseDiscountOffer       = "discount_offer"
	phraseHigherDiscount      = "higher_discount"
	phraseAdjustBudgetLow     = "adjust_budget_low"
	phraseAdjustLocation      = "adjust_location"
	phraseAdjustType          = "adjust_type"
	phraseAdjustBedrooms      = "adjust_bedrooms"
	phraseAdjustCombination   = "adjust_combination"
)

// questionTagForSlot maps a slot to the phrase key of its question.
func questionTagForSlot(slot Slot) string {
	switch slot {
	case SlotLocation:
		return phraseAskLocation
	case SlotPurpose:
		return phraseAskPurpose
	case SlotType:
		return phraseAskType
	case SlotCompound:
		return phraseAskCompound
	case SlotArea:
		return phraseAskArea
	case SlotFinishing:
		return phraseAskFinishing
	case SlotFinishingType:
		return phraseAskFinishingType
	case SlotServices:
		return phraseAskServices
	case SlotFloor:
		return phraseAskFloor
	case SlotBudget:
		return phraseAskBudget
	case SlotBedrooms:
		return phraseAskBedrooms
	case SlotBathrooms:
		return phraseAskBathrooms
	}
	return ""
}

// phrases holds the localized template tables, one per dialect.
var phrases = map[Dialect]map[string]string{
	DialectEgyptian: {
		phraseGreeting:           "أهلاً وسهلاً! أنا وكيل العقارات الذكي. ازاي ممكن أساعدك؟",
		phraseAskLocation:        "ممكن أعرف في أي منطقة بتدور على العقار؟ 📍",
		phraseAskPurpose:         "حضرتك بتدور على عقار للإيجار ولا للشراء؟ 🏢",
		phraseAskType:            "تمام، تحب يكون العقار ده شقة، فيلا، ولا إداري/تجاري؟",
		phraseAskCompound:        "طيب، تفضل العقار يكون في كمباوند ولا لا؟",
		phraseAskArea:            "تحب المساحة تكون تقريباً قد إيه بالمتر المربع؟",
		phraseAskFinishing:       "العقار يكون متشطب ولا نص تشطيب؟",
		phraseAskFinishingType:   "ولو متشطب، تحب نوع التشطيب يكون سوبر لوكس، ألترا لوكس، ولا مش فارق معاك؟",
		phraseAskServices:        "فيه خدمات معينة محتاجها في العقار؟ زي أمن، جراج، نادي، مول تجاري قريب؟ 🛍️🏬",
		phraseAskFloor:           "تحب العقار يكون في الدور الكام تقريبًا؟",
		phraseAskBudget:          "إيه هي ميزانيتك أو السعر اللي حابب تدفعه؟ ولو في حدود، قوللي مثلًا \"من كذا لكذا\". 💵",
		phraseAskBedrooms:        "محتاج كام غرفة نوم؟",
		phraseAskBathrooms:       "محتاج كام حمام؟",
		phraseSummaryIntro:       "تمام، بناءً على اللي فهمته:",
		phraseSummaryConfirm:     "كدة تمام ولا حابب تعدل اي حاجة؟",
		phraseSuggestionsIntro:   "تمام، عندي لك اقتراحين مناسبين:",
		phraseRecommendChoice:    "أي من هذه العقارات تفضل؟ رقم 1 أم رقم 2؟ أم تريد اقتراحات أخرى؟",
		phraseAskContact:         "ممتاز! ممكن أعرف اسمك ورقم موبايلك عشان أقدر أتواصل معاك لتحديد التفاصيل؟",
		phraseConfirmAppointment: "تمام جداً {name}! هتواصل معاك على {phone} لتحديد ميعاد معاينة العقار. أنا متأكد انك هتحب العقار أكتر لما تشوفه. هل تحب تعرف أي تفاصيل تانية عن العقار أو المنطقة؟",
		phraseAskMoreOptions:     "عندي عقارات تانية ممكن تكون مناسبة ليك. تحب أعرضها عليك؟",
		phraseDiscountOffer:      "ممكن أحاول أتفاوض مع المالك على خصم بسيط لو أكدت رغبتك في الشراء دلوقتي. ممكن نوصل لتخفيض ١-٣٪ من السعر.",
		phraseHigherDiscount:     "بما إنك عميل مميز، هحاول أوصل للمالك وأشوف لو ممكن يديك خصم 5-7%، بس لازم تأكدلي إنك موافق مبدئياً.",
		phraseAdjustBudgetLow:    "للأسف مفيش عقارات متاحة بالميزانية دي. ممكن نزود الميزانية شوية؟",
		phraseAdjustLocation:     "معلش، مفيش عقارات في المنطقة دي. ممكن نشوف مناطق تانية قريبة؟",
		phraseAdjustType:         "مفيش عقارات من النوع ده متاحة حالياً. ممكن نشوف نوع تاني؟",
		phraseAdjustBedrooms:     "مش لاقي عقارات بعدد الأوض ده. ممكن نشوف عدد أوض مختلف؟",
		phraseAdjustCombination:  "المعايير اللي اخترتها مش متوفرة مع بعض. ممكن نغير واحد منهم؟",
	},
	DialectKhaleeji: {
		phraseGreeting:           "هلا والله! أنا هني أساعدك تلقى العقار المناسب لك.",
		phraseAskLocation:        "ممكن تخبرني في أي منطقة تبحث عن العقار؟ 📍",
		phraseAskPurpose:         "تبحث عن عقار للإيجار أو للشراء؟ 🏢",
		phraseAskType:            "زين، تفضل العقار شقة، فيلا، أو تجاري/إداري؟",
		phraseAskCompound:        "هل تفضل العقار يكون في مجمع سكني؟",
		phraseAskArea:            "شنو المساحة المناسبة لك بالمتر المربع؟",
		phraseAskFinishing:       "تبي العقار يكون مشطب أو نص تشطيب؟",
		phraseAskFinishingType:   "إذا مشطب، تفضل التشطيب سوبر لوكس، ألترا لوكس، أو ما يهمك؟",
		phraseAskServices:        "في خدمات معينة تبيها في العقار؟ مثل أمن، موقف سيارات، نادي، مجمع تجاري قريب؟ 🛍️🏬",
		phraseAskFloor:           "أي دور تفضل للعقار؟",
		phraseAskBudget:          "ما هي الميزانية أو السعر اللي تبيه؟ وإذا في حدود، قولي مثلاً \"من كذا إلى كذا\". 💵",
		phraseAskBedrooms:        "كم غرفة نوم تحتاج؟",
		phraseAskBathrooms:       "كم حمام تحتاج؟",
		phraseSummaryIntro:       "تمام، بناءً على اللي فهمته منك:",
		phraseSummaryConfirm:     "هذا مناسب أو تبي تعدل أي شي؟",
		phraseSuggestionsIntro:   "زين، عندي لك اختيارين مناسبين:",
		phraseRecommendChoice:    "أي من هذه العقارات تفضل؟ رقم 1 أم رقم 2؟ أو تبي خيارات ثانية؟",
		phraseAskContact:         "ممتاز! ممكن أعرف اسمك ورقم موبايلك عشان أقدر أتواصل معاك لتحديد التفاصيل؟",
		phraseConfirmAppointment: "زين جداً {name}! بتواصل معاك على {phone} لتحديد موعد معاينة العقار. أنا متأكد إنك بتحب العقار أكثر لما تشوفه. تبي تعرف أي تفاصيل ثانية عن العقار أو المنطقة؟",
		phraseAskMoreOptions:     "عندي عقارات ثانية ممكن تكون مناسبة لك. تبي أعرضها عليك؟",
		phraseDiscountOffer:      "ممكن أحاول أتفاوض مع المالك على خصم بسيط لو أكدت رغبتك في الشراء الحين. ممكن نوصل لتخفيض ١-٣٪ من السعر.",
		phraseHigherDiscount:     "بما إنك عميل مميز، بحاول أوصل للمالك وأشوف إذا ممكن يعطيك خصم 5-7%، بس لازم تأكد لي إنك موافق مبدئياً.",
		phraseAdjustBudgetLow:    "للأسف ما في عقارات متوفرة بهذي الميزانية. ممكن نزيد الميزانية شوي؟",
		phraseAdjustLocation:     "عذراً، ما في عقارات في هالمنطقة. نقدر نشوف مناطق ثانية قريبة؟",
		phraseAdjustType:         "ما في عقارات من هالنوع متوفرة حالياً. ممكن نشوف نوع ثاني؟",
		phraseAdjustBedrooms:     "ما حصلت عقارات بهالعدد من الغرف. ممكن نشوف عدد غرف مختلف؟",
		phraseAdjustCombination:  "المعايير اللي اخترتها مو متوفرة مع بعض. ممكن نغير واحد منها؟",
	},
	DialectMSA: {
		phraseGreeting:           "أهلاً وسهلاً! أنا هنا لمساعدتك في العثور على العقار المناسب لك.",
		phraseAskLocation:        "هل يمكنني معرفة المنطقة التي تبحث فيها عن العقار؟ 📍",
		phraseAskPurpose:         "هل تبحث عن عقار للإيجار أم للشراء؟ 🏢",
		phraseAskType:            "حسناً، هل تفضل أن يكون العقار شقة، فيلا، أم تجاري/إداري؟",
		phraseAskCompound:        "هل تفضل أن يكون العقار داخل مجمع سكني؟",
		phraseAskArea:            "ما هي المساحة التقريبية التي ترغب بها بالمتر المربع؟",
		phraseAskFinishing:       "هل تفضل العقار متشطباً أم نصف تشطيب؟",
		phraseAskFinishingType:   "إذا كان متشطباً، هل تفضل تشطيب سوبر لوكس، ألترا لوكس، أم ليس مهماً بالنسبة لك؟",
		phraseAskServices:        "هل هناك خدمات معينة ترغب بتوفرها في العقار؟ مثل أمن، موقف سيارات، نادي، مركز تجاري قريب؟ 🛍️🏬",
		phraseAskFloor:           "في أي طابق تفضل أن يكون العقار؟",
		phraseAskBudget:          "ما هي ميزانيتك أو السعر الذي ترغب بدفعه؟ وإذا كان هناك حدود، فضلاً أخبرني مثلاً \"من كذا إلى كذا\". 💵",
		phraseAskBedrooms:        "كم عدد غرف النوم التي تحتاجها؟",
		phraseAskBathrooms:       "كم عدد الحمامات التي تحتاجها؟",
		phraseSummaryIntro:       "حسناً، بناءً على ما فهمته منك:",
		phraseSummaryConfirm:     "هل هذا مناسب أم ترغب في تعديل أي من هذه المعلومات؟",
		phraseSuggestionsIntro:   "حسناً، لدي اقتراحين مناسبين لك:",
		phraseRecommendChoice:    "أي من هذه العقارات تفضل؟ رقم 1 أم رقم 2؟ أم ترغب باقتراحات أخرى؟",
		phraseAskContact:         "ممتاز! هل يمكنني معرفة اسمك ورقم هاتفك حتى أتمكن من التواصل معك لتحديد التفاصيل؟",
		phraseConfirmAppointment: "جيد جداً {name}! سأتواصل معك على {phone} لتحديد موعد معاينة العقار. أنا متأكد أنك ستحب العقار أكثر عندما تراه. هل تود معرفة أي تفاصيل أخرى عن العقار أو المنطقة؟",
		phraseAskMoreOptions:     "لدي عقارات أخرى قد تكون مناسبة لك. هل ترغب في الاطلاع عليها؟",
		phraseDiscountOffer:      "يمكنني محاولة التفاوض مع المالك على خصم بسيط إذا أكدت رغبتك في الشراء الآن. يمكننا الوصول إلى تخفيض ١-٣٪ من السعر.",
		phraseHigherDiscount:     "بما أنك عميل مميز، سأحاول التواصل مع المالك لأرى إذا كان بإمكانه منحك خصم 5-7%، لكن يجب أن تؤكد لي أنك موافق مبدئياً.",
		phraseAdjustBudgetLow:    "للأسف لا توجد عقارات متاحة بهذه الميزانية. هل يمكننا زيادة الميزانية قليلاً؟",
		phraseAdjustLocation:     "عذراً، لا توجد عقارات في هذه المنطقة. هل يمكننا البحث في مناطق أخرى قريبة؟",
		phraseAdjustType:         "لا توجد عقارات من هذا النوع متاحة حالياً. هل نبحث عن نوع آخر؟",
		phraseAdjustBedrooms:     "لم أجد عقارات بهذا العدد من الغرف. هل يمكننا النظر في عدد غرف مختلف؟",
		phraseAdjustCombination:  "المعايير التي اخترتها غير متوفرة معاً. هل يمكننا تعديل أحدها؟",
	},
}

// Dialect confirmation and error strings returned by SetDialect.
var dialectConfirmations = map[Dialect]string{
	DialectEgyptian: "تم التغيير للهجة المصرية!",
	DialectKhaleeji: "تم التغيير للهجة الخليجية!",
	DialectMSA:      "تم التغيير للغة العربية الفصحى!",
}

const dialectUnavailableReply = "اللهجة غير متوفرة. اللهجات المتاحة هي: مصري (egyptian)، خليجي (khaleeji)، فصحى (msa)."

// Replies that the original flow emits in one fixed wording regardless of the
// active dialect.
const (
	askNameReply        = "ممكن أعرف اسم حضرتك؟"
	askPhoneReply       = "ممكن رقم موبايلك عشان نقدر نتواصل معاك؟"
	phoneFallbackLabel  = "الرقم الذي قدمته"
	chooseOptionReply   = "أي من هذه العقارات أعجبك؟ العقار الأول أم الثاني؟ أم تريد اقتراحات أخرى؟"
	whichCriterionReply = "ما هو المعيار الذي تريد تعديله؟ (النوع، المنطقة، عدد الغرف، المساحة، الميزانية)"

	closingThanksReply   = "العفو! سعدت جداً بمساعدتك. أتمنى أن تكون سعيداً بالعقار الجديد. سنتواصل معك قريباً لإتمام التفاصيل. هل هناك أي استفسارات أخرى؟"
	closingConfirmReply  = "ممتاز! سنتواصل معك قريباً لإتمام التفاصيل. شكراً لاختيارك التعامل معنا، ونتطلع إلى مساعدتك في العثور على منزل أحلامك!"
	closingInfoReply     = "بكل سرور، العقار يقع في منطقة راقية مع خدمات متكاملة. التشطيبات عالية الجودة، والمرافق والخدمات العامة قريبة جداً. هل هناك أي معلومات محددة ترغب في معرفتها؟"
	closingScheduleReply = "تم تسجيل الموعد المطلوب. سأؤكد لك التفاصيل عبر الهاتف. هل هناك أي استفسارات أخرى لديك؟"
	closingDefaultReply  = "شكراً لاهتمامك! سنتواصل معك قريباً على الرقم الذي قدمته لتحديد موعد المعاينة وإتمام باقي التفاصيل. نسعد دائماً بخدمتك!"

	selectionErrorReply = "عذراً، حدثت مشكلة في اختيار العقار المناسب. هل يمكننا تعديل معايير البحث؟"
)

// currencyWordForDialect is the currency label used in the preference summary.
func currencyWordForDialect(d Dialect) string {
	switch d {
	case DialectEgyptian:
		return "جنيه"
	case DialectKhaleeji:
		return "ريال"
	default:
		return "وحدة نقدية"
	}
}
