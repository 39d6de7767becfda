package agent

import "regexp"

// keywordCategory maps a canonical value to the surface keywords that imply
// it. Categories are scanned in slice order and the first hit wins, so more
// specific entries must come before generic ones.
type keywordCategory struct {
	value    string
	keywords []string
}

var typeCategories = []keywordCategory{
	{"شقة", []string{"شقة", "شقه", "apartment", "flat", "شقق", "شق"}},
	{"فيلا", []string{"فيلا", "فيلة", "villa", "house", "فيل", "منزل", "بيت"}},
	{"مكتب", []string{"مكتب", "office", "workspace", "مكاتب", "عمل", "مكتبي", "تجاري", "إداري", "اداري"}},
	{"أرض", []string{"أرض", "ارض", "قطعة أرض", "land", "plot", "قطع"}},
}

var purposeCategories = []keywordCategory{
	{"للشراء", []string{"شراء", "تمليك", "بيع", "buy", "purchase", "امتلاك", "مشتري", "اشتري", "يشتري"}},
	{"للإيجار", []string{"ايجار", "إيجار", "استئجار", "rent", "rental", "أجار", "مستأجر", "استأجر", "يستأجر"}},
}

var compoundCategories = []keywordCategory{
	{"نعم", []string{"كمباوند", "مجمع", "مغلق", "compound", "كومباوند", "نعم", "ايوة", "أيوة", "اه", "آه"}},
	{"لا", []string{"لا", "مش محتاج", "عادي", "مش ضروري", "غير مهم", "no", "not important"}},
}

var finishingCategories = []keywordCategory{
	{"متشطب", []string{"متشطب", "تشطيب", "نهائي", "finished", "كامل", "super", "super lux", "سوبر", "لوكس", "الترا", "ultra"}},
	{"نص تشطيب", []string{"نص", "half", "غير كامل", "بدون", "not finished", "غير متشطب", "نصف"}},
}

var finishingTypeCategories = []keywordCategory{
	{"سوبر لوكس", []string{"سوبر", "super", "super lux", "سوبر لوكس"}},
	{"الترا لوكس", []string{"الترا", "ultra", "ultra lux", "الترا لوكس", "فاخر", "luxury", "لاكشري"}},
	{"عادي", []string{"عادي", "normal", "standard", "بسيط", "regular", "مش فارق", "غير مهم", "أي حاجة"}},
}

var serviceCategories = []keywordCategory{
	{"أمن", []string{"أمن", "امن", "security", "حراسة", "حارس", "سكيورتي"}},
	{"جراج", []string{"جراج", "garage", "موقف", "باركينج", "parking", "عربية", "سيارة"}},
	{"نادي", []string{"نادي", "club", "gym", "جيم", "رياضة", "مسبح", "حمام سباحة", "pool", "swimming"}},
	{"مول", []string{"مول", "سوق", "تسوق", "mall", "shopping", "سنتر", "محلات", "مركز تجاري", "مول تجاري"}},
}

// commonLocations resolves a free-text mention to a canonical city when the
// dataset itself does not list the mentioned area. Specific districts are
// checked before the city names that contain them.
var commonLocations = []keywordCategory{
	{"Cairo", []string{"التجمع"}},
	{"Cairo", []string{"الرحاب"}},
	{"Cairo", []string{"مدينتي"}},
	{"Giza", []string{"الشيخ زايد"}},
	{"Giza", []string{"6 اكتوبر", "٦ اكتوبر"}},
	{"Giza", []string{"أكتوبر", "اكتوبر"}},
	{"Cairo", []string{"المعادي"}},
	{"Cairo", []string{"مصر الجديدة"}},
	{"Cairo", []string{"القاهرة الجديدة"}},
	{"Alexandria", []string{"الإسكندرية", "الاسكندرية"}},
	{"Alexandria", []string{"اسكندرية", "إسكندرية"}},
	{"Giza", []string{"الجيزة"}},
	{"Giza", []string{"جيزة"}},
	{"Cairo", []string{"القاهرة"}},
	{"Assiut", []string{"أسيوط", "اسيوط"}},
	{"Mansoura", []string{"المنصورة"}},
}

var (
	// budgetRE tolerates a missing unit word; the magnitude heuristic in
	// applyBudget compensates for shorthand like "2 مليون" or a bare "2".
	budgetRE = regexp.MustCompile(`(\d+(?:,\d+)*)\s*(جنيه|دولار|ريال|درهم|الف|ألف|مليون)?`)

	// Count extractors require their unit word so that an amount mentioned
	// elsewhere in the sentence is never misread as a room count.
	bedroomsRE  = regexp.MustCompile(`(\d+)\s*(?:غرفة|غرف|اوض|أوض|اوضة|أوضة|room|rooms|bedroom|bedrooms)`)
	bathroomsRE = regexp.MustCompile(`(\d+)\s*(?:حمام|حمامات|toilet|bathroom|bathrooms|bath)`)
	areaRE      = regexp.MustCompile(`(\d+)\s*(?:متر|م2|م٢|m2|square meters?|sqm)`)
	floorRE     = regexp.MustCompile(`(?:دور|طابق|floor)\s*(\d+)|(\d+)\s*(?:دور|طابق|floor)`)

	nameRE  = regexp.MustCompile(`(?:اسمي|انا|أنا|my name is|i am|i'm)\s+([A-Za-zأ-ي][A-Za-zأ-ي\s]*)`)
	phoneRE = regexp.MustCompile(`\+?\d{8,15}|\d{3}[-.\s]?\d{3}[-.\s]?\d{4,6}`)
	emailRE = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	numbersRE = regexp.MustCompile(`\d+(?:,\d+)*`)
)

// rangeConnectors mark a budget range; when present the larger figure wins.
var rangeConnectors = []string{"من", "الى", "إلى", "حتى", "لغاية", "بين", "to"}

// arabicIndicDigits translates the Arabic-Indic digit block to ASCII before
// any regex runs.
var arabicIndicDigits = map[rune]rune{
	'٠': '0', '١': '1', '٢': '2', '٣': '3', '٤': '4',
	'٥': '5', '٦': '6', '٧': '7', '٨': '8', '٩': '9',
}

func normalizeDigits(text string) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if ascii, ok := arabicIndicDigits[r]; ok {
			r = ascii
		}
		out = append(out, r)
	}
	return string(out)
}

// matchCategory returns the canonical value of the first category whose
// keyword appears in the text.
func matchCategory(text string, categories []keywordCategory) (string, bool) {
	for _, cat := range categories {
		for _, kw := range cat.keywords {
			if containsSubstring(text, kw) {
				return cat.value, true
			}
		}
	}
	return "", false
}
