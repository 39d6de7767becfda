package agent

import (
	"fmt"
	"strings"
)

// salesArguments is the persuasion pool the pitch stage draws from. Indexes
// into this slice are what State.UsedSalesArguments records.
var salesArguments = []string{
	// location benefits
	"الموقع استراتيجي جداً وده من أهم العوامل اللي بتزود قيمة العقار مع الوقت. المنطقة دي من أكتر المناطق المرغوبة وطلب السكن فيها بيزيد باستمرار.",
	"مش هتلاقي عقار في الموقع ده بالسعر ده تاني. المنطقة دي بتتطور بسرعة والأسعار مرشحة للزيادة 20% خلال السنة الجاية.",
	// investment value
	"العقار ده يعتبر استثمار ممتاز. الأسعار في المنطقة دي بتزيد بشكل سنوي بنسبة 15-20%، يعني لو اشتريته دلوقتي، قيمته هتزيد بشكل كبير في السنين الجاية.",
	"لو حسبناها كاستثمار، العقار ده هيرجعلك استثمارك في خلال 7-10 سنين لو أجرته، وبعد كده كله مكسب صافي.",
	// features and amenities
	"المميزات والخدمات اللي فيه هتخليك مبسوط جداً بالاختيار ده. كمان المساحة مثالية والتقسيم الداخلي عملي جداً.",
	"جودة التشطيب عالية جداً، هتوفر عليك وقت ومجهود وفلوس. تقدر تنتقل على طول من غير أي تعديلات.",
	// urgency
	"وصدقني، العقارات في الموقع ده بتتباع بسرعة كبيرة، فرصة زي دي مش هتتكرر كتير. الوقت دلوقتي مناسب جداً للشراء قبل ما الأسعار تزيد أكتر.",
	"فيه عميل تاني بيفكر في العقار ده وممكن يحجزه النهاردة، لو انت عاجبك فعلاً يبقى لازم نتحرك بسرعة.",
	// negotiation opportunity
	"ممكن أحاول أتفاوض مع المالك على خصم بسيط لو أكدت رغبتك في الشراء دلوقتي. ممكن نوصل لتخفيض ١-٣٪ من السعر.",
	"المالك مُستعد يتنازل عن جزء من السعر لو الدفع هيكون كاش ومباشر.",
	// long-term benefits
	"العقار ده تم تصميمه بشكل يوفر في استهلاك الكهرباء والمياه، هتلاحظ فرق كبير في فواتيرك الشهرية.",
	"تخيل نفسك وانت بتستقبل ضيوفك في المكان ده، هيكون انطباعهم إزاي عن ذوقك واختيارك!",
}

// adaptiveSalesPitch picks a sales argument that has not been used in this
// session, personalizes it with the selected property, and records both the
// usage and the pitch progression on the state. When the pool is exhausted
// it resets and starts repeating.
func (a *Agent) adaptiveSalesPitch(state *State) string {
	used := make(map[int]bool, len(state.UsedSalesArguments))
	for _, idx := range state.UsedSalesArguments {
		if idx >= 0 && idx < len(salesArguments) {
			used[idx] = true
		}
	}
	available := make([]int, 0, len(salesArguments))
	for i := range salesArguments {
		if !used[i] {
			available = append(available, i)
		}
	}
	if len(available) == 0 {
		state.UsedSalesArguments = state.UsedSalesArguments[:0]
		for i := range salesArguments {
			available = append(available, i)
		}
	}

	choice := available[a.rng.Intn(len(available))]
	pitch := salesArguments[choice]

	if p := state.CurrentProperty; p != nil {
		if p.Neighborhood != "" && p.Location != "" {
			pitch = strings.ReplaceAll(pitch, "المنطقة دي",
				fmt.Sprintf("منطقة %s في %s", p.Neighborhood, p.Location))
		}
		if p.Price > 0 {
			pitch += fmt.Sprintf("\n\nالسعر (%s) أقل من متوسط أسعار العقارات المماثلة في المنطقة بنسبة 5-10%%.", a.formatAmount(p.Price))
		}
	}

	state.UsedSalesArguments = append(state.UsedSalesArguments, choice)
	state.SalesPitchStage++
	return pitch
}
