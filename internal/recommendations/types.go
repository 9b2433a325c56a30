package recommendations

// Result is the recommendation payload produced by one questionnaire
// submission. JSON names match the stored slot layout and must not change.
type Result struct {
	SkinType            string   `json:"skinType"`
	ConcernsSummary     string   `json:"concerns"`
	BudgetLabel         string   `json:"budget"`
	MorningRoutine      []string `json:"morningRoutine"`
	NightRoutine        []string `json:"nightRoutine"`
	RecommendedProducts []string `json:"products"`
}

// Defaults substituted for unanswered questions.
const (
	DefaultSkinType = "Combination"
	DefaultConcerns = "General care"
	DefaultBudget   = "Medium"
)

// The routine and product lists do not depend on the answers yet.
var (
	morningRoutine = []string{"Gentle Cleanser", "Vitamin C Serum", "Moisturizer", "Sunscreen SPF 50"}
	nightRoutine   = []string{"Oil Cleanser", "Treatment Serum", "Night Repair Cream"}
	products       = []string{"Vitamin C Serum", "Hydrating Moisturizer", "Sunscreen SPF 50", "Niacinamide Serum"}
)
