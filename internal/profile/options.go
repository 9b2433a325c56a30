package profile

// Option lists offered by the questionnaire. Values are stored verbatim.
var (
	SkinTypes = []string{"Oily", "Dry", "Combination", "Normal", "Sensitive"}
	AgeGroups = []string{"Under 18", "18 - 25", "26 - 35", "36 - 45", "46+"}
	Concerns  = []string{"Acne", "Dryness", "Dark Spots", "Pigmentation", "Redness", "Wrinkles", "Oiliness", "Large Pores"}
	Budgets   = []string{"Low (under ₹500)", "Medium (₹500-1500)", "High (₹1500+)"}
)

// Options is the catalog payload served to clients building the form.
type Options struct {
	SkinTypes []string `json:"skinTypes"`
	AgeGroups []string `json:"ageGroups"`
	Concerns  []string `json:"concerns"`
	Budgets   []string `json:"budgets"`
}

// Catalog returns copies of every option list.
func Catalog() Options {
	return Options{
		SkinTypes: append([]string(nil), SkinTypes...),
		AgeGroups: append([]string(nil), AgeGroups...),
		Concerns:  append([]string(nil), Concerns...),
		Budgets:   append([]string(nil), Budgets...),
	}
}

func IsSkinType(v string) bool { return contains(SkinTypes, v) }
func IsAgeGroup(v string) bool { return contains(AgeGroups, v) }
func IsConcern(v string) bool  { return contains(Concerns, v) }
func IsBudget(v string) bool   { return contains(Budgets, v) }

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
