package profile

// Answers is the mutable answer set collected by one questionnaire. Empty
// strings mean the question was left unanswered.
type Answers struct {
	SkinType     string   `json:"skinType"`
	AgeGroup     string   `json:"ageGroup"`
	Concerns     []string `json:"concerns"`
	AllergyNotes string   `json:"allergyNotes"`
	Budget       string   `json:"budget"`
}

// ToggleConcern flips membership of tag and reports whether it is now selected.
// New tags are appended, so selection order is preserved.
func (a *Answers) ToggleConcern(tag string) bool {
	for i, existing := range a.Concerns {
		if existing == tag {
			a.Concerns = append(a.Concerns[:i:i], a.Concerns[i+1:]...)
			return false
		}
	}
	a.Concerns = append(a.Concerns, tag)
	return true
}

// HasConcern reports whether tag is selected.
func (a Answers) HasConcern(tag string) bool {
	return contains(a.Concerns, tag)
}

// Clone returns a deep copy.
func (a Answers) Clone() Answers {
	out := a
	if a.Concerns != nil {
		out.Concerns = append([]string(nil), a.Concerns...)
	}
	return out
}
