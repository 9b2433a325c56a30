package results

import (
	"bytes"
	"encoding/json"
	"fmt"

	"aurelia-backend/internal/recommendations"
)

// Encode serializes a result into the flat slot layout.
func Encode(result recommendations.Result) ([]byte, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return raw, nil
}

// Decode parses a stored payload. Anything that is not a usable result decodes
// to ok=false rather than an error: non-objects, objects missing any of the
// three lists, and objects with no summary values at all.
func Decode(raw []byte) (recommendations.Result, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return recommendations.Result{}, false
	}
	var result recommendations.Result
	if err := json.Unmarshal(trimmed, &result); err != nil {
		return recommendations.Result{}, false
	}
	if !usable(result) {
		return recommendations.Result{}, false
	}
	return result, true
}

func usable(r recommendations.Result) bool {
	if r.MorningRoutine == nil || r.NightRoutine == nil || r.RecommendedProducts == nil {
		return false
	}
	return r.SkinType != "" || r.ConcernsSummary != "" || r.BudgetLabel != ""
}
