// Package completion turns a raw language-model reply into the canonical
// scenario list. Model output is adversarial to parse: JSON may be wrapped
// in commentary, duplicated, or truncated, so extraction runs an ordered
// chain of recovery strategies before normalization fills in defaults.
package completion

import (
	"encoding/json"
	"strings"

	"github.com/prodverse/multiverse-backend/internal/entity"
)

// previewLimit bounds the candidate excerpt carried inside a
// MalformedJSONError so error payloads stay small.
const previewLimit = 160

// Parse extracts, validates and normalizes the scenario payload embedded
// in a raw completion. Pure and synchronous; every failure is returned as
// a value from the entity error taxonomy, never a panic. A successful
// return is always a non-empty list with at most one recommended scenario.
func Parse(raw *entity.RawCompletion) ([]*entity.Scenario, error) {
	content, err := raw.TextContent()
	if err != nil {
		return nil, err
	}

	candidate, _, ok := extractCandidate(content)
	if !ok {
		return nil, entity.ErrNoJSONFound
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
		return nil, &entity.MalformedJSONError{Preview: preview(candidate), Err: err}
	}

	rawScenarios, ok := doc["scenarios"].([]any)
	if !ok || len(rawScenarios) == 0 {
		return nil, entity.ErrScenariosMissing
	}

	scenarios := make([]*entity.Scenario, 0, len(rawScenarios))
	for _, rs := range rawScenarios {
		// Non-object entries normalize to a fully-defaulted scenario so a
		// successful parse never shrinks to an empty list.
		m, _ := rs.(map[string]any)
		scenarios = append(scenarios, normalizeScenario(m))
	}

	applyRecommendation(scenarios, doc["recommendation"])

	return scenarios, nil
}

// applyRecommendation flags the scenario the model recommended. Matching is
// case-insensitive and whitespace-trimmed; the first match wins, so at most
// one scenario ends up flagged. No match means no flag — not an error.
func applyRecommendation(scenarios []*entity.Scenario, v any) {
	rec, ok := v.(map[string]any)
	if !ok {
		return
	}

	name, _ := rec["scenarioName"].(string)
	name = canonicalName(name)
	if name == "" {
		return
	}

	for _, s := range scenarios {
		if canonicalName(s.Name) == name {
			s.Recommended = true
			justification, _ := rec["justification"].(string)
			s.RecommendationJustification = justification
			return
		}
	}
}

func canonicalName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func preview(candidate string) string {
	if len(candidate) <= previewLimit {
		return candidate
	}
	return candidate[:previewLimit] + "..."
}
