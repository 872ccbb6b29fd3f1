package completion

import (
	"strconv"
	"strings"

	"github.com/prodverse/multiverse-backend/internal/entity"
)

// defaultScenarioName labels scenarios the model forgot to name.
const defaultScenarioName = "Unnamed Scenario"

// normalizeScenario maps one loosely-typed scenario object onto the
// canonical schema. Every field gets its documented default, so callers
// never see an absent or null field. A nil map yields a fully-defaulted
// scenario.
func normalizeScenario(m map[string]any) *entity.Scenario {
	return &entity.Scenario{
		Name:          stringField(m, "name", defaultScenarioName),
		Description:   stringField(m, "description", ""),
		Outcome:       stringField(m, "outcome", ""),
		Probability:   stringField(m, "probability", ""),
		Brainstorming: stringList(m["brainstorming"]),
		MarketSizing:  stringField(m, "marketSizing", ""),
		CustomerNeeds: stringList(m["customerNeeds"]),
		Reasoning:     stringField(m, "reasoning", ""),
		Timeline:      normalizeTimeline(m["timeline"]),
		// Recommendation flags are resolved afterwards against the
		// top-level recommendation object.
		Recommended:                 false,
		RecommendationJustification: "",
	}
}

// stringField reads a scalar field as a string, substituting def for
// absent, empty or non-scalar values. Numbers and booleans are rendered,
// matching how display strings like "25%" or "72" arrive either way.
func stringField(m map[string]any, key, def string) string {
	if m == nil {
		return def
	}
	s := scalarString(m[key])
	if s == "" {
		return def
	}
	return s
}

// stringList coerces an array-typed field: a bare non-empty string becomes
// a single-element list, a sequence keeps its scalar elements, anything
// else becomes an empty list.
func stringList(v any) []string {
	switch val := v.(type) {
	case string:
		if val == "" {
			return []string{}
		}
		return []string{val}
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s := scalarString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

// normalizeTimeline accepts only a sequence; any other shape defaults to
// an empty timeline. Non-object entries are dropped.
func normalizeTimeline(v any) []entity.MonthEntry {
	items, ok := v.([]any)
	if !ok {
		return []entity.MonthEntry{}
	}

	timeline := make([]entity.MonthEntry, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		timeline = append(timeline, entity.MonthEntry{
			Month:            intField(m, "month"),
			Events:           stringList(m["events"]),
			Metrics:          normalizeMetrics(m["metrics"]),
			Risks:            stringList(m["risks"]),
			RegulatoryStatus: normalizeStatus(m["regulatoryStatus"]),
		})
	}
	return timeline
}

func normalizeMetrics(v any) entity.MonthMetrics {
	m, ok := v.(map[string]any)
	if !ok {
		return entity.MonthMetrics{}
	}
	return entity.MonthMetrics{
		Revenue:     scalarString(m["revenue"]),
		UserGrowth:  scalarString(m["userGrowth"]),
		NPS:         scalarString(m["nps"]),
		MarketShare: scalarString(m["marketShare"]),
	}
}

// normalizeStatus lower-cases and trims the regulatory flag. Values outside
// the known set pass through untouched; guessing a traffic light the model
// never emitted would be worse than showing what it said.
func normalizeStatus(v any) entity.RegulatoryStatus {
	s, _ := v.(string)
	return entity.RegulatoryStatus(strings.ToLower(strings.TrimSpace(s)))
}

func intField(m map[string]any, key string) int {
	switch val := m[key].(type) {
	case float64:
		return int(val)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// scalarString renders a scalar JSON value as a display string. Composite
// values render as empty: the schema has no place for them.
func scalarString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}
