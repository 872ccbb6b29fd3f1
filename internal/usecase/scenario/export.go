package scenario

import (
	"fmt"
	"strings"

	"github.com/prodverse/multiverse-backend/internal/entity"
)

// renderScenarioText flattens one scenario into the plain-text report
// that every export format wraps. Optional sections are skipped when
// empty so short scenarios stay compact.
func renderScenarioText(s *entity.Scenario, decision string) string {
	var b strings.Builder

	b.WriteString("PRODUCT MULTIVERSE SIMULATION\n")
	b.WriteString("==============================\n\n")

	fmt.Fprintf(&b, "Decision: %s\n", decision)
	fmt.Fprintf(&b, "Scenario: %s\n", s.Name)
	fmt.Fprintf(&b, "Probability: %s\n\n", s.Probability)

	b.WriteString(s.Description)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "OUTCOME: %s\n\n", s.Outcome)

	if len(s.Brainstorming) > 0 {
		b.WriteString("BRAINSTORMING:\n- ")
		b.WriteString(strings.Join(s.Brainstorming, "\n- "))
		b.WriteString("\n\n")
	}
	if s.MarketSizing != "" {
		b.WriteString("MARKET SIZING:\n")
		b.WriteString(s.MarketSizing)
		b.WriteString("\n\n")
	}
	if len(s.CustomerNeeds) > 0 {
		b.WriteString("CUSTOMER NEEDS:\n- ")
		b.WriteString(strings.Join(s.CustomerNeeds, "\n- "))
		b.WriteString("\n\n")
	}
	if s.Recommended && s.RecommendationJustification != "" {
		b.WriteString("RECOMMENDED:\n")
		b.WriteString(s.RecommendationJustification)
		b.WriteString("\n\n")
	}

	b.WriteString("TIMELINE:\n")
	for _, m := range s.Timeline {
		fmt.Fprintf(&b, "\nMonth %d:\n", m.Month)
		fmt.Fprintf(&b, "- Events: %s\n", strings.Join(m.Events, ", "))
		fmt.Fprintf(&b, "- Revenue: %s\n", m.Metrics.Revenue)
		fmt.Fprintf(&b, "- User Growth: %s\n", m.Metrics.UserGrowth)
		fmt.Fprintf(&b, "- NPS: %s\n", m.Metrics.NPS)
		fmt.Fprintf(&b, "- Market Share: %s\n", m.Metrics.MarketShare)
		fmt.Fprintf(&b, "- Regulatory Status: %s\n", strings.ToUpper(string(m.RegulatoryStatus)))
		fmt.Fprintf(&b, "- Risks: %s\n", strings.Join(m.Risks, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}
