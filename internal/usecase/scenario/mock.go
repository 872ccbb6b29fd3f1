package scenario

import (
	"fmt"
	"strconv"

	"github.com/prodverse/multiverse-backend/internal/entity"
)

// GenerateMockScenarios builds the deterministic three-path fallback set
// for the requested horizon. Metrics follow fixed per-month drift curves
// so two calls with the same timeframe are identical.
func GenerateMockScenarios(timeframeMonths int) []*entity.Scenario {
	return []*entity.Scenario{
		optimisticPath(timeframeMonths),
		realisticPath(timeframeMonths),
		pessimisticPath(timeframeMonths),
	}
}

func optimisticPath(months int) *entity.Scenario {
	timeline := make([]entity.MonthEntry, 0, months)
	for i := 0; i < months; i++ {
		firstEvent := fmt.Sprintf("Month %d milestone achieved", i+1)
		if i == 0 {
			firstEvent = "Product launch successful"
		}
		timeline = append(timeline, entity.MonthEntry{
			Month:  i + 1,
			Events: []string{firstEvent, "Positive user feedback"},
			Metrics: entity.MonthMetrics{
				Revenue:     fmt.Sprintf("+%d%%", 15+i*5),
				UserGrowth:  fmt.Sprintf("+%d%%", 20+i*8),
				NPS:         strconv.Itoa(65 + i*2),
				MarketShare: fmt.Sprintf("+%d%%", 2+i),
			},
			Risks:            []string{"Minor technical debt", "Scaling challenges"},
			RegulatoryStatus: entity.RegulatoryGreen,
		})
	}

	return &entity.Scenario{
		Name:        "Optimistic Path",
		Description: "Market conditions align perfectly, early adoption exceeds expectations",
		Outcome:     "Dominant market position established with strong regulatory compliance",
		Probability: "25%",
		Reasoning:   "Aggressive early investment plus viral growth drives outsized adoption and market momentum.",
		Brainstorming: []string{
			"Prioritize viral onboarding loops to accelerate early adoption",
			"Partner with two enterprise customers for credibility",
			"Introduce premium features after product-market fit",
		},
		MarketSizing: "TAM estimated at $2.4B with a reachable SAM of $480M in the first 24 months",
		CustomerNeeds: []string{
			"Simple onboarding and low-friction payments",
			"Robust data-export and reporting",
			"Dedicated onboarding support for enterprise customers",
		},
		Timeline: timeline,
	}
}

func realisticPath(months int) *entity.Scenario {
	timeline := make([]entity.MonthEntry, 0, months)
	for i := 0; i < months; i++ {
		firstEvent := "Incremental progress"
		if i == 0 {
			firstEvent = "Soft launch with limited scope"
		}
		timeline = append(timeline, entity.MonthEntry{
			Month:  i + 1,
			Events: []string{firstEvent, "Mixed customer feedback"},
			Metrics: entity.MonthMetrics{
				Revenue:     fmt.Sprintf("+%d%%", 8+i*2),
				UserGrowth:  fmt.Sprintf("+%d%%", 10+i*3),
				NPS:         strconv.Itoa(55 + i),
				MarketShare: "+" + formatDrift(1+0.5*float64(i)) + "%",
			},
			Risks:            []string{"Budget constraints", "Competitor moves"},
			RegulatoryStatus: entity.RegulatoryYellow,
		})
	}

	return &entity.Scenario{
		Name:        "Realistic Path",
		Description: "Steady growth with expected challenges and competitive pressure",
		Outcome:     "Stable market position with moderate growth trajectory",
		Probability: "50%",
		Reasoning:   "Measured investment and iterative learning lead to stable growth while managing risk.",
		Brainstorming: []string{
			"Focus on retention: build lightweight referral incentives",
			"Invest in analytics to identify high-value cohorts",
			"Run localized pilots in 2 regions before full roll-out",
		},
		MarketSizing: "TAM ~$1.8B with initial SAM of $300M for target segments",
		CustomerNeeds: []string{
			"Clear pricing tiers",
			"Reliable performance at scale",
			"Transparent privacy and compliance controls",
		},
		Timeline: timeline,
	}
}

func pessimisticPath(months int) *entity.Scenario {
	timeline := make([]entity.MonthEntry, 0, months)
	for i := 0; i < months; i++ {
		firstEvent := fmt.Sprintf("Setback in month %d", i+1)
		if i == 0 {
			firstEvent = "Launch delayed due to compliance"
		}
		timeline = append(timeline, entity.MonthEntry{
			Month:  i + 1,
			Events: []string{firstEvent, "User adoption below target"},
			Metrics: entity.MonthMetrics{
				Revenue:     fmt.Sprintf("-%d%%", 2+i),
				UserGrowth:  fmt.Sprintf("+%d%%", 2+i),
				NPS:         strconv.Itoa(45 - i),
				MarketShare: "-" + formatDrift(1+0.3*float64(i)) + "%",
			},
			Risks:            []string{"Regulatory investigation", "Team attrition", "Technical failures"},
			RegulatoryStatus: entity.RegulatoryRed,
		})
	}

	return &entity.Scenario{
		Name:        "Pessimistic Path",
		Description: "Unexpected headwinds, regulatory scrutiny, and market resistance",
		Outcome:     "Pivot required or strategic retreat from initial vision",
		Probability: "25%",
		Reasoning:   "Regulatory and market headwinds limit options, forcing conservative actions or pivots.",
		Brainstorming: []string{
			"Explore narrower niche positioning to reduce regulatory exposure",
			"Delay large marketing spends until compliance risks are mitigated",
			"Consider partnerships to share compliance burden with established players",
		},
		MarketSizing: "Constrained near-term TAM due to regulation; runway-focused SAM of $80M",
		CustomerNeeds: []string{
			"Explicit compliance guarantees",
			"Low-risk deployment options",
			"Clear escalation paths for support",
		},
		Timeline: timeline,
	}
}

// formatDrift prints fractional drift without trailing zeros ("1.5", "2").
func formatDrift(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
