// Package prompt renders the scenario-generation instruction string sent
// to the completion upstream. Rendering is pure: identical inputs always
// produce a byte-identical prompt.
package prompt

import (
	"fmt"
	"strings"

	"github.com/prodverse/multiverse-backend/internal/entity"
)

const basePromptWithDocument = `You are a strategic product simulation AI. I've uploaded a product document that contains details about my product.

Based on the uploaded document and the following information, generate 5 divergent future scenarios for a product management decision.`

const basePromptNoDocument = `You are a strategic product simulation AI. Generate 5 divergent future scenarios for a product management decision.`

// maxNewsLines bounds how many recent headlines are quoted in the prompt.
const maxNewsLines = 2

// Build renders the full prompt from the form, the effective industry and
// timeframe, and the optional market context. Absent market fields are
// skipped entirely; empty form fields render as empty strings.
func Build(form entity.FormInput, hasDocument bool, timeframeMonths int, industry string, market *entity.MarketContext) string {
	var b strings.Builder

	if hasDocument {
		b.WriteString(basePromptWithDocument)
	} else {
		b.WriteString(basePromptNoDocument)
	}

	challenge := form.ProductType
	if challenge == "" {
		challenge = form.Decision
	}

	fmt.Fprintf(&b, "\n\nUSER'S CHALLENGE: %s\n", challenge)
	fmt.Fprintf(&b, "\nCRITICAL DECISION TO MAKE: %s\n", form.Decision)
	fmt.Fprintf(&b, "INDUSTRY: %s\n", industry)
	fmt.Fprintf(&b, "TIMEFRAME: %d months\n", timeframeMonths)
	fmt.Fprintf(&b, "ADDITIONAL CONTEXT: %s", form.Context)

	writeMarketContext(&b, industry, market)

	b.WriteString("\n\n")
	writeInstructions(&b, industry, timeframeMonths, hasDocument)

	return b.String()
}

// writeMarketContext renders the market block field-by-field. Baseline
// fields are always present when a context is supplied; each enrichment
// line is rendered only if its source responded.
func writeMarketContext(b *strings.Builder, industry string, market *entity.MarketContext) {
	if market == nil {
		return
	}

	fmt.Fprintf(b, "\n\nCURRENT MARKET CONTEXT FOR %s:\n", strings.ToUpper(industry))
	fmt.Fprintf(b, "- Market Trend: %s\n", market.Trend)
	fmt.Fprintf(b, "- Growth Rate: %s\n", market.GrowthRate)
	fmt.Fprintf(b, "- Key Indicators to Monitor: %s\n", strings.Join(market.KeyIndicators, ", "))
	fmt.Fprintf(b, "- Current Market Focus: %s\n", market.CurrentFocus)
	fmt.Fprintf(b, "- Market Size: %s\n", market.MarketSize)
	fmt.Fprintf(b, "- Industry Benchmarks: %s", market.Benchmarks)

	if len(market.RecentNews) > 0 {
		news := market.RecentNews
		if len(news) > maxNewsLines {
			news = news[:maxNewsLines]
		}
		fmt.Fprintf(b, "\n- Recent News: %s", strings.Join(news, " | "))
	}
	if market.SentimentIndicator != "" {
		fmt.Fprintf(b, "\n- News Sentiment: %s", market.SentimentIndicator)
	}
	if market.BroaderMarketSentiment != "" {
		fmt.Fprintf(b, "\n- Broader Market Sentiment: %s", market.BroaderMarketSentiment)
	}
	if market.MarketChange24h != "" {
		fmt.Fprintf(b, "\n- 24h Market Change: %s", market.MarketChange24h)
	}
}

// writeInstructions appends the fixed instruction block: the five decision
// paths, the required per-scenario fields, the recommendation object and
// the literal example JSON the model should mimic structurally.
func writeInstructions(b *strings.Builder, industry string, timeframeMonths int, hasDocument bool) {
	b.WriteString(`Generate exactly 5 scenarios representing different decision paths (for example: Aggressive Growth, Measured Growth, Hold/Wait, Pivot, Defensive). For each scenario, provide a month-by-month timeline.

For each scenario include these additional fields: "brainstorming" (an array of short tactical ideas), "marketSizing" (one-line market sizing summary), "customerNeeds" (array of top customer needs), and "reasoning" (a short explanation why this decision path leads to the described outcome). In every scenario's "reasoning" explicitly reference the provided DECISION and explain how that decision interacts with the scenario's path.

At the top level of the JSON response include a "recommendation" object with the fields: { "scenarioName": "<name of the scenario you recommend>", "justification": "short justification that references the DECISION and any public benchmarks or general market reasoning used to reach this conclusion" }.

Return your response as a valid JSON object with this exact structure:
{
  "scenarios": [
    {
      "name": "Aggressive Growth",
      "description": "brief description",
      "outcome": "overall outcome summary",
      "probability": "percentage",
      "brainstorming": ["idea 1", "idea 2"],
      "marketSizing": "TAM/SAM summary",
      "customerNeeds": ["need 1", "need 2"],
      "reasoning": "short rationale",
      "timeline": [
        {
          "month": 1,
          "events": ["event 1", "event 2"],
          "metrics": {
            "revenue": "+15%",
            "userGrowth": "+25%",
            "nps": "72",
            "marketShare": "+3%"
          },
          "risks": ["risk 1", "risk 2"],
          "regulatoryStatus": "green|yellow|red"
        }
      ]
    }
  ]
}

`)

	fmt.Fprintf(b, "Make the scenarios realistic and specific to %s. Include regulatory considerations for each month. Make metrics quantitative. Ensure timeline has %d months.", industry, timeframeMonths)
	if hasDocument {
		b.WriteString(" Base your scenarios on the product details from the uploaded document.")
	}
	b.WriteString("\n\n")
	b.WriteString(`In your reasoning and in the top-level recommendation, reference public benchmarks or common industry heuristics where relevant (e.g., SaaS benchmarks for churn/ARR growth, e-commerce conversion rates, typical NPS ranges) and clearly state any assumptions. Provide short citations or mention common sources (e.g., "benchmark: typical SaaS ARR growth ~20%/yr (public benchmarks)") when used. End with a single-line final recommendation object explaining which scenario to choose relative to the DECISION and why.`)
	b.WriteString("\n")
}
