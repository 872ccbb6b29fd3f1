package entity

// RegulatoryStatus is the per-month regulatory traffic light.
type RegulatoryStatus string

const (
	RegulatoryGreen  RegulatoryStatus = "green"
	RegulatoryYellow RegulatoryStatus = "yellow"
	RegulatoryRed    RegulatoryStatus = "red"
)

// FormInput is the user's decision form as consumed by the prompt builder.
// Immutable once submitted; industry carries its value in a companion
// field when the user picked "custom".
type FormInput struct {
	Decision        string `json:"decision"`
	ProductType     string `json:"productType"`
	Industry        string `json:"industry"`
	CustomIndustry  string `json:"customIndustry,omitempty"`
	TimeframeMonths int    `json:"timeframeMonths"`
	Context         string `json:"context,omitempty"`
}

// ResolvedIndustry returns the effective industry tag, falling back to the
// custom entry (or "General") when the user picked "custom".
func (f FormInput) ResolvedIndustry() string {
	if f.Industry == "custom" {
		if f.CustomIndustry != "" {
			return f.CustomIndustry
		}
		return "General"
	}
	if f.Industry == "" {
		return "General"
	}
	return f.Industry
}

// DocumentAttachment is an optional product document sent along with the
// form, already base64-encoded by the client.
type DocumentAttachment struct {
	Filename  string `json:"filename"`
	MediaType string `json:"mediaType"`
	Data      string `json:"data"`
}

// MonthMetrics carry display formatting ("+15%", "72"), so they stay strings.
type MonthMetrics struct {
	Revenue     string `json:"revenue"`
	UserGrowth  string `json:"userGrowth"`
	NPS         string `json:"nps"`
	MarketShare string `json:"marketShare"`
}

// MonthEntry is one month of a scenario timeline.
type MonthEntry struct {
	Month            int              `json:"month"`
	Events           []string         `json:"events"`
	Metrics          MonthMetrics     `json:"metrics"`
	Risks            []string         `json:"risks"`
	RegulatoryStatus RegulatoryStatus `json:"regulatoryStatus"`
}

// Scenario is the canonical, fully-defaulted scenario the pipeline
// guarantees to produce. No field is ever absent downstream: strings
// default to "", slices to empty, recommended to false.
type Scenario struct {
	Name                        string       `json:"name"`
	Description                 string       `json:"description"`
	Outcome                     string       `json:"outcome"`
	Probability                 string       `json:"probability"`
	Brainstorming               []string     `json:"brainstorming"`
	MarketSizing                string       `json:"marketSizing"`
	CustomerNeeds               []string     `json:"customerNeeds"`
	Reasoning                   string       `json:"reasoning"`
	Timeline                    []MonthEntry `json:"timeline"`
	Recommended                 bool         `json:"recommended"`
	RecommendationJustification string       `json:"recommendationJustification"`
}

// Recommendation is the transient top-level object the model emits; it is
// consumed to flag the matching scenario and then discarded.
type Recommendation struct {
	ScenarioName  string `json:"scenarioName"`
	Justification string `json:"justification"`
}

// MarketContext is the qualitative/quantitative industry snapshot used to
// enrich the prompt. The baseline fields are always present; the
// enrichment fields are filled only when live sources responded in time.
type MarketContext struct {
	Trend         string   `json:"trend"`
	GrowthRate    string   `json:"growth_rate"`
	KeyIndicators []string `json:"key_indicators"`
	CurrentFocus  string   `json:"current_focus"`
	MarketSize    string   `json:"market_size"`
	Benchmarks    string   `json:"relevant_benchmarks"`

	RecentNews             []string `json:"recent_news,omitempty"`
	SentimentIndicator     string   `json:"sentiment_indicator,omitempty"`
	BroaderMarketSentiment string   `json:"broader_market_sentiment,omitempty"`
	MarketChange24h        string   `json:"market_change_24h,omitempty"`
}

// NewsDigest is the condensed output of the news connector.
type NewsDigest struct {
	TopStories []string `json:"top_stories"`
	Sentiment  string   `json:"sentiment"`
}

// GlobalMarketTrends is the condensed output of the global market connector.
type GlobalMarketTrends struct {
	Sentiment       string `json:"market_sentiment"`
	Change24h       string `json:"market_change_24h"`
	CryptoDominance string `json:"crypto_dominance"`
}
