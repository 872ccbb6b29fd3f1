package completion

import (
	"errors"
	"strings"
	"testing"

	"github.com/prodverse/multiverse-backend/internal/entity"
)

const wellFormedReply = `Let me think about the decision first.

Here is the final answer:

{
  "scenarios": [
    {
      "name": "Aggressive Growth",
      "description": "go big",
      "outcome": "market leadership",
      "probability": "30%",
      "brainstorming": ["hire growth team"],
      "marketSizing": "TAM $1B",
      "customerNeeds": ["speed"],
      "reasoning": "the decision rewards speed",
      "timeline": [
        {
          "month": 1,
          "events": ["launch"],
          "metrics": {"revenue": "+15%", "userGrowth": "+25%", "nps": "72", "marketShare": "+3%"},
          "risks": ["burn"],
          "regulatoryStatus": "green"
        }
      ]
    },
    {
      "name": "Hold/Wait",
      "description": "stay put",
      "outcome": "no change",
      "probability": "70%",
      "timeline": []
    }
  ],
  "recommendation": {
    "scenarioName": "Aggressive Growth",
    "justification": "speed compounds"
  }
}`

func TestParseWellFormedReply(t *testing.T) {
	scenarios, err := Parse(entity.NewTextBlockCompletion(wellFormedReply))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(scenarios) != 2 {
		t.Fatalf("len(scenarios) = %d, want 2", len(scenarios))
	}

	first := scenarios[0]
	if first.Name != "Aggressive Growth" {
		t.Errorf("Name = %q", first.Name)
	}
	if !first.Recommended {
		t.Error("first scenario should carry the recommendation flag")
	}
	if first.RecommendationJustification != "speed compounds" {
		t.Errorf("RecommendationJustification = %q", first.RecommendationJustification)
	}
	if len(first.Timeline) != 1 || first.Timeline[0].Metrics.NPS != "72" {
		t.Errorf("timeline not normalized: %+v", first.Timeline)
	}

	second := scenarios[1]
	if second.Recommended {
		t.Error("only one scenario may be recommended")
	}
	if second.Brainstorming == nil || len(second.Brainstorming) != 0 {
		t.Errorf("absent brainstorming should default to empty slice, got %v", second.Brainstorming)
	}
}

func TestParsePicksLastScenariosObject(t *testing.T) {
	content := `The structure looks like {"scenarios": [{"name": "Echoed Example"}]}.

Final answer: {"scenarios": [{"name": "Real Answer"}]}`

	scenarios, err := Parse(entity.NewTextBlockCompletion(content))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(scenarios) != 1 || scenarios[0].Name != "Real Answer" {
		t.Fatalf("scenarios = %+v, want the trailing object", scenarios)
	}
}

func TestParseRawShapes(t *testing.T) {
	body := `{"scenarios": [{"name": "Only"}]}`

	tests := []struct {
		name string
		raw  *entity.RawCompletion
	}{
		{"plain string", entity.NewPlainCompletion(body)},
		{"content blocks", entity.NewTextBlockCompletion(body)},
		{"text field", &entity.RawCompletion{Text: body}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenarios, err := Parse(tt.raw)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(scenarios) != 1 || scenarios[0].Name != "Only" {
				t.Errorf("scenarios = %+v", scenarios)
			}
		})
	}
}

func TestParseRecommendationMatchingIsLenient(t *testing.T) {
	content := `{
  "scenarios": [{"name": "Aggressive Growth"}, {"name": "Pivot"}],
  "recommendation": {"scenarioName": "  aggressive growth ", "justification": "case and spacing differ"}
}`

	scenarios, err := Parse(entity.NewPlainCompletion(content))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !scenarios[0].Recommended {
		t.Error("recommendation should match despite case and whitespace")
	}
	if scenarios[1].Recommended {
		t.Error("non-matching scenario flagged")
	}
}

func TestParseUnmatchedRecommendationIsNotAnError(t *testing.T) {
	content := `{
  "scenarios": [{"name": "Pivot"}],
  "recommendation": {"scenarioName": "Missing Path", "justification": "x"}
}`

	scenarios, err := Parse(entity.NewPlainCompletion(content))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if scenarios[0].Recommended {
		t.Error("no scenario should be flagged when the name does not match")
	}
}

func TestParseNonObjectScenarioEntry(t *testing.T) {
	content := `{"scenarios": [{"name": "Real"}, "garbage", 42]}`

	scenarios, err := Parse(entity.NewPlainCompletion(content))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(scenarios) != 3 {
		t.Fatalf("len(scenarios) = %d, want 3", len(scenarios))
	}
	if scenarios[1].Name != defaultScenarioName || scenarios[2].Name != defaultScenarioName {
		t.Errorf("non-object entries should normalize to defaulted scenarios: %+v", scenarios)
	}
}

func TestParseFailures(t *testing.T) {
	tests := []struct {
		name    string
		raw     *entity.RawCompletion
		wantErr error
	}{
		{"nil completion", nil, entity.ErrNoTextContent},
		{"no text content", &entity.RawCompletion{}, entity.ErrNoTextContent},
		{"no braces", entity.NewPlainCompletion("sorry, no JSON today"), entity.ErrNoJSONFound},
		{"empty scenarios array", entity.NewPlainCompletion(`{"scenarios": []}`), entity.ErrScenariosMissing},
		{"scenarios not an array", entity.NewPlainCompletion(`{"scenarios": "three of them"}`), entity.ErrScenariosMissing},
		{"missing scenarios key", entity.NewPlainCompletion(`{"result": []}`), entity.ErrScenariosMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseMalformedJSONCarriesBoundedPreview(t *testing.T) {
	// Valid-looking braces around invalid JSON, padded past the preview cap.
	content := `{"scenarios": [{"name": "Broken", "padding": "` + strings.Repeat("x", 400) + `"`
	content += "}" // closes the inner object only; the candidate stays malformed

	_, err := Parse(entity.NewPlainCompletion(content))

	var malformed *entity.MalformedJSONError
	if !errors.As(err, &malformed) {
		t.Fatalf("Parse() error = %v, want MalformedJSONError", err)
	}
	if len(malformed.Preview) > previewLimit+len("...") {
		t.Errorf("preview length = %d, want at most %d", len(malformed.Preview), previewLimit+3)
	}
	if malformed.Unwrap() == nil {
		t.Error("MalformedJSONError should wrap the decode error")
	}
}
