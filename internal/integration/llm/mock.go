package llm

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/prodverse/multiverse-backend/internal/entity"
	"go.uber.org/zap"
)

// MockConnector replays a canned completion so the full extraction
// pipeline can run without an upstream. The reply deliberately mimics a
// messy model: prose preamble, an echoed example object, then the real
// payload — the same shapes the extractor has to survive in production.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) CreateCompletion(ctx context.Context, req *entity.CompletionRequest) (*entity.RawCompletion, error) {
	ctxzap.Info(ctx, "[MOCK] returning canned chat completion",
		zap.Int("prompt_length", len(req.Prompt)),
		zap.Bool("has_document", req.Document != nil),
	)

	return entity.NewTextBlockCompletion(mockCompletionText), nil
}

const mockCompletionText = `Let me reason about the decision paths before answering.

The structure I will follow looks like this:
{
  "name": "Example Path",
  "probability": "percentage"
}

Here is the final answer:

{
  "scenarios": [
    {
      "name": "Aggressive Growth",
      "description": "Full-scale launch with maximum marketing spend",
      "outcome": "Market leadership within the timeframe if execution holds",
      "probability": "20%",
      "brainstorming": ["Hire a growth team early", "Double paid acquisition budget"],
      "marketSizing": "TAM $2B, reachable SAM $400M",
      "customerNeeds": ["Fast onboarding", "Transparent pricing"],
      "reasoning": "The decision favors speed; aggressive investment compounds early advantages.",
      "timeline": [
        {
          "month": 1,
          "events": ["Launch campaign live", "First enterprise deal signed"],
          "metrics": {"revenue": "+18%", "userGrowth": "+30%", "nps": "68", "marketShare": "+2%"},
          "risks": ["Burn rate", "Support backlog"],
          "regulatoryStatus": "green"
        },
        {
          "month": 2,
          "events": ["Expansion into second region"],
          "metrics": {"revenue": "+24%", "userGrowth": "+34%", "nps": "70", "marketShare": "+3%"},
          "risks": ["Competitor response"],
          "regulatoryStatus": "yellow"
        }
      ]
    },
    {
      "name": "Measured Growth",
      "description": "Staged rollout with monthly checkpoints",
      "outcome": "Steady share gains at sustainable burn",
      "probability": "35%",
      "brainstorming": ["Pilot with two design partners", "Gate spend on retention"],
      "marketSizing": "TAM $2B, initial SAM $150M",
      "customerNeeds": ["Reliability", "Clear migration path"],
      "reasoning": "The decision tolerates a slower ramp; checkpoints cap downside.",
      "timeline": [
        {
          "month": 1,
          "events": ["Pilot cohort onboarded"],
          "metrics": {"revenue": "+9%", "userGrowth": "+12%", "nps": "60", "marketShare": "+1%"},
          "risks": ["Slow feedback loops"],
          "regulatoryStatus": "green"
        },
        {
          "month": 2,
          "events": ["Checkpoint review passed"],
          "metrics": {"revenue": "+11%", "userGrowth": "+14%", "nps": "61", "marketShare": "+1.5%"},
          "risks": ["Budget drift"],
          "regulatoryStatus": "green"
        }
      ]
    },
    {
      "name": "Hold/Wait",
      "description": "Delay the decision one quarter and keep optionality",
      "outcome": "No share gained, no capital burned",
      "probability": "15%",
      "brainstorming": ["Monitor competitor pricing weekly"],
      "marketSizing": "Unchanged TAM, shrinking early-mover window",
      "customerNeeds": ["Stability"],
      "reasoning": "Waiting interacts poorly with the decision's urgency but preserves cash.",
      "timeline": [
        {
          "month": 1,
          "events": ["Market watch only"],
          "metrics": {"revenue": "+0%", "userGrowth": "+1%", "nps": "55", "marketShare": "0%"},
          "risks": ["Competitor lock-in"],
          "regulatoryStatus": "green"
        }
      ]
    },
    {
      "name": "Pivot",
      "description": "Redirect the product toward the adjacent segment",
      "outcome": "New segment traction replaces the original bet",
      "probability": "15%",
      "brainstorming": ["Interview 20 adjacent-segment buyers"],
      "marketSizing": "Adjacent SAM $90M",
      "customerNeeds": ["Segment-specific workflows"],
      "reasoning": "If the decision's core assumption fails, the pivot reuses the platform.",
      "timeline": [
        {
          "month": 1,
          "events": ["Segment discovery sprints"],
          "metrics": {"revenue": "-2%", "userGrowth": "+3%", "nps": "52", "marketShare": "0%"},
          "risks": ["Team focus split"],
          "regulatoryStatus": "yellow"
        }
      ]
    },
    {
      "name": "Defensive",
      "description": "Protect the existing base and harden compliance",
      "outcome": "Retention holds while growth stalls",
      "probability": "15%",
      "brainstorming": ["Ship audit logging", "Renew top-20 accounts early"],
      "marketSizing": "Current base only, ~$40M ARR ceiling",
      "customerNeeds": ["Compliance guarantees", "Support SLAs"],
      "reasoning": "The decision is deferred in favor of defending revenue already won.",
      "timeline": [
        {
          "month": 1,
          "events": ["Compliance review started"],
          "metrics": {"revenue": "+1%", "userGrowth": "+0%", "nps": "58", "marketShare": "-0.5%"},
          "risks": ["Regulatory investigation", "Stagnation"],
          "regulatoryStatus": "red"
        }
      ]
    }
  ],
  "recommendation": {
    "scenarioName": "Measured Growth",
    "justification": "Staged spend fits the decision's risk profile; benchmark: typical SaaS ARR growth ~20%/yr (public benchmarks)."
  }
}`
