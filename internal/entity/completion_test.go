package entity

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestRawCompletionUnmarshalShapes(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bare string", `"plain reply"`, "plain reply"},
		{"content blocks", `{"content": [{"type": "text", "text": "block reply"}]}`, "block reply"},
		{"text field", `{"text": "field reply"}`, "field reply"},
		{"first text block wins", `{"content": [{"type": "image", "text": ""}, {"type": "text", "text": "second"}]}`, "second"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw RawCompletion
			if err := json.Unmarshal([]byte(tt.data), &raw); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			got, err := raw.TextContent()
			if err != nil {
				t.Fatalf("TextContent() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("TextContent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRawCompletionNonTextBlockFallback(t *testing.T) {
	raw := &RawCompletion{Content: []ContentBlock{{Type: "output", Text: "carried anyway"}}}
	got, err := raw.TextContent()
	if err != nil {
		t.Fatalf("TextContent() error = %v", err)
	}
	if got != "carried anyway" {
		t.Errorf("TextContent() = %q", got)
	}
}

func TestRawCompletionNoTextContent(t *testing.T) {
	tests := []struct {
		name string
		raw  *RawCompletion
	}{
		{"nil", nil},
		{"empty object", &RawCompletion{}},
		{"blocks without text", &RawCompletion{Content: []ContentBlock{{Type: "image"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.raw.TextContent(); !errors.Is(err, ErrNoTextContent) {
				t.Errorf("TextContent() error = %v, want ErrNoTextContent", err)
			}
		})
	}
}

func TestResolvedIndustry(t *testing.T) {
	tests := []struct {
		name string
		form FormInput
		want string
	}{
		{"plain industry", FormInput{Industry: "fintech"}, "fintech"},
		{"custom with value", FormInput{Industry: "custom", CustomIndustry: "space logistics"}, "space logistics"},
		{"custom without value", FormInput{Industry: "custom"}, "General"},
		{"empty industry", FormInput{}, "General"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.form.ResolvedIndustry(); got != tt.want {
				t.Errorf("ResolvedIndustry() = %q, want %q", got, tt.want)
			}
		})
	}
}
