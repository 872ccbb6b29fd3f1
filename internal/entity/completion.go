package entity

import (
	"encoding/json"
	"strings"
)

// ContentBlock is one typed block of an upstream completion reply.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// RawCompletion is the opaque union of reply shapes accepted from the
// completion upstream: a bare string, an object with a list of typed
// content blocks, or an object with a direct text field. Upstreams differ
// (and change), so the shape is sniffed once here instead of scattering
// type switches through the pipeline.
type RawCompletion struct {
	// Plain is set when the upstream replied with a bare JSON string.
	Plain string `json:"-"`
	// Content holds the typed blocks of an object-shaped reply.
	Content []ContentBlock `json:"content,omitempty"`
	// Text holds the direct text field of an object-shaped reply.
	Text string `json:"text,omitempty"`

	isPlain bool
}

// NewPlainCompletion wraps a bare text reply.
func NewPlainCompletion(text string) *RawCompletion {
	return &RawCompletion{Plain: text, isPlain: true}
}

// NewTextBlockCompletion wraps text in the content-block shape.
func NewTextBlockCompletion(text string) *RawCompletion {
	return &RawCompletion{Content: []ContentBlock{{Type: "text", Text: text}}}
}

// UnmarshalJSON accepts all three upstream reply shapes.
func (r *RawCompletion) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		r.Plain = s
		r.isPlain = true
		return nil
	}

	type alias RawCompletion
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.Content = obj.Content
	r.Text = obj.Text
	return nil
}

// TextContent resolves the union to the text the extractor should scan.
// Resolution order matches shape precedence: bare string, first text-typed
// (or text-carrying) content block, then the direct text field. Returns
// ErrNoTextContent when no shape yields text.
func (r *RawCompletion) TextContent() (string, error) {
	if r == nil {
		return "", ErrNoTextContent
	}
	if r.isPlain {
		return r.Plain, nil
	}
	if len(r.Content) > 0 {
		for _, block := range r.Content {
			if block.Type == "text" {
				return block.Text, nil
			}
		}
		// No text-typed block; fall back to any block that carries text.
		for _, block := range r.Content {
			if block.Text != "" {
				return block.Text, nil
			}
		}
		return "", ErrNoTextContent
	}
	if r.Text != "" {
		return r.Text, nil
	}
	return "", ErrNoTextContent
}
