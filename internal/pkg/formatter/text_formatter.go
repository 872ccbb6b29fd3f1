package formatter

const (
	textContentType   = "text/plain; charset=utf-8"
	textFileExtension = ".txt"
)

// TextFormatter passes the rendered report through unchanged; the report
// renderer already produces the human-readable plain-text layout.
type TextFormatter struct{}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

func (tf *TextFormatter) Format(text string) ([]byte, error) {
	return []byte(text), nil
}

func (tf *TextFormatter) ContentType() string {
	return textContentType
}

func (tf *TextFormatter) FileExtension() string {
	return textFileExtension
}
