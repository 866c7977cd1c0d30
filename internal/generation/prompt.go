package generation

import (
	"bytes"
	"fmt"
	"text/template"
)

const defaultPromptTemplate = "Suggest a comprehensive learning pathway for {{.Interest}} at {{.Level}} level " +
	"with {{.TopicCount}} topics."

// promptData is the data passed to the prompt template.
type promptData struct {
	Interest   string
	Level      string
	TopicCount int
}

// PromptBuilder renders the pathway prompt.
type PromptBuilder struct {
	tmpl       *template.Template
	topicCount int
}

// NewPromptBuilder parses text as a prompt template. An empty text selects the
// default template.
func NewPromptBuilder(text string, topicCount int) (*PromptBuilder, error) {
	if text == "" {
		text = defaultPromptTemplate
	}
	tmpl, err := template.New("pathway").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %w", ErrInvalidConfig, err)
	}
	return &PromptBuilder{tmpl: tmpl, topicCount: topicCount}, nil
}

// Build renders the prompt for interest and level.
func (b *PromptBuilder) Build(interest, level string) (string, error) {
	var buf bytes.Buffer
	err := b.tmpl.Execute(&buf, promptData{
		Interest:   interest,
		Level:      level,
		TopicCount: b.topicCount,
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}
