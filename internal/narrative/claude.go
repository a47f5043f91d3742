// Package narrative generates an optional plain-language commentary for an
// analysis report using the Anthropic API. It is strictly additive: any
// failure here degrades to an empty commentary, never a failed analysis.
package narrative

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"

	"StockScope/internal/model"
	"StockScope/internal/notifier"
)

const systemPrompt = "You are a financial analysis assistant. Summarize the " +
	"technical and risk picture below in 3-4 plain sentences for a retail " +
	"investor. Do not give buy or sell advice. Do not invent numbers."

// Writer produces commentary via the Anthropic Messages API. The client reads
// ANTHROPIC_API_KEY from the environment.
type Writer struct {
	client    anthropic.Client
	model     string
	maxTokens int
	timeout   time.Duration
}

// NewWriter creates a Writer for the given model.
func NewWriter(modelName string, maxTokens int) *Writer {
	return &Writer{
		client:    anthropic.NewClient(),
		model:     modelName,
		maxTokens: maxTokens,
		timeout:   60 * time.Second,
	}
}

// Commentary asks the model for a short narrative over the report.
func (w *Writer) Commentary(ctx context.Context, report *model.AnalysisReport) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(w.model),
		MaxTokens: int64(w.maxTokens),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(report))),
		},
	}

	resp, err := w.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("narrative request: %w", err)
	}

	var out strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			out.WriteString(block.Text)
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("narrative request: empty response")
	}
	return out.String(), nil
}

// buildPrompt flattens the report into the same text the Telegram formatter
// produces, minus HTML tags, so the model sees exactly what the user sees.
func buildPrompt(report *model.AnalysisReport) string {
	text := notifier.FormatReport(report)
	text = strings.ReplaceAll(text, "<b>", "")
	text = strings.ReplaceAll(text, "</b>", "")
	return text
}
