package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"lushu/internal/voice"
)

const geminiModel = "gemini-2.0-flash"

// GeminiProvider implements Provider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiProvider{client: client}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// ParseTravelFields extracts trip parameters from a transcript.
func (p *GeminiProvider) ParseTravelFields(ctx context.Context, transcript string) (voice.TravelFields, error) {
	today := time.Now().Format("2006-01-02")
	raw, err := p.generate(ctx, fieldSystemPrompt, buildFieldPrompt(transcript, today), 0.1)
	if err != nil {
		return voice.TravelFields{}, err
	}
	fields, _, err := DecodeTravelFields(raw)
	return fields, err
}

// GenerateItinerary produces a full travel plan document.
func (p *GeminiProvider) GenerateItinerary(ctx context.Context, req PlanRequest) (*TravelPlan, error) {
	raw, err := p.generate(ctx, planSystemPrompt, buildPlanPrompt(req), 0.7)
	if err != nil {
		return nil, err
	}
	plan, _, err := DecodeTravelPlan(raw)
	return plan, err
}

func (p *GeminiProvider) generate(ctx context.Context, system, user string, temperature float32) (string, error) {
	model := p.client.GenerativeModel(geminiModel)

	model.ResponseMIMEType = "application/json"
	model.SetTemperature(temperature)

	fullPrompt := fmt.Sprintf("%s\n\n%s", system, user)
	resp, err := model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: API returned empty candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini: API returned empty text parts")
	}
	return b.String(), nil
}
