package ai

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"lushu/internal/voice"
)

// zhipuBaseURL is the OpenAI-compatible endpoint of the Zhipu (智谱) API.
const zhipuBaseURL = "https://open.bigmodel.cn/api/paas/v4"

const zhipuModel = "glm-4"

// ZhipuProvider talks to Zhipu GLM through the OpenAI-compatible chat API.
type ZhipuProvider struct {
	client *openai.Client
}

// NewZhipuProvider builds a provider for the given API key.
func NewZhipuProvider(apiKey string) *ZhipuProvider {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = zhipuBaseURL
	return &ZhipuProvider{client: openai.NewClientWithConfig(cfg)}
}

// ParseTravelFields sends the transcript through GLM and normalizes the
// reply into TravelFields.
func (p *ZhipuProvider) ParseTravelFields(ctx context.Context, transcript string) (voice.TravelFields, error) {
	today := time.Now().Format("2006-01-02")
	raw, err := p.chat(ctx, fieldSystemPrompt, buildFieldPrompt(transcript, today), 0.1, 1000)
	if err != nil {
		return voice.TravelFields{}, err
	}
	fields, _, err := DecodeTravelFields(raw)
	return fields, err
}

// GenerateItinerary asks GLM for a full travel plan and normalizes it.
func (p *ZhipuProvider) GenerateItinerary(ctx context.Context, req PlanRequest) (*TravelPlan, error) {
	raw, err := p.chat(ctx, planSystemPrompt, buildPlanPrompt(req), 0.7, 4000)
	if err != nil {
		return nil, err
	}
	plan, _, err := DecodeTravelPlan(raw)
	return plan, err
}

func (p *ZhipuProvider) chat(ctx context.Context, system, user string, temperature float32, maxTokens int) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       zhipuModel,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("zhipu: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("zhipu: API returned empty choices array")
	}
	return resp.Choices[0].Message.Content, nil
}
