package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"weblive_server/internal/ai/prompts"
	"weblive_server/internal/types"
	"weblive_server/internal/utils"
)

var (
	ErrMissingAPIKey    = errors.New("openai api key is not configured")
	ErrEmptyModelOutput = errors.New("openai returned an empty plan")
)

// RepairRequest carries a rejected plan back to the model together with the
// validator's reasons.
type RepairRequest struct {
	InvalidPayload json.RawMessage `json:"invalid_payload"`
	Instruction    string          `json:"instruction"`
}

type planPayload struct {
	Mode  string          `json:"mode"`
	Input types.PlanInput `json:"input"`
}

type repairPayload struct {
	Mode           string          `json:"mode"`
	InvalidPayload json.RawMessage `json:"invalid_payload"`
	Instruction    string          `json:"instruction"`
}

// Planner wraps the OpenAI client for site planning. It performs single
// calls only; retries across attempts and fallback are the orchestrator's
// responsibility.
type Planner struct {
	client *openai.Client
	model  string
	schema json.RawMessage
}

func NewPlanner(apiKey string, model string) (*Planner, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Planner{
		client: openai.NewClient(apiKey),
		model:  model,
		schema: BuildPlanSchema(),
	}, nil
}

// plannerRequestBody builds the user message for a plan or repair call. A
// rejected payload can be anything the model emitted, including non-JSON
// text, so it is quoted into a JSON string when it would not embed as-is.
func plannerRequestBody(input types.PlanInput, repair *RepairRequest) ([]byte, error) {
	if repair == nil {
		return json.Marshal(planPayload{Mode: "plan", Input: input})
	}
	invalid := repair.InvalidPayload
	if !json.Valid(invalid) {
		quoted, err := json.Marshal(string(invalid))
		if err != nil {
			return nil, fmt.Errorf("quote rejected payload: %w", err)
		}
		invalid = quoted
	}
	return json.Marshal(repairPayload{Mode: "repair", InvalidPayload: invalid, Instruction: repair.Instruction})
}

// CallPlanner runs one planning call. A nil repair means a fresh plan; a
// non-nil repair resubmits the rejected payload with fix instructions. The
// returned bytes are the raw model JSON, not yet validated.
func (p *Planner) CallPlanner(ctx context.Context, input types.PlanInput, repair *RepairRequest) (json.RawMessage, error) {
	userJSON, err := plannerRequestBody(input, repair)
	if err != nil {
		return nil, fmt.Errorf("marshal planner request: %w", err)
	}

	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompts.GetPlannerSystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: string(userJSON)},
		},
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "site_plan",
				Schema: p.schema,
			},
		},
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil && utils.ShouldRetry(err) {
		log.Printf("OpenAI planner call failed, retrying once: %v", err)
		time.Sleep(1 * time.Second)
		resp, err = p.client.CreateChatCompletion(ctx, req)
	}
	if err != nil {
		return nil, fmt.Errorf("openai planner call failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("OpenAI usage for empty planner response: %+v", resp.Usage)
		return nil, ErrEmptyModelOutput
	}

	return json.RawMessage(stripFences(resp.Choices[0].Message.Content)), nil
}

// stripFences removes markdown code fences some models wrap JSON in despite
// instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
