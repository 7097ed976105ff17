package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/trivia/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// ErrDrafterNotConfigured is returned when no Gemini API key is set.
var ErrDrafterNotConfigured = errors.New("question generation is not configured")

// QuestionDraft is a question/answer pair proposed by a QuestionDrafter.
type QuestionDraft struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type QuestionDrafter interface {
	DraftQuestion(ctx context.Context, category string, difficulty int) (*QuestionDraft, error)
}

type geminiQuestionDrafter struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiQuestionDrafter(cfg *config.Config) (QuestionDrafter, error) {
	if cfg.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Question generation will be unavailable.")
		return &geminiQuestionDrafter{}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel(cfg.Gemini.Model)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.9)
	return &geminiQuestionDrafter{client: client, model: model}, nil
}

func (d *geminiQuestionDrafter) DraftQuestion(ctx context.Context, category string, difficulty int) (*QuestionDraft, error) {
	if d.model == nil {
		return nil, ErrDrafterNotConfigured
	}

	prompt := buildDraftPrompt(category, difficulty)
	log.Debug().Str("category", category).Int("difficulty", difficulty).Msg("Requesting question draft from Gemini")

	resp, err := d.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("gemini returned no candidates")
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			raw.WriteString(string(txt))
		}
	}
	draft, err := parseQuestionDraft(raw.String())
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", raw.String()).Msg("Failed to parse question draft from Gemini response")
		return nil, err
	}
	return draft, nil
}

func (d *geminiQuestionDrafter) Close() error {
	if d.client == nil {
		return nil
	}
	return d.client.Close()
}

func buildDraftPrompt(category string, difficulty int) string {
	var b strings.Builder
	b.WriteString("You write questions for a trivia game.\n")
	fmt.Fprintf(&b, "Category: %s\n", category)
	fmt.Fprintf(&b, "Difficulty: %d on a scale from 1 (easy) to 5 (very hard)\n", difficulty)
	b.WriteString("Write one question with a short, unambiguous answer of at most five words.\n")
	b.WriteString(`Reply with JSON only, in the form {"question": "...", "answer": "..."}.`)
	return b.String()
}

// parseQuestionDraft accepts the model output with or without a markdown
// code fence around the JSON object.
func parseQuestionDraft(raw string) (*QuestionDraft, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var draft QuestionDraft
	if err := json.Unmarshal([]byte(text), &draft); err != nil {
		return nil, fmt.Errorf("decode question draft: %w", err)
	}
	draft.Question = strings.TrimSpace(draft.Question)
	draft.Answer = strings.TrimSpace(draft.Answer)
	if draft.Question == "" || draft.Answer == "" {
		return nil, errors.New("question draft is missing question or answer")
	}
	return &draft, nil
}
