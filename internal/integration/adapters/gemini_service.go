// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/moneykeeper/backend/internal/domain/entity"
	domainerror "github.com/moneykeeper/backend/internal/domain/error"
)

// GeminiService implements the CategorySuggester adapter using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// SuggestCategory asks Gemini to pick the best matching category for a note.
func (s *GeminiService) SuggestCategory(ctx context.Context, note string, candidates []*entity.Category) (uuid.UUID, error) {
	if !s.IsAvailable() {
		return uuid.Nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)

	// Configure model for JSON output
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(note, candidates)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return s.parseResponse(resp)
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(note string, candidates []*entity.Category) string {
	var sb strings.Builder

	sb.WriteString(`You are a personal finance assistant. Given a transaction note and a list of spending categories, pick the single category that fits the note best.

RULES:
- You MUST pick one of the listed categories.
- Match on meaning, not just keywords. Notes may be in Vietnamese or English.
- If no category is a reasonable fit, respond with a null categoryId.

CATEGORIES:
`)

	for _, cat := range candidates {
		sb.WriteString(fmt.Sprintf("- ID: %s, Name: %s, Kind: %s\n", cat.ID, cat.Name, cat.Kind))
	}

	sb.WriteString(fmt.Sprintf("\nTRANSACTION NOTE: %q\n", note))

	sb.WriteString(`
Respond with a single JSON object:
{ "categoryId": "uuid of the chosen category or null" }

RESPONSE FORMAT: Return only the JSON object, no additional text.
`)

	return sb.String()
}

// geminiSuggestion represents the raw response from Gemini.
type geminiSuggestion struct {
	CategoryID *string `json:"categoryId"`
}

// parseResponse extracts the suggested category ID from the Gemini response.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) (uuid.UUID, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return uuid.Nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return uuid.Nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var suggestion geminiSuggestion
	if err := json.Unmarshal([]byte(textContent), &suggestion); err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	if suggestion.CategoryID == nil || *suggestion.CategoryID == "" {
		return uuid.Nil, domainerror.ErrNoCategorySuggestion
	}

	categoryID, err := uuid.Parse(*suggestion.CategoryID)
	if err != nil {
		return uuid.Nil, domainerror.ErrNoCategorySuggestion
	}

	return categoryID, nil
}
