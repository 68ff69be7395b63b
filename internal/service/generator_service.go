package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/provamed/backend/internal/config"
)

// ErrGeneratorNotConfigured is returned when no API key is set. It surfaces
// as a GenerationError at the cache gate; failures are never cached.
var ErrGeneratorNotConfigured = errors.New("resolution generator not configured")

// GeneratorService produces explanatory resolution texts via the Gemini API
type GeneratorService struct {
	config *config.AIConfig
	client *http.Client
}

// NewGeneratorService creates a new generator service
func NewGeneratorService() *GeneratorService {
	cfg := config.DefaultAIConfig()
	return &GeneratorService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// Generate produces a resolution text for the given question statement.
func (s *GeneratorService) Generate(ctx context.Context, questionText string) (string, error) {
	if !s.config.IsEnabled() {
		return "", ErrGeneratorNotConfigured
	}

	prompt := s.buildResolutionPrompt(questionText)
	return s.callGemini(ctx, s.config.Models.Resolution, prompt)
}

func (s *GeneratorService) callGemini(ctx context.Context, modelName, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", s.config.ModelEndpoint(modelName), s.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	// Parse Gemini response structure
	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}

func (s *GeneratorService) buildResolutionPrompt(questionText string) string {
	return fmt.Sprintf(`You are a tutor for medical residency exam candidates.
Write a concise resolution for the multiple-choice question below: explain the
reasoning that leads to the correct alternative and why each of the other
alternatives is wrong. Plain text, no markdown headings.

Question:
%s`, questionText)
}
