package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	config "github.com/edmondkiprop/tutor_connect/configs"
)

// Stateless relay to the generative-language API for the in-app study
// helper. The full conversation travels with every request; there is no
// server-side session and no retry on failure.

type ChatMessage struct {
	Role      string     `json:"role" validate:"required,oneof=user assistant"`
	Text      string     `json:"text"`
	ImageData *ChatImage `json:"image_data,omitempty"`
}

type ChatImage struct {
	MimeType string `json:"mime_type" validate:"required"`
	Data     string `json:"data" validate:"required"`
}

type generatePart struct {
	Text       string              `json:"text,omitempty"`
	InlineData *generateInlineData `json:"inlineData,omitempty"`
}

type generateInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generateContent struct {
	Role  string         `json:"role"`
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

const assistantPreamble = "You are a friendly study helper for school students. Explain clearly and step by step."

var assistantHTTP = &http.Client{Timeout: 30 * time.Second}

func AskStudyHelper(messages []ChatMessage) (string, error) {
	apiKey := config.Config("GENERATIVE_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("study helper API key not configured")
	}
	model := config.ConfigOr("GENERATIVE_MODEL", "gemini-2.5-flash-lite")

	contents := make([]generateContent, 0, len(messages))
	for _, m := range messages {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		var parts []generatePart
		if m.Text != "" {
			parts = append(parts, generatePart{Text: m.Text})
		}
		if m.ImageData != nil {
			parts = append(parts, generatePart{InlineData: &generateInlineData{
				MimeType: m.ImageData.MimeType,
				Data:     m.ImageData.Data,
			}})
		}
		if len(parts) == 0 {
			continue
		}
		contents = append(contents, generateContent{Role: role, Parts: parts})
	}
	if len(contents) == 0 {
		return "", fmt.Errorf("empty conversation")
	}
	if contents[0].Role == "user" {
		contents[0].Parts = append([]generatePart{{Text: assistantPreamble}}, contents[0].Parts...)
	}

	body, err := json.Marshal(generateRequest{Contents: contents})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1/models/%s:generateContent?key=%s", model, apiKey)
	resp, err := assistantHTTP.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generative API returned status %d", resp.StatusCode)
	}

	var data generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", err
	}
	if len(data.Candidates) == 0 || len(data.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generative API returned no candidates")
	}
	return data.Candidates[0].Content.Parts[0].Text, nil
}
