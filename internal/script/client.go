package script

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/animaforge/scene-forge/internal/config"
	"github.com/animaforge/scene-forge/internal/models"
	"github.com/animaforge/scene-forge/pkg/logger"
)

const (
	defaultTimeout = 60 * time.Second
	temperature    = 0.4
)

// systemPrompt pins the completion to the scene script schema so the
// response parses without post-editing. Keyframe times are in seconds.
const systemPrompt = `You are an animation script generator. Respond with a single JSON object and nothing else, following this schema exactly:
{
  "title": string,
  "duration": number,
  "scenes": [
    {
      "id": string,
      "duration": number,
      "narration": string,
      "camera": {"type": "static"|"orbit"|"dolly", "keyframes": [{"t": number, "position": [x,y,z], "lookAt": [x,y,z]}]},
      "objects": [
        {
          "id": string,
          "type": "sphere"|"box"|"plane"|"text"|"line"|"arrow",
          "params": object,
          "keyframes": [{"t": number, "position": [x,y,z], "rotation": [x,y,z], "scale": [x,y,z]}],
          "physics": object|null
        }
      ],
      "events": []
    }
  ]
}
Do not wrap the JSON in markdown fences. Do not add commentary.`

// Client turns a free-text description into a structured scene script.
type Client interface {
	GenerateScript(ctx context.Context, description string, duration float64) (*models.SceneScript, error)
}

type scriptClient struct {
	cfg        *config.Config
	httpClient *http.Client
	logger     logger.Logger
}

func NewScriptClient(cfg *config.Config, log logger.Logger) Client {
	timeout := defaultTimeout
	if cfg.Script.Timeout > 0 {
		timeout = time.Duration(cfg.Script.Timeout) * time.Second
	}
	return &scriptClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *scriptClient) GenerateScript(ctx context.Context, description string, duration float64) (*models.SceneScript, error) {
	if c.cfg.Script.Endpoint == "" {
		return nil, errors.New("script engine is not configured")
	}

	userPrompt := fmt.Sprintf("Create a %.0f second animation script for: %s", duration, description)
	payload, err := json.Marshal(&chatRequest{
		Model: c.cfg.Script.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: temperature,
	})
	if err != nil {
		return nil, errors.Wrap(err, "scriptClient.GenerateScript.marshal")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Script.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "scriptClient.GenerateScript.request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Script.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Script.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "scriptClient.GenerateScript.do")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "scriptClient.GenerateScript.read")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("script endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err = json.Unmarshal(body, &chatResp); err != nil {
		return nil, errors.Wrap(err, "scriptClient.GenerateScript.unmarshal")
	}
	if chatResp.Error != nil {
		return nil, errors.Errorf("script endpoint error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return nil, errors.New("script endpoint returned no choices")
	}

	script, err := models.ParseSceneScript([]byte(stripFences(chatResp.Choices[0].Message.Content)))
	if err != nil {
		c.logger.Errorf("GenerateScript - unparsable script: %v", err)
		return nil, errors.Wrap(err, "scriptClient.GenerateScript.parse")
	}
	return script, nil
}

// stripFences removes a markdown code fence if the model added one anyway.
func stripFences(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}
