// Package ai talks to the chat completion API for resume suggestions,
// scoring, rewriting and skill lists. Every result is display-only.
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resume-builder/internal/logging"
	"resume-builder/internal/model"
	"resume-builder/pkg/ai/formatters"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"github.com/sirupsen/logrus"
)

// UpstreamError wraps any failure of the AI collaborator: transport, API
// status or an unusable reply.
type UpstreamError struct {
	Op    string
	Cause error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("ai %s failed: %v", e.Op, e.Cause)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	MaxRetries int
}

type Client struct {
	chat    openai.Client
	model   string
	timeout time.Duration
}

func NewClient(cfg Config) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.BaseURL != "" {
		base := cfg.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		opts = append(opts, option.WithBaseURL(base))
	}
	if cfg.APIKey == "" {
		logging.Logger.Warn("ai: OPENAI_API_KEY not set, AI endpoints will fail")
	}
	model := cfg.Model
	if model == "" {
		model = string(shared.ChatModelGPT4o)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{chat: openai.NewClient(opts...), model: model, timeout: timeout}
}

// complete sends one system and one user message and returns the reply text.
func (c *Client) complete(ctx context.Context, op, system, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.chat.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	log := logging.Logger.WithFields(logrus.Fields{"op": op, "elapsed": time.Since(start).String()})
	if err != nil {
		log.WithError(err).Warn("ai: request failed")
		return "", &UpstreamError{Op: op, Cause: err}
	}
	if len(resp.Choices) == 0 {
		return "", &UpstreamError{Op: op, Cause: fmt.Errorf("no choices returned")}
	}
	log.Debug("ai: reply received")
	return resp.Choices[0].Message.Content, nil
}

// roleName prefers the catalog title for a known role id.
func roleName(role string) string {
	if r, ok := model.LookupRole(role); ok {
		return r.Title
	}
	if role = strings.TrimSpace(role); role != "" {
		return role
	}
	return "general"
}

// Suggestions returns improvement suggestions for data aimed at role.
func (c *Client) Suggestions(ctx context.Context, data model.ResumeData, role string) ([]model.AISuggestion, error) {
	content, err := c.complete(ctx, "suggestions", formatters.SuggestionsSystem, formatters.SuggestionsPrompt(data, roleName(role)))
	if err != nil {
		return nil, err
	}
	out, err := formatters.ParseSuggestions(content)
	if err != nil {
		return nil, &UpstreamError{Op: "suggestions", Cause: err}
	}
	return out, nil
}

// Score rates data for role on a 0..10 scale.
func (c *Client) Score(ctx context.Context, data model.ResumeData, role string) (*model.ResumeScore, error) {
	content, err := c.complete(ctx, "score", formatters.ScoreSystem, formatters.ScorePrompt(data, roleName(role)))
	if err != nil {
		return nil, err
	}
	out, err := formatters.ParseScore(content)
	if err != nil {
		return nil, &UpstreamError{Op: "score", Cause: err}
	}
	return out, nil
}

// Enhance rewrites text. kind names the resume part, e.g. "summary".
func (c *Client) Enhance(ctx context.Context, text, kind, role string) (*model.Enhancement, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &UpstreamError{Op: "enhance", Cause: fmt.Errorf("nothing to enhance")}
	}
	if kind == "" {
		kind = "content"
	}
	content, err := c.complete(ctx, "enhance", formatters.EnhanceSystem, formatters.EnhancePrompt(text, kind, roleName(role)))
	if err != nil {
		return nil, err
	}
	out, err := formatters.ParseEnhancement(content)
	if err != nil {
		return nil, &UpstreamError{Op: "enhance", Cause: err}
	}
	return out, nil
}

// SkillsForRole lists 10-15 skills relevant to role.
func (c *Client) SkillsForRole(ctx context.Context, role string) ([]model.Skill, error) {
	content, err := c.complete(ctx, "skills", formatters.SkillsSystem, formatters.SkillsPrompt(roleName(role)))
	if err != nil {
		return nil, err
	}
	out, err := formatters.ParseSkills(content)
	if err != nil {
		return nil, &UpstreamError{Op: "skills", Cause: err}
	}
	return out, nil
}
