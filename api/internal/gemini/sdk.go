package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// SDKClient makes the same call as Client through the generative-ai-go SDK.
type SDKClient struct {
	cl    *genai.Client
	model *genai.GenerativeModel
	name  string
}

// NewSDK dials the SDK client once; callers Close it on shutdown. Extra
// options (endpoint overrides, custom HTTP clients) follow the API key.
func NewSDK(ctx context.Context, key, model string, opts ...option.ClientOption) (*SDKClient, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrEmptyKey
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	model = strings.TrimSpace(model)

	cl, err := genai.NewClient(ctx, append([]option.ClientOption{option.WithAPIKey(key)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("gemini sdk: new client: %w", err)
	}
	m := cl.GenerativeModel(model)
	if m == nil {
		_ = cl.Close()
		return nil, fmt.Errorf("gemini sdk: model is nil")
	}
	m.SafetySettings = sdkSafetySettings()

	return &SDKClient{cl: cl, model: m, name: model}, nil
}

func (c *SDKClient) Name() string     { return "gemini-sdk" }
func (c *SDKClient) GetModel() string { return c.name }

func (c *SDKClient) Close() error { return c.cl.Close() }

func (c *SDKClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			body := gerr.Body
			if body == "" {
				body = gerr.Message
			}
			return "", &StatusError{Code: gerr.Code, Body: body}
		}
		return "", fmt.Errorf("gemini sdk: %w", err)
	}
	return sdkFirstText(resp)
}

func sdkFirstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrNoCandidates
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil || len(cand.Content.Parts) == 0 {
		return "", ErrNoText
	}
	t, ok := cand.Content.Parts[0].(genai.Text)
	if !ok {
		return "", ErrNoText
	}
	return string(t), nil
}

var sdkCategories = map[string]genai.HarmCategory{
	CategoryHarassment:       genai.HarmCategoryHarassment,
	CategoryHateSpeech:       genai.HarmCategoryHateSpeech,
	CategorySexuallyExplicit: genai.HarmCategorySexuallyExplicit,
	CategoryDangerousContent: genai.HarmCategoryDangerousContent,
}

func sdkSafetySettings() []*genai.SafetySetting {
	settings := SafetySettings()
	out := make([]*genai.SafetySetting, 0, len(settings))
	for _, s := range settings {
		out = append(out, &genai.SafetySetting{
			Category:  sdkCategories[s.Category],
			Threshold: genai.HarmBlockNone,
		})
	}
	return out
}
