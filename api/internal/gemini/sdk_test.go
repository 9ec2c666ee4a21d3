package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

// sdkRequest is the generateContent body the SDK sends. Enums may arrive as
// names or numbers depending on the REST encoder, so they stay raw.
type sdkRequest struct {
	Contents []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	SafetySettings []struct {
		Category  json.RawMessage `json:"category"`
		Threshold json.RawMessage `json:"threshold"`
	} `json:"safetySettings"`
}

type sdkUpstream struct {
	mu   sync.Mutex
	path string
	req  sdkRequest
}

func (u *sdkUpstream) seen() (string, sdkRequest) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.path, u.req
}

func newSDKClient(t *testing.T, status int, body string) (*SDKClient, *sdkUpstream) {
	t.Helper()
	u := &sdkUpstream{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		u.mu.Lock()
		u.path = r.URL.Path
		_ = json.Unmarshal(raw, &u.req)
		u.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	c, err := NewSDK(context.Background(), "test-key", "",
		option.WithEndpoint(srv.URL),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, u
}

// enumIs reports whether raw is the enum's name or its numeric value.
func enumIs(raw json.RawMessage, name string, num int32) bool {
	v := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	return v == name || v == fmt.Sprint(num)
}

func TestSDKClient_Generate(t *testing.T) {
	c, u := newSDKClient(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"feedback\":\"ok\"}"}]},"finishReason":"STOP"}]}`)

	got, err := c.Generate(context.Background(), "hello prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"feedback":"ok"}`, got)

	path, req := u.seen()
	assert.True(t, strings.HasSuffix(path, "models/"+DefaultModel+":generateContent"), path)

	require.Len(t, req.Contents, 1)
	require.Len(t, req.Contents[0].Parts, 1)
	assert.Equal(t, "hello prompt", req.Contents[0].Parts[0].Text)

	want := map[string]int32{
		CategoryHarassment:       int32(genai.HarmCategoryHarassment),
		CategoryHateSpeech:       int32(genai.HarmCategoryHateSpeech),
		CategorySexuallyExplicit: int32(genai.HarmCategorySexuallyExplicit),
		CategoryDangerousContent: int32(genai.HarmCategoryDangerousContent),
	}
	require.Len(t, req.SafetySettings, 4)
	for _, s := range req.SafetySettings {
		assert.True(t, enumIs(s.Threshold, ThresholdBlockNone, int32(genai.HarmBlockNone)), "threshold %s", s.Threshold)
		for name, num := range want {
			if enumIs(s.Category, name, num) {
				delete(want, name)
			}
		}
	}
	assert.Empty(t, want, "categories not sent")
}

func TestSDKClient_Generate_StatusError(t *testing.T) {
	body := `{"error":{"code":500,"message":"backend exploded","status":"INTERNAL"}}`
	c, _ := newSDKClient(t, http.StatusInternalServerError, body)

	_, err := c.Generate(context.Background(), "p")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.Code)
	assert.Contains(t, se.Body, "backend exploded")
}

func TestSDKClient_Generate_NoCandidates(t *testing.T) {
	c, _ := newSDKClient(t, http.StatusOK, `{"candidates":[]}`)

	_, err := c.Generate(context.Background(), "p")
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestNewSDK_EmptyKey(t *testing.T) {
	_, err := NewSDK(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestSDKSafetySettings(t *testing.T) {
	got := sdkSafetySettings()
	require.Len(t, got, 4)
	assert.Equal(t, genai.HarmCategoryHarassment, got[0].Category)
	assert.Equal(t, genai.HarmCategoryHateSpeech, got[1].Category)
	assert.Equal(t, genai.HarmCategorySexuallyExplicit, got[2].Category)
	assert.Equal(t, genai.HarmCategoryDangerousContent, got[3].Category)
	for _, s := range got {
		assert.Equal(t, genai.HarmBlockNone, s.Threshold)
	}
}

func TestSDKFirstText(t *testing.T) {
	_, err := sdkFirstText(nil)
	assert.ErrorIs(t, err, ErrNoCandidates)

	_, err = sdkFirstText(&genai.GenerateContentResponse{})
	assert.ErrorIs(t, err, ErrNoCandidates)

	_, err = sdkFirstText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
	})
	assert.ErrorIs(t, err, ErrNoText)

	_, err = sdkFirstText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{&genai.Blob{MIMEType: "image/png"}}}}},
	})
	assert.ErrorIs(t, err, ErrNoText)

	got, err := sdkFirstText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"feedback":"ok"}`)}}}},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"feedback":"ok"}`, got)
}
