package advisory

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juribot/juribot-go/internal/llm"
)

type fakeGateway struct {
	lastReq llm.CompletionRequest
	content string
	err     error
}

func (f *fakeGateway) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Provider: "fake", Content: f.content}, nil
}

func (f *fakeGateway) Embed(ctx context.Context, input []string) ([][]float32, error) {
	return nil, nil
}

func (f *fakeGateway) Provider(name string) (llm.Provider, error) { return nil, nil }

func (f *fakeGateway) HasEmbeddings() bool { return false }

func TestAnalyzeDocumentPrompt(t *testing.T) {
	gw := &fakeGateway{content: "## KEY CLAUSES\n..."}
	svc := NewService(gw, 0, slog.Default())

	out, err := svc.AnalyzeDocument(context.Background(), "WHEREAS the parties agree;", "Hindi")
	require.NoError(t, err)
	assert.Equal(t, "## KEY CLAUSES\n...", out)

	assert.Contains(t, gw.lastReq.System, "JuriBot")
	assert.Contains(t, gw.lastReq.Prompt, "Document Language: Hindi")
	assert.Contains(t, gw.lastReq.Prompt, "WHEREAS the parties agree;")
	assert.Contains(t, gw.lastReq.Prompt, "COMPLIANCE ANALYSIS")
}

func TestAnalyzeDocumentDefaultsToEnglish(t *testing.T) {
	gw := &fakeGateway{content: "ok"}
	svc := NewService(gw, 0, slog.Default())

	_, err := svc.AnalyzeDocument(context.Background(), "text", "")
	require.NoError(t, err)
	assert.Contains(t, gw.lastReq.Prompt, "Document Language: English")
}

func TestAnalyzeDocumentTruncatesLongInput(t *testing.T) {
	gw := &fakeGateway{content: "ok"}
	svc := NewService(gw, 100, slog.Default())

	long := strings.Repeat("a", 500)
	_, err := svc.AnalyzeDocument(context.Background(), long, "English")
	require.NoError(t, err)
	assert.NotContains(t, gw.lastReq.Prompt, long)
	assert.Contains(t, gw.lastReq.Prompt, strings.Repeat("a", 100)+"...")
}

func TestTranslateTrimsResponse(t *testing.T) {
	gw := &fakeGateway{content: "  translated text \n"}
	svc := NewService(gw, 0, slog.Default())

	out, err := svc.Translate(context.Background(), "पाठ", "English")
	require.NoError(t, err)
	assert.Equal(t, "translated text", out)
	assert.Contains(t, gw.lastReq.Prompt, "Translate the following text to English")
}

func TestEstimateCostsPrompt(t *testing.T) {
	gw := &fakeGateway{content: "INR 50,000 - 2,00,000"}
	svc := NewService(gw, 0, slog.Default())

	out, err := svc.EstimateCosts(context.Background(), CostRequest{
		CaseType:   "civil",
		Location:   "Delhi",
		Complexity: "medium",
		Details:    "property dispute",
	})
	require.NoError(t, err)
	assert.Equal(t, "INR 50,000 - 2,00,000", out)

	assert.Contains(t, gw.lastReq.Prompt, "Type: civil")
	assert.Contains(t, gw.lastReq.Prompt, "Location: Delhi")
	assert.Contains(t, gw.lastReq.Prompt, "Complexity: medium")
	assert.Contains(t, gw.lastReq.Prompt, "property dispute")
}
