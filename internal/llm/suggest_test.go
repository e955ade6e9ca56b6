package llm

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient returns a canned JSON reply.
type fakeClient struct {
	reply      string
	err        error
	lastPrompt string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ ModelTier) (string, error) {
	f.lastPrompt = prompt
	return f.reply, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ ModelTier) (string, error) {
	f.lastPrompt = prompt
	return f.reply, f.err
}

func (f *fakeClient) GetModel(ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error              { return nil }

func TestSuggestParsesValidReply(t *testing.T) {
	client := &fakeClient{reply: `{"suggestions": ["Add Kubernetes", "Quantify impact"]}`}

	got, err := Suggest(context.Background(), client, "resume text", "job text")
	require.NoError(t, err)
	assert.Equal(t, []string{"Add Kubernetes", "Quantify impact"}, got.Suggestions)
}

func TestSuggestRejectsInvalidReply(t *testing.T) {
	cases := map[string]string{
		"wrong key":   `{"advice": ["nope"]}`,
		"empty array": `{"suggestions": []}`,
		"non-strings": `{"suggestions": [42]}`,
		"not json":    `add more keywords please`,
	}
	for name, reply := range cases {
		t.Run(name, func(t *testing.T) {
			client := &fakeClient{reply: reply}
			_, err := Suggest(context.Background(), client, "resume", "job")
			assert.Error(t, err)
		})
	}
}

func TestSuggestPropagatesClientError(t *testing.T) {
	client := &fakeClient{err: fmt.Errorf("rate limited")}
	_, err := Suggest(context.Background(), client, "resume", "job")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestSuggestNilClient(t *testing.T) {
	_, err := Suggest(context.Background(), nil, "resume", "job")
	assert.Error(t, err)
}

func TestSuggestTruncatesInputs(t *testing.T) {
	client := &fakeClient{reply: `{"suggestions": ["ok"]}`}
	longResume := strings.Repeat("r", 5000)
	longJob := strings.Repeat("j", 5000)

	_, err := Suggest(context.Background(), client, longResume, longJob)
	require.NoError(t, err)
	assert.NotContains(t, client.lastPrompt, strings.Repeat("r", maxResumeChars+1))
	assert.NotContains(t, client.lastPrompt, strings.Repeat("j", maxJobChars+1))
	assert.Contains(t, client.lastPrompt, "JOB DESCRIPTION:")
}

func TestFallbackSuggestionsDeterministic(t *testing.T) {
	a := FallbackSuggestions()
	b := FallbackSuggestions()
	require.NotEmpty(t, a.Suggestions)
	assert.Equal(t, a.Suggestions, b.Suggestions)
}
