package planner

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BerylCAtieno/careerpath-agent/internal/llm"
	"github.com/BerylCAtieno/careerpath-agent/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	reply   string
	err     error
	calls   int
	prompts []string
	schema  *llm.Schema
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, schema *llm.Schema) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	f.schema = schema
	return f.reply, f.err
}

func (f *fakeClient) Close() error { return nil }

func loadReport(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "report.json"))
	require.NoError(t, err)
	return string(data)
}

func TestGenerateCareerReport_Roundtrip(t *testing.T) {
	raw := loadReport(t)
	client := &fakeClient{reply: raw}
	gen := NewGenerator(client, nil)

	report, err := gen.GenerateCareerReport(context.Background(), testProfile())
	require.NoError(t, err)

	var want models.CareerReport
	require.NoError(t, json.Unmarshal([]byte(raw), &want))
	assert.Equal(t, &want, report)

	assert.Equal(t, "李明", report.StudentName)
	assert.Equal(t, 82.0, report.CompetencyRadar[0].Score)
	assert.Equal(t, "春季备考CFA一级，暑假考", report.Roadmap.Sophomore.CertificateMilestone)

	assert.Equal(t, 1, client.calls)
	assert.Same(t, ReportSchema, client.schema)
	assert.Contains(t, client.prompts[0], "- Name: 李明")
}

func TestGenerateCareerReport_FencedReply(t *testing.T) {
	client := &fakeClient{reply: "```json\n" + loadReport(t) + "\n```"}

	report, err := NewGenerator(client, nil).GenerateCareerReport(context.Background(), testProfile())
	require.NoError(t, err)
	assert.Len(t, report.Recommendations, 2)
}

func TestGenerateCareerReport_NetworkErrorNoRetry(t *testing.T) {
	netErr := errors.New("dial tcp: connection refused")
	client := &fakeClient{err: netErr}

	report, err := NewGenerator(client, nil).GenerateCareerReport(context.Background(), testProfile())
	assert.Nil(t, report)
	require.Error(t, err)
	assert.ErrorIs(t, err, netErr)
	assert.Equal(t, 1, client.calls)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, StageRequest, genErr.Stage)
}

func TestGenerateCareerReport_MissingAPIKey(t *testing.T) {
	client, err := llm.NewClient(context.Background(), llm.DefaultConfig())
	require.NoError(t, err)

	_, err = NewGenerator(client, nil).GenerateCareerReport(context.Background(), testProfile())
	assert.ErrorIs(t, err, llm.ErrMissingAPIKey)
}

func TestGenerateCareerReport_EmptyReply(t *testing.T) {
	for _, reply := range []string{"", "   \n"} {
		client := &fakeClient{reply: reply}

		_, err := NewGenerator(client, nil).GenerateCareerReport(context.Background(), testProfile())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyResponse)
	}
}

func TestGenerateCareerReport_MalformedJSON(t *testing.T) {
	client := &fakeClient{reply: `{"studentName": "李明",`}

	_, err := NewGenerator(client, nil).GenerateCareerReport(context.Background(), testProfile())

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, StageParse, genErr.Stage)
}

func TestGenerateCareerReport_NeverReturnsPartialReport(t *testing.T) {
	client := &fakeClient{reply: `{"studentName": "李明", "generatedAt": "今天"}`}

	report, err := NewGenerator(client, nil).GenerateCareerReport(context.Background(), testProfile())
	assert.Nil(t, report)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.NotEmpty(t, schemaErr.Fields)
}

type blockingClient struct{}

func (blockingClient) GenerateJSON(ctx context.Context, _ string, _ *llm.Schema) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func (blockingClient) Close() error { return nil }

func TestGenerateCareerReport_RequestTimeout(t *testing.T) {
	gen := NewGenerator(blockingClient{}, nil, WithRequestTimeout(10*time.Millisecond))

	_, err := gen.GenerateCareerReport(context.Background(), testProfile())

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, StageRequest, genErr.Stage)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
