package v1

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"

	"github.com/ChungNYCU/jtcg-assignment/app/core"
	"github.com/ChungNYCU/jtcg-assignment/app/core/srv"
	"github.com/ChungNYCU/jtcg-assignment/app/store/sqlstore"
	"github.com/ChungNYCU/jtcg-assignment/pkg/ai"
	"github.com/ChungNYCU/jtcg-assignment/pkg/dataset"
	"github.com/ChungNYCU/jtcg-assignment/pkg/handover"
)

// stubAIDriver 回放固定向量與回應的 ai.Driver 替身。
type stubAIDriver struct {
	queryVec      []float32
	chatResponses []openai.ChatCompletionResponse
	chatRequests  []openai.ChatCompletionRequest
}

func (s *stubAIDriver) EmbeddingForQuery(ctx context.Context, content []string) (ai.EmbeddingResult, error) {
	data := make([][]float32, len(content))
	for i := range content {
		data[i] = s.queryVec
	}
	return ai.EmbeddingResult{Model: "stub", Data: data}, nil
}

func (s *stubAIDriver) EmbeddingForDocument(ctx context.Context, title string, content []string) (ai.EmbeddingResult, error) {
	data := make([][]float32, len(content))
	for i := range content {
		data[i] = s.queryVec
	}
	return ai.EmbeddingResult{Model: "stub", Data: data}, nil
}

func (s *stubAIDriver) Chat(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.chatRequests = append(s.chatRequests, req)
	if len(s.chatResponses) == 0 {
		return openai.ChatCompletionResponse{Choices: []openai.ChatCompletionChoice{{}}}, nil
	}
	resp := s.chatResponses[0]
	s.chatResponses = s.chatResponses[1:]
	return resp, nil
}

func (s *stubAIDriver) ChatModel() string {
	return "stub-chat"
}

// recordingTransport 記錄最後一次轉接參數的 handover.Transport 替身。
type recordingTransport struct {
	conversationID string
	email          string
	summary        string
	result         string
	err            error
}

func (r *recordingTransport) Handover(ctx context.Context, conversationID, email, summary string) (string, error) {
	r.conversationID = conversationID
	r.email = email
	r.summary = summary
	if r.result == "" && r.err == nil {
		return handover.ResultAccepted, nil
	}
	return r.result, r.err
}

type testEnv struct {
	core      *core.Core
	mock      sqlmock.Sqlmock
	driver    *stubAIDriver
	transport *recordingTransport
}

func newTestEnv(t *testing.T, ds *dataset.Dataset) *testEnv {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	driver := &stubAIDriver{queryVec: []float32{0.1, 0.2, 0.3}}
	transport := &recordingTransport{}

	c := core.MustSetupTestCore(
		ds,
		sqlstore.SetupWithDB(sqlx.NewDb(db, "postgres")),
		srv.SetupSrvs(srv.ApplyAIDriver(driver), srv.ApplyHandover(transport)),
	)

	return &testEnv{core: c, mock: mock, driver: driver, transport: transport}
}
