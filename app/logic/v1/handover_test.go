package v1

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChungNYCU/jtcg-assignment/pkg/dataset"
	"github.com/ChungNYCU/jtcg-assignment/pkg/handover"
	"github.com/ChungNYCU/jtcg-assignment/pkg/utils"
)

func setupHandoverEnv(t *testing.T) (*HandoverLogic, *testEnv) {
	env := newTestEnv(t, dataset.New(nil, nil, nil))
	return NewHandoverLogic(context.Background(), env.core, "zh-TW"), env
}

func Test_HandoverToHuman(t *testing.T) {
	logic, env := setupHandoverEnv(t)

	res := logic.HandoverToHuman("user@example.com", "用戶詢問訂單狀態後要求轉真人", "")
	require.True(t, res.Success)
	assert.Equal(t, "user@example.com", res.Email)

	// 未提供編號時就地產生
	assert.True(t, strings.HasPrefix(res.ConversationID, utils.CONVERSATION_ID_PREFIX))
	assert.Contains(t, res.Message, "已為您轉接真人客服，請稍候。您的服務案件編號是: "+res.ConversationID)

	// 轉接通道收到的即是最終參數
	assert.Equal(t, res.ConversationID, env.transport.conversationID)
	assert.Equal(t, "user@example.com", env.transport.email)
	assert.Equal(t, "用戶詢問訂單狀態後要求轉真人", env.transport.summary)
}

func Test_HandoverToHumanKeepsConversationID(t *testing.T) {
	logic, _ := setupHandoverEnv(t)

	res := logic.HandoverToHuman("user@example.com", "summary", "JTCG-CHAT-existing")
	require.True(t, res.Success)
	assert.Equal(t, "JTCG-CHAT-existing", res.ConversationID)
}

func Test_HandoverToHumanInvalidEmail(t *testing.T) {
	logic, env := setupHandoverEnv(t)

	for _, email := range []string{"", "bad-email", "user @example.com"} {
		res := logic.HandoverToHuman(email, "summary", "")
		assert.False(t, res.Success, "email: %q", email)
		assert.Equal(t, "請提供有效的Email地址以便我們為您轉接真人客服。", res.Message)
		assert.NotEmpty(t, res.ConversationID)
	}

	// 格式不符時不應觸發轉接通道
	assert.Empty(t, env.transport.email)
}

func Test_HandoverToHumanSummaryTruncated(t *testing.T) {
	logic, env := setupHandoverEnv(t)

	long := strings.Repeat("問", 800)
	res := logic.HandoverToHuman("user@example.com", long, "")
	require.True(t, res.Success)
	assert.Equal(t, handover.SummaryMaxRunes, len([]rune(env.transport.summary)))
}

func Test_HandoverToHumanTransportRejected(t *testing.T) {
	logic, env := setupHandoverEnv(t)
	env.transport.result = handover.ResultFailed

	res := logic.HandoverToHuman("user@example.com", "summary", "")
	assert.False(t, res.Success)
	// 失敗回覆原樣轉達
	assert.Equal(t, handover.ResultFailed, res.Message)
	assert.NotEmpty(t, res.ConversationID)
}

func Test_HandoverToHumanTransportError(t *testing.T) {
	logic, env := setupHandoverEnv(t)
	env.transport.err = errors.New("queue unavailable")

	res := logic.HandoverToHuman("user@example.com", "summary", "")
	assert.False(t, res.Success)
	assert.Equal(t, "轉接真人客服時發生錯誤，請聯繫技術團隊協助。", res.Message)
	assert.Equal(t, "queue unavailable", res.Error)
}
