package handover

import (
	"context"
	"strings"

	"github.com/ChungNYCU/jtcg-assignment/pkg/utils"
)

// Transport 真人客服轉接通道。實際系統由外部服務承接，
// 此處只約定回傳結果字串與成功哨兵的比對方式。
type Transport interface {
	Handover(ctx context.Context, conversationID, email, summary string) (string, error)
}

const (
	// ResultAccepted 通道唯一的成功哨兵，呼叫端以相等比對判斷成功。
	ResultAccepted = "已為您轉接真人"
	ResultFailed   = "轉接真人時發生錯誤，請聯繫技術團隊協助"

	// SummaryMaxRunes 送往通道的摘要上限
	SummaryMaxRunes = 500

	// failSimulationPrefix 僅供測試模擬通道失敗，
	// 正式的案件編號產生器不會產生此前綴。
	failSimulationPrefix = "FAIL"
)

// MockTransport 模擬版轉接通道，預設成功。
type MockTransport struct {
	SimulateFail bool
}

func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

func (t *MockTransport) Handover(ctx context.Context, conversationID, email, summary string) (string, error) {
	if !utils.IsValidEmail(email) {
		return ResultFailed, nil
	}

	payload := map[string]string{
		"conversation_id": conversationID,
		"email":           email,
		"summary":         utils.TruncateRunes(summary, SummaryMaxRunes),
	}

	if t.SimulateFail {
		return ResultFailed, nil
	}
	if strings.HasPrefix(strings.ToUpper(payload["conversation_id"]), failSimulationPrefix) {
		return ResultFailed, nil
	}
	return ResultAccepted, nil
}
