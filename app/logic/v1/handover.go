package v1

import (
	"context"
	"log/slog"

	"github.com/ChungNYCU/jtcg-assignment/app/core"
	"github.com/ChungNYCU/jtcg-assignment/pkg/handover"
	"github.com/ChungNYCU/jtcg-assignment/pkg/i18n"
	"github.com/ChungNYCU/jtcg-assignment/pkg/types"
	"github.com/ChungNYCU/jtcg-assignment/pkg/utils"
)

type HandoverLogic struct {
	ctx  context.Context
	core *core.Core
	lang string
}

func NewHandoverLogic(ctx context.Context, core *core.Core, lang string) *HandoverLogic {
	if !i18n.ALLOW_LANG[lang] {
		lang = i18n.DEFAULT_LANG
	}
	return &HandoverLogic{
		ctx:  ctx,
		core: core,
		lang: lang,
	}
}

// HandoverToHuman 轉接真人客服。conversationID 缺省時就地產生，
// 無論成敗都帶回同一個編號讓用戶可追蹤。
func (l *HandoverLogic) HandoverToHuman(email, summary, conversationID string) types.HandoverResult {
	if conversationID == "" {
		conversationID = utils.GenConversationID()
	}

	if !utils.IsValidEmail(email) {
		return types.HandoverResult{
			Success:        false,
			Message:        locales.Get(l.lang, i18n.MESSAGE_HANDOVER_EMAIL_INVALID),
			ConversationID: conversationID,
		}
	}

	result, err := l.core.Srv().Handover().Handover(l.ctx, conversationID, email, utils.TruncateRunes(summary, handover.SummaryMaxRunes))
	if err != nil {
		l.core.Metrics().CapabilityErrorInc("handover_to_human", "transport")
		slog.Error("handover transport failed",
			slog.String("conversation_id", conversationID), slog.String("error", err.Error()))
		return types.HandoverResult{
			Success:        false,
			Message:        locales.Get(l.lang, i18n.MESSAGE_HANDOVER_ERROR),
			ConversationID: conversationID,
			Error:          err.Error(),
		}
	}

	// 成功哨兵以外的回覆一律視為失敗，原樣轉達
	if result != handover.ResultAccepted {
		return types.HandoverResult{
			Success:        false,
			Message:        result,
			ConversationID: conversationID,
		}
	}

	return types.HandoverResult{
		Success: true,
		Message: locales.GetWithData(l.lang, i18n.MESSAGE_HANDOVER_SUCCESS, map[string]interface{}{
			"ConversationID": conversationID,
		}),
		ConversationID: conversationID,
		Email:          email,
	}
}
