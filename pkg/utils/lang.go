package utils

import (
	"github.com/abadojack/whatlanggo"

	"github.com/ChungNYCU/jtcg-assignment/pkg/types"
)

var whatLangOpts = whatlanggo.Options{
	Whitelist: map[whatlanggo.Lang]bool{
		whatlanggo.Eng: true,
		whatlanggo.Cmn: true,
	},
}

// DetectReplyLang 回覆語系跟隨使用者最新訊息，僅區分中文與英文。
func DetectReplyLang(query string) string {
	info := whatlanggo.DetectWithOptions(query, whatLangOpts)
	if info.Lang == whatlanggo.Cmn {
		return types.LANGUAGE_TW_KEY
	}
	return types.LANGUAGE_EN_KEY
}
