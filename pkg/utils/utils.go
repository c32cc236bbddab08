package utils

import (
	"fmt"
	"math/rand"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	"github.com/ChungNYCU/jtcg-assignment/pkg/errors"
	"github.com/ChungNYCU/jtcg-assignment/pkg/i18n"
)

func GenRandomID() string {
	return RandomStr(32)
}

// RandomStr 隨機字符串
func RandomStr(l int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	seed := "1234567890qwertyuiopasdfghjklzxcvbnmQWERTYUIOPASDFGHJKLZXCVBNM"
	str := strings.Builder{}
	length := len(seed)
	for i := 0; i < l; i++ {
		point := r.Intn(length)
		str.WriteString(seed[point : point+1])
	}
	return str.String()
}

const CONVERSATION_ID_PREFIX = "JTCG-CHAT-"

// GenConversationID 產生客服案件編號，如 JTCG-CHAT-a1b2c3d4。
// 前綴固定為 JTCG-CHAT-，不會與轉接通道的失敗模擬前綴衝突。
func GenConversationID() string {
	return fmt.Sprintf("%s%s", CONVERSATION_ID_PREFIX, uuid.NewString()[:8])
}

// emailRE 基礎 Email 格式：local@domain.tld，不允許空白。
var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailRE.MatchString(email)
}

// TruncateRunes 依字元數截斷，避免把多位元組字元砍半。
func TruncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func BindArgsWithGin(c *gin.Context, req interface{}) error {
	err := c.ShouldBindWith(req, binding.Default(c.Request.Method, c.ContentType()))
	if err != nil {
		return errors.New(fmt.Sprintf("Gin.ShouldBindWith.%s.%s", c.Request.Method, c.Request.URL.Path), i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
	}
	return nil
}
