package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_IsValidEmail(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"user@example.com", true},
		{"service+tag@mail.example.tw", true},
		{"", false},
		{"bad-email", false},
		{"user@example", false},
		{"user @example.com", false},
		{"user@exam ple.com", false},
		{"@example.com", false},
		{"user@.com", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.valid, IsValidEmail(c.email), "email: %q", c.email)
	}
}

func Test_TruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", TruncateRunes("abc", 5))
	assert.Equal(t, "abcde", TruncateRunes("abcdefg", 5))
	assert.Equal(t, "", TruncateRunes("", 5))

	// 以 rune 計數，不能砍在多位元組字元中間
	zh := strings.Repeat("訂", 600)
	truncated := TruncateRunes(zh, 500)
	assert.Equal(t, 500, len([]rune(truncated)))
	assert.Equal(t, strings.Repeat("訂", 500), truncated)
}

func Test_GenConversationID(t *testing.T) {
	id := GenConversationID()
	assert.True(t, strings.HasPrefix(id, CONVERSATION_ID_PREFIX))
	assert.Equal(t, len(CONVERSATION_ID_PREFIX)+8, len(id))

	assert.NotEqual(t, id, GenConversationID())
}
