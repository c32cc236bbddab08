package types

const (
	LANGUAGE_EN_KEY = "en"
	LANGUAGE_TW_KEY = "zh-TW"
)
