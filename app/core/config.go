package core

import (
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ChungNYCU/jtcg-assignment/app/core/srv"
	"github.com/ChungNYCU/jtcg-assignment/pkg/dataset"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf := &CoreConfig{}
	if err = toml.Unmarshal(raw, conf); err != nil {
		panic(err)
	}

	return *conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr     string         `toml:"addr"`
	Log      Log            `toml:"log"`
	Postgres PGConfig       `toml:"postgres"`
	AI       srv.AIConfig   `toml:"ai"`
	Dataset  dataset.Paths  `toml:"dataset"`
	Handover HandoverConfig `toml:"handover"`
	Prompt   Prompt         `toml:"prompt"`
}

// Prompt 自訂 agent 的 system prompt，為空則使用系統預設。
type Prompt struct {
	System string `toml:"system"`
}

type HandoverConfig struct {
	Driver       string `toml:"driver"`        // 目前僅 mock
	SimulateFail bool   `toml:"simulate_fail"` // 測試通道失敗路徑用
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("JTCG_API_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Postgres.FromENV()
	c.AI.OpenAI.Token = os.Getenv("OPENAI_API_KEY")
	c.AI.OpenAI.Endpoint = os.Getenv("OPENAI_API_ENDPOINT")
	c.Dataset.KnowledgeCSV = os.Getenv("JTCG_DATASET_KNOWLEDGE_CSV")
	c.Dataset.ProductsCSV = os.Getenv("JTCG_DATASET_PRODUCTS_CSV")
	c.Dataset.OrdersJSON = os.Getenv("JTCG_DATASET_ORDERS_JSON")
	c.Dataset.ConversationsJSON = os.Getenv("JTCG_DATASET_CONVERSATIONS_JSON")
}

type PGConfig struct {
	DSN string `toml:"dsn"`
}

func (m *PGConfig) FromENV() {
	m.DSN = os.Getenv("JTCG_API_POSTGRESQL_DSN")
}

func (c PGConfig) FormatDSN() string {
	return c.DSN
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("JTCG_API_LOG_LEVEL")
	l.Path = os.Getenv("JTCG_API_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
