package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/ChungNYCU/jtcg-assignment/pkg/types"
)

// ParseKnowledge 解析知識庫 CSV。必要欄位缺失時整批載入失敗，
// 這份資料屬於固定參考資料集，不做跳行容錯。
func ParseKnowledge(r io.Reader) ([]types.KnowledgeItem, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, fmt.Errorf("parse knowledge: %w", err)
	}

	items := make([]types.KnowledgeItem, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)

		id := row.Get("id")
		if id == "" {
			return nil, fmt.Errorf("parse knowledge: row %d missing required column id", i+1)
		}

		items = append(items, types.KnowledgeItem{
			ID:       id,
			Title:    row.Get("title"),
			Content:  row.Get("content"),
			URLLabel: row.Get("urls/0/label"),
			URLHref:  row.Get("urls/0/href"),
			ImageURL: row.Get("images/0"),
			Tags:     row.CollectPrefix("tags/"),
		})
	}

	return items, nil
}

func LoadKnowledge(path string) ([]types.KnowledgeItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load knowledge %s: %w", path, err)
	}
	defer f.Close()

	return ParseKnowledge(f)
}
