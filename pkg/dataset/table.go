package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// table 行導向的 CSV 資料，欄位順序與來源一致，
// 供前綴欄位（tags/0, specs/vesa/1 ...）依欄位序收斂成列表。
type table struct {
	columns []string
	rows    [][]string
}

func readTable(r io.Reader) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read csv: missing header row")
	}

	return &table{
		columns: records[0],
		rows:    records[1:],
	}, nil
}

type row struct {
	table  *table
	values []string
}

func (t *table) Row(i int) row {
	return row{table: t, values: t.rows[i]}
}

func (t *table) Len() int {
	return len(t.rows)
}

// Get 取出欄位值，缺欄或空值一律回傳空字串，沒有 unset 狀態。
func (r row) Get(column string) string {
	for i, name := range r.table.columns {
		if name == column && i < len(r.values) {
			return strings.TrimSpace(r.values[i])
		}
	}
	return ""
}

// CollectPrefix 依欄位順序收集共享前綴的欄位值，空值跳過。
func (r row) CollectPrefix(prefix string) []string {
	values := []string{}
	for i, name := range r.table.columns {
		if !strings.HasPrefix(name, prefix) || i >= len(r.values) {
			continue
		}
		if v := strings.TrimSpace(r.values[i]); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// parseLooseBool 規格欄位的布林值，空值為 false，
// 其餘依常見寫法判斷，無法辨識時視為有值即 true。
func parseLooseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false", "0", "no", "n":
		return false
	default:
		return true
	}
}
