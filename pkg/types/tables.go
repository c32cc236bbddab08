package types

const TABLE_PREFIX = "jtcg_"

type TableName string

func (t TableName) Name() string {
	return TABLE_PREFIX + string(t)
}

const (
	TABLE_DOCUMENTS TableName = "documents"
)
