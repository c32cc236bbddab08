package store

import (
	"context"

	"github.com/pgvector/pgvector-go"

	"github.com/ChungNYCU/jtcg-assignment/pkg/sqlstore"
	"github.com/ChungNYCU/jtcg-assignment/pkg/types"
)

// DocumentStore 檢索文件存取層。knowledge 與 products 兩個集合
// 共用同一張表，以 collection 欄位隔離。
type DocumentStore interface {
	sqlstore.SqlCommons
	// BatchCreate 批量寫入文件，自然鍵重複時後寫覆蓋前寫。
	BatchCreate(ctx context.Context, docs []types.Document) error
	// Count 集合目前的文件數，灌入前的冪等檢查用。
	Count(ctx context.Context, kind types.DocumentKind) (int64, error)
	// Query 以 cosine distance 取最近的 limit 筆，由近到遠排序。
	Query(ctx context.Context, kind types.DocumentKind, vector pgvector.Vector, limit uint64) ([]types.SearchResult, error)
	// DeleteAll 清空整個集合，重置資料時使用。
	DeleteAll(ctx context.Context, kind types.DocumentKind) error
}

type Store interface {
	DocumentStore() DocumentStore
}
