package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pgvector/pgvector-go"

	"github.com/ChungNYCU/jtcg-assignment/pkg/register"
	"github.com/ChungNYCU/jtcg-assignment/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.DocumentStore = NewDocumentStore(provider)
	})
}

type DocumentStore struct {
	CommonFields
}

func NewDocumentStore(provider SqlProviderAchieve) *DocumentStore {
	repo := &DocumentStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_DOCUMENTS)
	repo.SetAllColumns("id", "collection", "content", "meta", "embedding", "created_at")
	return repo
}

// BatchCreate 批量寫入檢索文件。自然鍵衝突時覆蓋舊值（last-write-wins），
// 與來源資料的重複鍵行為一致。
func (s *DocumentStore) BatchCreate(ctx context.Context, docs []types.Document) error {
	if len(docs) == 0 {
		return nil
	}

	query := sq.Insert(s.GetTable()).
		Columns("id", "collection", "content", "meta", "embedding", "created_at")

	for _, doc := range docs {
		if doc.CreatedAt == 0 {
			doc.CreatedAt = time.Now().Unix()
		}
		query = query.Values(doc.ID, doc.Collection, doc.Content, doc.Meta, doc.Embedding, doc.CreatedAt)
	}

	query = query.Suffix("ON CONFLICT (collection, id) DO UPDATE SET content = EXCLUDED.content, meta = EXCLUDED.meta, embedding = EXCLUDED.embedding")

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *DocumentStore) Count(ctx context.Context, kind types.DocumentKind) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable()).Where(sq.Eq{"collection": kind})

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	var count int64
	if err = s.GetReplica(ctx).Get(&count, queryString, args...); err != nil {
		return 0, err
	}
	return count, nil
}

// Query 最近鄰查詢。
// pgvector supported distance functions are:
// <-> - L2 distance
// <#> - (negative) inner product
// <=> - cosine distance
// <+> - L1 distance (added in 0.7.0)
func (s *DocumentStore) Query(ctx context.Context, kind types.DocumentKind, vector pgvector.Vector, limit uint64) ([]types.SearchResult, error) {
	distColumn, vectorArgs, _ := sq.Expr("embedding <=> ? as distance", vector).ToSql()
	query := sq.Select("id", "collection", "content", "meta", distColumn).
		From(s.GetTable()).
		Where(sq.Eq{"collection": kind}).
		OrderBy("distance ASC").
		Limit(limit)

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	args = append(vectorArgs, args...)

	var res []types.SearchResult
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *DocumentStore) DeleteAll(ctx context.Context, kind types.DocumentKind) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"collection": kind})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
