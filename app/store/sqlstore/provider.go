package sqlstore

import (
	"embed"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/ChungNYCU/jtcg-assignment/app/store"
	"github.com/ChungNYCU/jtcg-assignment/pkg/register"
	"github.com/ChungNYCU/jtcg-assignment/pkg/sqlstore"
)

//go:embed *.sql
var createTableFiles embed.FS

func init() {
	sq.StatementBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

var provider = &Provider{
	stores: &Stores{},
}

func GetProvider() *Provider {
	return provider
}

type Provider struct {
	*sqlstore.SqlProvider
	stores *Stores
}

type Stores struct {
	store.DocumentStore
}

func (s *Provider) DocumentStore() store.DocumentStore {
	return s.stores.DocumentStore
}

type RegisterKey struct{}

func MustSetup(m sqlstore.ConnectConfig, s ...sqlstore.ConnectConfig) func() *Provider {
	provider.SqlProvider = sqlstore.MustSetupProvider(m, s...)

	for _, f := range register.ResolveFuncHandlers[*Provider](RegisterKey{}) {
		f(provider)
	}

	return func() *Provider {
		return provider
	}
}

// SetupWithDB 測試場景下以現成連線（sqlmock）組裝 Provider。
func SetupWithDB(db *sqlx.DB) *Provider {
	p := &Provider{
		SqlProvider: sqlstore.SetupProviderWithDB(db),
		stores:      &Stores{},
	}
	for _, f := range register.ResolveFuncHandlers[*Provider](RegisterKey{}) {
		f(p)
	}
	return p
}

// Install 建表與擴展初始化，全部語句可重複執行。
func (p *Provider) Install() error {
	if _, err := p.GetMaster().Exec("CREATE EXTENSION IF NOT EXISTS vector;"); err != nil {
		return fmt.Errorf("failed to enable pgvector extension: %w", err)
	}

	files, err := createTableFiles.ReadDir(".")
	if err != nil {
		return err
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		raw, err := createTableFiles.ReadFile(file.Name())
		if err != nil {
			return err
		}
		if _, err = p.GetMaster().Exec(string(raw)); err != nil {
			return fmt.Errorf("failed to execute %s: %w", file.Name(), err)
		}
	}
	return nil
}
