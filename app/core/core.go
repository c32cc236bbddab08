package core

import (
	"io"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ChungNYCU/jtcg-assignment/app/core/srv"
	"github.com/ChungNYCU/jtcg-assignment/app/store/sqlstore"
	"github.com/ChungNYCU/jtcg-assignment/pkg/dataset"
	"github.com/ChungNYCU/jtcg-assignment/pkg/handover"
)

type Core struct {
	cfg CoreConfig
	srv *srv.Srv

	stores  func() *sqlstore.Provider
	dataset *dataset.Dataset

	httpEngine *gin.Engine
	metrics    *Metrics
}

func MustSetupCore(cfg CoreConfig) *Core {
	{
		var writer io.Writer = os.Stdout
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	core := &Core{
		cfg:        cfg,
		metrics:    NewMetrics("jtcg", "core"),
		httpEngine: gin.New(),
	}

	// setup store
	setupSqlStore(core)

	// 參考資料集一次性載入，之後唯讀
	core.dataset = dataset.MustLoad(cfg.Dataset)

	core.srv = srv.SetupSrvs(
		srv.ApplyAI(cfg.AI),
		srv.ApplyHandover(&handover.MockTransport{SimulateFail: cfg.Handover.SimulateFail}),
	)

	return core
}

func setupSqlStore(core *Core) {
	core.stores = sqlstore.MustSetup(core.cfg.Postgres)
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) Store() *sqlstore.Provider {
	return s.stores()
}

func (s *Core) Srv() *srv.Srv {
	return s.srv
}

func (s *Core) Dataset() *dataset.Dataset {
	return s.dataset
}

func (s *Core) HttpEngine() *gin.Engine {
	return s.httpEngine
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}
