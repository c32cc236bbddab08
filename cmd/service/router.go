package service

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ChungNYCU/jtcg-assignment/app/core"
	"github.com/ChungNYCU/jtcg-assignment/app/response"
	"github.com/ChungNYCU/jtcg-assignment/cmd/service/handler"
	"github.com/ChungNYCU/jtcg-assignment/cmd/service/middleware"
	"github.com/ChungNYCU/jtcg-assignment/pkg/metrics"
	"github.com/ChungNYCU/jtcg-assignment/pkg/safe"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	go safe.Run(func() {
		if err := core.HttpEngine().Run(core.Cfg().Addr); err != nil {
			slog.Error("http server stopped", slog.String("error", err.Error()))
			os.Exit(1)
		}
	})

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	<-sigs
}

func setupHttpRouter(s *handler.HttpSrv) {
	s.Engine.GET("/metrics", metrics.DefaultExportHandler())

	s.Engine.Use(middleware.I18n(), response.NewResponse())
	s.Engine.Use(middleware.Cors)

	apiV1 := s.Engine.Group("/api/v1")
	{
		knowledge := apiV1.Group("/knowledge")
		{
			knowledge.POST("/search", s.SearchKnowledgeBase)
		}

		products := apiV1.Group("/products")
		{
			products.POST("/search", s.SearchProducts)
		}

		orders := apiV1.Group("/orders")
		{
			orders.GET("/user/:userid", s.LookupUserOrders)
			orders.GET("/:orderid", s.LookupOrderDetails)
		}

		apiV1.POST("/handover", s.HandoverToHuman)
		apiV1.POST("/chat", s.Chat)
	}
}
