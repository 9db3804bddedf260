// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"github.com/joeblew999/plat-bionic/internal/config"
	"github.com/joeblew999/plat-bionic/internal/engine"
	"github.com/joeblew999/plat-bionic/internal/model"
	"github.com/joeblew999/plat-bionic/pkg/export"
	"github.com/joeblew999/plat-bionic/pkg/font"
	"github.com/joeblew999/plat-bionic/pkg/queue"
)

type ServiceContext struct {
	Config      config.Config
	Catalog     *font.Catalog
	Docs        *model.DocumentStore
	Conversions model.ConversionsModel
	Events      model.ConversionEventsModel
	Engine      *engine.Engine
	Email       *export.EmailRenderer
}

func NewServiceContext(c config.Config, conn sqlx.SqlConn, catalog *font.Catalog, q *queue.Queue) *ServiceContext {
	docs := model.NewDocumentStore(conn)
	conversions := model.NewConversionsModel(conn)

	return &ServiceContext{
		Config:      c,
		Catalog:     catalog,
		Docs:        docs,
		Conversions: conversions,
		Events:      model.NewConversionEventsModel(conn),
		Engine: engine.NewEngine(q, docs, conversions, catalog, engine.Config{
			Workers:   c.Engine.Workers,
			RateLimit: c.Engine.RateLimit,
		}),
		Email: export.NewEmailRenderer(export.WithCache(true)),
	}
}
