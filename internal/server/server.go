package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gomjml "github.com/preslavrachev/gomjml/mjml"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"
	"github.com/zeromicro/go-zero/core/proc"
	"github.com/zeromicro/go-zero/core/prometheus"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/mcp"
	"github.com/zeromicro/go-zero/rest"

	"github.com/joeblew999/plat-bionic/internal/config"
	"github.com/joeblew999/plat-bionic/internal/errorx"
	"github.com/joeblew999/plat-bionic/internal/handler"
	"github.com/joeblew999/plat-bionic/internal/svc"
	"github.com/joeblew999/plat-bionic/internal/ui"
	pkgconfig "github.com/joeblew999/plat-bionic/pkg/config"
	"github.com/joeblew999/plat-bionic/pkg/db"
	"github.com/joeblew999/plat-bionic/pkg/font"
	"github.com/joeblew999/plat-bionic/pkg/queue"
)

const catalogSyncTimeout = 30 * time.Second

// Server wraps the MCP server and the bionic conversion services.
type Server struct {
	config config.Config
	group  *service.ServiceGroup
}

// New creates a new server instance.
func New(c config.Config) (*Server, error) {
	// Register global error handler for proper HTTP status codes
	errorx.RegisterErrorHandler()

	// Enable go-zero prometheus metrics (required for metric.CounterVec/HistogramVec/GaugeVec to record)
	prometheus.Enable()

	if c.Database.Path == "" {
		c.Database.Path = pkgconfig.GetDatabasePath()
	}
	if c.Fonts.Catalog == "" {
		c.Fonts.Catalog = font.GetCatalogPath()
	}

	mcpServer := mcp.NewMcpServer(c.McpConf)

	// Parallel initialization: catalog loading and database opening are independent
	var catalog *font.Catalog
	var database *db.DB

	err := mr.Finish(
		func() error {
			catalog = loadCatalog(c.Fonts)
			return nil
		},
		func() error {
			var e error
			database, e = db.Open(c.Database.Path)
			return e
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}

	timeout, _ := time.ParseDuration(c.Queue.Timeout)
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	conversionQueue, err := queue.NewQueue(database, queue.Options{
		Name:       c.Queue.Name,
		MaxReceive: c.Queue.MaxReceive,
		Timeout:    timeout,
	})
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create queue: %w", err)
	}

	svcCtx := svc.NewServiceContext(c, database.SqlConn(), catalog, conversionQueue)

	RegisterMCPTools(mcpServer, svcCtx)

	// Create UI rest server (Datastar web UI) with CORS
	uiServer, err := rest.NewServer(c.UI.RestConf, rest.WithCors("*"))
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create UI server: %w", err)
	}

	uiHandlers := ui.NewHandlers(svcCtx)
	uiServer.AddRoutes(uiHandlers.Routes())
	uiServer.AddRoutes(uiHandlers.SSERoutes(), rest.WithSSE())

	// Create API rest server (goctl-generated JSON REST API) with CORS
	apiServer, err := rest.NewServer(c.API.RestConf, rest.WithCors("*"))
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create API server: %w", err)
	}

	handler.RegisterHandlers(apiServer, svcCtx)

	// Expose Prometheus metrics endpoint
	apiServer.AddRoute(rest.Route{
		Method:  http.MethodGet,
		Path:    "/metrics",
		Handler: promhttp.Handler().ServeHTTP,
	})

	// Register cleanup via proc shutdown listeners
	proc.AddShutdownListener(func() {
		logx.Info("Closing database")
		database.Close()
	})
	proc.AddShutdownListener(func() {
		gomjml.StopASTCacheCleanup()
	})

	// Build service group: engine + UI + API + MCP (stopped in reverse order)
	group := service.NewServiceGroup()
	group.Add(newEngineService(svcCtx.Engine))
	group.Add(uiServer)
	group.Add(apiServer)
	group.Add(mcpServer)

	logx.Infow("plat-bionic server configured",
		logx.Field("mcp", fmt.Sprintf("http://%s:%d/sse", c.Host, c.Port)),
		logx.Field("ui", fmt.Sprintf("http://%s:%d", c.UI.Host, c.UI.Port)),
		logx.Field("api", fmt.Sprintf("http://%s:%d/api/v1", c.API.Host, c.API.Port)),
		logx.Field("fonts", len(catalog.List())),
		logx.Field("database", c.Database.Path),
	)
	logx.Infof("To add to Claude: claude mcp add plat-bionic -- npx -y mcp-remote http://localhost:%d/sse", c.Port)

	return &Server{config: c, group: group}, nil
}

// loadCatalog opens the font catalog and merges the configured families from
// Google Fonts. An empty catalog is seeded with the default families. Sync
// failures leave the catalog as it was on disk.
func loadCatalog(c config.FontsConfig) *font.Catalog {
	catalog := font.NewCatalogAt(c.Catalog)

	families := c.Sync
	if len(families) == 0 && len(catalog.List()) == 0 {
		families = font.ListGoogleFonts()
	}
	if len(families) == 0 {
		return catalog
	}
	if c.GoogleAPIKey == "" {
		logx.Infow("Skipping font catalog sync, no Google Fonts API key", logx.Field("families", len(families)))
		return catalog
	}

	ctx, cancel := context.WithTimeout(context.Background(), catalogSyncTimeout)
	defer cancel()

	if _, err := font.NewGoogleSource(c.GoogleAPIKey).Sync(ctx, catalog, families...); err != nil {
		logx.Errorw("Font catalog sync failed", logx.Field("error", err.Error()))
	}
	return catalog
}

// Start starts all services. Blocks until shutdown signal.
func (s *Server) Start() {
	s.group.Start()
}

// Stop stops all services.
func (s *Server) Stop() {
	s.group.Stop()
}
