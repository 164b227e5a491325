package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	advisordomain "github.com/smallbiznis/tindahan/internal/advisor/domain"
	authdomain "github.com/smallbiznis/tindahan/internal/auth/domain"
	"github.com/smallbiznis/tindahan/internal/clock"
	"github.com/smallbiznis/tindahan/internal/config"
	customerdomain "github.com/smallbiznis/tindahan/internal/customer/domain"
	"github.com/smallbiznis/tindahan/internal/gateway"
	ledgerdomain "github.com/smallbiznis/tindahan/internal/ledger/domain"
	obsmetrics "github.com/smallbiznis/tindahan/internal/observability/metrics"
	productdomain "github.com/smallbiznis/tindahan/internal/product/domain"
	"github.com/smallbiznis/tindahan/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func NewEngine(log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogMiddleware(log))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Server struct {
	engine   *gin.Engine
	cfg      config.Config
	settings *config.StoreSettingsHolder
	log      *zap.Logger
	clock    clock.Clock

	gw        gateway.Gateway
	store     *store.Store
	products  productdomain.Repository
	customers customerdomain.Repository
	ledgerSvc ledgerdomain.Service
	advisor   advisordomain.Service
	authSvc   authdomain.Service
}

type ServerParams struct {
	fx.In

	Gin      *gin.Engine
	Cfg      config.Config
	Settings *config.StoreSettingsHolder
	Log      *zap.Logger
	Clock    clock.Clock

	Gateway   gateway.Gateway
	Store     *store.Store
	Products  productdomain.Repository
	Customers customerdomain.Repository
	LedgerSvc ledgerdomain.Service
	Advisor   advisordomain.Service
	AuthSvc   authdomain.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:    p.Gin,
		cfg:       p.Cfg,
		settings:  p.Settings,
		log:       p.Log.Named("server"),
		clock:     p.Clock,
		gw:        p.Gateway,
		store:     p.Store,
		products:  p.Products,
		customers: p.Customers,
		ledgerSvc: p.LedgerSvc,
		advisor:   p.Advisor,
		authSvc:   p.AuthSvc,
	}
}

// RegisterAPIRoutes mounts the ledger API consumed by the presentation layer.
func (s *Server) RegisterAPIRoutes() {
	api := s.engine.Group("/api")

	api.POST("/auth/login", s.Login)
	api.POST("/auth/register", s.Register)

	api.GET("/products", s.ListProducts)
	api.POST("/products", s.CreateProduct)
	api.PUT("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)

	api.GET("/customers", s.ListCustomers)
	api.POST("/customers", s.CreateCustomer)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)

	api.GET("/transactions", s.ListTransactions)
	api.POST("/transactions", s.RecordTransaction)

	api.GET("/dashboard", s.DashboardSummary)
	api.GET("/insights", s.Insights)
	api.GET("/settings", s.Settings)

	api.POST("/admin/refresh", s.RefreshCache)
	api.POST("/admin/reset", s.ResetData)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, st *store.Store, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Populate the cache before serving; a failed refresh
			// leaves it empty, never stale.
			if err := st.Refresh(ctx); err != nil {
				log.Warn("initial refresh failed, serving empty cache", zap.Error(err))
			}
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) {
		s.RegisterAPIRoutes()
	}),
	fx.Invoke(run),
)
