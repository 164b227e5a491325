package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/tindahan/internal/advisor"
	"github.com/smallbiznis/tindahan/internal/auth"
	"github.com/smallbiznis/tindahan/internal/clock"
	"github.com/smallbiznis/tindahan/internal/config"
	"github.com/smallbiznis/tindahan/internal/customer"
	"github.com/smallbiznis/tindahan/internal/gateway"
	"github.com/smallbiznis/tindahan/internal/ledger"
	"github.com/smallbiznis/tindahan/internal/logger"
	obsmetrics "github.com/smallbiznis/tindahan/internal/observability/metrics"
	"github.com/smallbiznis/tindahan/internal/product"
	"github.com/smallbiznis/tindahan/internal/server"
	"github.com/smallbiznis/tindahan/internal/store"
	"github.com/smallbiznis/tindahan/internal/transaction"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		clock.Module,
		fx.Provide(RegisterSnowflake),
		obsmetrics.Module,

		// Sync layer
		gateway.Module,
		store.Module,

		// Functional domains
		product.Module,
		customer.Module,
		transaction.Module,
		ledger.Module,
		advisor.Module,
		auth.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
