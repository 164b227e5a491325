package main

import (
	"os"

	"github.com/smallbiznis/tindahan/internal/logger"
	"github.com/smallbiznis/tindahan/internal/sheetd"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		fx.Provide(func() (*zap.Logger, error) {
			return logger.New(os.Getenv("LOG_LEVEL"))
		}),
		sheetd.Module,
	)
	app.Run()
}
