package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/bookaloo/library/app"
	"github.com/Astemirdum/bookaloo/library/config"
)

// @title        bookaloo library API
// @version      1.0
// @description  Catalogue, visitors and the loan/return ledger of a library.
// @BasePath     /
func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file, reading the environment only")
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal("app.Run ", err)
	}
}
