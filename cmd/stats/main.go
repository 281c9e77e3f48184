package main

import (
	stdLog "log"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/bookaloo/stats/app"
	"github.com/Astemirdum/bookaloo/stats/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file, reading the environment only")
	}
	cfg := config.NewConfig(config.WithLogLevel(zapcore.InfoLevel))

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal("app.Run ", err)
	}
}
