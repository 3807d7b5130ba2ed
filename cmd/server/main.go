package main

import (
	"github.com/corposcope/backend/internal/server"
	"github.com/corposcope/backend/internal/util"
	"github.com/corposcope/backend/pkg/logger"
	"github.com/corposcope/backend/pkg/logger/console"

	_ "github.com/lib/pq"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
