package main

import (
	"context"
	"flag"
	"log"

	"github.com/calcforge/calc-repl/internal/server"
	"github.com/calcforge/calc-repl/pkg/types"
)

func main() {
	var (
		logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	config := &types.Config{
		LogLevel: *logLevel,
	}

	calcServer := server.NewCalcServer(config)

	if err := calcServer.Serve(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
