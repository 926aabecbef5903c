package main

import (
	"flag"
	"os"
	"os/signal"

	"github.com/calcforge/calc-repl/internal/calculation"
	"github.com/calcforge/calc-repl/internal/repl"
	"github.com/calcforge/calc-repl/pkg/types"
)

func main() {
	var (
		prompt = flag.String("prompt", repl.DefaultPrompt, "Prompt shown before each input line")
	)
	flag.Parse()

	config := &types.Config{
		Prompt: *prompt,
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	r := repl.New(config, calculation.NewDefaultFactory(), os.Stdin, os.Stdout)
	r.SetInterrupt(interrupt)

	os.Exit(r.Run())
}
