// cmd/harpstep/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

const usage = `usage: harpstep [-debug] <command> [args]

commands:
  catalog                        print the register catalog as YAML
  plan   [-host addr] <profile>  print (or send) the configuration writes
  decode                         decode feed lines from stdin
  mirror [-host addr] <profile>  mirror telemetry into the Modbus endpoint
`

func main() {
	debug := flag.Bool("debug", false, "development logging")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd, args := flag.Arg(0), flag.Args()[1:]

	switch cmd {
	case "catalog":
		err = runCatalog(os.Stdout)
	case "plan":
		err = runPlan(ctx, logger, args, os.Stdout)
	case "decode":
		err = runDecode(logger, os.Stdin)
	case "mirror":
		err = runMirror(ctx, logger, args, os.Stdin)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		logger.Fatal("command failed", zap.String("command", cmd), zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
