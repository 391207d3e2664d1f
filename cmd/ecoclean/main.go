package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"ecoclean/internal/config"
	"ecoclean/internal/logging"
	"ecoclean/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	must(err)

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	svc := pipeline.NewService(cfg, logger)

	cmd := "run"
	args := []string{}
	if len(os.Args) > 1 {
		cmd = os.Args[1]
		args = os.Args[2:]
	}

	switch cmd {
	case "run":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", cfg.InputPath(), "input feed (.csv, .xlsx, .html)")
		output := fs.String("output", cfg.OutputPath(), "output file (.csv or .xlsx)")
		_ = fs.Parse(args)
		res, err := svc.RunFiles(*input, *output)
		must(err)
		fmt.Printf("run done rows=%d amended=%d output=%s\n", res.Rows, res.Amended, res.Output)
	case "convert":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "input table path")
		output := fs.String("output", "", "output table path")
		_ = fs.Parse(args)
		if strings.TrimSpace(*input) == "" || strings.TrimSpace(*output) == "" {
			must(fmt.Errorf("--input and --output are required"))
		}
		n, err := svc.Convert(*input, *output)
		must(err)
		fmt.Printf("converted %d rows to %s\n", n, *output)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: ecoclean [command]")
	fmt.Println("commands:")
	fmt.Println("  run [--input=...] [--output=...]   (default)")
	fmt.Println("  convert --input=... --output=...")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
