package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/x1thexxx/mcsync/pkg/config"
	"github.com/x1thexxx/mcsync/pkg/inventory"
	"github.com/x1thexxx/mcsync/pkg/logging"
	"github.com/x1thexxx/mcsync/pkg/mc"
	"github.com/x1thexxx/mcsync/pkg/scheduler"
)

func main() {
	var (
		configPath string
		command    string
		module     string
		filter     string
		operator   string
		identifier string
		top        int
		skip       int
		raw        bool
		dataPath   string
		outPath    string
	)
	flag.StringVar(&configPath, "config", "mcsync.yaml", "path to config file")
	flag.StringVar(&command, "command", "fetch", "command to run (fetch|create|update|watch)")
	flag.StringVar(&module, "module", mc.ModuleAssets, "remote module (assets|classifications)")
	flag.StringVar(&filter, "filter", "", "filter field name")
	flag.StringVar(&operator, "operator", mc.OpEq, "filter operator (eq|ne|gt|ge|lt|le)")
	flag.StringVar(&identifier, "id", "", "filter identifier value")
	flag.IntVar(&top, "top", 0, "page size (server default 50, max 500)")
	flag.IntVar(&skip, "skip", 0, "page offset")
	flag.BoolVar(&raw, "raw", false, "print results without normalization")
	flag.StringVar(&dataPath, "data", "", "JSON file holding a record array for create/update")
	flag.StringVar(&outPath, "out", "", "output file for watch exports (overrides config)")
	flag.Parse()

	// Local runs pick up credentials from .env before the config file.
	if err := godotenv.Overload(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		panic(err)
	}
	logger, err := logging.New(cfg.Logging.Path, logging.ParseLevel(cfg.Logging.Level))
	if err != nil {
		panic(err)
	}

	client := mc.NewClient(cfg.MC, logger)
	query := mc.Query{Module: module, Filter: filter, Operator: operator, Identifier: identifier, Top: top, Skip: skip}
	if query.Top == 0 {
		query.Top = cfg.MC.Top
	}
	if query.Skip == 0 {
		query.Skip = cfg.MC.Skip
	}
	ctx := context.Background()

	switch command {
	case "fetch":
		runFetch(ctx, client, query, raw)
	case "create":
		runMutation(ctx, module, dataPath, client.Create)
	case "update":
		runMutation(ctx, module, dataPath, client.Update)
	case "watch":
		runWatch(ctx, cfg, client, query, outPath, logger)
	default:
		fmt.Println("unknown command", command)
		os.Exit(1)
	}
}

func runFetch(ctx context.Context, client *mc.Client, query mc.Query, raw bool) {
	var out any
	var err error
	if raw {
		out, err = client.FetchRaw(ctx, query)
	} else {
		out, err = client.Fetch(ctx, query)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch error: %v\n", err)
		os.Exit(1)
	}
	printJSON(out)
}

type dispatchFunc func(ctx context.Context, module string, records []inventory.Record) (json.RawMessage, error)

func runMutation(ctx context.Context, module, dataPath string, dispatch dispatchFunc) {
	if dataPath == "" {
		fmt.Fprintln(os.Stderr, "create/update require -data pointing at a JSON record array")
		os.Exit(1)
	}
	data, err := os.ReadFile(dataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read data file: %v\n", err)
		os.Exit(1)
	}
	var records []inventory.Record
	if err := json.Unmarshal(data, &records); err != nil {
		fmt.Fprintf(os.Stderr, "parse data file: %v\n", err)
		os.Exit(1)
	}
	resp, err := dispatch(ctx, module, records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dispatch error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(resp)
	fmt.Println()
}

// exportTask re-fetches a module and writes the normalized collection
// to a JSON file. Each run is an independent stateless fetch.
type exportTask struct {
	client *mc.Client
	query  mc.Query
	path   string
	log    *logging.Logger
}

func (t *exportTask) Run(ctx context.Context) error {
	records, err := t.client.Fetch(ctx, t.query)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(t.path, data, 0o644); err != nil {
		return err
	}
	t.log.Infof("exported %d %s records to %s", len(records), t.query.Module, t.path)
	return nil
}

func runWatch(ctx context.Context, cfg *config.Config, client *mc.Client, query mc.Query, outPath string, logger *logging.Logger) {
	if cfg.Export.Module != "" {
		query.Module = cfg.Export.Module
	}
	path := outPath
	if path == "" {
		path = cfg.Export.Path
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "watch requires an output path (-out or export.path)")
		os.Exit(1)
	}
	task := &exportTask{client: client, query: query, path: path, log: logger}
	if err := task.Run(ctx); err != nil {
		logger.Errorf("export error: %v", err)
	}
	scheduler.New(cfg.Scheduler, task, logger).Start(ctx)
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
