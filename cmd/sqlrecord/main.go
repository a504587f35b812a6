/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/suparena/sqlrecord"
	"github.com/suparena/sqlrecord/config"
	"github.com/suparena/sqlrecord/datastore"
	"github.com/suparena/sqlrecord/datastore/ddb"
	"github.com/suparena/sqlrecord/datastore/sqldb"
	"github.com/suparena/sqlrecord/model"
	"github.com/suparena/sqlrecord/registry"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	configFlag  = flag.String("config", "", "Path to the YAML configuration file")
	tableFlag   = flag.String("table", "", "Table to read")
	keyFlag     = flag.String("key", "", "Primary key of a single row to read")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := sqlrecord.GetVersionInfo()
		fmt.Printf("sqlrecord version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout); err != nil {
		log.Error().Err(err).Msg("sqlrecord failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer) error {
	cfg, err := config.Load(*configFlag, os.Getenv)
	if err != nil {
		return err
	}
	logger := log.Logger.Level(cfg.Level())

	catalog, err := buildCatalog(cfg, logger)
	if err != nil {
		return err
	}

	if *tableFlag == "" {
		return json.NewEncoder(out).Encode(catalog.Tables())
	}
	rows, err := sqlrecord.Lookup[model.Row](catalog, *tableFlag)
	if err != nil {
		return err
	}

	cur, closeFn, err := openCursor(ctx, cfg, catalog, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	if *keyFlag == "" {
		all, err := rows.All(ctx, cur)
		if err != nil {
			return err
		}
		return enc.Encode(all)
	}

	key, err := parseKey(rows.Meta(), *keyFlag)
	if err != nil {
		return err
	}
	row, err := rows.Find(ctx, cur, key)
	if err != nil {
		return err
	}
	if row == nil {
		return fmt.Errorf("%s: no row with %s = %q", *tableFlag, rows.Meta().Key(), *keyFlag)
	}
	return enc.Encode(row)
}

// parseKey converts a key given on the command line to the key column's type.
func parseKey(meta *model.Meta, raw string) (any, error) {
	field := meta.Fields[meta.Index(meta.Key())]
	switch field.Type {
	case "int", "int32", "int64":
		return cast.ToInt64E(raw)
	case "uint", "uint32", "uint64":
		return cast.ToUint64E(raw)
	case "float32", "float64":
		return cast.ToFloat64E(raw)
	case "bool":
		return cast.ToBoolE(raw)
	}
	return raw, nil
}

// buildCatalog registers a dynamic row table for every configured table.
func buildCatalog(cfg *config.Config, logger zerolog.Logger) (*sqlrecord.Catalog, error) {
	metas, err := cfg.Metas()
	if err != nil {
		return nil, err
	}

	types := registry.NewDefaultTypeRegistry()
	catalog := sqlrecord.NewCatalog()
	for _, meta := range metas {
		rows, err := model.NewRowTable(meta, types, model.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		if err := sqlrecord.Register(catalog, rows); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

func openCursor(ctx context.Context, cfg *config.Config, catalog *sqlrecord.Catalog, logger zerolog.Logger) (datastore.Cursor, func(), error) {
	if cfg.Driver == config.DriverDynamoDB {
		client, err := ddb.NewDynamoDBClient(ctx, cfg.DynamoDBClientConfig())
		if err != nil {
			return nil, nil, err
		}
		cur := ddb.New(client, catalog,
			ddb.WithConsistentRead(cfg.DynamoDB.ConsistentRead),
			ddb.WithLogger(logger))
		return cur, func() {}, nil
	}

	db, err := sqldb.Open(ctx, cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, nil, err
	}
	cur := sqldb.New(db,
		sqldb.WithBindStyle(sqldb.BindStyleFor(cfg.Driver)),
		sqldb.WithLogger(logger))
	return cur, func() { _ = db.Close() }, nil
}
