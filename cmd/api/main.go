package main

import (
	"errors"
	"expvar"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/nhan10132020/moviecatalog/internal/data"
	"github.com/nhan10132020/moviecatalog/internal/jsonlog"
)

var (
	version   string
	buildTime string
)

type application struct {
	config config
	logger *jsonlog.Logger
	models data.Models
}

func main() {
	cfg, displayVersion, err := loadConfig(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		fmt.Printf("Build time:\t%s\n", buildTime)
		os.Exit(0)
	}

	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	db, sqlDB, err := data.Open(cfg.dataConfig(), logger)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	defer sqlDB.Close()
	logger.PrintInfo("database connection pool established", map[string]string{
		"driver": cfg.DB.Driver,
	})

	expvar.NewString("version").Set(version)

	// Publish the number of active goroutines.
	expvar.Publish("goroutines", expvar.Func(func() interface{} {
		return runtime.NumGoroutine()
	}))

	// Publish the database connection pool statistics.
	expvar.Publish("database", expvar.Func(func() interface{} {
		return sqlDB.Stats()
	}))

	// Publish the current Unix timestamp.
	expvar.Publish("timestamp", expvar.Func(func() interface{} {
		return time.Now().Unix()
	}))

	app := &application{
		config: cfg,
		logger: logger,
		models: data.NewModels(db),
	}

	err = app.serve()
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}
