// Command cast links actors to movies directly in the catalog database.
//
// The HTTP API only reads movie_actor_through; this is the out-of-band way
// to write it:
//
//	cast -movie 1 -actor 2
//	cast -movie 1 -actor 2 -unlink
//
// Database flags match the API server's and can be set through the same
// MOVIECAT_* environment variables.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nhan10132020/moviecatalog/internal/data"
	"github.com/nhan10132020/moviecatalog/internal/flagenv"
	"github.com/nhan10132020/moviecatalog/internal/jsonlog"
	"github.com/nhan10132020/moviecatalog/internal/validator"
)

const envPrefix = "MOVIECAT_"

func main() {
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	err := run(os.Args[1:], logger, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		logger.PrintFatal(err, nil)
	}
}

func run(args []string, logger *jsonlog.Logger, usage io.Writer) error {
	var (
		dbCfg   data.Config
		movieID int64
		actorID int64
		unlink  bool
	)

	fs := flag.NewFlagSet("cast", flag.ContinueOnError)
	fs.SetOutput(usage)

	fs.StringVar(&dbCfg.Driver, "db-driver", data.DriverSQLite, "Database driver (sqlite|postgres)")
	fs.StringVar(&dbCfg.DSN, "db-dsn", "movies.db?_pragma=busy_timeout(5000)", "Database DSN (a file path for sqlite)")
	fs.BoolVar(&dbCfg.AutoMigrate, "db-automigrate", true, "Create the movie, actor and movie_actor_through tables when missing")
	fs.Int64Var(&movieID, "movie", 0, "Movie id")
	fs.Int64Var(&actorID, "actor", 0, "Actor id")
	fs.BoolVar(&unlink, "unlink", false, "Remove the link instead of adding it")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := flagenv.Apply(fs, envPrefix); err != nil {
		return err
	}

	v := validator.New()
	v.Check(movieID > 0, "movie", "must be a positive id")
	v.Check(actorID > 0, "actor", "must be a positive id")
	v.Check(validator.In(dbCfg.Driver, data.DriverSQLite, data.DriverPostgres), "db-driver", "must be sqlite or postgres")
	if !v.Valid() {
		problems := make([]string, 0, len(v.Errors))
		for key, message := range v.Errors {
			problems = append(problems, fmt.Sprintf("-%s %s", key, message))
		}
		sort.Strings(problems)
		return errors.New(strings.Join(problems, "; "))
	}

	dbCfg.MaxOpenConns = 1
	dbCfg.MaxIdleConns = 1
	dbCfg.MaxIdleTime = time.Minute

	db, sqlDB, err := data.Open(dbCfg, logger)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	models := data.NewModels(db)

	properties := map[string]string{
		"movie_id": strconv.FormatInt(movieID, 10),
		"actor_id": strconv.FormatInt(actorID, 10),
	}

	if unlink {
		if err := models.Casts.Unlink(movieID, actorID); err != nil {
			return err
		}
		logger.PrintInfo("actor unlinked from movie", properties)
	} else {
		err := models.Casts.Link(movieID, actorID)
		switch {
		case errors.Is(err, data.ErrDuplicateLink):
			logger.PrintInfo("actor already linked to movie", properties)
		case err != nil:
			return err
		default:
			logger.PrintInfo("actor linked to movie", properties)
		}
	}

	n, err := models.Casts.CountForMovie(movieID)
	if err != nil {
		return err
	}
	properties["cast_size"] = strconv.FormatInt(n, 10)
	logger.PrintInfo("movie cast updated", properties)

	return nil
}
