package main

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/nhan10132020/moviecatalog/internal/data"
	"github.com/nhan10132020/moviecatalog/internal/flagenv"
	"github.com/nhan10132020/moviecatalog/internal/validator"
)

const envPrefix = "MOVIECAT_"

type config struct {
	Port int    `validate:"min=1,max=65535"`
	Env  string `validate:"oneof=development staging production"`
	DB   struct {
		Driver       string `validate:"oneof=sqlite postgres"`
		DSN          string `validate:"required"`
		MaxOpenConns int    `validate:"min=1"`
		MaxIdleConns int    `validate:"min=0"`
		MaxIdleTime  time.Duration
		AutoMigrate  bool
	}
	Limiter struct {
		RPS     float64 `validate:"gt=0"`
		Burst   int     `validate:"min=1"`
		Enabled bool
	}
	CORS struct {
		TrustedOrigins []string
	}
}

func (cfg config) dataConfig() data.Config {
	return data.Config{
		Driver:       cfg.DB.Driver,
		DSN:          cfg.DB.DSN,
		MaxOpenConns: cfg.DB.MaxOpenConns,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		MaxIdleTime:  cfg.DB.MaxIdleTime,
		AutoMigrate:  cfg.DB.AutoMigrate,
	}
}

// loadConfig resolves every setting from, in order of precedence, the
// command line, MOVIECAT_* environment variables (or .env) and the flag
// defaults. Usage and parse errors go to output. The second result reports
// whether -version was given.
func loadConfig(args []string, output io.Writer) (config, bool, error) {
	var cfg config

	fs := flag.NewFlagSet("api", flag.ContinueOnError)
	fs.SetOutput(output)

	//port setting
	fs.IntVar(&cfg.Port, "port", 4000, "API server port")

	// environment setting
	fs.StringVar(&cfg.Env, "env", "development", "Environment (development|staging|production)")

	// db setting
	fs.StringVar(&cfg.DB.Driver, "db-driver", data.DriverSQLite, "Database driver (sqlite|postgres)")
	fs.StringVar(&cfg.DB.DSN, "db-dsn", "movies.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", "Database DSN (a file path for sqlite)")
	fs.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "Database max open connections")
	fs.IntVar(&cfg.DB.MaxIdleConns, "db-max-idle-conns", 25, "Database max idle connections")
	fs.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "Database max connection idle time")
	fs.BoolVar(&cfg.DB.AutoMigrate, "db-automigrate", true, "Create the movie, actor and movie_actor_through tables when missing")

	// rate-limiter setting
	fs.Float64Var(&cfg.Limiter.RPS, "limiter-rps", 2, "Rate limiter maximum requests per second")
	fs.IntVar(&cfg.Limiter.Burst, "limiter-burst", 4, "Rate limiter maximum burst")
	fs.BoolVar(&cfg.Limiter.Enabled, "limiter-enabled", true, "Enable rate limiter")

	// cors setting
	fs.Func("cors-trusted-origins", "Trusted CORS origins (space separated)", func(val string) error {
		cfg.CORS.TrustedOrigins = strings.Fields(val)
		return nil
	})

	// display version setting
	displayVersion := fs.Bool("version", false, "Display version and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, false, err
	}

	if err := flagenv.Apply(fs, envPrefix); err != nil {
		return cfg, false, err
	}

	v := validator.New()
	v.Struct(cfg)
	if !v.Valid() {
		return cfg, false, configError(v.Errors)
	}

	return cfg, *displayVersion, nil
}

func configError(errors map[string]string) error {
	fields := make([]string, 0, len(errors))
	for field, message := range errors {
		fields = append(fields, fmt.Sprintf("%s %s", field, message))
	}
	sort.Strings(fields)

	return fmt.Errorf("invalid configuration: %s", strings.Join(fields, "; "))
}
