// Package flagenv lets environment variables (and a .env file) supply
// defaults for command-line flags.
//
// A flag named "db-max-open-conns" is read from PREFIX_DB_MAX_OPEN_CONNS.
// Flags given explicitly on the command line always win.
package flagenv

import (
	"flag"
	"fmt"
	"strings"

	// loads .env into the process environment before any flag is resolved
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Apply must be called after fs.Parse.
func Apply(fs *flag.FlagSet, prefix string) error {
	k := koanf.New(".")

	err := k.Load(env.Provider(prefix, ".", func(s string) string {
		return FlagName(prefix, s)
	}), nil)
	if err != nil {
		return err
	}

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})

	var applyErr error
	fs.VisitAll(func(f *flag.Flag) {
		if applyErr != nil || explicit[f.Name] || !k.Exists(f.Name) {
			return
		}
		if err := fs.Set(f.Name, k.String(f.Name)); err != nil {
			applyErr = fmt.Errorf("%s: %w", EnvName(prefix, f.Name), err)
		}
	})

	return applyErr
}

// FlagName maps MOVIECAT_DB_DSN to db-dsn for prefix MOVIECAT_.
func FlagName(prefix, envName string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(envName, prefix)), "_", "-")
}

// EnvName maps db-dsn to MOVIECAT_DB_DSN for prefix MOVIECAT_.
func EnvName(prefix, flagName string) string {
	return prefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}
