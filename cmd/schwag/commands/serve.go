package commands

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/bguiz/schwag/config"
	"github.com/bguiz/schwag/middleware"
	"github.com/bguiz/schwag/schema"
	"github.com/bguiz/schwag/validate"
)

// ServeFlags contains flags for the serve command
type ServeFlags struct {
	port      int
	schemaDir string
}

// SetupServeFlags creates the flag set for the serve command.
func SetupServeFlags() (*flag.FlagSet, *ServeFlags) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	flags := &ServeFlags{}

	fs.IntVar(&flags.port, "port", 0, "listen port (overrides config)")
	fs.StringVar(&flags.schemaDir, "schema-dir", "", "directory of schema documents (overrides config)")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: schwag serve [flags] [schema-file]...\n\n")
		_, _ = fmt.Fprintf(output, "Start a request-validating stub server. Every operation declared by\n")
		_, _ = fmt.Fprintf(output, "the registered schema documents is mounted with full request\n")
		_, _ = fmt.Fprintf(output, "validation; handlers answer 501 until real ones replace them.\n\n")
		_, _ = fmt.Fprintf(output, "Configuration is read from schwag.yaml and SCHWAG_* environment\n")
		_, _ = fmt.Fprintf(output, "variables; flags override both.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

// HandleServe implements the serve command.
func HandleServe(args []string) error {
	fs, flags := SetupServeFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flags.port > 0 {
		cfg.Server.Port = flags.port
	}
	if flags.schemaDir != "" {
		cfg.Validation.SchemaDir = flags.schemaDir
	}

	logger := newLogger(cfg.Server.LogLevel)

	reg, err := loadRegistry(fs.Args(), cfg.Validation.SchemaDir, cfg.Validation.NormalizeNames)
	if err != nil {
		return err
	}

	var schemaOpts []schema.Option
	if cfg.Validation.RedactValues {
		schemaOpts = append(schemaOpts, schema.WithRedactedValues())
	}

	// Stub responses never conform to the declared response schemas,
	// so response checking stays off regardless of environment.
	engine := validate.New(schema.New(reg, schemaOpts...), validate.WithProductionMode(true))
	m := middleware.New(engine, middleware.WithLogger(middleware.NewSlogAdapter(logger)))

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)

	mounted := 0
	for _, name := range reg.Names() {
		configs, err := validate.AllRouteConfigs(reg, name)
		if err != nil {
			return err
		}
		for _, rc := range configs {
			m.Mount(router, rc, notImplementedHandler(rc))
			mounted++
			logger.Info("mounted route", "schema", name, "verb", rc.Verb, "path", rc.Path)
		}
	}
	if mounted == 0 {
		return fmt.Errorf("schema documents declare no operations")
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("listening", "addr", addr, "routes", mounted, "production", cfg.IsProduction())

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return server.ListenAndServe()
}

// notImplementedHandler answers 501 for a validated but unimplemented
// operation.
func notImplementedHandler(rc *validate.RouteConfig) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotImplemented)
		fmt.Fprintf(w, `{"message":"operation %s %s is not implemented"}`, rc.Verb, rc.Path)
	})
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
