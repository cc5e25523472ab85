package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/chzyer/readline"
	"github.com/dmitrijs2005/storefront/internal/catalogclient"
	"github.com/dmitrijs2005/storefront/internal/config"
	"github.com/dmitrijs2005/storefront/internal/filex"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/navigation"
	"github.com/dmitrijs2005/storefront/internal/services"
	"github.com/dmitrijs2005/storefront/internal/sessionstore"
	"github.com/dmitrijs2005/storefront/internal/state"
	"github.com/dmitrijs2005/storefront/internal/theme"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/term"
)

type App struct {
	config *config.Config
	log    logging.Logger
	out    io.Writer
	lines  lineReader
	paint  painter

	state      *state.Store
	nav        *navigation.Recorder
	store      sessionstore.Store
	appearance *theme.HostAppearance
	registry   *prometheus.Registry

	authService    services.AuthService
	catalogService services.CatalogService
	bootstrap      *services.Bootstrap

	routeMu    sync.Mutex
	pending    *navigation.Event
	metricsSrv *http.Server
}

// NewApp wires the storefront client from c: session backend, catalog
// client, metrics registry and the terminal.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(c.LogLevel, c.LogFormat, os.Stderr)

	store, err := openSessionStore(ctx, c)
	if err != nil {
		log.Error(ctx, "error opening session store", "backend", c.SessionBackend, "error", err)
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	client := catalogclient.New(catalogclient.Config{
		BaseURL:   c.CatalogBaseURL,
		Timeout:   c.RequestTimeout,
		RateLimit: c.RateLimit,
		RateBurst: c.RateBurst,
		Metrics:   catalogclient.NewMetrics(reg),
	})

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "storefront> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("init terminal: %w", err)
	}

	color := term.IsTerminal(int(os.Stdout.Fd()))
	return newApp(c, log, store, client, reg, rl, rl.Stdout(), color), nil
}

func newApp(c *config.Config, log logging.Logger, store sessionstore.Store, client catalogclient.Client,
	reg *prometheus.Registry, lines lineReader, out io.Writer, color bool) *App {

	st := state.New()
	nav := navigation.NewRecorder()
	appearance := &theme.HostAppearance{}
	appearance.Set(detectAppearance(os.Getenv))

	a := &App{
		config:     c,
		log:        log,
		out:        out,
		lines:      lines,
		state:      st,
		nav:        nav,
		store:      store,
		appearance: appearance,
		registry:   reg,

		authService:    services.NewAuthService(st, store, nav, log),
		catalogService: services.NewCatalogService(client, st, nav, log),
		bootstrap:      services.NewBootstrap(store, st, nav, log),
	}
	nav.Subscribe(a.routeChanged)
	a.paint = painter{enabled: color, palette: func() theme.Palette {
		return theme.PaletteFor(st.EffectiveTheme(appearance))
	}}
	return a
}

func openSessionStore(ctx context.Context, c *config.Config) (sessionstore.Store, error) {
	switch c.SessionBackend {
	case config.BackendSQLite, "":
		dsn, err := filex.EnsureParentDir(c.DatabasePath)
		if err != nil {
			return nil, err
		}
		return sessionstore.OpenSQLite(ctx, dsn, c.SessionKey)
	case config.BackendRedis:
		return sessionstore.OpenRedis(ctx, c.RedisAddr, c.SessionKey)
	case config.BackendMemory:
		return sessionstore.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", c.SessionBackend)
	}
}

// Run restores the saved session and then serves the REPL until the user
// leaves. Resources are released on return.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if a.config.MetricsAddr != "" {
		a.startMetricsServer(ctx)
	}

	a.println(a.paint.title("Welcome to Storefront CLI (type 'help' for commands)"))

	if err := a.bootstrap.Run(ctx); err != nil && !errors.Is(err, services.ErrTornDown) {
		return err
	}
	if !a.isLoggedIn() {
		a.println(a.paint.subtitle("Type 'login' to sign in."))
	}
	a.syncRoute(ctx)

	runREPL(ctx, a, a.status, a.lines)
	return nil
}

// Close tears down the bootstrap and releases the store, the metrics
// endpoint and the terminal.
func (a *App) Close() {
	a.bootstrap.Teardown()

	if a.metricsSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_ = a.metricsSrv.Shutdown(ctx)
		cancel()
	}
	if err := a.store.Close(); err != nil {
		a.log.Warn(context.Background(), "error closing session store", "error", err)
	}
	_ = a.lines.Close()
}

func (a *App) startMetricsServer(ctx context.Context) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))

	a.metricsSrv = &http.Server{
		Addr:              a.config.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		a.log.Info(ctx, "metrics endpoint listening", "addr", a.config.MetricsAddr)
		if err := a.metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error(ctx, "metrics endpoint stopped", "error", err)
		}
	}()
}

func (a *App) isLoggedIn() bool {
	_, ok := a.state.User()
	return ok
}

func (a *App) status() string {
	if u, ok := a.state.User(); ok {
		return fmt.Sprintf(" (%s)", u.Name)
	}
	return ""
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
