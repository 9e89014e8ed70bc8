package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/shade/app/server"
	"github.com/umputun/shade/app/store"
)

var opts struct {
	Store     string `short:"s" long:"store" env:"SHADE_STORE" default:"shade.db" description:"store URL (sqlite file, postgres://... or redis://...)"`
	CacheSize int    `long:"cache-size" env:"SHADE_CACHE_SIZE" default:"1000" description:"max cached keys, 0 disables cache"`

	Server struct {
		Address         string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout     time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		WriteTimeout    time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" default:"10s" description:"write timeout"`
		IdleTimeout     time.Duration `long:"idle-timeout" env:"IDLE_TIMEOUT" default:"60s" description:"idle timeout"`
		ShutdownTimeout time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"5s" description:"graceful shutdown timeout"`
		BaseURL         string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /shade)"`
	} `group:"server" namespace:"server" env-namespace:"SHADE_SERVER"`

	Visitor struct {
		CookieTTL time.Duration `long:"cookie-ttl" env:"COOKIE_TTL" default:"8760h" description:"visitor cookie lifetime"`
	} `group:"visitor" namespace:"visitor" env-namespace:"SHADE_VISITOR"`

	Redis struct {
		Prefix string `long:"prefix" env:"PREFIX" default:"shade:" description:"key prefix for redis store"`
	} `group:"redis" namespace:"redis" env-namespace:"SHADE_REDIS"`

	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `long:"version" description:"show version and exit"`
}

var revision = "unknown"

func main() {
	fmt.Printf("shade %s\n", revision)

	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	if opts.Version {
		os.Exit(0)
	}

	setupLogs(opts.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel)

	if err := run(ctx); err != nil {
		log.Printf("[ERROR] failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	baseURL, err := validateBaseURL(opts.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	log.Printf("[INFO] starting shade server on %s", opts.Server.Address)
	if baseURL != "" {
		log.Printf("[INFO] base URL %s", baseURL)
	}

	kvStore, err := openStore(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer kvStore.Close()

	srv, err := server.New(kvStore, server.Config{
		Address:         opts.Server.Address,
		ReadTimeout:     opts.Server.ReadTimeout,
		WriteTimeout:    opts.Server.WriteTimeout,
		IdleTimeout:     opts.Server.IdleTimeout,
		ShutdownTimeout: opts.Server.ShutdownTimeout,
		Version:         revision,
		BaseURL:         baseURL,
		VisitorTTL:      opts.Visitor.CookieTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// openStore opens the store from options, wrapped with a cache unless cache size is 0.
func openStore(ctx context.Context) (store.Interface, error) {
	st, err := store.Open(ctx, opts.Store, store.Options{RedisPrefix: opts.Redis.Prefix})
	if err != nil {
		return nil, err //nolint:wrapcheck // wrapped by caller
	}
	if opts.CacheSize <= 0 {
		return st, nil
	}
	cached, err := store.NewCached(st, opts.CacheSize)
	if err != nil {
		_ = st.Close()
		return nil, err //nolint:wrapcheck // wrapped by caller
	}
	log.Printf("[DEBUG] store cache enabled, %d keys", opts.CacheSize)
	return cached, nil
}

// validateBaseURL makes sure base URL starts with a slash and has no trailing one.
// "/" is the same as no base URL.
func validateBaseURL(u string) (string, error) {
	if u == "" {
		return "", nil
	}
	if !strings.HasPrefix(u, "/") {
		return "", fmt.Errorf("base URL must start with /, got %q", u)
	}
	return strings.TrimRight(u, "/"), nil
}

func setupLogs(debug bool) io.Writer {
	log.Setup(log.Msec)
	if debug {
		log.Setup(log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
	return os.Stdout
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			switch sig {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
