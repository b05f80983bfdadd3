package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"currency-converter/docs"
	conversionhttp "currency-converter/internal/api/http/conversion"
	"currency-converter/internal/api/http/health"
	"currency-converter/internal/api/http/middleware"
	"currency-converter/internal/api/http/page"
	"currency-converter/internal/logger"
	"currency-converter/internal/netinfo"
	"currency-converter/internal/service/conversion"
)

const serviceName = "currency-converter"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	lg, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = lg.Sync() }()

	svc, err := conversion.New(cfg.Rates)
	if err != nil {
		return fmt.Errorf("init conversion service: %w", err)
	}

	docs.SwaggerInfo.Host = net.JoinHostPort("localhost", cfg.HTTPPort)
	router := newRouter(svc, lg)

	addr := net.JoinHostPort(cfg.HTTPHost, cfg.HTTPPort)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	logAccessURLs(lg, cfg.HTTPPort)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return serveHTTP(gctx, ln, router, lg)
	})

	lg.Info("Running. Stop with Ctrl+C / SIGTERM.")
	return g.Wait()
}

func newRouter(svc *conversion.Service, lg *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logging(lg))

	page.New().Register(r)
	conversionhttp.New(svc).Register(r)
	health.New(serviceName).Register(r)

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	return r
}

func logAccessURLs(lg *zap.SugaredLogger, port string) {
	lg.Infof("Local access: http://%s", net.JoinHostPort("localhost", port))

	ips, err := netinfo.LANIPv4()
	if err != nil {
		lg.Warnw("cannot list LAN addresses", "error", err)
		return
	}
	for _, u := range netinfo.URLs(ips, port) {
		lg.Infow("access from other devices", "url", u)
	}
}

func serveHTTP(ctx context.Context, ln net.Listener, h http.Handler, lg *zap.SugaredLogger) error {
	srv := &http.Server{Handler: h, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	lg.Infof("HTTP listening on %s", ln.Addr())
	err := srv.Serve(ln)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
