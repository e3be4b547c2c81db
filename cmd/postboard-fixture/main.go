package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/five82/postboard/internal/fixture"
	"github.com/five82/postboard/internal/posts"
)

func main() {
	os.Exit(run())
}

func run() int {
	addr := flag.String("addr", ":8080", "listen address")
	file := flag.String("file", "", "JSON file with posts to serve (optional, defaults to built-in sample)")
	delay := flag.Duration("delay", 0, "delay before each response")
	status := flag.Int("status", http.StatusOK, "force this HTTP status on GET /posts")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	items := fixture.SamplePosts()
	if *file != "" {
		loaded, err := fixture.LoadFile(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "postboard-fixture: %v\n", err)
			return 1
		}
		items = loaded
	}

	handler, err := fixture.NewHandler(fixture.Options{
		Posts:  items,
		Delay:  *delay,
		Status: *status,
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "postboard-fixture: %v\n", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := serve(ctx, *addr, handler, logger, items); err != nil {
		fmt.Fprintf(os.Stderr, "postboard-fixture: %v\n", err)
		return 1
	}
	return 0
}

func serve(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger, items []posts.Post) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       2 * time.Minute,
		MaxHeaderBytes:    1 << 16,
	}

	errCh := make(chan error, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	logger.Info("fixture server started", slog.String("addr", addr), slog.Int("posts", len(items)))

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	wg.Wait()
	logger.Info("fixture server stopped")
	return nil
}
