package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/ancientlore/cachefs"
	"github.com/facebookgo/flagenv"
	"github.com/golang/groupcache"
	"github.com/joho/godotenv"
	"github.com/patternbook/patternbook/catalog"
	"github.com/patternbook/patternbook/lint"
	"github.com/patternbook/patternbook/virtual"
	"github.com/patternbook/patternbook/web"
)

// main serves the pattern catalog as a web site. 📚
func main() {
	// Pick up a .env file if one is present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Cannot load .env file: %s", err)
	}

	// Setup flags
	var (
		fPort              = flag.Int("port", 8080, "Port to listen on.")
		fReadTimeout       = flag.Duration("readtimeout", 10*time.Second, "HTTP server read timeout.")
		fReadHeaderTimeout = flag.Duration("readheadertimeout", 5*time.Second, "HTTP server read header timeout.")
		fWriteTimeout      = flag.Duration("writetimeout", 30*time.Second, "HTTP server write timeout.")
		fRoot              = flag.String("root", ".", "Root of the documentation tree.")
		fCacheSize         = flag.Int64("cachesize", 10*1024*1024, "Size of the page cache in bytes.")
		fCacheDuration     = flag.Duration("cacheduration", 10*time.Second, "How long pages stay cached.")
		fLint              = flag.Bool("lint", true, "Check the catalog for documentation rot at startup.")
	)
	flag.Parse()
	flagenv.Parse()

	// Check the documentation tree before serving it
	if *fLint {
		cat, err := catalog.Load(os.DirFS(*fRoot))
		if err != nil {
			log.Printf("Cannot load catalog: %s", err)
			os.Exit(1)
		}
		findings := lint.Run(cat, lint.DefaultOptions())
		for _, f := range findings {
			log.Print(f)
		}
		log.Printf("Loaded catalog: %d entries, %d articles, %d lint errors",
			len(cat.Entries), len(cat.Articles), lint.ErrorCount(findings))
	}

	// Setup groupcache (with no peers)
	groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })

	// Create the virtual file system
	vfs, err := virtual.New(os.DirFS(*fRoot))
	if err != nil {
		log.Printf("Cannot create virtual file system: %s", err)
		os.Exit(2)
	}

	// get the site config
	cfg, err := vfs.Config()
	if err != nil {
		log.Printf("Cannot read site config: %s", err)
		os.Exit(3)
	}

	// Create the cached file system in front of the virtual one
	cachedFileSystem := cachefs.New(vfs, &cachefs.Config{
		GroupName:   "patternbook",
		SizeInBytes: *fCacheSize,
		Duration:    *fCacheDuration,
	})

	// Build the handler chain
	handler := web.HeaderHandler(
		web.ExpiresHandler(
			gziphandler.GzipHandler(
				web.ErrorHandler(
					http.FileServer(
						http.FS(cachedFileSystem),
					),
					cachedFileSystem,
				),
			),
			time.Duration(cfg.Expires),
			time.Duration(cfg.StaticExpires),
		),
		cfg.Headers)

	// Create HTTP server
	var srv = http.Server{
		Addr:              fmt.Sprintf(":%d", *fPort),
		Handler:           handler,
		ReadTimeout:       *fReadTimeout,
		WriteTimeout:      *fWriteTimeout,
		ReadHeaderTimeout: *fReadHeaderTimeout,
	}

	// Create signal handler for graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)

		// interrupt signal sent from terminal
		signal.Notify(sigint, os.Interrupt)
		// sigterm signal sent from kubernetes
		signal.Notify(sigint, syscall.SIGTERM)

		<-sigint

		// We received an interrupt signal, shut down.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Printf("HTTP server Shutdown: %v", err)
		}
	}()

	// Listen for requests
	log.Printf("Serving %q on %s", *fRoot, srv.Addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Printf("HTTP server: %v", err)
	} else {
		log.Print("Goodbye.")
	}
}
