// File path: cmd/plume/main.go
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/acambier/plume/internal/api"
	"github.com/acambier/plume/internal/blob"
	"github.com/acambier/plume/internal/common"
	"github.com/acambier/plume/internal/rewrite"
	"github.com/acambier/plume/internal/store"
)

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn("plume: .env file not loaded", "error", err)
	} else {
		logger.Info("plume: environment loaded from .env")
	}

	addr := flag.String("addr", ":8082", "listen address")
	dbPath := flag.String("db", defaultDBPath(), "path to the dossier SQLite database")
	rewriteTimeout := flag.Duration("rewrite-timeout", 30*time.Second, "timeout for the external rewrite call")
	flag.Parse()

	logger.Info("plume: startup initiated", "addr", *addr, "db", *dbPath)

	dossierStore, err := store.Open(*dbPath)
	if err != nil {
		logger.Error("plume: store open failed", "error", err)
		fmt.Println("store error:", err)
		os.Exit(1)
	}
	defer dossierStore.Close()

	var blobs api.BlobStore
	if cfg := blob.ConfigFromEnv(); cfg.Endpoint != "" {
		blobStore, err := blob.New(cfg)
		if err != nil {
			logger.Error("plume: blob store unavailable", "error", err)
			fmt.Println("blob store error:", err)
			os.Exit(1)
		}
		blobs = blobStore
		logger.Info("plume: evidence storage connected", "endpoint", cfg.Endpoint, "bucket", cfg.Bucket)
	} else {
		logger.Warn("plume: S3_ENDPOINT not set; evidence uploads disabled")
	}

	var rewriter api.Rewriter
	if provider := rewrite.NewProvider(); provider != nil {
		rewriter = rewrite.NewAdapter(provider, *rewriteTimeout)
		logger.Info("plume: rewrite provider ready", "provider", provider.Name())
	} else {
		logger.Warn("plume: no rewrite provider; synthesis uses composed text only")
	}

	server := api.NewServer(dossierStore, blobs, rewriter)
	logger.Info("plume: listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("plume: server stopped", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}
}

func defaultDBPath() string {
	if env := strings.TrimSpace(os.Getenv("PLUME_DB")); env != "" {
		return env
	}
	return filepath.Join("data", "plume.db")
}
