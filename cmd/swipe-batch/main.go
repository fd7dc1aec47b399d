package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/srikanthsurna/swipe-project/constants"
	"github.com/srikanthsurna/swipe-project/internal/common"
	"github.com/srikanthsurna/swipe-project/internal/export"
	"github.com/srikanthsurna/swipe-project/internal/extract"
	"github.com/srikanthsurna/swipe-project/internal/llm/gemini"
	"github.com/srikanthsurna/swipe-project/internal/store"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir = flag.String("dir", "", "directory of documents to extract (required)")
		out = flag.String("out", "", "output XLSX file path (optional)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.AI.APIKey == "" {
		printError("Error: GEMINI_API_KEY is required\n")
		os.Exit(1)
	}

	ctx := context.Background()

	invoker, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:      cfg.AI.APIKey,
		Model:       cfg.AI.Model,
		Temperature: cfg.AI.Temperature,
		Timeout:     cfg.AI.Timeout,
	}, logger)
	if err != nil {
		logger.Error("failed to create model client", "error", err)
		os.Exit(1)
	}
	defer invoker.Close()

	records := store.New()
	service := extract.NewService(logger, invoker, records)

	files, skipped, err := collectFiles(*dir)
	if err != nil {
		logger.Error("failed to scan directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("directory scanned", "dir", *dir, "matched", len(files), "skipped", skipped)

	results, failures := service.ProcessBatch(ctx, files)

	for _, f := range failures {
		logger.Error("file failed", "file", f.FileName, "code", f.Code, "message", f.Message)
	}

	stored := 0
	for _, r := range results {
		stored += len(r.StoredIDs)
	}
	logger.Info("batch complete",
		"processed", len(results),
		"failed", len(failures),
		"records_stored", stored,
	)

	if *out != "" {
		exporter := export.NewService(records, logger)
		data, err := exporter.RecordsXLSX()
		if err != nil {
			logger.Error("export failed", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			logger.Error("write export", "path", *out, "error", err)
			os.Exit(1)
		}
		logger.Info("export written", "path", *out, "bytes", len(data))
	}

	if len(failures) > 0 {
		os.Exit(1)
	}
}

// collectFiles walks root, skips hidden entries, and reads every file whose
// extension maps to a known media type. Unreadable files are counted as
// skipped rather than aborting the walk.
func collectFiles(root string) ([]extract.UploadedFile, int, error) {
	var files []extract.UploadedFile
	skipped := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			skipped++
			return nil // continue walking
		}
		if strings.HasPrefix(filepath.Base(path), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		mimeType := constants.MIMEFromExt(filepath.Ext(path))
		if mimeType == "" {
			skipped++
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			skipped++
			return nil
		}
		files = append(files, extract.UploadedFile{
			Name:     filepath.Base(path),
			MIMEType: mimeType,
			Content:  content,
		})
		return nil
	})
	if err != nil {
		return files, skipped, common.WrapError(err, "walk directory")
	}
	return files, skipped, nil
}
