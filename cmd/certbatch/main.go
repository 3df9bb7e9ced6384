package main

import (
	"context"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/certfolio/certparse/constants"
	"github.com/certfolio/certparse/internal/common"
	"github.com/certfolio/certparse/internal/export"
	"github.com/certfolio/certparse/internal/ingest"
	"github.com/certfolio/certparse/internal/llm"
	"github.com/certfolio/certparse/internal/llm/openai"
	"github.com/certfolio/certparse/internal/pipeline"
	"github.com/certfolio/certparse/internal/vocab"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	out := flag.String("out", "extractions.xlsx", "output workbook path")
	source := flag.String("source", "", "how the texts were recovered: pdf_text|cloud_ocr|local_ocr")
	noLLM := flag.Bool("no-llm", false, "skip the LLM backend even if configured")
	flag.Parse()

	if flag.NArg() != 1 {
		logger.Error("usage: certbatch [flags] <directory>")
		os.Exit(2)
	}
	dir := flag.Arg(0)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(2)
	}

	v := vocab.Default()
	if cfg.Pipeline.VocabFile != "" {
		loaded, err := vocab.LoadFile(cfg.Pipeline.VocabFile)
		if err != nil {
			logger.Error("load vocabulary", "path", cfg.Pipeline.VocabFile, "error", err)
			os.Exit(2)
		}
		v = loaded
	}

	var backend llm.FieldExtractor
	if !*noLLM && cfg.LLM.APIKey != "" {
		backend = openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
	}

	extractor := pipeline.New(logger, pipeline.Config{
		LLMTimeout:  cfg.LLM.Timeout,
		PatternOnly: cfg.Pipeline.PatternOnly,
	}, v, backend)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	start := time.Now()
	var rows []export.Row
	needsReview := 0

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !ingest.Accepted(path) {
			return nil
		}

		doc, err := ingest.ReadFile(path)
		if err != nil {
			logger.Warn("skip unreadable document", "path", path, "error", err)
			return nil
		}
		src := doc.Source
		if *source != "" {
			src = constants.SourceKind(*source)
		}

		res := extractor.Extract(ctx, pipeline.Request{RawText: doc.Text, Source: src})
		if res.RequiresReview {
			needsReview++
		}
		rows = append(rows, export.Row{File: path, Result: res})
		return nil
	})
	if err != nil {
		logger.Error("walk directory", "dir", dir, "error", err)
		os.Exit(1)
	}
	if len(rows) == 0 {
		logger.Error("no ingestable documents found", "dir", dir)
		os.Exit(1)
	}

	workbook, err := export.NewService(logger).BuildXLSX(rows)
	if err != nil {
		logger.Error("build workbook", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, workbook, 0o644); err != nil {
		logger.Error("write workbook", "path", *out, "error", err)
		os.Exit(1)
	}

	logger.Info("certbatch.done",
		"documents", len(rows),
		"needs_review", needsReview,
		"out", *out,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
}
