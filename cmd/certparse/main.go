package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/certfolio/certparse/constants"
	"github.com/certfolio/certparse/internal/common"
	"github.com/certfolio/certparse/internal/ingest"
	"github.com/certfolio/certparse/internal/llm"
	"github.com/certfolio/certparse/internal/llm/openai"
	"github.com/certfolio/certparse/internal/pipeline"
	"github.com/certfolio/certparse/internal/vocab"
)

func main() {
	// Logs go to stderr; stdout carries the result JSON.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	source := flag.String("source", "", "how the text was recovered: pdf_text|cloud_ocr|local_ocr")
	upstream := flag.Float64("upstream-confidence", 0, "OCR engine confidence, carried through")
	patternOnly := flag.Bool("pattern-only", false, "use the regex fast path only")
	noLLM := flag.Bool("no-llm", false, "skip the LLM backend even if configured")
	flag.Parse()

	if flag.NArg() != 1 {
		logger.Error("usage: certparse [flags] <file.txt|file.pdf>")
		os.Exit(2)
	}

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
		PatternOnly: *patternOnly || cfg.Pipeline.PatternOnly,
	}, v, backend)

	doc, err := ingest.ReadFile(flag.Arg(0))
	if err != nil {
		logger.Error("read document", "path", flag.Arg(0), "error", err)
		os.Exit(1)
	}
	src := doc.Source
	if *source != "" {
		src = constants.SourceKind(*source)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res := extractor.Extract(ctx, pipeline.Request{
		RawText:            doc.Text,
		Source:             src,
		UpstreamConfidence: float32(*upstream),
	})

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
