package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hyadav1201/autofolio/internal/docparse"
	"github.com/hyadav1201/autofolio/internal/llm"
	"github.com/hyadav1201/autofolio/internal/narrative"
	"github.com/hyadav1201/autofolio/internal/observability"
	"github.com/hyadav1201/autofolio/internal/pipeline"
)

var (
	extractParserURL    string
	extractParserAPIKey string
	extractGeminiAPIKey string
	extractOutDir       string
	extractConcurrency  int
	extractVerbose      bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [pdf files...]",
	Short: "Extract profiles from resume PDFs",
	Long: `Run the extraction pipeline on one or more resume PDFs and write one
JSON profile per input. Files are processed concurrently; each file gets an
independent session.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractParserURL, "parser-url", "", "Resume parsing service endpoint (defaults to PARSER_URL env var)")
	extractCmd.Flags().StringVar(&extractParserAPIKey, "parser-api-key", "", "Parsing service API key (defaults to PARSER_API_KEY env var)")
	extractCmd.Flags().StringVar(&extractGeminiAPIKey, "api-key", "", "Gemini API key for About Me generation (defaults to GEMINI_API_KEY env var)")
	extractCmd.Flags().StringVarP(&extractOutDir, "out", "o", "", "Output directory (defaults to each input file's directory)")
	extractCmd.Flags().IntVar(&extractConcurrency, "concurrency", 4, "Maximum files processed in parallel")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print progress events")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	parserURL := extractParserURL
	if parserURL == "" {
		parserURL = os.Getenv("PARSER_URL")
	}
	parserKey := extractParserAPIKey
	if parserKey == "" {
		parserKey = os.Getenv("PARSER_API_KEY")
	}
	geminiKey := extractGeminiAPIKey
	if geminiKey == "" {
		geminiKey = os.Getenv("GEMINI_API_KEY")
	}

	var remote docparse.Client
	if parserURL != "" {
		remote = docparse.NewHTTPClient(parserURL, parserKey, nil)
	}

	var narrator narrative.Generator
	if geminiKey != "" {
		client, err := llm.NewClient(ctx, nil, geminiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close()
		narrator = narrative.NewGeminiGenerator(client, nil)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(extractConcurrency)

	for _, path := range args {
		path := path
		g.Go(func() error {
			return extractOne(gCtx, path, remote, narrator)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Printf("Done: %d file(s) processed.\n", len(args))
	return nil
}

func extractOne(ctx context.Context, path string, remote docparse.Client, narrator narrative.Generator) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var onProgress pipeline.ProgressCallback
	if extractVerbose {
		onProgress = func(e pipeline.ProgressEvent) {
			log.Printf("[%s] %3d%% %s", filepath.Base(path), e.Progress, e.Status)
		}
	}
	session := pipeline.NewSession(onProgress)

	start := time.Now()
	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		Filename:  filepath.Base(path),
		Document:  data,
		Remote:    remote,
		Narrative: narrator,
		Session:   session,
	})
	if err != nil {
		return fmt.Errorf("extraction failed for %s: %w", path, err)
	}

	outPath := profileOutputPath(path)
	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result for %s: %w", path, err)
	}
	if err := os.WriteFile(outPath, encoded, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	log.Printf("[%s] extracted via %s in %v -> %s", filepath.Base(path), result.Source, time.Since(start).Round(time.Millisecond), outPath)
	if extractVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintProfile(&result.Profile)
		printer.PrintProvenance(result.Source, result.Provenance)
		printer.PrintWarnings(result.Warnings)
	} else {
		for _, warning := range result.Warnings {
			log.Printf("[%s] warning: %s", filepath.Base(path), warning)
		}
	}
	return nil
}

// profileOutputPath derives the JSON output path for an input PDF, honoring
// the --out directory when set.
func profileOutputPath(input string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".profile.json"
	if extractOutDir != "" {
		return filepath.Join(extractOutDir, base)
	}
	return filepath.Join(filepath.Dir(input), base)
}
