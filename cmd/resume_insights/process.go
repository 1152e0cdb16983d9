package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-insights/internal/observability"
	"github.com/jonathan/resume-insights/internal/pipeline"
)

var (
	processBucket      string
	processJobFile     string
	processJobURL      string
	processConcurrency int
)

var processCmd = &cobra.Command{
	Use:   "process <key>...",
	Short: "Process one or more stored resume documents",
	Long: `Run the full pipeline for stored resume documents: extract text,
pull out candidate entities, and score each candidate against the job
description. Results are printed and, when a database is configured,
persisted as candidate profiles.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVarP(&processBucket, "bucket", "b", "", "Bucket holding the documents (required)")
	processCmd.Flags().StringVarP(&processJobFile, "job-file", "j", "", "Path to a job description text file")
	processCmd.Flags().StringVarP(&processJobURL, "job-url", "u", "", "URL to fetch the job description from")
	processCmd.Flags().IntVar(&processConcurrency, "concurrency", 4, "Maximum documents processed in parallel")

	_ = processCmd.MarkFlagRequired("bucket")

	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	if processJobFile != "" && processJobURL != "" {
		return fmt.Errorf("--job-file and --job-url are mutually exclusive; provide only one")
	}

	var jobDescription string
	if processJobFile != "" {
		data, err := os.ReadFile(processJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job description file: %w", err)
		}
		jobDescription = string(data)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// the process command always runs the receiving stage in-process
	cfg.AnalysisEndpoint = ""

	rt, err := buildRuntime(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}
	defer rt.close()

	printer := observability.NewPrinter(os.Stdout)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(processConcurrency)

	results := make([]*pipeline.IngestResult, len(args))
	for i, key := range args {
		g.Go(func() error {
			result, err := rt.service.Ingest(ctx, pipeline.IngestOptions{
				Bucket:         processBucket,
				Key:            key,
				JobDescription: jobDescription,
				JobURL:         processJobURL,
			})
			if err != nil {
				return fmt.Errorf("processing %s failed: %w", key, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, result := range results {
		fmt.Printf("\n=== %s (correlation %s) ===\n", args[i], result.CorrelationID)
		if profile := rt.collector.get(result.CorrelationID); profile != nil {
			printer.PrintProfile(profile)
			if profile.ID != uuid.Nil {
				fmt.Printf("Stored profile: %s\n", profile.ID)
			}
		}
	}

	return nil
}
