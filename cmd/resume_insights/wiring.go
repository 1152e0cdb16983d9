package main

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/jonathan/resume-insights/internal/analysis"
	"github.com/jonathan/resume-insights/internal/config"
	"github.com/jonathan/resume-insights/internal/db"
	"github.com/jonathan/resume-insights/internal/entities"
	"github.com/jonathan/resume-insights/internal/handoff"
	"github.com/jonathan/resume-insights/internal/ingestion"
	"github.com/jonathan/resume-insights/internal/llm"
	"github.com/jonathan/resume-insights/internal/logging"
	"github.com/jonathan/resume-insights/internal/ner"
	"github.com/jonathan/resume-insights/internal/ocr"
	"github.com/jonathan/resume-insights/internal/pipeline"
	"github.com/jonathan/resume-insights/internal/storage"
	"github.com/jonathan/resume-insights/internal/types"
)

// profileCollector gathers analysis results keyed by correlation ID,
// used by the process command to print what a local run produced.
type profileCollector struct {
	mu       sync.Mutex
	profiles map[string]*types.CandidateProfile
}

func newProfileCollector() *profileCollector {
	return &profileCollector{profiles: make(map[string]*types.CandidateProfile)}
}

func (c *profileCollector) add(correlationID string, profile *types.CandidateProfile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profiles[correlationID] = profile
}

func (c *profileCollector) get(correlationID string) *types.CandidateProfile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profiles[correlationID]
}

// localDispatcher runs the receiving stage in-process instead of
// handing payloads to a remote analysis endpoint.
type localDispatcher struct {
	svc       *pipeline.Service
	collector *profileCollector
}

func (d *localDispatcher) Dispatch(ctx context.Context, payload types.InvocationPayload) error {
	profile, err := d.svc.Analyze(ctx, payload)
	if err != nil {
		return err
	}
	if d.collector != nil {
		d.collector.add(payload.CorrelationID, profile)
	}
	return nil
}

// runtime bundles the wired pipeline with the resources that need
// closing when the command exits.
type runtime struct {
	service   *pipeline.Service
	database  *db.DB
	llmClient llm.Client
	collector *profileCollector
	logger    *zap.Logger
}

func (r *runtime) close() {
	if r.llmClient != nil {
		_ = r.llmClient.Close()
	}
	if r.database != nil {
		r.database.Close()
	}
	_ = r.logger.Sync()
}

// buildRuntime wires the pipeline from configuration. When the config
// names an analysis endpoint the sending stage hands off over HTTP;
// otherwise the receiving stage runs in-process.
func buildRuntime(ctx context.Context, cfg *config.Config) (*runtime, error) {
	logger, err := logging.New(cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	if cfg.StorageRoot == "" {
		return nil, fmt.Errorf("storage root is required (set STORAGE_ROOT or storage_root in config)")
	}
	if cfg.OCREndpoint == "" {
		return nil, fmt.Errorf("OCR endpoint is required (set OCR_ENDPOINT or ocr_endpoint in config)")
	}

	rt := &runtime{logger: logger}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, err
		}
		rt.database = database
	} else {
		logger.Warn("no database configured, profiles will not be persisted")
	}

	var nerClient ner.Client
	if cfg.NEREndpoint != "" {
		nerClient = ner.NewHTTPClient(cfg.NEREndpoint)
	} else {
		logger.Warn("no NER endpoint configured, name extraction runs in fallback mode")
	}

	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(ctx, cfg.APIKey, llm.DefaultModel)
		if err != nil {
			rt.close()
			return nil, fmt.Errorf("failed to create model client: %w", err)
		}
		rt.llmClient = client
	} else {
		logger.Warn("no API key configured, fit scoring runs in heuristic mode")
	}

	store := storage.NewFSReader(cfg.StorageRoot)
	router := ingestion.NewRouter(store, ocr.NewHTTPClient(cfg.OCREndpoint), logger)
	entityExtractor := entities.NewExtractor(nerClient, logger)
	analyzer := analysis.NewAnalyzer(rt.llmClient, logger)

	var profileStore pipeline.ProfileStore
	if rt.database != nil {
		profileStore = rt.database
	}

	if cfg.AnalysisEndpoint != "" {
		dispatcher := handoff.NewDispatcher(handoff.NewHTTPSubmitter(cfg.AnalysisEndpoint), logger)
		rt.service = pipeline.NewService(router, dispatcher, entityExtractor, analyzer, profileStore, logger)
		return rt, nil
	}

	rt.collector = newProfileCollector()
	local := &localDispatcher{collector: rt.collector}
	rt.service = pipeline.NewService(router, local, entityExtractor, analyzer, profileStore, logger)
	local.svc = rt.service
	return rt, nil
}
