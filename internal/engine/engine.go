// Package engine runs queued bionic conversions against stored text nodes.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/rescue"
	"github.com/zeromicro/go-zero/core/syncx"
	"github.com/zeromicro/go-zero/core/threading"
	"golang.org/x/time/rate"
	"maragu.dev/goqite"

	"github.com/joeblew999/plat-bionic/internal/model"
	"github.com/joeblew999/plat-bionic/pkg/bionic"
	"github.com/joeblew999/plat-bionic/pkg/font"
	"github.com/joeblew999/plat-bionic/pkg/host"
	"github.com/joeblew999/plat-bionic/pkg/queue"
)

const (
	sourceQueue  = "queue"
	sourceDirect = "direct"
)

// nodesPerTimeout is the selection size one queue visibility timeout covers.
const nodesPerTimeout = 50

// Config holds conversion engine configuration.
type Config struct {
	Workers   int
	RateLimit int // conversions per minute
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Workers:   2,
		RateLimit: 600,
	}
}

// Engine converts stored nodes, either queued or on demand.
type Engine struct {
	config      Config
	queue       *queue.Queue
	docs        *model.DocumentStore
	conversions model.ConversionsModel
	catalog     *font.Catalog
	rateLimiter *rate.Limiter
	running     *syncx.AtomicBool

	ctx    context.Context
	cancel context.CancelFunc
	group  *threading.RoutineGroup
}

// NewEngine creates a new conversion engine.
func NewEngine(q *queue.Queue, docs *model.DocumentStore, conversions model.ConversionsModel, catalog *font.Catalog, cfg Config) *Engine {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultConfig().Workers
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = DefaultConfig().RateLimit
	}

	// Rate limiter: N conversions per minute
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RateLimit)), cfg.Workers)

	ctx, cancel := context.WithCancel(context.Background())

	return &Engine{
		config:      cfg,
		queue:       q,
		docs:        docs,
		conversions: conversions,
		catalog:     catalog,
		rateLimiter: limiter,
		running:     syncx.NewAtomicBool(),
		ctx:         ctx,
		cancel:      cancel,
		group:       threading.NewRoutineGroup(),
	}
}

// Start starts the configured number of workers.
func (e *Engine) Start() {
	if !e.running.CompareAndSwap(false, true) {
		return // Already running
	}

	logx.Infow("Conversion engine started", logx.Field("workers", e.config.Workers))
	for i := 0; i < e.config.Workers; i++ {
		e.group.RunSafe(e.worker)
	}
}

// Stop gracefully stops the engine.
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return // Already stopped
	}

	logx.Info("Conversion engine stopping, waiting for workers")
	e.cancel()
	e.group.Wait()
	e.queue.Events.Flush()
	logx.Info("Conversion engine stopped")
}

// Submit records a pending conversion and queues it.
func (e *Engine) Submit(ctx context.Context, ids []string, s bionic.Settings) (string, error) {
	if len(ids) == 0 {
		return "", bionic.ErrNoSelection
	}
	if err := s.Validate(); err != nil {
		return "", err
	}

	id := uuid.New().String()
	if _, err := e.conversions.Insert(ctx, &model.Conversions{
		Id:               id,
		NodeIds:          model.EncodeNodeIDs(ids),
		FixationStrength: int64(s.FixationStrength),
		Contrast:         int64(s.Contrast),
		Status:           model.StatusPending,
	}); err != nil {
		return "", fmt.Errorf("insert conversion: %w", err)
	}

	if _, err := e.queue.Enqueue(ctx, queue.ConversionJob{ID: id, NodeIDs: ids, Settings: s}); err != nil {
		_ = e.conversions.MarkStatus(ctx, id, model.StatusFailed, err.Error())
		return "", err
	}
	return id, nil
}

// ConvertNow converts stored nodes immediately and saves the result.
func (e *Engine) ConvertNow(ctx context.Context, ids []string, s bionic.Settings) (*bionic.Summary, error) {
	if err := e.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	summary, err := e.convert(ctx, ids, s, bionic.LogReporter{})
	if err != nil {
		return nil, err
	}

	conversionsDone.Inc(sourceDirect)
	conversionDuration.ObserveFloat(time.Since(start).Seconds(), sourceDirect)
	return summary, nil
}

// convert loads the nodes into a fresh host, converts them and saves them back.
func (e *Engine) convert(ctx context.Context, ids []string, s bionic.Settings, reporter bionic.Reporter) (*bionic.Summary, error) {
	nodes := make([]host.NodeID, len(ids))
	for i, id := range ids {
		nodes[i] = host.NodeID(id)
	}

	h := host.NewMemoryHost(font.NewManagerWithCatalog(e.catalog))
	if err := e.docs.LoadInto(ctx, h, nodes); err != nil {
		return nil, err
	}

	summary, err := bionic.NewConverter(h, bionic.WithReporter(reporter)).Convert(ctx, nodes, s)
	if err != nil {
		return nil, err
	}
	for _, r := range summary.Nodes {
		nodesProcessed.Inc(string(r.Outcome), string(r.Path))
	}

	if err := e.docs.SaveFrom(ctx, h, nodes); err != nil {
		return nil, fmt.Errorf("save nodes: %w", err)
	}
	return summary, nil
}

func (e *Engine) worker() {
	backoff := 100 * time.Millisecond
	const maxBackoff = 5 * time.Second

	for {
		select {
		case <-e.ctx.Done():
			return
		default:
		}

		job, msg, err := e.queue.Receive(e.ctx)
		if err != nil && msg != nil {
			// Undecodable body: drop it
			logx.Errorf("Dropping conversion message %s: %v", msg.ID, err)
			_ = e.queue.Delete(e.ctx, msg)
			continue
		}
		if err != nil || job == nil {
			// No work available, adaptive backoff
			e.sleep(backoff)
			backoff = min(backoff*2, maxBackoff)
			e.updateQueueDepth()
			continue
		}

		backoff = 100 * time.Millisecond // Reset on work found
		e.processJob(job, msg)
	}
}

func (e *Engine) sleep(d time.Duration) {
	select {
	case <-e.ctx.Done():
	case <-time.After(d):
	}
}

func (e *Engine) processJob(job *queue.ConversionJob, msg *goqite.Message) {
	// Enrich context with per-job fields, all logx calls with ctx include these automatically
	ctx := logx.ContextWithFields(e.ctx,
		logx.Field("conversion_id", job.ID),
		logx.Field("nodes", len(job.NodeIDs)),
	)

	// Panic recovery: mark the conversion failed and drop the message
	defer rescue.RecoverCtx(ctx, func() {
		conversionsFailed.Inc("panic")
		e.fail(ctx, job, msg, errors.New("panic during conversion"))
	})

	attempt := e.countAttempt(ctx, job)
	logx.WithContext(ctx).Infow("Processing conversion", logx.Field("attempt", attempt))
	start := time.Now()

	if n := len(job.NodeIDs); n > nodesPerTimeout {
		extra := e.queue.Timeout() * time.Duration(n/nodesPerTimeout)
		if err := e.queue.Extend(ctx, msg, extra); err != nil {
			logx.WithContext(ctx).Errorf("Extend conversion message: %v", err)
		}
	}

	if err := e.rateLimiter.Wait(ctx); err != nil {
		// Shutting down; the message becomes visible again after its timeout
		return
	}

	if err := e.conversions.MarkStatus(ctx, job.ID, model.StatusProcessing, ""); err != nil {
		logx.WithContext(ctx).Errorf("Mark conversion processing: %v", err)
	}

	reporter := bionic.MultiReporter(bionic.LogReporter{}, e.queue.Events.Reporter(job.ID))
	summary, err := e.convert(ctx, job.NodeIDs, job.Settings, reporter)
	if err != nil {
		e.handleError(ctx, job, msg, attempt, err)
		return
	}

	if err := e.conversions.Finish(ctx, job.ID,
		summary.Count(bionic.OutcomeConverted),
		summary.Count(bionic.OutcomeSkipped),
		summary.Count(bionic.OutcomeFailed),
	); err != nil {
		logx.WithContext(ctx).Errorf("Finish conversion: %v", err)
	}
	if err := e.queue.Delete(ctx, msg); err != nil {
		logx.WithContext(ctx).Errorf("Delete conversion message: %v", err)
	}

	conversionsDone.Inc(sourceQueue)
	conversionDuration.ObserveFloat(time.Since(start).Seconds(), sourceQueue)
	logx.WithContext(ctx).Infow("Conversion done",
		logx.Field("converted", summary.Count(bionic.OutcomeConverted)),
		logx.Field("skipped", summary.Count(bionic.OutcomeSkipped)),
		logx.Field("failed", summary.Count(bionic.OutcomeFailed)),
	)
}

// countAttempt records one more delivery of job and returns the total, or 0
// when it cannot be recorded.
func (e *Engine) countAttempt(ctx context.Context, job *queue.ConversionJob) int {
	attempt, err := e.conversions.AddAttempt(ctx, job.ID)
	if err != nil {
		logx.WithContext(ctx).Errorf("Count conversion attempt: %v", err)
		return 0
	}
	return attempt
}

func (e *Engine) handleError(ctx context.Context, job *queue.ConversionJob, msg *goqite.Message, attempt int, err error) {
	if isPermanentFailure(err) {
		conversionsFailed.Inc("permanent")
		e.fail(ctx, job, msg, err)
		return
	}

	// goqite stops delivering the message after MaxReceive receives
	if attempt >= e.queue.MaxReceive() {
		conversionsFailed.Inc("exhausted")
		e.fail(ctx, job, msg, fmt.Errorf("gave up after %d attempts: %w", attempt, err))
		return
	}

	// Leave the message on the queue; goqite redelivers it after its timeout.
	conversionsRetried.Inc("transient")
	if markErr := e.conversions.MarkStatus(ctx, job.ID, model.StatusPending, ""); markErr != nil {
		logx.WithContext(ctx).Errorf("Mark conversion pending: %v", markErr)
	}
	e.queue.Events.RecordEvent(job.ID, bionic.Notice{
		Kind:    "retry",
		Level:   bionic.LevelWarning,
		Message: err.Error(),
	})
	logx.WithContext(ctx).Infof("Conversion will be retried (attempt %d of %d): %v", attempt, e.queue.MaxReceive(), err)
}

func (e *Engine) fail(ctx context.Context, job *queue.ConversionJob, msg *goqite.Message, err error) {
	if markErr := e.conversions.MarkStatus(ctx, job.ID, model.StatusFailed, err.Error()); markErr != nil {
		logx.WithContext(ctx).Errorf("Mark conversion failed: %v", markErr)
	}
	if delErr := e.queue.Delete(ctx, msg); delErr != nil {
		logx.WithContext(ctx).Errorf("Delete conversion message: %v", delErr)
	}
	e.queue.Events.RecordEvent(job.ID, bionic.Notice{
		Kind:    "failed",
		Level:   bionic.LevelError,
		Message: err.Error(),
	})
	logx.WithContext(ctx).Errorf("Conversion failed: %v", err)
}

// isPermanentFailure reports errors that retrying cannot fix.
func isPermanentFailure(err error) bool {
	return errors.Is(err, model.ErrNotFound) ||
		errors.Is(err, bionic.ErrNoSelection) ||
		errors.Is(err, bionic.ErrInvalidSettings) ||
		errors.Is(err, host.ErrOutOfRange)
}

// updateQueueDepth refreshes the queue depth gauge from current stats.
func (e *Engine) updateQueueDepth() {
	stats, err := e.conversions.Stats(e.ctx)
	if err != nil {
		return
	}
	for status, count := range stats {
		queueDepth.Set(float64(count), status)
	}
}
