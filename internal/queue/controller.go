package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/myenglish-client/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type questionSource interface {
	FetchBatch(ctx context.Context, cursor domain.Cursor, batchSize int, filter domain.FilterParams) (domain.Batch, error)
}

// ---------------------------------------------------------------------------
// Controller
// ---------------------------------------------------------------------------

// State is a consistent view of the controller.
type State struct {
	Count      int
	FetchState domain.FetchState
	HasMore    bool
	Generation uint64
}

// Controller decides when the buffer is refilled from the question source.
// At most one fetch is outstanding; a forced refresh bumps the generation so
// that a fetch issued before it cannot touch the buffer when it completes.
//
// Lock order is Controller.mu then Buffer.mu.
type Controller struct {
	source    questionSource
	buffer    *Buffer
	log       *slog.Logger
	batchSize int
	lowWater  int
	filter    domain.FilterParams

	mu         sync.Mutex
	state      domain.FetchState
	hasMore    bool
	generation uint64
	onChange   func(err error)
}

// NewController creates a controller feeding buffer from source.
func NewController(log *slog.Logger, source questionSource, buffer *Buffer, opts Options) *Controller {
	opts = opts.withDefaults()
	return &Controller{
		source:    source,
		buffer:    buffer,
		log:       log.With("component", "refill_controller"),
		batchSize: opts.BatchSize,
		lowWater:  opts.LowWaterMark,
		filter:    opts.Filter,
		state:     domain.FetchStateIdle,
		hasMore:   true,
	}
}

// OnChange registers fn to run after every state change. fn receives the
// fetch error for failed refills and nil otherwise. It is called without
// any controller lock held. Must be set before the controller is used.
func (c *Controller) OnChange(fn func(err error)) {
	c.onChange = fn
}

// RefillIfNeeded fetches the next batch unless a fetch is already in flight
// or the source reported exhaustion, in which case it returns nil at once.
// The source keeps answered cards off the front of its queue, so the fetch
// skips exactly the questions still buffered.
// It blocks for the duration of the fetch. Fetch failures are returned to
// the caller; results of a fetch superseded by ForceRefresh are dropped and
// nil is returned.
func (c *Controller) RefillIfNeeded(ctx context.Context) error {
	c.mu.Lock()
	if c.state == domain.FetchStateFetching || !c.hasMore {
		c.mu.Unlock()
		return nil
	}
	c.state = domain.FetchStateFetching
	gen := c.generation
	cursor := domain.Cursor{Offset: c.buffer.Len()}
	c.mu.Unlock()
	c.changed(nil)

	c.log.DebugContext(ctx, "fetching batch",
		slog.Uint64("generation", gen),
		slog.Int("offset", cursor.Offset),
		slog.Int("batch_size", c.batchSize),
	)

	batch, err := c.source.FetchBatch(ctx, cursor, c.batchSize, c.filter)

	c.mu.Lock()
	if gen != c.generation {
		current := c.generation
		c.mu.Unlock()
		c.log.DebugContext(ctx, "discarding superseded batch",
			slog.Uint64("generation", gen),
			slog.Uint64("current_generation", current),
			slog.Int("items", batch.Len()),
			slog.Bool("failed", err != nil),
		)
		return nil
	}

	c.state = domain.FetchStateIdle
	if err != nil {
		c.mu.Unlock()
		c.log.WarnContext(ctx, "batch fetch failed",
			slog.Uint64("generation", gen),
			slog.String("error", err.Error()),
		)
		c.changed(err)
		return fmt.Errorf("refill: %w", err)
	}

	n := batch.Len()
	added := c.buffer.Append(batch)
	c.hasMore = batch.HasMore && n > 0 && n >= c.batchSize
	hasMore := c.hasMore
	c.mu.Unlock()

	c.log.DebugContext(ctx, "batch appended",
		slog.Uint64("generation", gen),
		slog.Int("items", n),
		slog.Int("added", added),
		slog.Bool("has_more", hasMore),
	)
	c.changed(nil)

	return nil
}

// RefillIfLow calls RefillIfNeeded only when the buffer is at or below the
// low-water mark.
func (c *Controller) RefillIfLow(ctx context.Context) error {
	if !c.NeedsRefill() {
		return nil
	}
	return c.RefillIfNeeded(ctx)
}

// NeedsRefill reports whether a refill is warranted right now.
func (c *Controller) NeedsRefill() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == domain.FetchStateIdle && c.hasMore && c.buffer.Len() <= c.lowWater
}

// ForceRefresh invalidates any outstanding fetch, empties the buffer, clears
// exhaustion and immediately refills.
func (c *Controller) ForceRefresh(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.buffer.Reset()
	c.hasMore = true
	c.state = domain.FetchStateIdle
	c.mu.Unlock()

	c.log.InfoContext(ctx, "queue refreshed", slog.Uint64("generation", gen))
	c.changed(nil)

	return c.RefillIfNeeded(ctx)
}

// State returns the current controller state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Count:      c.buffer.Len(),
		FetchState: c.state,
		HasMore:    c.hasMore,
		Generation: c.generation,
	}
}

func (c *Controller) changed(err error) {
	if c.onChange != nil {
		c.onChange(err)
	}
}
