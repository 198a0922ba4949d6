package coordinator

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"nycschools/internal/domain"
	"nycschools/internal/logfields"
	"nycschools/internal/metrics"
	"nycschools/internal/result"
	"nycschools/internal/statefeed"
	"nycschools/internal/store"
)

const (
	opStart      = "start"
	opShowList   = "show_list"
	opShowScores = "show_scores"
	opSelect     = "select"
)

type schoolResult = result.Result[[]domain.School, *domain.SchoolError]

// Coordinator is the school browser's state machine.
type Coordinator struct {
	domain     domain.SchoolDomain
	selections domain.SelectionStore
	feed       *statefeed.Feed[domain.UIState]
	logger     *slog.Logger
	metrics    metrics.Recorder

	listDelay   time.Duration
	scoresDelay time.Duration

	// selectMu orders a selection write with the operation it starts.
	selectMu sync.Mutex

	mu         sync.Mutex
	generation uint64
	cancelPrev context.CancelFunc
	loaded     bool
	schools    []domain.School

	loads singleflight.Group
}

// Option customises a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(c *Coordinator) { c.logger = l } }

// WithMetrics sets the metrics recorder.
func WithMetrics(r metrics.Recorder) Option { return func(c *Coordinator) { c.metrics = r } }

// WithLoadingDelays pauses after publishing Loading (list) and after publishing
// the interim "loading scores" list (scores). Both default to zero.
func WithLoadingDelays(list, scores time.Duration) Option {
	return func(c *Coordinator) {
		c.listDelay = list
		c.scoresDelay = scores
	}
}

// New returns a Coordinator whose current state is Loading. Call Start to
// derive the first real state.
func New(schools domain.SchoolDomain, selections domain.SelectionStore, opts ...Option) *Coordinator {
	c := &Coordinator{
		domain:     schools,
		selections: selections,
		feed:       statefeed.New[domain.UIState](domain.NewLoading()),
		logger:     slog.Default(),
		metrics:    metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// States returns the feed on which UI states are published.
func (c *Coordinator) States() *statefeed.Feed[domain.UIState] { return c.feed }

// State returns the current UI state.
func (c *Coordinator) State() domain.UIState { return c.feed.Value() }

// Schools returns a copy of the cached school list sorted by name, or nil if
// no list has been loaded yet.
func (c *Coordinator) Schools() []domain.School {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return nil
	}
	return append([]domain.School(nil), c.schools...)
}

// Start derives the first state: the scores of the persisted selection when
// there is one, the plain list otherwise.
func (c *Coordinator) Start(ctx context.Context) {
	sel, ok := c.selection()
	if ok {
		c.logger.Info("resuming selection",
			logfields.Operation(opStart),
			logfields.SchoolID(sel.ID.String()),
			logfields.SchoolName(sel.Name))
		c.ShowScores(ctx, sel.ID, sel.Name)
		return
	}
	c.ShowList(ctx)
}

// OnSchoolSelected persists the selection and shows the school's scores.
// A failed write is logged; the scores are shown regardless.
func (c *Coordinator) OnSchoolSelected(ctx context.Context, id domain.SchoolID, name string) {
	c.selectMu.Lock()
	if err := store.SaveSelection(c.selections, domain.Selection{ID: id, Name: name}); err != nil {
		c.logger.Error("persist selection failed",
			logfields.Operation(opSelect),
			logfields.SchoolID(id.String()),
			logfields.Error(err))
	}
	op := c.begin(ctx, opShowScores)
	c.selectMu.Unlock()

	defer op.done()
	c.showScores(op, id, name)
}

// ShowList publishes Loading and then the school list, or Error if the list
// cannot be loaded.
func (c *Coordinator) ShowList(ctx context.Context) {
	op := c.begin(ctx, opShowList)
	defer op.done()

	c.publish(op, domain.NewLoading())
	if err := sleep(op.ctx, c.listDelay); err != nil {
		return
	}

	items := c.loadItems(op.ctx)
	if abandoned(items) {
		return
	}
	c.publish(op, result.Fold(items,
		func(err *domain.SchoolError) domain.UIState {
			return domain.NewError(domain.ErrorMessage(err))
		},
		func(items []domain.SchoolItem) domain.UIState {
			return domain.NewSchoolList(items, domain.MessageNoSchoolSelected)
		},
	))
}

// ShowScores publishes the list with a loading message and then the scores of
// id. A failed score lookup degrades to the list with an error message.
func (c *Coordinator) ShowScores(ctx context.Context, id domain.SchoolID, name string) {
	op := c.begin(ctx, opShowScores)
	defer op.done()
	c.showScores(op, id, name)
}

func (c *Coordinator) showScores(op *operation, id domain.SchoolID, name string) {
	loaded := c.loadItems(op.ctx)
	if abandoned(loaded) {
		return
	}
	items, err, ok := loaded.Get()
	if !ok {
		c.publish(op, domain.NewError(domain.ErrorMessage(err)))
		return
	}
	c.publish(op, domain.NewSchoolList(items, domain.MessageLoadingScores))
	if err := sleep(op.ctx, c.scoresDelay); err != nil {
		return
	}

	withScores := result.Then(c.domain.FetchAverageScores(op.ctx, id),
		func(scores domain.AverageScores) result.Result[domain.UIState, *domain.SchoolError] {
			// Re-annotate so the marked item reflects the selection as of now.
			return result.Map(c.loadItems(op.ctx), func(items []domain.SchoolItem) domain.UIState {
				return domain.NewSchoolWithScores(items, name, scores)
			})
		})
	if abandoned(withScores) {
		return
	}
	c.publish(op, withScores.GetOrHandle(func(err *domain.SchoolError) domain.UIState {
		c.logger.Info("scores unavailable",
			logfields.OpID(op.id),
			logfields.SchoolID(id.String()),
			logfields.ErrorKind(string(err.Kind)))
		return domain.NewSchoolList(items, domain.ErrorMessage(err))
	}))
}

// loadItems resolves the school list and marks the persisted selection.
func (c *Coordinator) loadItems(ctx context.Context) result.Result[[]domain.SchoolItem, *domain.SchoolError] {
	return result.Map(c.loadSchools(ctx), func(schools []domain.School) []domain.SchoolItem {
		sel, hasSel := c.selection()
		items := make([]domain.SchoolItem, len(schools))
		for i, s := range schools {
			items[i] = domain.SchoolItem{
				ID:       s.ID,
				Name:     s.Name,
				Selected: hasSel && s.ID == sel.ID,
			}
		}
		return items
	})
}

// selection reads the persisted selection; a read failure counts as none.
func (c *Coordinator) selection() (domain.Selection, bool) {
	sel, ok, err := store.LoadSelection(c.selections)
	if err != nil {
		c.logger.Warn("read selection failed", logfields.Error(err))
		return domain.Selection{}, false
	}
	return sel, ok
}

// operation is one running ShowList/ShowScores call.
type operation struct {
	ctx    context.Context
	cancel context.CancelFunc
	gen    uint64
	id     string
	name   string
	start  time.Time
	logger *slog.Logger
}

func (o *operation) done() {
	o.cancel()
	o.logger.Debug("operation finished", logfields.Duration(time.Since(o.start)))
}

// begin makes a new operation current and cancels the one it supersedes.
func (c *Coordinator) begin(ctx context.Context, name string) *operation {
	opCtx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	c.generation++
	gen := c.generation
	if c.cancelPrev != nil {
		c.cancelPrev()
	}
	c.cancelPrev = cancel
	c.mu.Unlock()

	id := uuid.NewString()
	return &operation{
		ctx:    opCtx,
		cancel: cancel,
		gen:    gen,
		id:     id,
		name:   name,
		start:  time.Now(),
		logger: c.logger.With(logfields.Operation(name), logfields.OpID(id), logfields.Generation(gen)),
	}
}

// publish makes state current if op is still the latest operation.
func (c *Coordinator) publish(op *operation, state domain.UIState) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if op.gen != c.generation {
		c.metrics.IncStaleResult(op.name)
		op.logger.Debug("dropping stale state", logfields.State(string(state.Kind())))
		return false
	}
	c.feed.Publish(state)
	c.metrics.IncStatePublished(string(state.Kind()))
	op.logger.Debug("state published", logfields.State(string(state.Kind())))
	return true
}

// abandoned reports whether r failed only because its operation was cancelled.
// Such results are not shown; a newer operation or the caller owns the screen.
func abandoned[T any](r result.Result[T, *domain.SchoolError]) bool {
	err, failed := r.Err()
	return failed && errors.Is(err, context.Canceled)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
