package filters

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"promodeck/internal/debounce"
	"promodeck/internal/domain"
)

// State is the lifecycle state of a Controller
type State int

const (
	// Idle means no keyword commit is scheduled
	Idle State = iota
	// PendingKeywordCommit means a debounced keyword commit is armed
	PendingKeywordCommit
	// Closed is terminal: the owning view is gone and nothing commits anymore
	Closed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case PendingKeywordCommit:
		return "pending"
	case Closed:
		return "closed"
	}
	return "unknown"
}

// QuerySink receives the encoded query after every change to the criteria
type QuerySink func(query string)

// Controller owns the filter criteria of one list view. Every change goes
// through UpdateFilters and is mirrored to the query sink.
type Controller struct {
	mu        sync.Mutex
	logger    *zap.Logger
	criteria  Criteria
	sink      QuerySink
	debouncer *debounce.Debouncer
	state     State
	pending   string
	seq       uint64
}

// NewController creates a controller starting from initial
func NewController(logger *zap.Logger, initial Criteria, sink QuerySink, delay time.Duration) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		logger:    logger,
		criteria:  initial,
		sink:      sink,
		debouncer: debounce.New(delay),
	}
}

// Criteria returns a copy of the current criteria
func (c *Controller) Criteria() Criteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria
}

// Query returns the encoded query of the current criteria
func (c *Controller) Query() string {
	return c.Criteria().Encode()
}

// State returns the lifecycle state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// PendingKeyword returns the keyword waiting to be committed, if any
func (c *Controller) PendingKeyword() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending, c.state == PendingKeywordCommit
}

// Update applies patch and notifies the sink. It is a no-op once closed.
func (c *Controller) Update(patch Patch) Criteria {
	c.mu.Lock()
	if c.state == Closed {
		current := c.criteria
		c.mu.Unlock()
		c.logger.Debug("Filter update after close ignored", zap.Any("patch", patch))
		return current
	}
	c.criteria = UpdateFilters(c.logger, c.criteria, patch)
	next := c.criteria
	c.mu.Unlock()

	c.notify(next.Encode())
	return next
}

// SetStatus filters by status and returns to the first page
func (c *Controller) SetStatus(s domain.Status) Criteria {
	return c.Update(Patch{KeyStatus: s, KeyPage: 1})
}

// SetDateRange filters by an inclusive date range and returns to the first page
func (c *Controller) SetDateRange(start, end string) Criteria {
	return c.Update(Patch{KeyStartDate: start, KeyEndDate: end, KeyPage: 1})
}

// SetPage moves to page without touching any other filter
func (c *Controller) SetPage(page int) Criteria {
	return c.Update(Patch{KeyPage: page})
}

// SetPageSize changes the page size and returns to the first page
func (c *Controller) SetPageSize(size int) Criteria {
	return c.Update(Patch{KeyPageSize: size, KeyPage: 1})
}

// CommitKeyword applies keyword immediately, dropping any pending debounced commit
func (c *Controller) CommitKeyword(keyword string) Criteria {
	c.mu.Lock()
	if c.state == PendingKeywordCommit {
		c.state = Idle
		c.pending = ""
	}
	c.mu.Unlock()
	c.debouncer.Cancel()
	return c.Update(Patch{KeyKeyword: keyword, KeyPage: 1})
}

// KeywordCommit is a debounced keyword whose quiet period has elapsed. It is
// only applied if nothing superseded it in the meantime; see CommitIfCurrent.
type KeywordCommit struct {
	Keyword string
	Seq     uint64
}

// DebouncedKeywordUpdate schedules a keyword commit after delay of quiet input.
// Each call replaces the previous pending keyword. commit receives the due
// keyword when the timer fires and must hand it to CommitIfCurrent; a nil
// commit does that directly on the timer goroutine. A non-positive delay keeps
// the controller's current delay.
func (c *Controller) DebouncedKeywordUpdate(keyword string, commit func(KeywordCommit), delay time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Closed {
		return
	}
	if delay > 0 && delay != c.debouncer.Delay() {
		c.debouncer.Stop()
		c.debouncer = debounce.New(delay)
	}
	if commit == nil {
		commit = func(kc KeywordCommit) { c.CommitIfCurrent(kc) }
	}

	c.seq++
	due := KeywordCommit{Keyword: keyword, Seq: c.seq}
	c.pending = keyword
	c.state = PendingKeywordCommit
	c.debouncer.Trigger(func() {
		if !c.isCurrent(due.Seq) {
			return
		}
		c.logger.Debug("Debounced keyword is due", zap.String("keyword", keyword))
		commit(due)
	})
}

// CommitIfCurrent applies kc unless a newer keyword, a cancel, a direct
// commit, a reset or Close happened after it was scheduled. It reports
// whether the keyword was applied.
func (c *Controller) CommitIfCurrent(kc KeywordCommit) (Criteria, bool) {
	c.mu.Lock()
	if c.state != PendingKeywordCommit || c.seq != kc.Seq {
		current := c.criteria
		c.mu.Unlock()
		c.logger.Debug("Dropping stale keyword commit", zap.String("keyword", kc.Keyword))
		return current, false
	}
	c.state = Idle
	c.pending = ""
	c.mu.Unlock()

	return c.Update(Patch{KeyKeyword: kc.Keyword, KeyPage: 1}), true
}

func (c *Controller) isCurrent(seq uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == PendingKeywordCommit && c.seq == seq
}

// CancelKeyword drops a pending keyword commit
func (c *Controller) CancelKeyword() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == PendingKeywordCommit {
		c.state = Idle
		c.pending = ""
	}
	c.debouncer.Cancel()
}

// Reset restores the defaults and notifies the sink with an empty query
func (c *Controller) Reset() Criteria {
	c.mu.Lock()
	if c.state == Closed {
		current := c.criteria
		c.mu.Unlock()
		return current
	}
	if c.state == PendingKeywordCommit {
		c.state = Idle
		c.pending = ""
	}
	c.debouncer.Cancel()
	c.criteria = ResetFilters()
	c.mu.Unlock()

	c.notify("")
	return ResetFilters()
}

// CorrectPage clamps the page to totalPages when it points past the last page
// of a non-empty result. It reports whether the page changed.
func (c *Controller) CorrectPage(totalPages int) bool {
	current := c.Criteria()
	if totalPages <= 0 || current.Page <= totalPages {
		return false
	}
	c.logger.Info("Clamping out of range page",
		zap.Int("page", current.Page),
		zap.Int("total_pages", totalPages))
	c.Update(Patch{KeyPage: totalPages})
	return true
}

// Close cancels any pending commit and moves the controller to its terminal state
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Closed {
		return
	}
	c.state = Closed
	c.pending = ""
	c.debouncer.Stop()
}

func (c *Controller) notify(query string) {
	if c.sink != nil {
		c.sink(query)
	}
}
