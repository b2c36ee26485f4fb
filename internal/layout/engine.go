package layout

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/goliatone/go-catalog/internal/bundle"
)

// Direction selects which neighbour a block swaps order keys with.
type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

var (
	// ErrUnknownBlock indicates Move referenced a block id outside the layout.
	ErrUnknownBlock = errors.New("layout: block not found")
	// ErrInvalidDirection indicates Move received a direction outside up/down.
	ErrInvalidDirection = errors.New("layout: invalid move direction")
	// ErrNothingToCommit indicates Commit ran without a pending draft.
	ErrNothingToCommit = errors.New("layout: no pending reorder to commit")
)

// OrderChange is one (block, sort key) pair of a reorder commit. Only blocks
// whose sort_order actually changed relative to the baseline are reported.
type OrderChange struct {
	BlockID   int64
	SortOrder int
}

// CommitFunc persists a staged reorder. The engine stays transport-agnostic;
// the caller wires this to the layout-order endpoint.
type CommitFunc func(ctx context.Context, changes []OrderChange) error

// Engine maintains the strict total block order of one layout. It keeps the
// last known good sequence from the server plus an optional in-memory draft
// produced by local moves; the draft survives until committed or reset.
//
// Sorting is always by (sort_order, id) ascending so equal sort_order values
// never produce an ambiguous sequence.
type Engine struct {
	mu       sync.Mutex
	baseline []bundle.Block
	draft    []bundle.Block
}

// NewEngine builds an engine over the layout's block sequence.
func NewEngine(blocks []bundle.Block) *Engine {
	e := &Engine{}
	e.Reload(blocks)
	return e
}

// Reload replaces the baseline with a freshly fetched sequence and discards
// any staged draft (reload-after-write policy).
func (e *Engine) Reload(blocks []bundle.Block) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.baseline = sortBlocks(blocks)
	e.draft = nil
}

// Blocks returns the display sequence: the staged draft when present,
// otherwise the baseline. The returned slice is a copy.
func (e *Engine) Blocks() []bundle.Block {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.draft != nil {
		return cloneBlocks(e.draft)
	}
	return cloneBlocks(e.baseline)
}

// Dirty reports whether staged moves are awaiting a commit.
func (e *Engine) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft != nil
}

// Reset discards the staged draft, restoring the baseline order.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = nil
}

// Move swaps the sort_order values of the identified block and its immediate
// neighbour in the current sequence. All other blocks keep their keys. Moving
// the first block up or the last block down is a silent no-op.
//
// When the pair shares a sort_order the keys cannot express the new sequence
// (ties break by id), so the colliding keys are renumbered instead.
func (e *Engine) Move(blockID int64, dir Direction) error {
	if dir != MoveUp && dir != MoveDown {
		return ErrInvalidDirection
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	working := e.draft
	if working == nil {
		working = cloneBlocks(e.baseline)
	}

	index := -1
	for i, block := range working {
		if block.ID == blockID {
			index = i
			break
		}
	}
	if index < 0 {
		return ErrUnknownBlock
	}

	neighbour := index - 1
	if dir == MoveDown {
		neighbour = index + 1
	}
	if neighbour < 0 || neighbour >= len(working) {
		// Edge block, nothing to swap with.
		return nil
	}

	if working[index].SortOrder == working[neighbour].SortOrder {
		working[index], working[neighbour] = working[neighbour], working[index]
		renumberCollisions(working)
	} else {
		working[index].SortOrder, working[neighbour].SortOrder =
			working[neighbour].SortOrder, working[index].SortOrder
	}
	e.draft = sortBlocks(working)
	return nil
}

// renumberCollisions bumps sort keys until the positional order is strictly
// increasing. Blocks whose keys already ascend keep them.
func renumberCollisions(blocks []bundle.Block) {
	for i := 1; i < len(blocks); i++ {
		if blocks[i].SortOrder <= blocks[i-1].SortOrder {
			blocks[i].SortOrder = blocks[i-1].SortOrder + 1
		}
	}
}

// Changes lists the (block, sort_order) pairs that differ from the baseline.
func (e *Engine) Changes() []OrderChange {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.changesLocked()
}

func (e *Engine) changesLocked() []OrderChange {
	if e.draft == nil {
		return nil
	}

	base := make(map[int64]int, len(e.baseline))
	for _, block := range e.baseline {
		base[block.ID] = block.SortOrder
	}

	var changes []OrderChange
	for _, block := range e.draft {
		if base[block.ID] != block.SortOrder {
			changes = append(changes, OrderChange{BlockID: block.ID, SortOrder: block.SortOrder})
		}
	}
	return changes
}

// Commit hands the staged changes to fn. On success the draft is promoted to
// the new baseline; on failure the draft is kept so the admin can retry.
// A draft whose moves cancelled out back to the baseline has nothing to
// persist: it is discarded locally without touching the wire.
func (e *Engine) Commit(ctx context.Context, fn CommitFunc) error {
	e.mu.Lock()
	if e.draft == nil {
		e.mu.Unlock()
		return ErrNothingToCommit
	}
	changes := e.changesLocked()
	if len(changes) == 0 {
		e.draft = nil
		e.mu.Unlock()
		return nil
	}
	draft := cloneBlocks(e.draft)
	e.mu.Unlock()

	if fn != nil {
		if err := fn(ctx, changes); err != nil {
			return err
		}
	}

	e.mu.Lock()
	e.baseline = draft
	e.draft = nil
	e.mu.Unlock()
	return nil
}

func sortBlocks(blocks []bundle.Block) []bundle.Block {
	sorted := cloneBlocks(blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].SortOrder != sorted[j].SortOrder {
			return sorted[i].SortOrder < sorted[j].SortOrder
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

func cloneBlocks(blocks []bundle.Block) []bundle.Block {
	cloned := make([]bundle.Block, len(blocks))
	copy(cloned, blocks)
	return cloned
}
