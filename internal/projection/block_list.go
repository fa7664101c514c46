// Package projection holds the in-memory views of the node state.
// Projections are not safe for concurrent use; a single goroutine owns them.
package projection

import "github.com/ben-haim/Nxt2Monitor/internal/model"

// BlockList is the recent block window. Row 0 is the chain head.
type BlockList struct {
	// blocks is stored oldest first so that a new head is an append.
	blocks []model.Block
	index  map[uint64]int
}

// NewBlockList returns an empty BlockList.
func NewBlockList() *BlockList {
	return &BlockList{index: make(map[uint64]int)}
}

// Replace discards the current contents and loads blocks given in row order, head first.
// Blocks repeating an id already loaded are skipped. It returns the accepted blocks in row order.
func (l *BlockList) Replace(blocks []model.Block) []model.Block {
	l.blocks = make([]model.Block, 0, len(blocks))
	l.index = make(map[uint64]int, len(blocks))
	for i := len(blocks) - 1; i >= 0; i-- {
		b := blocks[i]
		if _, ok := l.index[b.ID]; ok {
			continue
		}
		l.index[b.ID] = len(l.blocks)
		l.blocks = append(l.blocks, b)
	}
	return l.Blocks()
}

// InsertHead adds b as the new chain head. A block already present yields no delta.
func (l *BlockList) InsertHead(b model.Block) (model.Delta, bool) {
	if _, ok := l.index[b.ID]; ok {
		return model.Delta{}, false
	}
	l.index[b.ID] = len(l.blocks)
	l.blocks = append(l.blocks, b)
	return model.Delta{Kind: model.BlockInserted, Row: 0, Block: b}, true
}

// RemoveByID removes the block with the given id wherever it sits.
func (l *BlockList) RemoveByID(id uint64) (model.Delta, bool) {
	pos, ok := l.index[id]
	if !ok {
		return model.Delta{}, false
	}
	removed := l.blocks[pos]
	row := len(l.blocks) - 1 - pos

	l.blocks = append(l.blocks[:pos], l.blocks[pos+1:]...)
	delete(l.index, id)
	for i := pos; i < len(l.blocks); i++ {
		l.index[l.blocks[i].ID] = i
	}
	return model.Delta{Kind: model.BlockRemoved, Row: row, Block: removed}, true
}

// Head returns the chain head.
func (l *BlockList) Head() (model.Block, bool) {
	if len(l.blocks) == 0 {
		return model.Block{}, false
	}
	return l.blocks[len(l.blocks)-1], true
}

// Len returns the number of blocks.
func (l *BlockList) Len() int {
	return len(l.blocks)
}

// At returns the block at the given row.
func (l *BlockList) At(row int) (model.Block, bool) {
	if row < 0 || row >= len(l.blocks) {
		return model.Block{}, false
	}
	return l.blocks[len(l.blocks)-1-row], true
}

// Row returns the row of the block with the given id.
func (l *BlockList) Row(id uint64) (int, bool) {
	pos, ok := l.index[id]
	if !ok {
		return 0, false
	}
	return len(l.blocks) - 1 - pos, true
}

// Blocks returns a copy of the list in row order.
func (l *BlockList) Blocks() []model.Block {
	out := make([]model.Block, len(l.blocks))
	for i, b := range l.blocks {
		out[len(l.blocks)-1-i] = b
	}
	return out
}
