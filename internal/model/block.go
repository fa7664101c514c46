// Package model defines domain models for the node monitor.
package model

// Block is a block as reported by the node. Values are never mutated after decoding.
type Block struct {
	ID uint64
	// Height is the position of the block in the chain; the genesis block is at height 0.
	Height uint64
	// Timestamp is seconds since the chain epoch, see Catalog.BlockTime.
	Timestamp        uint32
	Version          uint32
	TransactionCount uint32
	GeneratorID      uint64
	GeneratorRS      string
}
