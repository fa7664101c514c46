package model

// ChildBlockType is the transaction type of a child-chain block transaction.
const ChildBlockType = -1

// Transaction is a transaction included in a block.
type Transaction struct {
	FullHash    string
	Chain       int
	Type        int
	Subtype     int
	Height      uint64
	Timestamp   uint32
	SenderRS    string
	RecipientRS string
	AmountNQT   int64
	FeeNQT      int64
	// ChildFullHashes lists child transactions bundled by a child block transaction.
	ChildFullHashes []string
	// ChildChain is the chain of the bundled child transactions.
	ChildChain int
}
