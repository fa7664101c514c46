package model

import "time"

// Chain describes a chain known to the node.
type Chain struct {
	ID       int
	Name     string
	Decimals int
}

// TransactionType identifies a transaction type and subtype pair.
type TransactionType struct {
	Type    int
	Subtype int
}

// Catalog holds read-only lookups built from the node constants.
// It is immutable after NewCatalog and safe for concurrent use.
type Catalog struct {
	epochBeginning time.Time
	chains         map[int]Chain
	chainsByName   map[string]Chain
	txTypes        map[TransactionType]string
}

// NewCatalog builds a Catalog. Inputs are copied.
func NewCatalog(epochBeginning time.Time, chains []Chain, txTypes map[TransactionType]string) *Catalog {
	c := &Catalog{
		epochBeginning: epochBeginning.UTC(),
		chains:         make(map[int]Chain, len(chains)),
		chainsByName:   make(map[string]Chain, len(chains)),
		txTypes:        make(map[TransactionType]string, len(txTypes)),
	}
	for _, ch := range chains {
		c.chains[ch.ID] = ch
		c.chainsByName[ch.Name] = ch
	}
	for k, v := range txTypes {
		c.txTypes[k] = v
	}
	return c
}

// EpochBeginning returns the wall time of chain timestamp 0.
func (c *Catalog) EpochBeginning() time.Time {
	return c.epochBeginning
}

// BlockTime converts a chain timestamp to wall time.
func (c *Catalog) BlockTime(timestamp uint32) time.Time {
	return c.epochBeginning.Add(time.Duration(timestamp) * time.Second)
}

// Chain looks up a chain by id.
func (c *Catalog) Chain(id int) (Chain, bool) {
	ch, ok := c.chains[id]
	return ch, ok
}

// ChainByName looks up a chain by name.
func (c *Catalog) ChainByName(name string) (Chain, bool) {
	ch, ok := c.chainsByName[name]
	return ch, ok
}

// TransactionTypeName returns the display name for a type/subtype pair.
func (c *Catalog) TransactionTypeName(txType, subtype int) (string, bool) {
	name, ok := c.txTypes[TransactionType{Type: txType, Subtype: subtype}]
	return name, ok
}
