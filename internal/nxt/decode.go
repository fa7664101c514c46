package nxt

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/ben-haim/Nxt2Monitor/internal/model"
	"github.com/ben-haim/Nxt2Monitor/pkg/safe"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// flexString accepts either a JSON string or a JSON number.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n jsoniter.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}

// flexInt accepts an integer encoded as a JSON number or a JSON string.
type flexInt int64

func (i *flexInt) UnmarshalJSON(b []byte) error {
	var s flexString
	if err := s.UnmarshalJSON(b); err != nil {
		return err
	}
	if s == "" {
		*i = 0
		return nil
	}
	v, err := strconv.ParseInt(string(s), 10, 64)
	if err != nil {
		return err
	}
	*i = flexInt(v)
	return nil
}

type blockJSON struct {
	Block                string `json:"block"`
	Height               int64  `json:"height"`
	Timestamp            int64  `json:"timestamp"`
	Version              int64  `json:"version"`
	NumberOfTransactions int64  `json:"numberOfTransactions"`
	Generator            string `json:"generator"`
	GeneratorRS          string `json:"generatorRS"`
}

func (b blockJSON) model() (model.Block, error) {
	id, err := model.ParseID(b.Block)
	if err != nil {
		return model.Block{}, err
	}
	height, err := safe.Uint64(b.Height)
	if err != nil {
		return model.Block{}, fmt.Errorf("block %s height: %w", b.Block, err)
	}
	timestamp, err := safe.Uint32(b.Timestamp)
	if err != nil {
		return model.Block{}, fmt.Errorf("block %s timestamp: %w", b.Block, err)
	}
	version, err := safe.Uint32(b.Version)
	if err != nil {
		return model.Block{}, fmt.Errorf("block %s version: %w", b.Block, err)
	}
	txCount, err := safe.Uint32(b.NumberOfTransactions)
	if err != nil {
		return model.Block{}, fmt.Errorf("block %s transaction count: %w", b.Block, err)
	}
	generator, err := model.ParseID(b.Generator)
	if err != nil {
		return model.Block{}, err
	}
	return model.Block{
		ID:               id,
		Height:           height,
		Timestamp:        timestamp,
		Version:          version,
		TransactionCount: txCount,
		GeneratorID:      generator,
		GeneratorRS:      b.GeneratorRS,
	}, nil
}

type peerJSON struct {
	Address          string   `json:"address"`
	AnnouncedAddress string   `json:"announcedAddress"`
	Application      string   `json:"application"`
	Version          string   `json:"version"`
	Platform         string   `json:"platform"`
	Services         []string `json:"services"`
	State            int64    `json:"state"`
	Blacklisted      bool     `json:"blacklisted"`
}

func (p peerJSON) model() model.Peer {
	return model.Peer{
		Address:          p.Address,
		AnnouncedAddress: p.AnnouncedAddress,
		Application:      p.Application,
		Version:          p.Version,
		Platform:         p.Platform,
		Services:         p.Services,
		State:            model.PeerStateFromCode(p.State),
		Blacklisted:      p.Blacklisted,
	}
}

type constantsJSON struct {
	EpochBeginning  int64 `json:"epochBeginning"`
	ChainProperties map[string]struct {
		Name     string `json:"name"`
		Decimals int    `json:"decimals"`
	} `json:"chainProperties"`
	Chains           map[string]int `json:"chains"`
	TransactionTypes map[string]struct {
		Subtypes map[string]struct {
			Name string `json:"name"`
		} `json:"subtypes"`
	} `json:"transactionTypes"`
}

// epochTime converts the epochBeginning constant, in milliseconds since the Unix epoch.
func epochTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// defaultDecimals is used for chains whose properties are not reported.
const defaultDecimals = 8

func (c constantsJSON) catalog() (*model.Catalog, error) {
	chains := make([]model.Chain, 0, len(c.Chains)+len(c.ChainProperties))
	seen := make(map[int]bool)
	for key, props := range c.ChainProperties {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("chain id %q: %w", key, err)
		}
		chains = append(chains, model.Chain{ID: id, Name: props.Name, Decimals: props.Decimals})
		seen[id] = true
	}
	for name, id := range c.Chains {
		if seen[id] {
			continue
		}
		chains = append(chains, model.Chain{ID: id, Name: name, Decimals: defaultDecimals})
	}

	types := make(map[model.TransactionType]string)
	for typeKey, t := range c.TransactionTypes {
		txType, err := strconv.Atoi(typeKey)
		if err != nil {
			return nil, fmt.Errorf("transaction type %q: %w", typeKey, err)
		}
		for subKey, sub := range t.Subtypes {
			subtype, err := strconv.Atoi(subKey)
			if err != nil {
				return nil, fmt.Errorf("transaction subtype %q: %w", subKey, err)
			}
			types[model.TransactionType{Type: txType, Subtype: subtype}] = sub.Name
		}
	}

	return model.NewCatalog(epochTime(c.EpochBeginning), chains, types), nil
}

type transactionJSON struct {
	FullHash    string          `json:"fullHash"`
	Chain       int             `json:"chain"`
	Type        int             `json:"type"`
	Subtype     int             `json:"subtype"`
	Height      int64           `json:"height"`
	Timestamp   int64           `json:"timestamp"`
	SenderRS    string          `json:"senderRS"`
	RecipientRS string          `json:"recipientRS"`
	AmountNQT   flexInt         `json:"amountNQT"`
	FeeNQT      flexInt         `json:"feeNQT"`
	Attachment  jsoniter.RawMessage `json:"attachment"`
}

type childBlockAttachment struct {
	Chain                      int      `json:"chain"`
	ChildTransactionFullHashes []string `json:"childTransactionFullHashes"`
}

func (t transactionJSON) model() (model.Transaction, error) {
	timestamp, err := safe.Uint32(t.Timestamp)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("transaction %s timestamp: %w", t.FullHash, err)
	}
	// Unconfirmed transactions carry no height.
	var height uint64
	if t.Height > 0 {
		height = uint64(t.Height)
	}
	tx := model.Transaction{
		FullHash:    t.FullHash,
		Chain:       t.Chain,
		Type:        t.Type,
		Subtype:     t.Subtype,
		Height:      height,
		Timestamp:   timestamp,
		SenderRS:    t.SenderRS,
		RecipientRS: t.RecipientRS,
		AmountNQT:   int64(t.AmountNQT),
		FeeNQT:      int64(t.FeeNQT),
	}
	if t.Type == model.ChildBlockType && len(t.Attachment) > 0 {
		var att childBlockAttachment
		if err := json.Unmarshal(t.Attachment, &att); err != nil {
			return model.Transaction{}, fmt.Errorf("transaction %s attachment: %w", t.FullHash, err)
		}
		tx.ChildChain = att.Chain
		tx.ChildFullHashes = att.ChildTransactionFullHashes
	}
	return tx, nil
}

type eventJSON struct {
	Name string   `json:"name"`
	IDs  []string `json:"ids"`
}
