package nxt

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/ben-haim/Nxt2Monitor/internal/model"
	"github.com/ben-haim/Nxt2Monitor/pkg/workerpool"
	"go.uber.org/zap"
)

// childFetchWorkers bounds concurrent getTransaction calls when expanding a child block.
const childFetchWorkers = 4

// GetConstants fetches the node constants and builds the catalog.
func (c *Client) GetConstants(ctx context.Context) (*model.Catalog, error) {
	var resp constantsJSON
	if err := c.call(ctx, "getConstants", nil, 0, &resp); err != nil {
		return nil, err
	}
	catalog, err := resp.catalog()
	if err != nil {
		return nil, &ParseError{Op: "getConstants", Err: err}
	}
	return catalog, nil
}

// GetBlocks fetches blocks by index from the chain head, inclusive. Index 0 is the head.
func (c *Client) GetBlocks(ctx context.Context, firstIndex, lastIndex int) ([]model.Block, error) {
	params := url.Values{}
	params.Set("firstIndex", strconv.Itoa(firstIndex))
	params.Set("lastIndex", strconv.Itoa(lastIndex))
	params.Set("includeTransactions", "false")

	var resp struct {
		Blocks []blockJSON `json:"blocks"`
	}
	if err := c.call(ctx, "getBlocks", params, 0, &resp); err != nil {
		return nil, err
	}

	blocks := make([]model.Block, 0, len(resp.Blocks))
	for _, b := range resp.Blocks {
		block, err := b.model()
		if err != nil {
			return nil, &ParseError{Op: "getBlocks", Err: err}
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

// GetBlock fetches a single block without its transactions.
func (c *Client) GetBlock(ctx context.Context, blockID string) (model.Block, error) {
	params := url.Values{}
	params.Set("block", blockID)
	params.Set("includeTransactions", "false")

	var resp blockJSON
	if err := c.fetch(ctx, "getBlock", params, &resp); err != nil {
		return model.Block{}, err
	}
	block, err := resp.model()
	if err != nil {
		return model.Block{}, &ParseError{Op: "getBlock", Err: err}
	}
	return block, nil
}

// GetPeers fetches the peers in the given state with full peer records.
func (c *Client) GetPeers(ctx context.Context, state model.PeerState) ([]model.Peer, error) {
	params := url.Values{}
	params.Set("state", state.APIName())
	params.Set("includePeerInfo", "true")

	var resp struct {
		Peers []peerJSON `json:"peers"`
	}
	if err := c.call(ctx, "getPeers", params, 0, &resp); err != nil {
		return nil, err
	}

	peers := make([]model.Peer, 0, len(resp.Peers))
	for _, p := range resp.Peers {
		peers = append(peers, p.model())
	}
	return peers, nil
}

// GetPeer fetches a single peer by network address.
func (c *Client) GetPeer(ctx context.Context, address string) (model.Peer, error) {
	params := url.Values{}
	params.Set("peer", address)

	var resp peerJSON
	if err := c.fetch(ctx, "getPeer", params, &resp); err != nil {
		return model.Peer{}, err
	}
	return resp.model(), nil
}

// EventRegister creates or modifies an event listener. An empty token creates a new listener.
// It returns the listener token.
func (c *Client) EventRegister(ctx context.Context, events []string, token string, add, remove bool) (string, error) {
	params := url.Values{}
	for _, e := range events {
		params.Add("event", e)
	}
	if token != "" {
		params.Set("token", token)
	}
	if add {
		params.Set("add", "true")
	}
	if remove {
		params.Set("remove", "true")
	}

	var resp struct {
		Registered bool       `json:"registered"`
		Token      flexString `json:"token"`
	}
	if err := c.call(ctx, "eventRegister", params, 0, &resp); err != nil {
		return "", err
	}
	if !resp.Registered && !remove {
		return "", &TransportError{Op: "eventRegister", Message: "listener not registered"}
	}
	if resp.Token == "" {
		return token, nil
	}
	return string(resp.Token), nil
}

// EventWait blocks on the node for up to timeoutSeconds and returns the events that fired.
// The HTTP deadline is the wait timeout plus a grace period.
func (c *Client) EventWait(ctx context.Context, token string, timeoutSeconds int) ([]model.Event, error) {
	params := url.Values{}
	params.Set("token", token)
	params.Set("timeout", strconv.Itoa(timeoutSeconds))

	var resp struct {
		Events []eventJSON `json:"events"`
	}
	deadline := time.Duration(timeoutSeconds)*time.Second + waitGrace
	if err := c.call(ctx, "eventWait", params, deadline, &resp); err != nil {
		return nil, err
	}

	events := make([]model.Event, 0, len(resp.Events))
	for _, e := range resp.Events {
		events = append(events, model.Event{Name: e.Name, IDs: e.IDs})
	}
	return events, nil
}

// BlacklistPeer blacklists a peer. It requires the admin password.
func (c *Client) BlacklistPeer(ctx context.Context, address string) error {
	params := c.adminParams()
	params.Set("peer", address)

	var resp struct {
		Done bool `json:"done"`
	}
	if err := c.call(ctx, "blacklistPeer", params, 0, &resp); err != nil {
		return err
	}
	if !resp.Done {
		return &TransportError{Op: "blacklistPeer", Message: fmt.Sprintf("peer %s not blacklisted", address)}
	}
	return nil
}

// AddPeer adds a peer and connects to it. It requires the admin password.
func (c *Client) AddPeer(ctx context.Context, address string) (model.Peer, error) {
	params := c.adminParams()
	params.Set("peer", address)

	var resp peerJSON
	if err := c.call(ctx, "addPeer", params, 0, &resp); err != nil {
		return model.Peer{}, err
	}
	return resp.model(), nil
}

// GetTransaction fetches a transaction by full hash on the given chain.
func (c *Client) GetTransaction(ctx context.Context, fullHash string, chain int) (model.Transaction, error) {
	params := url.Values{}
	params.Set("fullHash", fullHash)
	params.Set("chain", strconv.Itoa(chain))

	var resp transactionJSON
	if err := c.fetch(ctx, "getTransaction", params, &resp); err != nil {
		return model.Transaction{}, err
	}
	tx, err := resp.model()
	if err != nil {
		return model.Transaction{}, &ParseError{Op: "getTransaction", Err: err}
	}
	return tx, nil
}

// BlockTransactions returns the transactions of a block. Each child block transaction
// is followed by the child transactions it bundles.
func (c *Client) BlockTransactions(ctx context.Context, blockID string) ([]model.Transaction, error) {
	params := url.Values{}
	params.Set("block", blockID)
	params.Set("includeTransactions", "true")

	var resp struct {
		Transactions []transactionJSON `json:"transactions"`
	}
	if err := c.call(ctx, "getBlock", params, 0, &resp); err != nil {
		return nil, err
	}

	var txs []model.Transaction
	for _, raw := range resp.Transactions {
		tx, err := raw.model()
		if err != nil {
			return nil, &ParseError{Op: "getBlock", Err: err}
		}
		txs = append(txs, tx)
		if tx.Type != model.ChildBlockType || len(tx.ChildFullHashes) == 0 {
			continue
		}

		children, err := workerpool.Map(ctx, childFetchWorkers, tx.ChildFullHashes,
			func(ctx context.Context, fullHash string) (model.Transaction, error) {
				return c.GetTransaction(ctx, fullHash, tx.ChildChain)
			})
		if err != nil {
			return nil, fmt.Errorf("fetch child transactions of %s: %w", tx.FullHash, err)
		}
		c.logger.Debug("expanded child block",
			zap.String("fullHash", tx.FullHash),
			zap.Int("chain", tx.ChildChain),
			zap.Int("children", len(children)))
		txs = append(txs, children...)
	}
	return txs, nil
}

func (c *Client) adminParams() url.Values {
	params := url.Values{}
	if c.adminPassword != "" {
		params.Set("adminPassword", c.adminPassword)
	}
	return params
}
