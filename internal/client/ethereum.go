package client

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/ethclient"
)

// EthereumClient is a client for working with Ethereum JSON-RPC
type EthereumClient struct {
	rpcClient *ethclient.Client
	rpcURL    string
	chainID   *big.Int
}

// NewEthereumClient dials rpcURL and reads the chain id once.
func NewEthereumClient(ctx context.Context, rpcURL string) (*EthereumClient, error) {
	rpcClient, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", rpcURL, err)
	}

	chainID, err := rpcClient.ChainID(ctx)
	if err != nil {
		rpcClient.Close()
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}

	return &EthereumClient{
		rpcClient: rpcClient,
		rpcURL:    rpcURL,
		chainID:   chainID,
	}, nil
}

// ChainID returns the chain id reported by the node at dial time
func (c *EthereumClient) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// Backend exposes the underlying ethclient for contract bindings
func (c *EthereumClient) Backend() *ethclient.Client {
	return c.rpcClient
}

// Close closes the RPC connection
func (c *EthereumClient) Close() {
	c.rpcClient.Close()
}

// Connector dials the node on first use and reuses the connection.
// A failed dial is retried on the next call.
type Connector struct {
	rpcURL string

	mu     sync.Mutex
	client *EthereumClient
}

// NewConnector creates a connector for rpcURL without dialing
func NewConnector(rpcURL string) *Connector {
	return &Connector{rpcURL: rpcURL}
}

// Client returns the shared client, dialing if needed
func (c *Connector) Client(ctx context.Context) (*EthereumClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}
	client, err := NewEthereumClient(ctx, c.rpcURL)
	if err != nil {
		return nil, err
	}
	c.client = client
	return client, nil
}

// ChainID returns the chain id of the node
func (c *Connector) ChainID(ctx context.Context) (*big.Int, error) {
	client, err := c.Client(ctx)
	if err != nil {
		return nil, err
	}
	return client.ChainID(), nil
}

// Close closes the connection if one was made
func (c *Connector) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		c.client.Close()
		c.client = nil
	}
}
