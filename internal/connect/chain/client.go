// Package chain provides read access to an EVM chain over one or more RPC
// endpoints with failover.
package chain

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// RPCClient fans requests out to the first healthy endpoint of a configured
// list. Endpoints that were unreachable at startup are retried on use.
type RPCClient struct {
	urls    []string
	clients []*ethclient.Client
	mu      sync.RWMutex
	current int
}

func NewRPCClient(urls []string) (*RPCClient, error) {
	if len(urls) == 0 {
		return nil, errors.New("at least one RPC URL is required")
	}

	clients := make([]*ethclient.Client, 0, len(urls))
	connected := 0
	for _, url := range urls {
		client, err := ethclient.Dial(url)
		if err != nil {
			log.Warn().
				Str("url", url).
				Err(err).
				Msg("Failed to connect to RPC node, will retry on use")
			clients = append(clients, nil)
			continue
		}
		clients = append(clients, client)
		connected++
	}

	if connected == 0 {
		return nil, errors.New("failed to connect to any RPC node")
	}

	return &RPCClient{
		urls:    urls,
		clients: clients,
		current: 0,
	}, nil
}

// Close closes all endpoint connections.
func (c *RPCClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, client := range c.clients {
		if client != nil {
			client.Close()
		}
	}
}

// ChainID returns the chain id reported by the current endpoint.
func (c *RPCClient) ChainID(ctx context.Context) (*big.Int, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get RPC client")
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get chain ID")
	}

	return chainID, nil
}

// CodeAt returns the contract code at the given address.
func (c *RPCClient) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get RPC client")
	}

	code, err := client.CodeAt(ctx, account, blockNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get code at address")
	}

	return code, nil
}

// CallContract executes a read-only contract call.
func (c *RPCClient) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get RPC client")
	}

	return client.CallContract(ctx, msg, blockNumber)
}

// getClient returns the first endpoint that answers a health check, starting
// at the last known good one.
func (c *RPCClient) getClient(ctx context.Context) (*ethclient.Client, error) {
	c.mu.RLock()
	start := c.current
	clients := c.clients
	c.mu.RUnlock()

	for i := 0; i < len(clients); i++ {
		idx := (start + i) % len(clients)
		client := clients[idx]

		if client == nil {
			reconnected, err := ethclient.Dial(c.urls[idx])
			if err != nil {
				continue
			}

			c.mu.Lock()
			c.clients[idx] = reconnected
			c.mu.Unlock()
			client = reconnected
		}

		if _, err := client.ChainID(ctx); err != nil {
			continue
		}

		if idx != start {
			c.mu.Lock()
			c.current = idx
			c.mu.Unlock()

			log.Info().Str("url", c.urls[idx]).Msg("Switched to RPC endpoint")
		}

		return client, nil
	}

	return nil, errors.New("no healthy RPC endpoint available")
}
