package transport

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/goodnatureofminers/pocschain/internal/model"
)

const defaultBroadcastTimeout = 5 * time.Second

type peer struct {
	addr   string
	client GossipClient
	conn   *grpc.ClientConn
}

// Broadcaster fans blocks and transactions out to the configured peers.
// There is no discovery and no retry; failures are logged.
type Broadcaster struct {
	mu      sync.RWMutex
	peers   []peer
	timeout time.Duration
	metrics Metrics
	logger  *zap.Logger
}

// NewBroadcaster returns a broadcaster without peers.
func NewBroadcaster(timeout time.Duration, metrics Metrics, logger *zap.Logger) *Broadcaster {
	if timeout <= 0 {
		timeout = defaultBroadcastTimeout
	}
	return &Broadcaster{timeout: timeout, metrics: metrics, logger: logger.Named("broadcaster")}
}

// Dial opens a lazy connection to addr and adds it as a peer.
func (b *Broadcaster) Dial(addr string, opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return fmt.Errorf("dial peer %s: %w", addr, err)
	}
	b.add(peer{addr: addr, client: NewGossipClient(conn), conn: conn})
	return nil
}

// AddPeer adds an already connected client.
func (b *Broadcaster) AddPeer(addr string, client GossipClient) {
	b.add(peer{addr: addr, client: client})
}

func (b *Broadcaster) add(p peer) {
	b.mu.Lock()
	b.peers = append(b.peers, p)
	b.mu.Unlock()
	b.logger.Info("peer added", zap.String("peer", p.addr))
}

// Peers returns the peer addresses.
func (b *Broadcaster) Peers() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, len(b.peers))
	for i, p := range b.peers {
		out[i] = p.addr
	}
	return out
}

// BroadcastBlock sends b to every peer and returns how many accepted it.
func (b *Broadcaster) BroadcastBlock(ctx context.Context, blk model.Block) int {
	req := &SubmitBlockRequest{Block: blk}
	return b.fanOut(ctx, "SubmitBlock", func(ctx context.Context, c GossipClient) (*SubmitResponse, error) {
		return c.SubmitBlock(ctx, req)
	})
}

// BroadcastTransaction sends tx to every peer and returns how many accepted it.
func (b *Broadcaster) BroadcastTransaction(ctx context.Context, tx model.Transaction) int {
	req := &SubmitTransactionRequest{Transaction: tx}
	return b.fanOut(ctx, "SubmitTransaction", func(ctx context.Context, c GossipClient) (*SubmitResponse, error) {
		return c.SubmitTransaction(ctx, req)
	})
}

func (b *Broadcaster) fanOut(ctx context.Context, method string, call func(context.Context, GossipClient) (*SubmitResponse, error)) int {
	b.mu.RLock()
	peers := append([]peer(nil), b.peers...)
	b.mu.RUnlock()

	var (
		wg       sync.WaitGroup
		accepted atomic.Int64
	)
	for _, p := range peers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			started := time.Now()
			callCtx, cancel := context.WithTimeout(ctx, b.timeout)
			defer cancel()

			resp, err := call(callCtx, p.client)
			if err == nil && !resp.Accepted {
				err = fmt.Errorf("refused (%s): %s", resp.Class, resp.Reason)
			}
			if b.metrics != nil {
				b.metrics.Observe(method, err, started)
			}
			if err != nil {
				b.logger.Warn("broadcast failed", zap.String("peer", p.addr), zap.String("method", method), zap.Error(err))
				return
			}
			accepted.Add(1)
		}()
	}
	wg.Wait()
	return int(accepted.Load())
}

// Close closes every dialed connection.
func (b *Broadcaster) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	var errs []error
	for _, p := range b.peers {
		if p.conn != nil {
			errs = append(errs, p.conn.Close())
		}
	}
	b.peers = nil
	return errors.Join(errs...)
}
