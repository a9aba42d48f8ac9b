package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/pocschain/internal/address"
	"github.com/goodnatureofminers/pocschain/internal/chain"
	"github.com/goodnatureofminers/pocschain/internal/clock"
	"github.com/goodnatureofminers/pocschain/internal/config"
	"github.com/goodnatureofminers/pocschain/internal/contract"
	"github.com/goodnatureofminers/pocschain/internal/crypto"
	"github.com/goodnatureofminers/pocschain/internal/ledger"
	"github.com/goodnatureofminers/pocschain/internal/mempool"
	"github.com/goodnatureofminers/pocschain/internal/metrics"
	"github.com/goodnatureofminers/pocschain/internal/node"
	"github.com/goodnatureofminers/pocschain/internal/pocs"
	"github.com/goodnatureofminers/pocschain/internal/registry"
	"github.com/goodnatureofminers/pocschain/internal/repository/clickhouse"
	"github.com/goodnatureofminers/pocschain/internal/storage/leveldb"
	"github.com/goodnatureofminers/pocschain/internal/transport"
	"github.com/goodnatureofminers/pocschain/internal/txvalidation"
	"github.com/goodnatureofminers/pocschain/pkg/batcher"
)

const (
	contractMaxOps      = 1024
	healthCheckInterval = 2 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	cfg, err := config.Parse(os.Args)
	if err != nil {
		if config.IsHelp(err) {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}
	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Node stopped", zap.Error(err))
	}
	logger.Info("Node stopped")
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	consensus := cfg.Consensus
	codec := address.NewCodec(address.DefaultHRP)

	signer, err := cfg.Node.Signer()
	if err != nil {
		return err
	}
	verifier, err := crypto.NewVerifier(crypto.Scheme(cfg.Node.SignatureScheme))
	if err != nil {
		return err
	}
	genesis, err := cfg.Node.Genesis(codec)
	if err != nil {
		return err
	}

	store, err := leveldb.Open(cfg.Node.DataDir, metrics.NewStorage())
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close store", zap.Error(err))
		}
	}()

	reg, err := registry.New(consensus.RegistryParams(), logger)
	if err != nil {
		return err
	}
	scorer, err := pocs.NewScorer(consensus.ScorerWeights(), consensus.ContributionCap)
	if err != nil {
		return err
	}
	validator := txvalidation.New(verifier, reg, consensus.MinStakeAmount)
	led := ledger.New(contract.NewKVExecutor(contractMaxOps))
	c, err := chain.New(
		consensus.ChainParams(cfg.Node.SignatureWorkers),
		led,
		reg,
		pocs.NewSelector(scorer),
		validator,
		verifier,
		store,
		metrics.NewChain(),
		logger,
	)
	if err != nil {
		return err
	}
	if err := c.Open(ctx, genesis); err != nil {
		return err
	}

	broadcaster := transport.NewBroadcaster(0, metrics.NewGossip(), logger)
	defer func() {
		if err := broadcaster.Close(); err != nil {
			logger.Error("Failed to close peer connections", zap.Error(err))
		}
	}()
	for _, peer := range cfg.Node.Peers {
		if err := broadcaster.Dial(peer,
			grpc.WithUnaryInterceptor(grpcPrometheus.UnaryClientInterceptor),
		); err != nil {
			return err
		}
	}

	deps := node.Deps{
		Chain:       c,
		Ledger:      led,
		Registry:    reg,
		Pool:        mempool.New(consensus.MempoolCapacity, consensus.MempoolMaxRetries),
		Validator:   validator,
		Verifier:    verifier,
		Signer:      signer,
		Broadcaster: broadcaster,
		Clock:       clock.System{},
		Metrics:     metrics.NewNode(),
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.Node.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.Node.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return err
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Error("Failed to close clickhouse", zap.Error(err))
			}
		}()
		every, err := cfg.Node.ExportEvery()
		if err != nil {
			return err
		}
		exporter := node.NewBlockExporter(repo, batcher.Config{Size: cfg.Node.ExportBatchSize, Interval: every}, logger)
		exporter.Start(ctx)
		defer exporter.Stop()
		if _, err := exporter.Backfill(ctx, c); err != nil {
			return err
		}
		deps.Exporter = exporter
	}

	n, err := node.New(consensus.BlockTime(), deps, logger)
	if err != nil {
		return err
	}
	logger.Info("Node ready",
		zap.Stringer("role", n),
		zap.Uint64("height", c.Height()),
		zap.Stringer("tip", c.Tip().Hash))

	grpcServer := newGRPCServer(logger)
	transport.RegisterGossipServer(grpcServer, transport.NewGossipHandler(n, cfg.Node.GossipRPS, logger))
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.Register(grpcServer)
	monitor := transport.NewHealthMonitor(healthServer, c.Halted, healthCheckInterval, logger)

	rest, err := transport.NewRESTMux(n, n, codec, logger)
	if err != nil {
		return err
	}
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())

	return runAll(ctx, cancel,
		func() error { return n.Run(ctx) },
		func() error {
			if err := monitor.Run(ctx); !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
		func() error { return serveGRPC(ctx, grpcServer, cfg.Node.GRPCAddr, logger) },
		func() error { return serveHTTP(ctx, cors.Default().Handler(rest), cfg.Node.RESTAddr, logger) },
		func() error { return serveHTTP(ctx, metricsMux, cfg.Node.MetricsAddr, logger) },
	)
}

// runAll runs every task and cancels the rest when one fails. It returns
// the first error.
func runAll(ctx context.Context, cancel context.CancelFunc, tasks ...func() error) error {
	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	for _, task := range tasks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := task(); err != nil && ctx.Err() == nil {
				once.Do(func() {
					firstErr = err
					cancel()
				})
			}
		}()
	}
	wg.Wait()
	return firstErr
}

func newGRPCServer(logger *zap.Logger) *grpc.Server {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcPrometheus.EnableHandlingTimeHistogram()
	return grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
}

func serveGRPC(ctx context.Context, srv *grpc.Server, addr string, logger *zap.Logger) error {
	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		srv.GracefulStop()
	}()
	logger.Info("Starting gRPC server", zap.String("addr", addr))
	return srv.Serve(socket)
}

func serveHTTP(ctx context.Context, handler http.Handler, addr string, logger *zap.Logger) error {
	s := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server", zap.String("addr", addr))
		if err := s.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()
	logger.Info("Starting HTTP server", zap.String("addr", addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
