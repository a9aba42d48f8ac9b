// Package config is the command-line and environment surface of the node.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/goodnatureofminers/pocschain/internal/address"
	"github.com/goodnatureofminers/pocschain/internal/chain"
	"github.com/goodnatureofminers/pocschain/internal/crypto"
	"github.com/goodnatureofminers/pocschain/internal/model"
	"github.com/goodnatureofminers/pocschain/internal/pocs"
	"github.com/goodnatureofminers/pocschain/internal/registry"
)

const weightTolerance = 1e-9

type Weights struct {
	Stake        float64 `long:"stake" env:"STAKE" description:"stake sub-score weight" default:"0.30"`
	Reliability  float64 `long:"reliability" env:"RELIABILITY" description:"reliability sub-score weight" default:"0.20"`
	Reputation   float64 `long:"reputation" env:"REPUTATION" description:"reputation sub-score weight" default:"0.20"`
	Diversity    float64 `long:"diversity" env:"DIVERSITY" description:"diversity sub-score weight" default:"0.10"`
	Contribution float64 `long:"contribution" env:"CONTRIBUTION" description:"contribution sub-score weight" default:"0.20"`
}

type Thresholds struct {
	Probation  uint64 `long:"probation" env:"PROBATION" description:"penalty level entering probation" default:"30"`
	Suspension uint64 `long:"suspension" env:"SUSPENSION" description:"penalty level entering suspension" default:"70"`
}

// Consensus options must match on every node of a network.
type Consensus struct {
	BlockTimeSeconds        uint       `long:"block-time-seconds" env:"POCS_BLOCK_TIME_SECONDS" description:"target block interval" default:"5"`
	MaxTransactionsPerBlock int        `long:"max-transactions-per-block" env:"POCS_MAX_TRANSACTIONS_PER_BLOCK" description:"block size limit" default:"100"`
	MinStakeAmount          uint64     `long:"min-stake-amount" env:"POCS_MIN_STAKE_AMOUNT" description:"minimum stake of a validator" default:"10"`
	Weights                 Weights    `group:"PoCS weights" namespace:"pocs-weight" env-namespace:"POCS_WEIGHT"`
	PenaltyThresholds       Thresholds `group:"Penalty thresholds" namespace:"penalty-threshold" env-namespace:"POCS_PENALTY_THRESHOLD"`
	PenaltyDecayRate        uint64     `long:"penalty-decay-rate" env:"POCS_PENALTY_DECAY_RATE" description:"penalty decay per fulfilled duty" default:"5"`
	BlockReward             uint64     `long:"block-reward" env:"POCS_BLOCK_REWARD" description:"coins issued to each producer" default:"100"`
	MempoolCapacity         int        `long:"mempool-capacity" env:"POCS_MEMPOOL_CAPACITY" description:"pending transaction limit" default:"10000"`
	MempoolMaxRetries       int        `long:"mempool-max-retries" env:"POCS_MEMPOOL_MAX_RETRIES" description:"assembly deferrals before a transaction expires" default:"3"`
	SingleEventThreshold    uint64     `long:"single-event-threshold" env:"POCS_SINGLE_EVENT_THRESHOLD" description:"offence severity suspending at once" default:"25"`
	ActiveLowWater          uint64     `long:"active-low-water" env:"POCS_ACTIVE_LOW_WATER" description:"penalty level returning to active" default:"10"`
	ReputationAlpha         float64    `long:"reputation-alpha" env:"POCS_REPUTATION_ALPHA" description:"peer rating smoothing factor" default:"0.3"`
	ContributionCap         uint64     `long:"contribution-cap" env:"POCS_CONTRIBUTION_CAP" description:"credits counted by the contribution sub-score" default:"1000"`
	CreditToStakeRatio      float64    `long:"credit-to-stake-ratio" env:"POCS_CREDIT_TO_STAKE_RATIO" description:"stake bonded per redeemed credit" default:"0.1"`
	ClaimCooldownBlocks     uint64     `long:"claim-cooldown" env:"POCS_CLAIM_COOLDOWN" description:"blocks between two credit claims of one activity" default:"100"`
	RatingCooldownBlocks    uint64     `long:"rating-cooldown" env:"POCS_RATING_COOLDOWN" description:"blocks between two ratings of one peer by one reviewer" default:"20"`
	MaxMissedDuties         uint64     `long:"max-missed-duties" env:"POCS_MAX_MISSED_DUTIES" description:"empty slots charged as downtime per block" default:"8"`
}

// Node options are local to one process.
type Node struct {
	DataDir          string   `long:"data-dir" env:"POCS_DATA_DIR" description:"leveldb directory" default:"data"`
	GRPCAddr         string   `long:"grpc-addr" env:"POCS_GRPC_ADDR" description:"gossip listen address" default:":9000"`
	RESTAddr         string   `long:"rest-addr" env:"POCS_REST_ADDR" description:"REST listen address" default:":8000"`
	MetricsAddr      string   `long:"metrics-addr" env:"POCS_METRICS_ADDR" description:"metrics listen address" default:":9100"`
	Peers            []string `long:"peer" env:"POCS_PEERS" env-delim:"," description:"gossip peer address (repeatable)"`
	KeyFile          string   `long:"key-file" env:"POCS_KEY_FILE" description:"hex private key seed; empty runs a follower"`
	SignatureScheme  string   `long:"signature-scheme" env:"POCS_SIGNATURE_SCHEME" description:"signature scheme" choice:"schnorr" choice:"ed25519" default:"schnorr"`
	ClickhouseDSN    string   `long:"clickhouse-dsn" env:"POCS_CLICKHOUSE_DSN" description:"explorer export database; empty disables export"`
	GenesisAccounts  []string `long:"genesis-account" env:"POCS_GENESIS_ACCOUNTS" env-delim:"," description:"address=balance[:stake] (repeatable)"`
	GossipRPS        int      `long:"gossip-rps" env:"POCS_GOSSIP_RPS" description:"inbound gossip requests per second; 0 is unlimited" default:"100"`
	SignatureWorkers int      `long:"signature-workers" env:"POCS_SIGNATURE_WORKERS" description:"parallel signature checks per block" default:"4"`
	ExportBatchSize  int      `long:"export-batch-size" env:"POCS_EXPORT_BATCH_SIZE" description:"blocks per ClickHouse write" default:"100"`
	ExportInterval   string   `long:"export-interval" env:"POCS_EXPORT_INTERVAL" description:"ClickHouse flush interval" default:"1s"`
}

type Config struct {
	Consensus Consensus `group:"Consensus Options"`
	Node      Node      `group:"Node Options"`
}

// Parse reads args and the environment. A help request returns an error
// matching flags.ErrHelp.
func Parse(args []string) (Config, error) {
	var cfg Config
	if _, err := flags.ParseArgs(&cfg, args); err != nil {
		return Config{}, err
	}
	if err := cfg.Consensus.Validate(); err != nil {
		return Config{}, err
	}
	if err := cfg.Node.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsHelp reports whether err is a help request.
func IsHelp(err error) bool {
	var ferr *flags.Error
	return errors.As(err, &ferr) && ferr.Type == flags.ErrHelp
}

// Validate enforces weight normalization, threshold order and positive
// limits.
func (c Consensus) Validate() error {
	if c.BlockTimeSeconds == 0 {
		return errors.New("block time must be positive")
	}
	if c.MaxTransactionsPerBlock <= 0 {
		return fmt.Errorf("max transactions per block %d must be positive", c.MaxTransactionsPerBlock)
	}
	if c.MempoolCapacity <= 0 {
		return fmt.Errorf("mempool capacity %d must be positive", c.MempoolCapacity)
	}
	if c.MempoolMaxRetries < 0 {
		return fmt.Errorf("mempool max retries %d must not be negative", c.MempoolMaxRetries)
	}
	if c.ContributionCap == 0 {
		return errors.New("contribution cap must be positive")
	}
	w := c.Weights
	if sum := w.Stake + w.Reliability + w.Reputation + w.Diversity + w.Contribution; math.Abs(sum-1) > weightTolerance {
		return fmt.Errorf("pocs weights sum to %v, want 1", sum)
	}
	if err := c.ScorerWeights().Validate(); err != nil {
		return err
	}
	return c.RegistryParams().Validate()
}

func (c Consensus) BlockTime() time.Duration {
	return time.Duration(c.BlockTimeSeconds) * time.Second
}

func (c Consensus) ScorerWeights() pocs.Weights {
	return pocs.Weights{
		Stake:        c.Weights.Stake,
		Reliability:  c.Weights.Reliability,
		Reputation:   c.Weights.Reputation,
		Diversity:    c.Weights.Diversity,
		Contribution: c.Weights.Contribution,
	}
}

func (c Consensus) RegistryParams() registry.Params {
	p := registry.DefaultParams()
	p.ProbationThreshold = c.PenaltyThresholds.Probation
	p.SuspensionThreshold = c.PenaltyThresholds.Suspension
	p.SingleEventThreshold = c.SingleEventThreshold
	p.LowWater = c.ActiveLowWater
	p.DecayRate = c.PenaltyDecayRate
	p.ReputationAlpha = c.ReputationAlpha
	p.CreditToStakeRatio = c.CreditToStakeRatio
	p.MinStake = c.MinStakeAmount
	p.ClaimCooldown = c.ClaimCooldownBlocks
	p.RatingCooldown = c.RatingCooldownBlocks
	return p
}

func (c Consensus) ChainParams(signatureWorkers int) chain.Params {
	return chain.Params{
		MaxTransactions:  c.MaxTransactionsPerBlock,
		BlockReward:      c.BlockReward,
		SignatureWorkers: signatureWorkers,
		BlockTime:        c.BlockTime(),
		MaxMissedDuties:  c.MaxMissedDuties,
	}
}

func (n Node) Validate() error {
	if n.DataDir == "" {
		return errors.New("data dir is required")
	}
	if n.GossipRPS < 0 {
		return fmt.Errorf("gossip rps %d must not be negative", n.GossipRPS)
	}
	if _, err := n.ExportEvery(); err != nil {
		return err
	}
	return nil
}

// ExportEvery parses the export flush interval.
func (n Node) ExportEvery() (time.Duration, error) {
	d, err := time.ParseDuration(n.ExportInterval)
	if err != nil {
		return 0, fmt.Errorf("export interval %q: %w", n.ExportInterval, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("export interval %s must be positive", d)
	}
	return d, nil
}

// Signer loads the key file. It returns nil without a key file.
func (n Node) Signer() (crypto.Signer, error) {
	if n.KeyFile == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(n.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}
	seed, err := ParseSeed(string(raw))
	if err != nil {
		return nil, fmt.Errorf("key file %s: %w", n.KeyFile, err)
	}
	return crypto.NewSigner(crypto.Scheme(n.SignatureScheme), seed)
}

// ParseSeed decodes a hex private key seed.
func ParseSeed(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if len(s) != 2*crypto.SeedSize {
		return nil, fmt.Errorf("seed has %d hex digits, want %d", len(s), 2*crypto.SeedSize)
	}
	seed, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return seed, nil
}

// Genesis builds block 0's allocations from the genesis accounts.
func (n Node) Genesis(codec address.Codec) (chain.Genesis, error) {
	g := chain.Genesis{Timestamp: chain.DefaultGenesisTimestamp}
	seen := make(map[model.Address]struct{}, len(n.GenesisAccounts))
	for _, raw := range n.GenesisAccounts {
		alloc, err := ParseAllocation(codec, raw)
		if err != nil {
			return chain.Genesis{}, err
		}
		if _, dup := seen[alloc.Address]; dup {
			return chain.Genesis{}, fmt.Errorf("genesis account %s listed twice", alloc.Address)
		}
		seen[alloc.Address] = struct{}{}
		g.Allocations = append(g.Allocations, alloc)
	}
	return g, nil
}

// ParseAllocation reads address=balance[:stake]. The address may be bech32
// or hex.
func ParseAllocation(codec address.Codec, raw string) (chain.Allocation, error) {
	addrPart, amounts, ok := strings.Cut(raw, "=")
	if !ok {
		return chain.Allocation{}, fmt.Errorf("genesis account %q: want address=balance[:stake]", raw)
	}
	addr, err := codec.Decode(addrPart)
	if err != nil {
		if addr, err = model.AddressFromHex(addrPart); err != nil {
			return chain.Allocation{}, fmt.Errorf("genesis account %q: bad address", raw)
		}
	}
	balancePart, stakePart, hasStake := strings.Cut(amounts, ":")
	alloc := chain.Allocation{Address: addr}
	if alloc.Balance, err = strconv.ParseUint(balancePart, 10, 64); err != nil {
		return chain.Allocation{}, fmt.Errorf("genesis account %q balance: %w", raw, err)
	}
	if hasStake {
		if alloc.Stake, err = strconv.ParseUint(stakePart, 10, 64); err != nil {
			return chain.Allocation{}, fmt.Errorf("genesis account %q stake: %w", raw, err)
		}
	}
	return alloc, nil
}
