package model

import (
	"errors"
	"fmt"
)

// Class is the recovery category of an error.
type Class uint8

const (
	ClassUnknown Class = iota
	// ClassRejection: a transaction failed validation. No state changed.
	ClassRejection
	// ClassBatchFailure: one transaction of an assembly batch failed and was skipped.
	ClassBatchFailure
	// ClassConsensusViolation: a received block failed append validation and was discarded.
	ClassConsensusViolation
	// ClassIntegrityFatal: stored chain data no longer matches its hashes. Writes halt.
	ClassIntegrityFatal
)

func (c Class) String() string {
	switch c {
	case ClassRejection:
		return "rejection"
	case ClassBatchFailure:
		return "batch_failure"
	case ClassConsensusViolation:
		return "consensus_violation"
	case ClassIntegrityFatal:
		return "integrity_fatal"
	default:
		return "unknown"
	}
}

var (
	ErrInsufficientBalance     = errors.New("insufficient balance")
	ErrNonceMismatch           = errors.New("nonce mismatch")
	ErrUnknownAccount          = errors.New("unknown account")
	ErrContractExecutionFailed = errors.New("contract execution failed")
	ErrInvalidSignature        = errors.New("invalid signature")
	ErrBelowMinimumStake       = errors.New("stake below minimum")
	ErrInsufficientStake       = errors.New("insufficient stake")
	ErrInvalidGas              = errors.New("invalid gas parameters")
	ErrMalformedTransaction    = errors.New("malformed transaction")
	ErrHashMismatch            = errors.New("hash mismatch")
	ErrDuplicateTransaction    = errors.New("duplicate transaction")
	ErrMempoolFull             = errors.New("mempool full")
	ErrIndexOccupied           = errors.New("block index already occupied")
	ErrBrokenLinkage           = errors.New("block does not link to tip")
	ErrWrongProducer           = errors.New("producer was not elected for this slot")
	ErrStateRootMismatch       = errors.New("state root mismatch")
	ErrTooManyTransactions     = errors.New("too many transactions")
	ErrChainHalted             = errors.New("chain halted after integrity failure")
	ErrNoEligibleValidator     = errors.New("no eligible validator")
	ErrUnknownValidator        = errors.New("unknown validator")
	ErrInsufficientCredits     = errors.New("insufficient contribution credits")
	ErrCooldown                = errors.New("registry operation inside cooldown window")
	ErrInvalidEvidence         = errors.New("invalid misbehaviour evidence")
	ErrOffenceRecorded         = errors.New("offence already recorded")
	ErrStaleTimestamp          = errors.New("block timestamp not after the tip slot")
	ErrFutureTimestamp         = errors.New("block timestamp ahead of local clock")
	ErrNoSigner                = errors.New("node has no signing key")
	ErrNotSelf                 = errors.New("operation for another validator")
)

// ClassifiedError attaches a Class to an underlying error.
type ClassifiedError struct {
	Class Class
	Op    string
	Err   error
}

func (e *ClassifiedError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Class, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Class, e.Op, e.Err)
}

func (e *ClassifiedError) Unwrap() error {
	return e.Err
}

func classify(class Class, op string, err error) error {
	if err == nil {
		return nil
	}
	return &ClassifiedError{Class: class, Op: op, Err: err}
}

// Reject marks err as a transaction Rejection.
func Reject(op string, err error) error { return classify(ClassRejection, op, err) }

// BatchFail marks err as a BatchFailure.
func BatchFail(op string, err error) error { return classify(ClassBatchFailure, op, err) }

// Violation marks err as a ConsensusViolation.
func Violation(op string, err error) error { return classify(ClassConsensusViolation, op, err) }

// Fatal marks err as IntegrityFatal.
func Fatal(op string, err error) error { return classify(ClassIntegrityFatal, op, err) }

// ClassOf returns the outermost Class attached to err.
func ClassOf(err error) Class {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class
	}
	return ClassUnknown
}
