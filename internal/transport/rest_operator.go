package transport

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/goodnatureofminers/pocschain/internal/model"
)

// CreditsRequest claims credits for an off-chain contribution.
type CreditsRequest struct {
	Activity string `json:"activity"`
	Credits  uint64 `json:"credits"`
}

// RedemptionRequest converts credits into bonded stake.
type RedemptionRequest struct {
	Credits uint64 `json:"credits"`
}

// RatingRequest is a reviewer's rating of the validator in the path, an
// integer in [1,100].
type RatingRequest struct {
	Reviewer string `json:"reviewer"`
	Rating   uint64 `json:"rating"`
}

// The operator routes answer 202 with the signed transaction; the registry
// changes once a block includes it.

func (h *REST) claimCredits(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id, err := h.parseAddress(params["address"])
	if err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	var req CreditsRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, http.StatusBadRequest, fmt.Errorf("decode credits: %w", err))
		return
	}
	tx, err := h.operator.ClaimCredits(r.Context(), id, req.Activity, req.Credits)
	if err != nil {
		h.fail(w, operatorStatus(err), err)
		return
	}
	h.write(w, http.StatusAccepted, tx)
}

func (h *REST) redeemCredits(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id, err := h.parseAddress(params["address"])
	if err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	var req RedemptionRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, http.StatusBadRequest, fmt.Errorf("decode redemption: %w", err))
		return
	}
	tx, err := h.operator.RedeemCredits(r.Context(), id, req.Credits)
	if err != nil {
		h.fail(w, operatorStatus(err), err)
		return
	}
	h.write(w, http.StatusAccepted, tx)
}

func (h *REST) ratePeer(w http.ResponseWriter, r *http.Request, params map[string]string) {
	reviewee, err := h.parseAddress(params["address"])
	if err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	var req RatingRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, http.StatusBadRequest, fmt.Errorf("decode rating: %w", err))
		return
	}
	reviewer, err := h.parseAddress(req.Reviewer)
	if err != nil {
		h.fail(w, http.StatusBadRequest, fmt.Errorf("reviewer: %w", err))
		return
	}
	tx, err := h.operator.RatePeer(r.Context(), reviewer, reviewee, req.Rating)
	if err != nil {
		h.fail(w, operatorStatus(err), err)
		return
	}
	h.write(w, http.StatusAccepted, tx)
}

func (h *REST) reviews(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	assignments := h.operator.Reviews()
	if assignments == nil {
		assignments = []model.ReviewAssignment{}
	}
	h.write(w, http.StatusOK, assignments)
}

func operatorStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrNoSigner), errors.Is(err, model.ErrNotSelf):
		return http.StatusForbidden
	case model.ClassOf(err) == model.ClassIntegrityFatal:
		return http.StatusServiceUnavailable
	case errors.Is(err, model.ErrUnknownValidator):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInsufficientCredits):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
