package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/pocschain/internal/address"
	"github.com/goodnatureofminers/pocschain/internal/model"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
	maxBodyBytes        = 1 << 20
)

// AccountView is an account as rendered over REST.
type AccountView struct {
	model.Account
	Bech32 string `json:"bech32"`
}

// ChainView is the chain summary rendered by GET /v1/chain.
type ChainView struct {
	Height      uint64     `json:"height"`
	Tip         model.Hash `json:"tip"`
	StateRoot   model.Hash `json:"state_root"`
	TotalSupply uint64     `json:"total_supply"`
	Halted      bool       `json:"halted"`
}

type errorView struct {
	Error string `json:"error"`
	Class string `json:"class,omitempty"`
}

// REST serves the query and submission endpoints.
type REST struct {
	explorer Explorer
	operator Operator
	codec    address.Codec
	logger   *zap.Logger
}

// NewRESTMux registers every endpoint on a gateway mux. The validator
// operator endpoints are left out when operator is nil.
func NewRESTMux(explorer Explorer, operator Operator, codec address.Codec, logger *zap.Logger) (*gwruntime.ServeMux, error) {
	h := &REST{explorer: explorer, operator: operator, codec: codec, logger: logger.Named("rest")}
	mux := gwruntime.NewServeMux()
	routes := []struct {
		method  string
		pattern string
		handler gwruntime.HandlerFunc
	}{
		{http.MethodGet, "/v1/chain", h.chain},
		{http.MethodGet, "/v1/blocks/{index}", h.block},
		{http.MethodGet, "/v1/accounts/{address}", h.account},
		{http.MethodGet, "/v1/accounts/{address}/history", h.history},
		{http.MethodGet, "/v1/validators", h.validators},
		{http.MethodGet, "/v1/network", h.network},
		{http.MethodPost, "/v1/transactions", h.submit},
	}
	if operator != nil {
		routes = append(routes, []struct {
			method  string
			pattern string
			handler gwruntime.HandlerFunc
		}{
			{http.MethodPost, "/v1/validators/{address}/credits", h.claimCredits},
			{http.MethodPost, "/v1/validators/{address}/redemptions", h.redeemCredits},
			{http.MethodPost, "/v1/validators/{address}/ratings", h.ratePeer},
			{http.MethodGet, "/v1/reviews", h.reviews},
		}...)
	}
	for _, r := range routes {
		if err := mux.HandlePath(r.method, r.pattern, r.handler); err != nil {
			return nil, fmt.Errorf("register %s %s: %w", r.method, r.pattern, err)
		}
	}
	return mux, nil
}

func (h *REST) chain(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	st := h.explorer.Status()
	h.write(w, http.StatusOK, ChainView{
		Height:      st.Height,
		Tip:         st.Tip,
		StateRoot:   st.StateRoot,
		TotalSupply: st.TotalSupply,
		Halted:      st.Halted,
	})
}

func (h *REST) network(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	h.write(w, http.StatusOK, h.explorer.Status())
}

func (h *REST) block(w http.ResponseWriter, _ *http.Request, params map[string]string) {
	index, err := strconv.ParseUint(params["index"], 10, 64)
	if err != nil {
		h.fail(w, http.StatusBadRequest, fmt.Errorf("block index %q: %w", params["index"], err))
		return
	}
	b, ok := h.explorer.Block(index)
	if !ok {
		h.fail(w, http.StatusNotFound, fmt.Errorf("block %d not found", index))
		return
	}
	h.write(w, http.StatusOK, b)
}

func (h *REST) account(w http.ResponseWriter, _ *http.Request, params map[string]string) {
	addr, err := h.parseAddress(params["address"])
	if err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	acct, ok := h.explorer.Account(addr)
	if !ok {
		h.fail(w, http.StatusNotFound, fmt.Errorf("account %s: %w", addr, model.ErrUnknownAccount))
		return
	}
	h.write(w, http.StatusOK, AccountView{Account: acct, Bech32: h.codec.MustEncode(addr)})
}

func (h *REST) history(w http.ResponseWriter, r *http.Request, params map[string]string) {
	addr, err := h.parseAddress(params["address"])
	if err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.fail(w, http.StatusBadRequest, fmt.Errorf("limit %q must be a positive integer", raw))
			return
		}
		limit = min(n, maxHistoryLimit)
	}
	entries := h.explorer.History(addr, limit)
	if entries == nil {
		entries = []model.LedgerEntry{}
	}
	h.write(w, http.StatusOK, entries)
}

func (h *REST) validators(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	records := h.explorer.Validators()
	if records == nil {
		records = []model.ValidatorRecord{}
	}
	h.write(w, http.StatusOK, records)
}

func (h *REST) submit(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var tx model.Transaction
	if err := decodeBody(w, r, &tx); err != nil {
		h.fail(w, http.StatusBadRequest, fmt.Errorf("decode transaction: %w", err))
		return
	}
	if err := h.explorer.SubmitTransaction(r.Context(), tx); err != nil {
		code := http.StatusInternalServerError
		switch model.ClassOf(err) {
		case model.ClassRejection:
			code = http.StatusBadRequest
		case model.ClassIntegrityFatal:
			code = http.StatusServiceUnavailable
		}
		h.fail(w, code, err)
		return
	}
	h.write(w, http.StatusAccepted, map[string]model.Hash{"hash": tx.Hash})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// parseAddress accepts bech32 or hex.
func (h *REST) parseAddress(raw string) (model.Address, error) {
	if addr, err := h.codec.Decode(raw); err == nil {
		return addr, nil
	}
	addr, err := model.AddressFromHex(raw)
	if err != nil {
		return model.Address{}, fmt.Errorf("address %q is neither bech32 nor hex", raw)
	}
	return addr, nil
}

func (h *REST) write(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("response not written", zap.Error(err))
	}
}

func (h *REST) fail(w http.ResponseWriter, code int, err error) {
	view := errorView{Error: err.Error()}
	if class := model.ClassOf(err); class != model.ClassUnknown {
		view.Class = class.String()
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		code = http.StatusRequestEntityTooLarge
	}
	h.write(w, code, view)
}
