package vaulttest

import (
	finvault "github.com/iov-one/finvault"
)

// Handler is a mock implementation of the finvault.Handler interface.
// It counts the calls and returns the configured results.
type Handler struct {
	checkCall   int
	deliverCall int

	CheckResult   finvault.CheckResult
	CheckErr      error
	DeliverResult finvault.DeliverResult
	DeliverErr    error
}

var _ finvault.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (*finvault.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx finvault.Context, db finvault.KVStore, tx finvault.Tx) (*finvault.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

// CheckCallCount returns the number of times Check was called.
func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

// DeliverCallCount returns the number of times Deliver was called.
func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

// CallCount returns the total number of calls.
func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
