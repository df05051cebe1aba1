package weavetest

import "github.com/iov-one/pswap"

// Handler is a mock that counts calls and returns preconfigured results.
type Handler struct {
	checkCall   int
	CheckResult pswap.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult pswap.DeliverResult
	DeliverErr    error
}

var _ pswap.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx pswap.Context, db pswap.KVStore, tx pswap.Tx) (*pswap.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx pswap.Context, db pswap.KVStore, tx pswap.Tx) (*pswap.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
