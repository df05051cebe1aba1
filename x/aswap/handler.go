package aswap

import (
	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
	"github.com/iov-one/pswap/x"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r pswap.Registry, auth x.Authenticator, ctrl *Controller) {
	h := NewSwapHandler(auth, ctrl)
	r.Handle(&SetupMsg{}, h)
	r.Handle(&InitiateMsg{}, h)
	r.Handle(&FillPremiumMsg{}, h)
	r.Handle(&ParticipateMsg{}, h)
	r.Handle(&RedeemAssetMsg{}, h)
	r.Handle(&RefundAssetMsg{}, h)
	r.Handle(&RedeemPremiumMsg{}, h)
	r.Handle(&RefundPremiumMsg{}, h)
}

// SwapHandler processes every message of this extension.
type SwapHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ pswap.Handler = SwapHandler{}

// NewSwapHandler returns a handler that executes swap operations with ctrl.
func NewSwapHandler(auth x.Authenticator, ctrl *Controller) SwapHandler {
	return SwapHandler{auth: auth, ctrl: ctrl}
}

// Check evaluates all preconditions of the operation. Nothing is written.
func (h SwapHandler) Check(ctx pswap.Context, db pswap.KVStore, tx pswap.Tx) (*pswap.CheckResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Check(ctx, db, msg); err != nil {
		return nil, err
	}
	return &pswap.CheckResult{Log: msg.Path()}, nil
}

// Deliver executes the operation. The swap key is returned as data.
func (h SwapHandler) Deliver(ctx pswap.Context, db pswap.KVStore, tx pswap.Tx) (*pswap.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Execute(ctx, db, msg); err != nil {
		return nil, err
	}
	return &pswap.DeliverResult{Data: msg.SwapKey(), Log: msg.Path()}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h SwapHandler) validate(ctx pswap.Context, tx pswap.Tx) (SwapMsg, error) {
	raw, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get transaction message")
	}
	msg, ok := raw.(SwapMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "unexpected message %T", raw)
	}
	if err := msg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid message")
	}
	// Sender must authorize this
	if !h.auth.HasAddress(ctx, msg.SenderAddress()) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "sender signature missing")
	}
	return msg, nil
}
