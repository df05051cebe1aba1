package token

import (
	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
	"github.com/iov-one/pswap/x"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r pswap.Registry, auth x.Authenticator, control BaseController) {
	r.Handle(&SendMsg{}, NewSendHandler(auth, control))
	r.Handle(&ApproveMsg{}, NewApproveHandler(auth, control))
}

// SendHandler will handle sending tokens
type SendHandler struct {
	auth    x.Authenticator
	control BaseController
}

var _ pswap.Handler = SendHandler{}

// NewSendHandler creates a handler for SendMsg
func NewSendHandler(auth x.Authenticator, control BaseController) SendHandler {
	return SendHandler{
		auth:    auth,
		control: control,
	}
}

// Check verifies the message is properly formed and signed, and that the
// source can cover the amount.
func (h SendHandler) Check(ctx pswap.Context, store pswap.KVStore, tx pswap.Tx) (*pswap.CheckResult, error) {
	msg, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	have, err := h.control.BalanceOf(store, msg.Token, msg.Source)
	if err != nil {
		return nil, err
	}
	if have < msg.Amount {
		return nil, errors.Wrapf(errors.ErrInsufficientFunds, "have %d %s", have, msg.Token)
	}
	return &pswap.CheckResult{}, nil
}

// Deliver moves the tokens from source to receiver if
// all preconditions are met
func (h SendHandler) Deliver(ctx pswap.Context, store pswap.KVStore, tx pswap.Tx) (*pswap.DeliverResult, error) {
	msg, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.Transfer(store, msg.Token, msg.Source, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &pswap.DeliverResult{}, nil
}

func (h SendHandler) validate(ctx pswap.Context, store pswap.KVStore, tx pswap.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := pswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "account owner signature missing")
	}
	return &msg, nil
}

// ApproveHandler sets allowances.
type ApproveHandler struct {
	auth    x.Authenticator
	control BaseController
}

var _ pswap.Handler = ApproveHandler{}

// NewApproveHandler creates a handler for ApproveMsg
func NewApproveHandler(auth x.Authenticator, control BaseController) ApproveHandler {
	return ApproveHandler{
		auth:    auth,
		control: control,
	}
}

func (h ApproveHandler) Check(ctx pswap.Context, store pswap.KVStore, tx pswap.Tx) (*pswap.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &pswap.CheckResult{}, nil
}

func (h ApproveHandler) Deliver(ctx pswap.Context, store pswap.KVStore, tx pswap.Tx) (*pswap.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.Approve(store, msg.Token, msg.Owner, msg.Spender, msg.Amount); err != nil {
		return nil, err
	}
	return &pswap.DeliverResult{}, nil
}

func (h ApproveHandler) validate(ctx pswap.Context, tx pswap.Tx) (*ApproveMsg, error) {
	var msg ApproveMsg
	if err := pswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "account owner signature missing")
	}
	return &msg, nil
}
