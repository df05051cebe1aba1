package x

import (
	"context"

	"github.com/iov-one/pswap"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system,
// rather than hard-coding one for all extensions.
type Authenticator interface {
	// GetConditions reveals all Conditions fulfilled,
	// you may want GetAddresses helper
	GetConditions(pswap.Context) []pswap.Condition
	// HasAddress checks if any condition matches this address
	HasAddress(pswap.Context, pswap.Address) bool
}

// MultiAuth chains together many Authenticators into one
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetConditions combines all Conditions from all Authenticators
func (m MultiAuth) GetConditions(ctx pswap.Context) []pswap.Condition {
	var res []pswap.Condition
	for _, impl := range m.impls {
		add := impl.GetConditions(ctx)
		if len(add) > 0 {
			res = append(res, add...)
		}
	}
	return res
}

// HasAddress returns true iff any Authenticator support this
func (m MultiAuth) HasAddress(ctx pswap.Context, addr pswap.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// GetAddresses wraps the GetConditions method of any Authenticator
func GetAddresses(ctx pswap.Context, auth Authenticator) []pswap.Address {
	perms := auth.GetConditions(ctx)
	addrs := make([]pswap.Address, len(perms))
	for i, p := range perms {
		addrs[i] = p.Address()
	}
	return addrs
}

// MainSigner returns the first permission if any, otherwise nil
func MainSigner(ctx pswap.Context, auth Authenticator) pswap.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

type signersKey struct{}

// SignerAuth authenticates the conditions that were attached to the context
// with WithSigners. The caller of WithSigners is trusted to have verified
// them, for example by checking a signature at the transport layer.
type SignerAuth struct{}

var _ Authenticator = SignerAuth{}

// WithSigners returns a context that authenticates given conditions.
func WithSigners(ctx pswap.Context, signers ...pswap.Condition) pswap.Context {
	return context.WithValue(ctx, signersKey{}, signers)
}

func (SignerAuth) GetConditions(ctx pswap.Context) []pswap.Condition {
	val, _ := ctx.Value(signersKey{}).([]pswap.Condition)
	return val
}

func (a SignerAuth) HasAddress(ctx pswap.Context, addr pswap.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
