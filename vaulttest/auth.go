package vaulttest

import (
	"context"

	finvault "github.com/iov-one/finvault"
)

// CtxAuth is an authenticator that reads conditions from the context.
// Each instance uses its own context key, so several CtxAuth can be
// stacked without interfering.
type CtxAuth struct {
	Key string
}

// SetConditions returns a context with the given conditions attached.
func (a CtxAuth) SetConditions(ctx finvault.Context, conds ...finvault.Condition) finvault.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), conds)
}

// GetConditions returns the conditions previously attached with
// SetConditions.
func (a CtxAuth) GetConditions(ctx finvault.Context) []finvault.Condition {
	conds, _ := ctx.Value(ctxAuthKey(a.Key)).([]finvault.Condition)
	return conds
}

// HasAddress returns true if any attached condition matches the
// address.
func (a CtxAuth) HasAddress(ctx finvault.Context, addr finvault.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if c.Address().Equals(addr) {
			return true
		}
	}
	return false
}

type ctxAuthKey string

// Auth is an authenticator that always confirms the configured
// conditions, regardless of the context content.
type Auth struct {
	// Signer is used as the only signer if set. For multiple
	// signatures use Signers.
	Signer finvault.Condition

	Signers []finvault.Condition
}

// GetConditions returns the configured conditions.
func (a *Auth) GetConditions(finvault.Context) []finvault.Condition {
	if a.Signer != nil {
		if len(a.Signers) > 0 {
			panic("configure either Signer or Signers")
		}
		return []finvault.Condition{a.Signer}
	}
	return a.Signers
}

// HasAddress returns true if any configured condition matches the
// address.
func (a *Auth) HasAddress(_ finvault.Context, addr finvault.Address) bool {
	for _, s := range a.GetConditions(nil) {
		if s.Address().Equals(addr) {
			return true
		}
	}
	return false
}
