/*
Package x contains the interfaces shared between the extensions. Every
handler receives an Authenticator on construction, so the extension
never hard-codes how the caller got authenticated: the real
application wires in signature verification while tests wire in a
context-backed mock.
*/
package x

import (
	finvault "github.com/iov-one/finvault"
)

// Authenticator is an interface we can use to extract authentication
// info from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system, rather
// than hard-coding one for all extensions.
type Authenticator interface {
	// GetConditions reveals all Conditions fulfilled, you may want
	// the GetAddresses helper.
	GetConditions(finvault.Context) []finvault.Condition
	// HasAddress checks if any condition matches this address.
	HasAddress(finvault.Context, finvault.Address) bool
}

// MultiAuth chains together many Authenticators into one.
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator.
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetConditions combines all Conditions from all Authenticators.
func (m MultiAuth) GetConditions(ctx finvault.Context) []finvault.Condition {
	var res []finvault.Condition
	for _, impl := range m.impls {
		add := impl.GetConditions(ctx)
		if len(add) > 0 {
			res = append(res, add...)
		}
	}
	return res
}

// HasAddress returns true iff any Authenticator supports this address.
func (m MultiAuth) HasAddress(ctx finvault.Context, addr finvault.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// GetAddresses wraps the GetConditions method of any Authenticator.
func GetAddresses(ctx finvault.Context, auth Authenticator) []finvault.Address {
	perms := auth.GetConditions(ctx)
	addrs := make([]finvault.Address, len(perms))
	for i, p := range perms {
		addrs[i] = p.Address()
	}
	return addrs
}

// MainSigner returns the first condition if any, otherwise nil.
func MainSigner(ctx finvault.Context, auth Authenticator) finvault.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// HasAllAddresses returns true if all elements in required are also in
// the context.
func HasAllAddresses(ctx finvault.Context, auth Authenticator, required []finvault.Address) bool {
	for _, r := range required {
		if !auth.HasAddress(ctx, r) {
			return false
		}
	}
	return true
}

// AnyAddress returns the first context address that is a member of the
// allowed set, or nil when the caller holds none of them.
func AnyAddress(ctx finvault.Context, auth Authenticator, allowed []finvault.Address) finvault.Address {
	for _, a := range allowed {
		if auth.HasAddress(ctx, a) {
			return a
		}
	}
	return nil
}
