// Package app assembles the message dispatch: a router keyed by
// message path and a decorator chain wrapped around it.
package app

import (
	"fmt"
	"regexp"

	finvault "github.com/iov-one/finvault"
	"github.com/iov-one/finvault/errors"
)

// isPath is the RegExp to ensure the routes make sense.
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/\-]+$`).MatchString

// Router allows us to register many handlers with different paths and
// then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux.
type Router struct {
	routes map[string]finvault.Handler
}

var _ finvault.Registry = Router{}
var _ finvault.Handler = Router{}

// NewRouter initializes a router with no routes.
func NewRouter() Router {
	return Router{
		routes: make(map[string]finvault.Handler, 10),
	}
}

// Handle implements finvault.Registry interface. Path of the message
// is used as the routing destination.
func (r Router) Handle(m finvault.Msg, h finvault.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %q", path))
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this path, or a noSuchPath
// result if none.
func (r Router) handler(m finvault.Msg) finvault.Handler {
	if h, ok := r.routes[m.Path()]; ok {
		return h
	}
	return notFoundHandler(m.Path())
}

// Check dispatches to the proper handler based on the message path.
func (r Router) Check(ctx finvault.Context, store finvault.KVStore, tx finvault.Tx) (*finvault.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on the message path.
func (r Router) Deliver(ctx finvault.Context, store finvault.KVStore, tx finvault.Tx) (*finvault.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Deliver(ctx, store, tx)
}

// notFoundHandler always returns ErrNotFound, paired with the path
// that could not be routed.
type notFoundHandler string

var _ finvault.Handler = notFoundHandler("")

func (path notFoundHandler) Check(ctx finvault.Context, store finvault.KVStore, tx finvault.Tx) (*finvault.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}

func (path notFoundHandler) Deliver(ctx finvault.Context, store finvault.KVStore, tx finvault.Tx) (*finvault.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}
