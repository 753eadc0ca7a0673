package finvault

import (
	"strings"

	"github.com/iov-one/finvault/errors"
)

// Queries for the state are read-only and stay available even when all
// mutating entry points are frozen.
const (
	// KeyQueryMod means to query for exact match (key)
	KeyQueryMod = ""
	// PrefixQueryMod means to query for anything with this prefix
	PrefixQueryMod = "prefix"
)

// QueryHandler is anything that can process read-only requests against
// the state.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error)
}

// QueryRouter allows us to register many query handlers to different
// paths and then direct each query to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux.
type QueryRouter struct {
	routes map[string]QueryHandler
}

// NewQueryRouter initializes a QueryRouter with no routes.
func NewQueryRouter() QueryRouter {
	return QueryRouter{
		routes: make(map[string]QueryHandler, 10),
	}
}

// RegisterAll registers a number of QueryRegisters at once.
func (r QueryRouter) RegisterAll(qr ...QueryRegister) {
	for _, q := range qr {
		q(r)
	}
}

// QueryRegister is a function that adds some routes to this router.
type QueryRegister func(QueryRouter)

// Register adds a new handler for this path. Panics on duplicate path
// as this is a coding error of the embedding application.
func (r QueryRouter) Register(path string, h QueryHandler) {
	if _, ok := r.routes[path]; ok {
		panic("re-registering route: " + path)
	}
	r.routes[path] = h
}

// Handler returns the registered Handler for this path, or nil if
// none.
func (r QueryRouter) Handler(path string) QueryHandler {
	path = strings.TrimSuffix(path, "?"+PrefixQueryMod)
	return r.routes[path]
}

// Query dispatches a read-only request to the handler registered under
// given path.
func (r QueryRouter) Query(db ReadOnlyKVStore, path, mod string, data []byte) ([]Model, error) {
	h := r.Handler(path)
	if h == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "no query handler: %q", path)
	}
	return h.Query(db, mod, data)
}
