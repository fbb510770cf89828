// SPDX-License-Identifier: MIT

package vrp

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/lvlroute/core"
	"github.com/katalvlaran/lvlroute/spcache"
)

// Role is the VRP role a node plays in an instance.
type Role int

// Node roles.
const (
	RoleNone Role = iota
	RoleDepot
	RoleClient
)

// String returns the lower-case role name.
func (r Role) String() string {
	switch r {
	case RoleDepot:
		return "depot"
	case RoleClient:
		return "client"
	default:
		return "none"
	}
}

// Option configures an Instance.
type Option func(*Instance)

// WithCacheOptions passes opts to the instance's shortest-path cache.
func WithCacheOptions(opts ...spcache.Option) Option {
	return func(in *Instance) {
		in.cacheOpts = append(in.cacheOpts, opts...)
	}
}

// Instance is a VRP instance: a weighted undirected graph plus one depot, an
// ordered client list and the capacity shared by every vehicle.
//
// The graph is held by reference. Instance never mutates it; callers that do
// must call ResetDistances afterwards.
type Instance struct {
	name string
	g    *core.Graph

	mu        sync.RWMutex
	depot     string
	clients   []string       // insertion order is the client index
	clientIdx map[string]int // client ID → index in clients
	capacity  int            // 0 = unset

	cacheOpts []spcache.Option
	cache     *spcache.Cache
}

// NewInstance wraps g. g must be weighted and undirected.
func NewInstance(name string, g *core.Graph, opts ...Option) (*Instance, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	in := &Instance{
		name:      name,
		g:         g,
		clientIdx: make(map[string]int),
	}
	for _, opt := range opts {
		opt(in)
	}

	return in, nil
}

// Name returns the instance name.
func (in *Instance) Name() string { return in.name }

// Graph returns the underlying graph.
func (in *Instance) Graph() *core.Graph { return in.g }

// SetDepot designates id as the depot, replacing any previous depot.
func (in *Instance) SetDepot(id string) error {
	if !in.g.HasVertex(id) {
		return fmt.Errorf("vrp: set depot: %w: %q", ErrUnknownNode, id)
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	if _, ok := in.clientIdx[id]; ok {
		return fmt.Errorf("vrp: set depot: %w: %q is a client", ErrRoleConflict, id)
	}
	in.depot = id

	return nil
}

// AddClient appends id to the client list.
func (in *Instance) AddClient(id string) error {
	if !in.g.HasVertex(id) {
		return fmt.Errorf("vrp: add client: %w: %q", ErrUnknownNode, id)
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	if id == in.depot {
		return fmt.Errorf("vrp: add client: %w: %q is the depot", ErrRoleConflict, id)
	}
	if _, ok := in.clientIdx[id]; ok {
		return fmt.Errorf("vrp: add client: %w: %q", ErrDuplicateClient, id)
	}
	in.clientIdx[id] = len(in.clients)
	in.clients = append(in.clients, id)

	return nil
}

// SetCapacity sets the vehicle capacity. It may be called once.
func (in *Instance) SetCapacity(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, n)
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	if in.capacity != 0 {
		return fmt.Errorf("%w: %d", ErrCapacityAlreadySet, in.capacity)
	}
	in.capacity = n

	return nil
}

// Depot returns the depot ID, or ErrUninitialized if none was set.
func (in *Instance) Depot() (string, error) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if in.depot == "" {
		return "", fmt.Errorf("%w: depot", ErrUninitialized)
	}

	return in.depot, nil
}

// Capacity returns the vehicle capacity, or ErrUninitialized if unset.
func (in *Instance) Capacity() (int, error) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if in.capacity == 0 {
		return 0, fmt.Errorf("%w: capacity", ErrUninitialized)
	}

	return in.capacity, nil
}

// Clients returns a copy of the client list in index order. It is empty,
// never nil, when no client was added.
func (in *Instance) Clients() []string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	out := make([]string, len(in.clients))
	copy(out, in.clients)

	return out
}

// ClientCount returns the number of clients.
func (in *Instance) ClientCount() int {
	in.mu.RLock()
	defer in.mu.RUnlock()

	return len(in.clients)
}

// Client returns the i-th client.
func (in *Instance) Client(i int) (string, error) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if i < 0 || i >= len(in.clients) {
		return "", fmt.Errorf("%w: %d not in [0,%d)", ErrClientIndex, i, len(in.clients))
	}

	return in.clients[i], nil
}

// Role returns the role of id. Unknown nodes are RoleNone.
func (in *Instance) Role(id string) Role {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if id != "" && id == in.depot {
		return RoleDepot
	}
	if _, ok := in.clientIdx[id]; ok {
		return RoleClient
	}

	return RoleNone
}

// IsClient reports whether id is a client.
func (in *Instance) IsClient(id string) bool {
	return in.Role(id) == RoleClient
}

// Validate reports every configuration problem that prevents solving.
func (in *Instance) Validate() error {
	in.mu.RLock()
	defer in.mu.RUnlock()

	var errs []error
	if in.depot == "" {
		errs = append(errs, fmt.Errorf("%w: depot", ErrUninitialized))
	}
	if in.capacity == 0 {
		errs = append(errs, fmt.Errorf("%w: capacity", ErrUninitialized))
	}
	for _, e := range in.g.Edges() {
		if e.Weight < 0 {
			errs = append(errs, fmt.Errorf("vrp: edge %s %s—%s has negative length %g", e.ID, e.From, e.To, e.Weight))
		}
	}

	return errors.Join(errs...)
}

// Distances returns the instance's shortest-path cache, creating it on first use.
func (in *Instance) Distances() *spcache.Cache {
	in.mu.RLock()
	c := in.cache
	in.mu.RUnlock()
	if c != nil {
		return c
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	if in.cache == nil {
		in.cache = spcache.New(in.g, in.cacheOpts...)
	}

	return in.cache
}

// ResetDistances drops every memoized shortest-path tree. Call it after
// mutating the graph.
func (in *Instance) ResetDistances() {
	in.mu.RLock()
	c := in.cache
	in.mu.RUnlock()
	if c != nil {
		c.Reset()
	}
}

// assign replaces depot, clients and capacity in one step.
func (in *Instance) assign(depot string, clients []string, capacity int) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.depot = depot
	in.clients = clients
	in.clientIdx = make(map[string]int, len(clients))
	for i, c := range clients {
		in.clientIdx[c] = i
	}
	in.capacity = capacity
}
