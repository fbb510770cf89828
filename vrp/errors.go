// SPDX-License-Identifier: MIT

package vrp

import (
	"errors"

	"github.com/katalvlaran/lvlroute/spcache"
)

// Sentinel errors returned by the vrp package. Match them with errors.Is.
var (
	// ErrNilGraph indicates that NewInstance received a nil graph.
	ErrNilGraph = errors.New("vrp: graph is nil")

	// ErrUnweightedGraph indicates that the graph does not carry edge lengths.
	ErrUnweightedGraph = errors.New("vrp: graph must be weighted")

	// ErrDirectedGraph indicates a directed graph; routing here is symmetric.
	ErrDirectedGraph = errors.New("vrp: graph must be undirected")

	// ErrRoleConflict indicates an attempt to make the depot a client or vice versa.
	ErrRoleConflict = errors.New("vrp: node already holds another role")

	// ErrDuplicateClient indicates that a node was added as a client twice.
	ErrDuplicateClient = errors.New("vrp: duplicate client")

	// ErrCapacityAlreadySet indicates a second SetCapacity call.
	ErrCapacityAlreadySet = errors.New("vrp: vehicle capacity already set")

	// ErrInvalidCapacity indicates a capacity below 1.
	ErrInvalidCapacity = errors.New("vrp: vehicle capacity must be ≥ 1")

	// ErrUninitialized indicates that the depot or the capacity was queried
	// before being set.
	ErrUninitialized = errors.New("vrp: uninitialized")

	// ErrClientIndex indicates an out-of-range client index.
	ErrClientIndex = errors.New("vrp: client index out of range")

	// ErrTooFewNodes indicates that a graph cannot host the requested depot and clients.
	ErrTooFewNodes = errors.New("vrp: not enough nodes for depot and clients")

	// ErrRandomConfig indicates a RandomConfig that cannot produce an instance.
	ErrRandomConfig = errors.New("vrp: invalid random instance config")

	// ErrNoFeasibleRoute indicates that route construction cannot make
	// progress: the remaining clients are unreachable from the depot.
	ErrNoFeasibleRoute = errors.New("vrp: no feasible route")

	// ErrUnknownNode indicates a node absent from the graph.
	ErrUnknownNode = spcache.ErrUnknownNode

	// ErrUnreachableNode indicates that no path connects two nodes.
	ErrUnreachableNode = spcache.ErrUnreachableNode
)
