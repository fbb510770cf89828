// SPDX-License-Identifier: MIT

package spcache

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/lvlroute/core"
	"github.com/katalvlaran/lvlroute/dijkstra"
	"github.com/katalvlaran/lvlroute/metrics"
)

var (
	// ErrUnknownNode indicates a query referencing a node absent from the graph.
	ErrUnknownNode = errors.New("spcache: unknown node")

	// ErrUnreachableNode indicates that no path connects the queried nodes.
	ErrUnreachableNode = errors.New("spcache: unreachable node")
)

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used for tree builds (V(1)).
func WithLogger(log logr.Logger) Option {
	return func(c *Cache) { c.log = log }
}

// WithRecorder sets the metrics recorder. nil disables metrics.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(c *Cache) { c.rec = rec }
}

// Stats is a snapshot of the cache counters.
type Stats struct {
	Hits   uint64 // queries answered by a stored tree
	Misses uint64 // queries that had to wait for a computation
	Builds uint64 // Dijkstra runs
}

// Cache maps source vertex IDs to their shortest-path trees.
type Cache struct {
	g   *core.Graph
	log logr.Logger
	rec *metrics.Recorder

	mu    sync.RWMutex
	trees map[string]*Tree
	gen   uint64            // bumped by Reset; drops every in-flight build
	epoch map[string]uint64 // bumped by Invalidate; drops in-flight builds of that source only

	group singleflight.Group

	hits, misses, builds atomic.Uint64
}

// New returns an empty cache over g.
func New(g *core.Graph, opts ...Option) *Cache {
	c := &Cache{
		g:     g,
		log:   logr.Discard(),
		trees: make(map[string]*Tree),
		epoch: make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Graph returns the graph the cache reads.
func (c *Cache) Graph() *core.Graph { return c.g }

// Tree returns the shortest-path tree rooted at from, computing it on first use.
func (c *Cache) Tree(from string) (*Tree, error) {
	if err := c.checkNode(from); err != nil {
		return nil, err
	}

	c.mu.RLock()
	t, ok := c.trees[from]
	gen, epoch := c.gen, c.epoch[from]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		c.rec.CacheLookup(true)

		return t, nil
	}

	c.misses.Add(1)
	c.rec.CacheLookup(false)

	key := strconv.FormatUint(gen, 10) + "/" + strconv.FormatUint(epoch, 10) + "/" + from
	v, err, _ := c.group.Do(key, func() (any, error) {
		return c.build(from, gen, epoch)
	})
	if err != nil {
		return nil, err
	}

	return v.(*Tree), nil
}

// build runs Dijkstra for from and stores the tree unless the cache was
// reset, or from was invalidated, since gen and epoch were read.
func (c *Cache) build(from string, gen, epoch uint64) (*Tree, error) {
	c.mu.RLock()
	t, ok := c.trees[from]
	c.mu.RUnlock()
	if ok {
		return t, nil
	}

	start := time.Now()
	res, err := dijkstra.Dijkstra(c.g, dijkstra.Source(from))
	if err != nil {
		return nil, fmt.Errorf("spcache: tree from %q: %w", from, err)
	}
	elapsed := time.Since(start)

	t = &Tree{source: from, res: res}
	c.builds.Add(1)
	c.rec.TreeBuilt(elapsed)
	c.log.V(1).Info("shortest-path tree built", "source", from, "reachable", t.ReachableCount(), "elapsed", elapsed)

	c.mu.Lock()
	if c.gen == gen && c.epoch[from] == epoch {
		c.trees[from] = t
	}
	c.mu.Unlock()

	return t, nil
}

// Distance returns the shortest distance between from and to.
func (c *Cache) Distance(from, to string) (float64, error) {
	t, err := c.treeFor(from, to)
	if err != nil {
		return 0, err
	}
	d, ok := t.Distance(to)
	if !ok {
		return 0, fmt.Errorf("%w: %q → %q", ErrUnreachableNode, from, to)
	}

	return d, nil
}

// PathEdges returns the edges of one shortest path from → to in travel order.
// The sum of their weights equals Distance(from, to). The slice is empty when
// from == to.
func (c *Cache) PathEdges(from, to string) ([]*core.Edge, error) {
	t, err := c.treeFor(from, to)
	if err != nil {
		return nil, err
	}
	path, ok := t.PathEdges(to)
	if !ok {
		return nil, fmt.Errorf("%w: %q → %q", ErrUnreachableNode, from, to)
	}

	return path, nil
}

// Path returns the vertex sequence of the path PathEdges reports, both
// endpoints included.
func (c *Cache) Path(from, to string) ([]string, error) {
	edges, err := c.PathEdges(from, to)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(edges)+1)
	out = append(out, from)
	cur := from
	for _, e := range edges {
		cur = e.Other(cur)
		out = append(out, cur)
	}

	return out, nil
}

// Invalidate drops the tree of one source. Builds of other sources in flight
// are still stored.
func (c *Cache) Invalidate(source string) {
	c.mu.Lock()
	delete(c.trees, source)
	c.epoch[source]++
	c.mu.Unlock()
}

// Reset drops every tree.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.trees = make(map[string]*Tree)
	c.gen++
	c.mu.Unlock()
	c.log.V(1).Info("shortest-path cache reset")
}

// Len returns the number of stored trees.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.trees)
}

// Stats returns the current counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Builds: c.builds.Load(),
	}
}

func (c *Cache) treeFor(from, to string) (*Tree, error) {
	if err := c.checkNode(to); err != nil {
		return nil, err
	}

	return c.Tree(from)
}

func (c *Cache) checkNode(id string) error {
	if id == "" || c.g == nil || !c.g.HasVertex(id) {
		return fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return nil
}
