package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/qosroute/network"
	"github.com/katalvlaran/qosroute/qos"
)

// Dijkstra returns the weighted QoS distance from src to every vertex it
// reaches over links with Bandwidth ≥ demand, plus the predecessor map.
// Hop weights are qos.StepCost(u, v, src, dst, w); dst only changes the
// weight of hops that enter it.
//
// Unreachable vertices are absent from both maps.
//
// Errors: ErrNilGraph, ErrOptionViolation and the input errors of
// qos.CheckQuery.
func Dijkstra(g *network.Graph, src, dst int, demand float64, w qos.Weights, opts ...Option) (map[int]float64, map[int]int, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if err := qos.CheckQuery(g, src, dst, demand, w); err != nil {
		return nil, nil, err
	}

	r := &runner{
		g: g, src: src, dst: dst, demand: demand, w: w,
		options: cfg,
		dist:    make(map[int]float64, g.Order()),
		prev:    make(map[int]int, g.Order()),
		visited: make(map[int]bool, g.Order()),
	}
	r.init()
	r.process()

	return r.dist, r.prev, nil
}

// Run returns the cheapest admissible path from src to dst as a Result,
// or qos.NoPath when dst is unreachable.
func Run(g *network.Graph, src, dst int, demand float64, w qos.Weights, opts ...Option) (qos.Result, error) {
	opts = append(opts, WithStopAtDestination())
	dist, prev, err := Dijkstra(g, src, dst, demand, w, opts...)
	if err != nil {
		return qos.Result{}, err
	}
	if _, ok := dist[dst]; !ok {
		return qos.NoPath(Name, fmt.Sprintf("%d unreachable from %d for demand %v", dst, src, demand)), nil
	}

	path := []int{dst}
	for cur := dst; cur != src; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	res, err := qos.NewResult(g, path, w, Name, "exact minimum over the admissible subgraph")
	if err != nil {
		return qos.NoPath(Name, err.Error()), nil
	}
	return res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g        *network.Graph
	src, dst int
	demand   float64
	w        qos.Weights
	options  Options
	dist     map[int]float64
	prev     map[int]int
	visited  map[int]bool
	pq       nodePQ
}

func (r *runner) init() {
	r.dist[r.src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.src, dist: 0})
}

// process settles vertices in order of distance until the heap empties,
// MaxDistance is exceeded, or dst is settled with StopAtDestination.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if u == r.dst && r.options.StopAtDestination {
			return
		}
		r.relax(u)
	}
}

// relax improves the distance of every admissible neighbor of u. Hops whose
// cost cannot be computed are skipped.
func (r *runner) relax(u int) {
	for _, v := range r.g.AdmissibleNeighbors(u, r.demand) {
		if r.visited[v] {
			continue
		}
		step, err := qos.StepCost(r.g, u, v, r.src, r.dst, r.w)
		if err != nil || math.IsNaN(step) {
			continue
		}
		nd := r.dist[u] + step
		if nd > r.options.MaxDistance {
			continue
		}
		if old, ok := r.dist[v]; ok && nd >= old {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}
}

// nodeItem is a heap entry: a vertex and a tentative distance.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id for stable ties.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
