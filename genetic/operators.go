package genetic

import (
	"github.com/katalvlaran/qosroute/dfs"
	"github.com/katalvlaran/qosroute/network"
)

// crossover splices p1[:pivot] with p2[pivot:] at a random common interior
// vertex. The result is always a fresh slice.
func (r *runner) crossover(p1, p2 []int) []int {
	common := commonInterior(p1, p2)
	if len(common) == 0 {
		if r.rnd.Intn(2) == 0 {
			return clone(p1)
		}
		return clone(p2)
	}

	pivot := common[r.rnd.Intn(len(common))]
	i1, i2 := indexOf(p1, pivot), indexOf(p2, pivot)

	child := make([]int, 0, i1+len(p2)-i2)
	child = append(child, p1[:i1]...)
	child = append(child, p2[i2:]...)
	if network.HasDuplicates(child) {
		return clone(p1)
	}
	return child
}

// mutate regrows the suffix of p from a random interior cut vertex.
// Paths shorter than three vertices have no interior and are returned as is.
func (r *runner) mutate(p []int) []int {
	if len(p) < 3 {
		return p
	}
	cut := 1 + r.rnd.Intn(len(p)-2)
	suffix, err := dfs.RandomPath(r.g, p[cut], r.dst, r.demand, dfs.WithRand(r.rnd))
	if err != nil {
		return p
	}

	out := make([]int, 0, cut+len(suffix))
	out = append(out, p[:cut]...)
	out = append(out, suffix...)
	if network.HasDuplicates(out) {
		return p
	}
	return out
}

// commonInterior lists the interior vertices of p1 that are also interior to
// p2, in p1's order.
func commonInterior(p1, p2 []int) []int {
	if len(p1) < 3 || len(p2) < 3 {
		return nil
	}
	in2 := make(map[int]struct{}, len(p2)-2)
	for _, v := range p2[1 : len(p2)-1] {
		in2[v] = struct{}{}
	}
	var out []int
	for _, v := range p1[1 : len(p1)-1] {
		if _, ok := in2[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

func indexOf(p []int, v int) int {
	for i, x := range p {
		if x == v {
			return i
		}
	}
	return -1
}

func clone(p []int) []int {
	return append([]int(nil), p...)
}
