package dfs

// entry is one frontier element: the vertex reached and the path leading to it.
type entry struct {
	at   int
	path []int
}

// Frontier is the explicit collection of partial paths awaiting expansion.
// Take removes an arbitrary index in O(1) by swapping with the last element.
type Frontier struct {
	items []entry
}

// Len returns the number of pending entries.
func (f *Frontier) Len() int { return len(f.items) }

// Push appends a partial path ending at vertex at.
func (f *Frontier) Push(at int, path []int) {
	f.items = append(f.items, entry{at: at, path: path})
}

// Take removes and returns entry i.
func (f *Frontier) Take(i int) (int, []int) {
	e := f.items[i]
	last := len(f.items) - 1
	f.items[i] = f.items[last]
	f.items[last] = entry{}
	f.items = f.items[:last]

	return e.at, e.path
}
