package qlearning

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qosroute/internal/rng"
	"github.com/katalvlaran/qosroute/network"
	"github.com/katalvlaran/qosroute/qos"
)

type stateAction struct {
	state, action int
}

// Agent owns a Q-table and exploration schedule for one graph and weight
// triple. Demand, source and destination are per call, so one agent can be
// trained on several queries.
type Agent struct {
	g    *network.Graph
	w    qos.Weights
	opts Options
	rnd  *rand.Rand

	q       map[stateAction]float64
	epsilon float64
}

// NewAgent validates the inputs and returns an agent with an empty table.
func NewAgent(g *network.Graph, w qos.Weights, opts ...Option) (*Agent, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Agent{
		g: g, w: w, opts: o,
		rnd:     rng.Or(o.Rand, o.Seed),
		q:       make(map[stateAction]float64),
		epsilon: o.Epsilon,
	}, nil
}

// Q returns the learned value of moving from s to a (0 if never updated).
func (a *Agent) Q(s, act int) float64 { return a.q[stateAction{s, act}] }

// Epsilon returns the current exploration rate.
func (a *Agent) Epsilon() float64 { return a.epsilon }

// Size returns the number of (state, action) entries in the table.
func (a *Agent) Size() int { return len(a.q) }

// Reset clears the table and restarts the exploration schedule.
func (a *Agent) Reset() {
	a.q = make(map[stateAction]float64)
	a.epsilon = a.opts.Epsilon
}

// Train runs episodes from src towards dst over links with Bandwidth ≥ demand.
//
// Errors: the input errors of qos.CheckQuery.
func (a *Agent) Train(src, dst int, demand float64, episodes int) (TrainStats, error) {
	if err := qos.CheckQuery(a.g, src, dst, demand, a.w); err != nil {
		return TrainStats{}, err
	}
	var st TrainStats
	for ep := 0; ep < episodes; ep++ {
		es := a.episode(src, dst, demand)
		st.Episodes++
		if es.Reached {
			st.Reached++
		}
		if a.opts.OnEpisode != nil {
			a.opts.OnEpisode(ep, es)
		}
	}
	st.Epsilon = a.epsilon
	st.States = len(a.q)
	return st, nil
}

// episode runs one ε-greedy rollout and decays ε.
func (a *Agent) episode(src, dst int, demand float64) EpisodeStats {
	var es EpisodeStats
	state := src
	visited := map[int]struct{}{src: {}}

	for es.Steps < a.opts.MaxSteps && state != dst {
		actions := a.actions(state, demand, visited)
		if len(actions) == 0 {
			break
		}
		act := a.explore(state, actions)
		reward := a.reward(state, act, src, dst)
		target := reward + a.opts.Gamma*a.nextMax(act, dst, demand, visited)

		k := stateAction{state, act}
		a.q[k] = (1-a.opts.Alpha)*a.q[k] + a.opts.Alpha*target

		es.Reward += reward
		es.Steps++
		visited[act] = struct{}{}
		state = act
	}
	es.Reached = state == dst

	if a.epsilon > a.opts.EpsilonMin {
		a.epsilon = max(a.opts.EpsilonMin, a.epsilon*a.opts.EpsilonDecay)
	}
	es.Epsilon = a.epsilon
	return es
}

// actions lists admissible neighbors of s absent from visited, in adjacency order.
func (a *Agent) actions(s int, demand float64, visited map[int]struct{}) []int {
	var out []int
	for _, n := range a.g.AdmissibleNeighbors(s, demand) {
		if _, seen := visited[n]; !seen {
			out = append(out, n)
		}
	}
	return out
}

func (a *Agent) explore(s int, actions []int) int {
	if a.rnd.Float64() < a.epsilon {
		return actions[a.rnd.Intn(len(actions))]
	}
	return a.greedy(s, actions)
}

// greedy returns the highest-valued action; ties go to the earliest.
func (a *Agent) greedy(s int, actions []int) int {
	best := actions[0]
	bestQ := a.Q(s, best)
	for _, act := range actions[1:] {
		if q := a.Q(s, act); q > bestQ {
			best, bestQ = act, q
		}
	}
	return best
}

// reward scores the move s→act. A move whose cost cannot be computed is
// scored like a dead end.
func (a *Agent) reward(s, act, src, dst int) float64 {
	if act == dst {
		return a.opts.GoalReward
	}
	cost, err := qos.StepCost(a.g, s, act, src, dst, a.w)
	if err != nil {
		return a.opts.DeadEndPenalty
	}
	return -cost
}

// nextMax is the bootstrap value of standing on act.
func (a *Agent) nextMax(act, dst int, demand float64, visited map[int]struct{}) float64 {
	if act == dst {
		return 0
	}
	found := false
	var best float64
	for _, n := range a.g.AdmissibleNeighbors(act, demand) {
		if _, seen := visited[n]; seen || n == act {
			continue
		}
		if q := a.Q(act, n); !found || q > best {
			best, found = q, true
		}
	}
	if !found {
		return a.opts.DeadEndPenalty
	}
	return best
}

// BestPath extracts the greedy path from src. It returns a found result
// when dst is reached, a partial result when the walk stalls after at least
// one move, and a no-path result when src has no admissible move at all.
//
// Errors: the input errors of qos.CheckQuery.
func (a *Agent) BestPath(src, dst int, demand float64) (qos.Result, error) {
	if err := qos.CheckQuery(a.g, src, dst, demand, a.w); err != nil {
		return qos.Result{}, err
	}

	path := []int{src}
	visited := map[int]struct{}{src: {}}
	cur := src
	for step := 0; step < a.opts.MaxSteps && cur != dst; step++ {
		actions := a.actions(cur, demand, visited)
		if len(actions) == 0 {
			break
		}
		cur = a.greedy(cur, actions)
		path = append(path, cur)
		visited[cur] = struct{}{}
	}

	switch {
	case cur == dst:
		res, err := qos.NewResult(a.g, path, a.w, Name, "greedy path from the learned table")
		if err != nil {
			return qos.NoPath(Name, err.Error()), nil
		}
		return res, nil
	case len(path) > 1:
		return qos.Partial(a.g, path, a.w, Name,
			fmt.Sprintf("greedy walk stalled at %d after %d moves", cur, len(path)-1)), nil
	default:
		return qos.NoPath(Name, fmt.Sprintf("no admissible move from %d for demand %v", src, demand)), nil
	}
}

// TrainAndSolve trains a fresh agent for episodes (DefaultEpisodes when
// ≤ 0) and returns its greedy path.
func TrainAndSolve(g *network.Graph, src, dst int, demand float64, w qos.Weights, episodes int, opts ...Option) (qos.Result, error) {
	agent, err := NewAgent(g, w, opts...)
	if err != nil {
		return qos.Result{}, err
	}
	if episodes <= 0 {
		episodes = DefaultEpisodes
	}
	if _, err = agent.Train(src, dst, demand, episodes); err != nil {
		return qos.Result{}, err
	}
	return agent.BestPath(src, dst, demand)
}
