package routing

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/qosroute/antcolony"
	"github.com/katalvlaran/qosroute/bfs"
	"github.com/katalvlaran/qosroute/dijkstra"
	"github.com/katalvlaran/qosroute/genetic"
	"github.com/katalvlaran/qosroute/network"
	"github.com/katalvlaran/qosroute/qlearning"
	"github.com/katalvlaran/qosroute/qos"
)

// Solve runs req on g.
//
// Errors are returned only for invalid input: ErrNilGraph,
// ErrUnknownAlgorithm, the qos.CheckQuery errors and engine option
// violations. A search that finds nothing yields a Result whose Err()
// reports why.
func Solve(g *network.Graph, req Request, opts ...Option) (qos.Result, error) {
	s := newSettings(opts)
	return s.solve(g, req)
}

// Compare runs every algorithm on req (req.Algorithm is ignored) and returns
// the results in AllAlgorithms order. The first input error aborts.
func Compare(g *network.Graph, req Request, opts ...Option) ([]qos.Result, error) {
	s := newSettings(opts)
	out := make([]qos.Result, 0, len(AllAlgorithms))
	for _, a := range AllAlgorithms {
		r := req
		r.Algorithm = a
		res, err := s.solve(g, r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a, err)
		}
		out = append(out, res)
	}
	return out, nil
}

// Label returns the engine's result label for a.
func Label(a Algorithm) string {
	switch a {
	case Genetic:
		return genetic.Name
	case AntColony:
		return antcolony.Name
	case QLearning:
		return qlearning.Name
	case Dijkstra:
		return dijkstra.Name
	default:
		return a.String()
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{newID: uuid.NewString, reachability: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *settings) solve(g *network.Graph, req Request) (qos.Result, error) {
	if g == nil {
		return qos.Result{}, ErrNilGraph
	}
	if _, err := req.Algorithm.MarshalText(); err != nil {
		return qos.Result{}, err
	}
	if err := qos.CheckQuery(g, req.Source, req.Destination, req.Demand, req.Weights); err != nil {
		return qos.Result{}, err
	}

	start := time.Now()
	ev := Event{Request: req}

	if s.reachability {
		ok, err := bfs.Reachable(g, req.Source, req.Destination, req.Demand)
		if err != nil {
			return qos.Result{}, err
		}
		if !ok {
			ev.ShortCircuited = true
			ev.Result = qos.NoPath(Label(req.Algorithm), fmt.Sprintf(
				"%d is not reachable from %d over links with bandwidth ≥ %v", req.Destination, req.Source, req.Demand))
		}
	}

	if !ev.ShortCircuited {
		res, err := dispatch(g, req)
		if err != nil {
			return qos.Result{}, err
		}
		if res.Status != qos.StatusNoPath {
			if b, err := qos.EvaluatePath(g, res.Path, req.Weights); err == nil {
				res.Breakdown = b
			}
		}
		ev.Result = res
	}

	ev.Result.RunID = s.newID()
	ev.Elapsed = time.Since(start)
	for _, o := range s.observers {
		o.Observe(ev)
	}
	return ev.Result, nil
}

func dispatch(g *network.Graph, req Request) (qos.Result, error) {
	src, dst, d, w := req.Source, req.Destination, req.Demand, req.Weights
	switch req.Algorithm {
	case Genetic:
		return genetic.Run(g, src, dst, d, w, geneticOptions(req)...)
	case AntColony:
		return antcolony.Run(g, src, dst, d, w, antColonyOptions(req)...)
	case QLearning:
		return qlearning.TrainAndSolve(g, src, dst, d, w, req.QLearning.Episodes, qLearningOptions(req)...)
	case Dijkstra:
		return dijkstra.Run(g, src, dst, d, w)
	default:
		return qos.Result{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(req.Algorithm))
	}
}

func geneticOptions(req Request) []genetic.Option {
	p := req.Genetic
	opts := []genetic.Option{genetic.WithSeed(req.Seed)}
	if p.PopulationSize != 0 {
		opts = append(opts, genetic.WithPopulationSize(p.PopulationSize))
	}
	if p.Generations != 0 {
		opts = append(opts, genetic.WithGenerations(p.Generations))
	}
	if p.MutationRate != 0 {
		opts = append(opts, genetic.WithMutationRate(p.MutationRate))
	}
	if p.Elite != 0 {
		opts = append(opts, genetic.WithElite(p.Elite))
	}
	if p.ParentPool != 0 {
		opts = append(opts, genetic.WithParentPool(p.ParentPool))
	}
	return opts
}

func antColonyOptions(req Request) []antcolony.Option {
	p := req.AntColony
	opts := []antcolony.Option{antcolony.WithSeed(req.Seed)}
	if p.Ants != 0 {
		opts = append(opts, antcolony.WithAnts(p.Ants))
	}
	if p.Iterations != 0 {
		opts = append(opts, antcolony.WithIterations(p.Iterations))
	}
	if p.Alpha != 0 {
		opts = append(opts, antcolony.WithAlpha(p.Alpha))
	}
	if p.Beta != 0 {
		opts = append(opts, antcolony.WithBeta(p.Beta))
	}
	if p.Rho != 0 {
		opts = append(opts, antcolony.WithRho(p.Rho))
	}
	if p.Phi != 0 {
		opts = append(opts, antcolony.WithPhi(p.Phi))
	}
	if p.Q0 != 0 {
		opts = append(opts, antcolony.WithQ0(p.Q0))
	}
	if p.Tau0 != 0 {
		opts = append(opts, antcolony.WithTau0(p.Tau0))
	}
	if p.MaxSteps != 0 {
		opts = append(opts, antcolony.WithMaxSteps(p.MaxSteps))
	}
	return opts
}

func qLearningOptions(req Request) []qlearning.Option {
	p := req.QLearning
	opts := []qlearning.Option{qlearning.WithSeed(req.Seed)}
	if p.Alpha != 0 {
		opts = append(opts, qlearning.WithAlpha(p.Alpha))
	}
	if p.Gamma != 0 {
		opts = append(opts, qlearning.WithGamma(p.Gamma))
	}
	if p.Epsilon != 0 || p.EpsilonDecay != 0 || p.EpsilonMin != 0 {
		d := qlearning.DefaultOptions()
		start, decay, floor := orDefault(p.Epsilon, d.Epsilon), orDefault(p.EpsilonDecay, d.EpsilonDecay), orDefault(p.EpsilonMin, d.EpsilonMin)
		opts = append(opts, qlearning.WithEpsilon(start, decay, floor))
	}
	if p.MaxSteps != 0 {
		opts = append(opts, qlearning.WithMaxSteps(p.MaxSteps))
	}
	return opts
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
