package api

import (
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/qosroute/qos"
	"github.com/katalvlaran/qosroute/routing"
)

// validate checks the engine parameter ranges declared on the routing
// params; gin's binding only reads `binding` tags.
var validate = validator.New()

// RouteRequest is the body of /route and /compare. Omitted optional fields
// fall back to the server's default request.
type RouteRequest struct {
	Source      *int         `json:"source" binding:"required"`
	Destination *int         `json:"destination" binding:"required"`
	Demand      *float64     `json:"demand" binding:"required,gte=0"`
	Weights     *qos.Weights `json:"weights"`
	Algorithm   string       `json:"algorithm"`
	Seed        *int64       `json:"seed"`

	Genetic   *routing.GeneticParams   `json:"genetic"`
	AntColony *routing.AntColonyParams `json:"ant_colony"`
	QLearning *routing.QLearningParams `json:"q_learning"`
}

// RouteResponse wraps one result.
type RouteResponse struct {
	RequestID string     `json:"request_id"`
	Result    qos.Result `json:"result"`
}

// CompareResponse lists one result per algorithm.
type CompareResponse struct {
	RequestID string       `json:"request_id"`
	Results   []qos.Result `json:"results"`
}

// ErrorResponse is the body of every 4xx and 5xx reply.
type ErrorResponse struct {
	RequestID string `json:"request_id,omitempty"`
	Error     string `json:"error"`
}

// toRequest merges r over base.
func (r RouteRequest) toRequest(base routing.Request) (routing.Request, error) {
	req := base
	req.Source = *r.Source
	req.Destination = *r.Destination
	req.Demand = *r.Demand
	if r.Weights != nil {
		req.Weights = *r.Weights
	}
	if r.Algorithm != "" {
		a, err := routing.ParseAlgorithm(r.Algorithm)
		if err != nil {
			return routing.Request{}, err
		}
		req.Algorithm = a
	}
	if r.Seed != nil {
		req.Seed = *r.Seed
	}
	if r.Genetic != nil {
		req.Genetic = *r.Genetic
	}
	if r.AntColony != nil {
		req.AntColony = *r.AntColony
	}
	if r.QLearning != nil {
		req.QLearning = *r.QLearning
	}
	return req, nil
}
