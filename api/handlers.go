package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/qosroute/antcolony"
	"github.com/katalvlaran/qosroute/genetic"
	"github.com/katalvlaran/qosroute/qlearning"
	"github.com/katalvlaran/qosroute/qos"
	"github.com/katalvlaran/qosroute/routing"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) graphStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.graph.Stats())
}

func (s *Server) route(c *gin.Context) {
	req, ok := s.bind(c)
	if !ok {
		return
	}
	res, err := routing.Solve(s.graph, req, s.solveOps...)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, RouteResponse{RequestID: getRequestID(c), Result: res})
}

func (s *Server) compare(c *gin.Context) {
	req, ok := s.bind(c)
	if !ok {
		return
	}
	results, err := routing.Compare(s.graph, req, s.solveOps...)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, CompareResponse{RequestID: getRequestID(c), Results: results})
}

func (s *Server) bind(c *gin.Context) (routing.Request, bool) {
	var body RouteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.abort(c, http.StatusBadRequest, err)
		return routing.Request{}, false
	}
	if err := validate.Struct(&body); err != nil {
		s.abort(c, http.StatusBadRequest, err)
		return routing.Request{}, false
	}
	req, err := body.toRequest(s.defaults)
	if err != nil {
		s.abort(c, http.StatusBadRequest, err)
		return routing.Request{}, false
	}
	return req, true
}

// fail maps routing input errors to 400 and anything else to 500.
func (s *Server) fail(c *gin.Context, err error) {
	if isInputError(err) {
		s.abort(c, http.StatusBadRequest, err)
		return
	}
	s.log.Error("search failed", zap.String("request_id", getRequestID(c)), zap.Error(err))
	s.abort(c, http.StatusInternalServerError, err)
}

func (s *Server) abort(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, ErrorResponse{RequestID: getRequestID(c), Error: err.Error()})
}

var inputErrors = []error{
	qos.ErrInvalidWeights,
	qos.ErrInvalidDemand,
	qos.ErrUnknownEndpoint,
	qos.ErrSameEndpoints,
	routing.ErrUnknownAlgorithm,
	genetic.ErrOptionViolation,
	antcolony.ErrOptionViolation,
	qlearning.ErrOptionViolation,
}

func isInputError(err error) bool {
	for _, target := range inputErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
