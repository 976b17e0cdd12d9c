package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qosroute/internal/metrics"
	"github.com/katalvlaran/qosroute/qos"
	"github.com/katalvlaran/qosroute/routing"
)

func TestObserve(t *testing.T) {
	m := metrics.New()
	m.Observe(routing.Event{
		Request: routing.Request{Algorithm: routing.Dijkstra},
		Result:  qos.Result{Status: qos.StatusFound, Path: []int{0, 1, 2}, Breakdown: qos.Breakdown{TotalCost: 7}},
		Elapsed: time.Millisecond,
	})
	m.Observe(routing.Event{
		Request:        routing.Request{Algorithm: routing.Genetic},
		Result:         qos.NoPath("GA", "unreachable"),
		ShortCircuited: true,
	})

	expected := `
# HELP qosroute_search_total Path searches by algorithm and outcome status.
# TYPE qosroute_search_total counter
qosroute_search_total{algorithm="dijkstra",status="found"} 1
qosroute_search_total{algorithm="genetic",status="no_path"} 1
# HELP qosroute_search_unreachable_total Searches answered by the reachability check without running an engine.
# TYPE qosroute_search_unreachable_total counter
qosroute_search_unreachable_total 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"qosroute_search_total", "qosroute_search_unreachable_total"))
	n, err := testutil.GatherAndCount(m.Registry(), "qosroute_search_path_hops")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `qosroute_api_requests_total{method="GET",path="/ping",status="200"} 1`)
}
