// Package api serves path queries over HTTP.
//
// Routes:
//
//	POST /api/v1/route    run one algorithm
//	POST /api/v1/compare  run every algorithm on the same query
//	GET  /api/v1/graph    size and bandwidth range of the loaded network
//	GET  /health          liveness
//	GET  /metrics         Prometheus exposition (when metrics are enabled)
//
// A search that finds nothing is still a 200 response; its status field is
// "no_path" or "partial". Invalid queries get 400 with an error body.
package api
