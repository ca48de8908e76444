// Package middleware provides HTTP middleware for the playlist builder service.
//
// It includes:
//   - Request logging in W3C Extended Log Format
//   - Prometheus request metrics with bounded path cardinality
//   - Configurable filtering of health checks and fixed paths
package middleware
