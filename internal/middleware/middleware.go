// Package middleware contains the HTTP middleware stack: CORS,
// request logging, panic recovery, request correlation ids, the
// request-scoped logger enhancer, the admin gate for unfiltered list
// access, and the global error funnel that maps every error to the
// JSON error envelope.
package middleware
