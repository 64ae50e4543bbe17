// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated data from the handler, stamps server-assigned fields,
// performs business operations, and calls repository methods to
// interact with the data.
//
// Every store and gateway call is bounded by a timeout; a deadline
// that expires surfaces to the client as a TIMEOUT error rather than
// hanging the request.
package service

import "time"

const (
	// storeTimeout bounds every database round-trip.
	storeTimeout = 5 * time.Second

	// gatewayTimeout bounds calls to the external payment gateway,
	// which is slower and outside our control.
	gatewayTimeout = 10 * time.Second
)
