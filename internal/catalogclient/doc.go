// Package catalogclient talks to the remote product catalog REST API.
//
// Two read operations are exposed through the Client interface:
//
//   - ListByCategory: GET {base}/products/category/{key}, body {"products": [...]}
//   - GetByID:        GET {base}/products/{id}, body is a single product
//
// Every failure is reported as ErrFetchFailed (transport, timeout, non-2xx
// status, undecodable body). A 404 is reported as ErrNotFound, which also
// matches ErrFetchFailed. Requests are throttled client-side and, when a
// Metrics value is supplied, counted and timed per operation.
package catalogclient
