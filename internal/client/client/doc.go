// Package client issues CRUD requests against the remote record store.
//
// The store is a json-server-style collection API: it assigns ids,
// filters and sorts via query parameters, and performs no validation or
// authorization of its own. This package only translates operations to
// HTTP and maps failures into the client error taxonomy; ownership
// policy lives one layer up, in services.
package client
