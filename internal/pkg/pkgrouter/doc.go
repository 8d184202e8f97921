// Package pkgrouter wraps HTTP routing and common middleware used by the API.
//
// It provides a small router abstraction over httprouter plus shared concerns
// like JSON encoding, error mapping, logging, recovery, and correlation ID
// propagation. Endpoints that stream raw bytes (file downloads) register plain
// http.Handler values via Handle instead of the JSON Handler signature.
package pkgrouter
