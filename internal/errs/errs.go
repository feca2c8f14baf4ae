// Package errs defines HTTPError, the one error type that reaches API
// clients, and constructors for every status the API returns.
package errs
