// Package api contains the HTTP handlers and the single boundary where
// service taxonomy errors are translated into outward status codes.
package api
