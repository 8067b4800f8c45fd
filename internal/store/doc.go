// Package store provides abstractions and error sentinels for data
// persistence. Implementations live under internal/platform.
package store
