// Package domain defines the core business entities and their invariants.
package domain
