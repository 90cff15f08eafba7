package contracts

import "context"

// CapabilityChecker answers plan-tier questions. A limit of 0 means unlimited.
type CapabilityChecker interface {
	Plan() string
	CanWrite(ctx context.Context) bool
	ArenaLimit() int
	CategoryLimit() int
}
