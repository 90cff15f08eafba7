package capability

import (
	"arena-scheduler-service/internal/app/contracts"
	"arena-scheduler-service/internal/pkg/constvars"
	"context"
	"strings"
)

type planCapability struct {
	plan string
}

// NewPlanCapability maps a plan name to write access and list limits.
// Unknown plans are treated as free.
func NewPlanCapability(plan string) contracts.CapabilityChecker {
	normalized := strings.ToLower(strings.TrimSpace(plan))
	switch normalized {
	case constvars.PlanPaid, constvars.PlanReadOnly:
	default:
		normalized = constvars.PlanFree
	}
	return &planCapability{plan: normalized}
}

func (c *planCapability) Plan() string {
	return c.plan
}

func (c *planCapability) CanWrite(ctx context.Context) bool {
	return c.plan != constvars.PlanReadOnly
}

func (c *planCapability) ArenaLimit() int {
	if c.plan == constvars.PlanFree {
		return constvars.FreePlanArenaLimit
	}
	return 0
}

func (c *planCapability) CategoryLimit() int {
	if c.plan == constvars.PlanFree {
		return constvars.FreePlanCategoryLimit
	}
	return 0
}
