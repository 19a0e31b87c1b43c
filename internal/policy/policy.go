// Package policy implements the row-level access rules for progress and
// classroom records. The same decision function runs at the service boundary
// and again inside every repository call, so a handler that forgets to scope a
// query still cannot leak another student's rows.
package policy

import (
	"strings"

	"github.com/classguard/classguard-api/internal/models"
)

// Action enumerates the operations the policy knows about.
type Action string

const (
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
)

// Identity is the authenticated principal attached to a request.
type Identity struct {
	ID   string
	Role string
}

// IsTeacher reports whether the identity carries the teacher role.
func (i Identity) IsTeacher() bool {
	return normalize(i.Role) == models.RoleTeacher
}

// Decision is the outcome of a policy evaluation.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow is the permissive decision.
var Allow = Decision{Allowed: true}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Decide evaluates the access matrix for an identity acting on a row owned by
// ownerID. Teachers may read and update every row. Students may read only rows
// they own and may never update. Unknown or missing roles are denied outright.
func Decide(identity Identity, action Action, ownerID string) Decision {
	if strings.TrimSpace(identity.ID) == "" {
		return deny("missing identity")
	}

	switch normalize(identity.Role) {
	case models.RoleTeacher:
		return Allow
	case models.RoleStudent:
		if action == ActionRead && identity.ID == ownerID {
			return Allow
		}
		if action == ActionUpdate {
			return deny("students may not modify records")
		}
		return deny("row belongs to another student")
	default:
		return deny("unknown role")
	}
}

// ReadScope returns the owner filter a read query must apply for the identity.
// Teachers see everything (empty scope); students are pinned to their own id.
func ReadScope(identity Identity) (ownerID string, restricted bool) {
	if identity.IsTeacher() {
		return "", false
	}
	return identity.ID, true
}

func normalize(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
