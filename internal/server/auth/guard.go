// Package auth holds the authentication primitives of the server: password
// hashing, access token issuance/validation and the ownership guard.
package auth

import "github.com/dmitrijs2005/projecthub/internal/server/models"

// Action names an operation on an owned resource.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionDelete Action = "delete"
)

// Owned is implemented by resources that belong to a single user.
type Owned interface {
	Owner() int64
}

// Authorize reports whether principal may perform action on resource. Only
// the owner may act; every action follows the same rule.
func Authorize(resource Owned, principal *models.User, action Action) bool {
	if resource == nil || principal == nil {
		return false
	}
	switch action {
	case ActionCreate, ActionRead, ActionDelete:
		return resource.Owner() == principal.ID
	default:
		return false
	}
}
