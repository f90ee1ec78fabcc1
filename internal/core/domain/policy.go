package domain

// Action identifies a protected operation checked against the capability table.
type Action string

const (
	ActionOrderUpdateStatus Action = "order.update_status"
	ActionOrderAssign       Action = "order.assign"
	ActionOrderDelete       Action = "order.delete"
	ActionUserDelete        Action = "user.delete"
)

// capability lists the roles allowed to perform an action and whether the
// resource owner is allowed regardless of role.
type capability struct {
	roles        map[Role]struct{}
	ownerAllowed bool
}

func roleSet(roles ...Role) map[Role]struct{} {
	m := make(map[Role]struct{}, len(roles))
	for _, r := range roles {
		m[r] = struct{}{}
	}
	return m
}

// capabilities is the single source of truth for role-based access. Every
// protected mutation consults this table instead of scattering role checks
// per endpoint.
var capabilities = map[Action]capability{
	ActionOrderUpdateStatus: {roles: roleSet(RoleCourier, RoleAdmin)},
	ActionOrderAssign:       {roles: roleSet(RoleCourier)},
	ActionOrderDelete:       {roles: roleSet(RoleAdmin), ownerAllowed: true},
	ActionUserDelete:        {roles: roleSet(RoleAdmin), ownerAllowed: true},
}

// Authorize decides whether p may perform action on a resource owned by
// ownerID. Pass an empty ownerID when the action has no ownership dimension.
// It is a pure function of its inputs and returns ErrForbidden on deny.
func Authorize(p Principal, action Action, ownerID string) error {
	c, ok := capabilities[action]
	if !ok {
		return ErrForbidden
	}
	if c.ownerAllowed && ownerID != "" && p.UserID == ownerID {
		return nil
	}
	if _, ok := c.roles[p.Role]; ok {
		return nil
	}
	return ErrForbidden
}
