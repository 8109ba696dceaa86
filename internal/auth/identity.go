package auth

import "context"

// RoleAdmin is the only role the storefront acts on: admins may mutate
// categories, everyone else gets read access.
const RoleAdmin = "ADMIN"

// Identity is what the authentication collaborator hands the service: an
// opaque user id plus the roles the token carries. The service trusts it and
// never re-validates credentials.
type Identity struct {
	UserID int
	Roles  []string
}

func (id Identity) HasRole(role string) bool {
	for _, r := range id.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (id Identity) IsAdmin() bool {
	return id.HasRole(RoleAdmin)
}

type contextKey struct{}

// WithIdentity returns a context carrying the authenticated identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext extracts the authenticated identity, if any.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}
