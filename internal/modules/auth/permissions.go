package auth

// Permission decides whether a caller may use an endpoint. A nil principal
// means the request is unauthenticated.
type Permission func(p *Principal) bool

func Authenticated(p *Principal) bool { return p != nil }

func IsAdminOrManager(p *Principal) bool { return p.IsAdmin() || p.IsManager() }

func IsAdmin(p *Principal) bool { return p.IsAdmin() }

func IsManager(p *Principal) bool { return p.IsManager() }
