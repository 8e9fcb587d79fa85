package contextkeys

// contextKey is unexported to avoid collisions with other packages.
type contextKey string

// DBContextKey is the key under which middleware stores the *gorm.DB
// (connection pool, or a transaction in tests) for the current request.
const DBContextKey = contextKey("db")

// PrincipalContextKey is the key under which the auth middleware stores the
// verified principal for the current request.
const PrincipalContextKey = contextKey("principal")
