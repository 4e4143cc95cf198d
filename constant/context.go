package constant

type ContextKey string

// UserIDKey carries the authenticated admin user id through request context.
const UserIDKey ContextKey = "user_id"
