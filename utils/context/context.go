package context

import (
	"context"

	"github.com/td051191/MinhPhat/constant"
)

// GetUserID returns the authenticated admin id stored by the auth middleware.
func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

// WithUserID embeds the authenticated admin id into the request context.
func WithUserID(ctx context.Context, id uint64) context.Context {
	return context.WithValue(ctx, constant.UserIDKey, id)
}
