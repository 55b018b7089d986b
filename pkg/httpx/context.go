package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyClaims ctxKey = "claims" // full jwtx.Claims when the full set is needed
)

// UserIDFromCtx returns the authenticated user's id, if the auth gate ran.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyUserID).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
