package core

import "context"

type requestMetaKey struct{}

// RequestMeta 由 middleware 放進 request context，供 store audit 使用
type RequestMeta struct {
	RequestID string
	Actor     string
}

func WithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

func RequestMetaFrom(ctx context.Context) RequestMeta {
	meta, _ := ctx.Value(requestMetaKey{}).(RequestMeta)
	return meta
}
