package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sawamura/stagepedia-backend/internal/domain"
	"github.com/sawamura/stagepedia-backend/pkg/ctxutil"
)

// Principals arrive pre-authenticated: the gateway in front of this service
// asserts identity and forwards it in X-Principal-ID. This middleware only
// resolves the id to its role and scope grants.
const principalHeader = "X-Principal-ID"

type principalResolver interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Principal, error)
}

type principalCtxKey struct{}

// Principal resolves the X-Principal-ID header into a full principal and
// attaches it to the request context. Requests without the header pass
// through anonymous; write handlers reject those themselves.
func Principal(resolver principalResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(principalHeader)
			if raw == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			id, err := uuid.Parse(raw)
			if err != nil {
				http.Error(w, "invalid principal id", http.StatusUnauthorized)
				return
			}

			p, err := resolver.GetByID(r.Context(), id)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					http.Error(w, "unknown principal", http.StatusUnauthorized)
					return
				}
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			ctx := WithPrincipal(r.Context(), p)
			ctx = ctxutil.WithPrincipalID(ctx, p.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithPrincipal returns a context carrying the resolved principal.
func WithPrincipal(ctx context.Context, p *domain.Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey{}, p)
}

// PrincipalFromCtx returns the resolved principal, or nil for anonymous
// requests.
func PrincipalFromCtx(ctx context.Context) *domain.Principal {
	p, _ := ctx.Value(principalCtxKey{}).(*domain.Principal)
	return p
}
