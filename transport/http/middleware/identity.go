package middleware

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"shareit/infras/otel"
	"shareit/shared/constant"
	"shareit/shared/failure"
	"shareit/transport/http/response"
)

// Identity resolves the calling user from the X-Sharer-User-Id header. The
// gateway in front of this service is trusted to have authenticated the
// caller; this service only needs to know who they are.
type Identity interface {
	RequireSharerID(http.Handler) http.Handler
}

type identityImpl struct {
	otel otel.Otel
}

func NewIdentityMiddleware(otel otel.Otel) Identity {
	return &identityImpl{otel: otel}
}

// RequireSharerID rejects requests without the sharer header and stores the
// user id in the request context for handlers to pick up.
func (i *identityImpl) RequireSharerID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(constant.RequestHeaderSharerUserID)
		if userID == "" {
			_, scope := i.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "identity.middleware")
			defer scope.End()

			err := failure.BadRequestFromString("missing " + constant.RequestHeaderSharerUserID + " header")
			scope.TraceError(err)
			log.Warn().Str("path", r.URL.Path).Msg("request without sharer user id header")

			response.WithError(w, err)

			return
		}

		ctx := context.WithValue(r.Context(), constant.ContextKeyUserID, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
