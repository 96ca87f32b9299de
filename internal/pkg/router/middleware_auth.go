package router

import (
	"net/http"
	"strings"

	"github.com/shandysiswandi/simpleauth/internal/pkg/goerror"
	"github.com/shandysiswandi/simpleauth/internal/pkg/jwt"
)

const bearerPrefix = "Bearer "

// bearerToken extracts the token following a case-sensitive "Bearer " prefix.
// Anything after the first space-separated segment is ignored.
func bearerToken(header string) (string, bool) {
	rest, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return "", false
	}

	token, _, _ := strings.Cut(rest, " ")
	return token, true
}

func middlewareAuthentication(verifier jwt.JWT, publicEndpoints map[string]map[string]struct{}) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := matchedRoutePath(r)

			if s, ok := publicEndpoints[r.Method]; ok {
				if _, skip := s[path]; skip {
					next.ServeHTTP(w, r)
					return
				}
			}

			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				writeJSON(w, errorResponse{Msg: "Missing Authorization header"}, http.StatusUnauthorized)
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				gerr := goerror.NewUnauthorized(err)
				if setter, ok := w.(interface{ SetError(error) }); ok {
					setter.SetError(gerr)
				}
				writeJSON(w, errorResponse{Msg: err.Error()}, http.StatusUnauthorized)
				return
			}

			ctx := jwt.SetAuth(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
