package inbound

import (
	"github.com/shandysiswandi/simpleauth/internal/pkg/router"
	"github.com/shandysiswandi/simpleauth/internal/token/usecase"
)

// HTTPEndpoint exposes HTTP handlers for token issuance and verification.
type HTTPEndpoint struct {
	uc uc
}

// Generate signs the request body as token claims.
// @Summary Issue token
// @Description Signs any JSON object, adding the server timestamp and issuer claims.
// @Tags Token
// @Accept json
// @Produce json
// @Param request body object false "Arbitrary claims"
// @Success 200 {object} GenerateResponse "Signed token"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /generate [post]
func (h *HTTPEndpoint) Generate(r *router.Request) (any, error) {
	payload, err := r.DecodeObject()
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.Generate(r.Context(), usecase.GenerateInput{Payload: payload})
	if err != nil {
		return nil, err
	}

	return GenerateResponse{Token: resp.Token}, nil
}

// Auth reports success for a request whose bearer token verified.
// @Summary Verify token
// @Description Checks the bearer token signature and issuer.
// @Tags Token
// @Produce json
// @Success 200 {object} AuthResponse "Token is valid"
// @Failure 401 {object} router.errorResponse "Missing Authorization header"
// @Router /auth [get]
// @Security BearerAuth
func (h *HTTPEndpoint) Auth(r *router.Request) (any, error) {
	if _, err := h.uc.Auth(r.Context()); err != nil {
		return nil, err
	}

	return AuthResponse{Result: "success"}, nil
}
