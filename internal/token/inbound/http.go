package inbound

import (
	"context"

	"github.com/shandysiswandi/simpleauth/internal/pkg/router"
	"github.com/shandysiswandi/simpleauth/internal/token/usecase"
)

type uc interface {
	Generate(ctx context.Context, in usecase.GenerateInput) (*usecase.GenerateOutput, error)
	Auth(ctx context.Context) (*usecase.AuthOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/generate", end.Generate)
	r.GET("/auth", end.Auth) // need authenticated
}
