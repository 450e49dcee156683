package server

import (
	"github.com/nfrund/authflow/internal/flow"
	"github.com/nfrund/authflow/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	auth := s.authHandler
	pages := s.pageHandler
	rateLimiter := middleware.RateLimiter(s.Cfg.GetRateLimit())

	s.E.GET("/", pages.Home)

	s.E.GET(flow.RouteSignUp, auth.SignUpGet)
	s.E.POST(flow.RouteSignUp, auth.SignUpPost, rateLimiter)

	s.E.GET(flow.RouteSignIn, auth.SignInGet)
	s.E.POST(flow.RouteSignIn, auth.SignInPost, rateLimiter)

	s.E.GET(flow.RouteForgotPassword, auth.ForgotPasswordGet)
	s.E.POST(flow.RouteForgotPassword, auth.ForgotPasswordPost, rateLimiter)

	s.E.GET(flow.RouteValidateEmail, auth.ValidateEmailGet)
	s.E.POST(flow.RouteValidateEmail, auth.ValidateEmailPost, rateLimiter)
	s.E.POST(flow.RouteResendCode, auth.ResendCodePost, rateLimiter)
	s.E.GET(flow.RouteCountdown, auth.CountdownWS, middleware.RequireHandoff(s.handoff))

	s.E.GET(flow.RouteResetPassword, auth.ResetPasswordGet)
	s.E.POST(flow.RouteResetPassword, auth.ResetPasswordPost, rateLimiter)
	s.E.POST(flow.RouteStrength, auth.StrengthPost)

	s.E.GET(flow.RouteTerms, pages.Terms)
	s.E.GET(flow.RoutePrivacy, pages.Privacy)

	s.E.GET("/health", pages.Health)
	s.E.GET("/metrics", s.metrics.Handler())

	s.E.RouteNotFound("/*", pages.NotFound)
}
