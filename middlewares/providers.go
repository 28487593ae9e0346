package middlewares

import (
	"github.com/l3montree-dev/pentestpro/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(fx.Annotate(NewLoginRateLimiter, fx.As(new(shared.RateLimiter)))),
)
