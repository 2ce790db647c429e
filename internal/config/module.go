package config

import (
	"github.com/foodloop/foodloop/internal/members"
	"github.com/foodloop/foodloop/pkg/badgerfx"
	"github.com/go-core-fx/fiberfx"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(New),
		fx.Provide(func(cfg Config) fiberfx.Config {
			return fiberfx.Config{
				Address:     cfg.HTTP.Address,
				ProxyHeader: cfg.HTTP.ProxyHeader,
				Proxies:     cfg.HTTP.Proxies,
			}
		}),
		fx.Provide(func(cfg Config) badgerfx.Config {
			return badgerfx.Config{
				Dir:      cfg.Storage.DataDir,
				InMemory: cfg.Storage.InMemory,
			}
		}),
		fx.Provide(func(cfg Config) members.Config {
			return members.Config{
				SecretKey:      []byte(cfg.Members.SecretKey),
				Issuer:         cfg.Members.Issuer,
				AccessTokenExp: cfg.Members.AccessTokenExp,
			}
		}),
	)
}
