package collections

import (
	"github.com/dgraph-io/badger/v4"
	"github.com/foodloop/foodloop/internal/storage"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"collections",
		logger.WithNamedLogger("collections"),
		fx.Provide(
			provide[HowItWorksStep](CollectionHowItWorksSteps),
			provide[ImpactMetric](CollectionImpactMetrics),
			provide[MarketplaceListing](CollectionMarketplaceListings),
			provide[Recycler](CollectionRecyclers),
			provide[SustainabilityService](CollectionSustainabilityServices),
			provide[MarketplaceOrder](CollectionMarketplaceOrders),
			provide[RecyclerOrder](CollectionRecyclerOrders),
			provide[BlogPost](CollectionBlogPosts),
		),
	)
}

func provide[T any, PT interface {
	*T
	storage.Entity
}](name string) func(db *badger.DB, log *zap.Logger) *Store[PT] {
	return func(db *badger.DB, log *zap.Logger) *Store[PT] {
		return NewStore(db, name, func() PT { return PT(new(T)) }, log)
	}
}
