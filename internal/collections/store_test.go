package collections

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/foodloop/foodloop/internal/storage"
	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"
)

func newTestDB(t *testing.T) *badger.DB {
	t.Helper()

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestStore_CreateEchoesOnGet(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db, CollectionMarketplaceListings,
		func() *MarketplaceListing { return &MarketplaceListing{} }, zaptest.NewLogger(t))
	ctx := context.Background()

	created, err := store.Create(ctx, &MarketplaceListing{
		ListingTitle: "Spent coffee grounds",
		WasteType:    "Organic",
		Quantity:     120,
		PricePerUnit: 2.5,
		Location:     "Rotterdam",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if got.ListingTitle != "Spent coffee grounds" {
		t.Errorf("Expected listing title to round-trip, got '%s'", got.ListingTitle)
	}
	if got.Quantity != 120 || got.PricePerUnit != 2.5 {
		t.Errorf("Numeric fields not preserved: %+v", got)
	}
}

func TestStore_ListGrowsWithCreates(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db, CollectionRecyclers,
		func() *Recycler { return &Recycler{} }, zaptest.NewLogger(t))
	ctx := context.Background()

	for i, name := range []string{"GreenCycle", "ReFood", "CompostCo"} {
		if _, err := store.Create(ctx, &Recycler{RecyclerName: name}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		items, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(items) != i+1 {
			t.Errorf("Expected %d recyclers, got %d", i+1, len(items))
		}
	}
}

func TestStore_GetMissing(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db, CollectionHowItWorksSteps,
		func() *HowItWorksStep { return &HowItWorksStep{} }, zaptest.NewLogger(t))

	_, err := store.Get(context.Background(), uuid.New())
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected storage.ErrNotFound, got %v", err)
	}
}

func TestStore_ConcurrentCollections(t *testing.T) {
	db := newTestDB(t)
	logger := zaptest.NewLogger(t)
	steps := NewStore(db, CollectionHowItWorksSteps,
		func() *HowItWorksStep { return &HowItWorksStep{} }, logger)
	metrics := NewStore(db, CollectionImpactMetrics,
		func() *ImpactMetric { return &ImpactMetric{} }, logger)
	ctx := context.Background()

	for i := 1; i <= 4; i++ {
		if _, err := steps.Create(ctx, &HowItWorksStep{StepNumber: i}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	if _, err := metrics.Create(ctx, &ImpactMetric{MetricName: "Waste diverted"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	var (
		wg         sync.WaitGroup
		gotSteps   []*HowItWorksStep
		gotMetrics []*ImpactMetric
		errS, errM error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		gotSteps, errS = steps.List(ctx)
	}()
	go func() {
		defer wg.Done()
		gotMetrics, errM = metrics.List(ctx)
	}()
	wg.Wait()

	if errS != nil || errM != nil {
		t.Fatalf("Concurrent lists failed: %v, %v", errS, errM)
	}
	if len(gotSteps) != 4 {
		t.Errorf("Expected 4 steps, got %d", len(gotSteps))
	}
	if len(gotMetrics) != 1 {
		t.Errorf("Expected 1 metric, got %d", len(gotMetrics))
	}
}

func TestStore_UpdatePreservesIdentity(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db, CollectionSustainabilityServices,
		func() *SustainabilityService { return &SustainabilityService{} }, zaptest.NewLogger(t))
	ctx := context.Background()

	created, err := store.Create(ctx, &SustainabilityService{ServiceName: "Audit", ServiceType: "Consulting"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := store.Update(ctx, created.ID, func(s *SustainabilityService) error {
		s.ServiceName = "Waste audit"
		return nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.ID != created.ID {
		t.Error("Update must not change the ID")
	}
	if updated.ServiceName != "Waste audit" {
		t.Errorf("Expected updated name, got '%s'", updated.ServiceName)
	}
	if updated.ServiceType != "Consulting" {
		t.Errorf("Untouched field must survive, got '%s'", updated.ServiceType)
	}
}

func TestStore_DeleteThenCount(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db, CollectionMarketplaceOrders,
		func() *MarketplaceOrder { return &MarketplaceOrder{} }, zaptest.NewLogger(t))
	ctx := context.Background()

	created, err := store.Create(ctx, &MarketplaceOrder{OrderNumber: "ORD-001"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected empty collection, got %d", count)
	}
}
