package listings

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/foodloop/foodloop/internal/collections"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := collections.NewStore(db, collections.CollectionMarketplaceListings,
		func() *collections.MarketplaceListing { return &collections.MarketplaceListing{} },
		zaptest.NewLogger(t))

	app := fiber.New()
	h := &Handler{
		listings:  store,
		validator: validator.New(),
		logger:    zaptest.NewLogger(t),
	}
	h.Register(app)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}

	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Failed to decode %s: %v", string(data), err)
	}

	return out
}

func TestHandler_CreateAndGet(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/listings",
		`{"listingTitle":"Spent grain","wasteType":"Organic","quantity":100,"pricePerUnit":5,"location":"Utrecht"}`)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}

	created := decode[ListingResponse](t, resp)
	if created.ID == uuid.Nil {
		t.Fatal("Expected a generated ID")
	}
	if created.TotalValue != "500.00" {
		t.Errorf("Expected total value '500.00', got '%s'", created.TotalValue)
	}

	resp = doJSON(t, app, fiber.MethodGet, "/listings/"+created.ID.String(), "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	got := decode[ListingResponse](t, resp)
	if got.ListingTitle != "Spent grain" {
		t.Errorf("Expected title to round-trip, got '%s'", got.ListingTitle)
	}
}

func TestHandler_CreateWithClientID(t *testing.T) {
	app := newTestApp(t)
	id := uuid.NewString()

	resp := doJSON(t, app, fiber.MethodPost, "/listings",
		`{"id":"`+id+`","listingTitle":"Bread returns"}`)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}

	created := decode[ListingResponse](t, resp)
	if created.ID.String() != id {
		t.Errorf("Expected client-supplied ID %s, got %s", id, created.ID)
	}

	// Reusing the identifier conflicts
	resp = doJSON(t, app, fiber.MethodPost, "/listings",
		`{"id":"`+id+`","listingTitle":"Duplicate"}`)
	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("Expected 409, got %d", resp.StatusCode)
	}
}

func TestHandler_GetMissing(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/listings/"+uuid.NewString(), "")
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Expected 404, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, fiber.MethodGet, "/listings/not-a-uuid", "")
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected 400, got %d", resp.StatusCode)
	}
}

func TestHandler_ListFilters(t *testing.T) {
	app := newTestApp(t)

	for _, body := range []string{
		`{"listingTitle":"Spent coffee grounds","wasteType":"Organic","location":"Rotterdam"}`,
		`{"listingTitle":"Cardboard boxes","wasteType":"Paper","location":"Amsterdam"}`,
		`{"listingTitle":"Fruit pulp","wasteType":"Organic","location":"Utrecht"}`,
	} {
		if resp := doJSON(t, app, fiber.MethodPost, "/listings", body); resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("Expected 201, got %d", resp.StatusCode)
		}
	}

	cases := []struct {
		name   string
		target string
		count  int
	}{
		{"no filters", "/listings", 3},
		{"all sentinel", "/listings?wasteType=all", 3},
		{"waste type", "/listings?wasteType=Organic", 2},
		{"search", "/listings?q=coffee", 1},
		{"search case-insensitive", "/listings?q=COFFEE", 1},
		{"combined", "/listings?wasteType=Organic&location=Utrecht", 1},
		{"no match", "/listings?wasteType=Metal", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, fiber.MethodGet, tc.target, "")
			if resp.StatusCode != fiber.StatusOK {
				t.Fatalf("Expected 200, got %d", resp.StatusCode)
			}

			got := decode[ListResponse](t, resp)
			if len(got.Items) != tc.count {
				t.Errorf("Expected %d items, got %d", tc.count, len(got.Items))
			}
		})
	}
}

func TestHandler_Facets(t *testing.T) {
	app := newTestApp(t)

	for _, body := range []string{
		`{"listingTitle":"A","wasteType":"Organic","location":"Rotterdam"}`,
		`{"listingTitle":"B","wasteType":"Organic","location":"Amsterdam"}`,
		`{"listingTitle":"C","wasteType":"Paper"}`,
	} {
		if resp := doJSON(t, app, fiber.MethodPost, "/listings", body); resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("Expected 201, got %d", resp.StatusCode)
		}
	}

	resp := doJSON(t, app, fiber.MethodGet, "/listings/facets", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	facets := decode[FacetsResponse](t, resp)
	if len(facets.WasteTypes) != 2 {
		t.Errorf("Expected 2 waste types, got %v", facets.WasteTypes)
	}
	// Empty location excluded
	if len(facets.Locations) != 2 {
		t.Errorf("Expected 2 locations, got %v", facets.Locations)
	}
}

func TestHandler_Inquiry(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/listings",
		`{"listingTitle":"Spent grain","wasteType":"Organic","quantity":10,"unitOfMeasure":"kg","pricePerUnit":2.5,"location":"Utrecht"}`)
	created := decode[ListingResponse](t, resp)

	resp = doJSON(t, app, fiber.MethodGet, "/listings/"+created.ID.String()+"/inquiry", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	inquiry := decode[InquiryResponse](t, resp)
	if !strings.Contains(inquiry.Subject, "Spent grain") {
		t.Errorf("Expected subject to mention the listing, got '%s'", inquiry.Subject)
	}
	if !strings.Contains(inquiry.Body, "25.00") {
		t.Errorf("Expected body to carry the total value, got '%s'", inquiry.Body)
	}
	if !strings.HasPrefix(inquiry.MailtoURL, "mailto:") {
		t.Errorf("Expected a mailto URL, got '%s'", inquiry.MailtoURL)
	}
	if strings.Contains(inquiry.MailtoURL, "+") {
		t.Error("Mailto URL must not contain '+' escapes")
	}
}

func TestHandler_UpdateAndDelete(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/listings",
		`{"listingTitle":"Before","quantity":1,"pricePerUnit":1}`)
	created := decode[ListingResponse](t, resp)

	resp = doJSON(t, app, fiber.MethodPatch, "/listings/"+created.ID.String(),
		`{"listingTitle":"After","pricePerUnit":3}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	updated := decode[ListingResponse](t, resp)
	if updated.ListingTitle != "After" {
		t.Errorf("Expected updated title, got '%s'", updated.ListingTitle)
	}
	if updated.Quantity != 1 {
		t.Errorf("Untouched field must survive, got %v", updated.Quantity)
	}
	if updated.TotalValue != "3.00" {
		t.Errorf("Expected recomputed total '3.00', got '%s'", updated.TotalValue)
	}

	resp = doJSON(t, app, fiber.MethodDelete, "/listings/"+created.ID.String(), "")
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("Expected 204, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, fiber.MethodGet, "/listings/"+created.ID.String(), "")
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", resp.StatusCode)
	}
}
