package integration

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shivanshrider/HROne-Backend-Intern-Hiring-Task/internal/database"
	"github.com/shivanshrider/HROne-Backend-Intern-Hiring-Task/internal/models"
	"github.com/shivanshrider/HROne-Backend-Intern-Hiring-Task/internal/store"
)

func newProduct(name, size string, priceStr string) models.Product {
	return models.Product{
		Name:        name,
		Description: "integration test product",
		Price:       decimal.RequireFromString(priceStr),
		Category:    "Electronics",
		Size:        size,
		Color:       "Black",
		Brand:       "TestBrand",
		Stock:       10,
	}
}

func TestCreateAndListProduct(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	products := store.NewProductStore(db)

	created, err := products.Create(ctx, newProduct("Test Product", "large", "99.99"))
	if err != nil {
		t.Fatalf("Create product: %v", err)
	}
	if created.ID == "" {
		t.Fatal("Expected a generated product ID")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set on creation")
	}

	second, err := products.Create(ctx, newProduct("Another Product", "small", "10.00"))
	if err != nil {
		t.Fatalf("Create second product: %v", err)
	}
	if second.ID == created.ID {
		t.Errorf("Expected distinct IDs, both were %s", created.ID)
	}

	list, err := products.List(ctx, store.ProductFilter{}, store.ListOptions{})
	if err != nil {
		t.Fatalf("List products: %v", err)
	}

	count := 0
	for _, p := range list {
		if p.ID == created.ID {
			count++
			if !p.Price.Equal(decimal.RequireFromString("99.99")) {
				t.Errorf("Expected price 99.99, got %s", p.Price)
			}
		}
	}
	if count != 1 {
		t.Errorf("Expected created product exactly once in listing, got %d", count)
	}
}

func TestGetProduct(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	products := store.NewProductStore(db)

	created, err := products.Create(ctx, newProduct("Fetch Me", "medium", "42.00"))
	if err != nil {
		t.Fatalf("Create product: %v", err)
	}

	got, err := products.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get product: %v", err)
	}
	if got.Name != "Fetch Me" {
		t.Errorf("Expected name %q, got %q", "Fetch Me", got.Name)
	}

	_, err = products.Get(ctx, "64b000000000000000000000")
	if !database.IsNotFound(err) {
		t.Errorf("Expected not found for unknown id, got: %v", err)
	}

	_, err = products.Get(ctx, "not-a-hex-id")
	if !database.IsNotFound(err) {
		t.Errorf("Expected not found for malformed id, got: %v", err)
	}
}

func TestListProductFilters(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	products := store.NewProductStore(db)

	seed := []models.Product{
		newProduct("Test Product", "large", "99.99"),
		newProduct("Blue Jacket", "large", "150.00"),
		newProduct("test hoodie", "small", "35.00"),
	}
	for _, p := range seed {
		if _, err := products.Create(ctx, p); err != nil {
			t.Fatalf("Create product %q: %v", p.Name, err)
		}
	}

	bySize, err := products.List(ctx, store.ProductFilter{Size: "large"}, store.ListOptions{})
	if err != nil {
		t.Fatalf("List by size: %v", err)
	}
	if len(bySize) != 2 {
		t.Errorf("Expected 2 large products, got %d", len(bySize))
	}
	for _, p := range bySize {
		if p.Size != "large" {
			t.Errorf("Size filter returned product with size %q", p.Size)
		}
	}

	// Substring match is case-insensitive: "TEST" hits both "Test Product"
	// and "test hoodie".
	byName, err := products.List(ctx, store.ProductFilter{Name: "TEST"}, store.ListOptions{})
	if err != nil {
		t.Fatalf("List by name: %v", err)
	}
	if len(byName) != 2 {
		t.Errorf("Expected 2 name matches, got %d", len(byName))
	}

	both, err := products.List(ctx, store.ProductFilter{Name: "test", Size: "large"}, store.ListOptions{})
	if err != nil {
		t.Fatalf("List by name and size: %v", err)
	}
	if len(both) != 1 || both[0].Name != "Test Product" {
		t.Errorf("Expected only Test Product for combined filter, got %v", both)
	}
}

func TestListProductsPagination(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	products := store.NewProductStore(db)

	names := []string{"first", "second", "third", "fourth", "fifth"}
	for _, name := range names {
		if _, err := products.Create(ctx, newProduct(name, "medium", "5.00")); err != nil {
			t.Fatalf("Create product %q: %v", name, err)
		}
	}

	page1, err := products.List(ctx, store.ProductFilter{}, store.ListOptions{Limit: 2, Offset: 0})
	if err != nil {
		t.Fatalf("List page 1: %v", err)
	}
	if len(page1) != 2 {
		t.Fatalf("Expected 2 products on page 1, got %d", len(page1))
	}
	// Newest first.
	if page1[0].Name != "fifth" || page1[1].Name != "fourth" {
		t.Errorf("Expected [fifth fourth], got [%s %s]", page1[0].Name, page1[1].Name)
	}

	page2, err := products.List(ctx, store.ProductFilter{}, store.ListOptions{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("List page 2: %v", err)
	}
	if len(page2) != 2 || page2[0].Name != "third" || page2[1].Name != "second" {
		t.Errorf("Expected [third second], got %v", page2)
	}

	empty, err := products.List(ctx, store.ProductFilter{}, store.ListOptions{Limit: 2, Offset: 10})
	if err != nil {
		t.Fatalf("List past the end: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected empty page past the end, got %d items", len(empty))
	}
	if empty == nil {
		t.Error("Expected an empty slice, not nil")
	}
}
