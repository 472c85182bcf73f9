package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"

	"github.com/shivanshrider/HROne-Backend-Intern-Hiring-Task/internal/config"
	"github.com/shivanshrider/HROne-Backend-Intern-Hiring-Task/internal/database"
	"github.com/shivanshrider/HROne-Backend-Intern-Hiring-Task/internal/models"
	"github.com/shivanshrider/HROne-Backend-Intern-Hiring-Task/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	client, err := database.NewConnection(&cfg.Mongo)
	if err != nil {
		log.Fatalf("Connect to mongodb: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Disconnect mongodb: %v", err)
		}
	}()

	log.Printf("Connected to mongodb successfully")

	db := client.Database(cfg.Mongo.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		cancel()
		log.Fatalf("Ensure indexes: %v", err)
	}
	cancel()

	products := store.NewProductStore(db)
	orders := store.NewOrderStore(db)
	composer := store.NewOrderComposer(products, orders)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)

	r.Get("/", handleRoot)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Post("/products", handleCreateProduct(products))
	r.Get("/products", handleListProducts(products))
	r.Post("/orders", handleCreateOrder(composer))
	r.Get("/orders/{user_id}", handleUserOrders(orders))

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func handleRoot(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Ecommerce API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"create_product":  "POST /products",
			"list_products":   "GET /products",
			"create_order":    "POST /orders",
			"get_user_orders": "GET /orders/{user_id}",
		},
	})
}

type createProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
	Brand       string  `json:"brand"`
	Stock       int     `json:"stock"`
}

func (r createProductRequest) validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.Category == "" {
		return errors.New("category is required")
	}
	if r.Size == "" {
		return errors.New("size is required")
	}
	if r.Color == "" {
		return errors.New("color is required")
	}
	if r.Brand == "" {
		return errors.New("brand is required")
	}
	if r.Price < 0 {
		return errors.New("price must not be negative")
	}
	if r.Stock < 0 {
		return errors.New("stock must not be negative")
	}
	return nil
}

func handleCreateProduct(products *store.ProductStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := req.validate(); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		product, err := products.Create(r.Context(), models.Product{
			Name:        req.Name,
			Description: req.Description,
			Price:       decimal.NewFromFloat(req.Price),
			Category:    req.Category,
			Size:        req.Size,
			Color:       req.Color,
			Brand:       req.Brand,
			Stock:       req.Stock,
		})
		if err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}

		respondJSON(w, http.StatusCreated, product)
	}
}

func handleListProducts(products *store.ProductStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := store.ProductFilter{
			Name: r.URL.Query().Get("name"),
			Size: r.URL.Query().Get("size"),
		}

		result, err := products.List(r.Context(), filter, listOptions(r))
		if err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

type createOrderRequest struct {
	UserID string `json:"user_id"`
	Items  []struct {
		ProductID string  `json:"product_id"`
		Quantity  int     `json:"quantity"`
		Price     float64 `json:"price"`
	} `json:"items"`
	ShippingAddress string `json:"shipping_address"`
	PaymentMethod   string `json:"payment_method"`
}

func handleCreateOrder(composer *store.OrderComposer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		items := make([]store.OrderItemRequest, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, store.OrderItemRequest{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: decimal.NewFromFloat(item.Price),
			})
		}

		composeReq := store.CreateOrderRequest{
			UserID:          req.UserID,
			Items:           items,
			ShippingAddress: req.ShippingAddress,
			PaymentMethod:   req.PaymentMethod,
		}
		if err := composeReq.Validate(); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		order, err := composer.CreateOrder(r.Context(), composeReq)
		if err != nil {
			if database.IsNotFound(err) {
				respondError(w, http.StatusNotFound, err.Error())
				return
			}
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}

		respondJSON(w, http.StatusCreated, order)
	}
}

func handleUserOrders(orders *store.OrderStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "user_id")
		if userID == "" {
			respondError(w, http.StatusBadRequest, "Missing user ID")
			return
		}

		result, err := orders.ListByUser(r.Context(), userID, listOptions(r))
		if err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

func listOptions(r *http.Request) store.ListOptions {
	limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	if err != nil {
		limit = store.DefaultLimit
	}
	offset, err := strconv.ParseInt(r.URL.Query().Get("offset"), 10, 64)
	if err != nil {
		offset = store.DefaultOffset
	}
	return store.ListOptions{Limit: limit, Offset: offset}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
