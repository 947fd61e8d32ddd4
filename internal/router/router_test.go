package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-pizza-api/internal/database/testutil"
	"github.com/franciscosanchezn/gin-restaurant-pizza-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	db     *gorm.DB
	router *gin.Engine
}

// newFixture seeds Restaurant{1, Dough, Main St} and Pizza{1, Margherita, Tomato,Cheese}
func newFixture(t *testing.T) fixture {
	db := testutil.NewTestDB(t)
	testutil.CreateRestaurant(t, db, "Dough", "Main St")
	testutil.CreatePizza(t, db, "Margherita", "Tomato,Cheese")
	return fixture{db: db, router: New(db)}
}

func (f fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func TestIndex(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, "<h1>Code challenge</h1>", w.Body.String())
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "healthy", body["status"])
}

func TestGetRestaurants(t *testing.T) {
	f := newFixture(t)
	testutil.CreateRestaurantPizza(t, f.db, 1, 1, 10)

	w := f.do(t, http.MethodGet, "/restaurants", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `[{"id": 1, "name": "Dough", "address": "Main St"}]`, w.Body.String())
}

func TestGetRestaurantsEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	f := fixture{db: db, router: New(db)}

	w := f.do(t, http.MethodGet, "/restaurants", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetRestaurantByID(t *testing.T) {
	f := newFixture(t)
	testutil.CreateRestaurantPizza(t, f.db, 1, 1, 10)

	w := f.do(t, http.MethodGet, "/restaurants/1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"id": 1,
		"name": "Dough",
		"address": "Main St",
		"restaurant_pizzas": [{
			"id": 1,
			"price": 10,
			"pizza_id": 1,
			"restaurant_id": 1,
			"pizza": {"id": 1, "name": "Margherita", "ingredients": "Tomato,Cheese"},
			"restaurant": {"id": 1, "name": "Dough", "address": "Main St"}
		}]
	}`, w.Body.String())
}

func TestGetRestaurantByIDWithoutOfferings(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/restaurants/1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	decode(t, w, &body)
	assert.Equal(t, []interface{}{}, body["restaurant_pizzas"])
}

func TestGetRestaurantByIDNotFound(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/restaurants/999", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Restaurant not found"}`, w.Body.String())
}

func TestGetRestaurantByIDInvalidFormat(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/restaurants/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Invalid restaurant ID format"}`, w.Body.String())
}

func TestDeleteRestaurant(t *testing.T) {
	f := newFixture(t)
	testutil.CreateRestaurantPizza(t, f.db, 1, 1, 10)
	testutil.CreateRestaurantPizza(t, f.db, 1, 1, 20)

	w := f.do(t, http.MethodDelete, "/restaurants/1", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Zero(t, testutil.CountRestaurantPizzas(t, f.db))

	w = f.do(t, http.MethodGet, "/restaurants/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRestaurantNotFound(t *testing.T) {
	f := newFixture(t)
	testutil.CreateRestaurantPizza(t, f.db, 1, 1, 10)

	w := f.do(t, http.MethodDelete, "/restaurants/999", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Restaurant not found"}`, w.Body.String())
	assert.EqualValues(t, 1, testutil.CountRestaurantPizzas(t, f.db))

	w = f.do(t, http.MethodGet, "/restaurants", "")
	var restaurants []map[string]interface{}
	decode(t, w, &restaurants)
	assert.Len(t, restaurants, 1)
}

func TestGetPizzas(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/pizzas", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id": 1, "name": "Margherita", "ingredients": "Tomato,Cheese"}]`, w.Body.String())
}

func TestCreateRestaurantPizza(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/restaurant_pizzas", `{"price": 12, "pizza_id": 1, "restaurant_id": 1}`)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{
		"id": 1,
		"price": 12,
		"pizza_id": 1,
		"restaurant_id": 1,
		"pizza": {"id": 1, "name": "Margherita", "ingredients": "Tomato,Cheese"},
		"restaurant": {"id": 1, "name": "Dough", "address": "Main St"}
	}`, w.Body.String())

	// retrievable through the owning restaurant
	w = f.do(t, http.MethodGet, "/restaurants/1", "")
	var restaurant struct {
		RestaurantPizzas []struct {
			ID    uint `json:"id"`
			Price int  `json:"price"`
		} `json:"restaurant_pizzas"`
	}
	decode(t, w, &restaurant)
	require.Len(t, restaurant.RestaurantPizzas, 1)
	assert.Equal(t, 12, restaurant.RestaurantPizzas[0].Price)
}

func TestCreateRestaurantPizzaPriceBounds(t *testing.T) {
	for _, price := range []int{1, 30} {
		t.Run(fmt.Sprintf("price %d", price), func(t *testing.T) {
			f := newFixture(t)
			w := f.do(t, http.MethodPost, "/restaurant_pizzas", fmt.Sprintf(`{"price": %d, "pizza_id": 1, "restaurant_id": 1}`, price))
			assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		})
	}
}

func TestCreateRestaurantPizzaInvalidPrice(t *testing.T) {
	for _, price := range []int{0, 31, -5, 50} {
		t.Run(fmt.Sprintf("price %d", price), func(t *testing.T) {
			f := newFixture(t)

			w := f.do(t, http.MethodPost, "/restaurant_pizzas", fmt.Sprintf(`{"price": %d, "pizza_id": 1, "restaurant_id": 1}`, price))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"errors": ["price must be between 1 and 30"]}`, w.Body.String())
			assert.Zero(t, testutil.CountRestaurantPizzas(t, f.db))
		})
	}
}

func TestCreateRestaurantPizzaBadRequests(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		contains string
	}{
		{name: "missing price", body: `{"pizza_id": 1, "restaurant_id": 1}`, contains: "price is required"},
		{name: "missing pizza_id", body: `{"price": 10, "restaurant_id": 1}`, contains: "pizza_id is required"},
		{name: "missing restaurant_id", body: `{"price": 10, "pizza_id": 1}`, contains: "restaurant_id is required"},
		{name: "null price", body: `{"price": null, "pizza_id": 1, "restaurant_id": 1}`, contains: "price is required"},
		{name: "zero pizza_id", body: `{"price": 10, "pizza_id": 0, "restaurant_id": 1}`, contains: "pizza_id must be at least 1"},
		{name: "string price", body: `{"price": "ten", "pizza_id": 1, "restaurant_id": 1}`, contains: "price must be an integer"},
		{name: "fractional price", body: `{"price": 12.5, "pizza_id": 1, "restaurant_id": 1}`, contains: "price must be an integer"},
		{name: "malformed json", body: `{"price": 10,`, contains: "Malformed request body"},
		{name: "not an object", body: `[1, 2, 3]`, contains: "Malformed request body"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			w := f.do(t, http.MethodPost, "/restaurant_pizzas", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var body struct {
				Errors []string `json:"errors"`
			}
			decode(t, w, &body)
			assert.Contains(t, strings.Join(body.Errors, "|"), tt.contains)
			assert.Zero(t, testutil.CountRestaurantPizzas(t, f.db))
		})
	}
}

func TestCreateRestaurantPizzaMissingParents(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "unknown pizza", body: `{"price": 10, "pizza_id": 999, "restaurant_id": 1}`, expected: `{"errors": ["Pizza not found"]}`},
		{name: "unknown restaurant", body: `{"price": 10, "pizza_id": 1, "restaurant_id": 999}`, expected: `{"errors": ["Restaurant not found"]}`},
		{name: "unknown both", body: `{"price": 10, "pizza_id": 998, "restaurant_id": 999}`, expected: `{"errors": ["Pizza not found", "Restaurant not found"]}`},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			w := f.do(t, http.MethodPost, "/restaurant_pizzas", tt.body)

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.JSONEq(t, tt.expected, w.Body.String())
			assert.Zero(t, testutil.CountRestaurantPizzas(t, f.db))
		})
	}
}

func TestValidationPrecedesExistenceChecks(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/restaurant_pizzas", `{"price": 50, "pizza_id": 999, "restaurant_id": 999}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStorageFailureIsInternalError(t *testing.T) {
	f := newFixture(t)
	sqlDB, err := f.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w := f.do(t, http.MethodGet, "/pizzas", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "Internal server error"}`, w.Body.String())
}

func TestResponsesCarryRequestID(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/pizzas", "")

	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)
	f.do(t, http.MethodGet, "/pizzas", "")

	w := f.do(t, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `pizza_api_http_requests_total{endpoint="/pizzas",method="GET",status_code="200"} 1`)
}
