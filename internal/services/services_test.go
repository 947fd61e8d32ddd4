package services

import (
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-pizza-api/internal/database/testutil"
	"github.com/franciscosanchezn/gin-restaurant-pizza-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantServiceGetAll(t *testing.T) {
	db := testutil.NewTestDB(t)
	service := NewRestaurantService(db)

	restaurants, err := service.GetAllRestaurants()
	require.NoError(t, err)
	assert.NotNil(t, restaurants)
	assert.Empty(t, restaurants)

	testutil.CreateRestaurant(t, db, "Dough", "Main St")
	testutil.CreateRestaurant(t, db, "Crust", "Second St")

	restaurants, err = service.GetAllRestaurants()
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, "Dough", restaurants[0].Name)
	assert.Equal(t, "Crust", restaurants[1].Name)
}

func TestRestaurantServiceGetByIDPreloadsOfferings(t *testing.T) {
	db := testutil.NewTestDB(t)
	service := NewRestaurantService(db)
	restaurant := testutil.CreateRestaurant(t, db, "Dough", "Main St")
	margherita := testutil.CreatePizza(t, db, "Margherita", "Tomato,Cheese")
	pepperoni := testutil.CreatePizza(t, db, "Pepperoni", "Tomato,Cheese,Pepperoni")
	testutil.CreateRestaurantPizza(t, db, restaurant.ID, margherita.ID, 10)
	testutil.CreateRestaurantPizza(t, db, restaurant.ID, pepperoni.ID, 14)

	found, err := service.GetRestaurantByID(restaurant.ID)
	require.NoError(t, err)
	require.Len(t, found.RestaurantPizzas, 2)
	require.NotNil(t, found.RestaurantPizzas[0].Pizza)
	assert.Equal(t, "Margherita", found.RestaurantPizzas[0].Pizza.Name)
	assert.Equal(t, "Pepperoni", found.RestaurantPizzas[1].Pizza.Name)
}

func TestRestaurantServiceGetByIDNotFound(t *testing.T) {
	service := NewRestaurantService(testutil.NewTestDB(t))

	_, err := service.GetRestaurantByID(999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRestaurantServiceDeleteCascades(t *testing.T) {
	db := testutil.NewTestDB(t)
	service := NewRestaurantService(db)
	restaurant := testutil.CreateRestaurant(t, db, "Dough", "Main St")
	other := testutil.CreateRestaurant(t, db, "Crust", "Second St")
	pizza := testutil.CreatePizza(t, db, "Margherita", "Tomato,Cheese")
	testutil.CreateRestaurantPizza(t, db, restaurant.ID, pizza.ID, 10)
	testutil.CreateRestaurantPizza(t, db, restaurant.ID, pizza.ID, 11)
	testutil.CreateRestaurantPizza(t, db, other.ID, pizza.ID, 12)

	require.NoError(t, service.DeleteRestaurant(restaurant.ID))

	_, err := service.GetRestaurantByID(restaurant.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.EqualValues(t, 1, testutil.CountRestaurantPizzas(t, db))

	// the pizza itself is only referenced, never owned
	_, err = NewPizzaService(db).GetPizzaByID(pizza.ID)
	assert.NoError(t, err)
}

func TestRestaurantServiceDeleteNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	service := NewRestaurantService(db)
	testutil.CreateRestaurant(t, db, "Dough", "Main St")

	err := service.DeleteRestaurant(999)
	assert.ErrorIs(t, err, models.ErrNotFound)

	restaurants, err := service.GetAllRestaurants()
	require.NoError(t, err)
	assert.Len(t, restaurants, 1)
}

func TestPizzaService(t *testing.T) {
	db := testutil.NewTestDB(t)
	service := NewPizzaService(db)

	created, err := service.CreatePizza(models.Pizza{Name: "Margherita", Ingredients: "Tomato,Cheese"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	pizzas, err := service.GetAllPizzas()
	require.NoError(t, err)
	require.Len(t, pizzas, 1)
	assert.Equal(t, "Tomato,Cheese", pizzas[0].Ingredients)

	_, err = service.GetPizzaByID(created.ID + 1)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreateRestaurantPizza(t *testing.T) {
	db := testutil.NewTestDB(t)
	service := NewRestaurantPizzaService(db)
	restaurant := testutil.CreateRestaurant(t, db, "Dough", "Main St")
	pizza := testutil.CreatePizza(t, db, "Margherita", "Tomato,Cheese")

	created, err := service.CreateRestaurantPizza(models.RestaurantPizza{Price: 12, RestaurantID: restaurant.ID, PizzaID: pizza.ID})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	require.NotNil(t, created.Pizza)
	require.NotNil(t, created.Restaurant)
	assert.Equal(t, "Margherita", created.Pizza.Name)
	assert.Equal(t, "Dough", created.Restaurant.Name)

	// duplicates of the same pairing are allowed
	_, err = service.CreateRestaurantPizza(models.RestaurantPizza{Price: 15, RestaurantID: restaurant.ID, PizzaID: pizza.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, testutil.CountRestaurantPizzas(t, db))
}

func TestCreateRestaurantPizzaRejectsInvalidPrice(t *testing.T) {
	db := testutil.NewTestDB(t)
	service := NewRestaurantPizzaService(db)
	restaurant := testutil.CreateRestaurant(t, db, "Dough", "Main St")
	pizza := testutil.CreatePizza(t, db, "Margherita", "Tomato,Cheese")

	for _, price := range []int{0, 31, -5} {
		_, err := service.CreateRestaurantPizza(models.RestaurantPizza{Price: price, RestaurantID: restaurant.ID, PizzaID: pizza.ID})
		var validationErr *models.ValidationError
		assert.ErrorAs(t, err, &validationErr, "price %d", price)
	}
	assert.Zero(t, testutil.CountRestaurantPizzas(t, db))
}

func TestCreateRestaurantPizzaMissingParents(t *testing.T) {
	db := testutil.NewTestDB(t)
	service := NewRestaurantPizzaService(db)
	restaurant := testutil.CreateRestaurant(t, db, "Dough", "Main St")
	pizza := testutil.CreatePizza(t, db, "Margherita", "Tomato,Cheese")

	testCases := []struct {
		name         string
		restaurantID uint
		pizzaID      uint
		missing      []string
	}{
		{name: "missing restaurant", restaurantID: 999, pizzaID: pizza.ID, missing: []string{"Restaurant"}},
		{name: "missing pizza", restaurantID: restaurant.ID, pizzaID: 999, missing: []string{"Pizza"}},
		{name: "missing both", restaurantID: 999, pizzaID: 999, missing: []string{"Pizza", "Restaurant"}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateRestaurantPizza(models.RestaurantPizza{Price: 10, RestaurantID: tt.restaurantID, PizzaID: tt.pizzaID})

			var notFound *models.NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.missing, notFound.Resources)
		})
	}
	assert.Zero(t, testutil.CountRestaurantPizzas(t, db))
}
