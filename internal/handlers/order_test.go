package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodhub_back_end/internal/middleware"
	"foodhub_back_end/internal/models"
	"foodhub_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Insert(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) SendOrderConfirmation(data utils.OrderEmail) error {
	args := m.Called(data)
	return args.Error(0)
}

// --- Helpers ---

func orderRouter(orders *MockOrderRepository, mailer *MockMailSender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewOrderHandler(orders, mailer)
	r := gin.New()
	r.GET("/orders", middleware.AuthRequired(), handler.GetMyOrders)
	r.POST("/orders", middleware.AuthRequired(), handler.CreateOrder)
	return r
}

func authedRequest(t *testing.T, method, path, payload string) *http.Request {
	t.Helper()
	token, err := utils.GenerateToken(utils.TokenPayload{
		UserID: "user-1", Email: "a@b.com", Name: "Alice",
	})
	require.NoError(t, err)

	req, _ := http.NewRequest(method, path, bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	return req
}

const validOrderPayload = `{
	"items": [
		{"foodId": "food-1", "name": "Margherita Pizza", "price": 12.99, "quantity": 2, "image": "pizza.jpg"},
		{"foodId": "food-2", "name": "Classic Burger", "price": 9.99, "quantity": 1, "image": "burger.jpg"}
	],
	"totalPrice": 35.97
}`

// --- Tests ---

func TestCreateOrder(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("no session - 401, nothing persisted", func(t *testing.T) {
		orders := new(MockOrderRepository)
		mailer := new(MockMailSender)
		router := orderRouter(orders, mailer)

		req, _ := http.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(validOrderPayload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		orders.AssertNotCalled(t, "Insert")
		mailer.AssertNotCalled(t, "SendOrderConfirmation")
	})

	t.Run("empty cart - 400, nothing persisted", func(t *testing.T) {
		orders := new(MockOrderRepository)
		mailer := new(MockMailSender)
		router := orderRouter(orders, mailer)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(t, http.MethodPost, "/orders",
			`{"items": [], "totalPrice": 0}`))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Cart is empty")
		orders.AssertNotCalled(t, "Insert")
	})

	t.Run("invalid quantity - 400", func(t *testing.T) {
		orders := new(MockOrderRepository)
		mailer := new(MockMailSender)
		router := orderRouter(orders, mailer)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(t, http.MethodPost, "/orders",
			`{"items": [{"foodId": "food-1", "name": "Pizza", "price": 12.99, "quantity": 0}], "totalPrice": 0}`))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		orders.AssertNotCalled(t, "Insert")
	})

	t.Run("success - 201, snapshot persisted with verified total", func(t *testing.T) {
		orders := new(MockOrderRepository)
		mailer := new(MockMailSender)

		var persisted *models.Order
		orders.On("Insert", mock.Anything, mock.AnythingOfType("*models.Order")).
			Run(func(args mock.Arguments) {
				persisted = args.Get(1).(*models.Order)
			}).Return(nil).Once()
		mailer.On("SendOrderConfirmation", mock.AnythingOfType("utils.OrderEmail")).Return(nil).Once()

		router := orderRouter(orders, mailer)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(t, http.MethodPost, "/orders", validOrderPayload))

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Order placed successfully!")

		require.NotNil(t, persisted)
		// identité dénormalisée depuis la session, pas depuis le body
		assert.Equal(t, "user-1", persisted.UserID)
		assert.Equal(t, "Alice", persisted.UserName)
		assert.Equal(t, "a@b.com", persisted.UserEmail)
		// la séquence d'articles est conservée telle quelle
		require.Len(t, persisted.Items, 2)
		assert.Equal(t, "food-1", persisted.Items[0].FoodID)
		assert.Equal(t, 2, persisted.Items[0].Quantity)
		// totalPrice == Σ prix × quantité
		assert.InDelta(t, 2*12.99+9.99, persisted.TotalPrice, 0.001)
		assert.False(t, persisted.OrderDate.IsZero())

		orders.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})

	t.Run("client total is never trusted", func(t *testing.T) {
		orders := new(MockOrderRepository)
		mailer := new(MockMailSender)

		var persisted *models.Order
		orders.On("Insert", mock.Anything, mock.AnythingOfType("*models.Order")).
			Run(func(args mock.Arguments) {
				persisted = args.Get(1).(*models.Order)
			}).Return(nil).Once()
		mailer.On("SendOrderConfirmation", mock.Anything).Return(nil).Once()

		router := orderRouter(orders, mailer)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(t, http.MethodPost, "/orders",
			`{"items": [{"foodId": "food-1", "name": "Pizza", "price": 12.99, "quantity": 2}], "totalPrice": 0.01}`))

		assert.Equal(t, http.StatusCreated, recorder.Code)
		require.NotNil(t, persisted)
		assert.InDelta(t, 25.98, persisted.TotalPrice, 0.001)
	})

	t.Run("mail failure still yields 201", func(t *testing.T) {
		orders := new(MockOrderRepository)
		mailer := new(MockMailSender)

		orders.On("Insert", mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil).Once()
		mailer.On("SendOrderConfirmation", mock.Anything).
			Return(errors.New("smtp unreachable")).Once()

		router := orderRouter(orders, mailer)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(t, http.MethodPost, "/orders", validOrderPayload))

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Order placed successfully!")
		orders.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})

	t.Run("persistence failure - 500, no mail", func(t *testing.T) {
		orders := new(MockOrderRepository)
		mailer := new(MockMailSender)

		orders.On("Insert", mock.Anything, mock.AnythingOfType("*models.Order")).
			Return(errors.New("mongo down")).Once()

		router := orderRouter(orders, mailer)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(t, http.MethodPost, "/orders", validOrderPayload))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		mailer.AssertNotCalled(t, "SendOrderConfirmation")
	})
}

func TestGetMyOrders(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("no session - 401", func(t *testing.T) {
		router := orderRouter(new(MockOrderRepository), new(MockMailSender))

		req, _ := http.NewRequest(http.MethodGet, "/orders", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("returns only the caller's orders", func(t *testing.T) {
		orders := new(MockOrderRepository)
		orders.On("FindByUserID", mock.Anything, "user-1").
			Return([]models.Order{{UserID: "user-1", TotalPrice: 12.99}}, nil).Once()

		router := orderRouter(orders, new(MockMailSender))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(t, http.MethodGet, "/orders", ""))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "user-1")
		orders.AssertExpectations(t)
	})
}
