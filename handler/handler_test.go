package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sistema_eventos/handler"
	"sistema_eventos/model"
	"sistema_eventos/repository"
	"sistema_eventos/router"
	"sistema_eventos/service"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Location{},
		&model.User{},
		&model.Event{},
		&model.Order{},
		&model.Ticket{},
		&model.Rating{},
	))

	app := fiber.New()
	router.SetupRoutes(app, router.Handlers{
		Event:    handler.NewEventHandler(service.NewEventService(repository.NewEventRepository(db))),
		Location: handler.NewLocationHandler(service.NewLocationService(repository.NewLocationRepository(db))),
		User:     handler.NewUserHandler(service.NewUserService(repository.NewUserRepository(db))),
		Order:    handler.NewOrderHandler(service.NewOrderService(repository.NewOrderRepository(db))),
		Ticket:   handler.NewTicketHandler(service.NewTicketService(repository.NewTicketRepository(db))),
		Rating:   handler.NewRatingHandler(service.NewRatingService(repository.NewRatingRepository(db))),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	resp.Body.Close()
}

func TestUsers_FluxoCompleto(t *testing.T) {
	app := setupTestApp(t)

	// POST cria e devolve 201 com Location
	resp := doJSON(t, app, http.MethodPost, "/api/users", fiber.Map{
		"name":     "Ana",
		"email":    "ana@x.com",
		"password": "abcdef",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created model.UserResponse
	decodeBody(t, resp, &created)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Ana", created.Name)
	assert.Equal(t, "ana@x.com", created.Email)
	assert.Equal(t, "/api/users/"+created.ID.String(), resp.Header.Get("Location"))

	// GET devolve os mesmos campos
	resp = doJSON(t, app, http.MethodGet, "/api/users/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got model.UserResponse
	decodeBody(t, resp, &got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "ana@x.com", got.Email)

	// DELETE devolve 204 e o GET seguinte 404
	resp = doJSON(t, app, http.MethodDelete, "/api/users/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/users/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUsers_CriacaoInvalidaDevolve400(t *testing.T) {
	app := setupTestApp(t)

	for name, body := range map[string]fiber.Map{
		"email sem arroba": {"name": "Ana", "email": "ana.x.com", "password": "abcdef"},
		"senha curta":      {"name": "Ana", "email": "ana@x.com", "password": "abc"},
		"nome em branco":   {"name": "   ", "email": "ana@x.com", "password": "abcdef"},
	} {
		resp := doJSON(t, app, http.MethodPost, "/api/users", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, name)
	}
}

func TestUsers_IdInvalidoDevolve400(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/users/nao-e-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOrders_CriacaoInvalidaDevolve400(t *testing.T) {
	app := setupTestApp(t)

	for name, body := range map[string]fiber.Map{
		"valor zero":         {"userId": "0f8fad5b-d9cb-469f-a165-70867728950e", "value": "0", "paymentType": "Pix"},
		"valor negativo":     {"userId": "0f8fad5b-d9cb-469f-a165-70867728950e", "value": "-5", "paymentType": "Pix"},
		"pagamento inválido": {"userId": "0f8fad5b-d9cb-469f-a165-70867728950e", "value": "10", "paymentType": "Boleto"},
	} {
		resp := doJSON(t, app, http.MethodPost, "/api/orders", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, name)
	}
}

func TestOrders_CriacaoValidaDevolve201(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/orders", fiber.Map{
		"userId":      "0f8fad5b-d9cb-469f-a165-70867728950e",
		"value":       "150.50",
		"paymentType": "CreditCard",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created model.OrderResponse
	decodeBody(t, resp, &created)
	assert.Equal(t, "Created", created.Status)
	assert.Equal(t, "CreditCard", created.PaymentType)
}

func TestEvents_FiltroPorAcessibilidade(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/events", fiber.Map{
		"nameEvents":    "Show",
		"value":         "100",
		"date":          "2026-09-01",
		"time":          "20:00:00",
		"accessibility": true,
		"locationId":    "0f8fad5b-d9cb-469f-a165-70867728950e",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/events", fiber.Map{
		"nameEvents":    "Teatro",
		"value":         "50",
		"date":          "2026-09-02",
		"time":          "19:00:00",
		"accessibility": false,
		"locationId":    "0f8fad5b-d9cb-469f-a165-70867728950e",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/events?accessibility=true", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var events []model.EventDTO
	decodeBody(t, resp, &events)
	require.Len(t, events, 1)
	assert.Equal(t, "Show", events[0].NameEvents)
}

func TestEvents_RelatorioCsv(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/events", fiber.Map{
		"nameEvents": "Show",
		"value":      "100",
		"date":       "2026-09-01",
		"time":       "20:00:00",
		"locationId": "0f8fad5b-d9cb-469f-a165-70867728950e",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/events/relatorio", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "eventos_")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".csv")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	csv := string(body)
	assert.Contains(t, csv, "ID,Nome,Valor,Data,Hora,Acessibilidade,LocalizacaoID")
	assert.Contains(t, csv, "100.00")
	assert.Contains(t, csv, "N/A")
}

func TestTickets_SubRecursos(t *testing.T) {
	app := setupTestApp(t)

	userID := "0f8fad5b-d9cb-469f-a165-70867728950e"
	orderID := "7c9e6679-7425-40de-944b-e07fc1f90ae7"

	resp := doJSON(t, app, http.MethodPost, "/api/tickets", fiber.Map{
		"orderId":  orderID,
		"userId":   userID,
		"quantity": 2,
		"value":    "75.90",
		"date":     "2026-09-01",
		"time":     "20:00:00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/tickets/user/"+userID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var byUser []model.TicketDTO
	decodeBody(t, resp, &byUser)
	assert.Len(t, byUser, 1)

	resp = doJSON(t, app, http.MethodGet, "/api/tickets/order/"+orderID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var byOrder []model.TicketDTO
	decodeBody(t, resp, &byOrder)
	assert.Len(t, byOrder, 1)
}

func TestRatings_CriacaoEConsultaPorEvento(t *testing.T) {
	app := setupTestApp(t)

	eventID := "0f8fad5b-d9cb-469f-a165-70867728950e"

	resp := doJSON(t, app, http.MethodPost, "/api/ratings", fiber.Map{
		"userId":  "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		"eventId": eventID,
		"score":   5,
		"comment": "Excelente",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/ratings", fiber.Map{
		"userId":  "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		"eventId": eventID,
		"score":   0,
		"comment": "Nota inválida",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/ratings/event/"+eventID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ratings []model.RatingResponse
	decodeBody(t, resp, &ratings)
	require.Len(t, ratings, 1)
	assert.Equal(t, 5, ratings[0].Score)
}

func TestDelete_InexistenteDevolve404(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, http.MethodDelete, "/api/locations/0f8fad5b-d9cb-469f-a165-70867728950e", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
