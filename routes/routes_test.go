package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-booking/config"
	"hotel-booking/controllers"
	"hotel-booking/services"
	"hotel-booking/utils"
)

func TestParseCorsOrigins(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{raw: "", want: []string{"*"}},
		{raw: " , ", want: []string{"*"}},
		{raw: "http://localhost:3000", want: []string{"http://localhost:3000"}},
		{raw: "http://a.test, http://b.test ,", want: []string{"http://a.test", "http://b.test"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCorsOrigins(tt.raw))
		})
	}
}

func setupApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	db, err := config.ConnectDatabase(config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"}, log)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	require.NoError(t, config.SeedDatabase(context.Background(), db, time.Now(), log))

	roomSvc := services.NewRoomService(db)
	bookingSvc := services.NewBookingService(db)
	customerSvc := services.NewCustomerService(db)
	manager := services.NewBookingManager(roomSvc, bookingSvc, services.WithLogger(log))

	r, err := SetupRouter(
		controllers.NewBookingController(bookingSvc, manager, log),
		controllers.NewRoomController(roomSvc, log),
		controllers.NewCustomerController(customerSvc, log),
		"http://localhost:3000",
		log,
	)
	require.NoError(t, err)
	return r
}

func request(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func dateParam(offset int) string {
	return utils.FormatDate(services.DateOf(time.Now()).AddDate(0, 0, offset))
}

func TestRouter_Health(t *testing.T) {
	w := request(setupApp(t), http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"status":"ok"}}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_BookingFlow(t *testing.T) {
	r := setupApp(t)

	w := request(r, http.MethodGet, "/api/rooms", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rooms []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	assert.Len(t, rooms, 3)

	// seeded bookings fill every room on +10..+20
	w = request(r, http.MethodGet, "/api/bookings/occupied-dates?startDate="+dateParam(0)+"&endDate="+dateParam(30), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var occupied controllers.OccupiedDatesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &occupied))
	require.Len(t, occupied.Dates, 11)
	assert.Equal(t, dateParam(10), occupied.Dates[0])
	assert.Equal(t, dateParam(20), occupied.Dates[10])

	w = request(r, http.MethodPost, "/api/bookings", map[string]any{
		"startDate":  dateParam(12),
		"endDate":    dateParam(14),
		"customerId": 1,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = request(r, http.MethodGet, "/api/rooms/available?startDate="+dateParam(21)+"&endDate="+dateParam(22), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"roomId":1}`, w.Body.String())

	w = request(r, http.MethodPost, "/api/bookings", map[string]any{
		"startDate":  dateParam(21),
		"endDate":    dateParam(22),
		"customerId": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	location := w.Header().Get("Location")
	require.NotEmpty(t, location)

	w = request(r, http.MethodGet, location, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.EqualValues(t, 1, created["roomId"])
	assert.Equal(t, true, created["isActive"])

	w = request(r, http.MethodDelete, location, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = request(r, http.MethodDelete, location, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// createStay books one day and returns the new booking's id.
func createStay(t *testing.T, r http.Handler, offset int) int {
	t.Helper()
	w := request(r, http.MethodPost, "/api/bookings", map[string]any{
		"startDate":  dateParam(offset),
		"endDate":    dateParam(offset),
		"customerId": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id, err := strconv.Atoi(path.Base(w.Header().Get("Location")))
	require.NoError(t, err)
	return id
}

func TestRouter_UpdateBooking(t *testing.T) {
	t.Run("re-activation over a reassigned room is refused", func(t *testing.T) {
		r := setupApp(t)
		id := createStay(t, r, 30)
		location := "/api/bookings/" + strconv.Itoa(id)

		w := request(r, http.MethodPut, location, map[string]any{"id": id, "customerId": 1, "isActive": false})
		require.Equal(t, http.StatusNoContent, w.Code)

		// the cancelled room and the two others are handed out again
		for i := 0; i < 3; i++ {
			createStay(t, r, 30)
		}
		w = request(r, http.MethodPost, "/api/bookings", map[string]any{
			"startDate":  dateParam(30),
			"endDate":    dateParam(30),
			"customerId": 1,
		})
		require.Equal(t, http.StatusConflict, w.Code)

		w = request(r, http.MethodPut, location, map[string]any{"id": id, "customerId": 1, "isActive": true})
		assert.Equal(t, http.StatusConflict, w.Code)

		w = request(r, http.MethodGet, location, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var stored map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
		assert.Equal(t, false, stored["isActive"])

		w = request(r, http.MethodGet, "/api/bookings/occupied-dates?startDate="+dateParam(30)+"&endDate="+dateParam(30), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"dates":["`+dateParam(30)+`"]}`, w.Body.String())
	})

	t.Run("re-activation while the room is free", func(t *testing.T) {
		r := setupApp(t)
		id := createStay(t, r, 30)
		location := "/api/bookings/" + strconv.Itoa(id)

		w := request(r, http.MethodPut, location, map[string]any{"id": id, "customerId": 2, "isActive": false})
		require.Equal(t, http.StatusNoContent, w.Code)
		w = request(r, http.MethodPut, location, map[string]any{"id": id, "customerId": 2, "isActive": true})
		require.Equal(t, http.StatusNoContent, w.Code)

		w = request(r, http.MethodGet, location, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var stored map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
		assert.Equal(t, true, stored["isActive"])
		assert.EqualValues(t, 2, stored["customerId"])
		assert.EqualValues(t, 1, stored["roomId"])
	})

	t.Run("omitted isActive leaves the booking alone", func(t *testing.T) {
		r := setupApp(t)
		id := createStay(t, r, 30)
		location := "/api/bookings/" + strconv.Itoa(id)

		w := request(r, http.MethodPut, location, map[string]any{"id": id, "customerId": 2})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = request(r, http.MethodGet, location, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var stored map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
		assert.Equal(t, true, stored["isActive"])
		assert.EqualValues(t, 1, stored["customerId"])
	})

	t.Run("unknown booking", func(t *testing.T) {
		w := request(setupApp(t), http.MethodPut, "/api/bookings/999", map[string]any{"id": 999, "customerId": 1, "isActive": true})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRouter_PastStartIsRejected(t *testing.T) {
	w := request(setupApp(t), http.MethodPost, "/api/bookings", map[string]any{
		"startDate":  dateParam(-1),
		"endDate":    dateParam(1),
		"customerId": 1,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_CORS(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/rooms", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	setupApp(t).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
