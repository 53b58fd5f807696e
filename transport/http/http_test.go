package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"roombook/config"
	"roombook/infras/kafka"
	otelMocks "roombook/infras/otel/mocks"
	bookingMocks "roombook/internal/domains/booking/service/mocks"
	roomDto "roombook/internal/domains/room/model/dto"
	roomMocks "roombook/internal/domains/room/service/mocks"
	"roombook/internal/handlers/booking"
	"roombook/internal/handlers/room"
	"roombook/shared/cache"
	"roombook/transport/http/middleware"
	"roombook/transport/http/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) (*HTTP, *roomMocks.MockRoom) {
	t.Helper()

	ctrl := gomock.NewController(t)
	rooms := roomMocks.NewMockRoom(ctrl)
	ot := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.Name = "roombook"
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"*"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet}

	r := router.New(router.DomainHandlers{
		Room:    room.New(rooms, ot),
		Booking: booking.New(bookingMocks.NewMockBooking(ctrl), ot),
	})

	return New(cfg, r, middleware.NewAppMiddleware(ot, cfg, cache.NewNoop()), ot, kafka.New(cfg), nil), rooms
}

func serve(handler http.Handler, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	return recorder
}

func TestHealth(t *testing.T) {
	server, _ := newServer(t)
	handler := server.Handler()

	recorder := serve(handler, "/health")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"OK"}`, recorder.Body.String())

	server.state.Store(int32(ServerStateInGracePeriod))

	recorder = serve(handler, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestRoutesAreMountedUnderVersion(t *testing.T) {
	server, rooms := newServer(t)

	rooms.EXPECT().List(gomock.Any()).Return([]roomDto.RoomResponse{}, nil)

	recorder := serve(server.Handler(), "/v1/rooms")
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = serve(server.Handler(), "/rooms")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"message":"Not Found"}`, recorder.Body.String())
}

func TestSwagger(t *testing.T) {
	server, _ := newServer(t)

	recorder := serve(server.Handler(), "/swagger/doc.json")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "/v1/bookings/{id}")
}

func TestHandlerIsBuiltOnce(t *testing.T) {
	server, _ := newServer(t)

	assert.Same(t, server.Handler(), server.Handler())
}
