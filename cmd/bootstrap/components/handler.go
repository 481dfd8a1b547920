package components

import (
	"room-booking/internal/handler"
	"room-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewReservationHandler,
		api.NewAvailabilityHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(room *api.RoomHandler, reservation *api.ReservationHandler, availability *api.AvailabilityHandler) handler.Handlers {
	return handler.Handlers{
		Room:         room,
		Reservation:  reservation,
		Availability: availability,
	}
}
