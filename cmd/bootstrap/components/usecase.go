package components

import (
	"room-booking/internal/domain/reservation"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewClock,
	func(clock clock.Clock) *reservation.Services {
		return &reservation.Services{
			Clock: clock,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRoomUseCase,
		commands.NewReservationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewReservationQueries,
		queries.NewAvailabilityQueries,
	),
)

// NewClock reports time in the application time zone, which decides what "today" is.
func NewClock(cfg config.Config) clock.Clock {
	return clock.NewRealClockIn(cfg.App.Location())
}
