package components

import (
	"rentradar/internal/domain/booking"
	"rentradar/internal/pkg/clock"
	"rentradar/internal/pkg/config"
	"rentradar/internal/usecase"
	"rentradar/internal/usecase/commands"
	"rentradar/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *booking.QuoteCalculator {
		return booking.NewQuoteCalculator(cfg.Policy.DefaultDeposit)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewItemCommands,
		commands.NewBookingCommands,
		commands.NewPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		func(store queries.ItemReadStore, calc *booking.QuoteCalculator, cfg config.Config) queries.ItemQueries {
			return queries.NewItemQueries(store, calc, cfg.Policy.SearchRadiusKm)
		},
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
