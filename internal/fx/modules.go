package fx

import (
	"github.com/GumbaTW/DDNet-LB/internal/artifact"
	"github.com/GumbaTW/DDNet-LB/internal/database"
	"github.com/GumbaTW/DDNet-LB/internal/logger"
	"github.com/GumbaTW/DDNet-LB/internal/repository"
	"github.com/GumbaTW/DDNet-LB/internal/service"

	"go.uber.org/fx"
)

// Module wires the generation pipeline. Providers are lazy: a command only
// constructs what its invoke pulls in (serve never opens the database).
var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(database.Open),
	fx.Provide(repository.NewStatsRepository),
	fx.Provide(artifact.NewWriter),
	fx.Provide(service.NewGeneratorService),
)
