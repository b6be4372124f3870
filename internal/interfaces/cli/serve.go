package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/turtacn/retrosynth/internal/interfaces/http"
	"github.com/turtacn/retrosynth/internal/platform/logging"
	"github.com/turtacn/retrosynth/internal/platform/metrics"
)

// newServeCmd returns `retrosynth serve`: starts the gin-based HTTP API
// (D7) exposing POST /api/v1/routes, GET /api/v1/templates, GET /healthz,
// and GET /metrics. Each request assembles its own retro.Engine via
// internal/bootstrap, so no engine is constructed here.
func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			if port != 0 {
				cliCtx.Config.Server.Port = port
			}

			collector, err := metrics.NewMetricsCollector(metrics.CollectorConfig{
				Namespace: "retrosynth",
			}, cliCtx.Logger)
			if err != nil {
				return fmt.Errorf("metrics collector init: %w", err)
			}
			appMetrics := metrics.NewAppMetrics(collector)

			router := http.NewRouter(http.RouterConfig{
				RoutesHandler:    http.NewRoutesHandler(cliCtx.Config, cliCtx.Logger),
				TemplatesHandler: http.NewTemplatesHandler(cliCtx.Config, cliCtx.Logger),
				HealthHandler:    http.NewHealthHandler(),
				Metrics:          collector,
				AppMetrics:       appMetrics,
				Logger:           cliCtx.Logger,
			})

			srv := http.NewServer(http.ServerConfig{
				Port:            cliCtx.Config.Server.Port,
				ReadTimeout:     cliCtx.Config.Server.ReadTimeout,
				WriteTimeout:    cliCtx.Config.Server.WriteTimeout,
				ShutdownTimeout: cliCtx.Config.Server.ShutdownTimeout,
			}, router, cliCtx.Logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cliCtx.Logger.Info("starting retrosynth API server", logging.Int("port", cliCtx.Config.Server.Port))
			if err := srv.Start(ctx); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "override server.port for this invocation")
	return cmd
}

//Personal.AI order the ending
