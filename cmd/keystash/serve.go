package main

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/keystash/keystash/internal/metrics"
	"github.com/keystash/keystash/internal/paramstore"
)

func newServeCmd() *cobra.Command {
	var (
		listen    string
		authToken string
		pageSize  int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run an in-memory parameter store server",
		Long: `Run an in-memory parameter store server.

Useful for local development and integration tests. Contents are lost when
the process exits.

Examples:
  # Serve on the default port with no authentication
  keystash serve

  # Require a bearer token
  keystash serve --auth-token secret --listen :8981`,
		RunE: func(_ *cobra.Command, _ []string) error {
			store := paramstore.NewMemoryStore()
			srv := paramstore.NewServer(store, authToken, pageSize, metrics.InitServerMetrics(metrics.Registry))

			httpSrv := &http.Server{
				Addr:              listen,
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}
			log.Info().Str("listen", listen).Msg("parameter store server starting")
			return httpSrv.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&listen, "listen", ":8981", "Listen address")
	cmd.Flags().StringVar(&authToken, "auth-token", "", "Require this bearer token (empty disables auth)")
	cmd.Flags().IntVar(&pageSize, "page-size", paramstore.DefaultPageSize, "Entries per list page")
	return cmd
}
