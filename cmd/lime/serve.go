package main

import (
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/tuhin92/Image-Enhancement/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		addr   string
		maxDim int
	)

	cmd := &cobra.Command{
		Use:          "serve",
		Short:        "Run the enhancement HTTP service",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := server.New(maxDim, log.Default())
			srv := &http.Server{
				Addr:              addr,
				Handler:           s.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}
			log.Printf("listening on %s", addr)
			return srv.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8000", "listen address")
	cmd.Flags().IntVar(&maxDim, "max-dim", 4096,
		"downscale uploads whose longest side exceeds this, 0 disables")
	return cmd
}
