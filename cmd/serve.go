package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/ameya/eduplan/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tutoring pipeline over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, events, cleanup, err := buildService(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		addr, _ := cmd.Flags().GetString("addr")
		fmt.Fprintf(cmd.OutOrStdout(), "eduplan listening on %s\n", addr)
		return http.ListenAndServe(addr, server.New(svc, events).Router())
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	addPipelineFlags(serveCmd)
}
