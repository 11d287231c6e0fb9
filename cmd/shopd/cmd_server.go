package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/routes"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/internal/server"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/router"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/ws"
)

// shopd serve — start HTTP + gRPC, queue workers and the scheduler.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the shop server (HTTP, gRPC, queue workers, scheduler)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// shopd route:list — print all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Service handles are only touched at request time, so zero
		// values are enough to enumerate the route table.
		r := router.New()
		routes.RegisterAPI(r, routes.Services{OrderFeed: ws.NewHub()})

		infos := r.Routes()
		if len(infos) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}

		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
