package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import migrations so their init() funcs run and register themselves.
	_ "github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/database/migrations"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shopd",
	Short: "TAMILAN CHEMICALS shop server CLI",
	Long:  "shopd runs and manages the TAMILAN CHEMICALS storefront: HTTP/gRPC server, migrations, seeders, queue workers and admin utilities.",
}

func init() {
	// Server
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	// Database
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)

	// Workers
	rootCmd.AddCommand(queueWorkCmd)

	// Admin utilities
	rootCmd.AddCommand(adminCmd)
}
