package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/jobs"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/cache"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/queue"
)

var queueWorkersFlag int

// shopd queue:work — run queue workers in a dedicated process.
// `shopd serve` already runs workers in-process; this command exists for
// deployments that scale workers separately from the web server.
var queueWorkCmd = &cobra.Command{
	Use:   "queue:work",
	Short: "Start standalone queue workers",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB()
		if err != nil {
			return err
		}

		cache.Connect()

		jobs.Register()
		queue.UseDB(db)
		if cache.RDB != nil {
			queue.SetDriver(queue.NewRedisDriver(cache.RDB))
		} else {
			return fmt.Errorf("queue:work needs redis: the in-memory driver cannot share jobs across processes")
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		workers := queueWorkersFlag
		if workers < 1 {
			workers = 5
		}

		fmt.Printf("Queue worker started (%d workers). Press Ctrl+C to stop.\n", workers)
		queue.StartWorkers(ctx, workers)

		<-ctx.Done()
		fmt.Println("\nQueue worker stopped.")
		return nil
	},
}

func init() {
	queueWorkCmd.Flags().IntVarP(&queueWorkersFlag, "workers", "w", 5, "Number of concurrent workers")
}
