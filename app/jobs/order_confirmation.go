// Package jobs defines the shop's background queue jobs.
package jobs

import (
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/models"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/notifications"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/config"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/notification"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/queue"
)

// OrderConfirmation notifies the shop owner about a placed order.
// The job carries the full order snapshot so it survives queue
// serialization and does not need a DB round trip to run.
type OrderConfirmation struct {
	Order models.Order `json:"order"`
}

func (j *OrderConfirmation) Handle() error {
	errs := notification.Send(config.ShopOwnerEmail(), &notifications.OrderPlaced{Order: j.Order})
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// Register makes all job types known to the queue by name.
// Call once at boot, before queue.StartWorkers.
func Register() {
	queue.Register("*jobs.OrderConfirmation", func() queue.Job { return &OrderConfirmation{} })
}
