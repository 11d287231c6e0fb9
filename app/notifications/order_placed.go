// Package notifications defines the shop's notification types.
package notifications

import (
	"fmt"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/models"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/config"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/notification"
)

// OrderPlaced tells the shop owner a new order arrived.
// Delivered by mail when SMTP is configured; the log channel always fires
// so no order goes unnoticed in development.
type OrderPlaced struct {
	Order models.Order
}

func (n *OrderPlaced) Via() []string {
	if config.Get("MAIL_USERNAME", "") != "" {
		return []string{"mail", "log"}
	}
	return []string{"log"}
}

func (n *OrderPlaced) ToMail() notification.MailData {
	o := n.Order
	return notification.MailData{
		Subject: fmt.Sprintf("New order #%d — %s", o.ID, o.ProductName),
		Body: fmt.Sprintf(
			`<h2>New order #%d</h2>
<p><b>%d x %s</b> — total ₹%.2f (%s)</p>
<p>Customer: %s<br>Phone: %s<br>Address: %s, %s</p>`,
			o.ID, o.Quantity, o.ProductName, o.TotalPrice, o.PaymentMethod,
			o.CustomerName, o.Phone, o.Address, o.Pincode,
		),
	}
}

func (n *OrderPlaced) ToLog() notification.LogData {
	o := n.Order
	return notification.LogData{
		Message: "new order",
		Fields: []interface{}{
			"order_id", o.ID,
			"product", o.ProductName,
			"quantity", o.Quantity,
			"total", o.TotalPrice,
			"payment_method", o.PaymentMethod,
		},
	}
}
