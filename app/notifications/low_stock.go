package notifications

import (
	"fmt"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/models"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/config"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/notification"
)

// LowStock warns the shop owner that a product is running out.
type LowStock struct {
	Product   models.Product
	Threshold int
}

func (n *LowStock) Via() []string {
	if config.Get("MAIL_USERNAME", "") != "" {
		return []string{"mail", "log"}
	}
	return []string{"log"}
}

func (n *LowStock) ToMail() notification.MailData {
	p := n.Product
	return notification.MailData{
		Subject: fmt.Sprintf("Low stock: %s (%d left)", p.Name, p.Stock),
		Body: fmt.Sprintf(
			`<h2>Low stock warning</h2>
<p><b>%s</b> is down to <b>%d</b> litres (threshold %d). Time to restock.</p>`,
			p.Name, p.Stock, n.Threshold,
		),
	}
}

func (n *LowStock) ToLog() notification.LogData {
	p := n.Product
	return notification.LogData{
		Message: "low stock",
		Fields: []interface{}{
			"product", p.Name,
			"stock", p.Stock,
			"threshold", n.Threshold,
		},
	}
}
