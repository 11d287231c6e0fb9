package services

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/models"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/config"
)

// PaymentService builds UPI and WhatsApp deep links for an order.
// These are plain link generators, not payment integrations: the UPI link
// is rendered as a QR code by the front end, and the WhatsApp link opens a
// pre-filled chat with the shop.
type PaymentService struct {
	VPA      string // shop-owned UPI handle, e.g. "shop@upi"
	Payee    string // display name in UPI apps
	WhatsApp string // international format without '+', e.g. "919876543210"
	ShopName string
}

// NewPaymentService builds a PaymentService from the shop configuration.
func NewPaymentService() *PaymentService {
	return &PaymentService{
		VPA:      config.ShopUPIID(),
		Payee:    config.ShopUPIPayee(),
		WhatsApp: config.ShopWhatsApp(),
		ShopName: config.ShopName(),
	}
}

// UPILink returns a upi://pay deep link for the order total.
// Returns "" when no shop VPA is configured.
func (s *PaymentService) UPILink(order models.Order) string {
	if s.VPA == "" {
		return ""
	}

	q := url.Values{}
	q.Set("pa", s.VPA)
	q.Set("pn", s.Payee)
	q.Set("am", strconv.FormatFloat(order.TotalPrice, 'f', 2, 64))
	q.Set("cu", "INR")
	q.Set("tn", fmt.Sprintf("Order %d", order.ID))
	return "upi://pay?" + q.Encode()
}

// WhatsAppLink returns a wa.me link opening a chat with the shop,
// pre-filled with the order summary. Returns "" when no shop number
// is configured.
func (s *PaymentService) WhatsAppLink(order models.Order) string {
	if s.WhatsApp == "" {
		return ""
	}

	text := fmt.Sprintf("Hi %s! Order #%d: %d x %s, total ₹%.2f. Customer: %s, Phone: %s, Pincode: %s.",
		s.ShopName,
		order.ID,
		order.Quantity,
		order.ProductName,
		order.TotalPrice,
		order.CustomerName,
		order.Phone,
		order.Pincode,
	)
	return "https://wa.me/" + s.WhatsApp + "?text=" + url.QueryEscape(text)
}
