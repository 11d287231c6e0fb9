package services_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/models"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/services"
)

func testPayments() *services.PaymentService {
	return &services.PaymentService{
		VPA:      "tamilanchemicals@upi",
		Payee:    "TAMILAN CHEMICALS",
		WhatsApp: "919876543210",
		ShopName: "TAMILAN CHEMICALS",
	}
}

func TestUPILink(t *testing.T) {
	order := models.Order{ID: 42, TotalPrice: 400, Quantity: 5, ProductName: "Lemon Phenyl"}

	link := testPayments().UPILink(order)
	require.True(t, strings.HasPrefix(link, "upi://pay?"), "link: %s", link)

	q, err := url.ParseQuery(strings.TrimPrefix(link, "upi://pay?"))
	require.NoError(t, err)
	assert.Equal(t, "tamilanchemicals@upi", q.Get("pa"))
	assert.Equal(t, "TAMILAN CHEMICALS", q.Get("pn"))
	assert.Equal(t, "400.00", q.Get("am"))
	assert.Equal(t, "INR", q.Get("cu"))
	assert.Equal(t, "Order 42", q.Get("tn"))
}

func TestUPILink_NoVPAConfigured(t *testing.T) {
	p := testPayments()
	p.VPA = ""
	assert.Empty(t, p.UPILink(models.Order{ID: 1, TotalPrice: 80}))
}

func TestWhatsAppLink(t *testing.T) {
	order := models.Order{
		ID: 7, TotalPrice: 170, Quantity: 2, ProductName: "Rose Phenyl",
		CustomerName: "Divakar", Phone: "9876543210", Pincode: "625001",
	}

	link := testPayments().WhatsAppLink(order)
	require.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="), "link: %s", link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	text := u.Query().Get("text")
	assert.Contains(t, text, "Order #7")
	assert.Contains(t, text, "Rose Phenyl")
	assert.Contains(t, text, "Divakar")
	assert.Contains(t, text, "₹170.00")
}

func TestWhatsAppLink_NoNumberConfigured(t *testing.T) {
	p := testPayments()
	p.WhatsApp = ""
	assert.Empty(t, p.WhatsAppLink(models.Order{ID: 1}))
}
