package validate_test

import (
	"testing"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/validate"
)

type orderInput struct {
	CustomerName  string `json:"customer_name"  validate:"required,max=255"`
	Phone         string `json:"phone"          validate:"required,digits=10"`
	Address       string `json:"address"        validate:"required"`
	Pincode       string `json:"pincode"        validate:"required,digits=6"`
	Quantity      int    `json:"quantity"       validate:"required,gte=1,lte=100"`
	PaymentMethod string `json:"payment_method" validate:"required,in=Cash On Delivery,UPI Payment"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(orderInput{
		CustomerName:  "Divakar",
		Phone:         "9876543210",
		Address:       "12 Main Road, Madurai",
		Pincode:       "625001",
		Quantity:      5,
		PaymentMethod: "Cash On Delivery",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestPaymentMethodInRule(t *testing.T) {
	in := orderInput{
		CustomerName:  "Divakar",
		Phone:         "9876543210",
		Address:       "12 Main Road, Madurai",
		Pincode:       "625001",
		Quantity:      5,
		PaymentMethod: "Bank Transfer",
	}
	errs := validate.Struct(in)
	if _, ok := errs["payment_method"]; !ok {
		t.Errorf("expected payment_method to be rejected, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(orderInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["customer_name"]; !ok {
		t.Error("expected customer_name to be required")
	}
	if _, ok := errs["phone"]; !ok {
		t.Error("expected phone to be required")
	}
}

func TestDigitsRule(t *testing.T) {
	type in struct {
		Pincode string `json:"pincode" validate:"required,digits=6"`
	}
	if errs := validate.Struct(in{Pincode: "62500"}); !validate.HasErrors(errs) {
		t.Error("expected 5-digit pincode to fail")
	}
	if errs := validate.Struct(in{Pincode: "62500a"}); !validate.HasErrors(errs) {
		t.Error("expected non-numeric pincode to fail")
	}
	if errs := validate.Struct(in{Pincode: "625001"}); validate.HasErrors(errs) {
		t.Errorf("expected valid pincode to pass, got: %v", errs)
	}
}

func TestQuantityBounds(t *testing.T) {
	type in struct {
		Quantity int `json:"quantity" validate:"required,gte=1,lte=100"`
	}
	if errs := validate.Struct(in{Quantity: 101}); !validate.HasErrors(errs) {
		t.Error("expected quantity > 100 to fail")
	}
	if errs := validate.Struct(in{Quantity: 5}); validate.HasErrors(errs) {
		t.Errorf("expected quantity 5 to pass, got: %v", errs)
	}
	// zero quantity trips `required` before the range rules
	if errs := validate.Struct(in{}); !validate.HasErrors(errs) {
		t.Error("expected zero quantity to fail")
	}
}

func TestInRule(t *testing.T) {
	type in struct {
		Unit string `json:"unit" validate:"required,in=litre,bottle,can"`
	}
	if errs := validate.Struct(in{Unit: "bottle"}); validate.HasErrors(errs) {
		t.Errorf("unexpected errors: %v", errs)
	}
	if errs := validate.Struct(in{Unit: "drum"}); !validate.HasErrors(errs) {
		t.Error("expected unit outside list to fail")
	}
}

func TestNullableSkipsWhenEmpty(t *testing.T) {
	type in struct {
		UPIID string `json:"upi_id" validate:"nullable,min=5"`
	}
	if errs := validate.Struct(in{}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable field to pass, got: %v", errs)
	}
	if errs := validate.Struct(in{UPIID: "ab"}); !validate.HasErrors(errs) {
		t.Error("expected short non-empty nullable field to fail")
	}
}

func TestBetweenOnNumbers(t *testing.T) {
	type in struct {
		Stock int `json:"stock" validate:"between=1,500"`
	}
	if errs := validate.Struct(in{Stock: 501}); !validate.HasErrors(errs) {
		t.Error("expected out-of-range stock to fail")
	}
	if errs := validate.Struct(in{Stock: 50}); validate.HasErrors(errs) {
		t.Errorf("expected in-range stock to pass, got: %v", errs)
	}
}
