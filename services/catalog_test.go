package services

import (
	"testing"

	"svppbilling/testhelpers"
)

func TestFindProductByID(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestProduct(t, app, 101, "Flower Pots Big", "Rs. 33.00", "Rs. 25.00")

	product, ok := FindProductByID(app, 101)
	if !ok {
		t.Fatal("expected product 101 to resolve")
	}
	if product.ID != 101 {
		t.Errorf("ID = %d, want 101", product.ID)
	}
	if product.NameEN != "Flower Pots Big" {
		t.Errorf("NameEN = %q", product.NameEN)
	}
	if product.Price != 33 {
		t.Errorf("Price = %v, want 33", product.Price)
	}
	if product.AgenciesPrice != 25 {
		t.Errorf("AgenciesPrice = %v, want 25", product.AgenciesPrice)
	}
}

func TestFindProductByID_Absent(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestProduct(t, app, 101, "Flower Pots Big", "Rs. 33.00", "Rs. 25.00")

	if _, ok := FindProductByID(app, 999); ok {
		t.Error("expected product 999 to be absent")
	}
}

// A defective price field prices the product at zero instead of failing the
// lookup.
func TestFindProductByID_MalformedPrice(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestProduct(t, app, 102, "Ground Chakkar", "free", "")

	product, ok := FindProductByID(app, 102)
	if !ok {
		t.Fatal("expected product 102 to resolve")
	}
	if product.Price != 0 || product.AgenciesPrice != 0 {
		t.Errorf("prices = (%v, %v), want (0, 0)", product.Price, product.AgenciesPrice)
	}
}
