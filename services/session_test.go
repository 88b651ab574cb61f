package services

import "testing"

func TestSessionAddProductClearsPending(t *testing.T) {
	var s Session
	s.SetPending("101", "2")

	s.AddProduct(Product{ID: 101, NameEN: "Flower Pots Big", Price: 33, AgenciesPrice: 25}, 2)

	id, qty := s.Pending()
	if id != "" || qty != "" {
		t.Errorf("pending input = (%q, %q), want cleared", id, qty)
	}

	cart := s.Cart()
	if cart.Len() != 1 || cart.Lines()[0].Amount != 66 {
		t.Errorf("cart = %+v", cart.Lines())
	}
}

func TestSessionFailedAddKeepsPending(t *testing.T) {
	var s Session
	s.SetPending("999", "3")

	// A catalog miss never reaches AddProduct, so pending input survives
	// for the form to echo back.
	id, qty := s.Pending()
	if id != "999" || qty != "3" {
		t.Errorf("pending input = (%q, %q), want (999, 3)", id, qty)
	}
	if s.Cart().Len() != 0 {
		t.Errorf("cart should be untouched")
	}
}

func TestSessionCartIsSnapshot(t *testing.T) {
	var s Session
	s.AddProduct(Product{ID: 101, Price: 33, AgenciesPrice: 25}, 1)

	snapshot := s.Cart()
	s.RemoveLine(101)

	if snapshot.Len() != 1 {
		t.Errorf("snapshot mutated by later removal")
	}
	if s.Cart().Len() != 0 {
		t.Errorf("session cart should be empty after removal")
	}
}

func TestSessionCustomer(t *testing.T) {
	var s Session
	s.SetCustomer("Kumar", "")

	c := s.Customer()
	if c.Name != "Kumar" {
		t.Errorf("Name = %q", c.Name)
	}
	if c.PlaceOrDash() != "-" {
		t.Errorf("PlaceOrDash() = %q, want -", c.PlaceOrDash())
	}

	s.SetCustomer("Kumar", "Sivakasi")
	if s.Customer().PlaceOrDash() != "Sivakasi" {
		t.Errorf("PlaceOrDash() = %q, want Sivakasi", s.Customer().PlaceOrDash())
	}
}
