package services

import "sync"

// CustomerInfo identifies the customer an invoice is issued to. Name is
// required before export; Place is optional.
type CustomerInfo struct {
	Name  string
	Place string
}

// PlaceOrDash returns the place, or the "-" placeholder when it is empty.
// The same placeholder appears in the invoice body and in file names.
func (ci CustomerInfo) PlaceOrDash() string {
	if ci.Place == "" {
		return "-"
	}
	return ci.Place
}

// Session is the operator's billing session: the active cart, the pending
// add-form input and the customer details. It replaces what would otherwise
// be ambient page state so the whole flow can be driven headlessly.
// The mutex serializes handler access; there is one session per process.
type Session struct {
	mu         sync.Mutex
	cart       Cart
	pendingID  string
	pendingQty string
	customer   CustomerInfo
}

// AddProduct inserts or merges a cart line for the given product and clears
// the pending form input. Quantity must already be validated as positive.
func (s *Session) AddProduct(p Product, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Add(CartLine{
		ID:            p.ID,
		NameEN:        p.NameEN,
		NameTA:        p.NameTA,
		Qty:           qty,
		Price:         p.Price,
		AgenciesPrice: p.AgenciesPrice,
	})
	s.pendingID = ""
	s.pendingQty = ""
}

// RemoveLine deletes the cart line with the given product ID, if any.
func (s *Session) RemoveLine(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(id)
}

// SetPending records the add-form input so a failed add can echo it back.
func (s *Session) SetPending(id, qty string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingID = id
	s.pendingQty = qty
}

// Pending returns the current add-form input.
func (s *Session) Pending() (id, qty string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingID, s.pendingQty
}

// SetCustomer stores the customer details used for invoice export.
func (s *Session) SetCustomer(name, place string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customer = CustomerInfo{Name: name, Place: place}
}

// Customer returns the stored customer details.
func (s *Session) Customer() CustomerInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customer
}

// Cart returns a snapshot of the current cart. The copy shares nothing with
// the session, so composing an invoice from it cannot race a cart mutation.
func (s *Session) Cart() Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := Cart{lines: make([]CartLine, len(s.cart.lines))}
	copy(snapshot.lines, s.cart.lines)
	return snapshot
}
