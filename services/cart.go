package services

// CartLine is one product in the active order. Unit prices are captured when
// the line is first added and never re-read from the catalog afterwards;
// Amount and AgenciesAmount are always Qty times those stored prices.
type CartLine struct {
	ID             int
	NameEN         string
	NameTA         string
	Qty            int
	Price          float64 // customer unit price
	Amount         float64 // customer line total
	AgenciesPrice  float64 // agencies unit price
	AgenciesAmount float64 // agencies line total
}

// CartTotals holds the derived totals of a cart. Profit is always
// Customer minus Agencies.
type CartTotals struct {
	Customer float64
	Agencies float64
	Profit   float64
}

// Cart is the active order: an insertion-ordered list of lines with at most
// one line per product ID.
type Cart struct {
	lines []CartLine
}

// Add merges a line into the cart. If a line with the same product ID
// already exists its quantity is incremented by line.Qty and both amounts
// are recomputed from the stored unit prices; the incoming prices are
// discarded so a line's pricing is fixed at first add. Otherwise the line
// is appended with its amounts computed from its own prices.
func (c *Cart) Add(line CartLine) {
	for i := range c.lines {
		if c.lines[i].ID == line.ID {
			c.lines[i].Qty += line.Qty
			c.lines[i].Amount = float64(c.lines[i].Qty) * c.lines[i].Price
			c.lines[i].AgenciesAmount = float64(c.lines[i].Qty) * c.lines[i].AgenciesPrice
			return
		}
	}

	line.Amount = float64(line.Qty) * line.Price
	line.AgenciesAmount = float64(line.Qty) * line.AgenciesPrice
	c.lines = append(c.lines, line)
}

// Remove deletes the line with the given product ID. Removing an absent ID
// is a no-op; surviving lines keep their order.
func (c *Cart) Remove(id int) {
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Lines returns the cart lines in insertion order.
func (c Cart) Lines() []CartLine {
	return c.lines
}

// Len returns the number of lines in the cart.
func (c Cart) Len() int {
	return len(c.lines)
}

// Totals recomputes the customer total, agencies total and profit by
// summation over the current lines. Nothing is cached, so the result is
// always consistent with the cart's state.
func (c Cart) Totals() CartTotals {
	var t CartTotals
	for _, line := range c.lines {
		t.Customer += line.Amount
		t.Agencies += line.AgenciesAmount
	}
	t.Profit = t.Customer - t.Agencies
	return t
}
