package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type productDef struct {
	id            int
	nameEN        string
	nameTA        string
	customerPrice string
	agenciesPrice string
}

// catalog is the SVPP fireworks price list. Price fields are kept exactly
// as published, label included; a blank or malformed field prices the
// product at zero rather than blocking billing.
var catalog = []productDef{
	{101, "Flower Pots Big", "பூச்சட்டி பெரியது", "Rs. 33.00", "Rs. 25.00"},
	{102, "Flower Pots Small", "பூச்சட்டி சிறியது", "Rs. 22.00", "Rs. 16.00"},
	{103, "Flower Pots Special", "பூச்சட்டி ஸ்பெஷல்", "Rs. 48.00", "Rs. 36.00"},
	{104, "Ground Chakkar Big", "தரைச்சக்கரம் பெரியது", "Rs. 38.00", "Rs. 28.00"},
	{105, "Ground Chakkar Special", "தரைச்சக்கரம் ஸ்பெஷல்", "Rs. 55.00", "Rs. 41.00"},
	{106, "Twinkling Star", "ட்விங்க்லிங் ஸ்டார்", "Rs. 28.00", "Rs. 20.00"},
	{107, "Electric Sparklers 10cm", "மின்சார மத்தாப்பு 10cm", "Rs. 18.00", "Rs. 13.00"},
	{108, "Electric Sparklers 15cm", "மின்சார மத்தாப்பு 15cm", "Rs. 26.00", "Rs. 19.00"},
	{109, "Colour Sparklers 15cm", "கலர் மத்தாப்பு 15cm", "Rs. 30.00", "Rs. 22.00"},
	{110, "Lakshmi Crackers", "லட்சுமி வெடி", "Rs. 15.00", "Rs. 11.00"},
	{111, "Bijili Crackers (50 pcs)", "பிஜிலி வெடி (50)", "Rs. 45.00", "Rs. 33.00"},
	{112, "Atom Bomb", "அணுகுண்டு", "Rs. 60.00", "Rs. 44.00"},
	{113, "Hydro Bomb", "ஹைட்ரோ குண்டு", "Rs. 75.00", "Rs. 55.00"},
	{114, "Rocket Bomb", "ராக்கெட் குண்டு", "Rs. 52.00", "Rs. 38.00"},
	{115, "Whistling Rocket", "விசில் ராக்கெட்", "Rs. 68.00", "Rs. 50.00"},
	{116, "Seven Shot", "செவன் ஷாட்", "Rs. 120.00", "Rs. 90.00"},
	{117, "Colour Fountain", "கலர் ஃபவுண்டன்", "Rs. 95.00", "Rs. 70.00"},
	{118, "Red Fort", "செங்கோட்டை", "Rs. 140.00", "Rs. 105.00"},
	{119, "Aerial Fancy 2\"", "ஏரியல் ஃபான்சி 2\"", "Rs. 250.00", "Rs. 185.00"},
	{120, "Deluxe Gift Box (25 items)", "டீலக்ஸ் பரிசு பெட்டி (25)", "Rs. 550.00", "Rs. 410.00"},
}

// Seed populates the products collection with the fireworks price list.
// It is safe to call on every startup because it returns early if any
// product records already exist.
func Seed(app *pocketbase.PocketBase) error {
	productsCol, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return fmt.Errorf("seed: could not find products collection: %w", err)
	}

	existing, err := app.FindAllRecords(productsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query products: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: products collection is empty – inserting catalog …")

	for _, def := range catalog {
		record := core.NewRecord(productsCol)
		record.Set("product_id", def.id)
		record.Set("name_en", def.nameEN)
		record.Set("name_ta", def.nameTA)
		record.Set("customer_price", def.customerPrice)
		record.Set("agencies_price", def.agenciesPrice)

		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: could not save product %d: %w", def.id, err)
		}
	}

	log.Printf("seed: inserted %d products", len(catalog))
	return nil
}
