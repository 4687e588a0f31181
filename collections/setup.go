package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the items, quotes and
// quote_items collections exist.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "items", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "code", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "size", Required: false})
		c.Fields.Add(&core.TextField{Name: "spec", Required: false})
		c.Fields.Add(&core.TextField{Name: "category", Required: false})
		c.Fields.Add(&core.NumberField{Name: "price_1_3", Required: false})
		c.Fields.Add(&core.NumberField{Name: "price_4_7", Required: false})
		c.Fields.Add(&core.NumberField{Name: "price_8_10", Required: false})
		c.Fields.Add(&core.NumberField{Name: "price_11_14", Required: false})
		c.Fields.Add(&core.NumberField{Name: "price_15_20", Required: false})
		c.Fields.Add(&core.NumberField{Name: "price_21_31", Required: false})
		c.Fields.Add(&core.NumberField{Name: "price_1_2m", Required: false})
		c.Fields.Add(&core.NumberField{Name: "price_2_3m", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	quotes := ensureCollection(app, "quotes", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "event_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "event_date", Required: false})
		c.Fields.Add(&core.TextField{Name: "event_location", Required: false})
		c.Fields.Add(&core.TextField{Name: "install_date", Required: false})
		c.Fields.Add(&core.TextField{Name: "retrieval_date", Required: false})
		c.Fields.Add(&core.TextField{Name: "contact_person", Required: false})
		c.Fields.Add(&core.TextField{Name: "contact_phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "start_date", Required: false})
		c.Fields.Add(&core.TextField{Name: "end_date", Required: false})
		c.Fields.Add(&core.NumberField{Name: "rental_days", Required: false})
		c.Fields.Add(&core.NumberField{Name: "tier", Required: false})
		c.Fields.Add(&core.NumberField{Name: "transport_qty", Required: false})
		c.Fields.Add(&core.NumberField{Name: "transport_unit_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "subtotal", Required: false})
		c.Fields.Add(&core.NumberField{Name: "transport_total", Required: false})
		c.Fields.Add(&core.NumberField{Name: "supply_total", Required: false})
		c.Fields.Add(&core.NumberField{Name: "vat", Required: false})
		c.Fields.Add(&core.NumberField{Name: "grand_total", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "quote_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quote",
			Required:      true,
			CollectionId:  quotes.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "item_code", Required: false})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "size", Required: false})
		c.Fields.Add(&core.NumberField{Name: "qty", Required: true})
		c.Fields.Add(&core.NumberField{Name: "unit_price", Required: false})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
