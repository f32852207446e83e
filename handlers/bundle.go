package handlers

// HandlerBundle groups every handler the router needs, assembled once in main.
type HandlerBundle struct {
	Booking      *BookingHandler
	Catalog      *CatalogHandler
	Inventory    *InventoryHandler
	Vitals       *VitalsHandler
	Appointments *AppointmentHandler
}
