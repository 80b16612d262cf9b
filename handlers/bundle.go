package handlers

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	Catalog      *CatalogHandler
	Availability *AvailabilityHandler
	Booking      *BookingHandler
	Venue        *VenueHandler
	Event        *EventHandler
	Contact      *ContactHandler
}
