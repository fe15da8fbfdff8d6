package routes

const (
	Health = "/health"
	Login  = "/api/v1/auth/login"

	Complexes = "/api/v1/complexes"
	Complex   = "/api/v1/complexes/{id}"

	Buildings          = "/api/v1/buildings"
	Building           = "/api/v1/buildings/{id}"
	BuildingsByComplex = "/api/v1/complexes/{complexId}/buildings"

	Entrances           = "/api/v1/entrances"
	Entrance            = "/api/v1/entrances/{id}"
	EntrancesByBuilding = "/api/v1/buildings/{buildingId}/entrances"

	Apartments           = "/api/v1/apartments"
	Apartment            = "/api/v1/apartments/{id}"
	ApartmentsByEntrance = "/api/v1/entrances/{entranceId}/apartments"

	Owners          = "/api/v1/owners"
	Owner           = "/api/v1/owners/{id}"
	OwnerApartments = "/api/v1/owners/{id}/apartments"

	Residents = "/api/v1/residents"
	Resident  = "/api/v1/residents/{id}"

	Staff       = "/api/v1/staff"
	StaffMember = "/api/v1/staff/{id}"

	ParkingZones       = "/api/v1/parking/zones"
	ParkingZone        = "/api/v1/parking/zones/{id}"
	ParkingSpots       = "/api/v1/parking/spots"
	ParkingSpot        = "/api/v1/parking/spots/{id}"
	ParkingSpotsByZone = "/api/v1/parking/zones/{zoneId}/spots"

	StorageRooms = "/api/v1/storage-rooms"
	StorageRoom  = "/api/v1/storage-rooms/{id}"

	Visitors = "/api/v1/visitors"
	Visitor  = "/api/v1/visitors/{id}"

	Tickets    = "/api/v1/maintenance-requests"
	Ticket     = "/api/v1/maintenance-requests/{id}"
	TicketTake = "/api/v1/maintenance-requests/{id}/take"
	TicketDone = "/api/v1/maintenance-requests/{id}/done"

	ComplexAdminAccounts = "/api/v1/accounts/complex-admins"
	ComplexAdminAccount  = "/api/v1/accounts/complex-admins/{id}"

	OwnerAccounts          = "/api/v1/accounts/owners"
	OwnerAccount           = "/api/v1/accounts/owners/{ownerId}"
	OwnerAccountCandidates = "/api/v1/accounts/owners/candidates"
	OwnerAccountsByComplex = "/api/v1/complexes/{complexId}/accounts/owners"
	StaffAccounts          = "/api/v1/accounts/staff"
	StaffAccount           = "/api/v1/accounts/staff/{staffId}"
	StaffAccountCandidates = "/api/v1/accounts/staff/candidates"
	StaffAccountsByComplex = "/api/v1/complexes/{complexId}/accounts/staff"

	MyEmail = "/api/v1/accounts/me/email"
)
