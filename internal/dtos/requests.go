package dtos

import "github.com/google/uuid"

// Request payloads. Validation tags are enforced in the controllers
// before anything reaches a service.

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type ComplexRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=200"`
	Address    string  `json:"address" validate:"required,min=1,max=300"`
	Management *string `json:"management,omitempty" validate:"omitempty,max=200"`
	Contact    *string `json:"contact,omitempty" validate:"omitempty,max=200"`
}

type BuildingRequest struct {
	ComplexID uuid.UUID `json:"complex_id" validate:"required"`
	Number    int       `json:"number" validate:"required,min=1"`
	Floors    int       `json:"floors" validate:"required,min=1"`
}

type BuildingUpdateRequest struct {
	Number int `json:"number" validate:"required,min=1"`
	Floors int `json:"floors" validate:"required,min=1"`
}

type EntranceRequest struct {
	BuildingID uuid.UUID `json:"building_id" validate:"required"`
	Number     int       `json:"number" validate:"required,min=1"`
}

type EntranceUpdateRequest struct {
	Number int `json:"number" validate:"required,min=1"`
}

type ApartmentRequest struct {
	EntranceID uuid.UUID  `json:"entrance_id" validate:"required"`
	OwnerID    *uuid.UUID `json:"owner_id,omitempty"`
	Number     int        `json:"number" validate:"required,min=1"`
	Floor      int        `json:"floor" validate:"min=0"`
	Rooms      int        `json:"rooms" validate:"required,min=1"`
	AreaM2     *int       `json:"area_m2,omitempty" validate:"omitempty,min=1"`
}

type OwnerRequest struct {
	Name  string  `json:"name" validate:"required,min=1,max=200"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=32"`
}

type ResidentRequest struct {
	ApartmentID *uuid.UUID `json:"apartment_id,omitempty"`
	FullName    string     `json:"full_name" validate:"required,min=1,max=200"`
	Contact     *string    `json:"contact,omitempty" validate:"omitempty,max=200"`
	Role        *string    `json:"role,omitempty" validate:"omitempty,max=100"`
}

type StaffRequest struct {
	ComplexID    uuid.UUID `json:"complex_id"`
	FullName     string    `json:"full_name" validate:"required,min=1,max=200"`
	Contact      *string   `json:"contact,omitempty" validate:"omitempty,max=200"`
	Role         *string   `json:"role,omitempty" validate:"omitempty,max=100"`
	WorkSchedule *string   `json:"work_schedule,omitempty" validate:"omitempty,max=200"`
}

type ParkingZoneRequest struct {
	EntranceID uuid.UUID `json:"entrance_id" validate:"required"`
	Type       *string   `json:"type,omitempty" validate:"omitempty,max=100"`
	Location   *string   `json:"location,omitempty" validate:"omitempty,max=200"`
}

type ParkingSpotRequest struct {
	ZoneID  uuid.UUID `json:"parking_zone_id" validate:"required"`
	OwnerID uuid.UUID `json:"owner_id" validate:"required"`
	Number  int       `json:"number" validate:"required,min=1"`
	Status  *string   `json:"status,omitempty" validate:"omitempty,max=50"`
}

type StorageRoomRequest struct {
	ApartmentID *uuid.UUID `json:"apartment_id,omitempty"`
	Number      string     `json:"number" validate:"required,min=1,max=50"`
	Location    string     `json:"location" validate:"required,min=1,max=200"`
	Status      string     `json:"status,omitempty" validate:"omitempty,oneof=free occupied"`
}

type VisitorRequest struct {
	ApartmentID *uuid.UUID `json:"apartment_id,omitempty"`
	FullName    string     `json:"full_name" validate:"required,min=1,max=200"`
	Purpose     string     `json:"purpose" validate:"required,min=1,max=300"`
}

type TicketRequest struct {
	ApartmentID uuid.UUID `json:"apartment_id" validate:"required"`
	Description string    `json:"description" validate:"required,min=1,max=2000"`
}

type AccountRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type ComplexAdminAccountRequest struct {
	AccountRequest
	ComplexID uuid.UUID `json:"complex_id" validate:"required"`
}

type OwnerAccountRequest struct {
	AccountRequest
	OwnerID uuid.UUID `json:"owner_id" validate:"required"`
}

type StaffAccountRequest struct {
	AccountRequest
	StaffID    uuid.UUID `json:"staff_id" validate:"required"`
	AccessType string    `json:"access_type" validate:"required,oneof=guard maintenance"`
}

type UpdateEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}
