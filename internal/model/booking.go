package model

import "time"

// Booking Status
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID         string        `json:"id"`
	PropertyID string        `json:"propertyId"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone,omitempty"`
	Datetime   time.Time     `json:"datetime"`
	Notes      string        `json:"notes,omitempty"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
}

type BookingFilters struct {
	PropertyID string        `json:"propertyId,omitempty"`
	Status     BookingStatus `json:"status,omitempty"`
	Page       int           `json:"page,omitempty"`
	PageSize   int           `json:"pageSize,omitempty"`
}

type BookingPatch struct {
	Name     *string        `json:"name"`
	Email    *string        `json:"email"`
	Phone    *string        `json:"phone"`
	Datetime *time.Time     `json:"datetime"`
	Notes    *string        `json:"notes"`
	Status   *BookingStatus `json:"status"`
}

// Apply merges the set fields of the patch into b.
func (patch BookingPatch) Apply(b *Booking) {
	if patch.Name != nil {
		b.Name = *patch.Name
	}
	if patch.Email != nil {
		b.Email = *patch.Email
	}
	if patch.Phone != nil {
		b.Phone = *patch.Phone
	}
	if patch.Datetime != nil {
		b.Datetime = *patch.Datetime
	}
	if patch.Notes != nil {
		b.Notes = *patch.Notes
	}
	if patch.Status != nil {
		b.Status = *patch.Status
	}
}
