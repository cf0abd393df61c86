package model

import "time"

// Inquiry Types
type InquiryType string

const (
	InquiryTypeViewing InquiryType = "viewing"
	InquiryTypeInfo    InquiryType = "info"
	InquiryTypeOffer   InquiryType = "offer"
)

// Inquiry Status
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusScheduled InquiryStatus = "scheduled"
	InquiryStatusClosed    InquiryStatus = "closed"
)

// Inquiry is append-mostly: no updatedAt, occasional status patch.
type Inquiry struct {
	ID         string        `json:"id"`
	PropertyID string        `json:"propertyId"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone,omitempty"`
	Message    string        `json:"message,omitempty"`
	Type       InquiryType   `json:"type,omitempty"`
	Status     InquiryStatus `json:"status,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
}

type InquiryFilters struct {
	PropertyID string        `json:"propertyId,omitempty"`
	Status     InquiryStatus `json:"status,omitempty"`
	Type       InquiryType   `json:"type,omitempty"`
	Page       int           `json:"page,omitempty"`
	PageSize   int           `json:"pageSize,omitempty"`
}

type InquiryPatch struct {
	Name    *string        `json:"name"`
	Email   *string        `json:"email"`
	Phone   *string        `json:"phone"`
	Message *string        `json:"message"`
	Type    *InquiryType   `json:"type"`
	Status  *InquiryStatus `json:"status"`
}

// Apply merges the set fields of the patch into q.
func (patch InquiryPatch) Apply(q *Inquiry) {
	if patch.Name != nil {
		q.Name = *patch.Name
	}
	if patch.Email != nil {
		q.Email = *patch.Email
	}
	if patch.Phone != nil {
		q.Phone = *patch.Phone
	}
	if patch.Message != nil {
		q.Message = *patch.Message
	}
	if patch.Type != nil {
		q.Type = *patch.Type
	}
	if patch.Status != nil {
		q.Status = *patch.Status
	}
}
