package model

import "time"

// Operation Types
type Operation string

const (
	OperationSale   Operation = "sale"
	OperationRental Operation = "rental"
)

// Property Types
type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeVilla      PropertyType = "villa"
	PropertyTypePenthouse  PropertyType = "penthouse"
	PropertyTypeOffice     PropertyType = "office"
	PropertyTypeCommercial PropertyType = "commercial"
	PropertyTypeWarehouse  PropertyType = "warehouse"
	PropertyTypeLot        PropertyType = "lot"
)

// Property Status
type PropertyStatus string

const (
	PropertyStatusActive   PropertyStatus = "active"
	PropertyStatusReserved PropertyStatus = "reserved"
	PropertyStatusSold     PropertyStatus = "sold"
	PropertyStatusPaused   PropertyStatus = "paused"
)

// Currency Types
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyDOP Currency = "DOP"
)

// Media Kinds
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
	MediaKindTour  MediaKind = "tour"
)

type Media struct {
	URL   string    `json:"url"`
	Kind  MediaKind `json:"kind"`
	Order int       `json:"order"`
}

type Property struct {
	ID           string         `json:"id"`
	Slug         string         `json:"slug"`
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	Operation    Operation      `json:"operation"`
	PropertyType PropertyType   `json:"propertyType"`
	Status       PropertyStatus `json:"status"`
	Price        float64        `json:"price"`
	Currency     Currency       `json:"currency"`

	// Features fields
	Bedrooms  int      `json:"bedrooms,omitempty"`
	Bathrooms int      `json:"bathrooms,omitempty"`
	Parking   int      `json:"parking,omitempty"`
	AreaBuilt float64  `json:"areaBuilt,omitempty"`
	AreaLot   float64  `json:"areaLot,omitempty"`
	Floor     int      `json:"floor,omitempty"`
	YearBuilt int      `json:"yearBuilt,omitempty"`
	Furnished bool     `json:"furnished,omitempty"`
	Amenities []string `json:"amenities,omitempty"`

	// Location fields
	City    string  `json:"city"`
	Zone    string  `json:"zone,omitempty"`
	Address string  `json:"address,omitempty"`
	Lat     float64 `json:"lat,omitempty"`
	Lng     float64 `json:"lng,omitempty"`

	AgentID  string  `json:"agentId,omitempty"`
	Media    []Media `json:"media,omitempty"`
	Featured bool    `json:"featured,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Property Sort Orders
type PropertySort string

const (
	SortNewest    PropertySort = "newest"
	SortPriceLow  PropertySort = "price-low"
	SortPriceHigh PropertySort = "price-high"
	SortAreaLarge PropertySort = "area-large"
	SortAreaSmall PropertySort = "area-small"
)

// PropertyFilters narrows a property listing. All set clauses must hold at
// once; a zero field imposes no constraint. Bedrooms and Bathrooms are
// minimums ("at least N") on every call site.
type PropertyFilters struct {
	Operation    Operation      `json:"operation,omitempty"`
	PropertyType PropertyType   `json:"propertyType,omitempty"`
	Status       PropertyStatus `json:"status,omitempty"`
	MinPrice     float64        `json:"minPrice,omitempty"`
	MaxPrice     float64        `json:"maxPrice,omitempty"`
	Bedrooms     int            `json:"bedrooms,omitempty"`
	Bathrooms    int            `json:"bathrooms,omitempty"`
	MinArea      float64        `json:"minArea,omitempty"`
	MaxArea      float64        `json:"maxArea,omitempty"`
	City         string         `json:"city,omitempty"`
	Zone         string         `json:"zone,omitempty"`
	// Location is a free-text match against city, zone and title.
	Location  string       `json:"location,omitempty"`
	Furnished *bool        `json:"furnished,omitempty"`
	Featured  *bool        `json:"featured,omitempty"`
	Sort      PropertySort `json:"sort,omitempty"`
	Page      int          `json:"page,omitempty"`
	PageSize  int          `json:"pageSize,omitempty"`
}

// PropertyPatch carries a shallow partial update; nil fields are left
// untouched on the target record.
type PropertyPatch struct {
	Title        *string         `json:"title"`
	Description  *string         `json:"description"`
	Operation    *Operation      `json:"operation"`
	PropertyType *PropertyType   `json:"propertyType"`
	Status       *PropertyStatus `json:"status"`
	Price        *float64        `json:"price"`
	Currency     *Currency       `json:"currency"`
	Bedrooms     *int            `json:"bedrooms"`
	Bathrooms    *int            `json:"bathrooms"`
	Parking      *int            `json:"parking"`
	AreaBuilt    *float64        `json:"areaBuilt"`
	AreaLot      *float64        `json:"areaLot"`
	Floor        *int            `json:"floor"`
	YearBuilt    *int            `json:"yearBuilt"`
	Furnished    *bool           `json:"furnished"`
	Amenities    []string        `json:"amenities"`
	City         *string         `json:"city"`
	Zone         *string         `json:"zone"`
	Address      *string         `json:"address"`
	Lat          *float64        `json:"lat"`
	Lng          *float64        `json:"lng"`
	AgentID      *string         `json:"agentId"`
	Media        []Media         `json:"media"`
	Featured     *bool           `json:"featured"`
}

// Apply merges the set fields of the patch into p.
func (patch PropertyPatch) Apply(p *Property) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Operation != nil {
		p.Operation = *patch.Operation
	}
	if patch.PropertyType != nil {
		p.PropertyType = *patch.PropertyType
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Currency != nil {
		p.Currency = *patch.Currency
	}
	if patch.Bedrooms != nil {
		p.Bedrooms = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		p.Bathrooms = *patch.Bathrooms
	}
	if patch.Parking != nil {
		p.Parking = *patch.Parking
	}
	if patch.AreaBuilt != nil {
		p.AreaBuilt = *patch.AreaBuilt
	}
	if patch.AreaLot != nil {
		p.AreaLot = *patch.AreaLot
	}
	if patch.Floor != nil {
		p.Floor = *patch.Floor
	}
	if patch.YearBuilt != nil {
		p.YearBuilt = *patch.YearBuilt
	}
	if patch.Furnished != nil {
		p.Furnished = *patch.Furnished
	}
	if patch.Amenities != nil {
		p.Amenities = patch.Amenities
	}
	if patch.City != nil {
		p.City = *patch.City
	}
	if patch.Zone != nil {
		p.Zone = *patch.Zone
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.Lat != nil {
		p.Lat = *patch.Lat
	}
	if patch.Lng != nil {
		p.Lng = *patch.Lng
	}
	if patch.AgentID != nil {
		p.AgentID = *patch.AgentID
	}
	if patch.Media != nil {
		p.Media = patch.Media
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
}
