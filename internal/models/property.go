package models

import (
	"encoding/json"
	"log"
	"time"
)

const (
	PropertyStatusActive    = "active"
	PropertyStatusPending   = "pending"
	PropertyStatusSold      = "sold"
	PropertyStatusWithdrawn = "withdrawn"
)

const (
	PropertyTypeApartment = "apartment"
	PropertyTypeVilla     = "villa"
	PropertyTypeLand      = "land"
	PropertyTypeBuilding  = "building"
	PropertyTypeOffice    = "office"
	PropertyTypeShop      = "shop"
)

type Property struct {
	ID       int     `json:"id"`
	Slug     string  `json:"slug"`
	Title    string  `json:"title"`
	Type     string  `json:"type"`
	Status   string  `json:"status"`
	City     string  `json:"city"`
	District string  `json:"district"`
	Address  string  `json:"address"`
	Price    float64 `json:"price"`
	AreaSqm  float64 `json:"area_sqm"`
	Bedrooms int     `json:"bedrooms"`
	Seller   struct {
		ID         int     `json:"id"`
		Name       string  `json:"name"`
		Phone      string  `json:"phone"`
		AvatarPath *string `json:"avatar_path,omitempty"`
	} `json:"seller"`
	Images        []Image        `json:"images"`
	Features      []string       `json:"features"`
	Amenities     []string       `json:"amenities"`
	Rooms         []Room         `json:"rooms"`
	Location      *GeoPoint      `json:"location,omitempty"`
	StreetDetails *StreetDetails `json:"street_details,omitempty"`
	AuctionID     *int           `json:"auction_id,omitempty"`
	Views         int            `json:"views"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     *time.Time     `json:"updated_at,omitempty"`
}

type Image struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

type Room struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	AreaSqm float64 `json:"area_sqm,omitempty"`
}

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type StreetDetails struct {
	WidthM float64 `json:"width_m"`
	Facing string  `json:"facing"`
	Corner bool    `json:"corner"`
}

// PropertyPayload is the wire shape of a property record. Tenants disagree
// on whether the nested collections come back as JSON text or as decoded
// structures, so those fields stay raw until Normalize resolves them.
type PropertyPayload struct {
	Property
	RawImages        json.RawMessage `json:"images"`
	RawFeatures      json.RawMessage `json:"features"`
	RawAmenities     json.RawMessage `json:"amenities"`
	RawRooms         json.RawMessage `json:"rooms"`
	RawLocation      json.RawMessage `json:"location"`
	RawStreetDetails json.RawMessage `json:"street_details"`
}

// Normalize resolves every flexible field, falling back to an empty
// collection (or nil) when a payload is malformed. Bad sub-fields are
// logged and skipped; they never fail the record.
func (p PropertyPayload) Normalize() Property {
	prop := p.Property

	prop.Images = []Image{}
	if err := DecodeFlexible(p.RawImages, &prop.Images); err != nil {
		log.Printf("property %q: images payload: %v", p.Slug, err)
		prop.Images = []Image{}
	}

	prop.Features = []string{}
	if err := DecodeFlexible(p.RawFeatures, &prop.Features); err != nil {
		log.Printf("property %q: features payload: %v", p.Slug, err)
		prop.Features = []string{}
	}

	prop.Amenities = []string{}
	if err := DecodeFlexible(p.RawAmenities, &prop.Amenities); err != nil {
		log.Printf("property %q: amenities payload: %v", p.Slug, err)
		prop.Amenities = []string{}
	}

	prop.Rooms = []Room{}
	if err := DecodeFlexible(p.RawRooms, &prop.Rooms); err != nil {
		log.Printf("property %q: rooms payload: %v", p.Slug, err)
		prop.Rooms = []Room{}
	}

	var loc GeoPoint
	prop.Location = nil
	if err := DecodeFlexible(p.RawLocation, &loc); err != nil {
		log.Printf("property %q: location payload: %v", p.Slug, err)
	} else if loc != (GeoPoint{}) {
		prop.Location = &loc
	}

	var street StreetDetails
	prop.StreetDetails = nil
	if err := DecodeFlexible(p.RawStreetDetails, &street); err != nil {
		log.Printf("property %q: street details payload: %v", p.Slug, err)
	} else if street != (StreetDetails{}) {
		prop.StreetDetails = &street
	}

	return prop
}

type PropertyFilter struct {
	City     string  `json:"city,omitempty"`
	District string  `json:"district,omitempty"`
	Type     string  `json:"type,omitempty"`
	Status   string  `json:"status,omitempty"`
	PriceMin float64 `json:"price_min,omitempty"`
	PriceMax float64 `json:"price_max,omitempty"`
	Page     int     `json:"page,omitempty"`
	Limit    int     `json:"limit,omitempty"`
}

type PropertyList struct {
	Properties []Property `json:"properties"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
}

type CreatePropertyRequest struct {
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	City        string   `json:"city"`
	District    string   `json:"district"`
	Address     string   `json:"address"`
	Price       float64  `json:"price"`
	AreaSqm     float64  `json:"area_sqm"`
	Bedrooms    int      `json:"bedrooms"`
	Description string   `json:"description"`
	Features    []string `json:"features,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
}
