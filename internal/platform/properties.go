package platform

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"mazadWeb/internal/models"
)

type propertyListPayload struct {
	Properties []models.PropertyPayload `json:"properties"`
	Total      int                      `json:"total"`
	Page       int                      `json:"page"`
}

// Properties lists properties for the tenant. Collection fields in
// each record are normalized before the list is returned.
func (c *Client) Properties(ctx context.Context, filter models.PropertyFilter) (models.PropertyList, error) {
	query := url.Values{}
	if filter.City != "" {
		query.Set("city", filter.City)
	}
	if filter.District != "" {
		query.Set("district", filter.District)
	}
	if filter.Type != "" {
		query.Set("type", filter.Type)
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.PriceMin > 0 {
		query.Set("price_min", strconv.FormatFloat(filter.PriceMin, 'f', -1, 64))
	}
	if filter.PriceMax > 0 {
		query.Set("price_max", strconv.FormatFloat(filter.PriceMax, 'f', -1, 64))
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	var payload propertyListPayload
	if err := c.do(ctx, http.MethodGet, "/api/v1/properties", query, "", nil, &payload); err != nil {
		return models.PropertyList{}, fmt.Errorf("list properties: %w", err)
	}

	list := models.PropertyList{
		Properties: make([]models.Property, 0, len(payload.Properties)),
		Total:      payload.Total,
		Page:       payload.Page,
	}
	for _, p := range payload.Properties {
		list.Properties = append(list.Properties, p.Normalize())
	}
	return list, nil
}

// PropertyBySlug fetches a single property page record.
func (c *Client) PropertyBySlug(ctx context.Context, slug string) (models.Property, error) {
	var payload models.PropertyPayload
	path := "/api/v1/properties/" + url.PathEscape(slug)
	if err := c.do(ctx, http.MethodGet, path, nil, "", nil, &payload); err != nil {
		return models.Property{}, fmt.Errorf("property %q: %w", slug, err)
	}
	return payload.Normalize(), nil
}

// CreateProperty publishes a new listing on behalf of the signed-in
// seller. Image paths must already live in object storage.
func (c *Client) CreateProperty(ctx context.Context, accessToken string, req models.CreatePropertyRequest, imagePaths []string) (models.Property, error) {
	in := struct {
		models.CreatePropertyRequest
		Images []models.Image `json:"images,omitempty"`
	}{CreatePropertyRequest: req}
	for _, path := range imagePaths {
		in.Images = append(in.Images, models.Image{Name: path, Path: path, Type: "photo"})
	}

	var payload models.PropertyPayload
	if err := c.do(ctx, http.MethodPost, "/api/v1/properties", nil, accessToken, in, &payload); err != nil {
		return models.Property{}, fmt.Errorf("create property: %w", err)
	}
	return payload.Normalize(), nil
}

// MyProperties lists the signed-in seller's own listings, drafts and
// pending ones included.
func (c *Client) MyProperties(ctx context.Context, accessToken string, page, limit int) (models.PropertyList, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var payload propertyListPayload
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/me/properties", query, accessToken, nil, &payload); err != nil {
		return models.PropertyList{}, fmt.Errorf("my properties: %w", err)
	}

	list := models.PropertyList{
		Properties: make([]models.Property, 0, len(payload.Properties)),
		Total:      payload.Total,
		Page:       payload.Page,
	}
	for _, p := range payload.Properties {
		list.Properties = append(list.Properties, p.Normalize())
	}
	return list, nil
}
