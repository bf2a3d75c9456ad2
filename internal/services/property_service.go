package services

import (
	"context"
	"fmt"
	"time"

	"mazadWeb/internal/forms"
	"mazadWeb/internal/models"
)

// PropertyAPI is the slice of the platform client the property service
// uses.
type PropertyAPI interface {
	Properties(ctx context.Context, filter models.PropertyFilter) (models.PropertyList, error)
	PropertyBySlug(ctx context.Context, slug string) (models.Property, error)
	CreateProperty(ctx context.Context, accessToken string, req models.CreatePropertyRequest, imagePaths []string) (models.Property, error)
	MyProperties(ctx context.Context, accessToken string, page, limit int) (models.PropertyList, error)
	AuctionByID(ctx context.Context, id int) (models.Auction, error)
}

type PropertyService struct {
	API      PropertyAPI
	Uploader ImageUploader

	// Now is swapped in tests; nil means time.Now.
	Now func() time.Time
}

func (s *PropertyService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ListingImage is one image from the publish form, already read out of
// the multipart body.
type ListingImage struct {
	Data        []byte
	ContentType string
}

// List returns property cards for the search page.
func (s *PropertyService) List(ctx context.Context, filter models.PropertyFilter) (PropertyListView, error) {
	list, err := s.API.Properties(ctx, filter)
	if err != nil {
		return PropertyListView{}, err
	}
	return s.toListView(list), nil
}

// Page assembles the property detail page. When the property is tied
// to an auction the auction card rides along.
func (s *PropertyService) Page(ctx context.Context, slug string) (PropertyPage, error) {
	prop, err := s.API.PropertyBySlug(ctx, slug)
	if err != nil {
		return PropertyPage{}, err
	}

	now := s.now()
	page := PropertyPage{PropertyCard: newPropertyCard(prop, now)}

	if prop.AuctionID != nil {
		auction, err := s.API.AuctionByID(ctx, *prop.AuctionID)
		if err == nil {
			card := newAuctionCard(auction, now)
			page.Auction = &card
		}
	}
	return page, nil
}

// Publish uploads the listing images and creates the property. Only
// sellers, agents and admins pass the role gate.
func (s *PropertyService) Publish(ctx context.Context, sess models.Session, form forms.PropertyForm, images []ListingImage) (models.Property, error) {
	if !sess.User.Role.CanPublish() {
		return models.Property{}, fmt.Errorf("%w: role %s cannot publish", models.ErrForbidden, sess.User.Role)
	}
	if err := form.Validate(); err != nil {
		return models.Property{}, err
	}

	paths := make([]string, 0, len(images))
	for _, img := range images {
		url, err := s.Uploader.UploadImage(img.Data, img.ContentType, "properties")
		if err != nil {
			return models.Property{}, err
		}
		paths = append(paths, url)
	}

	return s.API.CreateProperty(ctx, sess.Tokens.AccessToken, models.CreatePropertyRequest{
		Title:       form.Title,
		Type:        form.Type,
		City:        form.City,
		District:    form.District,
		Address:     form.Address,
		Price:       form.Price,
		AreaSqm:     form.AreaSqm,
		Bedrooms:    form.Bedrooms,
		Description: form.Description,
	}, paths)
}

// MyListings returns the seller's own listings for the dashboard.
func (s *PropertyService) MyListings(ctx context.Context, sess models.Session, page, limit int) (PropertyListView, error) {
	list, err := s.API.MyProperties(ctx, sess.Tokens.AccessToken, page, limit)
	if err != nil {
		return PropertyListView{}, err
	}
	return s.toListView(list), nil
}

func (s *PropertyService) toListView(list models.PropertyList) PropertyListView {
	now := s.now()
	view := PropertyListView{
		Properties: make([]PropertyCard, 0, len(list.Properties)),
		Total:      list.Total,
		Page:       list.Page,
	}
	for _, p := range list.Properties {
		view.Properties = append(view.Properties, newPropertyCard(p, now))
	}
	return view
}
