package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"mazadWeb/internal/forms"
	"mazadWeb/internal/models"
)

type stubPropertyAPI struct {
	property models.Property
	auction  models.Auction

	created       *models.CreatePropertyRequest
	createdImages []string
}

func (s *stubPropertyAPI) Properties(ctx context.Context, filter models.PropertyFilter) (models.PropertyList, error) {
	return models.PropertyList{Properties: []models.Property{s.property}, Total: 1, Page: 1}, nil
}

func (s *stubPropertyAPI) PropertyBySlug(ctx context.Context, slug string) (models.Property, error) {
	if slug != s.property.Slug {
		return models.Property{}, models.ErrPropertyNotFound
	}
	return s.property, nil
}

func (s *stubPropertyAPI) CreateProperty(ctx context.Context, accessToken string, req models.CreatePropertyRequest, imagePaths []string) (models.Property, error) {
	s.created = &req
	s.createdImages = imagePaths
	return models.Property{ID: 11, Slug: "new-listing", Title: req.Title}, nil
}

func (s *stubPropertyAPI) MyProperties(ctx context.Context, accessToken string, page, limit int) (models.PropertyList, error) {
	return models.PropertyList{Properties: []models.Property{s.property}, Total: 1, Page: page}, nil
}

func (s *stubPropertyAPI) AuctionByID(ctx context.Context, id int) (models.Auction, error) {
	if id != s.auction.ID {
		return models.Auction{}, models.ErrAuctionNotFound
	}
	return s.auction, nil
}

func testProperty() models.Property {
	return models.Property{
		ID:      5,
		Slug:    "villa-riyadh-5",
		Title:   "فيلا في حي النرجس",
		Type:    models.PropertyTypeVilla,
		Status:  models.PropertyStatusActive,
		City:    "الرياض",
		Price:   1200000,
		AreaSqm: 450,
		Images:  []models.Image{{Name: "main", Path: "/p/5/main.jpg", Type: "photo"}},
	}
}

func TestPropertyListCards(t *testing.T) {
	api := &stubPropertyAPI{property: testProperty()}
	svc := &PropertyService{API: api, Now: func() time.Time { return testNow }}

	view, err := svc.List(context.Background(), models.PropertyFilter{City: "الرياض"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Properties) != 1 {
		t.Fatalf("expected one card, got %d", len(view.Properties))
	}

	card := view.Properties[0]
	if card.TypeText != "فيلا" || card.StatusText != "متاح" {
		t.Fatalf("unexpected labels: %q %q", card.TypeText, card.StatusText)
	}
	if card.PriceText != "1,200,000 ر.س" {
		t.Fatalf("PriceText = %q", card.PriceText)
	}
	if card.AreaText != "450 م²" {
		t.Fatalf("AreaText = %q", card.AreaText)
	}
	if card.CoverImage != "/p/5/main.jpg" {
		t.Fatalf("CoverImage = %q", card.CoverImage)
	}
}

func TestPropertyPageAttachesAuction(t *testing.T) {
	prop := testProperty()
	auctionID := 3
	prop.AuctionID = &auctionID

	api := &stubPropertyAPI{property: prop, auction: liveAuction()}
	svc := &PropertyService{API: api, Now: func() time.Time { return testNow }}

	page, err := svc.Page(context.Background(), "villa-riyadh-5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Auction == nil {
		t.Fatal("auction card missing from property page")
	}
	if page.Auction.StatusText != "مباشر" {
		t.Fatalf("auction StatusText = %q", page.Auction.StatusText)
	}
}

func TestPublishRoleGate(t *testing.T) {
	api := &stubPropertyAPI{}
	uploader := &stubUploader{}
	svc := &PropertyService{API: api, Uploader: uploader, Now: func() time.Time { return testNow }}

	form := forms.PropertyForm{Title: "فيلا", Type: "villa", City: "الرياض", Price: 1000000}
	images := []ListingImage{{Data: []byte{0xFF, 0xD8}, ContentType: "image/jpeg"}}

	sess := buyerSession()
	if _, err := svc.Publish(context.Background(), sess, form, images); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("buyer publish should be forbidden, got %v", err)
	}
	if uploader.uploads != 0 {
		t.Fatal("forbidden publish must not upload images")
	}

	sess.User.Role = models.RoleSeller
	prop, err := svc.Publish(context.Background(), sess, form, images)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prop.ID != 11 {
		t.Fatalf("unexpected property: %+v", prop)
	}
	if uploader.uploads != 1 || len(api.createdImages) != 1 {
		t.Fatalf("images not uploaded and forwarded: uploads=%d paths=%v", uploader.uploads, api.createdImages)
	}
}

func TestPublishUploadFailureStops(t *testing.T) {
	api := &stubPropertyAPI{}
	uploader := &stubUploader{err: errors.New("storage down")}
	svc := &PropertyService{API: api, Uploader: uploader, Now: func() time.Time { return testNow }}

	sess := buyerSession()
	sess.User.Role = models.RoleAgent

	form := forms.PropertyForm{Title: "فيلا", Type: "villa", City: "الرياض", Price: 1000000}
	images := []ListingImage{{Data: []byte{1}, ContentType: "image/jpeg"}}

	if _, err := svc.Publish(context.Background(), sess, form, images); err == nil {
		t.Fatal("expected upload error")
	}
	if api.created != nil {
		t.Fatal("platform create must not run after a failed upload")
	}
}
