package models

import (
	"encoding/json"
	"testing"
)

func TestDecodeFlexibleNativeStructure(t *testing.T) {
	raw := json.RawMessage(`[{"name":"front","path":"/img/1.jpg","type":"photo"}]`)
	var images []Image
	if err := DecodeFlexible(raw, &images); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(images) != 1 || images[0].Path != "/img/1.jpg" {
		t.Fatalf("unexpected images: %+v", images)
	}
}

func TestDecodeFlexibleStringEncoded(t *testing.T) {
	raw := json.RawMessage(`"[\"مسبح\",\"مصعد\"]"`)
	var features []string
	if err := DecodeFlexible(raw, &features); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(features) != 2 || features[0] != "مسبح" {
		t.Fatalf("unexpected features: %+v", features)
	}
}

func TestDecodeFlexibleAbsent(t *testing.T) {
	cases := []struct {
		name string
		raw  json.RawMessage
	}{
		{"empty", json.RawMessage("")},
		{"null", json.RawMessage("null")},
		{"empty string", json.RawMessage(`""`)},
		{"null string", json.RawMessage(`"null"`)},
		{"undefined string", json.RawMessage(`"undefined"`)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			features := []string{"default"}
			if err := DecodeFlexible(tc.raw, &features); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(features) != 1 || features[0] != "default" {
				t.Fatalf("default was not preserved: %+v", features)
			}
		})
	}
}

func TestDecodeFlexibleMalformed(t *testing.T) {
	cases := []struct {
		name string
		raw  json.RawMessage
	}{
		{"broken json", json.RawMessage(`[{"name":`)},
		{"broken string payload", json.RawMessage(`"[{\"name\":"`)},
		{"wrong shape", json.RawMessage(`{"name":"x"}`)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var images []Image
			if err := DecodeFlexible(tc.raw, &images); err == nil {
				t.Fatal("expected an error for malformed payload")
			}
		})
	}
}

func TestNormalizeSubstitutesDefaults(t *testing.T) {
	payload := PropertyPayload{
		RawImages:    json.RawMessage(`[{"name":`),
		RawFeatures:  json.RawMessage(`"not json at all"`),
		RawAmenities: json.RawMessage(`["حديقة"]`),
		RawRooms:     json.RawMessage(`"[{\"name\":\"غرفة نوم\",\"count\":3}]"`),
		RawLocation:  json.RawMessage(`{"lat":24.7136,"lng":46.6753}`),
	}
	payload.Slug = "villa-riyadh-42"

	prop := payload.Normalize()
	if len(prop.Images) != 0 {
		t.Fatalf("expected empty images, got %+v", prop.Images)
	}
	if len(prop.Features) != 0 {
		t.Fatalf("expected empty features, got %+v", prop.Features)
	}
	if len(prop.Amenities) != 1 || prop.Amenities[0] != "حديقة" {
		t.Fatalf("unexpected amenities: %+v", prop.Amenities)
	}
	if len(prop.Rooms) != 1 || prop.Rooms[0].Count != 3 {
		t.Fatalf("unexpected rooms: %+v", prop.Rooms)
	}
	if prop.Location == nil || prop.Location.Lat != 24.7136 {
		t.Fatalf("unexpected location: %+v", prop.Location)
	}
	if prop.StreetDetails != nil {
		t.Fatalf("expected nil street details, got %+v", prop.StreetDetails)
	}
}

func TestPropertyPayloadUnmarshal(t *testing.T) {
	body := []byte(`{
		"id": 7,
		"slug": "apartment-jeddah-12",
		"title": "شقة في جدة",
		"type": "apartment",
		"status": "active",
		"price": 450000,
		"images": "[{\"name\":\"main\",\"path\":\"/p/7/main.jpg\",\"type\":\"photo\"}]",
		"features": ["مطبخ مجهز"]
	}`)

	var payload PropertyPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}

	prop := payload.Normalize()
	if prop.ID != 7 || prop.Slug != "apartment-jeddah-12" {
		t.Fatalf("scalar fields lost: %+v", prop)
	}
	if len(prop.Images) != 1 || prop.Images[0].Name != "main" {
		t.Fatalf("string-encoded images not decoded: %+v", prop.Images)
	}
	if len(prop.Features) != 1 || prop.Features[0] != "مطبخ مجهز" {
		t.Fatalf("native features not decoded: %+v", prop.Features)
	}
}
