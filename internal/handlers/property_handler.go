package handlers

import (
	"io"
	"net/http"
	"strconv"

	"mazadWeb/internal/forms"
	"mazadWeb/internal/models"
	"mazadWeb/internal/services"
)

type PropertyHandler struct {
	Service *services.PropertyService
}

// publishResponse carries the created listing back together with the
// outcome toast.
type publishResponse struct {
	Property models.Property `json:"property"`
	Toast    models.Toast    `json:"toast"`
}

func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.PropertyFilter{
		City:     q.Get("city"),
		District: q.Get("district"),
		Type:     q.Get("type"),
		Status:   q.Get("status"),
	}
	filter.PriceMin, _ = strconv.ParseFloat(q.Get("price_min"), 64)
	filter.PriceMax, _ = strconv.ParseFloat(q.Get("price_max"), 64)
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	view, err := h.Service.List(r.Context(), filter)
	if err != nil {
		respondError(w, "ListProperties", err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *PropertyHandler) PropertyBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get(":slug")
	if slug == "" {
		writeToast(w, http.StatusBadRequest, models.ErrorToast("رابط العقار غير صالح"))
		return
	}

	page, err := h.Service.Page(r.Context(), slug)
	if err != nil {
		respondError(w, "PropertyBySlug", err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// CreateProperty accepts the publish form as multipart: scalar fields as
// form values, photos under "images".
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		writeToast(w, http.StatusUnauthorized, models.ErrorToast("يجب تسجيل الدخول أولًا"))
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeToast(w, http.StatusBadRequest, models.ErrorToast("طلب غير صالح"))
		return
	}

	var form forms.PropertyForm
	form.Title = r.FormValue("title")
	form.Type = r.FormValue("type")
	form.City = r.FormValue("city")
	form.District = r.FormValue("district")
	form.Address = r.FormValue("address")
	form.Description = r.FormValue("description")
	form.Price, _ = strconv.ParseFloat(r.FormValue("price"), 64)
	form.AreaSqm, _ = strconv.ParseFloat(r.FormValue("area_sqm"), 64)
	form.Bedrooms, _ = strconv.Atoi(r.FormValue("bedrooms"))

	var images []services.ListingImage
	for _, fileHeader := range r.MultipartForm.File["images"] {
		file, err := fileHeader.Open()
		if err != nil {
			writeToast(w, http.StatusBadRequest, models.ErrorToast("تعذرت قراءة إحدى الصور"))
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			writeToast(w, http.StatusBadRequest, models.ErrorToast("تعذرت قراءة إحدى الصور"))
			return
		}
		images = append(images, services.ListingImage{
			Data:        data,
			ContentType: fileHeader.Header.Get("Content-Type"),
		})
	}

	prop, err := h.Service.Publish(r.Context(), sess, form, images)
	if err != nil {
		respondError(w, "CreateProperty", err)
		return
	}

	writeJSON(w, http.StatusCreated, publishResponse{
		Property: prop,
		Toast:    models.SuccessToast("تم إرسال إعلانك وسيظهر بعد المراجعة"),
	})
}

func (h *PropertyHandler) MyListings(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		writeToast(w, http.StatusUnauthorized, models.ErrorToast("يجب تسجيل الدخول أولًا"))
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	view, err := h.Service.MyListings(r.Context(), sess, page, limit)
	if err != nil {
		respondError(w, "MyListings", err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
