package forms

import "strconv"

type PropertyForm struct {
	Title       string  `json:"title"`
	Type        string  `json:"type"`
	City        string  `json:"city"`
	District    string  `json:"district"`
	Address     string  `json:"address"`
	Price       float64 `json:"price"`
	AreaSqm     float64 `json:"area_sqm"`
	Bedrooms    int     `json:"bedrooms"`
	Description string  `json:"description"`
}

var propertyTypes = map[string]bool{
	"apartment": true,
	"villa":     true,
	"land":      true,
	"building":  true,
	"office":    true,
	"shop":      true,
}

func (f *PropertyForm) Validate() error {
	return firstError(
		func() *FieldError { return required("title", f.Title, "عنوان الإعلان") },
		func() *FieldError {
			if !propertyTypes[f.Type] {
				return &FieldError{Field: "type", Message: "نوع العقار غير معروف"}
			}
			return nil
		},
		func() *FieldError { return required("city", f.City, "المدينة") },
		func() *FieldError {
			if f.Price <= 0 {
				return &FieldError{Field: "price", Message: "السعر يجب أن يكون أكبر من صفر"}
			}
			return nil
		},
		func() *FieldError {
			if f.AreaSqm < 0 {
				return &FieldError{Field: "area_sqm", Message: "المساحة غير صالحة"}
			}
			return nil
		},
	)
}

// BidForm validates the raw amount typed into the bid box. The amount
// arrives as text so a non-numeric entry fails validation instead of
// decoding to zero.
type BidForm struct {
	Amount     string  `json:"amount"`
	MinAllowed float64 `json:"-"`

	parsed float64
}

func (f *BidForm) Validate() error {
	return firstError(
		func() *FieldError { return required("amount", f.Amount, "مبلغ المزايدة") },
		func() *FieldError {
			v, err := strconv.ParseFloat(f.Amount, 64)
			if err != nil {
				return &FieldError{Field: "amount", Message: "مبلغ المزايدة يجب أن يكون رقمًا"}
			}
			f.parsed = v
			return nil
		},
		func() *FieldError {
			if f.parsed <= 0 {
				return &FieldError{Field: "amount", Message: "مبلغ المزايدة يجب أن يكون أكبر من صفر"}
			}
			return nil
		},
		func() *FieldError {
			if f.MinAllowed > 0 && f.parsed < f.MinAllowed {
				return &FieldError{Field: "amount", Message: "المبلغ أقل من الحد الأدنى للمزايدة"}
			}
			return nil
		},
	)
}

// Value returns the parsed amount. Valid only after Validate succeeds.
func (f *BidForm) Value() float64 {
	return f.parsed
}
