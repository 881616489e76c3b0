package domain

// Vehicle is one inventory record as returned by the dealership API.
// Records are replaced wholesale on every catalog load.
type Vehicle struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"required,max=255"`
	Price       int    `json:"price" validate:"min=0"`
	Year        int    `json:"year" validate:"min=1900,max=2030"`
	Mileage     int    `json:"mileage" validate:"min=0"`
	ImageURL    string `json:"image_url" validate:"max=500"`
	Featured    bool   `json:"featured"`
	Description string `json:"description"`
	// Color is nil for vehicles entered before colors were recorded.
	Color *string `json:"color"`
	Specs Specs   `json:"specs"`
}

type Specs struct {
	Engine       string `json:"engine" validate:"max=100"`
	Transmission string `json:"transmission" validate:"max=100"`
	Fuel         string `json:"fuel" validate:"max=50"`
}

// ColorValue returns the color or "" when unset.
func (v Vehicle) ColorValue() string {
	if v.Color == nil {
		return ""
	}
	return *v.Color
}

// HasColor reports whether the vehicle carries a non-empty color.
func (v Vehicle) HasColor() bool {
	return v.Color != nil && *v.Color != ""
}

// StringPtr is a helper for optional string fields.
func StringPtr(s string) *string {
	return &s
}
