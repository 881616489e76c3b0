package inventory

import "strings"

// OtherBrand buckets vehicles whose name matches no known manufacturer.
const OtherBrand = "Other"

// KnownBrands is matched in order against the vehicle name; the first
// substring hit wins, so longer names that contain shorter ones come first.
var KnownBrands = []string{
	"Mercedes-Benz",
	"BMW",
	"Porsche",
	"Audi",
	"Lexus",
	"Tesla",
	"Ferrari",
	"Lamborghini",
	"Maserati",
	"Bentley",
	"Rolls-Royce",
	"Aston Martin",
	"McLaren",
	"Jaguar",
	"Land Rover",
	"Range Rover",
	"Cadillac",
	"Genesis",
	"Volvo",
	"Toyota",
	"Honda",
	"Ford",
	"Chevrolet",
}

// DeriveBrand returns the first known brand contained in name.
func DeriveBrand(name string) string {
	for _, brand := range KnownBrands {
		if strings.Contains(name, brand) {
			return brand
		}
	}
	return OtherBrand
}
