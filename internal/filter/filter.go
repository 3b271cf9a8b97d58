package filter

// ListingType says whether the user is browsing sales or rentals. The empty
// value means no selection.
type ListingType string

const (
	Sale ListingType = "SALE"
	Rent ListingType = "RENT"
)

// State captures the current search form selections. It lives in memory for
// the lifetime of the filter panel, is mutated by picker callbacks, and is
// read (never mutated) when a search is compiled. It is not persisted.
type State struct {
	Category Category
	Location Location
	Price    Price
	Details  Details
}

// Category is the category picker selection.
type Category struct {
	ListingType  ListingType
	PropertyType string
	Subtype      string
}

// Location holds the multi-select location picker results. Ids and names are
// parallel slices in picker order.
type Location struct {
	CityIDs         []int
	DistrictIDs     []int
	NeighborhoodIDs []int

	CityNames         []string
	DistrictNames     []string
	NeighborhoodNames []string
}

// Price holds the price range as numeric strings; empty means unbounded.
type Price struct {
	Min string
	Max string
}

// Details is a tagged variant over the six property types. At most one field
// is non-nil for a populated selection; all-nil means no detail filters. The
// variant makes the per-endpoint seam explicit: each type owns its schema and
// its param builder, and an endpoint whose builder is still empty narrows
// nothing.
type Details struct {
	House      *HouseDetails
	Office     *OfficeDetails
	Commercial *CommercialDetails
	Land       *LandDetails
	Industrial *IndustrialDetails
	Service    *ServiceDetails
}

// HouseDetails is the detail schema for the house endpoint. Scalar fields
// become single query params, slice fields repeat one param per value, and
// Features emits one param per true-valued key.
type HouseDetails struct {
	RoomCount       string
	BathroomCount   string
	MinSquareMeters string
	MaxSquareMeters string

	HeatingTypes []string
	BuildingAges []string

	Features map[string]bool
}

// OfficeDetails is the detail schema for the office endpoint.
type OfficeDetails struct {
	MinSquareMeters string
	MaxSquareMeters string

	Features map[string]bool
}

// CommercialDetails is the detail schema for the commercial endpoint.
type CommercialDetails struct {
	MinSquareMeters string
	MaxSquareMeters string

	Features map[string]bool
}

// LandDetails is the detail schema for the land endpoint.
type LandDetails struct {
	MinSquareMeters string
	MaxSquareMeters string
	ZoningStatus    string

	Features map[string]bool
}

// IndustrialDetails is the detail schema for the industrial endpoint.
type IndustrialDetails struct {
	MinSquareMeters string
	MaxSquareMeters string

	Features map[string]bool
}

// ServiceDetails is the detail schema for the service endpoint.
type ServiceDetails struct {
	MinSquareMeters string
	MaxSquareMeters string

	Features map[string]bool
}
