package filter

import (
	"net/url"
	"sort"
	"strings"
)

// Endpoint names one of the six backend search sub-resources.
type Endpoint string

const (
	House      Endpoint = "house"
	Office     Endpoint = "office"
	Commercial Endpoint = "commercial"
	Land       Endpoint = "land"
	Industrial Endpoint = "industrial"
	Service    Endpoint = "service"
)

// classificationTable maps category label tokens to endpoints. Order matters:
// classes are tested top to bottom and the first match wins. A label matching
// tokens from two classes resolves to the earlier class; the order itself is
// the canonical tie-break.
var classificationTable = []struct {
	endpoint Endpoint
	tokens   []string
}{
	{House, []string{"KONUT", "DAIRE", "VILLA", "MUSTAKIL", "REZIDANS"}},
	{Office, []string{"OFIS", "BÜRO", "BURO"}},
	{Commercial, []string{"TICARI", "DÜKKAN", "DUKKAN", "MAĞAZA", "MAGAZA"}},
	{Land, []string{"ARSA", "ARAZI", "TARLA", "BAHCE", "BAHÇE"}},
	{Industrial, []string{"SANAYI", "FABRIKA", "DEPO", "ATÖLYE", "ATOLYE"}},
	{Service, []string{"HIZMET", "SERVIS", "ISTASYON"}},
}

// Classify maps a category label to its search endpoint by substring match
// against the classification table. Labels matching no class default to
// house.
func Classify(label string) Endpoint {
	for _, class := range classificationTable {
		for _, token := range class.tokens {
			if strings.Contains(label, token) {
				return class.endpoint
			}
		}
	}
	return House
}

// Subtype extracts the subtype segment from a category label. Labels follow a
// positional convention of underscore-joined segments: a three-segment label
// carries the subtype in the third segment, a two-segment label has none.
// Labels outside the convention yield no subtype.
func Subtype(label string) string {
	parts := strings.Split(label, "_")
	if len(parts) == 3 {
		return parts[2]
	}
	return ""
}

// Compile projects the category label and filter state into the search
// endpoint and its query parameters.
//
// Location is narrowed to the first selected city, district, and neighborhood
// name; the pickers collect multi-selects but only the first of each is sent.
func Compile(label string, st State) (Endpoint, url.Values) {
	endpoint := Classify(label)
	values := url.Values{}

	if len(st.Location.CityNames) > 0 {
		values.Set("city", st.Location.CityNames[0])
	}
	if len(st.Location.DistrictNames) > 0 {
		values.Set("district", st.Location.DistrictNames[0])
	}
	if len(st.Location.NeighborhoodNames) > 0 {
		values.Set("neighborhood", st.Location.NeighborhoodNames[0])
	}

	if st.Price.Min != "" {
		values.Set("minPrice", st.Price.Min)
	}
	if st.Price.Max != "" {
		values.Set("maxPrice", st.Price.Max)
	}

	if subtype := Subtype(label); subtype != "" {
		values.Set("subtype", subtype)
	}

	buildDetailParams(endpoint, st.Details, values)
	return endpoint, values
}

// buildDetailParams dispatches to the per-endpoint builder. Each endpoint has
// its own builder so the six param schemas can grow independently.
func buildDetailParams(endpoint Endpoint, d Details, values url.Values) {
	switch endpoint {
	case House:
		buildHouseParams(d.House, values)
	case Office:
		buildOfficeParams(d.Office, values)
	case Commercial:
		buildCommercialParams(d.Commercial, values)
	case Land:
		buildLandParams(d.Land, values)
	case Industrial:
		buildIndustrialParams(d.Industrial, values)
	case Service:
		buildServiceParams(d.Service, values)
	}
}

func buildHouseParams(d *HouseDetails, values url.Values) {
	if d == nil {
		return
	}
	if d.RoomCount != "" {
		values.Set("roomCount", d.RoomCount)
	}
	if d.BathroomCount != "" {
		values.Set("bathroomCount", d.BathroomCount)
	}
	if d.MinSquareMeters != "" {
		values.Set("minSquareMeters", d.MinSquareMeters)
	}
	if d.MaxSquareMeters != "" {
		values.Set("maxSquareMeters", d.MaxSquareMeters)
	}
	for _, heating := range d.HeatingTypes {
		values.Add("heatingType", heating)
	}
	for _, age := range d.BuildingAges {
		values.Add("buildingAge", age)
	}
	addFeatures(d.Features, values)
}

// The remaining five builders are intentionally empty: their detail params
// are not sent yet, and selections on those endpoints narrow nothing. Filling
// one in means deciding its scalar/multi/feature split here, without touching
// the other endpoints.

func buildOfficeParams(d *OfficeDetails, values url.Values)         {}
func buildCommercialParams(d *CommercialDetails, values url.Values) {}
func buildLandParams(d *LandDetails, values url.Values)             {}
func buildIndustrialParams(d *IndustrialDetails, values url.Values) {}
func buildServiceParams(d *ServiceDetails, values url.Values)       {}

// addFeatures emits one key=true param per enabled feature, in sorted key
// order so compiled queries are deterministic.
func addFeatures(features map[string]bool, values url.Values) {
	keys := make([]string, 0, len(features))
	for key, enabled := range features {
		if enabled {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		values.Add(key, "true")
	}
}

// SearchPath returns the API path of an endpoint's search sub-resource.
func SearchPath(endpoint Endpoint) string {
	return "/api/listings/search/" + string(endpoint)
}

// Route returns the deep-link route for a compiled filter, suitable for
// sharing the current search.
func Route(endpoint Endpoint, values url.Values) string {
	u := url.URL{Path: "/search/" + string(endpoint), RawQuery: values.Encode()}
	return u.String()
}
