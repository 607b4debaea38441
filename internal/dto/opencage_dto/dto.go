package opencagedto

// Geometry coordinates of a geocoding match
type Geometry struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Status status block of the OpenCage response
type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Result one geocoding candidate
type Result struct {
	Formatted  string         `json:"formatted"`
	Geometry   Geometry       `json:"geometry"`
	Components map[string]any `json:"components"`
}

// ResponseBody OpenCage geocoding response
type ResponseBody struct {
	Results []Result `json:"results"`
	Status  Status   `json:"status"`
}

// Country returns the country component when present
func (r Result) Country() string {
	return r.component("country")
}

// CountryCode returns the 2-letter country code component when present
func (r Result) CountryCode() string {
	return r.component("country_code")
}

func (r Result) component(key string) string {
	if v, ok := r.Components[key].(string); ok {
		return v
	}
	return ""
}
