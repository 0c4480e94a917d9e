package response_models

// QueryType classifies how a query should be geographically biased.
type QueryType string

const (
	// QueryTypeNearby means the query implies proximity to the user
	// ("coffee near me").
	QueryTypeNearby QueryType = "NEARBY"
	// QueryTypeSpecific means the query names a concrete place
	// ("coffee shops near Times Square").
	QueryTypeSpecific QueryType = "SPECIFIC"
	// QueryTypeGeneral is everything else.
	QueryTypeGeneral QueryType = "GENERAL"
)

func (q QueryType) Valid() bool {
	switch q {
	case QueryTypeNearby, QueryTypeSpecific, QueryTypeGeneral:
		return true
	}
	return false
}

// SearchIntent is the structured interpretation of a free-text query.
// Produced once per request and immutable afterwards.
type SearchIntent struct {
	SearchTerm   string    `json:"search_term"`
	LocationHint string    `json:"location_hint,omitempty"`
	QueryType    QueryType `json:"query_type"`
	RadiusHint   int       `json:"radius_hint,omitempty"` // meters, 0 = absent
}
