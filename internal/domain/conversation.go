package domain

// Turn is one message in a conversation. Immutable once created;
// a history is an ordered, chronological sequence of turns.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// RecommendationRequest carries the crop and climate parameters for a
// one-shot recommendation. Every field is optional and untyped: the
// frontend sends whatever it has and absent values are rendered as-is
// into the prompt, so nothing here is validated or defaulted.
type RecommendationRequest struct {
	CropName         any `json:"crop_name"`
	FeasibilityLevel any `json:"feasibility_level"`
	FeasibilityScore any `json:"feasibility_score"`
	Temperature      any `json:"temperature"`
	SoilMoisture     any `json:"soil_moisture"`
	Precipitation    any `json:"precipitation"`
	LocationName     any `json:"location_name"`
}
