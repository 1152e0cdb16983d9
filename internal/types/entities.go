package types

// ExtractionMethod marks which strategy produced a result, so downstream
// consumers can distinguish confidence level.
type ExtractionMethod string

// Extraction method tags
const (
	MethodPrimary  ExtractionMethod = "Primary"
	MethodFallback ExtractionMethod = "Fallback"
)

// ExtractedEntities represents the structured facts pulled from resume text
type ExtractedEntities struct {
	Name               string           `json:"name,omitempty"`
	Email              string           `json:"email,omitempty"`
	Phone              string           `json:"phone,omitempty"`
	Skills             []string         `json:"skills"`
	Method             ExtractionMethod `json:"method"`
	TotalEntitiesFound int              `json:"total_entities_found"`
}

// CountEntities computes the entity total from field presence. The stored
// TotalEntitiesFound must always agree with this.
func (e ExtractedEntities) CountEntities() int {
	total := len(e.Skills)
	if e.Name != "" {
		total++
	}
	if e.Email != "" {
		total++
	}
	if e.Phone != "" {
		total++
	}
	return total
}
