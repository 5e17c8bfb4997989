package analyzer

// DocumentType identifies the family of an API documentation file.
type DocumentType string

const (
	// DocTypeSwagger indicates a Swagger/OpenAPI document (any version)
	DocTypeSwagger DocumentType = "swagger"
	// DocTypePostman indicates a Postman collection
	DocTypePostman DocumentType = "postman"
	// DocTypeUnknown indicates a document matching neither heuristic
	DocTypeUnknown DocumentType = "unknown"
)

// Classify inspects the top-level keys of a parsed document and reports its
// type. A document that is not a mapping classifies as DocTypeUnknown.
//
// The Swagger check runs before the Postman check, so a document carrying
// both a "swagger"/"openapi" key and the "info"+"item" pair classifies as
// DocTypeSwagger.
func Classify(doc any) DocumentType {
	m, ok := doc.(map[string]any)
	if !ok {
		return DocTypeUnknown
	}
	if _, ok := m["swagger"]; ok {
		return DocTypeSwagger
	}
	if _, ok := m["openapi"]; ok {
		return DocTypeSwagger
	}
	if _, ok := m["info"]; ok {
		if _, ok := m["item"]; ok {
			return DocTypePostman
		}
	}
	return DocTypeUnknown
}
