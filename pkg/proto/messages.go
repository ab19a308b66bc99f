// Package proto defines shared wire messages for the keystash parameter store API.
package proto

// Storage tiers supported by the parameter store. A tier bounds the maximum
// serialized value size, except IntelligentTiering which lets the store pick.
const (
	TierStandard           = "Standard"
	TierAdvanced           = "Advanced"
	TierIntelligentTiering = "IntelligentTiering"
)

// Per-tier ceilings on serialized value size, in bytes. IntelligentTiering
// values are bounded by the Advanced ceiling.
const (
	MaxStandardValueSize = 4096
	MaxAdvancedValueSize = 8192
)

// TypeEncryptedString is the only parameter type this service stores. Values
// are encrypted at rest by the store; clients read them back decrypted by
// passing decrypt=true on list requests.
const TypeEncryptedString = "encrypted string"

// Entry is a single stored parameter as returned by a list page.
type Entry struct {
	Name  string `json:"name"`  // Full hierarchical path, e.g. /Keys/app/k1
	Value string `json:"value"` // Serialized value, decrypted when requested
}

// ListPageResponse is one page of a prefix listing. An empty
// NextContinuationToken means this is the final page.
type ListPageResponse struct {
	Entries               []Entry `json:"entries"`
	NextContinuationToken string  `json:"next_continuation_token,omitempty"`
}

// WriteRequest creates or overwrites one parameter.
type WriteRequest struct {
	Name     string            `json:"name"`
	Value    string            `json:"value"`
	Tier     string            `json:"tier"`
	Type     string            `json:"type"`
	Tags     map[string]string `json:"tags,omitempty"`
	KMSKeyID string            `json:"kms_key_id,omitempty"`
}

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
