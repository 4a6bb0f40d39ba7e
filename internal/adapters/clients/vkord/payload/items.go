package payload

import (
	"github.com/rekorder/markirovka/internal/domain/ord"
)

// ExternalIDItems is the wire form of a paged external id listing. All three
// keys are always present in registry responses.
type ExternalIDItems struct {
	ExternalIDs     []string `json:"external_ids"`
	TotalItemsCount int64    `json:"total_items_count"`
	Limit           int64    `json:"limit"`
}

// Domain converts the wire form to the domain listing.
func (e *ExternalIDItems) Domain() *ord.ExternalIDItems {
	return &ord.ExternalIDItems{
		ExternalIDs:     e.ExternalIDs,
		TotalItemsCount: e.TotalItemsCount,
		Limit:           e.Limit,
	}
}

// CreativeEridInfo is the wire form of the marking token pair the registry
// issues for a submitted creative.
type CreativeEridInfo struct {
	Marker string `json:"marker"`
	Erid   string `json:"erid"`
}

// Domain converts the wire form to the domain token pair.
func (e *CreativeEridInfo) Domain() *ord.CreativeEridInfo {
	return &ord.CreativeEridInfo{Marker: e.Marker, Erid: e.Erid}
}
