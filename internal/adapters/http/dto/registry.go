package dto

import (
	"github.com/rekorder/markirovka/internal/domain/ord"
)

// Registry passthrough endpoints speak the registry's own wire format for
// entity bodies (see the vkord payload package); the DTOs here cover only the
// envelopes the facade adds on top of it.

// AddTextsRequest represents the JSON body for appending texts to a
// registered creative.
type AddTextsRequest struct {
	Texts []string `json:"texts" validate:"required,min=1,dive,required"`
}

// Validate checks field constraints. Returns a *domain.ValidationError if
// any checks fail.
func (r *AddTextsRequest) Validate() error {
	return checkStruct(r)
}

// AddMediaRequest represents the JSON body for attaching uploaded media
// files to a registered creative.
type AddMediaRequest struct {
	MediaExternalIDs []string `json:"media_external_ids" validate:"required,min=1,dive,required"`
}

// Validate checks field constraints.
func (r *AddMediaRequest) Validate() error {
	return checkStruct(r)
}

// EridInfoResponse represents the marking token pair issued for a creative.
type EridInfoResponse struct {
	Marker string `json:"marker"`
	Erid   string `json:"erid"`
}

// ToEridInfoResponse converts the domain token pair to an HTTP response DTO.
func ToEridInfoResponse(info *ord.CreativeEridInfo) EridInfoResponse {
	return EridInfoResponse{Marker: info.Marker, Erid: info.Erid}
}

// ExternalIDListResponse represents one page of external ids from a listing
// endpoint.
type ExternalIDListResponse struct {
	ExternalIDs     []string `json:"external_ids"`
	TotalItemsCount int64    `json:"total_items_count"`
	Limit           int64    `json:"limit"`
}

// ToExternalIDListResponse converts a domain listing page to an HTTP
// response DTO.
func ToExternalIDListResponse(items *ord.ExternalIDItems) ExternalIDListResponse {
	ids := items.ExternalIDs
	if ids == nil {
		ids = []string{}
	}
	return ExternalIDListResponse{
		ExternalIDs:     ids,
		TotalItemsCount: items.TotalItemsCount,
		Limit:           items.Limit,
	}
}

// ChecksumResponse represents the registry-computed checksum of a stored
// media file.
type ChecksumResponse struct {
	SHA256 string `json:"sha256"`
}

// ToChecksumResponse converts the domain checksum to an HTTP response DTO.
func ToChecksumResponse(sum *ord.MediaChecksum) ChecksumResponse {
	return ChecksumResponse{SHA256: sum.SHA256}
}
