package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rekorder/markirovka/internal/adapters/clients/vkord/payload"
	"github.com/rekorder/markirovka/internal/adapters/http/dto"
	"github.com/rekorder/markirovka/internal/domain"
	"github.com/rekorder/markirovka/internal/ports"
)

// maxUploadBytes is the maximum allowed size for a media upload (30 MB,
// the registry's own limit for media files).
const maxUploadBytes = 30 << 20

// RegistryHandler exposes the registry passthrough endpoints: counterparties,
// contracts, creatives, placements and media files. Entity bodies use the
// registry's wire format so a payload accepted here is exactly what goes
// upstream.
type RegistryHandler struct {
	svc ports.RegistryService
}

// NewRegistryHandler creates a new RegistryHandler with the given service
// port.
func NewRegistryHandler(svc ports.RegistryService) *RegistryHandler {
	return &RegistryHandler{svc: svc}
}

// --- Counterparties ---

// ListPersons handles GET /api/v1/persons.
func (h *RegistryHandler) ListPersons(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	items, err := h.svc.ListPersons(r.Context(), params)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToExternalIDListResponse(items))
}

// GetPerson handles GET /api/v1/persons/{externalId}.
func (h *RegistryHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	person, err := h.svc.GetPerson(r.Context(), externalID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, payload.NewPerson(person))
}

// SetPerson handles PUT /api/v1/persons/{externalId}.
func (h *RegistryHandler) SetPerson(w http.ResponseWriter, r *http.Request) {
	var req payload.Person
	if !decodeJSONBody(w, r, &req) {
		return
	}

	person, err := req.Domain()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.SetPerson(r.Context(), externalID(r), person); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- Contracts ---

// ListContracts handles GET /api/v1/contracts.
func (h *RegistryHandler) ListContracts(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	items, err := h.svc.ListContracts(r.Context(), params)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToExternalIDListResponse(items))
}

// GetContract handles GET /api/v1/contracts/{externalId}.
func (h *RegistryHandler) GetContract(w http.ResponseWriter, r *http.Request) {
	contract, err := h.svc.GetContract(r.Context(), externalID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, payload.NewContract(contract))
}

// SetContract handles PUT /api/v1/contracts/{externalId}.
func (h *RegistryHandler) SetContract(w http.ResponseWriter, r *http.Request) {
	var req payload.Contract
	if !decodeJSONBody(w, r, &req) {
		return
	}

	contract, err := req.Domain()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.SetContract(r.Context(), externalID(r), contract); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- Creatives ---

// ListCreatives handles GET /api/v1/creatives.
func (h *RegistryHandler) ListCreatives(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	items, err := h.svc.ListCreatives(r.Context(), params)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToExternalIDListResponse(items))
}

// GetCreative handles GET /api/v1/creatives/{externalId}.
func (h *RegistryHandler) GetCreative(w http.ResponseWriter, r *http.Request) {
	creative, err := h.svc.GetCreative(r.Context(), externalID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, payload.NewCreative(creative))
}

// GetCreativeByErid handles GET /api/v1/creatives/by-erid/{erid}.
func (h *RegistryHandler) GetCreativeByErid(w http.ResponseWriter, r *http.Request) {
	creative, err := h.svc.GetCreativeByErid(r.Context(), chi.URLParam(r, "erid"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, payload.NewCreative(creative))
}

// SetCreative handles PUT /api/v1/creatives/{externalId}. On success the
// response carries the marking token pair issued by the registry.
func (h *RegistryHandler) SetCreative(w http.ResponseWriter, r *http.Request) {
	var req payload.Creative
	if !decodeJSONBody(w, r, &req) {
		return
	}

	creative, err := req.Domain()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	info, err := h.svc.SetCreative(r.Context(), externalID(r), creative)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEridInfoResponse(info))
}

// AddTexts handles POST /api/v1/creatives/{externalId}/texts.
func (h *RegistryHandler) AddTexts(w http.ResponseWriter, r *http.Request) {
	var req dto.AddTextsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	info, err := h.svc.AddTextToCreative(r.Context(), externalID(r), req.Texts)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEridInfoResponse(info))
}

// AddMedia handles POST /api/v1/creatives/{externalId}/media.
func (h *RegistryHandler) AddMedia(w http.ResponseWriter, r *http.Request) {
	var req dto.AddMediaRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	info, err := h.svc.AddMediaToCreative(r.Context(), externalID(r), req.MediaExternalIDs)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEridInfoResponse(info))
}

// --- Placements ---

// ListPads handles GET /api/v1/pads.
func (h *RegistryHandler) ListPads(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	items, err := h.svc.ListPads(r.Context(), params)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToExternalIDListResponse(items))
}

// GetPad handles GET /api/v1/pads/{externalId}.
func (h *RegistryHandler) GetPad(w http.ResponseWriter, r *http.Request) {
	pad, err := h.svc.GetPad(r.Context(), externalID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, payload.NewPad(pad))
}

// SetPad handles PUT /api/v1/pads/{externalId}.
func (h *RegistryHandler) SetPad(w http.ResponseWriter, r *http.Request) {
	var req payload.Pad
	if !decodeJSONBody(w, r, &req) {
		return
	}

	pad, err := req.Domain()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.SetPad(r.Context(), externalID(r), pad); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- Media files ---

// UploadMedia handles POST /api/v1/media/{externalId}. The file travels as
// multipart form data under the media_file field; an optional description
// comes from the form or the query string.
func (h *RegistryHandler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("media_file")
	if err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"media_file": "must be a multipart file field"},
		})
		return
	}
	defer func() { _ = file.Close() }()

	description := r.FormValue("description")
	if description == "" {
		description = r.URL.Query().Get("description")
	}

	ack, err := h.svc.UploadMedia(r.Context(), externalID(r), header.Filename, description, file)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if ack == nil {
		w.WriteHeader(http.StatusCreated)
		return
	}
	writeJSON(w, http.StatusCreated, ack)
}

// DownloadMedia handles GET /api/v1/media/{externalId}/file, streaming the
// stored content verbatim.
func (h *RegistryHandler) DownloadMedia(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.GetMediaFile(r.Context(), externalID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// GetMediaChecksum handles GET /api/v1/media/{externalId}/checksum.
func (h *RegistryHandler) GetMediaChecksum(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.GetMediaChecksum(r.Context(), externalID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToChecksumResponse(sum))
}
