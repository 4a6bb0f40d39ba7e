package ord

import "github.com/rekorder/markirovka/internal/domain"

// Media describes a media file stored by the registry. The content itself
// is uploaded separately; this record carries only metadata.
type Media struct {
	Filename    string
	SHA256      string
	CreateDate  string
	Size        int64
	ContentType string

	Description *string
}

// NewMedia creates a media record from its required metadata.
func NewMedia(filename, sha256, createDate string, size int64, contentType string) (*Media, error) {
	m := &Media{
		Filename:    filename,
		SHA256:      sha256,
		CreateDate:  createDate,
		Size:        size,
		ContentType: contentType,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate re-checks all media invariants.
func (m *Media) Validate() error {
	if m.Filename == "" {
		return domain.NewInvalidInput("filename", m.Filename)
	}
	if m.SHA256 == "" {
		return domain.NewInvalidInput("sha256", m.SHA256)
	}
	if m.CreateDate == "" {
		return domain.NewInvalidInput("create_date", m.CreateDate)
	}
	if m.Size < 0 {
		return domain.NewInvalidInput("size", m.Size)
	}
	if m.ContentType == "" {
		return domain.NewInvalidInput("content_type", m.ContentType)
	}
	return nil
}

// MediaChecksum is the registry-computed SHA-256 of an uploaded media file.
type MediaChecksum struct {
	SHA256 string
}
