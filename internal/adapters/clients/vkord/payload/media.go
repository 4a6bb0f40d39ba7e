package payload

import (
	"github.com/rekorder/markirovka/internal/domain/ord"
)

// Media is the wire form of ord.Media. It only appears in responses; the
// file content travels as multipart form data on upload.
type Media struct {
	Filename    string `json:"filename"`
	SHA256      string `json:"sha256"`
	CreateDate  string `json:"create_date"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`

	Description *string `json:"description,omitempty"`
}

// Domain converts the wire form back to a validated domain media record.
func (m *Media) Domain() (*ord.Media, error) {
	out := &ord.Media{
		Filename:    m.Filename,
		SHA256:      m.SHA256,
		CreateDate:  m.CreateDate,
		Size:        m.Size,
		ContentType: m.ContentType,
		Description: m.Description,
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// MediaChecksum is the wire form of the checksum endpoint response.
type MediaChecksum struct {
	SHA256 string `json:"sha256"`
}

// Domain converts the wire form to the domain checksum record.
func (m *MediaChecksum) Domain() *ord.MediaChecksum {
	return &ord.MediaChecksum{SHA256: m.SHA256}
}
