package ord

import "testing"

func TestNewPad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		personID  string
		padType   PadType
		padName   string
		wantField string
	}{
		{
			name:     "web placement passes",
			personID: "p-1",
			padType:  PadTypeWeb,
			padName:  "example.com",
		},
		{
			name:     "mobile app placement passes",
			personID: "p-1",
			padType:  PadTypeMobileApp,
			padName:  "Example App",
		},
		{
			name:      "empty person id fails",
			padType:   PadTypeWeb,
			padName:   "example.com",
			wantField: "person_external_id",
		},
		{
			name:      "invalid type fails",
			personID:  "p-1",
			padType:   "smart_tv",
			padName:   "example.com",
			wantField: "type",
		},
		{
			name:      "empty name fails",
			personID:  "p-1",
			padType:   PadTypeWeb,
			wantField: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewPad(tt.personID, true, tt.padType, tt.padName)
			if tt.wantField != "" {
				requireInvalidField(t, err, tt.wantField)
				return
			}
			if err != nil {
				t.Errorf("NewPad() = %v, want nil", err)
			}
		})
	}
}

func TestPad_SetType(t *testing.T) {
	t.Parallel()

	p, err := NewPad("p-1", true, PadTypeWeb, "example.com")
	if err != nil {
		t.Fatalf("NewPad() = %v, want nil", err)
	}

	requireInvalidField(t, p.SetType("smart_tv"), "type")
	if p.Type != PadTypeWeb {
		t.Errorf("rejected SetType() changed value to %q", p.Type)
	}

	if err := p.SetType(PadTypeMobileApp); err != nil {
		t.Errorf("SetType(mobile_app) = %v, want nil", err)
	}
}
