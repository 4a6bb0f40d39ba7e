package ord

import "testing"

func TestPersonRole_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		role PersonRole
		want bool
	}{
		{
			name: "advertiser is valid",
			role: RoleAdvertiser,
			want: true,
		},
		{
			name: "publisher is valid",
			role: RolePublisher,
			want: true,
		},
		{
			name: "empty string is invalid",
			role: "",
			want: false,
		},
		{
			name: "unknown value is invalid",
			role: "starring",
			want: false,
		},
		{
			name: "case sensitive",
			role: "Advertiser",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.role.IsValid(); got != tt.want {
				t.Errorf("PersonRole(%q).IsValid() = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

func TestPersonRoleLabels_CoverAllValues(t *testing.T) {
	t.Parallel()

	labels := PersonRoleLabels()
	for _, role := range PersonRoleValues() {
		if labels[role] == "" {
			t.Errorf("PersonRoleLabels() missing label for %q", role)
		}
	}
	if len(labels) != len(PersonRoleValues()) {
		t.Errorf("PersonRoleLabels() has %d entries, want %d", len(labels), len(PersonRoleValues()))
	}
}

func TestNewJuridicalDetails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		personType PersonType
		wantField  string
	}{
		{
			name:       "juridical passes",
			personType: PersonTypeJuridical,
		},
		{
			name:       "foreign physical passes",
			personType: PersonTypeForeignPhysical,
		},
		{
			name:       "empty type fails",
			personType: "",
			wantField:  "type",
		},
		{
			name:       "unknown type fails",
			personType: "llc",
			wantField:  "type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, err := NewJuridicalDetails(tt.personType)
			if tt.wantField != "" {
				requireInvalidField(t, err, tt.wantField)
				return
			}
			if err != nil {
				t.Fatalf("NewJuridicalDetails() = %v, want nil", err)
			}
			if d.Type != tt.personType {
				t.Errorf("Type = %q, want %q", d.Type, tt.personType)
			}
		})
	}
}

func TestJuridicalDetails_SetType(t *testing.T) {
	t.Parallel()

	d, err := NewJuridicalDetails(PersonTypeJuridical)
	if err != nil {
		t.Fatalf("NewJuridicalDetails() = %v, want nil", err)
	}

	requireInvalidField(t, d.SetType("llc"), "type")
	if d.Type != PersonTypeJuridical {
		t.Errorf("rejected SetType() changed value to %q", d.Type)
	}

	if err := d.SetType(PersonTypeIP); err != nil {
		t.Errorf("SetType(ip) = %v, want nil", err)
	}
}

func TestNewPerson(t *testing.T) {
	t.Parallel()

	details := JuridicalDetails{Type: PersonTypeJuridical}

	tests := []struct {
		name       string
		personName string
		roles      []PersonRole
		details    JuridicalDetails
		wantField  string
	}{
		{
			name:       "valid person passes",
			personName: "ООО Ромашка",
			roles:      []PersonRole{RoleAdvertiser},
			details:    details,
		},
		{
			name:       "no roles passes",
			personName: "ООО Ромашка",
			details:    details,
		},
		{
			name:      "empty name fails",
			roles:     []PersonRole{RoleAdvertiser},
			details:   details,
			wantField: "name",
		},
		{
			name:       "invalid role fails",
			personName: "ООО Ромашка",
			roles:      []PersonRole{RoleAdvertiser, "starring"},
			details:    details,
			wantField:  "roles",
		},
		{
			name:       "invalid juridical type fails",
			personName: "ООО Ромашка",
			roles:      []PersonRole{RoleAdvertiser},
			details:    JuridicalDetails{Type: "llc"},
			wantField:  "type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewPerson(tt.personName, tt.roles, tt.details)
			if tt.wantField != "" {
				requireInvalidField(t, err, tt.wantField)
				return
			}
			if err != nil {
				t.Errorf("NewPerson() = %v, want nil", err)
			}
		})
	}
}

func TestPerson_SetRoles(t *testing.T) {
	t.Parallel()

	p, err := NewPerson("ООО Ромашка", []PersonRole{RoleAdvertiser}, JuridicalDetails{Type: PersonTypeJuridical})
	if err != nil {
		t.Fatalf("NewPerson() = %v, want nil", err)
	}

	requireInvalidField(t, p.SetRoles([]PersonRole{RoleAgency, "starring"}), "roles")
	if len(p.Roles) != 1 || p.Roles[0] != RoleAdvertiser {
		t.Errorf("rejected SetRoles() changed roles to %v", p.Roles)
	}

	if err := p.SetRoles([]PersonRole{RoleAgency, RoleORS}); err != nil {
		t.Errorf("SetRoles() = %v, want nil", err)
	}
}

func TestPerson_AddRole(t *testing.T) {
	t.Parallel()

	p, err := NewPerson("ООО Ромашка", []PersonRole{RoleAdvertiser}, JuridicalDetails{Type: PersonTypeJuridical})
	if err != nil {
		t.Fatalf("NewPerson() = %v, want nil", err)
	}

	requireInvalidField(t, p.AddRole("starring"), "roles")

	if err := p.AddRole(RoleAdvertiser); err != nil {
		t.Fatalf("repeated AddRole(advertiser) = %v, want nil", err)
	}
	if len(p.Roles) != 1 {
		t.Errorf("Roles has %d entries after duplicate add, want 1", len(p.Roles))
	}

	if err := p.AddRole(RolePublisher); err != nil {
		t.Fatalf("AddRole(publisher) = %v, want nil", err)
	}
	if len(p.Roles) != 2 {
		t.Errorf("Roles has %d entries, want 2", len(p.Roles))
	}
}
