package ord

import "testing"

func validContract(t *testing.T) *Contract {
	t.Helper()

	c, err := NewContract(ContractTypeService, "cl-1", "ctr-1", "2024-03-01", SubjectDistribution)
	if err != nil {
		t.Fatalf("NewContract() = %v, want nil", err)
	}
	return c
}

func TestNewContract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		contractType ContractType
		clientID     string
		contractorID string
		date         string
		subjectType  ContractSubjectType
		wantField    string
	}{
		{
			name:         "valid contract passes",
			contractType: ContractTypeService,
			clientID:     "cl-1",
			contractorID: "ctr-1",
			date:         "2024-03-01",
			subjectType:  SubjectDistribution,
		},
		{
			name:         "invalid type fails",
			contractType: "barter",
			clientID:     "cl-1",
			contractorID: "ctr-1",
			date:         "2024-03-01",
			subjectType:  SubjectDistribution,
			wantField:    "type",
		},
		{
			name:         "empty client id fails",
			contractType: ContractTypeService,
			contractorID: "ctr-1",
			date:         "2024-03-01",
			subjectType:  SubjectDistribution,
			wantField:    "client_external_id",
		},
		{
			name:         "empty contractor id fails",
			contractType: ContractTypeService,
			clientID:     "cl-1",
			date:         "2024-03-01",
			subjectType:  SubjectDistribution,
			wantField:    "contractor_external_id",
		},
		{
			name:         "empty date fails",
			contractType: ContractTypeService,
			clientID:     "cl-1",
			contractorID: "ctr-1",
			subjectType:  SubjectDistribution,
			wantField:    "date",
		},
		{
			name:         "invalid subject fails",
			contractType: ContractTypeMediation,
			clientID:     "cl-1",
			contractorID: "ctr-1",
			date:         "2024-03-01",
			subjectType:  "sponsorship",
			wantField:    "subject_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewContract(tt.contractType, tt.clientID, tt.contractorID, tt.date, tt.subjectType)
			if tt.wantField != "" {
				requireInvalidField(t, err, tt.wantField)
				return
			}
			if err != nil {
				t.Errorf("NewContract() = %v, want nil", err)
			}
		})
	}
}

func TestContract_SetAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		amount    *string
		wantField string
	}{
		{
			name:   "decimal amount passes",
			amount: strPtr("1500.50"),
		},
		{
			name:   "zero passes",
			amount: strPtr("0"),
		},
		{
			name:   "nil clears",
			amount: nil,
		},
		{
			name:      "negative fails",
			amount:    strPtr("-1.00"),
			wantField: "amount",
		},
		{
			name:      "non-decimal fails",
			amount:    strPtr("1 500,50"),
			wantField: "amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := validContract(t)
			err := c.SetAmount(tt.amount)
			if tt.wantField != "" {
				requireInvalidField(t, err, tt.wantField)
				if c.Amount != nil {
					t.Errorf("rejected SetAmount() changed value to %q", *c.Amount)
				}
				return
			}
			if err != nil {
				t.Errorf("SetAmount() = %v, want nil", err)
			}
		})
	}
}

func TestContract_SetActionType(t *testing.T) {
	t.Parallel()

	c := validContract(t)

	bad := ContractActionType("brokering")
	requireInvalidField(t, c.SetActionType(&bad), "action_type")
	if c.ActionType != nil {
		t.Error("rejected SetActionType() must not bind")
	}

	action := ActionDistribution
	if err := c.SetActionType(&action); err != nil {
		t.Fatalf("SetActionType(distribution) = %v, want nil", err)
	}
	if err := c.SetActionType(nil); err != nil {
		t.Fatalf("SetActionType(nil) = %v, want nil", err)
	}
	if c.ActionType != nil {
		t.Error("SetActionType(nil) did not clear")
	}
}

func TestContract_Flags(t *testing.T) {
	t.Parallel()

	c := validContract(t)

	requireInvalidField(t, c.SetFlags([]ContractFlag{ContractFlagVATIncluded, "prepaid"}), "flags")
	requireInvalidField(t, c.AddFlag("prepaid"), "flags")

	if err := c.AddFlag(ContractFlagVATIncluded); err != nil {
		t.Fatalf("AddFlag(vat_included) = %v, want nil", err)
	}
	if err := c.AddFlag(ContractFlagVATIncluded); err != nil {
		t.Fatalf("repeated AddFlag(vat_included) = %v, want nil", err)
	}
	if len(c.Flags) != 1 {
		t.Errorf("Flags has %d entries after duplicate add, want 1", len(c.Flags))
	}

	if err := c.SetFlags(nil); err != nil {
		t.Fatalf("SetFlags(nil) = %v, want nil", err)
	}
	if c.Flags != nil {
		t.Error("SetFlags(nil) did not clear")
	}
}

func TestContract_ValidateCatchesFieldMutation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Contract)
		wantField string
	}{
		{
			name:      "cleared client id",
			modify:    func(c *Contract) { c.ClientExternalID = "" },
			wantField: "client_external_id",
		},
		{
			name:      "corrupted amount",
			modify:    func(c *Contract) { c.Amount = strPtr("free") },
			wantField: "amount",
		},
		{
			name:      "unknown flag",
			modify:    func(c *Contract) { c.Flags = []ContractFlag{"prepaid"} },
			wantField: "flags",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := validContract(t)
			tt.modify(c)
			requireInvalidField(t, c.Validate(), tt.wantField)
		})
	}
}
