package models

import "testing"

func strptr(s string) *string { return &s }

func TestAddressPatchMerge(t *testing.T) {
	existing := &Address{
		Line1:    "Old Line1",
		Line2:    "Old Line2",
		Town:     "OldTown",
		County:   "OldCounty",
		Postcode: "OLD 1AA",
	}

	tests := []struct {
		name     string
		existing *Address
		patch    *AddressPatch
		want     Address
	}{
		{
			name:     "single field replaces only that field",
			existing: existing,
			patch:    &AddressPatch{Postcode: strptr("NEW 9ZZ")},
			want: Address{
				Line1:    "Old Line1",
				Line2:    "Old Line2",
				Town:     "OldTown",
				County:   "OldCounty",
				Postcode: "NEW 9ZZ",
			},
		},
		{
			name:     "absent fields never overwrite",
			existing: existing,
			patch:    &AddressPatch{Town: strptr("NewTown"), Line3: strptr("Unit 3")},
			want: Address{
				Line1:    "Old Line1",
				Line2:    "Old Line2",
				Line3:    "Unit 3",
				Town:     "NewTown",
				County:   "OldCounty",
				Postcode: "OLD 1AA",
			},
		},
		{
			name:     "no existing address builds one from supplied fields",
			existing: nil,
			patch:    &AddressPatch{Line1: strptr("1 Eagle Street"), Postcode: strptr("EC1A 1BB")},
			want:     Address{Line1: "1 Eagle Street", Postcode: "EC1A 1BB"},
		},
		{
			name:     "empty patch keeps existing values",
			existing: existing,
			patch:    &AddressPatch{},
			want:     *existing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.patch.Merge(tt.existing)
			if got == nil {
				t.Fatal("expected merged address, got nil")
			}
			if *got != tt.want {
				t.Errorf("merged = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestAddressPatchMergeDoesNotMutateInputs(t *testing.T) {
	existing := &Address{Line1: "A", Postcode: "P1"}
	patch := &AddressPatch{Postcode: strptr("P2")}

	_ = patch.Merge(existing)

	if existing.Postcode != "P1" {
		t.Errorf("existing address mutated: %+v", existing)
	}
}

func TestAddressPatchMergeNilPatch(t *testing.T) {
	existing := &Address{Line1: "A"}
	var patch *AddressPatch
	if got := patch.Merge(existing); got != existing {
		t.Errorf("nil patch should return existing unchanged, got %+v", got)
	}
	if got := patch.Merge(nil); got != nil {
		t.Errorf("nil patch on nil address should stay nil, got %+v", got)
	}
}

func TestUserPatchApply(t *testing.T) {
	user := &User{
		ID:          "usr-abc12",
		Name:        "Alice",
		Email:       "alice@example.com",
		PhoneNumber: "+441234567890",
		Address:     &Address{Line1: "1 Eagle Street", Town: "London", County: "Greater London", Postcode: "EC1A 1BB"},
	}

	patch := UserPatch{
		Name:    strptr("Alice Updated"),
		Address: &AddressPatch{Postcode: strptr("EC2B 2CC")},
	}
	patch.Apply(user)

	if user.ID != "usr-abc12" {
		t.Errorf("id must never change, got %q", user.ID)
	}
	if user.Name != "Alice Updated" {
		t.Errorf("name = %q", user.Name)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("email overwritten by absent field: %q", user.Email)
	}
	if user.PhoneNumber != "+441234567890" {
		t.Errorf("phoneNumber overwritten by absent field: %q", user.PhoneNumber)
	}
	if user.Address.Postcode != "EC2B 2CC" || user.Address.Town != "London" {
		t.Errorf("address merge wrong: %+v", user.Address)
	}
}

func TestValidAccountType(t *testing.T) {
	for _, valid := range []string{AccountTypePersonal, AccountTypeBusiness} {
		if !ValidAccountType(valid) {
			t.Errorf("expected %q to be valid", valid)
		}
	}
	for _, invalid := range []string{"", "kids", "Personal", "PERSONAL"} {
		if ValidAccountType(invalid) {
			t.Errorf("expected %q to be invalid", invalid)
		}
	}
}
