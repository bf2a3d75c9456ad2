package models

import "testing"

func TestRolePermissions(t *testing.T) {
	cases := []struct {
		role        Role
		canBid      bool
		canPublish  bool
		canModerate bool
	}{
		{RoleBuyer, true, false, false},
		{RoleSeller, false, true, false},
		{RoleAgent, false, true, false},
		{RoleAdmin, true, true, true},
		{Role("visitor"), false, false, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			if got := tc.role.CanBid(); got != tc.canBid {
				t.Fatalf("CanBid() = %v, want %v", got, tc.canBid)
			}
			if got := tc.role.CanPublish(); got != tc.canPublish {
				t.Fatalf("CanPublish() = %v, want %v", got, tc.canPublish)
			}
			if got := tc.role.CanModerate(); got != tc.canModerate {
				t.Fatalf("CanModerate() = %v, want %v", got, tc.canModerate)
			}
		})
	}
}

func TestRoleKnown(t *testing.T) {
	for _, role := range []Role{RoleBuyer, RoleSeller, RoleAgent, RoleAdmin} {
		if !role.Known() {
			t.Fatalf("role %q should be known", role)
		}
	}
	if Role("manager").Known() {
		t.Fatal("unexpected role reported as known")
	}
}
