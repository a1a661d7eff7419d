package domain

import "testing"

func TestRoleLattice(t *testing.T) {
	if !RoleAdmin.AtLeast(RoleMod) || !RoleAdmin.AtLeast(RoleNone) {
		t.Fatal("admin must imply mod and none")
	}
	if RoleMod.AtLeast(RoleAdmin) {
		t.Fatal("mod must not imply admin")
	}
	if !RoleNone.AtLeast(RoleNone) {
		t.Fatal("reflexive comparison failed")
	}
}

func TestRoleFlagsRoundTrip(t *testing.T) {
	cases := []struct {
		role       Role
		mod, admin bool
	}{
		{RoleNone, false, false},
		{RoleMod, true, false},
		{RoleAdmin, true, true},
	}
	for _, tc := range cases {
		mod, admin := tc.role.Flags()
		if mod != tc.mod || admin != tc.admin {
			t.Fatalf("%s: got flags (%v,%v)", tc.role, mod, admin)
		}
		if got := RoleOf(mod, admin); got != tc.role {
			t.Fatalf("%s: round trip gave %s", tc.role, got)
		}
	}
}

func TestRoleOfAdminWinsOverMod(t *testing.T) {
	if got := RoleOf(false, true); got != RoleAdmin {
		t.Fatalf("admin flag alone must read as admin, got %s", got)
	}
}
