package helpers

import "testing"

func TestIsPasswordStrong(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Str0ng!Pass", true},
		{"sh0rt!A", false},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoNumbers!!", false},
		{"NoSpecials123", false},
	}

	for _, tc := range cases {
		if got := IsPasswordStrong(tc.password); got != tc.want {
			t.Errorf("IsPasswordStrong(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

func TestEnhancedClaimsRoleChecks(t *testing.T) {
	admin := &EnhancedClaims{UserID: "u-1", Role: "admin"}
	if !admin.IsAdmin() || admin.IsGuide() {
		t.Error("admin claims misreported")
	}
	if !admin.HasRole("admin") || admin.HasRole("guide") {
		t.Error("HasRole must compare the exact role")
	}

	noRole := &EnhancedClaims{UserID: "u-2"}
	if noRole.GetSafeRole() != "user" {
		t.Errorf("GetSafeRole() = %q, want default user", noRole.GetSafeRole())
	}
	if !noRole.IsOwner("u-2") || noRole.IsOwner("u-3") {
		t.Error("IsOwner must compare against the claims user id")
	}
}
