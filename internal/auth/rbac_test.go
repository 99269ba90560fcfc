package auth

import "testing"

func TestNormalizeRole(t *testing.T) {
	cases := map[string]Role{
		"admin":   RoleAdmin,
		" Admin ": RoleAdmin,
		"user":    RoleUser,
		"":        RoleUser,
		"root":    RoleUser,
	}
	for input, want := range cases {
		if got := NormalizeRole(input); got != want {
			t.Fatalf("NormalizeRole(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestIsAdmin(t *testing.T) {
	if !IsAdmin("admin") {
		t.Fatal("expected admin role to be admin")
	}
	if IsAdmin("user") || IsAdmin("") {
		t.Fatal("expected non-admin roles to not be admin")
	}
}
