package model

import "testing"

func TestRegisterAssignsSmallestFreeDefault(t *testing.T) {
	r := NewUserRegistry()

	for i, want := range []string{"User0", "User1", "User2"} {
		if got := r.Register(int64(i)); got != want {
			t.Fatalf("registration %d: got %q, want %q", i, got, want)
		}
	}

	// Freeing the middle name makes its N the smallest unused again.
	r.Deregister(1)
	if got := r.Register(3); got != "User1" {
		t.Fatalf("after deregister: got %q, want User1", got)
	}

	// A rename away from a default name frees that N too.
	r.Rename(0, "alice")
	if got := r.Register(4); got != "User0" {
		t.Fatalf("after rename: got %q, want User0", got)
	}
}

func TestLookupsUseAbsentSentinels(t *testing.T) {
	r := NewUserRegistry()
	r.Register(7)

	if id, ok := r.ConnID("User0"); !ok || id != 7 {
		t.Fatalf("ConnID(User0) = %d, %v", id, ok)
	}
	if nick, ok := r.Nickname(7); !ok || nick != "User0" {
		t.Fatalf("Nickname(7) = %q, %v", nick, ok)
	}
	if _, ok := r.ConnID("ghost"); ok {
		t.Fatal("ConnID for unknown nickname reported present")
	}
	if _, ok := r.Nickname(99); ok {
		t.Fatal("Nickname for unknown conn id reported present")
	}
}

func TestNicknamesSnapshotIsolation(t *testing.T) {
	r := NewUserRegistry()
	r.Register(0)
	r.Register(1)

	snap := r.Nicknames()
	assertStrings(t, "snapshot", snap, []string{"User0", "User1"})

	snap[0] = "mutated"
	assertStrings(t, "after mutation", r.Nicknames(), []string{"User0", "User1"})
}

func TestValidName(t *testing.T) {
	valid := []string{"java", "User0", "a", "Ж42"}
	for _, name := range valid {
		if !ValidName(name) {
			t.Errorf("ValidName(%q) = false, want true", name)
		}
	}
	invalid := []string{"", "has space", "semi;colon", "!nv@l!d!", "tab\tname"}
	for _, name := range invalid {
		if ValidName(name) {
			t.Errorf("ValidName(%q) = true, want false", name)
		}
	}
}
