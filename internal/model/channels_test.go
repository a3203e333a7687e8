package model

import "testing"

func newRegistries(t *testing.T, nicks int) (*UserRegistry, *ChannelRegistry) {
	t.Helper()
	users := NewUserRegistry()
	for i := 0; i < nicks; i++ {
		users.Register(int64(i))
	}
	return users, NewChannelRegistry(users)
}

func TestCreateChecksExistenceBeforeValidity(t *testing.T) {
	_, channels := newRegistries(t, 1)

	if code := channels.Create("java", "User0", false); code != Okay {
		t.Fatalf("create: got %v", code)
	}
	if code := channels.Create("java", "User0", false); code != ChannelAlreadyExists {
		t.Fatalf("duplicate create: got %v, want CHANNEL_ALREADY_EXISTS", code)
	}
	if code := channels.Create("j@va", "User0", false); code != InvalidName {
		t.Fatalf("invalid create: got %v, want INVALID_NAME", code)
	}

	// A name that is both taken and invalid reports the existence failure:
	// the checks run in that order and the order is part of the contract.
	channels.byName["b@d"] = &channel{name: "b@d", owner: "User0", members: map[int64]string{0: "User0"}}
	if code := channels.Create("b@d", "User0", false); code != ChannelAlreadyExists {
		t.Fatalf("taken+invalid create: got %v, want CHANNEL_ALREADY_EXISTS", code)
	}
}

func TestAddPublicMemberErrorOrder(t *testing.T) {
	_, channels := newRegistries(t, 2)
	channels.Create("java", "User0", false)
	channels.Create("vault", "User0", true)

	if code := channels.AddPublicMember("ghost", "java"); code != NoSuchUser {
		t.Fatalf("unknown user: got %v", code)
	}
	if code := channels.AddPublicMember("User1", "nope"); code != NoSuchChannel {
		t.Fatalf("unknown channel: got %v", code)
	}
	if code := channels.AddPublicMember("User1", "vault"); code != JoinPrivateChannel {
		t.Fatalf("private join: got %v", code)
	}
	if code := channels.AddPublicMember("User1", "java"); code != Okay {
		t.Fatalf("join: got %v", code)
	}
	assertStrings(t, "members", channels.Members("java"), []string{"User0", "User1"})
}

func TestAddPrivateMemberErrorOrder(t *testing.T) {
	_, channels := newRegistries(t, 3)
	channels.Create("java", "User0", false)
	channels.Create("vault", "User0", true)
	channels.AddPrivateMember("User1", "vault", "User0")

	if code := channels.AddPrivateMember("ghost", "vault", "User0"); code != NoSuchUser {
		t.Fatalf("unknown user: got %v", code)
	}
	if code := channels.AddPrivateMember("User2", "nope", "User0"); code != NoSuchChannel {
		t.Fatalf("unknown channel: got %v", code)
	}
	if code := channels.AddPrivateMember("User2", "java", "User0"); code != InviteToPublicChannel {
		t.Fatalf("invite to public: got %v", code)
	}
	if code := channels.AddPrivateMember("User2", "vault", "User1"); code != UserNotOwner {
		t.Fatalf("non-owner invite: got %v", code)
	}
	if code := channels.AddPrivateMember("User2", "vault", "User0"); code != Okay {
		t.Fatalf("invite: got %v", code)
	}
}

func TestRemoveMember(t *testing.T) {
	_, channels := newRegistries(t, 3)
	channels.Create("java", "User0", false)
	channels.AddPublicMember("User1", "java")

	if code := channels.RemoveMember("ghost", "java", "User0"); code != NoSuchUser {
		t.Fatalf("unknown user: got %v", code)
	}
	if code := channels.RemoveMember("User1", "nope", "User0"); code != NoSuchChannel {
		t.Fatalf("unknown channel: got %v", code)
	}
	if code := channels.RemoveMember("User0", "java", "User1"); code != UserNotOwner {
		t.Fatalf("non-owner authorizer: got %v", code)
	}
	if code := channels.RemoveMember("User2", "java", "User0"); code != UserNotInChannel {
		t.Fatalf("non-member target: got %v", code)
	}

	if code := channels.RemoveMember("User1", "java", "User0"); code != Okay {
		t.Fatalf("remove: got %v", code)
	}
	assertStrings(t, "members after remove", channels.Members("java"), []string{"User0"})
	if !channels.Exists("java") {
		t.Fatal("removing a plain member must not disband the channel")
	}

	// Removing the owner deletes the channel entirely.
	if code := channels.RemoveMember("User0", "java", "User0"); code != Okay {
		t.Fatalf("remove owner: got %v", code)
	}
	if channels.Exists("java") {
		t.Fatal("channel must disband when its owner is removed")
	}
}

func TestOwnerIsAlwaysMember(t *testing.T) {
	_, channels := newRegistries(t, 2)
	channels.Create("java", "User0", false)
	channels.AddPublicMember("User1", "java")

	for _, name := range channels.Names() {
		owner, ok := channels.Owner(name)
		if !ok {
			t.Fatalf("owner of %q missing", name)
		}
		if !channels.IsMember(owner, name) {
			t.Fatalf("owner %q not a member of %q", owner, name)
		}
	}
}

func TestMembersSnapshotIsolation(t *testing.T) {
	_, channels := newRegistries(t, 2)
	channels.Create("java", "User0", false)
	channels.AddPublicMember("User1", "java")

	snap := channels.Members("java")
	snap[0] = "mutated"
	assertStrings(t, "after mutation", channels.Members("java"), []string{"User0", "User1"})

	assertStrings(t, "unknown channel", channels.Members("nope"), []string{})
}
