package app

import (
	"testing"

	"github.com/mohd-musheer/backendChat/internal/domain"
)

func TestDirectoryRegisterTwice(t *testing.T) {
	dir := NewDirectory()

	if err := dir.Register("r1", domain.RoomGroup); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if err := dir.Register("r1", domain.RoomPrivate); err != ErrRoomExists {
		t.Fatalf("second Register() error = %v, want ErrRoomExists", err)
	}
	// The losing registration must not have touched the kind.
	if kind, _ := dir.KindOf("r1"); kind != domain.RoomGroup {
		t.Errorf("KindOf() = %q after rejected re-registration", kind)
	}
}

func TestDirectoryMembership(t *testing.T) {
	dir := NewDirectory()
	dir.Register("r1", domain.RoomGroup)

	dir.AddMember("r1", "a")
	dir.AddMember("r1", "b")
	if got := dir.MemberCount("r1"); got != 2 {
		t.Errorf("MemberCount() = %d, want 2", got)
	}

	dir.RemoveMember("r1", "a")
	members := dir.Members("r1")
	if len(members) != 1 || members[0] != "b" {
		t.Errorf("Members() = %v, want [b]", members)
	}

	// Members of an unknown room is an empty snapshot, not a panic.
	if got := dir.Members("ghost"); len(got) != 0 {
		t.Errorf("Members(ghost) = %v", got)
	}
}

func TestDirectoryList(t *testing.T) {
	dir := NewDirectory()
	dir.Register("r1", domain.RoomGroup)
	dir.AddMember("r1", "a")

	infos := dir.List()
	if len(infos) != 1 {
		t.Fatalf("List() returned %d rooms, want 1", len(infos))
	}
	if infos[0].ID != "r1" || infos[0].Kind != domain.RoomGroup || infos[0].MemberCount != 1 {
		t.Errorf("List()[0] = %+v", infos[0])
	}
}
