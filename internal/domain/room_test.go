package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRoomKind(t *testing.T) {
	tests := []struct {
		in      string
		want    RoomKind
		wantErr bool
	}{
		{in: "private", want: RoomPrivate},
		{in: "group", want: RoomGroup},
		{in: "", wantErr: true},
		{in: "Private", wantErr: true},
		{in: "channel", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRoomKind(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownRoomKind) {
					t.Errorf("ParseRoomKind(%q) error = %v, want ErrUnknownRoomKind", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRoomKind(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseRoomKind(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewRoomIDUnique(t *testing.T) {
	a, b := NewRoomID(), NewRoomID()
	if a == "" || a == b {
		t.Errorf("NewRoomID() not unique: %q, %q", a, b)
	}
}

func TestValidateUsername(t *testing.T) {
	if err := ValidateUsername("alice"); err != nil {
		t.Errorf("ValidateUsername(alice) = %v", err)
	}
	if err := ValidateUsername(""); !errors.Is(err, ErrUsernameEmpty) {
		t.Errorf("empty name error = %v, want ErrUsernameEmpty", err)
	}
	long := strings.Repeat("a", MaxUsernameLen+1)
	if err := ValidateUsername(long); !errors.Is(err, ErrUsernameTooLong) {
		t.Errorf("long name error = %v, want ErrUsernameTooLong", err)
	}
}
