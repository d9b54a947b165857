// Package domain contains entity without logic, just meta-data
package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type RoomID string

// RoomKind distinguishes direct conversations from group rooms.
// Fixed at creation, never changes afterwards.
type RoomKind string

const (
	RoomPrivate RoomKind = "private"
	RoomGroup   RoomKind = "group"
)

var ErrUnknownRoomKind = errors.New("unknown room kind")

func ParseRoomKind(s string) (RoomKind, error) {
	switch RoomKind(s) {
	case RoomPrivate, RoomGroup:
		return RoomKind(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRoomKind, s)
}

// MaxPrivateMembers caps private rooms at two participants.
const MaxPrivateMembers = 2

type Room struct {
	ID   RoomID   `json:"id"`
	Kind RoomKind `json:"kind"`
}

// NewRoomID generates an id for join requests that carry none.
func NewRoomID() RoomID {
	return RoomID(uuid.NewString())
}
