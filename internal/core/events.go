package core

import "github.com/mohd-musheer/backendChat/internal/domain"

// Inbound and outbound events are closed sets of tagged structs.
// Frames are decoded by the Type envelope first, then into the
// concrete payload, so a malformed frame fails with a typed error
// instead of leaking zero-value fields downstream.

// Inbound event names.
const (
	InJoinRoom    = "join-room"
	InChatMessage = "chat-message"
	InMessageSeen = "message-seen"
	InTyping      = "typing"
)

// Outbound event names.
const (
	OutJoinSuccess      = "join-success"
	OutRoomTypeMismatch = "room-type-mismatch"
	OutRoomFull         = "room-full"
	OutRoomNotFound     = "room-not-found"
	OutUserJoined       = "user-joined"
	OutUserLeft         = "user-left"
	OutChatMessage      = "chat-message"
	OutReadReceipt      = "read-receipt"
	OutTyping           = "typing"
	OutFileShared       = "file-shared"
	OutError            = "error"
)

// Envelope carries only the discriminator of an inbound frame.
type Envelope struct {
	Type string `json:"type"`
}

type JoinRoomRequest struct {
	RoomID   string `json:"roomId"`
	Username string `json:"username"`
	RoomType string `json:"roomType"`
}

type ChatMessageRequest struct {
	RoomID    string `json:"roomId"`
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
}

type MessageSeenRequest struct {
	RoomID    string `json:"roomId"`
	MessageID string `json:"messageId"`
}

type TypingRequest struct {
	RoomID   string `json:"roomId"`
	IsTyping bool   `json:"isTyping"`
}

type JoinSuccess struct {
	Type   string        `json:"type"`
	RoomID domain.RoomID `json:"roomId"`
}

type RoomTypeMismatch struct {
	Type          string          `json:"type"`
	ExistingType  domain.RoomKind `json:"existingType"`
	AttemptedType domain.RoomKind `json:"attemptedType"`
}

type RoomFull struct {
	Type string `json:"type"`
}

type RoomNotFound struct {
	Type string `json:"type"`
}

type UserJoined struct {
	Type     string `json:"type"`
	Username string `json:"username"`
}

type UserLeft struct {
	Type     string `json:"type"`
	Username string `json:"username"`
}

type ChatMessage struct {
	Type       string        `json:"type"`
	Message    string        `json:"message"`
	MessageID  string        `json:"messageId"`
	SenderID   domain.ConnID `json:"senderId"`
	SenderName string        `json:"senderName"`
}

// ReadReceipt carries only the acknowledged message id, never the
// acknowledger's identity.
type ReadReceipt struct {
	Type      string `json:"type"`
	MessageID string `json:"messageId"`
}

type Typing struct {
	Type       string `json:"type"`
	SenderName string `json:"senderName"`
	IsTyping   bool   `json:"isTyping"`
}

type FileShared struct {
	Type         string        `json:"type"`
	Filename     string        `json:"filename"`
	OriginalName string        `json:"originalname"`
	MimeType     string        `json:"mimetype"`
	Size         int64         `json:"size"`
	Path         string        `json:"path"`
	SenderID     domain.ConnID `json:"senderId"`
	SenderName   string        `json:"senderName"`
	TempID       string        `json:"tempId,omitempty"`
}

type ErrorEvent struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}
