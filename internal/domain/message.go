package domain

// Message is the relayed wire payload. It is immutable once constructed and
// forwarded by value; the relay never inspects anything but ConversationID.
type Message struct {
	ID             string         `json:"id"`
	ConversationID ConversationID `json:"conversationId"`
	SenderID       string         `json:"senderId"`
	SenderName     string         `json:"senderName"`
	SenderRole     Role           `json:"senderRole"`
	Content        string         `json:"content"`
	Timestamp      string         `json:"timestamp"`
	IsAI           bool           `json:"isAI,omitempty"`
	Attachments    []Attachment   `json:"attachments,omitempty"`
}

type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

// Participant is one side of a conversation as the front end stores it.
type Participant struct {
	ID   UserID `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Conversation is owned by the front end's local store. The relay only has to
// round-trip its Message payloads without losing fields.
type Conversation struct {
	ID           ConversationID `json:"id"`
	Participants []Participant  `json:"participants"`
	LastMessage  *Message       `json:"lastMessage,omitempty"`
	UnreadCount  int            `json:"unreadCount,omitempty"`
	CreatedAt    string         `json:"createdAt"`
	UpdatedAt    string         `json:"updatedAt"`
	Messages     []Message      `json:"messages,omitempty"`
}
