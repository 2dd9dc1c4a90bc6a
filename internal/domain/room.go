package domain

// ConversationID names a routing scope. A room exists exactly as long as
// at least one connection has joined its conversation.
type ConversationID string
