package models

// Moderation status shared by channels, reviews and tags. Tags only ever
// hold pending or approved; rejecting a tag deletes it.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)
