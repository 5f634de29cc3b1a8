package models

import "time"

// Roles recognised by the route guards.
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// User is a registered player or admin. GameID/GameName identify the
// player's in-game account, Whatsapp is the number used for the SMS and
// WhatsApp notification channels.
type User struct {
	ID           string    `bson:"id" json:"id"`
	FullName     string    `bson:"fullName" json:"fullName"`
	GameID       string    `bson:"gameId" json:"gameId"`
	GameName     string    `bson:"gameName" json:"gameName"`
	Email        string    `bson:"email" json:"email"`
	Whatsapp     string    `bson:"whatsapp" json:"whatsapp"`
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
