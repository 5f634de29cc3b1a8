package models

import "time"

// Status values shared by packages, banners and videos. 1 = active, 0 = inactive.
const (
	StatusInactive = 0
	StatusActive   = 1
)

// Package is a purchasable tournament entry tier. Price is in currency minor
// units and is what a booking's amount is checked against.
type Package struct {
	ID                string    `bson:"id" json:"id"`
	Name              string    `bson:"package_name" json:"package_name"`
	ParticipantsCount int       `bson:"participants_count" json:"participants_count"`
	TotalPrizePool    int64     `bson:"total_prize_pool" json:"total_prize_pool"`
	Price             int64     `bson:"price" json:"price"`
	Description       string    `bson:"description" json:"description"`
	Status            int       `bson:"status" json:"status"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Banner is a promotional image shown on the landing page. Image holds the
// storage public id; URL is resolved at read time.
type Banner struct {
	ID        string    `bson:"id" json:"id"`
	Image     string    `bson:"image" json:"image"`
	URL       string    `bson:"-" json:"url,omitempty"`
	Link      string    `bson:"link" json:"link"`
	Title     string    `bson:"title" json:"title"`
	Status    int       `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Video is an embedded highlight video.
type Video struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	VideoURL  string    `bson:"videoUrl" json:"videoUrl"`
	Status    int       `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ContactMessage is a message captured from the public contact form.
type ContactMessage struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Subject   string    `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
