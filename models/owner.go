package models

import "time"

// Owner is a salon owner account.
type Owner struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// OwnerSession is the authenticated identity attached to a request by the
// session middleware. SalonID is empty until the owner creates a salon.
type OwnerSession struct {
	OwnerID string `json:"ownerId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	SalonID string `json:"salonId,omitempty"`
}

// RegisterOwnerRequest is the body of POST /auth/register.
type RegisterOwnerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,phone10"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
