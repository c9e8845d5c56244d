package models

import "time"

// Location is a physical restaurant site belonging to a tenant.
type Location struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	Active  bool   `bson:"active" json:"active"`
}

// StaffAccount is a back-office login scoped to one tenant.
type StaffAccount struct {
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"password_hash" json:"-"`
	Role         string `bson:"role" json:"role"`
}

// Tenant is one restaurant brand on the platform. Requests are scoped to a
// tenant via the x-tenant-slug header.
type Tenant struct {
	ID        string         `bson:"id" json:"id"`
	Slug      string         `bson:"slug" json:"slug"`
	Name      string         `bson:"name" json:"name"`
	Locations []Location     `bson:"locations" json:"locations"`
	Staff     []StaffAccount `bson:"staff,omitempty" json:"-"`
	Active    bool           `bson:"active" json:"active"`
	CreatedAt time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updatedAt"`
}
