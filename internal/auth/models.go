package auth

import "go.mongodb.org/mongo-driver/bson/primitive"

// Operator is an authenticated user of the HTTP API. There is no public
// self-registration: operators are seeded at startup from environment
// variables (see Bootstrap in service.go), matching the spec's framing
// of admin dashboards as an external collaborator rather than a feature
// the allocation service itself needs to onboard users for.
type Operator struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"password_hash"`
	Role         string             `bson:"role"` // "admin" or "viewer"
}

// Credential is the login request body.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
