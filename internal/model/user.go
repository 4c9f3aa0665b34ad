package model

import "time"

// User represents an application user record as stored in the
// `users` table. Passwords are never kept in plain text; only the
// bcrypt hash is persisted. The json tags are omitted because these
// structs are used internally by the repository layer; handlers
// define separate response types with appropriate JSON tags.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// Session models an entry in the `sessions` table. Each session
// belongs to a user and carries a refresh token plus metadata for
// expiry and revocation. The plain token is not stored; only its
// SHA-256 hash.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the session.
//  TokenHash – SHA-256 hex digest of the refresh token value.
//  ExpiresAt – expiration timestamp of the session.
//  RevokedAt – when the session was revoked (null if still active).
//  CreatedAt – timestamp of creation.
type Session struct {
	ID        uint64     // sessions.id
	UserID    uint64     // sessions.user_id
	TokenHash string     // sessions.token_hash
	ExpiresAt time.Time  // sessions.expires_at
	RevokedAt *time.Time // sessions.revoked_at (nullable)
	CreatedAt time.Time  // sessions.created_at
}
