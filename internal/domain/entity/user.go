// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PointsPerLevel is the number of points needed to climb one level.
const PointsPerLevel = 100

// User is an account on the platform together with its loyalty standing.
// Level is derived from Points and must only change through AddPoints.
type User struct {
	ID           uuid.UUID `json:"id"`             // The Global Unique Identifier (GUID) for the user.
	Email        string    `json:"email"`          // Lower-cased, unique login identifier.
	PasswordHash string    `json:"-"`              // bcrypt hash of the user's password.
	Name         string    `json:"name"`           // Display name.
	Role         Role      `json:"role"`           // consumer, brand_admin or platform_admin.
	Active       bool      `json:"active"`         // Inactive accounts cannot log in or activate products.
	Points       int       `json:"puntos_totales"` // Cumulative loyalty points, never negative.
	Level        int       `json:"nivel_actual"`   // floor(Points/100) + 1.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LevelForPoints returns the level a user with the given points is at.
func LevelForPoints(points int) int {
	if points < 0 {
		points = 0
	}

	return points/PointsPerLevel + 1
}

// AddPoints credits points to the user and recomputes the level.
// Non-positive amounts leave the user untouched.
func (u *User) AddPoints(points int) {
	if points <= 0 {
		return
	}
	u.Points += points
	u.Level = LevelForPoints(u.Points)
}

// PointsToNextLevel returns how many points are missing to reach the next level.
func (u *User) PointsToNextLevel() int {
	return u.Level*PointsPerLevel - u.Points
}
