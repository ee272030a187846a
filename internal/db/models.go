package db

import (
	"time"
)

// User table
type User struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;size:64;not null"`
	Email        string `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Active       bool   `gorm:"default:true"`
	LastLoginAt  time.Time
	Gender       string    `gorm:"size:16;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// Profile holds everything the completion wizard collects plus the card
// display fields. One row per user.
type Profile struct {
	UserID uint64 `gorm:"primaryKey"`

	// Basic details
	FullName         string `gorm:"size:128"`
	Gender           string `gorm:"size:16;index"`
	DateOfBirth      *time.Time
	HeightCm         int
	WeightKg         int
	City             string `gorm:"size:64;index"`
	Email            string `gorm:"size:128"`
	Phone            string `gorm:"size:16"`
	ProfileCreatedBy string `gorm:"size:32"`

	// Religious details
	Religion      string `gorm:"size:32"`
	Community     string `gorm:"size:64"`
	Caste         string `gorm:"size:64"`
	ManglikStatus string `gorm:"size:16"`
	Gothra        string `gorm:"size:64"`
	Nakshatra     string `gorm:"size:32"`
	Rashi         string `gorm:"size:32"`

	// Education & career
	HighestEducation string `gorm:"size:64"`
	EmploymentType   string `gorm:"size:32"`
	Occupation       string `gorm:"size:64"`
	AnnualIncome     int64

	// Family
	FatherName       string `gorm:"size:128"`
	MotherName       string `gorm:"size:128"`
	FatherOccupation string `gorm:"size:64"`
	MotherOccupation string `gorm:"size:64"`
	Brothers         int
	MarriedBrothers  int
	Sisters          int
	MarriedSisters   int
	FamilyType       string `gorm:"size:32"`
	FamilyStatus     string `gorm:"size:32"`
	FamilyValues     string `gorm:"size:32"`

	// Lifestyle
	EatingHabits   string `gorm:"size:32"`
	DietPreference string `gorm:"size:32"`
	Drinking       *bool
	Smoking        *bool
	HealthNotes    string `gorm:"size:255"`
	AboutMe        string `gorm:"size:1000"`

	// Card display
	PhotoURL       string `gorm:"size:255"`
	Premium        bool
	KundaliMatched bool

	TermsAcceptedAt *time.Time
	CompletedAt     *time.Time
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

// Decision represents an actor's pass/like/superlike on a recipient.
//
// Composite PK: (ActorID, RecipientID)
//   - Ensures a single row per pair (overwrite guarantee).
//
// Indexes:
//   - idx_recipient_liked_updated_actor(recipient_id, liked, updated_at DESC, actor_id)
//     Optimizes queries for "who liked me" lists with pagination.
//   - idx_actor_recipient_liked(actor_id, recipient_id, liked)
//     Optimizes O(1) lookup for mutual like checks.
//
// Fields:
//   - Kind: "pass", "like" or "superlike".
//   - Liked: true for like and superlike; kept for the indexes above.
//   - Sequence: position in the actor's swipe session history.
type Decision struct {
	ActorID     uint64    `gorm:"primaryKey;index:idx_actor_recipient_liked,priority:1"`
	RecipientID uint64    `gorm:"primaryKey;index:idx_recipient_liked_updated_actor,priority:1;index:idx_actor_recipient_liked,priority:2"`
	Kind        string    `gorm:"size:16;not null"`
	Liked       bool      `gorm:"not null;type:tinyint(1);index:idx_recipient_liked_updated_actor,priority:2;index:idx_actor_recipient_liked,priority:3"`
	Sequence    uint64    `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;index:idx_recipient_liked_updated_actor,priority:3,sort:desc"`
}

// Models lists every table for AutoMigrate.
func Models() []any {
	return []any{&User{}, &Profile{}, &Decision{}}
}
