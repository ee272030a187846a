package db

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	maleNames   = []string{"Aarav Sharma", "Rohan Verma", "Vikram Singh", "Arjun Nair", "Kabir Mehta", "Siddharth Rao", "Aditya Kulkarni", "Rahul Iyer", "Nikhil Joshi", "Karan Malhotra"}
	femaleNames = []string{"Priya Patel", "Ananya Gupta", "Sneha Deshmukh", "Kavya Reddy", "Isha Kapoor", "Meera Pillai", "Riya Chatterjee", "Pooja Shetty", "Neha Bhatt", "Aditi Menon"}
	cities      = []string{"Mumbai", "Pune", "Delhi", "Bangalore", "Ahmedabad", "Jaipur"}
	religions   = []string{"Hindu", "Hindu", "Hindu", "Jain", "Sikh"}
	professions = []string{"Software Architect", "Fashion Designer", "Investment Banker", "Product Manager", "Entrepreneur", "Doctor", "Chartered Accountant", "Teacher"}
)

// upsertDecision writes a decision, overwriting an existing pair.
var upsertDecision = clause.OnConflict{
	Columns:   []clause.Column{{Name: "actor_id"}, {Name: "recipient_id"}},
	DoUpdates: clause.AssignmentColumns([]string{"kind", "liked", "sequence", "updated_at"}),
}

// SeedTestData resets the database and populates it with demo users,
// completed profiles and decisions.
//
// Behavior:
//  1. Clears existing data in `decisions`, `profiles` and `users`.
//  2. Creates 20 users (10 male, 10 female) with hashed passwords and a
//     completed profile each (age 24-33, city/religion drawn from small sets).
//  3. Generates ~100 decisions with ~70% likes; every 3rd ensures a mutual like.
//
// Compatible with both MySQL and SQLite (AUTO_INCREMENT reset skipped for SQLite).
func SeedTestData(db *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if err := wipe(db); err != nil {
		return err
	}

	switch db.Dialector.Name() {
	case "mysql":
		db.Exec("ALTER TABLE users AUTO_INCREMENT = 1")
	case "sqlite":
		db.Exec("DELETE FROM sqlite_sequence WHERE name = 'users'")
	}

	log.Println("Cleared existing data")

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	for i := 1; i <= 20; i++ {
		gender, name := "male", maleNames[(i-1)%10]
		if i > 10 {
			gender, name = "female", femaleNames[(i-1)%10]
		}

		user := User{
			Username:     fmt.Sprintf("user%d", i),
			Email:        fmt.Sprintf("user%d@example.com", i),
			PasswordHash: string(hash),
			Gender:       gender,
			Active:       true,
			LastLoginAt:  now.Add(-time.Duration(r.Intn(500)) * time.Hour),
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}

		dob := now.AddDate(-(24 + r.Intn(10)), -r.Intn(12), 0)
		profile := Profile{
			UserID:           user.ID,
			FullName:         name,
			Gender:           gender,
			DateOfBirth:      &dob,
			HeightCm:         150 + r.Intn(35),
			WeightKg:         50 + r.Intn(30),
			City:             cities[r.Intn(len(cities))],
			Email:            user.Email,
			Phone:            fmt.Sprintf("98%08d", r.Intn(100000000)),
			Religion:         religions[r.Intn(len(religions))],
			Occupation:       professions[r.Intn(len(professions))],
			HighestEducation: "Graduate",
			EatingHabits:     "Vegetarian",
			PhotoURL:         fmt.Sprintf("https://images.example.com/profiles/%d.jpg", i),
			Premium:          r.Intn(3) == 0,
			KundaliMatched:   r.Intn(2) == 0,
			TermsAcceptedAt:  &now,
			CompletedAt:      &now,
		}
		if err := db.Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to seed profile: %w", err)
		}
	}
	log.Println("Seeded 20 users with profiles.")

	counter := 0
	seq := make(map[uint64]uint64)
	for actorID := uint64(1); actorID <= 20; actorID++ {
		for j := 0; j < 6; j++ {
			// opposite gender block: 1-10 male, 11-20 female
			recipientID := uint64(r.Intn(10) + 1)
			if actorID <= 10 {
				recipientID += 10
			}

			kind := "pass"
			if r.Intn(100) < 70 {
				kind = "like"
			}
			if counter%3 == 0 {
				kind = "like"
				seq[recipientID]++
				recip := Decision{ActorID: recipientID, RecipientID: actorID, Kind: "like", Liked: true, Sequence: seq[recipientID]}
				db.Clauses(upsertDecision).Create(&recip)
			}

			seq[actorID]++
			d := Decision{
				ActorID:     actorID,
				RecipientID: recipientID,
				Kind:        kind,
				Liked:       kind != "pass",
				Sequence:    seq[actorID],
			}
			if err := db.Clauses(upsertDecision).Create(&d).Error; err != nil {
				return fmt.Errorf("failed to seed decision: %w", err)
			}
			counter++
		}
	}
	log.Printf("Seeded %d decisions.", counter)

	return nil
}

// SeedMinimalTestData inserts a small deterministic dataset:
//   - user1 (male, Pune, Hindu, 28), user2 (female, Pune, Hindu, 27),
//     user3 (female, Mumbai, Jain, 30), user4 (female, Pune, Hindu, 40)
//   - user1 → user2 like, user2 → user1 like (mutual),
//     user3 → user1 like, user1 → user3 pass
func SeedMinimalTestData(db *gorm.DB) error {
	if err := wipe(db); err != nil {
		return err
	}

	users := []User{
		{ID: 1, Username: "user1", Email: "u1@test.com", PasswordHash: "x", Gender: "male"},
		{ID: 2, Username: "user2", Email: "u2@test.com", PasswordHash: "x", Gender: "female"},
		{ID: 3, Username: "user3", Email: "u3@test.com", PasswordHash: "x", Gender: "female"},
		{ID: 4, Username: "user4", Email: "u4@test.com", PasswordHash: "x", Gender: "female"},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	now := time.Now().UTC()
	born := func(years int) *time.Time {
		t := now.AddDate(-years, 0, -1)
		return &t
	}
	profiles := []Profile{
		{UserID: 1, FullName: "Aarav Sharma", Gender: "male", DateOfBirth: born(28), City: "Pune", Religion: "Hindu"},
		{UserID: 2, FullName: "Priya Patel", Gender: "female", DateOfBirth: born(27), City: "Pune", Religion: "Hindu"},
		{UserID: 3, FullName: "Ananya Gupta", Gender: "female", DateOfBirth: born(30), City: "Mumbai", Religion: "Jain"},
		{UserID: 4, FullName: "Kavya Reddy", Gender: "female", DateOfBirth: born(40), City: "Pune", Religion: "Hindu"},
	}
	if err := db.Create(&profiles).Error; err != nil {
		return err
	}

	decisions := []Decision{
		{ActorID: 1, RecipientID: 2, Kind: "like", Liked: true, Sequence: 1},
		{ActorID: 2, RecipientID: 1, Kind: "like", Liked: true, Sequence: 1},
		{ActorID: 3, RecipientID: 1, Kind: "like", Liked: true, Sequence: 1},
		{ActorID: 1, RecipientID: 3, Kind: "pass", Liked: false, Sequence: 2},
	}
	return db.Create(&decisions).Error
}

func wipe(db *gorm.DB) error {
	for _, table := range []string{"decisions", "profiles", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}
