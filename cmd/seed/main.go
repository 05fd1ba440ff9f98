package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"eventhub/internal/database"
	"eventhub/internal/domain"
	"eventhub/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "eventhub.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM events")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	events := repository.NewEventRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Email:        "admin@eventhub.in",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Admin",
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal("seed admin:", err)
	}
	log.Println("Admin created: admin@eventhub.in / admin123")

	attendeeEmails := []string{"asha@gmail.com", "rohan@gmail.com", "priya@yahoo.in"}
	attendeeNames := []string{"Asha Rao", "Rohan Mehta", "Priya Nair"}
	for i, email := range attendeeEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("attendee123"), bcrypt.DefaultCost)
		u := &domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleAttendee,
			Name:         attendeeNames[i],
			Phone:        fmt.Sprintf("+91 98765 432%02d", i+10),
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatal("seed attendee:", err)
		}
	}

	// ================== EVENTS ==================
	log.Println("Creating events...")

	seedEvents := []*domain.Event{
		{
			Title:       "Indie Nights Live",
			Date:        "2026-09-18",
			Time:        "19:30",
			Location:    "Bengaluru",
			Venue:       "Phoenix Arena",
			Description: "An evening of independent music with four live acts.",
			Category:    "Music",
			TicketPrice: domain.RupeesToPaise(500),
		},
		{
			Title:       "Standup Saturday",
			Date:        "2026-09-26",
			Time:        "20:00",
			Location:    "Mumbai",
			Venue:       "The Habitat",
			Description: "A lineup of five comics, one hour each of crowd work and new material.",
			Category:    "Comedy",
			TicketPrice: domain.RupeesToPaise(350),
		},
		{
			Title:       "Startup Expo 2026",
			Date:        "2026-10-03",
			Time:        "10:00",
			Location:    "Hyderabad",
			Venue:       "HITEX Exhibition Centre",
			Description: "Product demos and founder talks across two halls.",
			Category:    "Business",
			TicketPrice: domain.RupeesToPaise(1200),
		},
		{
			Title:       "Sunday Food Carnival",
			Date:        "2026-10-11",
			Time:        "12:00",
			Location:    "Pune",
			Venue:       "Koregaon Park Grounds",
			Description: "Forty stalls, live cooking stages and a dessert alley.",
			Category:    "Food",
			TicketPrice: domain.RupeesToPaise(150),
		},
		{
			Title:       "City Marathon Community Run",
			Date:        "2026-11-01",
			Time:        "06:00",
			Location:    "Chennai",
			Venue:       "Marina Beach Front",
			Description: "Open 5K community run, no timing chip, free hydration points.",
			Category:    "Sports",
			TicketPrice: 0,
		},
		{
			Title:       "Classical Evening: Raag Yaman",
			Date:        "2026-11-14",
			Time:        "18:30",
			Location:    "Delhi",
			Venue:       "Kamani Auditorium",
			Description: "A sitar and tabla duet with a short lecture on the raag.",
			Category:    "Music",
			TicketPrice: domain.RupeesToPaise(800),
		},
	}

	for _, ev := range seedEvents {
		if err := events.Create(ctx, ev); err != nil {
			log.Fatal("seed event:", err)
		}
		log.Printf("Event created: %s (%s, %s)", ev.Title, ev.Location, ev.Date)
	}

	log.Println("Seed complete.")
}
