// Command seed populates a development database with sample catalog, media
// and booking data. It wipes existing rows first; never point it at
// production.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"fitsphere/internal/config"
	"fitsphere/internal/database"
	"fitsphere/internal/domain"
	"fitsphere/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db,
		&domain.User{},
		&domain.Product{},
		&domain.Program{},
		&domain.Trainer{},
		&domain.Video{},
		&domain.Image{},
		&domain.Order{},
		&domain.Payment{},
		&domain.Notification{},
		&domain.ChatMessage{},
		&domain.VenueSettings{},
		&domain.Testimonial{},
		repository.BookingSchema(),
	); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	now := time.Now().UTC()

	log.Println("clearing existing data...")
	for _, table := range []string{
		"users", "trainers", "programs", "products", "videos", "images",
		"bookings", "orders", "payments", "notifications", "chat_messages",
		"testimonials",
	} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatal(err)
		}
	}

	users := repository.NewUserRepository(db)
	trainers := repository.NewTrainerRepository(db)
	programs := repository.NewProgramRepository(db)
	products := repository.NewProductRepository(db)
	videos := repository.NewVideoRepository(db)
	bookings := repository.NewBookingRepository(db)
	venues := repository.NewVenueRepository(db)

	hash := func(pw string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		return string(h)
	}

	log.Println("creating admin account...")
	admin := &domain.User{
		ID:           uuid.NewString(),
		Email:        "admin@fitsphere.com",
		Name:         "FitSphere Admin",
		PasswordHash: hash("Admin@123"),
		Role:         domain.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal(err)
	}

	log.Println("creating sample users...")
	userSeed := []struct{ name, email, phone string }{
		{"Sarah Johnson", "sarah@example.com", "+91 98765 43210"},
		{"Emily Davis", "emily@example.com", "+91 98765 43211"},
		{"Jessica Williams", "jessica@example.com", "+91 98765 43212"},
		{"Lisa Martinez", "lisa@example.com", "+91 98765 43213"},
		{"Ashley Brown", "ashley@example.com", "+91 98765 43214"},
	}
	seededUsers := make([]*domain.User, 0, len(userSeed))
	for _, u := range userSeed {
		user := &domain.User{
			ID:           uuid.NewString(),
			Email:        u.email,
			Name:         u.name,
			Phone:        u.phone,
			PasswordHash: hash("password123"),
			Role:         domain.RoleUser,
			IsActive:     true,
			CreatedAt:    now,
		}
		if err := users.Create(ctx, user); err != nil {
			log.Fatal(err)
		}
		seededUsers = append(seededUsers, user)
	}

	log.Println("creating trainers...")
	trainerSeed := []*domain.Trainer{
		{
			ID:              uuid.NewString(),
			Name:            "Priya Sharma",
			Email:           "priya@fitsphere.com",
			Phone:           "+91 98765 11111",
			Specialization:  "Yoga & Flexibility",
			ExperienceYears: 8,
			Bio:             "Certified yoga instructor specializing in Hatha and Vinyasa yoga. Helping women find balance and strength through mindful movement.",
			Certifications:  []string{"RYT-500", "Prenatal Yoga Certified", "Yin Yoga Specialist"},
		},
		{
			ID:              uuid.NewString(),
			Name:            "Anjali Reddy",
			Email:           "anjali@fitsphere.com",
			Phone:           "+91 98765 22222",
			Specialization:  "Strength Training",
			ExperienceYears: 6,
			Bio:             "Personal trainer focused on women's strength and conditioning. Building confidence through progressive overload and proper form.",
			Certifications:  []string{"NASM-CPT", "Women's Fitness Specialist", "Nutrition Coach"},
		},
		{
			ID:              uuid.NewString(),
			Name:            "Meera Patel",
			Email:           "meera@fitsphere.com",
			Phone:           "+91 98765 33333",
			Specialization:  "Cardio & HIIT",
			ExperienceYears: 5,
			Bio:             "High-energy fitness coach specializing in cardio and HIIT workouts. Making fitness fun and challenging for all levels.",
			Certifications:  []string{"ACE Certified", "HIIT Specialist", "Group Fitness Instructor"},
		},
	}
	for _, t := range trainerSeed {
		t.CreatedAt, t.UpdatedAt = now, now
		if err := trainers.Create(ctx, t); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("creating fitness programs...")
	programSeed := []*domain.Program{
		{
			ID:                 uuid.NewString(),
			Title:              "Beginner Yoga Journey",
			Description:        "Start your yoga practice with gentle flows and foundational poses. Perfect for complete beginners.",
			Category:           "Yoga",
			DurationWeeks:      4,
			Price:              2999,
			HomeVisitSurcharge: 500,
			SupportsHomeVisit:  true,
			SupportsGym:        true,
			Difficulty:         domain.DifficultyBeginner,
			TrainerID:          trainerSeed[0].ID,
			SessionsPerWeek:    3,
			EnrolledCount:      15,
		},
		{
			ID:              uuid.NewString(),
			Title:           "Strength Building Essentials",
			Description:     "Build functional strength with progressive resistance training. Learn proper form and technique.",
			Category:        "Strength",
			DurationWeeks:   8,
			Price:           4999,
			SupportsGym:     true,
			Difficulty:      domain.DifficultyIntermediate,
			TrainerID:       trainerSeed[1].ID,
			SessionsPerWeek: 4,
			EnrolledCount:   20,
		},
		{
			ID:                 uuid.NewString(),
			Title:              "Fat Burn HIIT Challenge",
			Description:        "High-intensity interval training to boost metabolism and burn fat. Get results in less time.",
			Category:           "Cardio",
			DurationWeeks:      6,
			Price:              3499,
			HomeVisitSurcharge: 500,
			SupportsHomeVisit:  true,
			SupportsGym:        true,
			Difficulty:         domain.DifficultyIntermediate,
			TrainerID:          trainerSeed[2].ID,
			SessionsPerWeek:    4,
			EnrolledCount:      25,
		},
		{
			ID:              uuid.NewString(),
			Title:           "Advanced Power Yoga",
			Description:     "Challenge yourself with dynamic flows and advanced asanas. Build strength and flexibility.",
			Category:        "Yoga",
			DurationWeeks:   12,
			Price:           5999,
			SupportsGym:     true,
			Difficulty:      domain.DifficultyAdvanced,
			TrainerID:       trainerSeed[0].ID,
			SessionsPerWeek: 3,
			EnrolledCount:   30,
		},
	}
	for _, p := range programSeed {
		p.CreatedAt, p.UpdatedAt = now, now
		if err := programs.Create(ctx, p); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("creating fitness products...")
	productSeed := []*domain.Product{
		{ID: uuid.NewString(), Name: "Yoga Mat - Premium", Description: "High-quality non-slip yoga mat with extra cushioning. Perfect for all types of yoga practice.", Price: 1499, Discount: 10, Stock: 50, Category: "Equipment", SKU: "YM-001", ImageURLs: []string{"https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=500"}},
		{ID: uuid.NewString(), Name: "Resistance Bands Set", Description: "5-piece resistance band set with varying resistance levels. Great for strength training anywhere.", Price: 899, Discount: 15, Stock: 75, Category: "Equipment", SKU: "RB-001", ImageURLs: []string{"https://images.unsplash.com/photo-1598289431512-b97b0917affc?w=500"}},
		{ID: uuid.NewString(), Name: "Protein Powder - Vanilla", Description: "Whey protein isolate for women. 25g protein per serving. Supports muscle recovery.", Price: 2499, Discount: 5, Stock: 30, Category: "Supplements", SKU: "PP-001", ImageURLs: []string{"https://images.unsplash.com/photo-1579722821273-0f6c7d44362f?w=500"}},
		{ID: uuid.NewString(), Name: "Fitness Tracker Watch", Description: "Track your workouts, heart rate, and calories burned. Water-resistant smart fitness tracker.", Price: 3999, Discount: 20, Stock: 25, Category: "Wearables", SKU: "FT-001", ImageURLs: []string{"https://images.unsplash.com/photo-1575311373937-040b8e1fd5b6?w=500"}},
		{ID: uuid.NewString(), Name: "Yoga Block Set", Description: "Set of 2 cork yoga blocks. Provides support and stability for your practice.", Price: 699, Discount: 0, Stock: 60, Category: "Equipment", SKU: "YB-001", ImageURLs: []string{"https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=500"}},
		{ID: uuid.NewString(), Name: "Gym Bag - Women's", Description: "Spacious gym bag with separate shoe compartment. Perfect for all your fitness essentials.", Price: 1799, Discount: 10, Stock: 40, Category: "Accessories", SKU: "GB-001", ImageURLs: []string{"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500"}},
	}
	for _, p := range productSeed {
		p.IsActive = true
		p.CreatedAt, p.UpdatedAt = now, now
		if err := products.Create(ctx, p); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("creating workout videos...")
	videoSeed := []*domain.Video{
		{ID: uuid.NewString(), Title: "Morning Yoga Flow - 20 Minutes", Category: domain.VideoYoga, Difficulty: domain.DifficultyBeginner, Duration: 1200, Description: "Start your day with this energizing morning yoga flow. Perfect for beginners.", VideoURL: "https://example.com/videos/morning-yoga.mp4", ViewCount: 245},
		{ID: uuid.NewString(), Title: "Full Body Strength Workout", Category: domain.VideoStrength, Difficulty: domain.DifficultyIntermediate, Duration: 1800, Description: "Build strength with this comprehensive full-body workout. No equipment needed.", VideoURL: "https://example.com/videos/strength-workout.mp4", ViewCount: 189},
		{ID: uuid.NewString(), Title: "30-Min HIIT Cardio Blast", Category: domain.VideoCardio, Difficulty: domain.DifficultyIntermediate, Duration: 1800, Description: "High-intensity cardio workout to burn calories and boost metabolism.", VideoURL: "https://example.com/videos/hiit-cardio.mp4", ViewCount: 312},
		{ID: uuid.NewString(), Title: "Pilates Core Strengthening", Category: domain.VideoPilates, Difficulty: domain.DifficultyBeginner, Duration: 1500, Description: "Strengthen your core with these effective pilates exercises.", VideoURL: "https://example.com/videos/pilates-core.mp4", ViewCount: 156},
		{ID: uuid.NewString(), Title: "Evening Meditation & Stretching", Category: domain.VideoMeditation, Difficulty: domain.DifficultyBeginner, Duration: 900, Description: "Wind down with gentle stretching and meditation for better sleep.", VideoURL: "https://example.com/videos/evening-meditation.mp4", ViewCount: 278},
	}
	for _, v := range videoSeed {
		v.IsPublic = true
		v.CreatedAt, v.UpdatedAt = now, now
		if err := videos.Create(ctx, v); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("configuring venue...")
	if err := venues.Upsert(ctx, &domain.VenueSettings{
		Name:      "FitSphere Studio",
		Address:   "12 MG Road, Bengaluru, Karnataka 560001",
		Latitude:  12.9716,
		Longitude: 77.5946,
	}); err != nil {
		log.Fatal(err)
	}

	log.Println("creating sample bookings...")
	for i := 0; i < 3; i++ {
		user := seededUsers[i]
		program := programSeed[i%len(programSeed)]
		var trainer *domain.Trainer
		for _, t := range trainerSeed {
			if t.ID == program.TrainerID {
				trainer = t
			}
		}

		slot := "09:00-10:00"
		status := domain.BookingConfirmed
		payStatus := domain.PaymentSuccess
		if i%2 != 0 {
			slot = "16:00-17:00"
			status = domain.BookingPending
			payStatus = domain.PaymentPending
		}

		b := &domain.Booking{
			ID:             uuid.NewString(),
			UserID:         user.ID,
			UserName:       user.Name,
			UserEmail:      user.Email,
			UserPhone:      user.Phone,
			ProgramID:      program.ID,
			ProgramTitle:   program.Title,
			TrainerID:      trainer.ID,
			TrainerName:    trainer.Name,
			BookingDate:    now.AddDate(0, 0, i+1).Format("2006-01-02"),
			TimeSlot:       slot,
			AttendanceMode: domain.AttendanceGym,
			Amount:         program.Price,
			Status:         status,
			PaymentStatus:  payStatus,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := bookings.Create(ctx, b); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println("seeding complete")
	fmt.Println("admin: admin@fitsphere.com / Admin@123")
	fmt.Println("users: sarah@example.com ... / password123")
}
