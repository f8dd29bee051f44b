package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"wellbook/internal/database"
	"wellbook/internal/domain"
	"wellbook/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "wellbook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM booking_services")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM company_services")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM service_categories")
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM companies")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	companies := repository.NewCompanyRepository(db)
	categories := repository.NewCategoryRepository(db)
	services := repository.NewServiceRepository(db)
	offerings := repository.NewCompanyServiceRepository(db)
	bookings := repository.NewBookingRepository(db)

	// ================== COMPANIES ==================
	log.Println("Creating companies...")
	harmony := &domain.Company{Name: "Harmony Wellness", Slug: "harmony-wellness", IsActive: true}
	serenity := &domain.Company{Name: "Serenity Spa", Slug: "serenity-spa", IsActive: true}
	for _, c := range []*domain.Company{harmony, serenity} {
		if err := companies.Create(ctx, c); err != nil {
			log.Fatal(err)
		}
	}

	// ================== USERS ==================
	log.Println("Creating users...")
	admin := mustUser(ctx, users, "admin@wellbook.io", "admin123", domain.RoleSuperAdmin, nil)
	mustUser(ctx, users, "anna@harmony.io", "admin123", domain.RoleCompanyAdmin, &harmony.ID)
	mustUser(ctx, users, "boris@serenity.io", "admin123", domain.RoleCompanyAdmin, &serenity.ID)

	members := []*domain.User{}
	for i, email := range []string{"marta@harmony.io", "nick@harmony.io", "olga@serenity.io"} {
		companyID := &harmony.ID
		if i == 2 {
			companyID = &serenity.ID
		}
		members = append(members, mustUser(ctx, users, email, "member123", domain.RoleMember, companyID))
	}

	customers := []*domain.User{}
	for _, email := range []string{"alice@mail.com", "bob@mail.com", "carol@mail.com"} {
		customers = append(customers, mustUser(ctx, users, email, "customer123", domain.RoleCustomer, nil))
	}

	// ================== CATALOG ==================
	log.Println("Creating catalog...")
	therapy := &domain.ServiceCategory{
		Name: "Therapy", Type: domain.CategoryTherapy, Slug: "therapy",
		Description: "Individual and group therapy sessions", IsActive: true,
	}
	spa := &domain.ServiceCategory{
		Name: "Spa", Type: domain.CategorySpa, Slug: "spa",
		Description: "Massage and body treatments", IsActive: true,
	}
	for _, c := range []*domain.ServiceCategory{therapy, spa} {
		if err := categories.Create(ctx, c); err != nil {
			log.Fatal(err)
		}
	}

	massage := &domain.Service{
		Name: "Swedish Massage", CategoryID: spa.ID, Duration: 60, Price: 50, IsActive: true,
	}
	facial := &domain.Service{
		Name: "Deep Cleansing Facial", CategoryID: spa.ID, Duration: 45, Price: 40, IsActive: true,
	}
	counseling := &domain.Service{
		Name: "Counseling Session", CategoryID: therapy.ID, Duration: 50, Price: 80, IsActive: true,
	}
	for _, s := range []*domain.Service{massage, facial, counseling} {
		if err := services.Create(ctx, s); err != nil {
			log.Fatal(err)
		}
	}

	// ================== OFFERINGS ==================
	log.Println("Creating company offerings...")
	discounted := 45.0
	for _, cs := range []*domain.CompanyService{
		{CompanyID: harmony.ID, ServiceID: massage.ID, IsActive: true},
		{CompanyID: harmony.ID, ServiceID: counseling.ID, IsActive: true},
		{CompanyID: serenity.ID, ServiceID: massage.ID, CustomPrice: &discounted, IsActive: true},
		{CompanyID: serenity.ID, ServiceID: facial.ID, IsActive: true},
	} {
		if err := offerings.Create(ctx, cs); err != nil {
			log.Fatal(err)
		}
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")
	tomorrow := time.Now().UTC().AddDate(0, 0, 1)
	day := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, time.UTC)

	pending := &domain.Booking{
		CustomerID: customers[0].ID,
		Services: []domain.BookingService{
			{ServiceID: massage.ID, Quantity: 1},
		},
		BookingDate:   day,
		BookingTime:   "10:00",
		Duration:      60,
		TotalPrice:    50,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentPending,
		CustomerNotes: "First visit",
	}
	if err := bookings.Create(ctx, pending); err != nil {
		log.Fatal(err)
	}

	assigned := &domain.Booking{
		CustomerID: customers[1].ID,
		Services: []domain.BookingService{
			{ServiceID: counseling.ID, Quantity: 2},
		},
		BookingDate:       day,
		BookingTime:       "14:00",
		Duration:          100,
		TotalPrice:        160,
		Status:            domain.BookingAssignedToMember,
		PaymentStatus:     domain.PaymentPending,
		AssignedCompanyID: &harmony.ID,
		AssignedUserID:    &members[0].ID,
		AssignedBy:        &admin.ID,
	}
	if err := bookings.Create(ctx, assigned); err != nil {
		log.Fatal(err)
	}

	log.Println("Seed completed")
	log.Println("Test accounts:")
	log.Println("Super admin: admin@wellbook.io / admin123")
	log.Println("Company admins: anna@harmony.io, boris@serenity.io / admin123")
	log.Println("Members: marta@harmony.io, nick@harmony.io, olga@serenity.io / member123")
	log.Println("Customers: alice@mail.com, bob@mail.com, carol@mail.com / customer123")
}

func mustUser(ctx context.Context, repo *repository.UserRepository, email, password string, role domain.UserRole, companyID *int64) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	u := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CompanyID:    companyID,
		IsActive:     true,
	}
	if err := repo.Create(ctx, u); err != nil {
		log.Fatal(fmt.Errorf("create user %s: %w", email, err))
	}
	return u
}
