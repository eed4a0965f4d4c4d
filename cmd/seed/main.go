package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"glassworks/internal/database"
	"glassworks/internal/domain"
	"glassworks/internal/modules/template"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "glassworks.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM status_changes")
	db.Exec("DELETE FROM price_snapshots")
	db.Exec("DELETE FROM projects")
	db.Exec("DELETE FROM templates")
	db.Exec("DELETE FROM statuses")
	db.Exec("DELETE FROM glass_prices")
	db.Exec("DELETE FROM hardware_items")
	db.Exec("DELETE FROM service_items")
	db.Exec("DELETE FROM base_costs")
	db.Exec("DELETE FROM settings")
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM companies")

	// ================== COMPANY & USERS ==================
	log.Println("Creating demo company...")

	company := domain.Company{Name: "Стекло и Ко", Phone: "+995 555 123 456", Address: "Тбилиси, ул. Руставели 12"}
	db.Create(&company)

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		CompanyID:    company.ID,
		Email:        "admin@steklo.ge",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Нино Админ",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@steklo.ge / admin123")

	managerHash, _ := bcrypt.GenerateFromPassword([]byte("manager123"), bcrypt.DefaultCost)
	manager := domain.User{
		CompanyID:    company.ID,
		Email:        "manager@steklo.ge",
		PasswordHash: string(managerHash),
		Role:         domain.RoleUser,
		Name:         "Гига Менеджер",
	}
	db.Create(&manager)

	// ================== SETTINGS ==================
	db.Create(&domain.Settings{
		CompanyID:            company.ID,
		Currency:             domain.CurrencyGEL,
		USDRate:              2.7,
		RRRate:               0.03,
		ShowUSD:              true,
		BaseCostMode:         domain.BaseCostFixed,
		CustomColorSurcharge: 15,
	})

	// ================== CATALOGS ==================
	log.Println("Creating price lists...")

	t8, t10 := "8", "10"
	glass := []domain.GlassPrice{
		{CompanyID: company.ID, Color: "прозрачный", Thickness: &t8, PricePerSqm: 50},
		{CompanyID: company.ID, Color: "прозрачный", Thickness: &t10, PricePerSqm: 65},
		{CompanyID: company.ID, Color: "бронза", Thickness: &t8, PricePerSqm: 70},
		{CompanyID: company.ID, Color: "графит", Thickness: &t10, PricePerSqm: 85},
		{CompanyID: company.ID, Color: "матовый", Thickness: &t8, PricePerSqm: 75},
	}
	for i := range glass {
		db.Create(&glass[i])
	}

	price := func(v float64) *float64 { return &v }
	hardware := []domain.HardwareItem{
		{CompanyID: company.ID, Name: "Профиль", Section: "профили", UnitPrice: price(30)},
		{CompanyID: company.ID, Name: "Ручка", Section: "ручки", UnitPrice: price(25)},
		{CompanyID: company.ID, Name: "Петля", Section: "петли", UnitPrice: price(18)},
		{CompanyID: company.ID, Name: "Уплотнитель", Section: "уплотнители", UnitPrice: price(8)},
		{CompanyID: company.ID, Name: "Стабилизатор", Section: "крепёж"}, // цена ещё не назначена
	}
	for i := range hardware {
		db.Create(&hardware[i])
	}

	services := []domain.ServiceItem{
		{CompanyID: company.ID, Name: "Закалка", Price: 20},
		{CompanyID: company.ID, Name: "Обработка кромки", Price: 12},
		{CompanyID: company.ID, Name: "Сверление отверстий", Price: 5},
	}
	for i := range services {
		db.Create(&services[i])
	}

	baseCosts := []domain.BaseCost{
		{CompanyID: company.ID, Name: "straight", Value: 40},
		{CompanyID: company.ID, Name: "corner", Value: 60},
		{CompanyID: company.ID, Name: "glass", Value: 25},
		{CompanyID: company.ID, Name: "Доставка", Value: 20},
		{CompanyID: company.ID, Name: "Монтаж", Value: 80},
		{CompanyID: company.ID, Name: "Демонтаж", Value: 35},
	}
	for i := range baseCosts {
		db.Create(&baseCosts[i])
	}

	// ================== STATUSES ==================
	log.Println("Creating statuses...")

	statuses := []domain.Status{
		{CompanyID: company.ID, Name: "Новый", Color: "#3b82f6", SortOrder: 0, IsDefault: true, IsActive: true},
		{CompanyID: company.ID, Name: "Замер", Color: "#f59e0b", SortOrder: 1, IsActive: true},
		{CompanyID: company.ID, Name: "В работе", Color: "#8b5cf6", SortOrder: 2, IsActive: true},
		{CompanyID: company.ID, Name: "Установлен", Color: "#22c55e", SortOrder: 3, IsActive: true, IsCompletedForAnalytics: true},
		{CompanyID: company.ID, Name: "Отменён", Color: "#ef4444", SortOrder: 4, IsActive: true},
	}
	for i := range statuses {
		db.Create(&statuses[i])
	}

	// ================== TEMPLATES ==================
	log.Println("Creating system templates...")

	for _, t := range domain.BuiltinConfigurationTypes {
		db.Create(template.FallbackDefault(company.ID, t))
	}

	log.Println("Seed complete.")
}
