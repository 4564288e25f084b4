package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"expensetracker/internal/config"
	"expensetracker/internal/db"
	"expensetracker/internal/model"
	"expensetracker/internal/repository"
)

// SeedFile is the structure of the fixture file.
type SeedFile struct {
	User     SeedUser      `json:"user"`
	Expenses []SeedExpense `json:"expenses"`
}

// SeedUser is the demo account to upsert.
type SeedUser struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Branch   string `json:"branch"`
}

// SeedExpense is one demo expense row.
type SeedExpense struct {
	Date          string `json:"date"`
	Branch        string `json:"branch"`
	ExpenseType   string `json:"expenseType"`
	Amount        string `json:"amount"`
	ModeOfPayment string `json:"modeOfPayment"`
	PaymentTo     string `json:"paymentTo"`
	VehicleNumber string `json:"vehicleNumber"`
	Remarks       string `json:"remarks"`
}

func main() {
	file := flag.String("file", "seed.json", "path to the seed fixture file")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Expense{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	seed, err := loadSeedFile(*file)
	if err != nil {
		log.Fatalf("Failed to load seed file %s: %v", *file, err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	expenseRepo := repository.NewExpenseRepository(gormDB)

	user, err := upsertUser(ctx, userRepo, seed.User)
	if err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}
	log.Printf("Seed user ready: %s (%s)", user.Username, user.ID)

	created, skipped := 0, 0
	for _, row := range seed.Expenses {
		expense, err := buildExpense(user, row)
		if err != nil {
			log.Printf("Skipping expense row: %v", err)
			skipped++
			continue
		}
		if err := expenseRepo.Create(ctx, expense); err != nil {
			log.Fatalf("Failed to create expense: %v", err)
		}
		created++
	}

	log.Printf("Seed complete: %d expenses created, %d skipped", created, skipped)
}

func loadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seed SeedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, err
	}
	return &seed, nil
}

func upsertUser(ctx context.Context, repo repository.UserRepository, su SeedUser) (*model.User, error) {
	existing, err := repo.FindByEmail(ctx, su.Email)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), 10)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		FullName:     su.FullName,
		Username:     su.Username,
		Email:        su.Email,
		PasswordHash: string(hash),
		Branch:       su.Branch,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func buildExpense(owner *model.User, row SeedExpense) (*model.Expense, error) {
	date, err := time.Parse("2006-01-02", row.Date)
	if err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(row.Amount)
	if err != nil {
		return nil, err
	}

	expenseType := model.ExpenseType(row.ExpenseType)
	mode := model.PaymentMode(row.ModeOfPayment)
	if !expenseType.IsValid() || !mode.IsValid() {
		return nil, fmt.Errorf("invalid expenseType %q or modeOfPayment %q", row.ExpenseType, row.ModeOfPayment)
	}

	return &model.Expense{
		UserID:        owner.ID,
		Date:          date,
		Branch:        row.Branch,
		ExpenseType:   expenseType,
		Amount:        amount,
		ModeOfPayment: mode,
		PaymentTo:     row.PaymentTo,
		VehicleNumber: row.VehicleNumber,
		Remarks:       row.Remarks,
	}, nil
}
