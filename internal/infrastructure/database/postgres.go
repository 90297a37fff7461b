package database

import (
	"fmt"

	"github.com/alnubras/pos-api/internal/config"
	"github.com/alnubras/pos-api/internal/domain/entity"
	"github.com/alnubras/pos-api/internal/domain/enum"
	applog "github.com/alnubras/pos-api/internal/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	applog.L().Info("connected to PostgreSQL database", zap.String("host", cfg.Host), zap.String("db", cfg.Name))
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	applog.L().Info("running database migrations")

	err := db.AutoMigrate(
		// Catalog entities
		&entity.Category{},
		&entity.Product{},
		&entity.ProductModel{},

		// Customer entities
		&entity.Customer{},

		// Sales entities
		&entity.SalesOrder{},
		&entity.SalesOrderItem{},
		&entity.HeldOrder{},
		&entity.Promotion{},

		// System entities
		&entity.Cashier{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	applog.L().Info("database migrations completed")
	return nil
}

// SeedDefaultData seeds the catalog, promotions and the default cashier.
// Every block is idempotent so it can run on each startup.
func SeedDefaultData(db *gorm.DB, pos *config.POSConfig) error {
	applog.L().Info("seeding default data")

	if err := seedCatalog(db); err != nil {
		return err
	}
	if err := seedPromotions(db); err != nil {
		return err
	}
	if err := seedDefaultCashier(db, pos); err != nil {
		return err
	}

	applog.L().Info("default data seeding completed")
	return nil
}

func seedCatalog(db *gorm.DB) error {
	type seedProduct struct {
		name  string
		sku   string
		typ   enum.ItemType
		price string
	}

	catalog := []struct {
		category string
		products []seedProduct
	}{
		{
			category: "Kanduras",
			products: []seedProduct{
				{"Classic Kandura", "KAN-CLS-001", enum.ItemTypeReadyMade, "25.00"},
				{"Premium Kandura", "KAN-PRM-001", enum.ItemTypeReadyMade, "45.00"},
				{"Winter Kandura", "KAN-WNT-001", enum.ItemTypeReadyMade, "35.00"},
			},
		},
		{
			category: "Custom Tailoring",
			products: []seedProduct{
				{"Custom Thobe", "CST-THB-001", enum.ItemTypeCustom, "40.00"},
				{"Custom Dishdasha", "CST-DSH-001", enum.ItemTypeCustom, "50.00"},
			},
		},
		{
			category: "Accessories",
			products: []seedProduct{
				{"Ghutra", "ACC-GHT-001", enum.ItemTypeReadyMade, "8.00"},
				{"Agal", "ACC-AGL-001", enum.ItemTypeReadyMade, "5.00"},
				{"Cufflinks", "ACC-CFL-001", enum.ItemTypeReadyMade, "12.00"},
			},
		},
	}

	for i, group := range catalog {
		var category entity.Category
		err := db.Where("name = ?", group.category).First(&category).Error
		if err == gorm.ErrRecordNotFound {
			category = entity.Category{Name: group.category, SortOrder: i}
			if err := db.Create(&category).Error; err != nil {
				return fmt.Errorf("failed to seed category %s: %w", group.category, err)
			}
		} else if err != nil {
			return err
		}

		for _, p := range group.products {
			var existing entity.Product
			err := db.Where("sku = ?", p.sku).First(&existing).Error
			if err == gorm.ErrRecordNotFound {
				price, perr := decimal.NewFromString(p.price)
				if perr != nil {
					return perr
				}
				product := entity.Product{
					CategoryID: &category.ID,
					Name:       p.name,
					SKU:        p.sku,
					Type:       p.typ,
					Price:      price,
					Active:     true,
				}
				if err := db.Create(&product).Error; err != nil {
					return fmt.Errorf("failed to seed product %s: %w", p.sku, err)
				}
				if p.typ == enum.ItemTypeCustom {
					if err := seedModels(db, product.ID); err != nil {
						return err
					}
				}
			} else if err != nil {
				return err
			}
		}
	}

	return nil
}

func seedModels(db *gorm.DB, productID int64) error {
	models := []struct {
		name  string
		price string
	}{
		{"Emirati Collar", "5.00"},
		{"Kuwaiti Collar", "5.00"},
		{"Saudi Collar", "7.50"},
	}

	for _, m := range models {
		price, err := decimal.NewFromString(m.price)
		if err != nil {
			return err
		}
		model := entity.ProductModel{ProductID: productID, Name: m.name, Price: price}
		if err := db.Create(&model).Error; err != nil {
			return fmt.Errorf("failed to seed product model %s: %w", m.name, err)
		}
	}
	return nil
}

func seedPromotions(db *gorm.DB) error {
	promos := []entity.Promotion{
		{Code: "EID10", Kind: entity.PromotionKindPercent, Value: decimal.NewFromInt(10), Active: true},
		{Code: "WELCOME5", Kind: entity.PromotionKindFixed, Value: decimal.NewFromInt(5), Active: true},
	}

	for i := range promos {
		var existing entity.Promotion
		err := db.Where("code = ?", promos[i].Code).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&promos[i]).Error; err != nil {
				applog.L().Warn("failed to seed promotion", zap.String("code", promos[i].Code), zap.Error(err))
			}
		} else if err != nil {
			return err
		}
	}
	return nil
}

func seedDefaultCashier(db *gorm.DB, pos *config.POSConfig) error {
	if pos.DefaultCashier == "" || pos.DefaultPIN == "" {
		return nil
	}

	var existing entity.Cashier
	err := db.Where("code = ?", pos.DefaultCashier).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pos.DefaultPIN), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default cashier pin: %w", err)
	}

	cashier := entity.Cashier{
		Name:    "Cashier",
		Code:    pos.DefaultCashier,
		PINHash: string(hash),
		Role:    "admin",
		Active:  true,
	}
	if err := db.Create(&cashier).Error; err != nil {
		return fmt.Errorf("failed to seed default cashier: %w", err)
	}

	applog.L().Info("default cashier created", zap.String("code", cashier.Code))
	return nil
}
