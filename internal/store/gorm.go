package store

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/EMMA019/black-jackgames/internal/game"
)

// User is the long-term record of a player, primarily their balance. It is
// loaded at the start of a session and written back at settlement and on
// disconnect.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;size:80;not null"`
	Balance   int    `gorm:"not null;default:1000"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Gorm persists balances to Postgres.
type Gorm struct {
	db  *gorm.DB
	log *zap.Logger
}

func OpenGorm(dsn string, log *zap.Logger) (*Gorm, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&User{}); err != nil {
		return nil, fmt.Errorf("migrate users: %w", err)
	}
	return &Gorm{db: db, log: log}, nil
}

func (g *Gorm) Load(name string) (int, error) {
	var u User
	err := g.db.Where("username = ?", name).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		u = User{Username: name, Balance: game.InitialBalance}
		if err := g.db.Create(&u).Error; err != nil {
			return 0, fmt.Errorf("create user %q: %w", name, err)
		}
		g.log.Info("created user", zap.String("username", name), zap.Int("balance", u.Balance))
		return u.Balance, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load user %q: %w", name, err)
	}
	return u.Balance, nil
}

func (g *Gorm) Save(name string, balance int) error {
	if balance < 0 {
		g.log.Warn("clamping negative balance", zap.String("username", name), zap.Int("balance", balance))
		balance = 0
	}
	err := g.db.Model(&User{}).Where("username = ?", name).Update("balance", balance).Error
	if err != nil {
		return fmt.Errorf("save balance for %q: %w", name, err)
	}
	return nil
}
