package store

import (
	"sync"

	"github.com/EMMA019/black-jackgames/internal/game"
)

// Balances is the persistent side of the player's money. Session state lives
// in the hub; only the balance survives disconnects.
type Balances interface {
	// Load returns the stored balance for name, creating the record at the
	// initial balance when none exists.
	Load(name string) (int, error)
	// Save stores the balance. Negative values are clamped to zero.
	Save(name string, balance int) error
}

// Memory is the in-process implementation, used by tests and when no
// database is configured.
type Memory struct {
	mu       sync.Mutex
	balances map[string]int
}

func NewMemory() *Memory {
	return &Memory{balances: make(map[string]int)}
}

func (m *Memory) Load(name string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := m.balances[name]; ok {
		return b, nil
	}
	m.balances[name] = game.InitialBalance
	return game.InitialBalance, nil
}

func (m *Memory) Save(name string, balance int) error {
	if balance < 0 {
		balance = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[name] = balance
	return nil
}
