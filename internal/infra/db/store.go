package db

import (
	"sync"

	"storefront/internal/domain/model"
)

// Store はプロセス内の全テーブル。再起動で消える。
// テーブルへのアクセスは Lock/Unlock の間だけ行うこと。
type Store struct {
	mu sync.Mutex

	Carts map[string]*model.Cart

	// 追記のみ。len(Orders) が注文数。
	Orders []model.Order

	DiscountCodes map[string]model.DiscountCode
	// 最初に登録された順
	DiscountOrder []string

	AuditLogs   []model.AuditLog
	NextAuditID int64
}

// NewStore は空のテーブルを作る。
func NewStore() *Store {
	return &Store{
		Carts:         make(map[string]*model.Cart),
		Orders:        make([]model.Order, 0),
		DiscountCodes: make(map[string]model.DiscountCode),
		DiscountOrder: make([]string, 0),
		AuditLogs:     make([]model.AuditLog, 0),
		NextAuditID:   1,
	}
}

func (s *Store) Lock()   { s.mu.Lock() }
func (s *Store) Unlock() { s.mu.Unlock() }
