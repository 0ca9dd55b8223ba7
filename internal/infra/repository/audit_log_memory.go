package repository

import (
	"context"

	"storefront/internal/domain/model"
	"storefront/internal/infra/db"
	repo "storefront/internal/repository"
)

type auditLogMemoryRepository struct {
	db *db.Store
}

func NewAuditLogMemoryRepository(s *db.Store) repo.AuditLogRepository {
	return &auditLogMemoryRepository{db: s}
}

func (r *auditLogMemoryRepository) Create(ctx context.Context, log model.AuditLog) error {
	log.ID = r.db.NextAuditID
	r.db.NextAuditID++
	r.db.AuditLogs = append(r.db.AuditLogs, log)
	return nil
}

func (r *auditLogMemoryRepository) List(ctx context.Context, filter repo.AuditLogFilter) ([]model.AuditLog, error) {
	// limit/offset
	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	logs := make([]model.AuditLog, 0, limit)
	skipped := 0

	//新しい順
	for i := len(r.db.AuditLogs) - 1; i >= 0 && len(logs) < limit; i-- {
		l := r.db.AuditLogs[i]
		if filter.Action != nil && l.Action != *filter.Action {
			continue
		}
		if filter.Code != nil && l.Code != *filter.Code {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		logs = append(logs, l)
	}
	return logs, nil
}
