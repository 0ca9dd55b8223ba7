package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	"storefront/internal/infra/db"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DiscountCodeGormRepository struct {
	db *gorm.DB
}

func NewDiscountCodeGormRepository(db *gorm.DB) *DiscountCodeGormRepository {
	return &DiscountCodeGormRepository{db: db}
}

func (r *DiscountCodeGormRepository) FindByCode(ctx context.Context, code string) (model.DiscountCode, error) {
	var row db.DiscountCodeRow
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DiscountCode{}, repo.ErrNotFound
	}
	if err != nil {
		return model.DiscountCode{}, err
	}
	return toDiscountCode(row), nil
}

// 同じコードなら seq はそのまま、中身だけ上書き
func (r *DiscountCodeGormRepository) Upsert(ctx context.Context, code model.DiscountCode) error {
	row := db.DiscountCodeRow{
		Code:      code.Code,
		IsValid:   code.IsValid,
		Source:    string(code.Source),
		CreatedAt: code.CreatedAt,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_valid", "source", "created_at"}),
		}).
		Create(&row).Error
}

func (r *DiscountCodeGormRepository) Invalidate(ctx context.Context, code string) error {
	res := r.db.WithContext(ctx).
		Model(&db.DiscountCodeRow{}).
		Where("code = ?", code).
		Update("is_valid", false)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *DiscountCodeGormRepository) List(ctx context.Context) ([]model.DiscountCode, error) {
	var rows []db.DiscountCodeRow
	if err := r.db.WithContext(ctx).Order("seq asc").Find(&rows).Error; err != nil {
		return []model.DiscountCode{}, err
	}

	out := make([]model.DiscountCode, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDiscountCode(row))
	}
	return out, nil
}

func toDiscountCode(row db.DiscountCodeRow) model.DiscountCode {
	return model.DiscountCode{
		Code:      row.Code,
		IsValid:   row.IsValid,
		Source:    model.DiscountSource(row.Source),
		CreatedAt: row.CreatedAt,
	}
}
