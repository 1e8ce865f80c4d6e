package repo

import (
	"errors"

	"gorm.io/gorm"

	"storefront-api/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(p *domain.Product) error { return r.db.Create(p).Error }

func (r *ProductRepo) FindByID(id uint) (*domain.Product, error) {
	var p domain.Product
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *ProductRepo) Update(p *domain.Product) error { return r.db.Save(p).Error }

func (r *ProductRepo) Delete(id uint) error {
	return r.db.Where("id = ?", id).Delete(&domain.Product{}).Error
}

func (r *ProductRepo) Search(params domain.ListParams) ([]domain.Product, int64, error) {
	tx := r.db.Model(&domain.Product{})
	if params.Category != "" {
		tx = tx.Where("category = ?", params.Category)
	}
	if params.Search != "" {
		tx = tx.Where("description LIKE ?", "%"+params.Search+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch params.SortPrice {
	case "asc":
		tx = tx.Order("price asc")
	case "desc":
		tx = tx.Order("price desc")
	default:
		tx = tx.Order("id asc")
	}

	offset := (params.Page - 1) * params.PerPage
	var products []domain.Product
	if err := tx.Offset(offset).Limit(params.PerPage).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
