package domain

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Description string         `gorm:"size:255;not null" json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Category    string         `gorm:"size:64;index" json:"category"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string { return "products" }

// ListParams narrows and orders a catalog listing. Zero values mean
// "no filter"; SortPrice is "asc", "desc" or empty.
type ListParams struct {
	Category  string
	Search    string
	SortPrice string
	Page      int
	PerPage   int
}

type ProductRepository interface {
	Create(p *Product) error
	FindByID(id uint) (*Product, error)
	Update(p *Product) error
	Delete(id uint) error
	Search(params ListParams) ([]Product, int64, error)
}
