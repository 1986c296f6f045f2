package storage

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/defaulths/E-commerceWeb-GERALDO/models"
)

// GormSlot keeps one cart_slots row per key.
type GormSlot struct {
	db *gorm.DB
}

var _ Slot = (*GormSlot)(nil)

// NewGormSlot migrates the cart_slots table and returns the slot.
func NewGormSlot(db *gorm.DB) (*GormSlot, error) {
	if err := db.AutoMigrate(&models.CartSlot{}); err != nil {
		return nil, err
	}
	return &GormSlot{db: db}, nil
}

func (s *GormSlot) Read(key string) ([]byte, bool, error) {
	var row models.CartSlot
	err := s.db.First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return row.Data, true, nil
}

func (s *GormSlot) Write(key string, data []byte) error {
	row := models.CartSlot{Key: key, Data: data}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
}

func (s *GormSlot) Delete(key string) error {
	return s.db.Delete(&models.CartSlot{}, "key = ?", key).Error
}
