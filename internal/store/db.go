package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// documentRow is the single-row table the DB backend keeps the serialized
// document in. The relational engine is only a place to hold the blob; the
// unit of persistence stays the whole document.
type documentRow struct {
	StorageKey string `gorm:"primaryKey;size:64"`
	Data       []byte
}

func (documentRow) TableName() string { return "erp_documents" }

// DBBackend stores the document under its key in a gorm-managed table,
// sqlite or postgres depending on how the *gorm.DB was opened.
type DBBackend struct {
	db *gorm.DB
}

func NewDBBackend(db *gorm.DB) (*DBBackend, error) {
	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, err
	}
	return &DBBackend{db: db}, nil
}

func (b *DBBackend) Get() ([]byte, bool, error) {
	var row documentRow
	err := b.db.First(&row, "storage_key = ?", Key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return row.Data, true, nil
}

func (b *DBBackend) Put(data []byte) error {
	row := documentRow{StorageKey: Key, Data: data}
	return b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data"}),
	}).Create(&row).Error
}

func (b *DBBackend) Delete() error {
	return b.db.Delete(&documentRow{}, "storage_key = ?", Key).Error
}
