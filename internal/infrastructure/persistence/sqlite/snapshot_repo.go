package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// snapshotKey 快照单行主键，整个应用状态存为一条记录
const snapshotKey = "app-state"

// SnapshotRecord 快照存储行
type SnapshotRecord struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Version   int       `gorm:"not null"`
	Data      []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName 指定表名
func (SnapshotRecord) TableName() string {
	return "snapshots"
}

// SnapshotRepo 基于 SQLite 的快照仓储
type SnapshotRepo struct {
	client *Client
}

// NewSnapshotRepo 创建快照仓储
func NewSnapshotRepo(client *Client) *SnapshotRepo {
	return &SnapshotRepo{client: client}
}

// Load 读取快照，首次运行无记录时 found 为 false
func (r *SnapshotRepo) Load(ctx context.Context) (data []byte, version int, found bool, err error) {
	var record SnapshotRecord
	result := r.client.DB().WithContext(ctx).
		Where("key = ?", snapshotKey).
		First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, 0, false, nil
		}
		return nil, 0, false, fmt.Errorf("failed to load snapshot: %w", result.Error)
	}
	return record.Data, record.Version, true, nil
}

// Save 写入快照，存在即覆盖
func (r *SnapshotRepo) Save(ctx context.Context, version int, data []byte) error {
	record := SnapshotRecord{
		Key:       snapshotKey,
		Version:   version,
		Data:      data,
		UpdatedAt: time.Now(),
	}
	result := r.client.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"version", "data", "updated_at"}),
		}).
		Create(&record)
	if result.Error != nil {
		return fmt.Errorf("failed to save snapshot: %w", result.Error)
	}
	return nil
}
