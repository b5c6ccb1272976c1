package db

import "gorm.io/gorm"

// KVEntry 存储站点运行所需的字符串键值对。
// 见证言集合、访问计数等，一个键对应一个完整的序列化值。
type KVEntry struct {
	gorm.Model
	Key   string `gorm:"size:200;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

// TableName 指定自定义表名，避免自动复数化导致的歧义。
func (KVEntry) TableName() string {
	return "kv_entries"
}
