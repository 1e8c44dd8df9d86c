package repository

import (
	"errors"
	"fmt"

	"movie_catalog/apperror"

	"gorm.io/gorm"
)

func byID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func notFoundOr(err error, kind string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("%s %d not found", kind, id)
	}
	return apperror.Internal(fmt.Sprintf("get %s %d", kind, id), err)
}

func exists(db *gorm.DB, m any, id uint) (bool, error) {
	var count int64
	if err := db.Model(m).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// uniqueIDs drops repeated ids, keeping first-seen order.
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// firstMissing returns the first requested id absent from found.
func firstMissing(requested []uint, found map[uint]struct{}) (uint, bool) {
	for _, id := range requested {
		if _, ok := found[id]; !ok {
			return id, true
		}
	}
	return 0, false
}

// checkUpdated resolves a zero-row update: the row was deleted underneath us
// unless it still exists.
func checkUpdated(db *gorm.DB, result *gorm.DB, m any, kind string, id uint) error {
	if result.Error != nil {
		return apperror.Internal(fmt.Sprintf("update %s %d", kind, id), result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}
	ok, err := exists(db, m, id)
	if err != nil {
		return apperror.Internal(fmt.Sprintf("update %s %d", kind, id), err)
	}
	if !ok {
		return apperror.NotFound("%s %d not found", kind, id)
	}
	return nil
}
