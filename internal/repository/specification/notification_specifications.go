package specification

import "gorm.io/gorm"

type Unread struct{}

func (s Unread) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_read = ?", false)
}

// ActiveCode selects an enabled notification type by its event code.
type ActiveCode struct {
	Code string
}

func (s ActiveCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("code = ? AND is_active = ?", s.Code, true)
}
