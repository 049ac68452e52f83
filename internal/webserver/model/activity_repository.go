package model

import (
	"log"

	"github.com/nbrandao/equidade/internal/result"
	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

// Record appends an audit entry. Failures are logged but never block the
// action being audited.
func (a *ActivityRepository) Record(adminID uint, action string, targetUserID *uint) {
	activity := Activity{
		AdminID:      adminID,
		Action:       action,
		TargetUserID: targetUserID,
	}
	if res := a.DB.Create(&activity); res.Error != nil {
		log.Printf("error recording activity: %s\n", res.Error)
	}
}

func (a *ActivityRepository) List(page int, resultsPerPage int) (result.Paginated[[]Activity], error) {
	var activities []Activity

	res := a.DB.Scopes(Paginate(page, resultsPerPage)).Order("created_at DESC").Find(&activities)
	if res.Error != nil {
		log.Printf("error listing activity: %s\n", res.Error)
		return result.Paginated[[]Activity]{}, res.Error
	}

	var totalRows int64
	a.DB.Model(&Activity{}).Count(&totalRows)

	return result.NewPaginated(
		resultsPerPage,
		page,
		int(totalRows),
		activities,
	), nil
}
