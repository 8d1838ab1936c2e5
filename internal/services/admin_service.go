// internal/services/admin_service.go
package services

import (
	"gorm.io/gorm"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/models"
)

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

type DashboardStats struct {
	Partners            int64 `json:"partners"`
	Customers           int64 `json:"customers"`
	Users               int64 `json:"users"`
	Licenses            int64 `json:"licenses"`
	UnassignedLicenses  int64 `json:"unassignedLicenses"`
	WaitingApplications int64 `json:"waitingApplications"`
	Courses             int64 `json:"courses"`
}

func (s *AdminService) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	counts := []struct {
		query *gorm.DB
		dest  *int64
	}{
		{s.db.Model(&models.Partner{}), &stats.Partners},
		{s.db.Model(&models.Customer{}), &stats.Customers},
		{s.db.Model(&models.User{}), &stats.Users},
		{s.db.Model(&models.License{}), &stats.Licenses},
		{s.db.Model(&models.License{}).
			Where("partner_acronis_id IS NULL AND customer_acronis_id IS NULL"), &stats.UnassignedLicenses},
		{s.db.Model(&models.Application{}).Where("approved_at IS NULL"), &stats.WaitingApplications},
		{s.db.Model(&models.Course{}), &stats.Courses},
	}

	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	return stats, nil
}
