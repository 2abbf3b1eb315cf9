package migration

import (
	"github.com/google/uuid"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/pkg/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for all tables and seeds the default admin
// account when the users table is empty.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Student{},
		&domain.Teacher{},
		&domain.SchoolClass{},
		&domain.Attendance{},
		&domain.Exam{},
		&domain.ExamResult{},
		&domain.FeeInvoice{},
		&domain.FeePayment{},
		&domain.Message{},
		&domain.MessageRecipient{},
		&domain.MessageAttachment{},
		&domain.Announcement{},
		&domain.ScheduleEntry{},
		&domain.TransportRoute{},
		&domain.TransportAssignment{},
		&domain.PayrollRecord{},
	); err != nil {
		return err
	}

	var count int64
	db.Model(&domain.User{}).Count(&count)
	if count == 0 {
		return seedAdmin(db)
	}

	return nil
}

// seedAdmin creates the initial admin account. The password must be
// changed after first login.
func seedAdmin(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		ID:           uuid.New().String(),
		Username:     "admin",
		PasswordHash: string(hash),
		Name:         "Administrator",
		Role:         domain.RoleAdmin,
		Active:       true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.Warn("Seeded default admin account; change its password immediately")
	return nil
}
