package repositories

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/codemastery/course_api/model"
)

// UserRepository handles user-related database operations
type UserRepository struct {
	BaseRepository
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *UserRepository) GetUser(userID uint) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail matches the email exactly, case included.
func (ds *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUserWithProgress creates the account and its empty progress record in
// one transaction, so a failed progress insert rolls the account back. The
// first account in an empty store gets the admin role; the count check runs
// inside the transaction so concurrent first registrations are settled by
// whichever insert commits first.
func (ds *UserRepository) CreateUserWithProgress(user *model.User) error {
	return ds.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Count(&count).Error; err != nil {
			return err
		}

		user.Role = model.RoleStudent
		if count == 0 {
			user.Role = model.RoleAdmin
		}

		if err := tx.Create(user).Error; err != nil {
			return err
		}

		progress := &model.UserProgress{
			UserID:           user.ID,
			CompletedLessons: json.RawMessage("[]"),
			Bookmarks:        json.RawMessage("[]"),
			LastLessonID:     1,
		}
		return tx.Create(progress).Error
	})
}

// UpdateProfile updates the name and, when a new hash is supplied, the
// password of a user in a single statement. An unknown id affects zero rows.
func (ds *UserRepository) UpdateProfile(userID uint, name string, passwordHash string) error {
	updates := map[string]interface{}{
		"name":       name,
		"updated_at": time.Now(),
	}
	if passwordHash != "" {
		updates["password"] = passwordHash
	}
	return ds.db.Model(&model.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (ds *UserRepository) DeleteUser(userID uint) error {
	return ds.db.Delete(&model.User{}, userID).Error
}

// UserWithProgressRow is the scan target for the admin listing join. The
// progress columns are nullable because rows migrated from before the
// transactional registration may lack a progress record.
type UserWithProgressRow struct {
	ID                 uint
	Name               string
	Email              string
	Role               string
	CreatedAt          time.Time
	ProgressPercentage *int
	CompletedLessons   []byte
}

// ListUsersWithProgress returns every user joined with its progress record,
// newest account first.
func (ds *UserRepository) ListUsersWithProgress() ([]UserWithProgressRow, error) {
	var rows []UserWithProgressRow
	err := ds.db.Table("users").
		Select("users.id, users.name, users.email, users.role, users.created_at, up.progress_percentage, up.completed_lessons").
		Joins("LEFT JOIN user_progress up ON up.user_id = users.id").
		Order("users.created_at DESC, users.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
