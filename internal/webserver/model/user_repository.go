package model

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nbrandao/equidade/internal/result"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (u *UserRepository) List(page int, resultsPerPage int, filter string) (result.Paginated[[]User], error) {
	var users []User

	query := u.DB
	if filter != "" {
		query = query.Where("name LIKE ? OR email LIKE ? OR username LIKE ?", "%"+filter+"%", "%"+filter+"%", "%"+filter+"%")
	}

	res := query.Scopes(Paginate(page, resultsPerPage)).Order("email ASC").Find(&users)
	if res.Error != nil {
		log.Printf("error listing users: %s\n", res.Error)
		return result.Paginated[[]User]{}, res.Error
	}

	return result.NewPaginated(
		resultsPerPage,
		page,
		int(u.Total(filter)),
		users,
	), nil
}

func (u *UserRepository) Total(filter string) int64 {
	var (
		totalRows int64
		users     []User
	)

	query := u.DB.Model(&users)
	if filter != "" {
		query = query.Where("name LIKE ? OR email LIKE ? OR username LIKE ?", "%"+filter+"%", "%"+filter+"%", "%"+filter+"%")
	}
	query.Count(&totalRows)
	return totalRows
}

// Create inserts the user relying on the unique indexes on username and
// email, so a concurrent insert of the same identity cannot slip through a
// check-then-insert race. Returns ErrDuplicateIdentity on conflict.
func (u *UserRepository) Create(user *User) error {
	if res := u.DB.Create(user); res.Error != nil {
		if isUniqueViolation(res.Error) {
			return ErrDuplicateIdentity
		}
		log.Printf("error creating user: %s\n", res.Error)
		return res.Error
	}
	return nil
}

func (u *UserRepository) Update(user *User) error {
	if res := u.DB.Save(user); res.Error != nil {
		if isUniqueViolation(res.Error) {
			return ErrDuplicateIdentity
		}
		log.Printf("error updating user: %s\n", res.Error)
		return res.Error
	}
	return nil
}

// SetActive toggles the soft-deactivation flag. Accounts are never deleted
// physically.
func (u *UserRepository) SetActive(uuid string, active bool) error {
	return u.DB.Model(&User{}).Where("uuid = ?", uuid).Update("active", active).Error
}

func (u *UserRepository) FindByUuid(uuid string) (*User, error) {
	return u.find("uuid", uuid)
}

func (u *UserRepository) FindByID(id uint) (*User, error) {
	var user User

	res := u.DB.First(&user, id)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, res.Error
}

func (u *UserRepository) FindByEmail(email string) (*User, error) {
	return u.find("email", email)
}

func (u *UserRepository) FindByUsername(username string) (*User, error) {
	return u.find("username", username)
}

// ActiveAdmins returns how many active admin accounts exist. Used to protect
// the last admin from demotion and deactivation.
func (u *UserRepository) ActiveAdmins() int64 {
	var totalRows int64
	u.DB.Model(&User{}).Where("role = ? AND active = ?", RoleAdmin, true).Count(&totalRows)
	return totalRows
}

func (u *UserRepository) find(field, value string) (*User, error) {
	var user User

	res := u.DB.Where(fmt.Sprintf("%s = ?", field), value).First(&user)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, res.Error
}

// isUniqueViolation reports whether err comes from a unique constraint.
// GORM's error translation covers most cases; the string check catches sqlite
// drivers that predate it.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
