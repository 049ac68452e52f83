package infrastructure

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/nbrandao/equidade/internal/webserver/model"
	"gorm.io/gorm"
)

func Connect(path string) *gorm.DB {
	if _, err := os.Stat(path); os.IsNotExist(err) && !strings.Contains(path, ":memory:") {
		if _, err = os.Create(path); err != nil {
			log.Fatal(err)
		}
		log.Printf("Created database at %s\n", path)
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", path)), &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		TranslateError: true,
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.InviteToken{}, &model.Activity{}, &model.PendingAuth{}); err != nil {
		log.Fatal(err)
	}
	addDefaultAdmin(db)
	return db
}

// addDefaultAdmin seeds the first admin account on an empty database so the
// application is usable right after install.
func addDefaultAdmin(db *gorm.DB) {
	var result int64
	db.Table("users").Count(&result)

	if result == 0 {
		password, err := model.HashPassword("admin")
		if err != nil {
			log.Fatal("Couldn't hash default admin password")
		}
		user := &model.User{
			Uuid:     uuid.NewString(),
			Name:     "Admin",
			Username: "admin",
			Email:    "admin@example.com",
			Password: password,
			Role:     model.RoleAdmin,
			Active:   true,
		}
		if result := db.Create(&user); result.Error != nil {
			log.Fatal("Couldn't create default admin")
		}
	}
}
