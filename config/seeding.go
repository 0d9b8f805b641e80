package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hogl3g/tracker/models"
)

// RunSeeding provisions the admin user and loads sample projects.
// Both steps skip rows that already exist, so it is safe on every start.
func RunSeeding(db *gorm.DB) error {
	if err := seedAdminUser(db); err != nil {
		return err
	}
	seedSampleProjects(db)
	return nil
}

func seedAdminUser(db *gorm.DB) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@example.com"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "dev_password"
	}

	var admin models.User
	err := db.Where("email = ?", adminEmail).First(&admin).Error
	if err == nil {
		log.Println("Admin user exists:", adminEmail)
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin = models.User{
		Email:        adminEmail,
		Name:         "Admin",
		Role:         "admin",
		PasswordHash: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Created admin user:", adminEmail)
	return nil
}

// seedSampleProjects loads sample-projects.csv when present. Rows use the
// same naive comma-split format the import endpoint accepts.
func seedSampleProjects(db *gorm.DB) {
	data, err := os.ReadFile("sample-projects.csv")
	if err != nil {
		log.Println("No sample-projects.csv found, skipping project seed")
		return
	}

	lines := strings.Split(string(data), "\n")
	var headers []string
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if headers == nil {
			headers = strings.Split(line, ",")
			for j := range headers {
				headers[j] = strings.TrimSpace(headers[j])
			}
			continue
		}

		values := strings.Split(line, ",")
		row := map[string]string{}
		for j, h := range headers {
			if j < len(values) {
				row[h] = strings.TrimSpace(values[j])
			}
		}

		var count int64
		db.Model(&models.Project{}).Where("name = ?", row["name"]).Count(&count)
		if count > 0 {
			continue
		}

		started := time.Now()
		if row["dateStarted"] != "" {
			if t, perr := models.ParseDate(row["dateStarted"]); perr == nil {
				started = t
			}
		}
		planned := 0
		if row["unitsPlanned"] != "" {
			if n, perr := strconv.Atoi(row["unitsPlanned"]); perr == nil {
				planned = n
			}
		}
		status := row["status"]
		if status == "" {
			status = "active"
		}

		project := models.Project{
			Name:         row["name"],
			Address:      row["address"],
			DateStarted:  models.JSONTime(started),
			UnitsPlanned: &planned,
			Status:       status,
		}
		if s := row["supervisor"]; s != "" {
			project.Supervisor = &s
		}

		if err := db.Create(&project).Error; err != nil {
			log.Printf("Failed to insert sample project %q (line %d): %v", row["name"], i+1, err)
			continue
		}
		log.Println("Inserted sample project:", project.Name)
	}
}
