package services

import (
	"fmt"
	"os"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/codemastery/course_api/model"
)

type MysqlService struct {
	context.DefaultService
	db *gorm.DB

	dsn string
}

const MYSQL_SVC = "mysql_svc"

// Id returns Service ID
func (ds MysqlService) Id() string {
	return MYSQL_SVC
}

// Db Access to raw MysqlService db
func (ds MysqlService) Db() *gorm.DB {
	return ds.db
}

// Configure the service
func (ds *MysqlService) Configure(ctx *context.Context) error {
	ds.dsn = os.Getenv("MYSQL_DSN")
	if ds.dsn == "" {
		// Fallback to individual environment variables
		host := os.Getenv("DB_HOST")
		if host == "" {
			host = "localhost"
		}
		port := os.Getenv("DB_PORT")
		if port == "" {
			port = "3306"
		}
		user := os.Getenv("DB_USER")
		if user == "" {
			user = "root"
		}
		password := os.Getenv("DB_PASSWORD")
		if password == "" {
			password = "root"
		}
		dbname := os.Getenv("DB_NAME")
		if dbname == "" {
			dbname = "course_api"
		}

		ds.dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			user, password, host, port, dbname)
	}

	return ds.DefaultService.Configure(ctx)
}

// Start the service and open connection to the database
// Migrate any tables that have changed since last runtime
func (ds *MysqlService) Start() (err error) {
	maxRetries := 10
	retryDelay := time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("Attempting to connect to database (attempt %d/%d)...", attempt, maxRetries)

		ds.db, err = gorm.Open(mysql.Open(ds.dsn), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Error),
			TranslateError: true,
		})

		if err == nil {
			sqlDB, dbErr := ds.db.DB()
			if dbErr == nil {
				pingErr := sqlDB.Ping()
				if pingErr == nil {
					log.Println("Successfully connected to database")
					break
				}
				err = pingErr
			} else {
				err = dbErr
			}
		}

		if attempt == maxRetries {
			log.Printf("Failed to connect to database after %d attempts: %v", maxRetries, err)
			return err
		}

		log.Printf("Database connection failed: %v. Retrying in %v...", err, retryDelay)
		time.Sleep(retryDelay)

		retryDelay *= 2
		if retryDelay > 10*time.Second {
			retryDelay = 10 * time.Second
		}
	}

	return ds.migrate()
}

// migrate bootstraps the schema idempotently. Users tables created before the
// role column existed get it added up front so the default applies to old
// rows as well.
func (ds *MysqlService) migrate() error {
	migrator := ds.db.Migrator()
	if migrator.HasTable(&model.User{}) && !migrator.HasColumn(&model.User{}, "role") {
		if err := migrator.AddColumn(&model.User{}, "Role"); err != nil {
			return err
		}
		log.Println("Added role column to users table")
	}

	err := ds.db.AutoMigrate(
		&model.User{},
		&model.UserProgress{},
	)
	if err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	log.Println("Database connected and migrated successfully")
	return nil
}

func (ds *MysqlService) Shutdown() {
}
