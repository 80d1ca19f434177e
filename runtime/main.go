package main

import (
	"github.com/codemastery/course_api/services"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// @title Course API
// @version 1.0
// @description Account and lesson-progress backend for the course platform.
// @BasePath /
func main() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Msg("No .env file found, using environment")
	}

	ctx, err := context.NewCtx(
		&services.MysqlService{},
		&services.MonitoringService{},

		&services.AuthService{},
		&services.UserService{},
		&services.ProgressService{},
		&services.AdminService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build service context")
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("Service runtime failed")
		return
	}
}
