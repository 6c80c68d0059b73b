package main

import (
	"log"

	"github.com/senior-cherry/quiz-builder/internal/config"
	"github.com/senior-cherry/quiz-builder/internal/database"
	"github.com/senior-cherry/quiz-builder/internal/handlers"
	"github.com/senior-cherry/quiz-builder/internal/services"

	_ "github.com/senior-cherry/quiz-builder/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Quiz Builder API
// @version         1.0
// @description     API for creating, listing, viewing and deleting quizzes
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	quizService := services.NewQuizService(db)
	quizHandler := handlers.NewQuizHandler(quizService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", quizHandler.Health)
	r.POST("/quizzes", quizHandler.CreateQuiz)
	r.GET("/quizzes", quizHandler.ListQuizzes)
	r.GET("/quizzes/:id", quizHandler.GetQuiz)
	r.DELETE("/quizzes/:id", quizHandler.DeleteQuiz)

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
