package main

import (
	"log"

	"github.com/senior-cherry/quiz-builder/internal/client"
	"github.com/senior-cherry/quiz-builder/internal/config"
	"github.com/senior-cherry/quiz-builder/internal/middleware"
	"github.com/senior-cherry/quiz-builder/internal/web"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	api := client.New(cfg.APIBaseURL)
	drafts := web.NewDraftStore()
	handler := web.NewHandler(api, drafts)

	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")
	r.Use(middleware.DraftSession())

	r.GET("/", handler.Home)
	r.GET("/quizzes", handler.ListQuizzes)
	r.GET("/quizzes/:id", handler.ShowQuiz)
	r.POST("/quizzes/:id/delete", handler.DeleteQuiz)
	r.GET("/create", handler.ShowCreate)
	r.POST("/create", handler.HandleCreate)

	log.Printf("web frontend starting on :%s", cfg.WebPort)
	if err := r.Run(":" + cfg.WebPort); err != nil {
		log.Fatalf("failed to start web frontend: %v", err)
	}
}
