package routes

import (
	"innovation-platform-api/controllers"
	"innovation-platform-api/middleware"
	"innovation-platform-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"message": "Innovation Platform API is running",
			})
		})

		// Users
		users := api.Group("/users")
		{
			users.POST("/register", controllers.Register)
			users.POST("/login", controllers.Login)
			users.POST("/logout", controllers.Logout)
			users.GET("/confirm/:token", controllers.ConfirmEmail)
			users.POST("/password-reset", controllers.ForgotPassword)
			users.POST("/reset-password", controllers.ResetPassword)

			authed := users.Group("")
			authed.Use(middleware.AuthMiddleware())
			{
				authed.GET("/profile", controllers.GetProfile)
				authed.PUT("/profile", controllers.UpdateProfile)
				authed.PUT("/change-password", controllers.ChangePassword)

				admin := authed.Group("")
				admin.Use(middleware.RequireRole(models.RoleAdmin))
				{
					admin.POST("/register-admin", controllers.RegisterAdmin)
					admin.GET("", controllers.GetUsers)
					admin.GET("/:userId", controllers.GetUser)
					admin.DELETE("/:userId", controllers.DeleteUser)
					admin.PATCH("/:userId/role", controllers.UpdateUserRole)
				}
			}
		}

		// Challenges
		challenges := api.Group("/challenges")
		{
			challenges.GET("", controllers.GetChallenges)
			challenges.GET("/search", controllers.SearchChallenges)
			challenges.GET("/:id", controllers.GetChallenge)
			challenges.GET("/:id/teams", controllers.GetChallengeTeams)
			challenges.PATCH("/:id/view", controllers.IncrementViewCount)

			authed := challenges.Group("")
			authed.Use(middleware.AuthMiddleware())
			{
				authed.POST("", controllers.CreateChallenge)
				authed.DELETE("/:id", controllers.DeleteChallenge)
				authed.PATCH("/:id/archive", controllers.ArchiveChallenge)
			}
		}

		// Ideas
		ideas := api.Group("/ideas")
		{
			ideas.GET("", controllers.GetIdeas)
			ideas.GET("/:ideaId", controllers.GetIdea)

			authed := ideas.Group("")
			authed.Use(middleware.AuthMiddleware())
			{
				authed.POST("", controllers.CreateIdea)
				authed.POST("/:ideaId/comments", controllers.AddComment)
				authed.POST("/:ideaId/feedback", controllers.SubmitFeedback)
			}
		}

		// Teams
		teams := api.Group("/teams")
		{
			teams.GET("", controllers.GetTeams)
			teams.GET("/:teamId", controllers.GetTeam)
			teams.GET("/:teamId/messages", controllers.GetMessages)

			authed := teams.Group("")
			authed.Use(middleware.AuthMiddleware())
			{
				authed.POST("", controllers.CreateTeam)
				authed.DELETE("/:teamId", controllers.DeleteTeam)
				authed.PUT("/:teamId/members", controllers.AddMember)
				authed.DELETE("/:teamId/members/:userId", controllers.RemoveMember)
				authed.POST("/:teamId/messages", controllers.SendMessage)
			}
		}

		// Idea spaces
		ideaSpaces := api.Group("/ideaspaces")
		{
			ideaSpaces.GET("", controllers.GetIdeaSpaces)
			ideaSpaces.GET("/search", controllers.SearchIdeaSpaces)
			ideaSpaces.GET("/:id", controllers.GetIdeaSpace)

			authed := ideaSpaces.Group("")
			authed.Use(middleware.AuthMiddleware())
			{
				authed.POST("", controllers.CreateIdeaSpace)
			}
		}
	}
}
