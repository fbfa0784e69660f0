package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fitforge/coaching-app/internal/service"
)

// SetupRoutes wires every handler into the router.
func SetupRoutes(
	router *gin.Engine,
	sessionService service.SessionService,
	metricService service.MetricService,
	habitService service.HabitService,
	programService service.ProgramService,
	teamService service.TeamService,
	leaderboardService service.LeaderboardService,
) {
	sessionHandler := NewSessionHandler(sessionService)
	metricHandler := NewMetricHandler(metricService)
	habitHandler := NewHabitHandler(habitService)
	programHandler := NewProgramHandler(programService)
	teamHandler := NewTeamHandler(teamService)
	leaderboardHandler := NewLeaderboardHandler(leaderboardService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := router.Group("/api/v1")
	{
		athleteGroup := apiV1.Group("/athletes/:athleteId")
		{
			// Session timer. The pair (athlete, program) identifies a session.
			athleteGroup.POST("/sessions/:programId/start", sessionHandler.StartSession)
			athleteGroup.POST("/sessions/:programId/stop", sessionHandler.StopSession)
			athleteGroup.GET("/sessions/:programId", sessionHandler.GetSession)
			athleteGroup.GET("/sessions", sessionHandler.GetActiveSessions)
			athleteGroup.GET("/completions", sessionHandler.GetCompletions)

			athleteGroup.GET("/programs", programHandler.GetAthletePrograms)

			athleteGroup.POST("/metrics", metricHandler.RecordMetric)
			athleteGroup.GET("/metrics", metricHandler.ListMetrics)
			athleteGroup.GET("/metrics/:type/trend", metricHandler.GetTrend)
		}

		apiV1.DELETE("/metrics/:entryId", metricHandler.DeleteMetric)
		apiV1.GET("/metric-definitions", metricHandler.ListDefinitions)
		apiV1.POST("/custom-metrics", metricHandler.CreateCustomMetric)

		programGroup := apiV1.Group("/programs")
		{
			programGroup.POST("", programHandler.CreateProgram)
			programGroup.GET("", programHandler.ListPrograms)
			programGroup.GET("/:programId", programHandler.GetProgram)
			programGroup.PUT("/:programId", programHandler.UpdateProgram)
			programGroup.DELETE("/:programId", programHandler.DeleteProgram)
			programGroup.POST("/:programId/duplicate", programHandler.DuplicateProgram)
			programGroup.PUT("/:programId/assignments", programHandler.AssignProgram)
			programGroup.POST("/:programId/exercises/:exerciseId/sets/:setId/notes", programHandler.AddSetNote)
			programGroup.GET("/:programId/completions", sessionHandler.GetProgramCompletions)
		}

		teamGroup := apiV1.Group("/teams")
		{
			teamGroup.POST("", teamHandler.CreateTeam)
			teamGroup.GET("", teamHandler.ListTeams)
			teamGroup.GET("/:teamId", teamHandler.GetTeam)
			teamGroup.PUT("/:teamId", teamHandler.UpdateTeam)
			teamGroup.DELETE("/:teamId", teamHandler.DeleteTeam)
		}

		habitGroup := apiV1.Group("/habits")
		{
			habitGroup.POST("", habitHandler.CreateHabit)
			habitGroup.GET("", habitHandler.ListHabits)
			habitGroup.GET("/:habitId", habitHandler.GetHabit)
			habitGroup.PUT("/:habitId", habitHandler.UpdateHabit)
			habitGroup.POST("/:habitId/completions", habitHandler.RecordCompletion)
			habitGroup.GET("/:habitId/status", habitHandler.GetStatus)
		}

		apiV1.GET("/leaderboard/:type", leaderboardHandler.GetLeaderboard)
		apiV1.GET("/analytics/completions", leaderboardHandler.GetCompletionStats)
	}
}
