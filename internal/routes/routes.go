package routes

import (
	"github.com/gin-gonic/gin"

	"sponsorcrm/internal/handlers"
)

func SetupRoutes(
	r *gin.Engine,
	leadHandler *handlers.LeadHandler,
	sponsorHandler *handlers.SponsorHandler,
	statsHandler *handlers.StatsHandler,
	parseDocHandler *handlers.ParseDocumentHandler,
	inboundEmailHandler *handlers.InboundEmailHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
) *gin.Engine {

	r.GET("/healthz", healthHandler.Check)

	// LEADS
	leads := r.Group("/leads")
	{
		leads.GET("", leadHandler.List)
		leads.POST("", leadHandler.Create)
		leads.GET("/:id", leadHandler.GetByID)
		leads.PATCH("/:id", leadHandler.Update)
		leads.DELETE("/:id", leadHandler.Delete)
	}

	// SPONSORS
	sponsors := r.Group("/sponsors")
	{
		sponsors.GET("", sponsorHandler.List)
		sponsors.POST("", sponsorHandler.Create)
		sponsors.GET("/:id", sponsorHandler.GetByID)
		sponsors.PATCH("/:id", sponsorHandler.Update)
		sponsors.DELETE("/:id", sponsorHandler.Delete)
		sponsors.POST("/:id/convert", sponsorHandler.ConvertToLead)
		sponsors.GET("/:id/contract.pdf", sponsorHandler.ContractPDF)
	}

	// DASHBOARD / BOARD
	r.GET("/stats", statsHandler.Get)
	r.GET("/pipeline/board", leadHandler.Board)

	// EXTRACTION
	r.POST("/parse-document", parseDocHandler.Parse)
	r.POST("/inbound-email", inboundEmailHandler.Receive)
	r.GET("/inbound-email", inboundEmailHandler.Describe)

	// REPORTS
	r.GET("/reports/pipeline.pdf", reportHandler.PipelinePDF)

	return r
}
