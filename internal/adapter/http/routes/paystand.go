package routes

import (
	"paystand_bridge/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPaystand = "/paystand"
	PathPayer    = "/payer"
)

func addPaystandRoutes(rg *gin.RouterGroup, h *handlers.PaystandHandler) {
	// Token exchange is the only public endpoint.
	rg.POST(PathPaystand+"/token", h.ExchangeToken)

	authed := rg.Group("", handlers.RequireAuthorization())

	paystand := authed.Group(PathPaystand)
	{
		paystand.POST("/customer", h.CreateCustomer)
		paystand.GET("/customer/:customer_id", h.GetCustomer)
	}

	authed.POST("/dropAmounts", h.DropAmounts)
	authed.POST("/verifyAmounts", h.VerifyAmounts)

	payer := authed.Group(PathPayer)
	{
		payer.POST("", h.CreatePayer)
		payer.GET("/:payer_id", h.GetPayer)
		payer.POST("/addBank", h.AddPayerBank)
		payer.POST("/bankPayment", h.BankPayment)
		payer.POST("/cardPayment", h.CardPayment)
	}
}
