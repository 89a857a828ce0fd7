package routes

import (
	"github.com/gin-gonic/gin"
)

func addPaymentRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	onboardings := rg.Group(PathOnboardings)
	{
		onboardings.POST("/:id/deposit-payment", deps.Payment.PayDeposit)
		onboardings.GET("/:id/deposit-payment", deps.Payment.GetDepositPayment)
	}
}
