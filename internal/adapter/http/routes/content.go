package routes

import "github.com/gin-gonic/gin"

const PathContent = "/content"

func addContentRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	rg.GET(PathContent+"/:section", deps.Content.GetSection)
}
