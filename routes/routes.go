package routes

import (
	"otto/chathandlers"
	"otto/ratelim"
	"otto/vision"

	"github.com/julienschmidt/httprouter"
)

func AddChatRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/chat/messages", rl.Limit(chathandlers.SubmitMessage))
	router.GET("/api/chat/messages", chathandlers.GetMessages)
	router.GET("/api/chat/state", chathandlers.GetState)
	router.POST("/api/chat/clear", chathandlers.ClearChat)
	router.GET("/api/chat/ws", chathandlers.StateSocket)
}

func AddCartRoutes(router *httprouter.Router) {
	router.GET("/api/cart", chathandlers.GetCart)
	router.POST("/api/cart", chathandlers.AddCartItem)
	router.DELETE("/api/cart", chathandlers.ClearCart)
	router.DELETE("/api/cart/:productid", chathandlers.RemoveCartItem)
	router.POST("/api/cart/toggle", chathandlers.ToggleCart)
	router.GET("/api/cart/qr/:productid", chathandlers.ProductQR)
}

func AddProductRoutes(router *httprouter.Router) {
	router.GET("/api/products/search", chathandlers.SearchCatalog)
}

func AddSolutionRoutes(router *httprouter.Router) {
	router.GET("/api/solutions/current", chathandlers.GetCurrentSolution)
	router.GET("/api/solutions/current/pdf", chathandlers.SolutionPDF)
}

func AddVisionRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/analyze-image", rl.Limit(vision.AnalyzeImage))
	router.POST("/api/generate-image", rl.Limit(vision.GenerateImage))
}
