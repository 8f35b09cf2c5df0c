package api

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/katatrina/fixfly-BE/internal/cache"
	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
	"github.com/katatrina/fixfly-BE/internal/notification"
	"github.com/katatrina/fixfly-BE/internal/razorpay"
	"github.com/katatrina/fixfly-BE/internal/token"
	"github.com/katatrina/fixfly-BE/internal/util"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"google.golang.org/api/idtoken"
)

type Server struct {
	router                 *gin.Engine
	dbStore                db.Store
	tokenMaker             token.Maker
	config                 *util.Config
	googleIDTokenValidator *idtoken.Validator
	paymentGateway         razorpay.PaymentGateway
	notifier               notification.Sink
	planCache              cache.PlanCache
	now                    func() time.Time
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(store db.Store, config *util.Config, paymentGateway razorpay.PaymentGateway, notifier notification.Sink, planCache cache.PlanCache) (*Server, error) {
	// Create a new JWT token maker
	tokenMaker, err := token.NewJWTMaker(config.TokenSecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create token maker: %w", err)
	}
	log.Info().Msg("Token maker created successfully ✅")

	// Create a new Google ID token validator
	googleIDTokenValidator, err := idtoken.NewValidator(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to create google id token validator: %w", err)
	}

	server := &Server{
		dbStore:                store,
		tokenMaker:             tokenMaker,
		config:                 config,
		googleIDTokenValidator: googleIDTokenValidator,
		paymentGateway:         paymentGateway,
		notifier:               notifier,
		planCache:              planCache,
		now:                    time.Now,
	}

	server.setupRouter()
	return server, nil
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := router.Group("/v1")

	v1.GET("/health", server.healthCheck)
	v1.POST("/tokens/verify", server.verifyAccessToken)

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", server.registerUser)
		authGroup.POST("/login", server.loginUser)
		authGroup.POST("/google-login", server.loginUserWithGoogle)
	}

	v1.POST("/vendors/auth/login", server.loginVendor)

	// API công khai cho danh mục gói AMC
	v1.GET("/amc/plans", server.listActiveAMCPlans)
	v1.GET("/amc/plans/:id", server.getAMCPlan)

	// API cho khách hàng đã đăng nhập
	subscriptionGroup := v1.Group("/amc/subscriptions", authMiddleware(server.tokenMaker), requiredRole(token.RoleCustomer))
	{
		subscriptionGroup.POST("", server.createAMCSubscription)
		subscriptionGroup.GET("", server.listUserAMCSubscriptions)
		subscriptionGroup.GET(":id", server.getUserAMCSubscription)
		subscriptionGroup.POST(":id/verify-payment", server.verifyAMCPayment)
		subscriptionGroup.POST(":id/cancel", server.cancelAMCSubscription)
		subscriptionGroup.POST(":id/renew", server.renewAMCSubscription)
		subscriptionGroup.POST(":id/services", server.requestAMCService)
		subscriptionGroup.PATCH(":id/auto-renewal", server.setAMCAutoRenewal)
	}

	bookingGroup := v1.Group("/bookings")
	{
		// Khách vãng lai cũng có thể đặt lịch
		bookingGroup.POST("", optionalAuthMiddleware(server.tokenMaker), server.createBooking)

		bookingGroup.Use(authMiddleware(server.tokenMaker))
		bookingGroup.POST("/payment/create-order", server.createBookingPaymentOrder)
		bookingGroup.POST("/payment/verify", server.verifyBookingPayment)
		bookingGroup.GET("/customer/:email", server.listCustomerBookings)
		bookingGroup.GET(":id", server.getBooking)
		bookingGroup.PATCH(":id/status", server.updateBookingStatus)
		bookingGroup.PATCH(":id/cancel-by-user", server.cancelBookingByUser)
		bookingGroup.PATCH(":id/reschedule-by-user", server.rescheduleBookingByUser)

		vendorBookingGroup := bookingGroup.Group("", requiredVendorRole(server.dbStore))
		{
			vendorBookingGroup.PATCH(":id/accept", server.acceptBooking)
			vendorBookingGroup.PATCH(":id/decline", server.declineBooking)
			vendorBookingGroup.POST(":id/complete", server.completeBookingTask)
		}
	}

	// API cho vendor console
	vendorGroup := v1.Group("/vendor", authMiddleware(server.tokenMaker), requiredVendorRole(server.dbStore))
	{
		vendorGroup.GET("/bookings", server.listVendorBookings)
		vendorGroup.GET("/profile", server.getVendorProfile)
	}

	blogGroup := v1.Group("/blogs")
	{
		blogGroup.GET("", server.listPublishedBlogs)
		blogGroup.GET(":slug", server.getBlogBySlug)
	}

	// API cho admin
	adminGroup := v1.Group("/admin", authMiddleware(server.tokenMaker), requiredAdminRole(server.dbStore))
	{
		adminGroup.GET("/dashboard", server.getAdminDashboard)
		adminGroup.GET("/users", server.listUsers)

		adminVendorGroup := adminGroup.Group("/vendors")
		{
			adminVendorGroup.GET("", server.listVendors)
			adminVendorGroup.POST("", server.createVendor)
			adminVendorGroup.PATCH(":id", server.updateVendor)
		}

		adminPlanGroup := adminGroup.Group("/amc/plans")
		{
			adminPlanGroup.GET("", server.listAMCPlans)
			adminPlanGroup.POST("", server.createAMCPlan)
			adminPlanGroup.GET(":id", server.getAdminAMCPlan)
			adminPlanGroup.PUT(":id", server.updateAMCPlan)
			adminPlanGroup.DELETE(":id", server.deleteAMCPlan)
		}

		adminSubscriptionGroup := adminGroup.Group("/amc/subscriptions")
		{
			adminSubscriptionGroup.GET("", server.listAMCSubscriptions)
			adminSubscriptionGroup.GET("/expiring", server.listExpiringAMCSubscriptions)
			adminSubscriptionGroup.GET(":id", server.getAMCSubscription)
			adminSubscriptionGroup.POST(":id/record-payment", server.recordAMCCashPayment)
			adminSubscriptionGroup.PATCH(":id/usage", server.updateAMCUsage)
			adminSubscriptionGroup.POST(":id/services", server.addAMCService)
		}

		adminGroup.GET("/amc/stats", server.getAMCStats)

		adminBookingGroup := adminGroup.Group("/bookings")
		{
			adminBookingGroup.GET("", server.listBookings)
			adminBookingGroup.GET("/stats", server.getBookingStats)
			adminBookingGroup.POST(":id/assign", server.assignVendor)
			adminBookingGroup.PATCH(":id/cancel", server.cancelBookingByAdmin)
		}

		adminBlogGroup := adminGroup.Group("/blogs")
		{
			adminBlogGroup.GET("", server.listBlogs)
			adminBlogGroup.POST("", server.createBlog)
			adminBlogGroup.PUT(":id", server.updateBlog)
			adminBlogGroup.DELETE(":id", server.deleteBlog)
		}
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server.router = router
	return router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

// Handler exposes the router so main can serve it with graceful shutdown.
func (server *Server) Handler() *gin.Engine {
	return server.router
}

// SetupWebhookRouter builds the router Razorpay calls back on. It is served on its own address.
func (server *Server) SetupWebhookRouter() *gin.Engine {
	webhookRouter := gin.New()
	webhookRouter.Use(gin.Recovery())

	webhookRouter.POST("/v1/razorpay/webhook", server.handleRazorpayWebhook)

	return webhookRouter
}

func (server *Server) healthCheck(c *gin.Context) {
	if err := server.dbStore.Ping(c.Request.Context()); err != nil {
		c.JSON(503, errorResponse(fmt.Errorf("database unavailable: %w", err)))
		return
	}

	c.JSON(200, successResponse(gin.H{"status": "ok"}))
}

// notify giao thông báo qua sink đã cấu hình. Lỗi chỉ được ghi log, không làm hỏng request.
func (server *Server) notify(ctx context.Context, n *notification.Notification) {
	if err := server.notifier.Notify(ctx, n); err != nil {
		log.Error().Err(err).Str("type", n.Type).Str("reference_id", n.ReferenceID).Msg("failed to send notification")
	}
}
