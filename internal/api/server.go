package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/contestcorner/contest-corner-api/docs"
	v1 "github.com/contestcorner/contest-corner-api/internal/api/handler/v1"
	"github.com/contestcorner/contest-corner-api/internal/api/middleware"
	"github.com/contestcorner/contest-corner-api/internal/config"
	"github.com/contestcorner/contest-corner-api/internal/repository"
	"github.com/contestcorner/contest-corner-api/internal/repository/dao"
	"github.com/contestcorner/contest-corner-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := v1.NewAuthHandler(s.Config.API)
	userHandler := s.initUserHandler(db)
	contestHandler := s.initContestHandler(db)
	submissionHandler := s.initSubmissionHandler(db)
	paymentHandler := s.initPaymentHandler(db)
	s.MountHandlers(authHandler, userHandler, contestHandler, submissionHandler, paymentHandler)

	return s
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initContestHandler(db *gorm.DB) *v1.ContestHandler {
	contestDAO := dao.NewContestDAO(db)
	repo := repository.NewContestRepository(contestDAO)
	svc := service.NewContestService(repo)
	handler := v1.NewContestHandler(svc)

	return handler
}

func (s *Server) initSubmissionHandler(db *gorm.DB) *v1.SubmissionHandler {
	submissionDAO := dao.NewSubmissionDAO(db)
	repo := repository.NewSubmissionRepository(submissionDAO)
	contestRepo := repository.NewContestRepository(dao.NewContestDAO(db))
	svc := service.NewSubmissionService(repo, contestRepo)
	handler := v1.NewSubmissionHandler(svc)

	return handler
}

func (s *Server) initPaymentHandler(db *gorm.DB) *v1.PaymentHandler {
	paymentDAO := dao.NewPaymentDAO(db)
	repo := repository.NewPaymentRepository(paymentDAO)
	contestRepo := repository.NewContestRepository(dao.NewContestDAO(db))
	svc := service.NewPaymentService(repo, contestRepo, s.Config.Stripe)
	handler := v1.NewPaymentHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	contestHandler *v1.ContestHandler,
	submissionHandler *v1.SubmissionHandler,
	paymentHandler *v1.PaymentHandler,
) {
	public := s.Router.Group("")
	{
		public.POST("/jwt", authHandler.HandleIssueToken)
		public.GET("/logout", authHandler.HandleLogout)

		public.PUT("/user", userHandler.HandleUpsertUser)
		public.PUT("/user/update/:email", userHandler.HandleUpdateProfile)
		public.PATCH("/user/update/:email", userHandler.HandleUpdateUser)
		public.DELETE("/user/delete/:id", userHandler.HandleDeleteUser)

		public.POST("/addContest", contestHandler.HandleCreateContest)
		public.GET("/contests", contestHandler.HandleGetContests)
		public.GET("/contests/search", contestHandler.HandleSearchContests)
		public.GET("/popularContests", contestHandler.HandlePopularContests)
		public.GET("/contestCount", contestHandler.HandleContestCount)
		public.GET("/contestDetails/:id", contestHandler.HandleGetContest)
		public.GET("/editContest/:id", contestHandler.HandleGetContest)
		public.GET("/payment/:id", contestHandler.HandleGetContest)
		public.PATCH("/contests/update/:id", contestHandler.HandleUpdateContest)
		public.DELETE("/contests/delete/:id", contestHandler.HandleDeleteContest)
		public.GET("/myContest/:email", contestHandler.HandleMyContests)

		public.GET("/latestWinner", contestHandler.HandleLatestWinner)
		public.GET("/topCreators", contestHandler.HandleTopCreators)
		public.GET("/winningContest/:email", contestHandler.HandleWinningContests)
		public.GET("/userWin/:email", submissionHandler.HandleUserWinStats)
		public.GET("/leaderBoard", submissionHandler.HandleLeaderboard)
	}

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey, s.Config.API.JWTTransport)
	protected := s.Router.Group("", authenticator.VerifyJWT())
	{
		protected.GET("/users", userHandler.HandleListUsers)
		protected.GET("/user/:email", userHandler.HandleGetUser)

		protected.POST("/submittedTask", submissionHandler.HandleCreateSubmission)
		protected.GET("/submittedTask", submissionHandler.HandleListSubmissions)
		protected.GET("/contestSubmitDetails/:id", submissionHandler.HandleContestSubmissions)
		protected.PATCH("/declareWin", contestHandler.HandleDeclareWin)

		protected.POST("/create-payment-intent", paymentHandler.HandleCreatePaymentIntent)
		protected.POST("/payments", paymentHandler.HandleCreatePayment)
		protected.GET("/payments/:email", paymentHandler.HandleUserPayments)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "Contest Corner API"
	docs.SwaggerInfo.Description = "Backend API for the Contest Corner platform."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
