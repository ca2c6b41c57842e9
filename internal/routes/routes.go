package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/care-scheduler/internal/config"
	"github.com/BruksfildServices01/care-scheduler/internal/events"
	"github.com/BruksfildServices01/care-scheduler/internal/handlers"
	"github.com/BruksfildServices01/care-scheduler/internal/infra/mercadopago"
	infraRepo "github.com/BruksfildServices01/care-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/care-scheduler/internal/middleware"
	"github.com/BruksfildServices01/care-scheduler/internal/storage"
	ucAppointment "github.com/BruksfildServices01/care-scheduler/internal/usecase/appointment"
	ucPayment "github.com/BruksfildServices01/care-scheduler/internal/usecase/payment"
)

type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Logger   *zap.Logger
	Expiries ucPayment.ExpiryStore
}

func RegisterRoutes(r *gin.Engine, deps Deps) error {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(deps.DB)
	clientRepo := infraRepo.NewClientGormRepository(deps.DB)
	professionalRepo := infraRepo.NewProfessionalGormRepository(deps.DB)
	policyRepo := infraRepo.NewPolicyGormRepository(deps.DB)
	transactionRepo := infraRepo.NewTransactionGormRepository(deps.DB)

	dispatcher := events.NewDispatcher(events.NewAuditSink(deps.DB), deps.Logger)

	gateway, err := mercadopago.NewGateway(deps.Config.MercadoPagoToken)
	if err != nil {
		return err
	}

	uploader := storage.NewAvatarUploader(deps.Config)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		clientRepo,
		professionalRepo,
		dispatcher,
	)

	cancelUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		clientRepo,
		professionalRepo,
		policyRepo,
		transactionRepo,
		dispatcher,
	)

	confirmUC := ucAppointment.NewConfirmAppointment(appointmentRepo, dispatcher)
	startUC := ucAppointment.NewStartAppointment(appointmentRepo, clientRepo, professionalRepo)
	pauseUC := ucAppointment.NewPauseAppointment(appointmentRepo)
	completeUC := ucAppointment.NewCompleteAppointment(appointmentRepo)

	rescheduleUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		clientRepo,
		professionalRepo,
		policyRepo,
	)

	scheduleNextUC := ucAppointment.NewScheduleNextAppointment(
		appointmentRepo,
		clientRepo,
		professionalRepo,
		policyRepo,
		dispatcher,
	)

	listByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)

	// ======================================================
	// USE CASES — PAYMENTS
	// ======================================================
	createPaymentUC := ucPayment.NewCreatePayment(
		appointmentRepo,
		clientRepo,
		transactionRepo,
		gateway,
		deps.Expiries,
	)
	confirmPaymentUC := ucPayment.NewConfirmPayment(appointmentRepo, transactionRepo, deps.Expiries)
	failPaymentUC := ucPayment.NewFailPayment(transactionRepo, deps.Expiries)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(deps.DB, deps.Config)
	meHandler := handlers.NewMeHandler(deps.DB, uploader)
	clientHandler := handlers.NewClientHandler(deps.DB)
	policyHandler := handlers.NewPolicyHandler(deps.DB)
	auditHandler := handlers.NewAuditLogsHandler(deps.DB)

	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		cancelUC,
		confirmUC,
		startUC,
		pauseUC,
		completeUC,
		rescheduleUC,
		scheduleNextUC,
		listByDateUC,
	)

	paymentHandler := handlers.NewPaymentHandler(
		createPaymentUC,
		confirmPaymentUC,
		failPaymentUC,
	)

	// ======================================================
	// ROUTES
	// ======================================================
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	// Webhook do provedor não passa pelo auth.
	r.POST("/webhooks/mercadopago", paymentHandler.Webhook)

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(deps.Config))
	{
		api.GET("/me", meHandler.GetMe)
		api.POST("/me/avatar", meHandler.UploadAvatar)

		api.GET("/clients", clientHandler.List)
		api.POST("/clients", clientHandler.Create)

		api.GET("/policy", policyHandler.Get)
		api.PUT("/policy", policyHandler.Update)

		api.GET("/audit-logs", auditHandler.List)

		api.GET("/appointments", appointmentHandler.ListByDate)
		api.POST("/appointments", appointmentHandler.Create)
		api.POST("/appointments/next", appointmentHandler.ScheduleNext)
		api.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
		api.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
		api.PATCH("/appointments/:id/start", appointmentHandler.Start)
		api.PATCH("/appointments/:id/pause", appointmentHandler.Pause)
		api.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
		api.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)

		api.POST("/appointments/:id/payments", paymentHandler.Create)
	}

	return nil
}
