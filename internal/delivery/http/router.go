package http

import (
	"net/http"

	"go-healthcare-records/internal/delivery/http/handler"
	"go-healthcare-records/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	profileHandler      *handler.ProfileHandler
	patientHandler      *handler.PatientHandler
	doctorHandler       *handler.DoctorHandler
	emrHandler          *handler.EMRHandler
	prescriptionHandler *handler.PrescriptionHandler
	labResultHandler    *handler.LabResultHandler
	appointmentHandler  *handler.AppointmentHandler
	messageHandler      *handler.MessageHandler
	healthMetricHandler *handler.HealthMetricHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	emrHandler *handler.EMRHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	labResultHandler *handler.LabResultHandler,
	appointmentHandler *handler.AppointmentHandler,
	messageHandler *handler.MessageHandler,
	healthMetricHandler *handler.HealthMetricHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		profileHandler:      profileHandler,
		patientHandler:      patientHandler,
		doctorHandler:       doctorHandler,
		emrHandler:          emrHandler,
		prescriptionHandler: prescriptionHandler,
		labResultHandler:    labResultHandler,
		appointmentHandler:  appointmentHandler,
		messageHandler:      messageHandler,
		healthMetricHandler: healthMetricHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Everything below requires an authenticated user. Record-level
	// access control happens in the usecases, not here.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Role-defining profile creation
	protected.HandleFunc("/profiles/patient", r.profileHandler.CreatePatientProfile).Methods(http.MethodPost)
	protected.HandleFunc("/profiles/doctor", r.profileHandler.CreateDoctorProfile).Methods(http.MethodPost)

	// Patients
	protected.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	protected.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Doctors
	protected.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Medical records
	protected.HandleFunc("/emrs", r.emrHandler.ListEMRs).Methods(http.MethodGet)
	protected.HandleFunc("/emrs", r.emrHandler.CreateEMR).Methods(http.MethodPost)
	protected.HandleFunc("/emrs/{id}", r.emrHandler.GetEMR).Methods(http.MethodGet)
	protected.HandleFunc("/emrs/{id}", r.emrHandler.UpdateEMR).Methods(http.MethodPut)
	protected.HandleFunc("/emrs/{id}", r.emrHandler.DeleteEMR).Methods(http.MethodDelete)

	// Prescriptions
	protected.HandleFunc("/prescriptions", r.prescriptionHandler.ListPrescriptions).Methods(http.MethodGet)
	protected.HandleFunc("/prescriptions", r.prescriptionHandler.CreatePrescription).Methods(http.MethodPost)
	protected.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.GetPrescription).Methods(http.MethodGet)
	protected.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.UpdatePrescription).Methods(http.MethodPut)
	protected.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.DeletePrescription).Methods(http.MethodDelete)

	// Lab results
	protected.HandleFunc("/lab-results", r.labResultHandler.ListLabResults).Methods(http.MethodGet)
	protected.HandleFunc("/lab-results", r.labResultHandler.CreateLabResult).Methods(http.MethodPost)
	protected.HandleFunc("/lab-results/{id}", r.labResultHandler.GetLabResult).Methods(http.MethodGet)
	protected.HandleFunc("/lab-results/{id}", r.labResultHandler.UpdateLabResult).Methods(http.MethodPut)
	protected.HandleFunc("/lab-results/{id}", r.labResultHandler.DeleteLabResult).Methods(http.MethodDelete)

	// Appointments
	protected.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Messages (immutable, no update or delete)
	protected.HandleFunc("/messages", r.messageHandler.ListMessages).Methods(http.MethodGet)
	protected.HandleFunc("/messages", r.messageHandler.SendMessage).Methods(http.MethodPost)
	protected.HandleFunc("/messages/{id}", r.messageHandler.GetMessage).Methods(http.MethodGet)

	// Health metrics
	protected.HandleFunc("/health-metrics", r.healthMetricHandler.ListHealthMetrics).Methods(http.MethodGet)
	protected.HandleFunc("/health-metrics", r.healthMetricHandler.RecordHealthMetric).Methods(http.MethodPost)
	protected.HandleFunc("/health-metrics/{id}", r.healthMetricHandler.GetHealthMetric).Methods(http.MethodGet)

	// Audit trail
	protected.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
