package router

import (
	"net/http"

	"paw-n-care/internal/domain/appointments"
	"paw-n-care/internal/domain/auth"
	"paw-n-care/internal/domain/billing"
	"paw-n-care/internal/domain/medrecords"
	"paw-n-care/internal/domain/owners"
	"paw-n-care/internal/domain/pets"
	"paw-n-care/internal/domain/vets"
	"paw-n-care/internal/middleware"
	"paw-n-care/internal/platform/logger"
	"paw-n-care/internal/search"
	"paw-n-care/internal/stats"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	portauth "paw-n-care/internal/ports/auth"
)

// Backend es lo que el router necesita de un store: los repos por entidad,
// las filas aplanadas para búsqueda y los listados para estadísticas.
// Lo implementan memory.Store y sqldb.Store.
type Backend interface {
	Owners() owners.Repository
	Pets() pets.Repository
	Vets() vets.Repository
	Appointments() appointments.Repository
	MedicalRecords() medrecords.Repository
	Bills() billing.Repository
	Users() auth.Repository

	search.RowSource
	stats.Source
}

type Options struct {
	Backend Backend
	Log     logger.Logger

	// DevAuth desactiva las sesiones: la identidad sale del header
	// X-Debug-User-ID. Solo para desarrollo local.
	DevAuth bool
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(opts.Log))
	r.Use(middleware.RequestLog(opts.Log))

	authSvc := auth.NewService(opts.Backend.Users())

	var verifier portauth.TokenVerifier
	if !opts.DevAuth {
		verifier = authSvc
	}
	r.Use(middleware.AuthContext(verifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Services por módulo
	ownersSvc := owners.NewService(opts.Backend.Owners())
	petsSvc := pets.NewService(opts.Backend.Pets(), ownersSvc)
	vetsSvc := vets.NewService(opts.Backend.Vets())
	apptsSvc := appointments.NewService(opts.Backend.Appointments(), petsSvc, ownersSvc, vetsSvc)
	recordsSvc := medrecords.NewService(opts.Backend.MedicalRecords(), petsSvc, vetsSvc, apptsSvc)
	billsSvc := billing.NewService(opts.Backend.Bills(), apptsSvc)

	reg := search.DefaultRegistry()

	// Rutas por módulo
	auth.RegisterRoutes(r, authSvc)
	owners.RegisterRoutes(r, ownersSvc, opts.Backend, reg.MustConfig(search.EntityOwner))
	pets.RegisterRoutes(r, petsSvc, opts.Backend, reg.MustConfig(search.EntityPet))
	vets.RegisterRoutes(r, vetsSvc)
	appointments.RegisterRoutes(r, apptsSvc, opts.Backend, reg.MustConfig(search.EntityAppointment))
	medrecords.RegisterRoutes(r, recordsSvc, opts.Backend, reg.MustConfig(search.EntityMedicalRecord))
	billing.RegisterRoutes(r, billsSvc, opts.Backend, reg.MustConfig(search.EntityBilling))
	stats.RegisterRoutes(r, stats.NewAggregator(opts.Backend))

	return r
}
