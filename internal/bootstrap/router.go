package bootstrap

import (
	"database/sql"

	"cloud.google.com/go/firestore"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/clubnatacion/swimclub-backend/config"
	httpapi "github.com/clubnatacion/swimclub-backend/internal/api/http"
	apimiddleware "github.com/clubnatacion/swimclub-backend/internal/api/http/middleware"
	athdomain "github.com/clubnatacion/swimclub-backend/internal/athletes/domain"
	athhttp "github.com/clubnatacion/swimclub-backend/internal/athletes/http"
	athrepo "github.com/clubnatacion/swimclub-backend/internal/athletes/repository"
	athservice "github.com/clubnatacion/swimclub-backend/internal/athletes/service"
	atthttp "github.com/clubnatacion/swimclub-backend/internal/attendance/http"
	attrepo "github.com/clubnatacion/swimclub-backend/internal/attendance/repository"
	attservice "github.com/clubnatacion/swimclub-backend/internal/attendance/service"
	"github.com/clubnatacion/swimclub-backend/internal/auth"
	authhttp "github.com/clubnatacion/swimclub-backend/internal/auth/http"
	"github.com/clubnatacion/swimclub-backend/internal/auth/middleware"
	authrepo "github.com/clubnatacion/swimclub-backend/internal/auth/repository"
	authservice "github.com/clubnatacion/swimclub-backend/internal/auth/service"
	"github.com/clubnatacion/swimclub-backend/internal/cache"
	evthttp "github.com/clubnatacion/swimclub-backend/internal/events/http"
	evtrepo "github.com/clubnatacion/swimclub-backend/internal/events/repository"
	evtservice "github.com/clubnatacion/swimclub-backend/internal/events/service"
	grphttp "github.com/clubnatacion/swimclub-backend/internal/groups/http"
	grprepo "github.com/clubnatacion/swimclub-backend/internal/groups/repository"
	grpservice "github.com/clubnatacion/swimclub-backend/internal/groups/service"
	"github.com/clubnatacion/swimclub-backend/internal/livequery"
	"github.com/clubnatacion/swimclub-backend/internal/meta"
	reshttp "github.com/clubnatacion/swimclub-backend/internal/results/http"
	resrepo "github.com/clubnatacion/swimclub-backend/internal/results/repository"
	resservice "github.com/clubnatacion/swimclub-backend/internal/results/service"
	stdhttp "github.com/clubnatacion/swimclub-backend/internal/standards/http"
	stdrepo "github.com/clubnatacion/swimclub-backend/internal/standards/repository"
	stdservice "github.com/clubnatacion/swimclub-backend/internal/standards/service"
)

// RouterDeps carries every external client the HTTP surface needs. DB may be
// nil when the reporting mirror is disabled.
type RouterDeps struct {
	Config    *config.Config
	Firestore *firestore.Client
	Redis     *redis.Client
	DB        *sql.DB
	Auth      *firebaseauth.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(apimiddleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler("swimclub-backend", dep.Config.App.Version, dep.Redis, dep.DB)
	healthHandler.RegisterRoutes(r)

	stamper := meta.NewStamper(dep.Firestore)
	snapshots := cache.NewSnapshotStore(dep.Redis, dep.Config.Redis.SnapshotTTL)
	seasonYear := dep.Config.App.SeasonYear

	userRepo := authrepo.NewUserRepository(dep.Firestore)
	authSvc := authservice.NewAuthService(userRepo)

	groupRepo := grprepo.NewGroupRepository(dep.Firestore)
	groupSvc := grpservice.NewGroupService(groupRepo, stamper)

	athleteRepo := athrepo.NewAthleteRepository(dep.Firestore)
	athleteSvc := athservice.NewAthleteService(athleteRepo, groupSvc, stamper, seasonYear)
	rosterStream := func() *livequery.Query {
		return &livequery.Query{
			Key:    athhttp.RosterCacheKey,
			Source: livequery.NewFirestoreSource(athleteRepo.Query(athdomain.StatusActive)),
			Store:  snapshots,
		}
	}

	eventRepo := evtrepo.NewEventRepository(dep.Firestore)
	eventSvc := evtservice.NewEventService(eventRepo, stamper)

	resultRepo := resrepo.NewResultRepository(dep.Firestore)
	resultSvc := resservice.NewResultService(resultRepo, stamper)
	streamFactory := func(athleteID string) *livequery.Query {
		return &livequery.Query{
			Key:    reshttp.ResultsCacheKey(athleteID),
			Source: livequery.NewFirestoreSource(resultRepo.AthleteQuery(athleteID)),
			Store:  snapshots,
		}
	}

	attendanceRepo := attrepo.NewAttendanceRepository(dep.Firestore)
	attendanceSvc := attservice.NewAttendanceService(attendanceRepo, stamper)

	standardRepo := stdrepo.NewStandardRepository(dep.Firestore)
	standardSvc := stdservice.NewStandardService(standardRepo, stamper)

	api := r.Group("/api/v1")
	api.Use(middleware.FirebaseAuth(
		middleware.NewTokenVerifier(dep.Auth),
		auth.NewUserLookup(authSvc),
	))

	authhttp.NewHandler(authSvc).Register(api)
	athhttp.NewHandler(athleteSvc, rosterStream).Register(api.Group("/athletes"))
	grphttp.NewHandler(groupSvc).Register(api.Group("/groups"))
	evthttp.NewHandler(eventSvc).Register(api.Group("/events"))
	reshttp.NewHandler(resultSvc, streamFactory).Register(api.Group("/results"))
	atthttp.NewHandler(attendanceSvc).Register(api.Group("/attendance"))
	stdhttp.NewHandler(standardSvc, seasonYear).Register(api.Group("/standards"))

	return r
}
