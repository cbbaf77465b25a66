package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/covid-stats-api/crawler"
	"github.com/bitmark-inc/covid-stats-api/logmodule"
	"github.com/bitmark-inc/covid-stats-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.ReportStore

	// state of the daily report refresh
	status crawler.Status

	// province served by /get_ontario_cases
	region string
}

// NewServer new instance of server
func NewServer(reportStore store.ReportStore, status crawler.Status, region string) *Server {
	return &Server{
		store:  reportStore,
		status: status,
		region: region,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	dataRoute := r.Group("/")
	dataRoute.Use(logmodule.Ginrus("API"))
	dataRoute.Use(cors.New(cors.Config{
		AllowMethods:    []string{"GET"},
		AllowHeaders:    []string{"Origin"},
		ExposeHeaders:   []string{"Content-Length"},
		AllowAllOrigins: true,
		MaxAge:          12 * time.Hour,
	}))
	{
		dataRoute.GET("/log_json", s.logJSON)
		dataRoute.GET("/get_ontario_cases", s.regionCases)
		dataRoute.GET("/get_provincial_cases", s.provincialCases)
		dataRoute.GET("/get_national_cases", s.nationalCases)
		dataRoute.GET("/get_country_data", s.countryData)
		dataRoute.GET("/get_provincial_data", s.provincialData)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) healthz(c *gin.Context) {
	snapshot := s.store.Snapshot()
	var state crawler.State
	if s.status != nil {
		state = s.status.State()
	}

	code := http.StatusOK
	status := "OK"
	if err := s.store.Ping(); err != nil {
		code = http.StatusServiceUnavailable
		status = err.Error()
	}

	c.JSON(code, gin.H{
		"status":    status,
		"version":   viper.GetString("server.version"),
		"state":     state,
		"date":      snapshot.Date,
		"fallback":  snapshot.Fallback,
		"loaded_at": snapshot.LoadedAt,
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
