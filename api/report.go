package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/covid-stats-api/report"
	"github.com/bitmark-inc/covid-stats-api/schema"
)

// logJSON returns every row of the current daily report
func (s *Server) logJSON(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Snapshot().Rows)
}

// regionCases returns the counts of the official region as plain text
func (s *Server) regionCases(c *gin.Context) {
	count, err := s.store.ProvincialCases(s.region)
	if err == report.ErrRegionNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorRegionNotFound)
		return
	}
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.String(http.StatusOK, "%s %s %s", count.ConfirmedCases, count.Deaths, count.Recoveries)
}

func (s *Server) provincialCases(c *gin.Context) {
	s.cases(c, "province", s.store.ProvincialCases)
}

func (s *Server) nationalCases(c *gin.Context) {
	s.cases(c, "country", s.store.NationalCases)
}

// cases looks up a single region named by the query parameter. An unknown
// region gives an empty object.
func (s *Server) cases(c *gin.Context, param string, lookup func(string) (schema.CaseCount, error)) {
	name, ok := c.GetQuery(param)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	log.WithField(param, strings.ToUpper(name)).Info("user requested cases")

	count, err := lookup(name)
	if err == report.ErrRegionNotFound {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, count)
}

func (s *Server) countryData(c *gin.Context) {
	log.Info("user requested country data")
	c.JSON(http.StatusOK, s.store.Snapshot().National)
}

func (s *Server) provincialData(c *gin.Context) {
	log.Info("user requested provincial data")
	c.JSON(http.StatusOK, s.store.Snapshot().Provincial)
}
