package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/covid-stats-api/api"
	"github.com/bitmark-inc/covid-stats-api/consts"
	"github.com/bitmark-inc/covid-stats-api/crawler"
	"github.com/bitmark-inc/covid-stats-api/external/csse"
	"github.com/bitmark-inc/covid-stats-api/external/ontario"
	"github.com/bitmark-inc/covid-stats-api/store"
	"github.com/bitmark-inc/covid-stats-api/utils"
)

var server *api.Server

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// .env is only for local development
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded environment from .env")
	}

	viper.SetDefault("server.port", 3000)
	viper.SetDefault("http.timeout", 30*time.Second)
	viper.SetDefault("dataset.url", consts.CSSEDailyReportURL)
	viper.SetDefault("dataset.min_length", 50)
	viper.SetDefault("dataset.interval", 3*time.Hour)
	viper.SetDefault("override.enabled", true)
	viper.SetDefault("override.url", consts.OntarioOfficialURL)
	viper.SetDefault("override.region", consts.OntarioRegion)
	viper.SetDefault("aggregate.rollup_countries", consts.RollupCountries)

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("covid")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	_ = viper.BindEnv("server.port", "PORT")
}

// rollupCountries reads the rollup set either as a yaml list or as a comma
// separated env value
func rollupCountries() []string {
	if s, ok := viper.Get("aggregate.rollup_countries").(string); ok {
		return consts.CleanCountryNames(strings.Split(s, ","))
	}
	return consts.CleanCountryNames(viper.GetStringSlice("aggregate.rollup_countries"))
}

func main() {
	var configFile string

	ctx, cancel := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		log.Info("Stopping daily report refresh")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		sentry.Flush(5 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	httpClient := &http.Client{
		Timeout: viper.GetDuration("http.timeout"),
	}

	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Prefix:   "covid_stats",
		Reporter: tally.NullStatsReporter,
	}, time.Second)
	defer closer.Close()

	reportStore := store.NewMemoryStore()

	var official ontario.Official
	if viper.GetBool("override.enabled") {
		official = ontario.New(httpClient, viper.GetString("override.url"))
	}

	reportCrawler := crawler.New(crawler.Config{
		MinLength:       viper.GetInt("dataset.min_length"),
		Region:          viper.GetString("override.region"),
		RollupCountries: rollupCountries(),
		Location:        utils.LocationOrLocal(viper.GetString("dataset.timezone")),
	}, csse.New(httpClient, viper.GetString("dataset.url")), official, reportStore, scope)
	log.WithField("prefix", "init").Info("Initialized crawler")

	go crawler.NewScheduler(reportCrawler, viper.GetDuration("dataset.interval")).Start(ctx)

	// Init http server
	server = api.NewServer(reportStore, reportCrawler, viper.GetString("override.region"))
	log.WithField("prefix", "init").Info("Initialized http server")

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
