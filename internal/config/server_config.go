package config

import (
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/subosito/gotenv"
	"github/kontos/connect/internal/connect/endpoint"
	"github/kontos/connect/internal/util"
)

// EchoServer holds the echo listener settings.
type EchoServer struct {
	Debug                   bool
	ListenAddress           string
	HideInternalServerError bool
	EnableCORSMiddleware    bool
	EnableRecoverMiddleware bool
	EnableLoggerMiddleware  bool
}

// Logger holds the zerolog settings.
type Logger struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	LogRequestBody     bool
	LogResponseBody    bool
	PrettyPrintConsole bool
}

// Kontos holds the wallet endpoint and popup settings.
type Kontos struct {
	WalletBaseURL string
	PopupName     string
	PopupWidth    int
	PopupHeight   int
	RPCURLs       []string
}

// Management holds the settings of the /-/* endpoints.
type Management struct {
	Secret           string `json:"-"` // sensitive
	ReadinessTimeout time.Duration
	LivenessTimeout  time.Duration
}

// Server is the aggregated service configuration, resolved from ENV once at
// startup.
type Server struct {
	Database   Database
	Echo       EchoServer
	Logger     Logger
	Kontos     Kontos
	Management Management
}

// PopupSpec translates the Kontos config block into the endpoint package's
// popup spec.
func (k Kontos) PopupSpec() endpoint.PopupSpec {
	return endpoint.PopupSpec{
		Name:   k.PopupName,
		Width:  k.PopupWidth,
		Height: k.PopupHeight,
	}
}

// DefaultServiceConfigFromEnv returns the server config as resolved from the
// environment, applying an optional .env.local beforehand.
func DefaultServiceConfigFromEnv() Server {
	// optional local overrides, ignored when absent
	_ = gotenv.Load(filepath.Join(util.GetProjectRootDir(), ".env.local"))

	return Server{
		Database: Database{
			Host:     util.GetEnv("PGHOST", "postgres"),
			Port:     util.GetEnvAsInt("PGPORT", 5432),
			Database: util.GetEnv("PGDATABASE", "development"),
			Username: util.GetEnv("PGUSER", "dbuser"),
			Password: util.GetEnv("PGPASSWORD", ""),
			AdditionalParams: map[string]string{
				"sslmode": util.GetEnv("PGSSLMODE", "disable"),
			},
			MaxOpenConns:    util.GetEnvAsInt("DB_MAX_OPEN_CONNS", 30),
			MaxIdleConns:    util.GetEnvAsInt("DB_MAX_IDLE_CONNS", 15),
			ConnMaxLifetime: util.GetEnv("DB_CONN_MAX_LIFETIME", "1h"),
		},
		Echo: EchoServer{
			Debug:                   util.GetEnvAsBool("SERVER_ECHO_DEBUG", false),
			ListenAddress:           util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", ":8080"),
			HideInternalServerError: util.GetEnvAsBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR", true),
			EnableCORSMiddleware:    util.GetEnvAsBool("SERVER_ECHO_ENABLE_CORS_MIDDLEWARE", true),
			EnableRecoverMiddleware: util.GetEnvAsBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true),
			EnableLoggerMiddleware:  util.GetEnvAsBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true),
		},
		Logger: Logger{
			Level:              util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_LEVEL", zerolog.InfoLevel.String())),
			RequestLevel:       util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_REQUEST_LEVEL", zerolog.DebugLevel.String())),
			LogRequestBody:     util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_BODY", false),
			LogResponseBody:    util.GetEnvAsBool("SERVER_LOGGER_LOG_RESPONSE_BODY", false),
			PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
		Kontos: Kontos{
			WalletBaseURL: util.GetEnv("SERVER_KONTOS_WALLET_BASE_URL", endpoint.DefaultBaseURL),
			PopupName:     util.GetEnv("SERVER_KONTOS_POPUP_NAME", endpoint.DefaultPopupName),
			PopupWidth:    util.GetEnvAsInt("SERVER_KONTOS_POPUP_WIDTH", endpoint.DefaultPopupWidth),
			PopupHeight:   util.GetEnvAsInt("SERVER_KONTOS_POPUP_HEIGHT", endpoint.DefaultPopupHeight),
			RPCURLs:       util.GetEnvAsStringArr("SERVER_KONTOS_RPC_URLS", nil),
		},
		Management: Management{
			Secret:           util.GetEnv("SERVER_MANAGEMENT_SECRET", ""),
			ReadinessTimeout: time.Second * time.Duration(util.GetEnvAsInt("SERVER_MANAGEMENT_READINESS_TIMEOUT_SEC", 4)),
			LivenessTimeout:  time.Second * time.Duration(util.GetEnvAsInt("SERVER_MANAGEMENT_LIVENESS_TIMEOUT_SEC", 9)),
		},
	}
}
