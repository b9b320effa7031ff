package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// serving sessions, spreadsheet synchronization, exports and graceful shutdown
// behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"registro" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Registry contains serving session related configurations
	Registry struct {
		// StateFile is the path of the JSON file recording the active session
		StateFile string `env:"REGISTRY_STATE_FILE" env-default:"session.json" yaml:"stateFile"`
		// DefaultSnackDish is the dish recorded for auto-provisioned snack reservations
		DefaultSnackDish string `env:"REGISTRY_DEFAULT_SNACK_DISH" env-default:"Lanche" yaml:"defaultSnackDish"`
	} `yaml:"registry"`

	// Sheets contains Google Sheets synchronization configurations
	Sheets struct {
		// CredentialsFile is the path of the service account credentials JSON file
		CredentialsFile string `env:"SHEETS_CREDENTIALS_FILE" env-default:"" yaml:"credentialsFile"`
		// SpreadsheetID identifies the master spreadsheet to synchronize with
		SpreadsheetID string `env:"SHEETS_SPREADSHEET_ID" env-default:"" yaml:"spreadsheetId"`
		// StudentsWorksheet is the worksheet holding the student roster
		StudentsWorksheet string `env:"SHEETS_STUDENTS_WORKSHEET" env-default:"Discentes" yaml:"studentsWorksheet"`
		// ReservesWorksheet is the worksheet holding the reservation list
		ReservesWorksheet string `env:"SHEETS_RESERVES_WORKSHEET" env-default:"DB" yaml:"reservesWorksheet"`
		// SnapshotDir is the directory where fetched worksheets are snapshotted as CSV
		SnapshotDir string `env:"SHEETS_SNAPSHOT_DIR" env-default:"snapshots" yaml:"snapshotDir"`
	} `yaml:"sheets"`

	// Sync contains background synchronization job configurations
	Sync struct {
		// MaxAttempts is the maximum number of attempts per synchronization job
		MaxAttempts int `env:"SYNC_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// UniquePeriod is the window during which duplicate sync jobs are collapsed
		UniquePeriod time.Duration `env:"SYNC_UNIQUE_PERIOD" env-default:"1m" yaml:"uniquePeriod"`
		// MaxWorkers limits the number of concurrently running jobs
		MaxWorkers int `env:"SYNC_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
	} `yaml:"sync"`

	// Export contains workbook export configurations
	Export struct {
		// OutputDir is the directory exported workbooks are written to
		OutputDir string `env:"EXPORT_OUTPUT_DIR" env-default:"exports" yaml:"outputDir"`
	} `yaml:"export"`

	// JWT contains API token signing and verification configurations
	JWT struct {
		// PrivateKey is the PEM-encoded RSA private key used to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" env-default:"" yaml:"privateKey"`
		// PublicKey is the PEM-encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" env-default:"" yaml:"publicKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
