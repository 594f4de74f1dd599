package httpserver

import (
	"database/sql"
	"errors"

	"usernotes-srv/config"
	jobRepository "usernotes-srv/internal/job/repository"
	"usernotes-srv/internal/user"
	"usernotes-srv/pkg/discord"
	"usernotes-srv/pkg/encrypter"
	"usernotes-srv/pkg/kafka"
	"usernotes-srv/pkg/librarysrv"
	"usernotes-srv/pkg/log"
	miniopkg "usernotes-srv/pkg/minio"
	pkgRedis "usernotes-srv/pkg/redis"
	"usernotes-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Backend Clients
	postgresDB    *sql.DB
	redisClient   pkgRedis.IRedis
	minioClient   miniopkg.MinIO
	kafkaProducer kafka.IProducer
	libraryClient librarysrv.ILibrary

	// Authentication & Security Configuration
	config       *config.Config
	jwtManager   scope.Manager
	cookieConfig config.CookieConfig
	encrypter    encrypter.Encrypter

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Shared domain dependencies (populated during mapHandlers)
	userUC  user.UseCase
	jobRepo jobRepository.PostgresRepository
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Backend Clients
	PostgresDB    *sql.DB
	RedisClient   pkgRedis.IRedis
	MinIOClient   miniopkg.MinIO
	KafkaProducer kafka.IProducer
	LibraryClient librarysrv.ILibrary

	// Authentication & Security Configuration
	Config       *config.Config
	JWTManager   scope.Manager
	CookieConfig config.CookieConfig
	Encrypter    encrypter.Encrypter

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:           gin.New(),
		l:             logger,
		host:          cfg.Host,
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		postgresDB:    cfg.PostgresDB,
		redisClient:   cfg.RedisClient,
		minioClient:   cfg.MinIOClient,
		kafkaProducer: cfg.KafkaProducer,
		libraryClient: cfg.LibraryClient,
		config:        cfg.Config,
		jwtManager:    cfg.JWTManager,
		cookieConfig:  cfg.CookieConfig,
		encrypter:     cfg.Encrypter,
		discord:       cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.redisClient == nil {
		return errors.New("redis client is required")
	}
	if srv.minioClient == nil {
		return errors.New("minio client is required")
	}
	if srv.kafkaProducer == nil {
		return errors.New("kafka producer is required")
	}
	if srv.libraryClient == nil {
		return errors.New("library platform client is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	return nil
}
