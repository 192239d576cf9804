package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"solamate_server/chain"
	"solamate_server/clients"
	"solamate_server/config"
	"solamate_server/errors"
	"solamate_server/friends"
	"solamate_server/global"
	"solamate_server/helpers"
	"solamate_server/idle"
	"solamate_server/messages"
	"solamate_server/middlewares"
	"solamate_server/pet"
	"solamate_server/routes"
	"solamate_server/services"
	"solamate_server/socket"
	"solamate_server/storage"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	redis "github.com/go-redis/redis/v8"
	"github.com/gocql/gocql"
	fiber "github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

const (
	avatarBucket = "avatars"
	audioBucket  = "tts-expire"
)

func init() {
	var err error
	config.Config, err = config.Load(config.Path())
	errors.HandleFatalError(err)

	errors.HandleFatalError(global.InitLoggers(config.Config.Mode))

	if config.Config.JWTSecret != "" {
		global.JwtKey = []byte(config.Config.JWTSecret)
	} else if config.Config.Mode == "prod" {
		global.InternalLogger.Fatal("JWT_SECRET is required in prod mode")
	} else {
		secret, err := helpers.RandomTokenString(32)
		errors.HandleFatalError(err)
		global.JwtKey = []byte(secret)
		global.InternalLogger.Warn("JWT_SECRET not set, stream tokens will not survive a restart")
	}

	global.MinIOClient, err = minio.New(config.Config.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Config.MinIO.User, config.Config.MinIO.Password, ""),
		Secure: config.Config.MinIO.Secure,
	})
	errors.HandleFatalError(err)

	errors.HandleFatalError(storage.EnsureBucket(global.Context, global.MinIOClient, avatarBucket, config.Config.MinIO.Region, 0))
	errors.HandleFatalError(storage.EnsureBucket(global.Context, global.MinIOClient, audioBucket, config.Config.MinIO.Region, 1))

	global.RedisClient = redis.NewClient(&redis.Options{
		Addr:     config.Config.Redis.Addr,
		Password: config.Config.Redis.Password,
		DB:       config.Config.Redis.DB,
	})

	cluster := gocql.NewCluster(config.Config.Scylla.Hosts...)
	cluster.Keyspace = config.Config.Scylla.Keyspace
	global.Session, err = cluster.CreateSession()
	errors.HandleFatalError(err)
	global.InternalLogger.Info("ScyllaDB initialized", zap.String("keyspace", cluster.Keyspace))

	errors.HandleFatalError(storage.CreateSchema(global.Context, global.Session, cluster.Keyspace))
}

func idleConfig(c config.IdleConfig) idle.Config {
	return idle.Config{
		Timeout:  c.TimeoutDuration(),
		Throttle: c.ThrottleDuration(),
		Check:    c.CheckDuration(),
	}
}

func main() {
	defer global.Session.Close()
	defer global.RedisClient.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	programID, err := solana.PublicKeyFromBase58(config.Config.Solana.ProgramID)
	errors.HandleFatalError(err)

	chainClient := chain.NewClient(rpc.New(config.Config.Solana.RPC), programID)

	streamer := chain.NewStreamer(config.Config.Solana.WS)
	if err := streamer.Connect(ctx); err != nil {
		global.InternalLogger.Warn("solana websocket unavailable, redialing on first subscription", zap.Error(err))
	}
	defer streamer.Close()

	profiles := storage.NewProfileRepo(global.Session)
	friendsCache := friends.NewCache(chainClient, profiles, friends.WithTTL(config.Config.Cache.FriendsTTLDuration()))
	bus := messages.NewBus(global.RedisClient)

	hub := socket.NewHub(ctx, socket.Config{
		ProgramID: programID,
		Streamer:  streamer,
		Friends:   friendsCache,
		Messages:  chainClient,
		Publisher: bus,
		Idle:      idleConfig(config.Config.Idle),
	})
	errors.HandleFatalError(bus.Subscribe(ctx, hub.Deliver))

	h := services.New(services.Handler{
		Profiles:      profiles,
		Avatars:       storage.NewObjectStore(global.MinIOClient, avatarBucket),
		Audio:         storage.NewObjectStore(global.MinIOClient, audioBucket),
		Notifications: storage.NewNotificationRepo(global.Session),
		Nonces:        storage.NewNonceRepo(global.RedisClient),
		Events:        bus,
		AI: &clients.DeepSeek{
			BaseURL: config.Config.DeepSeek.BaseURL,
			APIKey:  config.Config.DeepSeek.APIKey,
			Model:   config.Config.DeepSeek.Model,
		},
		Receipts: &clients.Gemini{
			BaseURL: config.Config.Gemini.BaseURL,
			APIKey:  config.Config.Gemini.APIKey,
			Model:   config.Config.Gemini.Model,
		},
		Speech: &clients.ElevenLabs{
			BaseURL: config.Config.ElevenLabs.BaseURL,
			APIKey:  config.Config.ElevenLabs.APIKey,
			VoiceID: config.Config.ElevenLabs.VoiceID,
			ModelID: config.Config.ElevenLabs.ModelID,
		},
		IPFS: &clients.Pinata{
			BaseURL:    config.Config.Pinata.BaseURL,
			JWT:        config.Config.Pinata.JWT,
			GatewayURL: config.Config.Pinata.GatewayURL,
		},
		Friends: friendsCache,
		Chain:   chainClient,
		Deriver: chainClient.Deriver,
		Pets:    pet.NewEngine(pet.NewRedisStore(global.RedisClient, "solamate:"), nil),
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app := fiber.New(fiber.Config{
		ErrorHandler: errors.ErrorHandler,
		JSONEncoder:  jsoniter.Marshal,
		JSONDecoder:  jsoniter.Unmarshal,
		BodyLimit:    16 << 20,
	})

	routes.SetRoutes(app, h, hub, middlewares.NewMetrics(reg), reg)

	go func() {
		<-ctx.Done()
		errors.HandleBasicError(app.Shutdown())
	}()

	global.InternalLogger.Info("Starting server", zap.String("port", config.Config.Port))
	if err := app.Listen(config.Config.Port); err != nil {
		global.InternalLogger.Fatal("listen", zap.Error(err))
	}
}
