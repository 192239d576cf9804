package config

import (
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// Config file (global)
var Config JSONConfig

// DefaultPath of the config file, overridable with SOLAMATE_CONFIG
const DefaultPath = "./config.json"

// JSONConfig structure based on config.json
type JSONConfig struct {
	Origin     string           `json:"origin"`
	Port       string           `json:"port"`
	Version    string           `json:"version"`
	Mode       string           `json:"mode"`
	JWTSecret  string           `json:"jwtSecret"`
	Scylla     ScyllaConfig     `json:"scylla"`
	Redis      RedisConfig      `json:"redis"`
	MinIO      MinIOConfig      `json:"minIO"`
	Solana     SolanaConfig     `json:"solana"`
	DeepSeek   DeepSeekConfig   `json:"deepseek"`
	Gemini     GeminiConfig     `json:"gemini"`
	ElevenLabs ElevenLabsConfig `json:"elevenlabs"`
	Pinata     PinataConfig     `json:"pinata"`
	Cache      CacheConfig      `json:"cache"`
	Idle       IdleConfig       `json:"idle"`
}

// ScyllaConfig is the cql cluster
type ScyllaConfig struct {
	Hosts    []string `json:"hosts"`
	Keyspace string   `json:"keyspace"`
}

// RedisConfig is the redis connection
type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

// MinIOConfig structure is the config for MinIO connection
type MinIOConfig struct {
	Endpoint string `json:"endpoint"`
	User     string `json:"user"`
	Password string `json:"password"`
	Secure   bool   `json:"secure"`
	Region   string `json:"region"`
}

// SolanaConfig points at the cluster and the SolaMate program
type SolanaConfig struct {
	RPC       string `json:"rpc"`
	WS        string `json:"ws"`
	ProgramID string `json:"programId"`
}

type DeepSeekConfig struct {
	BaseURL string `json:"baseURL"`
	Model   string `json:"model"`
	APIKey  string `json:"apiKey"`
}

type GeminiConfig struct {
	BaseURL string `json:"baseURL"`
	Model   string `json:"model"`
	APIKey  string `json:"apiKey"`
}

type ElevenLabsConfig struct {
	BaseURL string `json:"baseURL"`
	VoiceID string `json:"voiceID"`
	ModelID string `json:"modelID"`
	APIKey  string `json:"apiKey"`
}

type PinataConfig struct {
	BaseURL    string `json:"baseURL"`
	GatewayURL string `json:"gatewayURL"`
	JWT        string `json:"jwt"`
}

// CacheConfig durations are in seconds
type CacheConfig struct {
	FriendsTTL int `json:"friendsTTL"`
	UsersTTL   int `json:"usersTTL"`
}

// IdleConfig durations are in milliseconds
type IdleConfig struct {
	Timeout  int `json:"timeout"`
	Throttle int `json:"throttle"`
	Check    int `json:"check"`
}

func (c CacheConfig) FriendsTTLDuration() time.Duration {
	return time.Duration(c.FriendsTTL) * time.Second
}

func (c CacheConfig) UsersTTLDuration() time.Duration {
	return time.Duration(c.UsersTTL) * time.Second
}

func (c IdleConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Millisecond
}

func (c IdleConfig) ThrottleDuration() time.Duration {
	return time.Duration(c.Throttle) * time.Millisecond
}

func (c IdleConfig) CheckDuration() time.Duration {
	return time.Duration(c.Check) * time.Millisecond
}

// Default returns a config usable against local services
func Default() JSONConfig {
	return JSONConfig{
		Origin:  "http://localhost:3000",
		Port:    ":8080",
		Version: "/api",
		Mode:    "dev",
		Scylla: ScyllaConfig{
			Hosts:    []string{"127.0.0.1:9042"},
			Keyspace: "solamatedb",
		},
		Redis: RedisConfig{Addr: "127.0.0.1:6379"},
		MinIO: MinIOConfig{
			Endpoint: "127.0.0.1:9000",
			Region:   "us-east-1",
		},
		Solana: SolanaConfig{
			RPC:       "https://api.devnet.solana.com",
			WS:        "wss://api.devnet.solana.com",
			ProgramID: "SoLMateXr5S2ZCdQmiTqHCNQr7PVVVJPLFqJszuXDKA",
		},
		DeepSeek: DeepSeekConfig{
			BaseURL: "https://api.deepseek.com",
			Model:   "deepseek-chat",
		},
		Gemini: GeminiConfig{
			BaseURL: "https://generativelanguage.googleapis.com/v1beta",
			Model:   "gemini-1.5-flash",
		},
		ElevenLabs: ElevenLabsConfig{
			BaseURL: "https://api.elevenlabs.io",
			VoiceID: "21m00Tcm4TlvDq8ikWAM",
			ModelID: "eleven_multilingual_v2",
		},
		Pinata: PinataConfig{
			BaseURL:    "https://api.pinata.cloud",
			GatewayURL: "https://gateway.pinata.cloud",
		},
		Cache: CacheConfig{FriendsTTL: 30, UsersTTL: 60},
		Idle:  IdleConfig{Timeout: 60000, Throttle: 1000, Check: 5000},
	}
}

// envOverrides maps environment variables onto secret fields
func envOverrides(c *JSONConfig) map[string]*string {
	return map[string]*string{
		"DEEPSEEK_API_KEY":   &c.DeepSeek.APIKey,
		"GEMINI_API_KEY":     &c.Gemini.APIKey,
		"ELEVENLABS_API_KEY": &c.ElevenLabs.APIKey,
		"PINATA_JWT":         &c.Pinata.JWT,
		"SOLANA_RPC_URL":     &c.Solana.RPC,
		"SOLANA_WS_URL":      &c.Solana.WS,
		"JWT_SECRET":         &c.JWTSecret,
	}
}

// Load reads path over Default and applies environment overrides. A missing
// file is not an error.
func Load(path string) (JSONConfig, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return c, err
	}
	if err == nil {
		if err := jsoniter.Unmarshal(data, &c); err != nil {
			return c, err
		}
	}

	for env, field := range envOverrides(&c) {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			*field = v
		}
	}
	return c, nil
}

// Path returns the config file location
func Path() string {
	if p, ok := os.LookupEnv("SOLAMATE_CONFIG"); ok && p != "" {
		return p
	}
	return DefaultPath
}
