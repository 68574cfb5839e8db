package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging         LoggingConfig     `yaml:"logging"`
	Server          ServerConfig      `yaml:"server"`
	MongoURI        string            `yaml:"mongo_uri"`
	MongoDBName     string            `yaml:"mongo_db_name"`
	GeminiModel     string            `yaml:"gemini_model"`
	Sela            SelaConfig        `yaml:"sela"`
	Feeder          FeederConfig      `yaml:"feeder"`
	Cache           CacheConfig       `yaml:"cache"`
	AdviceQuota     AdviceQuotaConfig `yaml:"advice_quota"`
	WatchedProfiles []string          `yaml:"watched_profiles"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	// Port 는 ":8080" 형태의 리슨 주소다.
	Port string `yaml:"port"`

	// CORSAllowOrigins 가 비어 있으면 모든 오리진을 허용한다.
	CORSAllowOrigins []string `yaml:"cors_allow_origins"`
}

// SelaConfig 는 스크레이프 API 클라이언트 설정이다. API 키는 환경변수
// SELA_API_KEY 에서 읽는다.
type SelaConfig struct {
	BaseURL string `yaml:"base_url"`

	// RequestsPerSecond 는 스크레이프 API 호출 속도 제한이다. 0 이하면 제한 없음.
	RequestsPerSecond float64 `yaml:"requests_per_second"`

	// MaxRetries 는 일시 오류에 대한 재시도 횟수다.
	MaxRetries int `yaml:"max_retries"`

	// PostWindow 는 게시물 분석 시 프로필 특징 추출에 쓰는 최근 게시물 수다.
	PostWindow int `yaml:"post_window"`

	// ProfileWindow 는 프로필 분석 시 가져오는 최근 게시물 수다.
	ProfileWindow int `yaml:"profile_window"`
}

type FeederConfig struct {
	// BaseURL 은 nitter 호환 인스턴스 주소다. 비어 있으면 피더를 사용하지 않는다.
	BaseURL string `yaml:"base_url"`
}

type CacheConfig struct {
	ProfileSize       int `yaml:"profile_size"`
	ProfileTTLMinutes int `yaml:"profile_ttl_minutes"`
	AdviceSize        int `yaml:"advice_size"`
	AdviceTTLMinutes  int `yaml:"advice_ttl_minutes"`
}

// AdviceQuotaConfig 는 조언용 LLM 호출에 대한 속도/일일 한도를 정의한다.
type AdviceQuotaConfig struct {
	// RequestsPerMinute 는 LLM 호출에 대한 분당 최대 요청 수다.
	// 0 이하면 제한 없음으로 간주한다.
	RequestsPerMinute int `yaml:"requests_per_minute"`

	// RequestsPerDay 는 LLM 호출에 대한 일일 최대 요청 수다.
	// 0 이하면 제한 없음으로 간주한다.
	RequestsPerDay int `yaml:"requests_per_day"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
