package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3/log"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type serverConfig struct {
	Port        int    `koanf:"port" validate:"required"`
	Mode        string `koanf:"mode" validate:"required"`
	Concurrency int    `koanf:"concurrency" validate:"required"`
	BodyLimit   int    `koanf:"body_limit" validate:"required"`
	AppName     string `koanf:"app_name" validate:"required"`
}

type logLevel string

const (
	Debug logLevel = "debug"
	Info  logLevel = "info"
	Warn  logLevel = "warn"
	Error logLevel = "error"
	Fatal logLevel = "fatal"
	Panic logLevel = "panic"
)

type Module string

const (
	ModuleOpenAI      Module = "openai"
	ModuleInterpreter Module = "interpreter"
	ModuleSuggester   Module = "suggester"
	ModuleIllustrator Module = "illustrator"
	ModuleSearch      Module = "search"
	ModuleComic       Module = "comic"
	ModuleCors        Module = "cors"
	ModuleServer      Module = "server"
	ModuleSetting     Module = "setting"
	ModuleHealth      Module = "health"
)

// openaiConfig configures the generative-language provider. Key may be left
// empty, in which case the SDK falls back to OPENAI_API_KEY.
type openaiConfig struct {
	Key         string  `koanf:"key"`
	Model       string  `koanf:"model" validate:"required"`
	BaseURL     string  `koanf:"base_url" validate:"omitempty,url"`
	Temperature float64 `koanf:"temperature" validate:"gte=0,lte=2"`
}

type comicConfig struct {
	BaseURL        string `koanf:"base_url" validate:"required,url"`
	Width          int    `koanf:"width" validate:"required,gt=0"`
	Height         int    `koanf:"height" validate:"required,gt=0"`
	Model          string `koanf:"model" validate:"required"`
	NoLogo         bool   `koanf:"nologo"`
	UserAgent      string `koanf:"user_agent" validate:"required"`
	DetectMimeType bool   `koanf:"detect_mime_type"`
}

type corsConfig struct {
	AllowOrigins []string `koanf:"allow_origins" validate:"required"`
	AllowMethods []string `koanf:"allow_methods" validate:"required"`
	AllowHeaders []string `koanf:"allow_headers" validate:"required"`
}

type config struct {
	Server   serverConfig `koanf:"server"`
	LogLevel logLevel     `koanf:"log_level"`
	OpenAI   openaiConfig `koanf:"openai"`
	Comic    comicConfig  `koanf:"comic"`
	Cors     corsConfig   `koanf:"cors"`
}

var defaultConfig = config{
	Server: serverConfig{
		Port:        8000,
		Mode:        "release",
		Concurrency: 256 * 1024,
		BodyLimit:   64 * 1024,
		AppName:     "teens-language",
	},
	LogLevel: Info,
	OpenAI: openaiConfig{
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
	},
	Comic: comicConfig{
		BaseURL:   "https://image.pollinations.ai",
		Width:     512,
		Height:    512,
		Model:     "flux",
		NoLogo:    true,
		UserAgent: "Mozilla/5.0",
	},
	Cors: corsConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
	},
}

var (
	Cfg  = defaultConfig
	once sync.Once
)

func init() {
	once.Do(func() {
		if err := Init("config.yaml"); err != nil {
			log.Errorf("%v: failed to load config: %v", ModuleSetting, err)
		}
	})
}

// Init rebuilds Cfg from defaults, the yaml file at path (optional) and APP_*
// environment variables, in that order of precedence.
func Init(path string) error {
	k := koanf.New(".")
	validate := validator.New()

	// defaults
	next := defaultConfig

	// file
	if e := k.Load(file.Provider(path), yaml.Parser()); e != nil && !errors.Is(e, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, e)
	}

	// env APP_SERVER__PORT -> server.port
	if e := k.Load(env.Provider("APP_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "APP_")), "__", ".")
	}), nil); e != nil {
		return fmt.Errorf("load env: %w", e)
	}

	// bind
	if e := k.Unmarshal("", &next); e != nil {
		return fmt.Errorf("unmarshal config: %w", e)
	}
	Cfg = next

	// validate config
	if err := validate.Struct(Cfg); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			var sb strings.Builder
			sb.WriteString(fmt.Sprintf("%v Config validation failed:\n", ModuleSetting))

			for _, e := range errs {
				sb.WriteString(
					fmt.Sprintf("  • %s: failed '%s' (value: %v)\n", e.Field(), e.Tag(), e.Value()),
				)
			}

			log.Error(sb.String())
		} else {
			log.Errorf("config validation failed: %v", err)
		}
	}
	return nil
}
