// Package app builds the object graph from config.Cfg.
package app

import (
	"net/http"
	"teens-language/config"
	"teens-language/internal/core/comic"
	"teens-language/internal/core/genai"
	"teens-language/internal/core/interpret"
	"teens-language/internal/core/orchestrator"
	"teens-language/internal/core/suggest"
)

type Container struct {
	Generator    *genai.OpenAIGenerator
	Interpreter  *interpret.Service
	Suggester    *suggest.Service
	Illustrator  *comic.Illustrator
	Orchestrator *orchestrator.Service
}

func New() *Container {
	gen := genai.NewOpenAIGenerator(genai.OpenAIOptions{
		Key:         config.Cfg.OpenAI.Key,
		Model:       config.Cfg.OpenAI.Model,
		BaseURL:     config.Cfg.OpenAI.BaseURL,
		Temperature: config.Cfg.OpenAI.Temperature,
	})
	interpreter := interpret.NewService(gen)
	suggester := suggest.NewService(gen)
	illustrator := comic.NewIllustrator(&http.Client{}, comic.Options{
		BaseURL:        config.Cfg.Comic.BaseURL,
		Width:          config.Cfg.Comic.Width,
		Height:         config.Cfg.Comic.Height,
		Model:          config.Cfg.Comic.Model,
		NoLogo:         config.Cfg.Comic.NoLogo,
		UserAgent:      config.Cfg.Comic.UserAgent,
		DetectMimeType: config.Cfg.Comic.DetectMimeType,
	})

	return &Container{
		Generator:    gen,
		Interpreter:  interpreter,
		Suggester:    suggester,
		Illustrator:  illustrator,
		Orchestrator: orchestrator.NewService(interpreter, suggester, illustrator),
	}
}
