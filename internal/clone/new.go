package clone

import (
	"github.com/Eric-Mao06/Mailfish/internal/extractor"
	"github.com/Eric-Mao06/Mailfish/internal/logger"
	"github.com/Eric-Mao06/Mailfish/internal/persona"
	"github.com/Eric-Mao06/Mailfish/internal/research"
	"github.com/Eric-Mao06/Mailfish/internal/store"
	"github.com/Eric-Mao06/Mailfish/internal/voice"
)

type implService struct {
	researcher  research.Researcher
	persona     persona.Persona
	voice       voice.Voice
	coordinator extractor.Coordinator
	store       store.Store
	logger      logger.Logger
}

// New wires the clone workflow from its collaborators.
func New(
	researcher research.Researcher,
	p persona.Persona,
	v voice.Voice,
	coordinator extractor.Coordinator,
	s store.Store,
	log logger.Logger,
) Service {
	return &implService{
		researcher:  researcher,
		persona:     p,
		voice:       v,
		coordinator: coordinator,
		store:       s,
		logger:      log,
	}
}
