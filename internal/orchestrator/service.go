// Package orchestrator coordinates resolution and emission for a whole
// service: every operation is classified through the resolver, misses are
// funneled into one diagnostic collector, and the surviving model is handed
// to the emitter as a Swagger document.
package orchestrator

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-openapi/spec"
	"github.com/griffnb/core-resolve/internal/diagnostic"
	"github.com/griffnb/core-resolve/internal/domain"
	"github.com/griffnb/core-resolve/internal/emitter"
)

// defaultCacheSize bounds the flattened-field memo used while emitting.
const defaultCacheSize = 512

// Debugger is the interface for debug logging.
type Debugger interface {
	Printf(format string, v ...interface{})
}

// Config holds orchestrator configuration options.
type Config struct {
	// CacheSize bounds the flatten memo; zero selects the default.
	CacheSize int

	// DumpModel writes a full dump of the emitted document through Debug.
	DumpModel bool

	Debug Debugger
}

// Service resolves one service at a time. Each call to Resolve uses a fresh
// collector, so diagnostics never leak across batches.
type Service struct {
	emitter *emitter.Service
	config  *Config

	collector *diagnostic.Collector
}

// New creates an orchestrator service with the given configuration.
func New(config *Config) (*Service, error) {
	if config == nil {
		config = &Config{}
	}
	if config.CacheSize <= 0 {
		config.CacheSize = defaultCacheSize
	}

	cache, err := newFlattenCache(config.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("create flatten cache: %w", err)
	}

	return &Service{
		emitter: emitter.NewService(cache.Flatten),
		config:  config,
	}, nil
}

// Resolve classifies every operation of svc and builds the Swagger document.
// Operations lacking a success response do not fail the batch; they are
// recorded as diagnostics retrievable through Diagnostics afterwards. Only a
// malformed type graph aborts.
func (s *Service) Resolve(svc *domain.Service) (*spec.Swagger, error) {
	s.collector = diagnostic.NewCollector()

	if s.config.Debug != nil {
		s.config.Debug.Printf("Orchestrator: resolving %d operations of %s", len(svc.Operations), svc.Name)
	}

	results, err := s.resolveOperationsParallel(svc.Operations, s.collector)
	if err != nil {
		return nil, err
	}

	swagger := &spec.Swagger{
		SwaggerProps: spec.SwaggerProps{
			Swagger: "2.0",
			Info: &spec.Info{
				InfoProps: spec.InfoProps{
					Title:   svc.Name,
					Version: svc.Version,
				},
			},
			Paths:       &spec.Paths{Paths: make(map[string]spec.PathItem)},
			Definitions: s.emitter.Definitions(svc),
		},
	}

	for _, result := range results {
		pathItem := swagger.Paths.Paths[result.path]

		switch result.method {
		case "GET":
			pathItem.Get = result.operation
		case "POST":
			pathItem.Post = result.operation
		case "PUT":
			pathItem.Put = result.operation
		case "DELETE":
			pathItem.Delete = result.operation
		case "PATCH":
			pathItem.Patch = result.operation
		}

		swagger.Paths.Paths[result.path] = pathItem
	}

	if s.config.Debug != nil {
		s.config.Debug.Printf("Orchestrator: %d paths, %d definitions, %d diagnostics",
			len(swagger.Paths.Paths), len(swagger.Definitions), s.collector.Len())
		if s.config.DumpModel {
			s.config.Debug.Printf("Orchestrator: resolved document\n%s", spew.Sdump(swagger.Paths.Paths))
		}
	}

	return swagger, nil
}

// Diagnostics returns the diagnostics collected by the last Resolve call.
func (s *Service) Diagnostics() []diagnostic.Diagnostic {
	if s.collector == nil {
		return nil
	}
	return s.collector.All()
}
