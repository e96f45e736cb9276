// Package gen drives one end-to-end run: resolve a service's type graph,
// report classification diagnostics, and write the emitted document in the
// requested output formats.
package gen

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path"
	"strings"

	"github.com/go-openapi/spec"
	"github.com/griffnb/core-resolve/internal/console"
	"github.com/griffnb/core-resolve/internal/domain"
	"github.com/griffnb/core-resolve/internal/orchestrator"
	"github.com/griffnb/core-resolve/internal/templates"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"sigs.k8s.io/yaml"
)

type genTypeWriter func(*Config, *spec.Swagger) error

// Gen presents the generate tool.
type Gen struct {
	json          func(data interface{}) ([]byte, error)
	jsonIndent    func(data interface{}) ([]byte, error)
	jsonToYAML    func(data []byte) ([]byte, error)
	outputTypeMap map[string]genTypeWriter
	debug         Debugger
}

// Debugger is the interface that wraps the basic Printf method.
type Debugger interface {
	Printf(format string, v ...interface{})
}

// New creates a new Gen.
func New() *Gen {
	gen := Gen{
		json: json.Marshal,
		jsonIndent: func(data interface{}) ([]byte, error) {
			return json.MarshalIndent(data, "", "    ")
		},
		jsonToYAML: yaml.JSONToYAML,
		debug:      log.New(os.Stdout, "", log.LstdFlags),
	}

	gen.outputTypeMap = map[string]genTypeWriter{
		"json": gen.writeJSONSwagger,
		"yaml": gen.writeYAMLSwagger,
		"yml":  gen.writeYAMLSwagger,
	}

	return &gen
}

// Config presents Gen configurations.
type Config struct {
	Debugger Debugger

	// Source is the service to resolve. Nil selects the built-in template
	// catalog.
	Source *domain.Service

	// OutputDir represents the output directory for all the generated files
	OutputDir string

	// OutputTypes define types of files which should be generated
	OutputTypes []string

	// InstanceName is used to get distinct names for different documents in
	// the same project. The default value is "swagger".
	InstanceName string

	// State prefixes output filenames and suffixes the document title.
	State string

	// CacheSize bounds the orchestrator's flatten memo.
	CacheSize int

	// DumpModel dumps the resolved document through the debugger.
	DumpModel bool

	// FailOnDiagnostics makes accumulated classification diagnostics fatal
	// after the whole batch has been resolved.
	FailOnDiagnostics bool
}

// Build resolves the configured source and writes the document files.
func (g *Gen) Build(config *Config) error {
	if config.Debugger != nil {
		g.debug = config.Debugger
	}
	if config.InstanceName == "" {
		config.InstanceName = "swagger"
	}

	source := config.Source
	if source == nil {
		source = templates.Catalog()
	}

	console.Logger.Debug("Resolving service %s....", source.Name)

	orc, err := orchestrator.New(&orchestrator.Config{
		CacheSize: config.CacheSize,
		DumpModel: config.DumpModel,
		Debug:     g.debug,
	})
	if err != nil {
		return err
	}

	swagger, err := orc.Resolve(source)
	if err != nil {
		return err
	}

	for _, d := range orc.Diagnostics() {
		console.Logger.Warn("%s", d.Error())
	}

	if config.State != "" && swagger.Info != nil {
		swagger.Info.Title = swagger.Info.Title + " " +
			cases.Title(language.English).String(strings.ToLower(config.State))
	}

	if err := os.MkdirAll(config.OutputDir, os.ModePerm); err != nil {
		return err
	}

	for _, outputType := range config.OutputTypes {
		outputType = strings.ToLower(strings.TrimSpace(outputType))
		if typeWriter, ok := g.outputTypeMap[outputType]; ok {
			if err := typeWriter(config, swagger); err != nil {
				return err
			}
		} else {
			log.Printf("output type '%s' not supported", outputType)
		}
	}

	if config.FailOnDiagnostics {
		if diags := orc.Diagnostics(); len(diags) > 0 {
			return fmt.Errorf("resolution finished with %d diagnostic(s): %s",
				len(diags), diags[0].Error())
		}
	}

	return nil
}

func (g *Gen) outputFileName(config *Config, base string) string {
	filename := base

	if config.State != "" {
		filename = config.State + "_" + filename
	}

	if config.InstanceName != "swagger" {
		filename = config.InstanceName + "_" + filename
	}

	return path.Join(config.OutputDir, filename)
}

func (g *Gen) writeJSONSwagger(config *Config, swagger *spec.Swagger) error {
	jsonFileName := g.outputFileName(config, "swagger.json")

	b, err := g.jsonIndent(swagger)
	if err != nil {
		return err
	}

	err = g.writeFile(b, jsonFileName)
	if err != nil {
		return err
	}

	console.Logger.Debug("create swagger.json at %+v", jsonFileName)

	return nil
}

func (g *Gen) writeYAMLSwagger(config *Config, swagger *spec.Swagger) error {
	yamlFileName := g.outputFileName(config, "swagger.yaml")

	b, err := g.json(swagger)
	if err != nil {
		return err
	}

	y, err := g.jsonToYAML(b)
	if err != nil {
		return fmt.Errorf("cannot covert json to yaml error: %s", err)
	}

	err = g.writeFile(y, yamlFileName)
	if err != nil {
		return err
	}

	console.Logger.Debug("create swagger.yaml at %+v", yamlFileName)

	return nil
}

func (g *Gen) writeFile(b []byte, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}

	defer f.Close()

	_, err = f.Write(b)

	return err
}
