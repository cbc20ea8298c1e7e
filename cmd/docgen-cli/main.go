package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-docgen/pkg/adapter"
	"github.com/goliatone/go-docgen/pkg/catalog"
	"github.com/goliatone/go-docgen/pkg/generator"
	"github.com/goliatone/go-docgen/pkg/prompt"
	"github.com/goliatone/go-docgen/pkg/store"
	"github.com/goliatone/go-docgen/pkg/template"

	"gopkg.in/yaml.v3"
)

func main() {
	templateID := flag.String("template", "plan_proteccion_oficial", "template ID to generate")
	entity := flag.String("entity", "", "entity category (deportivo, educativo, social, religioso, otro)")
	renderer := flag.String("renderer", "html", "renderer to use")
	bindingsPath := flag.String("bindings", "", "YAML or JSON file with variable bindings")
	catalogDir := flag.String("catalog", "", "directory with additional template files")
	interactive := flag.Bool("interactive", false, "prompt for variable values on the terminal")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	memory := store.NewMemory()
	memory.Seed(catalog.Official()...)
	if *catalogDir != "" {
		extra, err := catalog.LoadFS(os.DirFS(*catalogDir))
		if err != nil {
			log.Fatalf("Failed to load catalog %s: %v", *catalogDir, err)
		}
		memory.Seed(extra...)
	}

	gen := generator.New(generator.WithStore(memory))

	tpl, err := memory.Get(ctx, *templateID)
	if err != nil {
		log.Fatalf("Unknown template %q: %v", *templateID, err)
	}
	kind := parseEntity(*entity)

	bindings, err := loadBindings(*bindingsPath)
	if err != nil {
		log.Fatalf("Failed to load bindings: %v", err)
	}
	if *interactive {
		// Prompt over the adapted template so profile variables are asked too.
		if kind != "" && kind != tpl.TipoEntidad {
			tpl = adapter.New().Adapt(tpl, kind)
		}
		collected, err := prompt.CollectBindings(ctx, prompt.NewSurveyDriver(), tpl.Variables)
		if err != nil {
			log.Fatalf("Failed to collect bindings: %v", err)
		}
		for id, value := range collected {
			bindings[id] = value
		}
	}

	document, err := gen.Generate(ctx, generator.Request{
		TemplateID: *templateID,
		Entity:     kind,
		Bindings:   bindings,
		Renderer:   *renderer,
	})
	if err != nil {
		log.Fatalf("Failed to generate document: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, document, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Document written to %s\n", *output)
	} else {
		fmt.Println(string(document))
	}
}

func loadBindings(path string) (template.Bindings, error) {
	bindings := make(template.Bindings)
	if strings.TrimSpace(path) == "" {
		return bindings, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// YAML is a superset of JSON, so one decoder covers both formats.
	if err := yaml.Unmarshal(data, &bindings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return bindings, nil
}

func parseEntity(raw string) template.EntityKind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "deportivo":
		return template.EntitySports
	case "educativo":
		return template.EntityEducation
	case "social":
		return template.EntitySocial
	case "religioso":
		return template.EntityReligious
	case "otro":
		return template.EntityOther
	default:
		return ""
	}
}
