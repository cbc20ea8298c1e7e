package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-docgen/pkg/template"
)

var knownKinds = map[template.DocumentKind]struct{}{
	template.DocumentProtectionPlan:  {},
	template.DocumentConductCode:     {},
	template.DocumentActionProtocols: {},
	template.DocumentRiskAssessment:  {},
	template.DocumentTrainingManual:  {},
}

// LoadFS walks the provided filesystem and parses JSON/YAML template files.
// When fsys is nil or holds no template files, the returned slice is empty.
// Templates are returned in walk order, which is deterministic per fs.WalkDir.
func LoadFS(fsys fs.FS) ([]template.Template, error) {
	if fsys == nil {
		return nil, nil
	}

	var templates []template.Template
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isTemplateFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}

		tpl, err := parseTemplate(data, path)
		if err != nil {
			return err
		}
		if err := validate(tpl, path); err != nil {
			return err
		}
		if previous, exists := seen[tpl.ID]; exists {
			return fmt.Errorf("catalog: duplicate template %q (files %s and %s)", tpl.ID, previous, path)
		}
		seen[tpl.ID] = path

		templates = append(templates, tpl)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return templates, nil
}

func isTemplateFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func parseTemplate(data []byte, source string) (template.Template, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return template.Template{}, fmt.Errorf("catalog: file %s is empty", source)
	}

	var tpl template.Template
	if err := json.Unmarshal(data, &tpl); err == nil {
		return tpl, nil
	}

	tpl = template.Template{}
	if err := yaml.Unmarshal(data, &tpl); err == nil {
		return tpl, nil
	}

	return template.Template{}, fmt.Errorf("catalog: parse %s: invalid JSON or YAML", source)
}

func validate(tpl template.Template, source string) error {
	if strings.TrimSpace(tpl.ID) == "" {
		return fmt.Errorf("catalog: file %s defines a template without id", source)
	}
	if _, ok := knownKinds[tpl.TipoDocumento]; !ok {
		return fmt.Errorf("catalog: file %s: unknown document kind %q", source, tpl.TipoDocumento)
	}
	if len(tpl.Sections()) == 0 {
		return fmt.Errorf("catalog: file %s: template %q has no sections", source, tpl.ID)
	}
	return nil
}
