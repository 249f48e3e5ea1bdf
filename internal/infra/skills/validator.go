// Package skills validates SKILL.md files against the skill conventions:
// YAML frontmatter with a name and description, a metadata block matching
// the embedded JSON schema, and a body of reasonable size.
package skills

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/crypto590/personal-ai-infrastructure/internal/domain"
)

//go:embed metadata_schema.json
var metadataSchemaJSON string

const (
	skillFileName      = "SKILL.md"
	maxDescriptionLen  = 1024
	minDescriptionLen  = 20
	maxBodyWords       = 5000
	minBodyWords       = 10
	referencesHintSize = 3000
)

var kebabCaseName = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// frontmatter is the parsed YAML header of a SKILL.md file.
type frontmatter struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Metadata    map[string]any `yaml:"metadata"`
}

// Result holds the findings for one SKILL.md file.
// Errors fail validation; warnings are advisory.
type Result struct {
	Path     string
	Errors   []string
	Warnings []string
	Words    int
	Lines    int
}

// Valid returns true when no errors were found.
func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

// Validator validates SKILL.md files.
type Validator struct {
	metadataSchema *jsonschema.Schema
}

// New creates a Validator with the embedded metadata schema compiled.
func New() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("metadata_schema.json", strings.NewReader(metadataSchemaJSON)); err != nil {
		return nil, fmt.Errorf("add metadata schema: %w", err)
	}
	schema, err := compiler.Compile("metadata_schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile metadata schema: %w", err)
	}
	return &Validator{metadataSchema: schema}, nil
}

// ValidateFile validates a single SKILL.md file.
func (v *Validator) ValidateFile(path string) (*Result, error) {
	result := &Result{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSkillNotFound, path)
		}
		return nil, fmt.Errorf("read skill file: %w", err)
	}

	if filepath.Base(path) != skillFileName {
		result.Errors = append(result.Errors,
			fmt.Sprintf("file must be named exactly %q, got %q", skillFileName, filepath.Base(path)))
	}

	text := string(content)
	result.Lines = strings.Count(text, "\n") + 1

	if !strings.HasPrefix(text, "---") {
		result.Errors = append(result.Errors, "missing YAML frontmatter (must start with ---)")
		return result, nil
	}

	fmEnd := strings.Index(text[3:], "---")
	if fmEnd < 0 {
		result.Errors = append(result.Errors, "unterminated YAML frontmatter")
		return result, nil
	}
	fmEnd += 3

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(text[3:fmEnd]), &fm); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("invalid YAML frontmatter: %v", err))
		return result, nil
	}

	v.checkName(fm, path, result)
	v.checkDescription(fm, result)
	v.checkMetadata(fm, result)
	v.checkBody(text[fmEnd+3:], result)

	return result, nil
}

// ValidateAll walks dir and validates every SKILL.md found, sorted by path.
func (v *Validator) ValidateAll(dir string) ([]*Result, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == skillFileName {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk skills directory: %w", err)
	}
	sort.Strings(paths)

	results := make([]*Result, 0, len(paths))
	for _, path := range paths {
		result, err := v.ValidateFile(path)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (v *Validator) checkName(fm frontmatter, path string, result *Result) {
	if fm.Name == "" {
		result.Errors = append(result.Errors, "missing required field: name")
		return
	}
	if !kebabCaseName.MatchString(fm.Name) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("name %q should be kebab-case (e.g. my-skill-name)", fm.Name))
	}
	folder := filepath.Base(filepath.Dir(path))
	if folder != fm.Name {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("folder name %q does not match skill name %q", folder, fm.Name))
	}
}

func (v *Validator) checkDescription(fm frontmatter, result *Result) {
	if fm.Description == "" {
		result.Errors = append(result.Errors, "missing required field: description")
		return
	}
	desc := strings.TrimSpace(fm.Description)
	if len(desc) > maxDescriptionLen {
		result.Errors = append(result.Errors,
			fmt.Sprintf("description too long (%d chars, max %d)", len(desc), maxDescriptionLen))
	}
	if len(desc) < minDescriptionLen {
		result.Warnings = append(result.Warnings,
			"description is very short - include trigger phrases for better discoverability")
	}
	if strings.ContainsAny(desc, "<>") {
		result.Errors = append(result.Errors, "description must not contain angle brackets")
	}
}

func (v *Validator) checkMetadata(fm frontmatter, result *Result) {
	if fm.Metadata == nil {
		result.Warnings = append(result.Warnings,
			"missing recommended field: metadata (author, version, category, tags)")
		return
	}
	// Round-trip through JSON so the schema sees JSON-typed values.
	data, err := json.Marshal(fm.Metadata)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("metadata not serializable: %v", err))
		return
	}
	var metadata any
	if err := json.Unmarshal(data, &metadata); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("metadata not serializable: %v", err))
		return
	}
	if err := v.metadataSchema.Validate(metadata); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("metadata: %s", schemaErrorSummary(err)))
	}
}

func (v *Validator) checkBody(body string, result *Result) {
	words := len(strings.Fields(body))
	result.Words = words

	if words > maxBodyWords {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("body is %d words (recommended: <%d); consider using references/", words, maxBodyWords))
	}
	if words < minBodyWords {
		result.Warnings = append(result.Warnings, "body has very little content")
	}
	if words > referencesHintSize && !strings.Contains(body, "references/") {
		result.Warnings = append(result.Warnings,
			"large skill file - consider extracting detailed docs to a references/ directory")
	}
}

// schemaErrorSummary flattens a jsonschema validation error into one line.
func schemaErrorSummary(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	if leaf.InstanceLocation != "" {
		return fmt.Sprintf("%s: %s", leaf.InstanceLocation, leaf.Message)
	}
	return leaf.Message
}
