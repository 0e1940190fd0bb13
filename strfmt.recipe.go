package strfmt

import (
	"fmt"

	"github.com/itsatony/go-strfmt/internal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Recipe is a declarative format plus pipeline, usually read from YAML:
//
//	format: "{greeting}, {name}!"
//	mode: named
//	params:
//	  greeting: hello
//	  name: world
//	steps:
//	  - upperFirst
//	  - name: wordWrap
//	    args: [20, "\n", true]
type Recipe struct {
	Format string       `yaml:"format"`
	Mode   Mode         `yaml:"mode,omitempty"`
	Params any          `yaml:"params,omitempty"`
	Steps  []RecipeStep `yaml:"steps,omitempty"`
}

// RecipeStep is one named step with its arguments
type RecipeStep struct {
	Name string `yaml:"name"`
	Args []any  `yaml:"args,omitempty"`
}

// UnmarshalYAML accepts a bare step name as shorthand for a step without arguments
func (s *RecipeStep) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		s.Name = node.Value
		s.Args = nil
		return nil
	}
	type plain RecipeStep
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*s = RecipeStep(p)
	return nil
}

// ParseRecipe decodes and validates a YAML (or JSON) recipe
func ParseRecipe(data []byte) (*Recipe, error) {
	var r Recipe
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, NewRecipeParseError(err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate checks the mode, the parameter shape and every step
func (r *Recipe) Validate() error {
	switch r.mode() {
	case ModeIndexed:
		if _, ok := indexedParams(r.Params); !ok {
			return NewRecipeInvalidError(ErrMsgRecipeParams)
		}
	case ModeNamed:
		if _, err := namedParams(r.Params); err != nil {
			return NewRecipeInvalidError(ErrMsgRecipeParams)
		}
	default:
		return NewInvalidModeError(string(r.Mode))
	}

	steps := internal.DefaultSteps()
	for i, s := range r.Steps {
		if s.Name == "" {
			return NewRecipeInvalidError(fmt.Sprintf("%s (step %d)", ErrMsgRecipeEmptyStep, i))
		}
		if err := steps.Validate(s.Name, len(s.Args)); err != nil {
			if !steps.Has(s.Name) {
				return NewUnknownStepError(s.Name, internal.FindSimilarStrings(s.Name, steps.List(), internal.MaxSuggestions))
			}
			return NewInvalidStepError(s.Name, err)
		}
	}
	return nil
}

// Builder creates the builder the recipe describes
func (r *Recipe) Builder(opts ...Option) (*Builder, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	var b *Builder
	switch r.mode() {
	case ModeNamed:
		params, _ := namedParams(r.Params)
		f := NewNamedFormatter(r.Format, nil).With(opts...)
		b = f.compile(params, false, f.config.callers.Caller(callerSkipEntry))
	default:
		params, _ := indexedParams(r.Params)
		f := NewFormatter(r.Format).With(opts...)
		b = f.compile(params, f.config.callers.Caller(callerSkipEntry))
	}

	for _, s := range r.Steps {
		b = b.then(s.Name, s.Args...)
	}
	b.plan.config.logger.Debug(LogMsgRecipeLoaded,
		zap.String(LogFieldMode, string(r.mode())),
		zap.Int(LogFieldStepCount, len(r.Steps)),
	)
	return b, nil
}

func (r *Recipe) mode() Mode {
	if r.Mode == "" {
		return ModeIndexed
	}
	return r.Mode
}

// indexedParams accepts a list, a single scalar or nothing
func indexedParams(params any) ([]any, bool) {
	switch p := params.(type) {
	case nil:
		return nil, true
	case []any:
		return p, true
	case map[string]any:
		return nil, false
	default:
		return []any{p}, true
	}
}
