package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-dynamicform/pkg/config"
	"github.com/goliatone/go-dynamicform/pkg/model"
)

type initAnswers struct {
	Name           string `survey:"name"`
	Container      string `survey:"container"`
	Body           string `survey:"body"`
	Item           string `survey:"item"`
	FormID         string `survey:"formId"`
	InsertButton   string `survey:"insertButton"`
	DeleteButton   string `survey:"deleteButton"`
	InsertPosition string `survey:"insertPosition"`
	Min            string `survey:"min"`
	Limit          string `survey:"limit"`
	Fields         string `survey:"fields"`
	FormName       string `survey:"formName"`
	NewRecord      bool   `survey:"newRecord"`
	Template       string `survey:"template"`
}

func newInitCommand(a *app) *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a widget definition interactively",
		Long: `Init asks for the selectors and fields of a repeatable group and writes a
YAML definition that "dynamicform render" can load.

The file is written to --output, or to NAME.yaml inside --definitions.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := printer{w: cmd.ErrOrStderr()}

			var answers initAnswers
			if err := a.ask(initQuestions(), &answers); err != nil {
				return out.fail("Prompt aborted", err)
			}
			def, err := answers.definition()
			if err != nil {
				return out.fail("Invalid answers", err)
			}
			payload, err := config.Encode(def)
			if err != nil {
				return out.fail("Invalid widget definition", err)
			}

			path := output
			if path == "" {
				dir := a.settings().Definitions
				if dir == "" {
					dir = "."
				}
				path = filepath.Join(dir, def.Name+".yaml")
			}
			if _, err := os.Stat(path); err == nil && !force {
				return out.fail("Definition already exists", fmt.Errorf("%s exists; pass --force to overwrite", path))
			}
			if def.Template == "" {
				out.warning("no body template set; add one before running render")
			}

			out.step("writing %s", path)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return out.fail("Failed to create directory", err)
			}
			if err := os.WriteFile(path, payload, 0o644); err != nil {
				return out.fail("Failed to write definition", err)
			}
			out.success("created widget %q", def.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "definition file to write")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing definition file")
	return cmd
}

func initQuestions() []*survey.Question {
	defaults := model.DefaultConfig()
	return []*survey.Question{
		{Name: "name", Prompt: &survey.Input{Message: "Widget name:"}, Validate: survey.Required},
		{
			Name:     "container",
			Prompt:   &survey.Input{Message: "Container class:", Default: "dynamicform_wrapper"},
			Validate: validateContainer,
		},
		{Name: "body", Prompt: &survey.Input{Message: "Body selector:", Default: ".container-items"}, Validate: survey.Required},
		{Name: "item", Prompt: &survey.Input{Message: "Item selector:", Default: ".item"}, Validate: survey.Required},
		{Name: "formId", Prompt: &survey.Input{Message: "Form id:", Default: "dynamic-form"}, Validate: survey.Required},
		{Name: "insertButton", Prompt: &survey.Input{Message: "Insert button selector:", Default: ".add-item"}},
		{Name: "deleteButton", Prompt: &survey.Input{Message: "Delete button selector:", Default: ".remove-item"}},
		{
			Name: "insertPosition",
			Prompt: &survey.Select{
				Message: "Insert position:",
				Options: []string{string(model.InsertBottom), string(model.InsertTop)},
				Default: string(defaults.InsertPosition),
			},
		},
		{Name: "min", Prompt: &survey.Input{Message: "Minimum items:", Default: strconv.Itoa(defaults.Min)}, Validate: validateCount},
		{Name: "limit", Prompt: &survey.Input{Message: "Maximum items:", Default: strconv.Itoa(defaults.Limit)}, Validate: validateCount},
		{Name: "fields", Prompt: &survey.Input{Message: "Fields (comma separated):"}, Validate: survey.Required},
		{Name: "formName", Prompt: &survey.Input{Message: "Form name (input prefix):"}, Validate: survey.Required},
		{Name: "newRecord", Prompt: &survey.Confirm{Message: "Render for a new record?", Default: true}},
		{Name: "template", Prompt: &survey.Input{Message: "Body template name:"}},
	}
}

func validateContainer(ans any) error {
	value, _ := ans.(string)
	if !model.ValidContainer(value) {
		return errors.New("use only letters, digits and underscore")
	}
	return nil
}

func validateCount(ans any) error {
	value, _ := ans.(string)
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return errors.New("enter a non-negative number")
	}
	return nil
}

func (a initAnswers) definition() (config.Definition, error) {
	cfg := model.DefaultConfig()
	cfg.Container = a.Container
	cfg.Body = a.Body
	cfg.Item = a.Item
	cfg.FormID = a.FormID
	cfg.InsertButton = a.InsertButton
	cfg.DeleteButton = a.DeleteButton
	if a.InsertPosition != "" {
		cfg.InsertPosition = model.InsertPosition(a.InsertPosition)
	}

	var err error
	if a.Min != "" {
		if cfg.Min, err = strconv.Atoi(strings.TrimSpace(a.Min)); err != nil {
			return config.Definition{}, fmt.Errorf("min: %w", err)
		}
	}
	if a.Limit != "" {
		if cfg.Limit, err = strconv.Atoi(strings.TrimSpace(a.Limit)); err != nil {
			return config.Definition{}, fmt.Errorf("limit: %w", err)
		}
	}
	for _, field := range strings.Split(a.Fields, ",") {
		if field = strings.TrimSpace(field); field != "" {
			cfg.Fields = append(cfg.Fields, field)
		}
	}

	return config.Definition{
		Name:     strings.TrimSpace(a.Name),
		Config:   cfg.Normalize(),
		Record:   model.StaticRecord{Name: strings.TrimSpace(a.FormName), New: a.NewRecord},
		Template: strings.TrimSpace(a.Template),
	}, nil
}
