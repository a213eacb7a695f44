package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	dynamicform "github.com/goliatone/go-dynamicform"
	"github.com/goliatone/go-dynamicform/pkg/assets"
	"github.com/goliatone/go-dynamicform/pkg/config"
	"github.com/goliatone/go-dynamicform/pkg/dom"
	"github.com/goliatone/go-dynamicform/pkg/page"
	"github.com/goliatone/go-dynamicform/pkg/render"
	"github.com/goliatone/go-dynamicform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-dynamicform/pkg/widget"
)

func newRenderCommand(a *app) *cobra.Command {
	var (
		repeat   int
		output   string
		sanitize bool
	)

	cmd := &cobra.Command{
		Use:   "render NAME",
		Short: "Render a widget definition with its page scripts",
		Long: `Render loads the named definition, renders its body template and prints
the head scripts, the wrapped widget markup and the body-end scripts.

With --repeat the widget is rendered several times on the same page; the
scripts are emitted once per container.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := printer{w: cmd.ErrOrStderr()}
			s := a.settings()
			if repeat < 1 {
				return out.fail("Invalid --repeat", fmt.Errorf("must be at least 1, got %d", repeat))
			}

			logger, err := s.logger(cmd.ErrOrStderr())
			if err != nil {
				return out.fail("Invalid configuration", err)
			}

			store, err := config.LoadFS(s.definitionsFS())
			if err != nil {
				return out.fail("Failed to load definitions", err)
			}
			def, ok := store.Definition(args[0])
			if !ok {
				return out.fail("Unknown widget", fmt.Errorf("%q not found; available: %s", args[0], strings.Join(store.Names(), ", ")))
			}

			engine, err := render.NewEngine(gotemplate.WithFS(s.templatesFS()))
			if err != nil {
				return out.fail("Failed to create template engine", err)
			}
			p, err := page.New(
				page.WithRenderer(engine),
				page.WithAssets(assets.Defaults(s.Env, s.BaseURL)),
				page.WithLogger(logger),
			)
			if err != nil {
				return out.fail("Failed to create page", err)
			}

			widgetOpts := []widget.Option{widget.WithLogger(logger)}
			if sanitize {
				widgetOpts = append(widgetOpts, widget.WithSanitizer(dom.PolicySanitizer(dom.FormPolicy())))
			}

			markups := make([]string, 0, repeat)
			for range repeat {
				markup, err := dynamicform.RenderDefinition(cmd.Context(), p, def, nil, widgetOpts...)
				if err != nil {
					return out.fail("Failed to render widget", err)
				}
				markups = append(markups, markup)
			}

			result, err := dynamicform.Finish(p, strings.Join(markups, "\n"))
			if err != nil {
				return out.fail("Failed to render page scripts", err)
			}
			document := result.Head + result.Markup + "\n" + result.BodyEnd

			if output == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), document)
				return err
			}
			if err := os.WriteFile(output, []byte(document), 0o644); err != nil {
				return out.fail("Failed to write output", err)
			}
			out.success("rendered %s x%d to %s", def.Name, repeat, output)
			return nil
		},
	}

	cmd.Flags().IntVarP(&repeat, "repeat", "n", 1, "render the widget this many times on one page")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&sanitize, "sanitize", false, "sanitize the extracted item template")
	return cmd
}
