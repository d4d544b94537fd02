// Command aituner is a terminal AI prompt tuner: pick a model and persona,
// adjust behavior levers, and generate a deterministic system prompt.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jviolette/aituner/internal/catalog"
	"github.com/jviolette/aituner/internal/compose"
	"github.com/jviolette/aituner/internal/config"
	"github.com/jviolette/aituner/internal/engine"
	"github.com/jviolette/aituner/internal/logging"
	"github.com/jviolette/aituner/internal/preset"
	"github.com/jviolette/aituner/internal/tui"
)

var (
	version = "0.1.0"
	cfgPath string
	verbose bool

	cfg      *config.Config
	closeLog func() error
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "aituner",
		Short: "AI Tuner - interactive prompt tuning for AI assistants",
		Long: `AI Tuner generates custom system prompts from tunable behavior levers:
  • 26 levers across tone, content, format, and interaction
  • Model presets for the major assistants
  • Personas with activation snippets and lever presets
  • Personality tags blended into the current configuration
  • Named presets persisted to disk

Start interactive mode:  aituner
Compose a prompt:        aituner compose --model claude --persona coder
Manage presets:          aituner preset list`,
		PersistentPreRunE: initApp,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closeLog != nil {
				return closeLog()
			}
			return nil
		},
		RunE: runTUI,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path (default ~/.aituner/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("AI Tuner v%s\n", version)
		},
	})

	// One-shot composition
	rootCmd.AddCommand(composeCmd())

	// Catalog listing commands
	rootCmd.AddCommand(modelsCmd())
	rootCmd.AddCommand(personasCmd())
	rootCmd.AddCommand(leversCmd())

	// Preset command group
	rootCmd.AddCommand(presetCmd())

	// Settings export/import
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(importCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// INITIALIZATION
// ═══════════════════════════════════════════════════════════════════════════════

func initApp(cmd *cobra.Command, args []string) error {
	var err error
	if cfgPath != "" {
		cfg, err = config.LoadFromPath(cfgPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}

	// The root command runs the TUI, which owns the terminal; everything
	// else logs to stderr as well.
	if cmd.Name() == cmd.Root().Name() {
		closeLog, err = logging.SetupFileOnly(level, cfg.Logging.File)
	} else {
		closeLog, err = logging.Setup(level, cfg.Logging.File)
	}
	if err != nil {
		return err
	}

	log.Debug().Str("config", cfgPath).Str("storage", cfg.Storage.Backend).Msg("session started")
	return nil
}

func newEngine() *engine.Engine {
	reg := catalog.DefaultRegistry()
	return engine.New(reg, catalog.DefaultCatalog(reg),
		engine.WithApplier(engine.BlendedApply{}))
}

func openStore() (preset.Store, func() error, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		s, err := preset.OpenSQLite(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return preset.NewFileStore(cfg.Storage.Path), func() error { return nil }, nil
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// TUI COMMAND (ROOT)
// ═══════════════════════════════════════════════════════════════════════════════

func runTUI(cmd *cobra.Command, args []string) error {
	lipgloss.SetColorProfile(termenv.ColorProfile())

	eng := newEngine()
	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	comp := compose.New(eng.Registry(), eng.Catalog())
	model := tui.New(eng, comp, store)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════════
// STATE FLAGS
// ═══════════════════════════════════════════════════════════════════════════════

// stateFlags are the shared flags that describe a tuner session on the
// command line.
type stateFlags struct {
	model        string
	persona      string
	personality  string
	sets         []string
	presetName   string
	emojiShutoff bool
}

func (f *stateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.model, "model", "", "model id to select")
	cmd.Flags().StringVar(&f.persona, "persona", "", "persona id to select")
	cmd.Flags().StringVar(&f.personality, "personality", "", "personality tag")
	cmd.Flags().StringArrayVar(&f.sets, "set", nil, "lever override as id=value (repeatable)")
	cmd.Flags().StringVar(&f.presetName, "preset", "", "start from a saved preset")
	cmd.Flags().BoolVar(&f.emojiShutoff, "no-emoji", false, "add the emoji shutoff section")
}

// buildState applies the flags to a fresh session in selection order:
// preset, model, persona, personality, explicit lever values.
func (f *stateFlags) buildState(cmd *cobra.Command, eng *engine.Engine) (*engine.State, error) {
	st := engine.NewState(eng.Registry())

	if f.presetName != "" {
		store, closeStore, err := openStore()
		if err != nil {
			return nil, err
		}
		defer closeStore()
		p, err := preset.FindByName(cmd.Context(), store, f.presetName)
		if err != nil {
			return nil, err
		}
		if err := eng.Apply(st, p.Settings()); err != nil {
			return nil, err
		}
	}

	if f.model != "" {
		if err := eng.SelectModel(st, f.model); err != nil {
			return nil, err
		}
	}
	if f.persona != "" {
		if err := eng.SelectPersona(st, f.persona); err != nil {
			return nil, err
		}
	}
	if f.personality != "" {
		if err := eng.SetPersonality(st, engine.Personality(f.personality)); err != nil {
			return nil, err
		}
	}
	for _, set := range f.sets {
		id, value, err := parseSet(set)
		if err != nil {
			return nil, err
		}
		if !eng.Registry().Has(id) {
			return nil, fmt.Errorf("unknown lever %q", id)
		}
		eng.SetLever(st, id, value)
	}
	if f.emojiShutoff {
		st.EmojiShutoff = true
	}
	return st, nil
}

func parseSet(s string) (string, int, error) {
	id, raw, ok := strings.Cut(s, "=")
	if !ok {
		return "", 0, fmt.Errorf("invalid --set %q, expected id=value", s)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return "", 0, fmt.Errorf("invalid --set %q: value must be an integer", s)
	}
	return id, value, nil
}

// ═══════════════════════════════════════════════════════════════════════════════
// COMPOSE COMMAND
// ═══════════════════════════════════════════════════════════════════════════════

func composeCmd() *cobra.Command {
	flags := &stateFlags{}
	var pretty bool

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Compose a system prompt from the given configuration",
		Example: `  aituner compose --model claude --persona coder
  aituner compose --model grok --set playfulness=9
  aituner compose --preset "deep work" --pretty`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng := newEngine()
			st, err := flags.buildState(cmd, eng)
			if err != nil {
				return err
			}

			comp := compose.New(eng.Registry(), eng.Catalog())
			prompt := comp.Compose(st)

			if pretty {
				return renderMarkdown("```\n" + prompt + "\n```")
			}
			fmt.Println(prompt)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&pretty, "pretty", false, "render output with terminal styling")
	return cmd
}

func renderMarkdown(md string) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		// Fall back to plain output when the terminal can't be styled.
		fmt.Println(md)
		return nil
	}
	out, err := renderer.Render(md)
	if err != nil {
		fmt.Println(md)
		return nil
	}
	fmt.Print(out)
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════════
// CATALOG COMMANDS
// ═══════════════════════════════════════════════════════════════════════════════

func modelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the known AI models",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng := newEngine()
			for _, m := range eng.Catalog().Models() {
				fmt.Printf("%-12s %s\n", m.ID, m.Description)
			}
			return nil
		},
	}
}

func personasCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "personas",
		Short: "List the available personas",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng := newEngine()
			for _, p := range eng.Catalog().Personas() {
				if p.Type == catalog.PersonaHidden && !all {
					continue
				}
				best := ""
				if len(p.BestModels) > 0 {
					best = " (best: " + strings.Join(p.BestModels, ", ") + ")"
				}
				fmt.Printf("%-14s %s%s\n", p.ID, p.Description, best)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include hidden personas")
	return cmd
}

func leversCmd() *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "levers",
		Short: "List the behavior levers",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := catalog.DefaultRegistry()
			levers := reg.All()

			if asYAML {
				data, err := yaml.Marshal(levers)
				if err != nil {
					return fmt.Errorf("marshal levers: %w", err)
				}
				fmt.Print(string(data))
				return nil
			}

			sort.SliceStable(levers, func(i, j int) bool {
				if levers[i].Category != levers[j].Category {
					return levers[i].Category < levers[j].Category
				}
				return levers[i].ID < levers[j].ID
			})
			lastCategory := ""
			for _, l := range levers {
				if l.Category != lastCategory {
					fmt.Printf("\n[%s]\n", l.Category)
					lastCategory = l.Category
				}
				locked := ""
				if len(l.Locked) > 0 {
					locked = " locked: " + strings.Join(l.Locked, ", ")
				}
				fmt.Printf("  %-24s default %d (range %d-%d)%s\n",
					l.ID, l.DefaultValue(), l.DefaultRange.Min, l.DefaultRange.Max, locked)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "emit the full lever catalog as YAML")
	return cmd
}

// ═══════════════════════════════════════════════════════════════════════════════
// PRESET COMMANDS
// ═══════════════════════════════════════════════════════════════════════════════

func presetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved presets",
	}

	saveFlags := &stateFlags{}
	saveCmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save a configuration under a name (overwrites an existing name)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng := newEngine()
			st, err := saveFlags.buildState(cmd, eng)
			if err != nil {
				return err
			}

			store, closeStore, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			saved, err := store.Save(cmd.Context(), preset.FromState(args[0], st))
			if err != nil {
				return fmt.Errorf("save preset: %w", err)
			}
			fmt.Printf("Saved preset %q (%s)\n", saved.Name, saved.ID)
			return nil
		},
	}
	saveFlags.register(saveCmd)
	cmd.AddCommand(saveCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			presets, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(presets) == 0 {
				fmt.Println("No saved presets.")
				return nil
			}
			for _, p := range presets {
				model, persona := "-", "-"
				if p.ModelID != nil {
					model = *p.ModelID
				}
				if p.PersonaID != nil {
					persona = *p.PersonaID
				}
				fmt.Printf("%-20s model=%s persona=%s personality=%s (%s)\n",
					p.Name, model, persona, p.Personality, p.CreatedAt.Format("2006-01-02"))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Show the prompt a preset composes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			p, err := preset.FindByName(cmd.Context(), store, args[0])
			if err != nil {
				return err
			}

			eng := newEngine()
			st := engine.NewState(eng.Registry())
			if err := eng.Apply(st, p.Settings()); err != nil {
				return err
			}
			comp := compose.New(eng.Registry(), eng.Catalog())
			fmt.Println(comp.Compose(st))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			p, err := preset.FindByName(cmd.Context(), store, args[0])
			if err != nil {
				return err
			}
			if err := store.Delete(cmd.Context(), p.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted preset %q\n", p.Name)
			return nil
		},
	})

	return cmd
}

// ═══════════════════════════════════════════════════════════════════════════════
// EXPORT / IMPORT COMMANDS
// ═══════════════════════════════════════════════════════════════════════════════

func exportCmd() *cobra.Command {
	flags := &stateFlags{}
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a configuration as JSON or Markdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng := newEngine()
			st, err := flags.buildState(cmd, eng)
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case "json":
				data, err = eng.ExportJSON(st)
				if err != nil {
					return fmt.Errorf("export settings: %w", err)
				}
				data = append(data, '\n')
			case "markdown", "md":
				comp := compose.New(eng.Registry(), eng.Catalog())
				data = []byte(exportMarkdown(eng, comp, st))
			default:
				return fmt.Errorf("unknown format %q, expected json or markdown", format)
			}

			if output == "" {
				fmt.Print(string(data))
				return nil
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Printf("Exported to %s\n", output)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&format, "format", "json", "export format: json or markdown")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}

// exportMarkdown renders a shareable Markdown document: the generated
// prompt plus the configuration that produced it.
func exportMarkdown(eng *engine.Engine, comp *compose.Composer, st *engine.State) string {
	var b strings.Builder
	b.WriteString("# AI Tuner Configuration\n\n")

	if model, ok := eng.Catalog().FindModel(st.ModelID); ok {
		fmt.Fprintf(&b, "- **Model:** %s\n", model.Name)
	}
	if persona, ok := eng.Catalog().FindPersona(st.PersonaID); ok {
		fmt.Fprintf(&b, "- **Persona:** %s\n", persona.Name)
	}
	fmt.Fprintf(&b, "- **Personality:** %s\n", st.Personality)

	b.WriteString("\n## Levers\n\n")
	b.WriteString("| Lever | Value |\n|---|---|\n")
	for _, lever := range eng.Registry().All() {
		fmt.Fprintf(&b, "| %s | %d |\n", lever.Name, st.Levers[lever.ID])
	}

	b.WriteString("\n## Generated Prompt\n\n```\n")
	b.WriteString(comp.Compose(st))
	b.WriteString("\n```\n")
	return b.String()
}

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a JSON configuration and compose its prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import: %w", err)
			}

			// Reject documents that aren't settings-shaped before replay.
			var s engine.Settings
			if err := json.Unmarshal(data, &s); err != nil {
				return fmt.Errorf("malformed settings: %w", err)
			}

			eng := newEngine()
			st := engine.NewState(eng.Registry())
			if err := eng.Apply(st, s); err != nil {
				return err
			}

			comp := compose.New(eng.Registry(), eng.Catalog())
			fmt.Println(comp.Compose(st))
			return nil
		},
	}
	return cmd
}
