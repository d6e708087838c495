package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkoehler/sprechzeit/internal/coach"
	"github.com/mkoehler/sprechzeit/internal/llm"
	"github.com/mkoehler/sprechzeit/internal/path"
	"github.com/mkoehler/sprechzeit/internal/store"
	"github.com/mkoehler/sprechzeit/internal/texts"
	"github.com/mkoehler/sprechzeit/internal/ui"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Work through learning-path templates",
}

var pathCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Register a path template",
	Long: "Registers a template from ordered --step flags. Steps are given as\n" +
		"TYPE or TYPE=SOURCE, e.g. --step news=artikel.txt --step define_vocab\n" +
		"--step review.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("level")
		description, _ := cmd.Flags().GetString("description")
		stepSpecs, _ := cmd.Flags().GetStringArray("step")

		steps, err := parseSteps(stepSpecs)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		tpl, err := st.Paths().CreateTemplate(cmd.Context(), path.Template{
			Name:        args[0],
			Level:       level,
			Description: description,
			Active:      true,
			Steps:       steps,
		})
		if err != nil {
			return fmt.Errorf("create template: %w", err)
		}

		fmt.Printf("Vorlage %q angelegt (%d Schritte).\n", tpl.Name, len(tpl.Steps))
		return nil
	},
}

var pathListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		tpls, err := st.Paths().ListTemplates(cmd.Context())
		if err != nil {
			return fmt.Errorf("list templates: %w", err)
		}
		if len(tpls) == 0 {
			fmt.Println("Keine Vorlagen. Lege eine an mit: sprechzeit path create")
			return nil
		}

		for _, tpl := range tpls {
			types := make([]string, len(tpl.Steps))
			for i, s := range tpl.Steps {
				types[i] = s.Type
			}
			state := ""
			if !tpl.Active {
				state = "  (inaktiv)"
			}
			fmt.Printf("%-20s %-8s %s%s\n", tpl.Name, tpl.Level, strings.Join(types, " → "), state)
		}
		return nil
	},
}

var pathStartCmd = &cobra.Command{
	Use:   "start [template]",
	Short: "Start a new run and open its first step",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, st, machine, err := pathSetup(cmd, args)
		if err != nil {
			return err
		}
		defer st.Close()

		run, sess, err := machine.StartRun(cmd.Context(), name)
		if err != nil {
			return describePathError(err)
		}

		fmt.Printf("Durchlauf %s gestartet.\n", run.RunID)
		printSession(sess)
		return nil
	},
}

var pathNextCmd = &cobra.Command{
	Use:   "next [template]",
	Short: "Open the next step of the active run",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, st, machine, err := pathSetup(cmd, args)
		if err != nil {
			return err
		}
		defer st.Close()

		sess, runCompleted, err := machine.AdvanceRun(cmd.Context(), name)
		if err != nil {
			return describePathError(err)
		}
		if runCompleted {
			fmt.Println("Alle Schritte geschafft — der Durchlauf ist abgeschlossen.")
			return nil
		}

		printSession(sess)
		return nil
	},
}

var pathRunCmd = &cobra.Command{
	Use:   "run [template]",
	Short: "Work through the currently open step",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, st, machine, err := pathSetup(cmd, args)
		if err != nil {
			return err
		}
		defer st.Close()

		sess, err := openSessionByName(cmd, st, name)
		if err != nil {
			return err
		}

		if err := machine.RunStep(cmd.Context(), sess.ID); err != nil {
			return describePathError(err)
		}

		after, err := st.Paths().Get(cmd.Context(), sess.ID)
		if err != nil {
			return fmt.Errorf("re-read session: %w", err)
		}
		if after != nil && after.Status == path.SessionOpen {
			fmt.Println("Schritt abgebrochen — er bleibt offen und kann wiederholt werden.")
			return nil
		}

		fmt.Printf("Schritt %d (%s) abgeschlossen. Weiter mit: sprechzeit path next\n",
			sess.StepOrder, sess.StepType)
		return nil
	},
}

var pathStatusCmd = &cobra.Command{
	Use:   "status [template]",
	Short: "Show the active run and its open step",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := templateName(cmd, args)
		if err != nil {
			return err
		}
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		tpl, err := st.Paths().ActiveByName(ctx, name)
		if err != nil {
			return fmt.Errorf("look up template: %w", err)
		}
		if tpl == nil {
			return fmt.Errorf("no active template named %q", name)
		}

		run, err := st.Paths().LatestActive(ctx, tpl.ID)
		if err != nil {
			return fmt.Errorf("look up active run: %w", err)
		}
		if run == nil {
			fmt.Printf("Kein aktiver Durchlauf für %q. Starte mit: sprechzeit path start %s\n", name, name)
			return nil
		}

		done, err := st.Paths().MaxCompletedOrder(ctx, run.ID)
		if err != nil {
			return fmt.Errorf("count completed steps: %w", err)
		}
		fmt.Printf("Durchlauf %s: %d von %d Schritten abgeschlossen.\n", run.RunID, done, len(tpl.Steps))

		open, err := st.Paths().OpenByRun(ctx, run.ID)
		if err != nil {
			return fmt.Errorf("look up open session: %w", err)
		}
		if open == nil {
			fmt.Println("Kein offener Schritt. Weiter mit: sprechzeit path next")
			return nil
		}
		printSession(open)
		return nil
	},
}

func init() {
	pathCreateCmd.Flags().String("level", "easy", "Difficulty: easy, medium or hard")
	pathCreateCmd.Flags().String("description", "", "Free-text template description")
	pathCreateCmd.Flags().StringArray("step", nil, "Step as TYPE or TYPE=SOURCE, in order (repeatable)")

	pathCmd.AddCommand(pathCreateCmd)
	pathCmd.AddCommand(pathListCmd)
	pathCmd.AddCommand(pathStartCmd)
	pathCmd.AddCommand(pathNextCmd)
	pathCmd.AddCommand(pathRunCmd)
	pathCmd.AddCommand(pathStatusCmd)
}

// templateName resolves the template from the argument or the config file.
func templateName(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	fileCfg, err := fileConfig()
	if err != nil {
		return "", err
	}
	if fileCfg.Path.Template != nil && *fileCfg.Path.Template != "" {
		return *fileCfg.Path.Template, nil
	}
	return "", fmt.Errorf("no template given; pass one or set path.template in the config file")
}

// pathSetup opens the store and assembles the state machine with its
// interactive collaborators. The caller owns closing the store.
func pathSetup(cmd *cobra.Command, args []string) (string, *store.Store, *path.StateMachine, error) {
	name, err := templateName(cmd, args)
	if err != nil {
		return "", nil, nil, err
	}

	fileCfg, err := fileConfig()
	if err != nil {
		return "", nil, nil, err
	}
	chunkWords := 0
	if fileCfg.Path.ChunkWords != nil {
		chunkWords = *fileCfg.Path.ChunkWords
	}

	st, err := openStore(cmd)
	if err != nil {
		return "", nil, nil, err
	}

	coachCfg := coach.Config{}
	if fileCfg.LLM.MaxCalls != nil {
		coachCfg.MaxCalls = *fileCfg.LLM.MaxCalls
	}
	provider, err := llm.NewProviderFromEnv(cmd.Context())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Word suggestions fall back to the built-in heuristic.")
		provider = nil
	}
	c := coach.New(provider, coachCfg)

	machine := path.New(path.Deps{
		Templates:    st.Paths(),
		Runs:         st.Paths(),
		Sessions:     st.Paths(),
		Vocab:        st.Vocab(),
		Texts:        st.Texts(),
		Materializer: texts.NewMaterializer(st.Texts(), chunkWords),
		Suggester:    c,
		Selector:     ui.Selector{},
		Walker:       &ui.Walker{Definer: c},
	})
	return name, st, machine, nil
}

// openSessionByName finds the open session of the template's active run.
func openSessionByName(cmd *cobra.Command, st *store.Store, name string) (*path.Session, error) {
	ctx := cmd.Context()
	tpl, err := st.Paths().ActiveByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("look up template: %w", err)
	}
	if tpl == nil {
		return nil, fmt.Errorf("no active template named %q", name)
	}
	run, err := st.Paths().LatestActive(ctx, tpl.ID)
	if err != nil {
		return nil, fmt.Errorf("look up active run: %w", err)
	}
	if run == nil {
		return nil, fmt.Errorf("no active run; start one with: sprechzeit path start %s", name)
	}
	sess, err := st.Paths().OpenByRun(ctx, run.ID)
	if err != nil {
		return nil, fmt.Errorf("look up open session: %w", err)
	}
	if sess == nil {
		return nil, fmt.Errorf("no open step; open one with: sprechzeit path next %s", name)
	}
	return sess, nil
}

// parseSteps turns TYPE or TYPE=SOURCE specs into ordered template steps.
func parseSteps(specs []string) ([]path.Step, error) {
	steps := make([]path.Step, 0, len(specs))
	for i, spec := range specs {
		stepType, source, hasSource := strings.Cut(spec, "=")
		stepType = strings.TrimSpace(stepType)

		step := path.Step{Order: i + 1, Type: stepType}
		if hasSource {
			source = strings.TrimSpace(source)
			if source == "" {
				return nil, fmt.Errorf("step %d: empty source in %q", i+1, spec)
			}
			step.Config = map[string]any{"source": source}
		}
		steps = append(steps, step)
	}
	if err := path.ValidateSteps(steps); err != nil {
		return nil, err
	}
	return steps, nil
}

func printSession(sess *path.Session) {
	fmt.Printf("Offener Schritt %d: %s", sess.StepOrder, sess.StepType)
	if sess.ContentRef != "" {
		fmt.Printf(" (%s)", sess.ContentRef)
	}
	fmt.Println()
	fmt.Println("Bearbeite ihn mit: sprechzeit path run")
}

// describePathError maps the typed path errors onto learner-facing
// messages; anything else passes through unchanged.
func describePathError(err error) error {
	var conflict *path.ConflictError
	if errors.As(err, &conflict) {
		return fmt.Errorf("%s — schließe den offenen Schritt zuerst ab (sprechzeit path run)", conflict.Reason)
	}
	var notFound *path.NotFoundError
	if errors.As(err, &notFound) {
		return fmt.Errorf("nicht gefunden: %s %q", notFound.Kind, notFound.Key)
	}
	var external *path.ExternalResourceError
	if errors.As(err, &external) {
		return fmt.Errorf("Quelle nicht lesbar: %s", external.Resource)
	}
	return err
}
