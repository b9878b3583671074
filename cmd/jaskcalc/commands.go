package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/keypad"
	"github.com/jask/jaskcalc/internal/snapshot"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR",
		Short: "Evaluate an expression and print the result",
		Long: `Types EXPR on a fresh screen and presses "=".

The session memory is available, and the evaluation is added to the session
history. The screen of the session is left untouched.

Example:
  jaskcalc eval 12*3.5
  jaskcalc eval -- -7+2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, _, err := a.engine(ctx)
			if err != nil {
				return err
			}
			e.Clear()
			err = keypad.Type(e, strings.Join(args, ""))
			if err == nil {
				err = e.Equals()
			}
			return a.report(cmd, e, err)
		},
	}
}

func newPressCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "press ACTION...",
		Short: "Press keypad buttons on the session screen",
		Long: `Applies each ACTION to the saved session and saves the result.

Actions are digits 0-9 and: ` + strings.Join(actionNames(), ", ") + `.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			actions := make([]keypad.Action, 0, len(args))
			for _, arg := range args {
				action, err := keypad.ParseAction(arg)
				if err != nil {
					return err
				}
				if !action.Engine() {
					return fmt.Errorf("%s is only available in the interactive keypad", action)
				}
				actions = append(actions, action)
			}

			e, svc, err := a.engine(ctx)
			if err != nil {
				return err
			}
			var pressErr error
			for _, action := range actions {
				if err := keypad.Dispatch(e, action); err != nil {
					pressErr = err
					break
				}
			}
			if err := svc.Save(ctx, a.session, e.Snapshot()); err != nil {
				return err
			}
			return a.report(cmd, e, pressErr)
		},
	}
}

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	var clearAll bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List or clear the session history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := a.open(ctx)
			if err != nil {
				return err
			}
			if clearAll {
				st, err := svc.Load(ctx, a.session)
				if err != nil {
					return err
				}
				if err := svc.Reset(ctx, a.session); err != nil {
					return err
				}
				// Reset also zeroes the screen; history --clear keeps it.
				return svc.Save(ctx, a.session, st)
			}
			entries, err := svc.History(ctx, a.session, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "no history")
				return nil
			}
			for _, h := range entries {
				if h.ErrorKind != "" {
					fmt.Fprintf(out, "%s\t! %s\n", h.Expression, h.ErrorKind)
					continue
				}
				fmt.Fprintf(out, "%s\t= %s\n", h.Expression, h.Result)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries to show, newest first (0 for all)")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "delete the session history")
	return cmd
}

func newStateCmd(a *app) *cobra.Command {
	stateCmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect, reset, export or import the session state",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the session screen and memory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, _, err := a.engine(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "session: %s\n", a.session)
			fmt.Fprintf(out, "screen:  %s\n", e.Screen())
			fmt.Fprintf(out, "memory:  %s\n", strconv.FormatFloat(e.Memory(), 'g', -1, 64))
			return nil
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Clear the screen, memory and history of the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			return svc.Reset(cmd.Context(), a.session)
		},
	}

	export := &cobra.Command{
		Use:   "export FILE",
		Short: "Write the session state to a YAML snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := a.open(ctx)
			if err != nil {
				return err
			}
			st, err := svc.Load(ctx, a.session)
			if err != nil {
				return err
			}
			if err := snapshot.Save(afero.NewOsFs(), args[0], st); err != nil {
				return err
			}
			a.log.Info("state exported", zap.String("session", a.session), zap.String("file", args[0]))
			return nil
		},
	}

	imp := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the session state with a YAML snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := snapshot.Load(afero.NewOsFs(), args[0])
			if err != nil {
				return err
			}
			svc, err := a.open(ctx)
			if err != nil {
				return err
			}
			if st.Screen == "" {
				st.Screen = "0"
			}
			return svc.Save(ctx, a.session, st)
		},
	}

	stateCmd.AddCommand(show, reset, export, imp)
	return stateCmd
}

// report prints the screen. Calculator errors print the screen message and
// return the longer detail.
func (a *app) report(cmd *cobra.Command, e *calc.Engine, err error) error {
	fmt.Fprintln(cmd.OutOrStdout(), e.Screen())
	var ce *calc.Error
	if errors.As(err, &ce) {
		return errors.New(e.Messages().For(ce.Kind).Detail)
	}
	return err
}

func actionNames() []string {
	var names []string
	for _, action := range keypad.Actions() {
		if action.Engine() && !action.IsDigit() {
			names = append(names, string(action))
		}
	}
	return names
}
