package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openfga/lists/pkg/list"
	"github.com/openfga/lists/pkg/logger"
)

// NewTeardownCommand returns the command that builds long lists and releases them.
func NewTeardownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teardown",
		Short: "Build long lists and release them node by node",
		Long: `Build a generic list and an int32 list of the configured length, then release both with Clear.
Clear walks the chain with a loop, so the length is bounded by memory and not by stack depth.`,
		RunE: runTeardown,
		Args: cobra.NoArgs,
	}

	bindTeardownFlags(cmd)

	return cmd
}

func runTeardown(cmd *cobra.Command, _ []string) error {
	config, err := ReadConfig()
	if err != nil {
		return err
	}

	log, err := logger.NewLogger(config.Log.Format, config.Log.Level)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	return executeTeardown(cmd.OutOrStdout(), log, config.Teardown.Length)
}

func executeTeardown(out io.Writer, log logger.Logger, length int) error {
	if length < 0 {
		return fmt.Errorf("teardown length must be non-negative, got %d", length)
	}

	l := list.New[int]()
	start := time.Now()
	for i := 0; i < length; i++ {
		l.Push(i)
	}
	built := time.Since(start)

	start = time.Now()
	l.Clear()
	cleared := time.Since(start)

	if !l.IsEmpty() {
		return fmt.Errorf("list still holds %d values after clear", l.Len())
	}

	log.Info("released list",
		zap.String("list", "generic"),
		zap.Int("length", length),
		zap.Duration("build_duration", built),
		zap.Duration("clear_duration", cleared),
	)

	fixed := list.NewInt32()
	start = time.Now()
	for i := 0; i < length; i++ {
		fixed.Push(int32(i))
	}
	built = time.Since(start)

	start = time.Now()
	fixed.Clear()
	cleared = time.Since(start)

	if !fixed.IsEmpty() {
		return fmt.Errorf("int32 list still holds %d values after clear", fixed.Len())
	}

	log.Info("released list",
		zap.String("list", "int32"),
		zap.Int("length", length),
		zap.Duration("build_duration", built),
		zap.Duration("clear_duration", cleared),
	)

	_, err := fmt.Fprintf(out, "released %d nodes from the generic list\nreleased %d nodes from the int32 list\n", length, length)
	return err
}
