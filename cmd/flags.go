package cmd

import (
	"github.com/spf13/cobra"

	"github.com/openfga/lists/cmd/util"
)

const (
	logFormatFlag      = "log-format"
	logLevelFlag       = "log-level"
	traceFixedFlag     = "fixed"
	traceStrictFlag    = "strict"
	teardownLengthFlag = "length"
)

// bindLogFlags registers the log flags on the root command so every subcommand inherits them.
func bindLogFlags(command *cobra.Command) {
	defaultConfig := DefaultConfig()
	flags := command.PersistentFlags()

	flags.String(logFormatFlag, defaultConfig.Log.Format, "the log format to output logs in ('text' or 'json')")
	util.MustBindPFlag("log.format", flags.Lookup(logFormatFlag))
	util.MustBindEnv("log.format", "LISTS_LOG_FORMAT")

	flags.String(logLevelFlag, defaultConfig.Log.Level, "the log level to use ('none', 'debug', 'info', 'warn', 'error', 'panic' or 'fatal')")
	util.MustBindPFlag("log.level", flags.Lookup(logLevelFlag))
	util.MustBindEnv("log.level", "LISTS_LOG_LEVEL")
}

func bindTraceFlags(command *cobra.Command) {
	defaultConfig := DefaultConfig()
	flags := command.Flags()

	flags.Bool(traceFixedFlag, defaultConfig.Trace.Fixed, "run the trace against the int32 list instead of the generic list")
	util.MustBindPFlag("trace.fixed", flags.Lookup(traceFixedFlag))
	util.MustBindEnv("trace.fixed", "LISTS_TRACE_FIXED")

	flags.Bool(traceStrictFlag, defaultConfig.Trace.Strict, "fail the trace on the first operation that finds the list empty")
	util.MustBindPFlag("trace.strict", flags.Lookup(traceStrictFlag))
	util.MustBindEnv("trace.strict", "LISTS_TRACE_STRICT")
}

func bindTeardownFlags(command *cobra.Command) {
	defaultConfig := DefaultConfig()
	flags := command.Flags()

	flags.Int(teardownLengthFlag, defaultConfig.Teardown.Length, "the number of nodes to build before releasing them")
	util.MustBindPFlag("teardown.length", flags.Lookup(teardownLengthFlag))
	util.MustBindEnv("teardown.length", "LISTS_TEARDOWN_LENGTH")
}
