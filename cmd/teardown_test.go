package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openfga/lists/cmd/util"
	"github.com/openfga/lists/pkg/logger"
)

func TestTeardownCommand(t *testing.T) {
	util.PrepareTempConfigDir(t)
	root, out := newTestRootCommand(t)

	root.SetArgs([]string{"teardown", "--length", "150000", "--log-level", "none"})
	require.NoError(t, root.Execute())

	require.Equal(t, "released 150000 nodes from the generic list\nreleased 150000 nodes from the int32 list\n", out.String())
}

func TestTeardownCommandReadsConfigFile(t *testing.T) {
	util.PrepareTempConfigFile(t, `log:
  level: none
teardown:
  length: 10
`)

	root, out := newTestRootCommand(t)
	root.SetArgs([]string{"teardown"})
	require.NoError(t, root.Execute())

	require.Contains(t, out.String(), "released 10 nodes from the generic list")
}

func TestTeardownCommandRejectsNegativeLength(t *testing.T) {
	util.PrepareTempConfigDir(t)
	root, _ := newTestRootCommand(t)

	root.SetArgs([]string{"teardown", "--length=-1", "--log-level", "none"})
	require.ErrorContains(t, root.Execute(), "config 'teardown.length' must be non-negative")
}

func TestExecuteTeardownLogs(t *testing.T) {
	log, logs := logger.NewObserverLogger("info")

	var out bytes.Buffer
	require.NoError(t, executeTeardown(&out, log, 0))

	released := logs.FilterMessage("released list").All()
	require.Len(t, released, 2)
	require.Equal(t, "generic", released[0].ContextMap()["list"])
	require.Equal(t, "int32", released[1].ContextMap()["list"])
	require.Equal(t, int64(0), released[1].ContextMap()["length"])

	require.Error(t, executeTeardown(&out, log, -5))
}
