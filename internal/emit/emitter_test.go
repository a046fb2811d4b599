package emit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitList_WritesAsIs(t *testing.T) {
	var out bytes.Buffer
	e := NewEmitter(&out)

	require.NoError(t, e.EmitList([]byte("ordered.01.first\nfn.a\nfn.b\nordered.52.last\n")))
	assert.Equal(t, "ordered.01.first\nfn.a\nfn.b\nordered.52.last\n", out.String())
}

func TestEmitBundle_Plain(t *testing.T) {
	var out bytes.Buffer
	e := NewEmitter(&out)

	require.NoError(t, e.EmitBundle([]byte("echo a\necho b\n"), false, "ms"))

	// The bundle is followed by exactly one extra trailing newline and no
	// instrumentation.
	assert.Equal(t, "echo a\necho b\n\n", out.String())
	assert.NotContains(t, out.String(), "start_time")
}

func TestEmitBundle_Debug(t *testing.T) {
	var out bytes.Buffer
	e := NewEmitter(&out)

	require.NoError(t, e.EmitBundle([]byte("echo a\n"), true, "ms"))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 4)

	assert.Equal(t, "local start_time=$(command 2>&1 >/dev/null -v ms && ms || printf '0')", lines[0])
	assert.Equal(t, "local end_time=$(command 2>&1 >/dev/null -v ms && ms || printf '0')", lines[len(lines)-2])
	assert.Equal(t, "export SCRIPTSORT_ELAPSED=$(($end_time - $start_time))", lines[len(lines)-1])
	assert.Contains(t, out.String(), "echo a\n")
}

func TestEmitBundle_CustomTimerCommand(t *testing.T) {
	var out bytes.Buffer
	e := NewEmitter(&out)

	require.NoError(t, e.EmitBundle([]byte("x\n"), true, "epochms"))
	assert.Contains(t, out.String(), "command 2>&1 >/dev/null -v epochms && epochms || printf '0'")
	assert.NotContains(t, out.String(), "-v ms ")
}

func TestEmitInit_SubstitutesScriptListAndDirectory(t *testing.T) {
	var out bytes.Buffer
	e := NewEmitter(&out)

	require.NoError(t, e.EmitInit([]byte("a b "), "/path/to/dir", false, "ms"))
	script := out.String()

	assert.Contains(t, script, "scripts=( a b )")
	assert.Contains(t, script, "includeScripts \"/path/to/dir\"\n")
	assert.Contains(t, script, "unset -f includeScripts\n")
	assert.Contains(t, script, "pjoin() {")
	assert.Contains(t, script, "timer=$(command 2>&1 >/dev/null -v ms && ms || printf '0')")

	// No leftover substitution tokens.
	assert.NotContains(t, script, "{{")
}

func TestEmitInit_DebugBlocks(t *testing.T) {
	var plain, debug bytes.Buffer

	require.NoError(t, NewEmitter(&plain).EmitInit([]byte("a "), "/dir", false, "ms"))
	require.NoError(t, NewEmitter(&debug).EmitInit([]byte("a "), "/dir", true, "ms"))

	assert.NotContains(t, plain.String(), "Sourcing")
	assert.NotContains(t, plain.String(), `printf "done\n"`)

	assert.Contains(t, debug.String(), `printf "Sourcing \"${scriptpath}\"..."`)
	assert.Contains(t, debug.String(), `printf "done\n"`)
}

func TestEmitInit_TimerExpressionReusedForNow(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewEmitter(&out).EmitInit([]byte("a "), "/dir", false, "ms"))

	// The same defensive expression is used for both timer reads.
	count := strings.Count(out.String(), "$(command 2>&1 >/dev/null -v ms && ms || printf '0')")
	assert.Equal(t, 2, count)
}
