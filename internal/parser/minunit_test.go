package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uts2ctrf/internal/domain"
)

func newTestParser() *MinUnitParser {
	return NewMinUnitParser("SaturnRingLib Unit Tests", "minunit")
}

func TestMinUnitParser_Parse(t *testing.T) {
	p := newTestParser()

	t.Run("empty log", func(t *testing.T) {
		report := p.Parse(nil)
		assert.Equal(t, 0, report.Results.Summary.Tests)
		assert.Equal(t, 0, report.Results.Summary.Passed)
		assert.Equal(t, 0, report.Results.Summary.Failed)
		assert.Empty(t, report.Results.Summary.Suites)
		assert.NotNil(t, report.Results.Tests)
		assert.Empty(t, report.Results.Tests)
	})

	t.Run("single passed test", func(t *testing.T) {
		report := p.Parse([]string{"TESTING : Passed :MATH_AddTest"})
		require.Len(t, report.Results.Tests, 1)
		tc := report.Results.Tests[0]
		assert.Equal(t, "MATH_AddTest", tc.Name)
		assert.Equal(t, "MATH", tc.Classname)
		assert.Equal(t, "MATH", tc.Suite)
		assert.Equal(t, domain.StatusPassed, tc.Status)
		assert.Equal(t, "Passed", tc.RawStatus)
		assert.Nil(t, tc.FailureDetail)
		assert.Equal(t, map[string]int{"MATH": 1}, report.Results.Summary.Suites)
	})

	t.Run("single failed test", func(t *testing.T) {
		report := p.Parse([]string{
			"FATAL : MATH_DivTest failed:",
			"/src/math.c:42: division by zero",
		})
		require.Len(t, report.Results.Tests, 1)
		tc := report.Results.Tests[0]
		assert.Equal(t, "MATH_DivTest", tc.Name)
		assert.Equal(t, "MATH", tc.Classname)
		assert.Equal(t, domain.StatusFailed, tc.Status)
		require.NotNil(t, tc.FailureDetail)
		assert.Equal(t, "/src/math.c", tc.FilePath)
		assert.Equal(t, 42, tc.Line)
		assert.Equal(t, "division by zero", tc.Message)
		assert.Equal(t, "/src/math.c:42: division by zero", tc.Trace)

		s := report.Results.Summary
		assert.Equal(t, 1, s.Tests)
		assert.Equal(t, 1, s.Failed)
		assert.Equal(t, 0, s.Passed)
	})

	t.Run("failure header as last line", func(t *testing.T) {
		report := p.Parse([]string{"FATAL : MATH_DivTest failed:"})
		assert.Equal(t, 0, report.Results.Summary.Tests)
		assert.Empty(t, report.Results.Tests)
	})

	t.Run("malformed detail line is consumed", func(t *testing.T) {
		report := p.Parse([]string{
			"FATAL : MATH_DivTest failed:",
			"TESTING : Passed :SWALLOWED_Test",
			"TESTING : Passed :MATH_AddTest",
		})
		require.Len(t, report.Results.Tests, 1)
		assert.Equal(t, "MATH_AddTest", report.Results.Tests[0].Name)
	})

	t.Run("prose detail line", func(t *testing.T) {
		report := p.Parse([]string{
			"FATAL : MATH_DivTest failed:",
			"something went wrong",
			"FATAL : IO_ReadTest failed:",
			"io.c:7: eof",
		})
		require.Len(t, report.Results.Tests, 1)
		assert.Equal(t, "IO_ReadTest", report.Results.Tests[0].Name)
		assert.Equal(t, 7, report.Results.Tests[0].Line)
	})

	t.Run("multiple underscores", func(t *testing.T) {
		report := p.Parse([]string{"TESTING : Passed :A_B_C"})
		require.Len(t, report.Results.Tests, 1)
		assert.Equal(t, "A", report.Results.Tests[0].Classname)
	})

	t.Run("empty passed name", func(t *testing.T) {
		report := p.Parse([]string{"TESTING : Passed :"})
		require.Len(t, report.Results.Tests, 1)
		assert.Equal(t, "", report.Results.Tests[0].Name)
		assert.Equal(t, "", report.Results.Tests[0].Classname)
		assert.Equal(t, map[string]int{"": 1}, report.Results.Summary.Suites)
	})

	t.Run("whitespace is trimmed", func(t *testing.T) {
		report := p.Parse([]string{
			"TESTING : Passed :   CORE_Init  ",
			"FATAL :  CORE_Fail  failed:",
			"   core.c :10:   bad value   ",
		})
		require.Len(t, report.Results.Tests, 2)
		assert.Equal(t, "CORE_Init", report.Results.Tests[0].Name)
		assert.Equal(t, "CORE_Fail", report.Results.Tests[1].Name)
		assert.Equal(t, "CORE", report.Results.Tests[1].Classname)
		assert.Equal(t, "core.c", report.Results.Tests[1].FilePath)
		assert.Equal(t, "bad value", report.Results.Tests[1].Message)
	})

	t.Run("name without underscore", func(t *testing.T) {
		report := p.Parse([]string{"TESTING : Passed :Smoke"})
		assert.Equal(t, "Smoke", report.Results.Tests[0].Classname)
	})

	t.Run("unrecognized lines are skipped", func(t *testing.T) {
		report := p.Parse([]string{
			"booting",
			" TESTING : Passed :Indented",
			"testing : passed :lower",
			"FATAL: missing space failed:",
			"",
		})
		assert.Empty(t, report.Results.Tests)
	})
}

func TestMinUnitParser_OrderAndInvariants(t *testing.T) {
	lines := []string{
		"TESTING : Passed :MATH_AddTest",
		"FATAL : MATH_DivTest failed:",
		"/src/math.c:42: division by zero",
		"noise",
		"TESTING : Passed :IO_Open",
		"FATAL : IO_Read failed:",
		"not a detail",
		"TESTING : Passed :IO_Close",
		"FATAL : STR_Cat failed:",
		"C:/src/str.c:9: overflow",
	}
	report := newTestParser().Parse(lines)

	var names []string
	for _, tc := range report.Results.Tests {
		names = append(names, tc.Name)
	}
	assert.Equal(t, []string{"MATH_AddTest", "MATH_DivTest", "IO_Open", "IO_Close", "STR_Cat"}, names)

	s := report.Results.Summary
	assert.Equal(t, s.Passed+s.Failed, s.Tests)
	sum := 0
	for _, n := range s.Suites {
		sum += n
	}
	assert.Equal(t, s.Tests, sum)
	assert.Equal(t, map[string]int{"MATH": 2, "IO": 2, "STR": 1}, s.Suites)

	last := report.Results.Tests[4]
	assert.Equal(t, "C:/src/str.c", last.FilePath)
	assert.Equal(t, 9, last.Line)
}

func TestMinUnitParser_Idempotent(t *testing.T) {
	lines := []string{
		"TESTING : Passed :A_1",
		"FATAL : B_2 failed:",
		"b.c:2: nope",
		"TESTING : Passed :C_3",
	}
	p := newTestParser()
	first, err := json.Marshal(p.Parse(lines))
	require.NoError(t, err)
	second, err := json.Marshal(p.Parse(lines))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestMinUnitParser_ParseWithDiagnostics(t *testing.T) {
	report, diags := newTestParser().ParseWithDiagnostics([]string{
		"FATAL : A_1 failed:",
		"prose",
		"TESTING : Passed :B_2",
		"FATAL : C_3 failed:",
	})
	assert.Equal(t, 1, report.Results.Summary.Tests)
	require.Len(t, diags, 2)
	assert.Equal(t, Diagnostic{Line: 1, Name: "A_1", Reason: "detail line is not file:line: message"}, diags[0])
	assert.Equal(t, Diagnostic{Line: 4, Name: "C_3", Reason: "no detail line follows"}, diags[1])
}

func TestMinUnitParser_JSONShape(t *testing.T) {
	report := newTestParser().Parse([]string{
		"TESTING : Passed :MATH_AddTest",
		"FATAL : MATH_DivTest failed:",
		"/src/math.c:42: division by zero",
	})
	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"reportFormat": "CTRF",
		"specVersion": "0.0.0",
		"results": {
			"summary": {
				"name": "SaturnRingLib Unit Tests",
				"tests": 2, "failed": 1, "passed": 1, "skipped": 0,
				"suites": {"MATH": 2}
			},
			"tool": {"name": "minunit"},
			"tests": [
				{"name": "MATH_AddTest", "classname": "MATH", "status": "passed", "rawStatus": "Passed",
				 "duration": 0, "retries": 0, "suite": "MATH"},
				{"name": "MATH_DivTest", "classname": "MATH", "status": "failed", "rawStatus": "failed",
				 "duration": 0, "retries": 0, "suite": "MATH",
				 "message": "division by zero", "trace": "/src/math.c:42: division by zero",
				 "filePath": "/src/math.c", "line": 42}
			]
		}
	}`, string(data))
}
