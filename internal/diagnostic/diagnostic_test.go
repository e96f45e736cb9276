package diagnostic

import (
	"fmt"
	"sync"
	"testing"

	"github.com/griffnb/core-resolve/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostic_ErrorFormat(t *testing.T) {
	op := &domain.Operation{Name: "Widgets_Get"}
	d := Diagnostic{Code: ExpectedSuccessResponse, Operation: op}

	assert.Equal(t, "[expected-success-response] operation Widgets_Get", d.Error())
}

func TestDiagnostic_ErrorWithMessage(t *testing.T) {
	op := &domain.Operation{Name: "Widgets_Get"}
	d := Diagnostic{Code: ExpectedSuccessResponse, Operation: op, Message: "all responses are errors"}

	assert.Equal(t, "[expected-success-response] operation Widgets_Get: all responses are errors", d.Error())
}

func TestDiagnostic_ErrorWithoutOperation(t *testing.T) {
	d := Diagnostic{Code: ExpectedSuccessResponse}
	assert.Contains(t, d.Error(), "<unknown>")
}

func TestCollector_EmptyHasNoError(t *testing.T) {
	c := NewCollector()
	assert.Equal(t, 0, c.Len())
	assert.NoError(t, c.Err())
	assert.Empty(t, c.All())
}

func TestCollector_PreservesArrivalOrder(t *testing.T) {
	c := NewCollector()
	first := &domain.Operation{Name: "First"}
	second := &domain.Operation{Name: "Second"}

	c.Report(Diagnostic{Code: ExpectedSuccessResponse, Operation: first})
	c.Report(Diagnostic{Code: ExpectedSuccessResponse, Operation: second})

	diags := c.All()
	require.Len(t, diags, 2)
	assert.Same(t, first, diags[0].Operation)
	assert.Same(t, second, diags[1].Operation)
}

func TestCollector_AllReturnsCopy(t *testing.T) {
	c := NewCollector()
	c.Report(Diagnostic{Code: ExpectedSuccessResponse})

	diags := c.All()
	diags[0].Code = "mutated"

	assert.Equal(t, ExpectedSuccessResponse, c.All()[0].Code)
}

func TestCollector_ConcurrentReports(t *testing.T) {
	// Parallel pipelines report into one collector without loss
	c := NewCollector()

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Report(Diagnostic{
				Code:      ExpectedSuccessResponse,
				Operation: &domain.Operation{Name: fmt.Sprintf("Op%d", i)},
			})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 64, c.Len())
}

func TestCollector_ErrWrapsDiagnostics(t *testing.T) {
	c := NewCollector()
	c.Report(Diagnostic{Code: ExpectedSuccessResponse, Operation: &domain.Operation{Name: "A"}})
	c.Report(Diagnostic{Code: ExpectedSuccessResponse, Operation: &domain.Operation{Name: "B"}})

	err := c.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operation A")
	assert.Contains(t, err.Error(), "and 1 more")
}

func TestList_ErrorFormats(t *testing.T) {
	assert.Equal(t, "no diagnostics", List{}.Error())

	single := List{{Code: ExpectedSuccessResponse, Operation: &domain.Operation{Name: "A"}}}
	assert.Equal(t, "[expected-success-response] operation A", single.Error())
}
