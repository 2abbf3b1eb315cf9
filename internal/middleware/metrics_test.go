package middleware

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestAddMessagesPurged(t *testing.T) {
	before := testutil.ToFloat64(messagesPurgedTotal)

	AddMessagesPurged(3)

	after := testutil.ToFloat64(messagesPurgedTotal)
	if after-before != 3 {
		t.Errorf("expected counter to grow by 3, got %v", after-before)
	}
}

func TestAddMessagesPurged_ZeroIsNoop(t *testing.T) {
	before := testutil.ToFloat64(messagesPurgedTotal)

	AddMessagesPurged(0)

	after := testutil.ToFloat64(messagesPurgedTotal)
	if after != before {
		t.Errorf("expected counter unchanged, got %v -> %v", before, after)
	}
}
