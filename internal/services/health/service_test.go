package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusWithoutChecks(t *testing.T) {
	report := NewService("memory").Status(context.Background())
	assert.True(t, report.OK)
	assert.Equal(t, "memory", report.Store)
	assert.Empty(t, report.Checks)
}

func TestStatusReportsFailingCheck(t *testing.T) {
	svc := NewService("redis")
	svc.Register("redis", func(context.Context) error { return errors.New("connection refused") })
	svc.Register("wizards", func(context.Context) error { return nil })

	report := svc.Status(context.Background())
	assert.False(t, report.OK)
	assert.Equal(t, "connection refused", report.Checks["redis"])
	assert.Equal(t, "ok", report.Checks["wizards"])
}

func TestSetStoreChangesReportedStore(t *testing.T) {
	svc := NewService("redis")
	svc.SetStore("memory")
	assert.Equal(t, "memory", svc.Status(context.Background()).Store)
}
