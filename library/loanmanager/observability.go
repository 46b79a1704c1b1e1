package loanmanager

import (
	"context"
	"strconv"
	"time"

	"github.com/AntonStoeckl/library-loans-go/eventstore"
)

const (
	metricOperationDuration = "loanmanager_operation_duration_seconds"
	metricOperations        = "loanmanager_operations_total"
	metricFinesAssessed     = "loanmanager_fines_assessed_total"

	labelOperation  = "operation"
	labelStatus     = "status"
	labelMemberType = "member_type"

	statusSuccess    = "success"
	statusIdempotent = "idempotent"
	statusRejected   = "rejected"
	statusError      = "error"

	logMsgOperationCompleted = "operation completed"
	logMsgOperationRejected  = "operation rejected"
	logMsgOperationFailed    = "operation failed"
	logMsgFineAssessed       = "fine assessed"
	logMsgReplayed           = "event history replayed"
	logMsgRefreshFailed      = "refresh failed"

	logAttrOperation   = "operation"
	logAttrStatus      = "status"
	logAttrDurationMS  = "duration_ms"
	logAttrAttempts    = "attempts"
	logAttrError       = "error"
	logAttrLoanID      = "loan_id"
	logAttrDaysOverdue = "days_overdue"
	logAttrAmount      = "amount"
	logAttrEventCount  = "event_count"

	spanNamePrefix = "loanmanager."
)

func (m *Manager) logInfo(ctx context.Context, msg string, args ...any) {
	if m.contextualLogger != nil {
		m.contextualLogger.InfoContext(ctx, msg, args...)
		return
	}

	if m.logger != nil {
		m.logger.Info(msg, args...)
	}
}

func (m *Manager) logWarn(ctx context.Context, msg string, args ...any) {
	if m.contextualLogger != nil {
		m.contextualLogger.WarnContext(ctx, msg, args...)
		return
	}

	if m.logger != nil {
		m.logger.Warn(msg, args...)
	}
}

func (m *Manager) logError(ctx context.Context, msg string, args ...any) {
	if m.contextualLogger != nil {
		m.contextualLogger.ErrorContext(ctx, msg, args...)
		return
	}

	if m.logger != nil {
		m.logger.Error(msg, args...)
	}
}

// recordOperation records the duration and the outcome counter of one operation.
func (m *Manager) recordOperation(ctx context.Context, operation, status string, duration time.Duration) {
	if m.metricsCollector == nil {
		return
	}

	labels := map[string]string{labelOperation: operation, labelStatus: status}

	if contextualCollector, ok := m.metricsCollector.(eventstore.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricOperationDuration, duration, labels)
		contextualCollector.IncrementCounterContext(ctx, metricOperations, labels)
		return
	}

	m.metricsCollector.RecordDuration(metricOperationDuration, duration, labels)
	m.metricsCollector.IncrementCounter(metricOperations, labels)
}

func (m *Manager) recordFine(ctx context.Context, memberType string) {
	if m.metricsCollector == nil {
		return
	}

	labels := map[string]string{labelMemberType: memberType}

	if contextualCollector, ok := m.metricsCollector.(eventstore.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricFinesAssessed, labels)
		return
	}

	m.metricsCollector.IncrementCounter(metricFinesAssessed, labels)
}

func (m *Manager) startSpan(ctx context.Context, operation string) (context.Context, eventstore.SpanContext) {
	if m.tracingCollector == nil {
		return ctx, nil
	}

	return m.tracingCollector.StartSpan(ctx, spanNamePrefix+operation, map[string]string{labelOperation: operation})
}

func (m *Manager) finishSpan(span eventstore.SpanContext, status string, duration time.Duration, err error) {
	if m.tracingCollector == nil || span == nil {
		return
	}

	attrs := map[string]string{
		logAttrStatus:     status,
		logAttrDurationMS: strconv.FormatFloat(toMilliseconds(duration), 'f', 3, 64),
	}

	if err != nil {
		attrs[logAttrError] = err.Error()
	}

	m.tracingCollector.FinishSpan(span, status, attrs)
}

func toMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
