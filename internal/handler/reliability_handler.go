package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/popeskul/pnba-gateway/internal/api"
	"github.com/popeskul/pnba-gateway/internal/models"
)

// BeginReliabilityTest implements api.ServerInterface.
func (h *Handler) BeginReliabilityTest(w http.ResponseWriter, r *http.Request) {
	var req api.BeginReliabilityTestRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	test, err := h.service.Gateway.BeginTest(r.Context(), req.Msisdn)
	if err != nil {
		h.handleError(w, r, err, "Failed to begin reliability test")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toReliabilityTest(test))
}

// GetReliabilityTest implements api.ServerInterface.
func (h *Handler) GetReliabilityTest(w http.ResponseWriter, r *http.Request, testId int64) {
	test, err := h.service.Gateway.GetTest(r.Context(), testId)
	if err != nil {
		h.handleError(w, r, err, "Failed to get reliability test")
		return
	}

	render.JSON(w, r, toReliabilityTest(test))
}

// RecordTestSent implements api.ServerInterface.
func (h *Handler) RecordTestSent(w http.ResponseWriter, r *http.Request, testId int64) {
	h.recordTimestamp(w, r, testId, h.service.Gateway.RecordSent)
}

// RecordTestReceived implements api.ServerInterface.
func (h *Handler) RecordTestReceived(w http.ResponseWriter, r *http.Request, testId int64) {
	h.recordTimestamp(w, r, testId, h.service.Gateway.RecordReceived)
}

// RecordTestRouted implements api.ServerInterface.
func (h *Handler) RecordTestRouted(w http.ResponseWriter, r *http.Request, testId int64) {
	h.recordTimestamp(w, r, testId, h.service.Gateway.RecordRouted)
}

// RecordTestFailed implements api.ServerInterface.
func (h *Handler) RecordTestFailed(w http.ResponseWriter, r *http.Request, testId int64) {
	var req api.FailureRequest
	if !h.decodeOptionalBody(w, r, &req) {
		return
	}

	var reason string
	if req.Reason != nil {
		reason = *req.Reason
	}

	test, err := h.service.Gateway.RecordFailure(r.Context(), testId, reason)
	if err != nil {
		h.handleError(w, r, err, "Failed to record test failure")
		return
	}

	render.JSON(w, r, toReliabilityTest(test))
}

// RecordTestTimeout implements api.ServerInterface.
func (h *Handler) RecordTestTimeout(w http.ResponseWriter, r *http.Request, testId int64) {
	test, err := h.service.Gateway.RecordTimeout(r.Context(), testId)
	if err != nil {
		h.handleError(w, r, err, "Failed to record test timeout")
		return
	}

	render.JSON(w, r, toReliabilityTest(test))
}

type timestampRecorder func(ctx context.Context, id int64, at time.Time) (*models.ReliabilityTest, error)

// recordTimestamp applies a callback carrying an optional "at"; a zero time lets
// the tracker stamp the transition itself.
func (h *Handler) recordTimestamp(w http.ResponseWriter, r *http.Request, testId int64, record timestampRecorder) {
	var req api.TimestampRequest
	if !h.decodeOptionalBody(w, r, &req) {
		return
	}

	var at time.Time
	if req.At != nil {
		at = req.At.UTC()
	}

	test, err := record(r.Context(), testId, at)
	if err != nil {
		h.handleError(w, r, err, "Failed to record reliability callback")
		return
	}

	render.JSON(w, r, toReliabilityTest(test))
}

func toReliabilityTest(t *models.ReliabilityTest) api.ReliabilityTest {
	resp := api.ReliabilityTest{
		Id:              t.ID,
		Msisdn:          t.MSISDN,
		StartTime:       t.StartTime,
		Status:          api.ReliabilityTestStatus(t.Status),
		SmsSentTime:     nullTime(t.SMSSentTime),
		SmsReceivedTime: nullTime(t.SMSReceivedTime),
		SmsRoutedTime:   nullTime(t.SMSRoutedTime),
	}
	if t.FailureReason.Valid {
		reason := t.FailureReason.String
		resp.FailureReason = &reason
	}
	return resp
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
