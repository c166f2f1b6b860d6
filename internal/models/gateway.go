package models

import (
	"database/sql"
	"strings"
	"time"

	"github.com/lib/pq"
)

// TestStatus is the lifecycle status of a reliability test.
type TestStatus string

const (
	TestStatusPending   TestStatus = "pending"
	TestStatusSent      TestStatus = "sent"
	TestStatusDelivered TestStatus = "delivered"
	TestStatusRouted    TestStatus = "routed"
	TestStatusFailed    TestStatus = "failed"
	TestStatusTimedOut  TestStatus = "timed_out"
)

// IsTerminal reports whether no further transition is allowed.
func (s TestStatus) IsTerminal() bool {
	switch s {
	case TestStatusRouted, TestStatusFailed, TestStatusTimedOut:
		return true
	}
	return false
}

// NonTerminalTestStatuses lists the statuses a test may be forced out of.
var NonTerminalTestStatuses = []TestStatus{TestStatusPending, TestStatusSent, TestStatusDelivered}

// GatewayClient is an SMS sending endpoint identified by its MSISDN.
type GatewayClient struct {
	MSISDN          string         `db:"msisdn" json:"msisdn"`
	Country         string         `db:"country" json:"country"`
	Operator        string         `db:"operator" json:"operator"`
	OperatorCode    string         `db:"operator_code" json:"operator_code"`
	Protocols       pq.StringArray `db:"protocols" json:"protocols"`
	Reliability     float64        `db:"reliability" json:"reliability"`
	LastPublishedAt sql.NullTime   `db:"last_published_date" json:"last_published_date,omitempty"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

// SupportsProtocol reports whether the client advertises the given protocol.
func (g *GatewayClient) SupportsProtocol(protocol string) bool {
	for _, p := range g.Protocols {
		if strings.EqualFold(p, protocol) {
			return true
		}
	}
	return false
}

// GatewayClientUpdate carries administrative metadata changes; nil fields are untouched.
type GatewayClientUpdate struct {
	Country      *string
	Operator     *string
	OperatorCode *string
	Protocols    []string
}

// ReliabilityTest is one measured SMS round trip through a gateway client.
type ReliabilityTest struct {
	ID              int64          `db:"id" json:"id"`
	MSISDN          string         `db:"msisdn" json:"msisdn"`
	Status          TestStatus     `db:"status" json:"status"`
	StartTime       time.Time      `db:"start_time" json:"start_time"`
	SMSSentTime     sql.NullTime   `db:"sms_sent_time" json:"sms_sent_time,omitempty"`
	SMSReceivedTime sql.NullTime   `db:"sms_received_time" json:"sms_received_time,omitempty"`
	SMSRoutedTime   sql.NullTime   `db:"sms_routed_time" json:"sms_routed_time,omitempty"`
	FailureReason   sql.NullString `db:"failure_reason" json:"failure_reason,omitempty"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

// Reached reports whether a settled test got the SMS to the receiving side. A test
// that timed out or failed after delivery was confirmed still counts.
func (t *ReliabilityTest) Reached() bool {
	if t.Status == TestStatusRouted {
		return true
	}
	return t.Status.IsTerminal() && t.SMSReceivedTime.Valid
}

// GatewayClientFilter narrows a gateway client listing.
type GatewayClientFilter struct {
	Country        string
	Protocol       string
	MinReliability *float64
}

// TestTransition moves a reliability test to To, provided its current status is one of
// From. At stamps the lifecycle column that belongs to To, if any.
type TestTransition struct {
	From   []TestStatus
	To     TestStatus
	At     time.Time
	Reason string
}
