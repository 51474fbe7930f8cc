package schema

import (
	"github.com/transitdata/gtfs-dataset/ids"
	"github.com/transitdata/gtfs-dataset/types"
)

// BookingRule defines how far in advance a rider-requested service must be
// booked (booking_rules.txt).
type BookingRule struct {
	BookingRuleID            ids.BookingRuleId
	BookingType              types.BookingType
	PriorNoticeDurationMin   *int
	PriorNoticeDurationMax   *int
	PriorNoticeLastDay       *int
	PriorNoticeLastTime      *types.ServiceTime
	PriorNoticeStartDay      *int
	PriorNoticeStartTime     *types.ServiceTime
	PriorNoticeServiceID     ids.ServiceId
	Message                  string
	PickupMessage            string
	DropOffMessage           string
	PhoneNumber              string
	InfoURL                  string
	BookingURL               string
}

// ValidateRow enforces booking_rules.txt's within-row rules, which key
// almost entirely off booking_type: same-day-with-notice requires a
// minimum prior-notice duration and forbids a prior-notice last day; real-time
// and prior-days bookings forbid a maximum prior-notice duration;
// prior-days bookings require a last day and, transitively, a last time;
// start day/time travel together; and a prior-notice service id is only
// meaningful for prior-days bookings.
func (b *BookingRule) ValidateRow() error {
	if b.BookingRuleID.IsEmpty() {
		return newMissingValue("booking_rule_id", "can never be empty", b.snapshot())
	}

	if b.BookingType == types.BookingSameDayWithNotice && b.PriorNoticeDurationMin == nil {
		return newMissingValue("prior_notice_duration_min", "required when booking_type is same-day-with-notice", b.snapshot())
	}
	if b.BookingType != types.BookingSameDayWithNotice && b.PriorNoticeDurationMin != nil {
		return newForbiddenValue("prior_notice_duration_min", "forbidden unless booking_type is same-day-with-notice", b.snapshot())
	}

	if (b.BookingType == types.BookingRealTime || b.BookingType == types.BookingPriorDaysWithNotice) && b.PriorNoticeDurationMax != nil {
		return newForbiddenValue("prior_notice_duration_max", "forbidden when booking_type is real-time or prior-days-with-notice", b.snapshot())
	}

	if b.BookingType == types.BookingPriorDaysWithNotice && b.PriorNoticeLastDay == nil {
		return newMissingValue("prior_notice_last_day", "required when booking_type is prior-days-with-notice", b.snapshot())
	}
	if b.BookingType != types.BookingPriorDaysWithNotice && b.PriorNoticeLastDay != nil {
		return newForbiddenValue("prior_notice_last_day", "forbidden unless booking_type is prior-days-with-notice", b.snapshot())
	}

	if b.PriorNoticeLastDay != nil && b.PriorNoticeLastTime == nil {
		return newMissingValue("prior_notice_last_time", "required when prior_notice_last_day is defined", b.snapshot())
	}
	if b.PriorNoticeLastDay == nil && b.PriorNoticeLastTime != nil {
		return newForbiddenValue("prior_notice_last_time", "forbidden unless prior_notice_last_day is defined", b.snapshot())
	}

	if b.BookingType == types.BookingRealTime && b.PriorNoticeStartDay != nil {
		return newForbiddenValue("prior_notice_start_day", "forbidden when booking_type is real-time", b.snapshot())
	}

	if b.PriorNoticeStartDay != nil && b.PriorNoticeStartTime == nil {
		return newMissingValue("prior_notice_start_time", "required when prior_notice_start_day is defined", b.snapshot())
	}
	if b.PriorNoticeStartDay == nil && b.PriorNoticeStartTime != nil {
		return newForbiddenValue("prior_notice_start_time", "forbidden unless prior_notice_start_day is defined", b.snapshot())
	}

	if b.BookingType != types.BookingPriorDaysWithNotice && !b.PriorNoticeServiceID.IsEmpty() {
		return newForbiddenValue("prior_notice_service_id", "forbidden unless booking_type is prior-days-with-notice", b.snapshot())
	}

	return nil
}

func (b *BookingRule) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "booking_rules", Fields: map[string]string{
		"booking_rule_id": b.BookingRuleID.String(),
	}}
}
