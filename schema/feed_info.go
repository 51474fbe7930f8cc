package schema

import "github.com/transitdata/gtfs-dataset/types"

// FeedInfo describes the dataset itself rather than the service it
// schedules (feed_info.txt).
type FeedInfo struct {
	FeedPublisherName string
	FeedPublisherURL  string
	FeedLang          string
	DefaultLang       *string
	FeedStartDate     *types.GTFSDate
	FeedEndDate       *types.GTFSDate
	FeedVersion       string
	FeedContactEmail  string
	FeedContactURL    string
}

// ValidateRow enforces feed_info.txt's within-row rules: feed_publisher_name
// can never be empty, feed_lang must be a well-formed BCP 47 tag, and
// feed_start_date cannot be after feed_end_date when both are present.
func (f *FeedInfo) ValidateRow() error {
	if f.FeedPublisherName == "" {
		return newMissingValue("feed_publisher_name", "can never be empty", f.snapshot())
	}
	if err := types.ValidateLanguageTag(f.FeedLang); err != nil {
		return newInvalidValue("feed_lang", err.Error(), f.snapshot())
	}
	if f.DefaultLang != nil {
		if err := types.ValidateLanguageTag(*f.DefaultLang); err != nil {
			return newInvalidValue("default_lang", err.Error(), f.snapshot())
		}
	}
	if f.FeedStartDate != nil && f.FeedEndDate != nil && f.FeedStartDate.After(f.FeedEndDate) {
		return newInvalidValue("feed_start_date, feed_end_date", "feed_start_date cannot be after feed_end_date", f.snapshot())
	}
	return nil
}

func (f *FeedInfo) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "feed_info", Fields: map[string]string{
		"feed_publisher_name": f.FeedPublisherName,
		"feed_lang":           f.FeedLang,
	}}
}
