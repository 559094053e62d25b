package objectstore

import (
	"fmt"
	"regexp"
	"time"
)

var unsafeName = regexp.MustCompile(`[^\w.\-]+`)

// SanitizeName replaces every run of characters outside [A-Za-z0-9_.-] with "_".
func SanitizeName(name string) string {
	return unsafeName.ReplaceAllString(name, "_")
}

// PortfolioPath: portfolio/{itemId}/{ts}_{index}_{name}
func PortfolioPath(itemID string, at time.Time, index int, name string) string {
	return fmt.Sprintf("portfolio/%s/%d_%d_%s", itemID, at.UnixMilli(), index, SanitizeName(name))
}

// MediaPath: media/{itemId}/{ts}_{name}
func MediaPath(itemID string, at time.Time, name string) string {
	return fmt.Sprintf("media/%s/%d_%s", itemID, at.UnixMilli(), SanitizeName(name))
}

// MeetingPhotoPath: meetingRequests/{ts}_{name}
func MeetingPhotoPath(at time.Time, name string) string {
	return fmt.Sprintf("meetingRequests/%d_%s", at.UnixMilli(), SanitizeName(name))
}
