package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var gmtOffset = regexp.MustCompile(`^GMT([+-])(\d{1,2})(?::(\d{2}))?$`)

// GetLocation returns the location of a timezone given either in GMT+H[:MM]
// form or as an IANA name. It returns nil for an unknown timezone.
func GetLocation(timezone string) *time.Location {
	name := strings.ToUpper(strings.TrimSpace(timezone))
	if m := gmtOffset.FindStringSubmatch(name); m != nil {
		hours, _ := strconv.Atoi(m[2])
		minutes := 0
		if m[3] != "" {
			minutes, _ = strconv.Atoi(m[3])
		}
		if hours > 14 || minutes > 59 {
			return nil
		}

		offset := hours*3600 + minutes*60
		if m[1] == "-" {
			offset = -offset
		}
		return time.FixedZone(name, offset)
	}

	loc, err := time.LoadLocation(strings.TrimSpace(timezone))
	if err != nil {
		return nil
	}
	return loc
}

// LocationOrLocal resolves the timezone with GetLocation and falls back to
// the local timezone of the process.
func LocationOrLocal(timezone string) *time.Location {
	if strings.TrimSpace(timezone) == "" {
		return time.Local
	}
	if loc := GetLocation(timezone); loc != nil {
		return loc
	}
	return time.Local
}
