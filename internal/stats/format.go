package stats

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// FormatFileSize renders a byte count in human-readable units.
func FormatFileSize(size int64) string {
	if size == 0 {
		return "0 B"
	}
	units := []string{"B", "KB", "MB", "GB"}
	value := float64(size)
	i := 0
	for value >= 1024 && i < len(units)-1 {
		value /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d B", size)
	}
	return fmt.Sprintf("%.1f %s", value, units[i])
}

// FormatRelativeTime renders a timestamp as "2 hours ago" style text.
func FormatRelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff >= 24*time.Hour:
		days := int(diff.Hours()) / 24
		return fmt.Sprintf("%d %s ago", days, plural("day", days))
	case diff >= time.Hour:
		hours := int(diff.Hours())
		return fmt.Sprintf("%d %s ago", hours, plural("hour", hours))
	case diff >= time.Minute:
		minutes := int(diff.Minutes())
		return fmt.Sprintf("%d %s ago", minutes, plural("minute", minutes))
	default:
		return "Just now"
	}
}

// FormatSkillsList renders a deduplicated, sorted skill list, truncated
// to maxDisplay entries with a "and N more" suffix.
func FormatSkillsList(skills []string, maxDisplay int) string {
	if len(skills) == 0 {
		return "No skills identified"
	}
	seen := map[string]bool{}
	unique := []string{}
	for _, s := range skills {
		if !seen[s] {
			seen[s] = true
			unique = append(unique, s)
		}
	}
	sort.Strings(unique)
	if len(unique) <= maxDisplay {
		return strings.Join(unique, ", ")
	}
	return fmt.Sprintf("%s and %d more", strings.Join(unique[:maxDisplay], ", "), len(unique)-maxDisplay)
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
