package matches

import (
	club "github.com/refleksjon/coach-sync/repos/club"
)

// Status buckets understood by the listing filter. "all" (or empty) shows
// everything except drafts that were already promoted, so the same logical
// match never shows up twice.
const (
	FilterAll      = "all"
	FilterPending  = "PENDING"
	FilterApproved = "APPROVED"
	FilterUpcoming = "UPCOMING"
	FilterEnded    = "ENDED"
	FilterArchive  = "ARCHIVE"

	AssistantAll      = "all"
	AssistantOfficial = "official"
)

// FilterRows applies the assistant and status filters to the flattened union
// of canonical matches and assistant drafts.
func FilterRows(rows []club.Match, assistantFilter, statusFilter string) []club.Match {
	if assistantFilter == "" {
		assistantFilter = AssistantAll
	}
	if statusFilter == "" {
		statusFilter = FilterAll
	}

	// The archive bucket needs the canonical ID set from the unfiltered rows.
	officialIDs := map[string]bool{}
	for _, row := range rows {
		if row.Source == club.SourceOfficial {
			officialIDs[row.ID] = true
		}
	}

	filtered := rows
	if statusFilter == FilterAll {
		filtered = keep(filtered, func(row club.Match) bool {
			return !(row.Source == club.SourceAssistant && row.ApprovedToMatches)
		})
	}

	// Assistant filter does not apply to the archive view.
	if statusFilter != FilterArchive {
		switch assistantFilter {
		case AssistantAll:
		case AssistantOfficial:
			filtered = keep(filtered, func(row club.Match) bool {
				return row.Source == club.SourceOfficial
			})
		default:
			filtered = keep(filtered, func(row club.Match) bool {
				if row.Source == club.SourceAssistant {
					return row.AssistantUID == assistantFilter
				}
				return row.ApprovedFromAssistant == assistantFilter
			})
		}
	}

	switch statusFilter {
	case FilterPending:
		filtered = keep(filtered, func(row club.Match) bool {
			return row.Source == club.SourceAssistant && !row.ApprovedToMatches
		})
	case FilterApproved:
		filtered = keep(filtered, func(row club.Match) bool {
			return row.Source == club.SourceOfficial
		})
	case FilterUpcoming:
		filtered = keep(filtered, func(row club.Match) bool {
			return row.Source == club.SourceOfficial && row.Status == club.StatusUpcoming
		})
	case FilterEnded:
		filtered = keep(filtered, func(row club.Match) bool {
			return row.Source == club.SourceOfficial && row.Status == club.StatusEnded
		})
	case FilterArchive:
		filtered = keep(filtered, func(row club.Match) bool {
			return row.Source == club.SourceAssistant && officialIDs[row.ID]
		})
	}

	return filtered
}

func keep(rows []club.Match, pred func(club.Match) bool) []club.Match {
	var out []club.Match
	for _, row := range rows {
		if pred(row) {
			out = append(out, row)
		}
	}
	return out
}
