package drill

import (
	"fmt"
	"strings"
)

type Severity string

const SeverityTaskCompletion Severity = "task_completion"

type NotificationKind string

const (
	NotifyExhausted           NotificationKind = "deep_drill_exhausted"
	NotifyExhaustedNoFallback NotificationKind = "deep_drill_exhausted_no_fallback"
	NotifyNothingDrawn        NotificationKind = "deep_drill_depleted"
)

type Notification struct {
	Kind     NotificationKind `json:"kind"`
	Text     string           `json:"text"`
	Severity Severity         `json:"severity"`
	DrillID  string           `json:"drill_id"`
}

func exhaustedNotification(d *Drill, fallbackLabel string, hasFallback bool) Notification {
	if !hasFallback {
		return Notification{
			Kind:     NotifyExhaustedNoFallback,
			Text:     fmt.Sprintf("Deep drill %s has exhausted the resources below it.", d.ID),
			Severity: SeverityTaskCompletion,
			DrillID:  d.ID,
		}
	}
	return Notification{
		Kind:     NotifyExhausted,
		Text:     fmt.Sprintf("Deep drill %s has exhausted the resources below it and will now produce %s.", d.ID, pluralize(fallbackLabel)),
		Severity: SeverityTaskCompletion,
		DrillID:  d.ID,
	}
}

func nothingDrawnNotification(d *Drill) Notification {
	return Notification{
		Kind:     NotifyNothingDrawn,
		Text:     fmt.Sprintf("Deep drill %s has exhausted the resources below it.", d.ID),
		Severity: SeverityTaskCompletion,
		DrillID:  d.ID,
	}
}

func pluralize(label string) string {
	label = strings.TrimSpace(label)
	switch {
	case label == "":
		return label
	case strings.HasSuffix(label, "s"):
		return label
	case strings.HasSuffix(label, "y") && len(label) > 1 && !strings.ContainsRune("aeiou", rune(label[len(label)-2])):
		return label[:len(label)-1] + "ies"
	default:
		return label + "s"
	}
}
