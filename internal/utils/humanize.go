package utils

import (
	"fmt"
	"time"
)

// HumanizeDuration formats a duration as a compact age like "3d" or "2w".
func HumanizeDuration(d time.Duration) string {
	s := int(d.Seconds())
	if s < 0 {
		s = 0
	}
	switch {
	case s < 60:
		return fmt.Sprintf("%ds", s)
	case s < 3600:
		return fmt.Sprintf("%dm", s/60)
	case s < 86400:
		return fmt.Sprintf("%dh", s/3600)
	case s < 604800:
		return fmt.Sprintf("%dd", s/86400)
	default:
		return fmt.Sprintf("%dw", s/604800)
	}
}
